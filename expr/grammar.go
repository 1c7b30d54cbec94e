// SPDX-License-Identifier: MIT

package expr

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Imag", Pattern: `(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?i`},
	{Name: "Number", Pattern: `(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[-+*@()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type sumExpr struct {
	Head *productExpr `@@`
	Tail []*sumTail   `@@*`
}

type sumTail struct {
	Op   string       `@("+" | "-")`
	Term *productExpr `@@`
}

type productExpr struct {
	Head *kronExpr   `@@`
	Tail []*kronExpr `("*" @@)*`
}

type kronExpr struct {
	Head *unaryExpr   `@@`
	Tail []*unaryExpr `("@" @@)*`
}

type unaryExpr struct {
	Neg     bool         `@"-"?`
	Primary *primaryExpr `@@`
}

type primaryExpr struct {
	Imag   *string  `  @Imag`
	Number *float64 `| @Number`
	Ident  *string  `| @Ident`
	Group  *sumExpr `| "(" @@ ")"`
}

var parser = participle.MustBuild[sumExpr](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)
