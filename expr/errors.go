// SPDX-License-Identifier: MIT

package expr

import "github.com/pkg/errors"

var (
	// ErrSyntax wraps every lexer or parser failure; the message carries
	// the position reported by the parser.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownName indicates an identifier missing from the Env.
	ErrUnknownName = errors.New("expr: unknown name")
)
