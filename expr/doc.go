// SPDX-License-Identifier: MIT

// Package expr evaluates small matrix expressions over decision diagrams.
//
// Grammar (lowest to highest precedence):
//
//	Sum     := Product (("+" | "-") Product)*
//	Product := Kron ("*" Kron)*
//	Kron    := Unary ("@" Unary)*
//	Unary   := "-"? Primary
//	Primary := Number | Imag | Ident | "(" Sum ")"
//
// "@" is the Kronecker product, "*" the matrix product. Numbers (3, 0.5,
// 1e-3) and imaginary literals (2i, 0.5i) are 0-level scalar diagrams, so
// "0.5 * H" scales H while "1 + H" is a dimension mismatch. Identifiers are
// resolved through an Env; DefaultEnv binds I, H and X.
//
// Quick example:
//
//	d, err := expr.Eval("H @ H * (X @ I)", expr.DefaultEnv())
package expr
