// SPDX-License-Identifier: MIT

package expr

import (
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/katalvlaran/qmdd/dd"
	"github.com/pkg/errors"
)

// Env binds identifiers to diagrams. Diagrams are immutable, so one Env
// can serve any number of evaluations.
type Env map[string]*dd.Diagram

// DefaultEnv returns a fresh Env with the canned 2x2 matrices:
// I (identity), H (Hadamard) and X (anti-identity).
func DefaultEnv() Env {
	return Env{
		"I": dd.Identity(),
		"H": dd.Hadamard(),
		"X": dd.AntiIdentity(),
	}
}

// Eval parses src and evaluates it against env. opts configure every
// intermediate result (tolerance, computed-table size).
//
// Errors:
//   - ErrSyntax when src does not parse.
//   - ErrUnknownName for identifiers missing from env.
//   - any dd error raised by the algebra (e.g. dd.ErrDimensionMismatch).
func Eval(src string, env Env, opts ...dd.Option) (*dd.Diagram, error) {
	ast, err := parser.ParseString("", src)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}

	ev := evaluator{env: env, opts: opts}
	d, err := ev.sum(ast)
	if err != nil {
		return nil, err
	}
	if glog.V(2) {
		glog.Infof("expr: %q => %s", src, d)
	}

	return d, nil
}

type evaluator struct {
	env  Env
	opts []dd.Option
}

func (ev evaluator) sum(s *sumExpr) (*dd.Diagram, error) {
	acc, err := ev.product(s.Head)
	if err != nil {
		return nil, err
	}
	for _, t := range s.Tail {
		rhs, err := ev.product(t.Term)
		if err != nil {
			return nil, err
		}
		if t.Op == "-" {
			acc, err = dd.Sub(acc, rhs, ev.opts...)
		} else {
			acc, err = dd.Add(acc, rhs, ev.opts...)
		}
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func (ev evaluator) product(p *productExpr) (*dd.Diagram, error) {
	acc, err := ev.kron(p.Head)
	if err != nil {
		return nil, err
	}
	for _, f := range p.Tail {
		rhs, err := ev.kron(f)
		if err != nil {
			return nil, err
		}
		if acc, err = dd.Multiply(acc, rhs, ev.opts...); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func (ev evaluator) kron(k *kronExpr) (*dd.Diagram, error) {
	acc, err := ev.unary(k.Head)
	if err != nil {
		return nil, err
	}
	for _, f := range k.Tail {
		rhs, err := ev.unary(f)
		if err != nil {
			return nil, err
		}
		if acc, err = dd.Kronecker(acc, rhs, ev.opts...); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func (ev evaluator) unary(u *unaryExpr) (*dd.Diagram, error) {
	d, err := ev.primary(u.Primary)
	if err != nil || !u.Neg {
		return d, err
	}

	return dd.Scale(d, -1, ev.opts...)
}

func (ev evaluator) primary(p *primaryExpr) (*dd.Diagram, error) {
	switch {
	case p.Number != nil:
		return dd.Scalar(complex(*p.Number, 0), ev.opts...), nil
	case p.Imag != nil:
		v, err := strconv.ParseFloat(strings.TrimSuffix(*p.Imag, "i"), 64)
		if err != nil {
			return nil, errors.Wrap(ErrSyntax, err.Error())
		}
		return dd.Scalar(complex(0, v), ev.opts...), nil
	case p.Ident != nil:
		d, ok := ev.env[*p.Ident]
		if !ok || d == nil {
			return nil, errors.Wrapf(ErrUnknownName, "%q", *p.Ident)
		}
		return d, nil
	default:
		return ev.sum(p.Group)
	}
}
