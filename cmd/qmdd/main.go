// SPDX-License-Identifier: MIT

// Command qmdd evaluates a matrix expression as a decision diagram and
// prints its summary and path values.
//
// Usage:
//
//	qmdd -e 'H @ H * (X @ I)' -dense -v=2 -logtostderr
//	qmdd -e 'H @ H @ H' -dot hhh.dot && dot -Tsvg hhh.dot > hhh.svg
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/katalvlaran/qmdd/dd"
	"github.com/katalvlaran/qmdd/expr"
	"github.com/pkg/errors"
)

func main() {
	src := flag.String("e", "H @ H", "expression to evaluate (operators: + - * @)")
	eps := flag.Float64("tol", dd.DefaultTolerance, "weight equality tolerance")
	cache := flag.Int("cache", dd.DefaultComputeTableSize, "computed table size per operation (0 disables)")
	dense := flag.Bool("dense", false, "also print the dense matrix")
	dot := flag.String("dot", "", "write the diagram as Graphviz DOT to this file")
	flag.Parse()
	defer glog.Flush()

	cfg := config{src: *src, eps: *eps, cache: *cache, dense: *dense, dot: *dot}
	if err := run(cfg); err != nil {
		glog.Errorf("qmdd: %v", err)
		fmt.Fprintln(os.Stderr, "qmdd:", err)
		glog.Flush()
		os.Exit(1)
	}
}

// config carries the parsed command-line flags.
type config struct {
	src   string
	eps   float64
	cache int
	dense bool
	dot   string
}

func run(cfg config) error {
	if !(cfg.eps > 0) || math.IsInf(cfg.eps, 0) || cfg.cache < 0 {
		return errors.Errorf("invalid flags: -tol %g -cache %d", cfg.eps, cfg.cache)
	}
	glog.Infof("evaluating %q (tol=%g cache=%d)", cfg.src, cfg.eps, cfg.cache)

	d, err := expr.Eval(cfg.src, expr.DefaultEnv(), dd.WithTolerance(cfg.eps), dd.WithComputeTableSize(cfg.cache))
	if err != nil {
		return err
	}

	fmt.Println(d)
	fmt.Println("values:", formatValues(d.Values()))
	if cfg.dot != "" {
		if err := writeDotFile(cfg.dot, d, cfg.src); err != nil {
			return err
		}
		glog.Infof("wrote %s", cfg.dot)
	}
	if !cfg.dense {
		return nil
	}

	m, err := dd.ToDense(d)
	if err != nil {
		return err
	}
	for _, row := range m {
		fmt.Println(formatValues(row))
	}

	return nil
}

func writeDotFile(path string, d *dd.Diagram, title string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "dot output")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "dot output")
		}
	}()

	return dd.WriteDot(f, d, title)
}

func formatValues(vals []complex128) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%.4g", v)
	}

	return strings.Join(parts, " ")
}
