// Package qmdd represents complex matrices (quantum operators) as
// edge-weighted decision diagrams with structural sharing.
//
// A matrix of side R^n is split recursively into R x R blocks; each node
// of the diagram holds the R*R block edges of one level, and each edge
// carries a complex weight. Equal sub-blocks are stored once, weights are
// normalized so that proportional blocks share a node, and a level whose
// blocks are all equal is skipped entirely.
//
// Under the hood, everything is organized under two packages:
//
//	dd/    : canonical store, diagrams, add / multiply / kronecker,
//	         evaluation, dense conversion and canned factories
//	expr/  : "H @ H * (X @ I)" style expressions over dd diagrams
//
// plus the cmd/qmdd driver and a runnable program under examples/.
//
// Quick example:
//
//	h := dd.Hadamard()
//	hh, _ := dd.Kronecker(h, h) // 4x4, one node per level
//	for v := range hh.Evaluate() {
//		fmt.Println(v) // ±0.5
//	}
//
// Tolerance: weights closer than dd.DefaultTolerance (1e-10) are the same
// weight everywhere (interning, reduction, zero tests). Override with
// dd.WithTolerance when building stores.
package qmdd
