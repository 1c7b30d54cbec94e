// Package dd represents complex matrices as edge-weighted decision diagrams
// (QMDD-style) with full structural sharing.
//
// A Diagram is a root Edge plus the Store that owns it. The store hash-conses
// edges and nodes: two edges with the same target and weights equal within
// the store tolerance share one id, and two nodes with the same variable and
// children share one id. Before a node is interned its child weights are
// divided by a pivot (child 0, or the first non-zero child when child 0 is
// zero) and the pivot is moved onto the parent edge, so every matrix has one
// canonical (node, parent weight) decomposition. A node whose R*R children
// would all be the same edge is never created; the shared child is returned.
//
// Structural algebra:
//
//	Add(a, b)        elementwise sum, symmetric in its operands
//	Multiply(a, b)   matrix product, partial products summed with Add
//	Kronecker(a, b)  tensor product, every terminal of a replaced by a copy of b
//	Scale(a, w)      scalar product
//
// Every operation writes into a brand-new Store and never mutates or shares
// ids with its inputs, so the operands may come from different stores and be
// reused freely. Repeated sub-problems are memoized in per-operation LRU
// computed tables.
//
// Inspection:
//
//	Evaluate(d)  lazy iter.Seq of one value per root-to-terminal path
//	ToDense(d)   full row-major matrix, skipped levels expanded
//	At(d, r, c)  single entry
//	WriteDot     Graphviz rendering of the shared structure
//
// Quick example:
//
//	h := dd.Hadamard()
//	hh, _ := dd.Kronecker(h, h) // 4x4, two levels
//	for v := range hh.Evaluate() {
//		fmt.Println(v)
//	}
//
// The package is single-threaded by contract: a Store must not be mutated
// from several goroutines, and no operation suspends or blocks.
package dd
