// SPDX-License-Identifier: MIT

// Package dd: domain types shared by the store, the algebra and the evaluator.
// This file intentionally contains ONLY the data model; behaviour lives in
// the impl_* files.
package dd

// NodeRef identifies a node inside one Store. Node ids start at 1 and are
// issued by a monotonic counter; NoNode marks a terminal edge.
type NodeRef uint32

// NoNode is the target of every terminal edge.
const NoNode NodeRef = 0

// EdgeRef identifies an edge inside one Store. Edge ids start at 0.
type EdgeRef uint32

// Edge is a weighted reference to a Node, or a terminal leaf value when
// Target == NoNode.
//
// Two edges of one store with the same Target and weights closer than the
// store tolerance are the same edge (same ID).
type Edge struct {
	ID     EdgeRef
	Target NodeRef
	Weight complex128
}

// IsTerminal reports whether the edge carries a scalar leaf value.
func (e Edge) IsTerminal() bool { return e.Target == NoNode }

// Node is a decision point with R*R ordered child edges; Children[i*R+j] is
// the block at block-row i, block-col j.
//
// Variable is the level index counted from the terminals: 0 is the bottom
// level whose blocks are scalars, and the root of an n-level diagram has a
// variable of at most n-1. A child whose variable is lower than its parent's
// minus one stands for a block that is constant across the skipped levels.
type Node struct {
	ID       NodeRef
	Variable int
	Children []EdgeRef
}
