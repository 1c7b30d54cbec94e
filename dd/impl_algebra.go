// SPDX-License-Identifier: MIT
// Package dd: shared machinery of the structural algebra.
//
// Purpose:
//   - Represent intermediate results as (store, target, weight) operands so
//     that weights are only interned into edges when a node is assembled.
//   - Expand operands level by level, treating terminals and skipped levels
//     as blocks that repeat in every child position.
//   - Copy sub-diagrams of input stores into the output store; ids are never
//     shared across stores.

package dd

import (
	"github.com/golang/glog"
)

// Operation name constants for unified error wrapping and log lines.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMultiply   = "Multiply"
	opKronecker  = "Kronecker"
	opScale      = "Scale"
	opFromDense  = "FromDense"
	opToDense    = "ToDense"
	opAt         = "At"
	opAllClose   = "AllClose"
	opNewDiagram = "NewDiagram"
	opIdentityN  = "IdentityN"
)

// operand is an edge that is not (yet) interned: target lives in store and
// weight is the effective factor accumulated along the way.
type operand struct {
	store  *Store
	target NodeRef
	weight complex128
}

func (o operand) terminal() bool { return o.target == NoNode }

// variable returns the level of the target node, -1 for terminals.
func (o operand) variable() int {
	if o.terminal() {
		return -1
	}

	return o.store.node(o.target).Variable
}

// child returns block i of o expanded at level. When o has no node at that
// level (a terminal or a node of a lower level), the block is o itself:
// the level was elided because all of its blocks are equal.
func (o operand) child(i, level int) operand {
	if o.terminal() {
		return o
	}
	n := o.store.node(o.target)
	if n.Variable < level {
		return o
	}
	e := o.store.edge(n.Children[i])

	return operand{store: o.store, target: e.Target, weight: o.weight * e.Weight}
}

// operation owns the output store of one algebra call plus its computed
// tables. It is never shared across calls.
type operation struct {
	tag   string
	out   *Store
	eps   float64
	radix int

	adds   *computeTable
	muls   *computeTable
	krons  *computeTable
	copies *computeTable
}

// newOperation creates the output store: options of the left operand, then
// opts, with the radix pinned to the operands'.
func newOperation(tag string, left *Store, opts ...Option) *operation {
	base := defaultOptions()
	if left != nil {
		base = left.opts
	}
	all := append([]Option{withOptions(base)}, opts...)
	if left != nil {
		all = append(all, func(o *Options) { o.radix = left.opts.radix })
	}
	out := NewStore(all...)
	size := out.opts.cacheSize

	return &operation{
		tag:    tag,
		out:    out,
		eps:    out.opts.eps,
		radix:  out.opts.radix,
		adds:   newComputeTable(size),
		muls:   newComputeTable(size),
		krons:  newComputeTable(size),
		copies: newComputeTable(size),
	}
}

func (op *operation) zero() operand {
	return operand{store: op.out}
}

func (op *operation) isZero(o operand) bool {
	return isZero(o.weight, op.eps)
}

// result builds an output operand, collapsing zero weights onto the zero
// terminal.
func (op *operation) result(target NodeRef, weight complex128) operand {
	if isZero(weight, op.eps) {
		return op.zero()
	}

	return operand{store: op.out, target: target, weight: weight}
}

// scaled multiplies an output operand by w.
func (op *operation) scaled(o operand, w complex128) operand {
	return op.result(o.target, o.weight*w)
}

// makeNode interns children (output operands) as a node of the given
// variable and returns the edge pointing at it, normalization folded in.
func (op *operation) makeNode(variable int, children []operand) operand {
	refs := make([]EdgeRef, len(children))
	for i, c := range children {
		if op.isZero(c) {
			refs[i] = op.out.zeroEdge()
			continue
		}
		refs[i] = op.out.InternEdge(c.target, c.weight)
	}
	target, factor := op.out.InternNode(variable, refs)

	return op.result(target, factor)
}

// copyInto re-expresses o (from any store) in the output store. Nodes are
// rebuilt through InternNode so the copy is canonical for the output store.
func (op *operation) copyInto(o operand) operand {
	if o.store == op.out {
		return o
	}
	if op.isZero(o) {
		return op.zero()
	}
	if o.terminal() {
		return op.result(NoNode, o.weight)
	}

	key := copyKey{src: o.store, t: o.target}
	if cached, ok := op.copies.get(key); ok {
		return op.scaled(cached, o.weight)
	}

	n := o.store.node(o.target)
	children := make([]operand, len(n.Children))
	for i, ref := range n.Children {
		e := o.store.edge(ref)
		children[i] = op.copyInto(operand{store: o.store, target: e.Target, weight: e.Weight})
	}
	r := op.makeNode(n.Variable, children)
	op.copies.put(key, r)

	return op.scaled(r, o.weight)
}

// finish interns the root and wraps the output store as a Diagram.
func (op *operation) finish(root operand, levels int) *Diagram {
	root = op.copyInto(root)
	var ref EdgeRef
	if op.isZero(root) {
		ref = op.out.zeroEdge()
	} else {
		ref = op.out.InternEdge(root.target, root.weight)
	}
	if glog.V(2) {
		glog.Infof("dd: %s: %d nodes, %d edges; cache hits add=%d mul=%d kron=%d copy=%d",
			op.tag, op.out.NodeCount(), op.out.EdgeCount(),
			op.adds.hits, op.muls.hits, op.krons.hits, op.copies.hits)
	}

	return &Diagram{store: op.out, root: ref, levels: levels}
}
