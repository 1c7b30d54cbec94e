// SPDX-License-Identifier: MIT
// Package dd: the canonical store (arena of nodes and edges).
//
// Purpose:
//   - Own every node and edge of one diagram family behind integer ids.
//   - Guarantee hash-consing: equal content always maps to one id.
//   - Apply weight normalization and the reduction rule on node creation.
//
// Determinism:
//   - Ids are issued by monotonic counters (len of the backing slices).
//   - When several stored edges match a weight within tolerance, the lowest
//     id wins, which is what a full linear scan in creation order would return.

package dd

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/golang/glog"
)

// edgeKey buckets edges by target and quantised weight.
type edgeKey struct {
	target NodeRef
	cell   cell
}

// Store is an append-only arena of nodes and edges. The zero value is not
// usable; create stores with NewStore.
type Store struct {
	opts Options

	edges []Edge
	nodes []Node // nodes[0] is the NoNode placeholder

	edgeIdx map[edgeKey][]EdgeRef
	nodeIdx map[uint64][]NodeRef

	hashBuf []byte // scratch for node hashing
}

// NewStore creates an empty store configured by opts.
func NewStore(opts ...Option) *Store {
	return &Store{
		opts:    gatherOptions(opts...),
		nodes:   []Node{{ID: NoNode, Variable: -1}},
		edgeIdx: make(map[edgeKey][]EdgeRef),
		nodeIdx: make(map[uint64][]NodeRef),
	}
}

// Options returns the resolved configuration of the store.
func (s *Store) Options() Options { return s.opts }

// Tolerance returns the weight-equality tolerance of the store.
func (s *Store) Tolerance() float64 { return s.opts.eps }

// Radix returns the branching radix R of the store.
func (s *Store) Radix() int { return s.opts.radix }

// EdgeCount returns the number of edges ever interned.
func (s *Store) EdgeCount() int { return len(s.edges) }

// NodeCount returns the number of nodes ever interned.
func (s *Store) NodeCount() int { return len(s.nodes) - 1 }

// Edge returns the edge with the given id. Unknown ids panic: they can only
// come from another store or from a fabricated value.
func (s *Store) Edge(ref EdgeRef) Edge {
	return s.edge(ref)
}

// Node returns a copy of the node with the given id. NoNode and unknown ids
// panic.
func (s *Store) Node(ref NodeRef) Node {
	n := s.node(ref)
	n.Children = slices.Clone(n.Children)

	return n
}

func (s *Store) edge(ref EdgeRef) Edge {
	if int(ref) >= len(s.edges) {
		panic(fmt.Sprintf(panicUnknownEdge, ref, len(s.edges)))
	}

	return s.edges[ref]
}

// node returns the stored node without cloning its children; callers must
// treat Children as read-only.
func (s *Store) node(ref NodeRef) Node {
	if ref == NoNode || int(ref) >= len(s.nodes) {
		panic(fmt.Sprintf(panicUnknownNode, ref, len(s.nodes)-1))
	}

	return s.nodes[ref]
}

// InternEdge returns the id of the edge (target, weight), creating it only
// when no stored edge has the same target and a weight within tolerance.
//
// Implementation:
//   - Stage 1: quantise weight into its eps cell.
//   - Stage 2: scan the 3x3 neighbouring cells for the same target and keep
//     the lowest matching id.
//   - Stage 3: append a new edge when nothing matched.
//
// Errors:
//   - Panics on a non-finite weight or an unknown target (programmer error).
//
// Complexity:
//   - Expected O(1); the scan touches at most nine small buckets.
func (s *Store) InternEdge(target NodeRef, weight complex128) EdgeRef {
	if !isFinite(weight) {
		panic(fmt.Sprintf(panicNonFiniteWeight, weight))
	}
	if target != NoNode {
		s.node(target)
	}

	eps := s.opts.eps
	c := cellOf(weight, eps)
	var (
		found EdgeRef
		ok    bool
	)
	for dr := int64(-1); dr <= 1; dr++ {
		for di := int64(-1); di <= 1; di++ {
			for _, id := range s.edgeIdx[edgeKey{target: target, cell: cell{re: c.re + dr, im: c.im + di}}] {
				if approxEqual(s.edges[id].Weight, weight, eps) && (!ok || id < found) {
					found, ok = id, true
				}
			}
		}
	}
	if ok {
		return found
	}

	id := EdgeRef(len(s.edges))
	s.edges = append(s.edges, Edge{ID: id, Target: target, Weight: weight})
	key := edgeKey{target: target, cell: c}
	s.edgeIdx[key] = append(s.edgeIdx[key], id)

	return id
}

// zeroEdge returns the canonical zero terminal of the store.
func (s *Store) zeroEdge() EdgeRef {
	return s.InternEdge(NoNode, 0)
}

// InternNode finds or creates the canonical node for (variable, children)
// and returns its target together with the normalization factor that the
// caller must multiply into the parent edge weight.
//
// Implementation:
//   - Stage 1: pick the pivot weight: child 0, or the first non-zero child
//     when child 0 is zero. With every child zero the pivot is 1.
//   - Stage 2: re-intern every child with weight/pivot; zero children become
//     the canonical zero terminal.
//   - Stage 3: reduction rule. When all normalized children are one edge the
//     node is elided and (shared.Target, pivot*shared.Weight) is returned.
//   - Stage 4: look (variable, children) up in the xxhash-bucketed unique
//     table, appending a new node on a miss.
//
// Behavior highlights:
//   - Normalize first, then compare: the order is what makes the
//     decomposition canonical.
//   - Never returns a node whose children are all equal.
//
// Inputs:
//   - variable: level index of the node (0 = bottom level).
//   - children: exactly R*R edge ids of this store.
//
// Returns:
//   - NodeRef: canonical target (NoNode when the reduction yields a terminal).
//   - complex128: factor to fold into the parent edge weight.
//
// Errors:
//   - Panics on a wrong child count or unknown child ids.
//
// Complexity:
//   - O(R*R) interning work plus one hash of R*R+1 words.
func (s *Store) InternNode(variable int, children []EdgeRef) (NodeRef, complex128) {
	rr := s.opts.radix * s.opts.radix
	if len(children) != rr {
		panic(fmt.Sprintf(panicChildCount, rr, len(children)))
	}
	eps := s.opts.eps

	pivot := complex(1, 0)
	for _, ref := range children {
		if w := s.edge(ref).Weight; !isZero(w, eps) {
			pivot = w
			break
		}
	}

	normalized := make([]EdgeRef, rr)
	for i, ref := range children {
		e := s.edge(ref)
		if isZero(e.Weight, eps) {
			normalized[i] = s.zeroEdge()
			continue
		}
		normalized[i] = s.InternEdge(e.Target, e.Weight/pivot)
	}

	uniform := true
	for _, ref := range normalized[1:] {
		if ref != normalized[0] {
			uniform = false
			break
		}
	}
	if uniform {
		shared := s.edges[normalized[0]]
		return shared.Target, pivot * shared.Weight
	}

	h := s.hashNode(variable, normalized)
	for _, id := range s.nodeIdx[h] {
		n := s.nodes[id]
		if n.Variable == variable && slices.Equal(n.Children, normalized) {
			return id, pivot
		}
	}

	id := NodeRef(len(s.nodes))
	s.nodes = append(s.nodes, Node{ID: id, Variable: variable, Children: normalized})
	s.nodeIdx[h] = append(s.nodeIdx[h], id)
	if glog.V(3) {
		glog.Infof("dd: store %p: node %d (var %d) created, %d nodes / %d edges", s, id, variable, len(s.nodes)-1, len(s.edges))
	}

	return id, pivot
}

// hashNode digests (variable, children) with xxhash.
func (s *Store) hashNode(variable int, children []EdgeRef) uint64 {
	buf := s.hashBuf[:0]
	buf = binary.LittleEndian.AppendUint64(buf, uint64(variable))
	for _, ref := range children {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(ref))
	}
	s.hashBuf = buf

	return xxhash.Sum64(buf)
}
