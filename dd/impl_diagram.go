// SPDX-License-Identifier: MIT

package dd

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
)

// Diagram is a root edge plus the store that owns it: the public unit of
// representation. A Diagram is immutable once returned; operations that
// consume it only read its store.
//
// levels is the number of radix levels of the represented matrix, which is
// therefore R^levels x R^levels. It cannot be recovered from the structure
// alone, because the reduction rule may elide whole levels.
type Diagram struct {
	store  *Store
	root   EdgeRef
	levels int
}

// NewDiagram wraps an edge of store as a diagram with the given level count.
//
// Errors:
//   - ErrNilStore when store is nil.
//   - ErrUnknownEdge when root was never issued by store.
//   - ErrBadLevels when levels < 0 or the root node variable is >= levels.
func NewDiagram(store *Store, root EdgeRef, levels int) (*Diagram, error) {
	if store == nil {
		return nil, ddErrorf(opNewDiagram, ErrNilStore)
	}
	if int(root) >= store.EdgeCount() {
		return nil, ddErrorf(opNewDiagram, ErrUnknownEdge)
	}
	if levels < 0 {
		return nil, ddErrorf(opNewDiagram, ErrBadLevels)
	}
	if e := store.edge(root); !e.IsTerminal() && store.node(e.Target).Variable >= levels {
		return nil, ddErrorf(opNewDiagram, ErrBadLevels)
	}

	return &Diagram{store: store, root: root, levels: levels}, nil
}

// Root returns the root edge.
func (d *Diagram) Root() Edge { return d.store.edge(d.root) }

// Store returns the owning store. Callers must not intern into it while the
// diagram is being read by an operation.
func (d *Diagram) Store() *Store { return d.store }

// Levels returns the number of radix levels.
func (d *Diagram) Levels() int { return d.levels }

// Radix returns the branching radix of the owning store.
func (d *Diagram) Radix() int { return d.store.opts.radix }

// Dim returns the side length R^levels of the represented matrix.
func (d *Diagram) Dim() int { return ipow(d.store.opts.radix, d.levels) }

// NodeCount returns the number of distinct nodes reachable from the root,
// which can be far below Store().NodeCount() for long-lived stores.
func (d *Diagram) NodeCount() int {
	root := d.Root()
	if root.IsTerminal() {
		return 0
	}
	seen := hashset.New()
	pending := []NodeRef{root.Target}
	for len(pending) > 0 {
		ref := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if seen.Contains(ref) {
			continue
		}
		seen.Add(ref)
		for _, child := range d.store.node(ref).Children {
			if e := d.store.edge(child); !e.IsTerminal() {
				pending = append(pending, e.Target)
			}
		}
	}

	return seen.Size()
}

// String renders a one-line summary (not the matrix).
func (d *Diagram) String() string {
	root := d.Root()
	if root.IsTerminal() {
		return fmt.Sprintf("Diagram{levels=%d dim=%d terminal=%v}", d.levels, d.Dim(), root.Weight)
	}

	return fmt.Sprintf("Diagram{levels=%d dim=%d nodes=%d root=node#%d var=%d weight=%v}",
		d.levels, d.Dim(), d.NodeCount(), root.Target, d.store.node(root.Target).Variable, root.Weight)
}

// operand views the root of d as an algebra operand.
func (d *Diagram) operand() operand {
	root := d.Root()

	return operand{store: d.store, target: root.Target, weight: root.Weight}
}
