// SPDX-License-Identifier: MIT

package dd

import "github.com/golang/groupcache/lru"

// computeTable memoizes sub-results of one operation. Values are operands
// of the operation's output store. A nil cache means memoization is off.
type computeTable struct {
	cache  *lru.Cache
	hits   int
	misses int
}

func newComputeTable(size int) *computeTable {
	if size <= 0 {
		return &computeTable{}
	}

	return &computeTable{cache: lru.New(size)}
}

func (t *computeTable) get(key lru.Key) (operand, bool) {
	if t.cache == nil {
		return operand{}, false
	}
	v, ok := t.cache.Get(key)
	if !ok {
		t.misses++
		return operand{}, false
	}
	t.hits++

	return v.(operand), true
}

func (t *computeTable) put(key lru.Key, v operand) {
	if t.cache != nil {
		t.cache.Add(key, v)
	}
}

// Keys. Stores are part of every key that mixes operands from several
// stores; the output store is implicit (one table per operation).

// Weights are effective (not unit) weights: zero tests inside a sub-result
// depend on its scale, so a cached result only answers the exact same call.

type addKey struct {
	sa, sb *Store
	ta, tb NodeRef
	wa, wb complex128
}

type mulKey struct {
	sa, sb *Store
	ta, tb NodeRef
	wa, wb complex128
}

// kronKey omits the right operand: it is fixed for one operation.
type kronKey struct {
	ta NodeRef
	wa complex128
}

type copyKey struct {
	src *Store
	t   NodeRef
}
