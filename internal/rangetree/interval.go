// Package rangetree provides read-mostly binary search trees for closed
// intervals and single ordered keys.
//
// Both trees are meant to be bulk-loaded once with Build, which inserts the
// middle element of every sub-slice first and therefore yields a tree of
// logarithmic depth for any input order. Insert is a plain unbalanced binary
// search tree insert; a tree grown through many Insert calls should be rebuilt.
//
// Trees are not safe for concurrent mutation. Once built they may be queried
// from any number of goroutines.
package rangetree

import "cmp"

// Range is a closed interval [Lower, Upper].
type Range[K cmp.Ordered] struct {
	Lower K `json:"lower" yaml:"lower"`
	Upper K `json:"upper" yaml:"upper"`
}

// NewRange returns the closed interval [lower, upper].
func NewRange[K cmp.Ordered](lower, upper K) Range[K] {
	return Range[K]{Lower: lower, Upper: upper}
}

// Contains reports whether p lies within the range, bounds included.
func (r Range[K]) Contains(p K) bool {
	return r.Lower <= p && p <= r.Upper
}

// Overlaps reports whether the two closed ranges share at least one point.
func (r Range[K]) Overlaps(o Range[K]) bool {
	return r.Lower <= o.Upper && r.Upper >= o.Lower
}

// IntervalTree is an interval tree augmented with the maximum upper bound of
// every subtree.
type IntervalTree[K cmp.Ordered, V any] struct {
	root *intervalNode[K, V]
	size int
}

type intervalNode[K cmp.Ordered, V any] struct {
	rng         Range[K]
	value       V
	max         K
	left, right *intervalNode[K, V]
}

// NewIntervalTree returns an empty interval tree.
func NewIntervalTree[K cmp.Ordered, V any]() *IntervalTree[K, V] {
	return &IntervalTree[K, V]{}
}

// BuildIntervalTree bulk-loads items into a new tree. rangeOf extracts the
// interval of each item; the item itself is stored as the value.
func BuildIntervalTree[K cmp.Ordered, V any](items []V, rangeOf func(V) Range[K]) *IntervalTree[K, V] {
	t := NewIntervalTree[K, V]()
	t.insertMiddleFirst(items, rangeOf)
	return t
}

func (t *IntervalTree[K, V]) insertMiddleFirst(items []V, rangeOf func(V) Range[K]) {
	if len(items) == 0 {
		return
	}
	mid := len(items) / 2
	t.Insert(rangeOf(items[mid]), items[mid])
	t.insertMiddleFirst(items[:mid], rangeOf)
	t.insertMiddleFirst(items[mid+1:], rangeOf)
}

// Insert adds value under the interval r. Intervals whose lower bound is less
// than or equal to a node's lower bound descend to the left.
func (t *IntervalTree[K, V]) Insert(r Range[K], value V) {
	n := &intervalNode[K, V]{rng: r, value: value, max: r.Upper}
	t.size++

	if t.root == nil {
		t.root = n
		return
	}

	current := t.root
	for {
		if current.max < r.Upper {
			current.max = r.Upper
		}

		if r.Lower <= current.rng.Lower {
			if current.left == nil {
				current.left = n
				return
			}
			current = current.left
		} else {
			if current.right == nil {
				current.right = n
				return
			}
			current = current.right
		}
	}
}

// Len returns the number of stored intervals.
func (t *IntervalTree[K, V]) Len() int {
	return t.size
}

// SearchPoint returns the values of all intervals containing p, in a
// left-biased in-order traversal. The result is nil when nothing matches.
func (t *IntervalTree[K, V]) SearchPoint(p K) []V {
	var result []V
	t.root.searchPoint(p, &result)
	return result
}

func (n *intervalNode[K, V]) searchPoint(p K, result *[]V) {
	if n == nil || p > n.max {
		return
	}

	n.left.searchPoint(p, result)

	if n.rng.Contains(p) {
		*result = append(*result, n.value)
	}

	if p < n.rng.Lower {
		return
	}

	n.right.searchPoint(p, result)
}

// SearchRange returns the values of all intervals overlapping r.
func (t *IntervalTree[K, V]) SearchRange(r Range[K]) []V {
	var result []V
	t.root.searchRange(r, &result)
	return result
}

func (n *intervalNode[K, V]) searchRange(r Range[K], result *[]V) {
	if n == nil || r.Lower > n.max {
		return
	}

	n.left.searchRange(r, result)

	if n.rng.Overlaps(r) {
		*result = append(*result, n.value)
	}

	if r.Upper < n.rng.Lower {
		return
	}

	n.right.searchRange(r, result)
}

// Depth returns the height of the tree; an empty tree has depth 0.
func (t *IntervalTree[K, V]) Depth() int {
	return t.root.depth()
}

func (n *intervalNode[K, V]) depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}
