package rangetree

import "cmp"

// PointTree is a binary search tree over single ordered keys, queried by the
// keys falling inside a closed range.
type PointTree[K cmp.Ordered, V any] struct {
	root *pointNode[K, V]
	size int
}

type pointNode[K cmp.Ordered, V any] struct {
	key         K
	value       V
	left, right *pointNode[K, V]
}

// NewPointTree returns an empty point tree.
func NewPointTree[K cmp.Ordered, V any]() *PointTree[K, V] {
	return &PointTree[K, V]{}
}

// BuildPointTree bulk-loads items into a new tree using keyOf for ordering.
func BuildPointTree[K cmp.Ordered, V any](items []V, keyOf func(V) K) *PointTree[K, V] {
	t := NewPointTree[K, V]()
	t.insertMiddleFirst(items, keyOf)
	return t
}

func (t *PointTree[K, V]) insertMiddleFirst(items []V, keyOf func(V) K) {
	if len(items) == 0 {
		return
	}
	mid := len(items) / 2
	t.Insert(keyOf(items[mid]), items[mid])
	t.insertMiddleFirst(items[:mid], keyOf)
	t.insertMiddleFirst(items[mid+1:], keyOf)
}

// Insert adds value under key. Equal keys descend to the left.
func (t *PointTree[K, V]) Insert(key K, value V) {
	n := &pointNode[K, V]{key: key, value: value}
	t.size++

	if t.root == nil {
		t.root = n
		return
	}

	current := t.root
	for {
		if key <= current.key {
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

// Len returns the number of stored keys.
func (t *PointTree[K, V]) Len() int {
	return t.size
}

// SearchRange returns the values whose keys lie within r, in key order.
func (t *PointTree[K, V]) SearchRange(r Range[K]) []V {
	var result []V
	t.root.searchRange(r, &result)
	return result
}

func (n *pointNode[K, V]) searchRange(r Range[K], result *[]V) {
	if n == nil {
		return
	}

	n.left.searchRange(r, result)

	if r.Contains(n.key) {
		*result = append(*result, n.value)
	}

	if r.Upper < n.key {
		return
	}

	n.right.searchRange(r, result)
}

// Depth returns the height of the tree; an empty tree has depth 0.
func (t *PointTree[K, V]) Depth() int {
	return t.root.depth()
}

func (n *pointNode[K, V]) depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}
