package rangetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type marker struct {
	name string
	at   uint64
}

func markerKey(m marker) uint64 { return m.at }

func TestPointTree_SearchRange(t *testing.T) {
	t.Parallel()

	items := []marker{
		{"qrp", 14_060_000},
		{"beacon", 14_100_000},
		{"ssb-qrp", 14_285_000},
		{"sstv", 14_230_000},
		{"cw-qrp", 7_030_000},
	}
	tree := BuildPointTree(items, markerKey)
	assert.Equal(t, len(items), tree.Len())

	got := tree.SearchRange(NewRange[uint64](14_000_000, 14_350_000))
	var gotNames []string
	for _, m := range got {
		gotNames = append(gotNames, m.name)
	}
	assert.Equal(t, []string{"qrp", "beacon", "sstv", "ssb-qrp"}, gotNames, "results are in key order")

	assert.Len(t, tree.SearchRange(NewRange[uint64](7_030_000, 7_030_000)), 1)
	assert.Empty(t, tree.SearchRange(NewRange[uint64](1, 2)))
	assert.Empty(t, tree.SearchRange(NewRange[uint64](20_000_000, 30_000_000)))
}

func TestPointTree_DuplicateKeys(t *testing.T) {
	t.Parallel()

	tree := NewPointTree[int, string]()
	tree.Insert(10, "first")
	tree.Insert(10, "second")
	tree.Insert(5, "low")

	assert.Equal(t, 3, tree.Len())
	assert.ElementsMatch(t, []string{"first", "second"}, tree.SearchRange(NewRange(10, 10)))
}

func TestPointTree_BuildIsBalanced(t *testing.T) {
	t.Parallel()

	items := make([]marker, 255)
	for i := range items {
		items[i] = marker{at: uint64(i)}
	}
	tree := BuildPointTree(items, markerKey)
	assert.Equal(t, 255, tree.Len())
	assert.Equal(t, 8, tree.Depth())
}

func TestPointTree_Empty(t *testing.T) {
	t.Parallel()

	tree := NewPointTree[int, int]()
	assert.Empty(t, tree.SearchRange(NewRange(0, 10)))
	assert.Equal(t, 0, tree.Depth())
}
