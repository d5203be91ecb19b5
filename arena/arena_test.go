package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlab_AllocReturnsStablePointers(t *testing.T) {
	var slab Slab[int]

	// Enough values to force several chunk growths.
	const n = 10000

	pointers := make([]*int, 0, n)
	for i := 0; i < n; i++ {
		pointers = append(pointers, slab.Alloc(i))
	}

	require.Equal(t, n, slab.Len())

	// Every pointer handed out earlier must still see its value.
	for i, p := range pointers {
		assert.Equal(t, i, *p)
	}
}

func TestSlab_ChunksNeverMove(t *testing.T) {
	var slab Slab[string]

	first := slab.Alloc("first")
	for i := 0; i < minChunkLen*4; i++ {
		slab.Alloc("filler")
	}

	assert.Equal(t, "first", *first)
}

func TestSlab_Reset(t *testing.T) {
	var slab Slab[int]

	slab.Alloc(1)
	slab.Alloc(2)
	require.Equal(t, 2, slab.Len())

	slab.Reset()
	assert.Equal(t, 0, slab.Len())

	p := slab.Alloc(3)
	assert.Equal(t, 3, *p)
	assert.Equal(t, 1, slab.Len())
}

func TestSlab_ZeroValueIsReady(t *testing.T) {
	var slab Slab[struct{ A, B int }]

	p := slab.Alloc(struct{ A, B int }{1, 2})
	assert.Equal(t, 1, p.A)
	assert.Equal(t, 2, p.B)
}
