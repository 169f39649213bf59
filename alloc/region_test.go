package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slist/internal/format"
)

// TestRegions_GrowPreservesContents runs the same checks against every region
// implementation.
func TestRegions_GrowPreservesContents(t *testing.T) {
	mm, err := NewMmapRegion(format.PageSize)
	require.NoError(t, err)

	cases := []struct {
		name string
		r    Region
	}{
		{"heap", NewHeapRegion(format.PageSize)},
		{"mmap", mm},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.r
			require.Len(t, r.Bytes(), format.PageSize)
			format.PutU32(r.Bytes(), 100, 0xDEADBEEF)

			require.NoError(t, r.Grow(2*format.PageSize))
			require.Len(t, r.Bytes(), 3*format.PageSize)
			assert.Equal(t, uint32(0xDEADBEEF), format.ReadU32(r.Bytes(), 100))
			assert.Zero(t, r.Bytes()[2*format.PageSize], "new bytes must be zeroed")

			require.NoError(t, r.Close())
			assert.Nil(t, r.Bytes())
			require.ErrorIs(t, r.Grow(format.PageSize), ErrClosed)
			require.NoError(t, r.Close(), "second close is a no-op")
		})
	}
}

// TestMmapRegion_LazyFirstMapping verifies a zero-sized region maps on first
// growth and can back an arena.
func TestMmapRegion_LazyFirstMapping(t *testing.T) {
	r, err := NewMmapRegion(0)
	require.NoError(t, err)
	assert.Empty(t, r.Bytes())

	a, err := NewArena(r)
	require.NoError(t, err)
	defer a.Close()

	ref, payload, err := a.Alloc(16, ClassNode)
	require.NoError(t, err)
	format.PutU32(payload, 0, 7)

	got, err := a.Bytes(ref)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), format.ReadU32(got, 0))
}
