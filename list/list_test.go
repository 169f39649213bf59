package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slist/alloc"
)

// TestList_Scenario walks the reference sequence: front/end/at inserts,
// find, remove and a cursor parked on the last node.
func TestList_Scenario(t *testing.T) {
	backends := []struct {
		name string
		make func(t *testing.T) alloc.Allocator
	}{
		{"arena-heap", func(t *testing.T) alloc.Allocator { return alloc.Bind(newTestArena(t)) }},
		{"arena-mmap", func(t *testing.T) alloc.Allocator {
			r, err := alloc.NewMmapRegion(0)
			require.NoError(t, err)
			a, err := alloc.NewArena(r)
			require.NoError(t, err)
			t.Cleanup(func() { _ = a.Close() })
			return alloc.Bind(a)
		}},
		{"heap", func(*testing.T) alloc.Allocator { return alloc.Bind(alloc.NewHeap()) }},
	}

	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			l, err := New(be.make(t))
			require.NoError(t, err)

			size, err := l.Size()
			require.NoError(t, err)
			assert.Zero(t, size)

			require.NoError(t, l.InsertFront(5))
			require.NoError(t, l.InsertEnd(7))
			require.NoError(t, l.InsertAt(1, 6))
			requireValues(t, l, 5, 6, 7)

			idx, err := l.Find(6)
			require.NoError(t, err)
			assert.Equal(t, 1, idx)

			require.NoError(t, l.RemoveAt(0))
			requireValues(t, l, 6, 7)
			size, err = l.Size()
			require.NoError(t, err)
			assert.Equal(t, 2, size)

			c, err := l.Iterator(1)
			require.NoError(t, err)
			more, err := c.Next()
			require.NoError(t, err)
			assert.False(t, more)
			v, err := c.Value()
			require.NoError(t, err)
			assert.Equal(t, uint32(7), v)
			i, err := c.Index()
			require.NoError(t, err)
			assert.Equal(t, 1, i)

			require.NoError(t, c.Release())
			require.NoError(t, l.Delete())
		})
	}
}

// TestList_SizeCountsInserts verifies size equals the number of successful
// inserts across all three insert variants.
func TestList_SizeCountsInserts(t *testing.T) {
	l, _ := newTestList(t)

	for i := range 30 {
		switch i % 3 {
		case 0:
			require.NoError(t, l.InsertFront(uint32(i)))
		case 1:
			require.NoError(t, l.InsertEnd(uint32(i)))
		default:
			require.NoError(t, l.InsertAt(i/2, uint32(i)))
		}
		size, err := l.Size()
		require.NoError(t, err)
		require.Equal(t, i+1, size)
	}
	require.NoError(t, l.Verify())
}

// TestList_InsertAtPositions verifies front, interior and append positions.
func TestList_InsertAtPositions(t *testing.T) {
	l, _ := newTestList(t)

	require.NoError(t, l.InsertAt(0, 2)) // empty list, index 0
	require.NoError(t, l.InsertAt(0, 0)) // front
	require.NoError(t, l.InsertAt(2, 3)) // index == size
	require.NoError(t, l.InsertAt(1, 1)) // interior
	requireValues(t, l, 0, 1, 2, 3)
}

// TestList_InsertAtOutOfRange verifies an index past size fails, leaves the
// list untouched and gives the pre-allocated node back.
func TestList_InsertAtOutOfRange(t *testing.T) {
	l, a := newTestList(t)
	fill(t, l, 1, 2)
	before := a.Stats()

	require.ErrorIs(t, l.InsertAt(3, 9), ErrOutOfRange)
	require.ErrorIs(t, l.InsertAt(-1, 9), ErrOutOfRange)

	after := a.Stats()
	assert.Equal(t, before.LiveCells, after.LiveCells, "no node may leak")
	assert.Equal(t, before.Allocs+1, after.Allocs, "out-of-range insert allocates once, up front")
	requireValues(t, l, 1, 2)
}

// TestList_InsertThenFind verifies Find returns an index <= k for a value
// that did not occur earlier.
func TestList_InsertThenFind(t *testing.T) {
	l, _ := newTestList(t)
	fill(t, l, 10, 20, 30, 40)

	require.NoError(t, l.InsertAt(2, 99))
	idx, err := l.Find(99)
	require.NoError(t, err)
	assert.LessOrEqual(t, idx, 2)
	assert.Equal(t, 2, idx)
}

// TestList_FindFirstMatch verifies ties resolve to the lowest index and a
// miss reports ErrNotFound.
func TestList_FindFirstMatch(t *testing.T) {
	l, _ := newTestList(t)
	fill(t, l, 4, 8, 4, 8)

	idx, err := l.Find(8)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = l.Find(5)
	require.ErrorIs(t, err, ErrNotFound)

	// A value equal to the old SIZE_MAX sentinel is still just a value.
	require.NoError(t, l.InsertEnd(^uint32(0)))
	idx, err = l.Find(^uint32(0))
	require.NoError(t, err)
	assert.Equal(t, 4, idx)
}

// TestList_RemoveThenFind verifies removing a value changes what Find
// reports unless a duplicate remains.
func TestList_RemoveThenFind(t *testing.T) {
	l, _ := newTestList(t)
	fill(t, l, 1, 2, 3, 2)

	require.NoError(t, l.RemoveAt(1))
	idx, err := l.Find(2)
	require.NoError(t, err)
	assert.Equal(t, 2, idx, "duplicate further down is found instead")

	require.NoError(t, l.RemoveAt(2))
	_, err = l.Find(2)
	require.ErrorIs(t, err, ErrNotFound)
	requireValues(t, l, 1, 3)
}

// TestList_InsertRemoveRoundTrip verifies InsertAt(i) followed by
// RemoveAt(i) restores the previous sequence at every position.
func TestList_InsertRemoveRoundTrip(t *testing.T) {
	l, a := newTestList(t)
	fill(t, l, 1, 2, 3)
	base := a.Stats().LiveCells

	for i := 0; i <= 3; i++ {
		require.NoError(t, l.InsertAt(i, 42))
		require.NoError(t, l.RemoveAt(i))
		requireValues(t, l, 1, 2, 3)
		assert.Equal(t, base, a.Stats().LiveCells)
	}
}

// TestList_BoundaryAtSize verifies index == size succeeds for insert and
// fails for remove, get and iterator creation.
func TestList_BoundaryAtSize(t *testing.T) {
	l, a := newTestList(t)
	fill(t, l, 1, 2)

	require.ErrorIs(t, l.RemoveAt(2), ErrOutOfRange)
	_, err := l.Get(2)
	require.ErrorIs(t, err, ErrOutOfRange)

	live := a.Stats().LiveCells
	_, err = l.Iterator(2)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, live, a.Stats().LiveCells, "failed iterator must release its cell")

	require.NoError(t, l.InsertAt(2, 3))
	requireValues(t, l, 1, 2, 3)
}

// TestList_RemoveEveryPosition verifies remove at front, middle and end.
func TestList_RemoveEveryPosition(t *testing.T) {
	l, a := newTestList(t)
	fill(t, l, 0, 1, 2, 3, 4)

	require.NoError(t, l.RemoveAt(4))
	requireValues(t, l, 0, 1, 2, 3)
	require.NoError(t, l.RemoveAt(0))
	requireValues(t, l, 1, 2, 3)
	require.NoError(t, l.RemoveAt(1))
	requireValues(t, l, 1, 3)
	require.NoError(t, l.RemoveAt(0))
	require.NoError(t, l.RemoveAt(0))
	requireValues(t, l)
	require.ErrorIs(t, l.RemoveAt(0), ErrOutOfRange)

	assert.Equal(t, 1, a.Stats().LiveCells, "only the header remains")
}

// TestList_Get verifies indexed reads.
func TestList_Get(t *testing.T) {
	l, _ := newTestList(t)
	fill(t, l, 11, 22, 33)

	v, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, uint32(33), v)
	_, err = l.Get(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

// TestList_All verifies range-over-func iteration and early exit.
func TestList_All(t *testing.T) {
	l, _ := newTestList(t)
	fill(t, l, 3, 1, 4, 1, 5)

	var idx []int
	var vals []uint32
	for i, v := range l.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, idx)
	assert.Equal(t, []uint32{3, 1, 4, 1, 5}, vals)

	count := 0
	for range l.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)

	var nilList *List
	for range nilList.All() {
		t.Fatal("nil list must yield nothing")
	}
}

// TestList_DeleteReleasesEverything verifies teardown frees all nodes and
// the header, and the handle is dead afterwards.
func TestList_DeleteReleasesEverything(t *testing.T) {
	l, a := newTestList(t)
	fill(t, l, 1, 2, 3, 4, 5)
	assert.Equal(t, 6, a.Stats().LiveCells)

	require.NoError(t, l.Delete())
	st := a.Stats()
	assert.Zero(t, st.LiveCells)
	assert.Zero(t, st.LiveBytes)
	assert.EqualValues(t, 6, st.Frees)

	require.ErrorIs(t, l.Delete(), ErrNilList)
	_, err := l.Size()
	require.ErrorIs(t, err, ErrNilList)
	require.ErrorIs(t, l.InsertFront(1), ErrNilList)
}

// TestList_NilList verifies every operation on an absent list fails cleanly.
func TestList_NilList(t *testing.T) {
	var l *List

	_, err := l.Size()
	require.ErrorIs(t, err, ErrNilList)
	_, err = l.Find(1)
	require.ErrorIs(t, err, ErrNilList)
	_, err = l.Get(0)
	require.ErrorIs(t, err, ErrNilList)
	_, err = l.Values()
	require.ErrorIs(t, err, ErrNilList)
	require.ErrorIs(t, l.InsertFront(1), ErrNilList)
	require.ErrorIs(t, l.InsertEnd(1), ErrNilList)
	require.ErrorIs(t, l.InsertAt(0, 1), ErrNilList)
	require.ErrorIs(t, l.RemoveAt(0), ErrNilList)
	require.ErrorIs(t, l.Delete(), ErrNilList)
	require.ErrorIs(t, l.Verify(), ErrNilList)
	_, err = l.Iterator(0)
	require.ErrorIs(t, err, ErrNilList)
	assert.Zero(t, l.Generation())
	assert.Nil(t, l.Allocator())

	_, err = New(nil)
	require.ErrorIs(t, err, ErrNilAllocator)
}

// TestList_MaxNodes verifies the node limit is enforced before allocating.
func TestList_MaxNodes(t *testing.T) {
	l, a := newTestList(t, WithMaxNodes(2))
	fill(t, l, 1, 2)

	allocs := a.Stats().Allocs
	require.ErrorIs(t, l.InsertFront(3), ErrListFull)
	require.ErrorIs(t, l.InsertEnd(3), ErrListFull)
	require.ErrorIs(t, l.InsertAt(1, 3), ErrListFull)
	assert.Equal(t, allocs, a.Stats().Allocs)

	require.NoError(t, l.RemoveAt(0))
	require.NoError(t, l.InsertFront(3))
	requireValues(t, l, 3, 2)
}
