package list

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slist/alloc"
)

// newTestArena returns an arena over an empty heap region.
func newTestArena(t testing.TB) *alloc.Arena {
	t.Helper()
	a, err := alloc.NewArena(alloc.NewHeapRegion(0))
	require.NoError(t, err)
	return a
}

// newTestList returns an empty list over a fresh arena bound with both slots.
func newTestList(t testing.TB, opts ...Option) (*List, *alloc.Arena) {
	t.Helper()
	a := newTestArena(t)
	l, err := New(alloc.Bind(a), opts...)
	require.NoError(t, err)
	return l, a
}

// fill appends vals in order.
func fill(t testing.TB, l *List, vals ...uint32) {
	t.Helper()
	for _, v := range vals {
		require.NoError(t, l.InsertEnd(v))
	}
}

// requireValues fails with a diff when the list does not hold want.
func requireValues(t testing.TB, l *List, want ...uint32) {
	t.Helper()
	got, err := l.Values()
	require.NoError(t, err)
	if want == nil {
		want = []uint32{}
	}
	if got == nil {
		got = []uint32{}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("list contents mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, l.Verify())
}
