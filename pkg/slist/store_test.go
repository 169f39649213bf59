package slist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slist/alloc"
	"github.com/joshuapare/slist/list"
	"github.com/joshuapare/slist/pkg/types"
)

// TestNew_Regions builds a store for every region kind and runs the
// end-to-end scenario through it.
func TestNew_Regions(t *testing.T) {
	for _, kind := range []types.RegionKind{types.RegionHeap, types.RegionMmap, types.RegionHandles} {
		t.Run(string(kind), func(t *testing.T) {
			opts := types.DefaultOptions()
			opts.Region = kind
			st, err := New(opts)
			require.NoError(t, err)
			defer st.Close()

			l := st.List()
			for _, v := range []uint32{5, 6, 7} {
				require.NoError(t, l.InsertEnd(v))
			}
			idx, err := l.Find(6)
			require.NoError(t, err)
			assert.Equal(t, 1, idx)
			require.NoError(t, l.RemoveAt(0))

			c, err := l.Iterator(1)
			require.NoError(t, err)
			more, err := c.Next()
			require.NoError(t, err)
			assert.False(t, more)
			v, err := c.Value()
			require.NoError(t, err)
			assert.Equal(t, uint32(7), v)
			require.NoError(t, c.Release())

			stats := st.Stats()
			assert.Equal(t, 3, stats.LiveCells, "header and two nodes")
			assert.Equal(t, 1, stats.ByClass[alloc.ClassList])
			assert.Equal(t, 2, stats.ByClass[alloc.ClassNode])
		})
	}
}

// TestNew_MaxNodes verifies the node bound reaches the list.
func TestNew_MaxNodes(t *testing.T) {
	opts := types.DefaultOptions()
	opts.Limits.MaxNodes = 2
	st, err := New(opts)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.List().InsertEnd(1))
	require.NoError(t, st.List().InsertEnd(2))
	require.ErrorIs(t, st.List().InsertEnd(3), list.ErrListFull)
}

// TestNew_MaxLiveCells verifies cursors count against the live-cell cap.
func TestNew_MaxLiveCells(t *testing.T) {
	opts := types.DefaultOptions()
	opts.Limits = types.Limits{MaxNodes: 1, MaxLiveCells: 2}
	st, err := New(opts)
	require.NoError(t, err)
	defer st.Close()

	l := st.List()
	require.NoError(t, l.InsertFront(1))
	_, err = l.Iterator(0)
	require.ErrorIs(t, err, alloc.ErrNoSpace)
}

// TestNew_MaxArenaBytes verifies the arena cap surfaces as allocator
// exhaustion.
func TestNew_MaxArenaBytes(t *testing.T) {
	opts := types.DefaultOptions()
	opts.Limits = types.Limits{MaxArenaBytes: 4096}
	st, err := New(opts)
	require.NoError(t, err)
	defer st.Close()

	l := st.List()
	var err2 error
	for i := 0; i < 4096 && err2 == nil; i++ {
		err2 = l.InsertFront(uint32(i))
	}
	require.ErrorIs(t, err2, alloc.ErrNoSpace)
	require.NoError(t, l.Verify())
}

func TestNew_InvalidOptions(t *testing.T) {
	opts := types.DefaultOptions()
	opts.Region = "disk"
	_, err := New(opts)
	require.ErrorIs(t, err, types.ErrConfig)

	opts = types.DefaultOptions()
	opts.LogLevel = "chatty"
	_, err = New(opts)
	require.ErrorIs(t, err, types.ErrConfig)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: handles\nlimits:\n  max_nodes: 1\n"), 0o600))

	st, err := Open(path)
	require.NoError(t, err)
	defer st.Close()
	assert.Equal(t, types.RegionHandles, st.Options().Region)
	require.NoError(t, st.List().InsertEnd(1))
	require.ErrorIs(t, st.List().InsertEnd(2), list.ErrListFull)

	_, err = Open(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// TestStore_Close verifies Close releases everything once and tolerates a
// list the caller already deleted.
func TestStore_Close(t *testing.T) {
	st, err := New(types.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, st.List().InsertEnd(1))
	require.NoError(t, st.Close())
	require.NoError(t, st.Close())
	require.ErrorIs(t, st.List().InsertEnd(2), list.ErrNilList)

	opts := types.DefaultOptions()
	opts.Region = types.RegionHandles
	st, err = New(opts)
	require.NoError(t, err)
	require.NoError(t, st.List().Delete())
	require.NoError(t, st.Close())
	assert.Zero(t, st.Stats().LiveCells)
}
