package slist

import (
	"fmt"

	"github.com/joshuapare/slist/alloc"
	"github.com/joshuapare/slist/internal/format"
	"github.com/joshuapare/slist/list"
	"github.com/joshuapare/slist/pkg/types"
)

// New builds a Store from opts. The options are validated first; nothing is
// allocated for invalid options.
//
// Example:
//
//	opts := types.DefaultOptions()
//	opts.Region = types.RegionMmap
//	st, err := slist.New(opts)
func New(opts types.Options) (*Store, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		if err := alloc.SetLogLevel(opts.LogLevel); err != nil {
			return nil, &types.Error{Kind: types.ErrKindConfig, Msg: "log_level", Err: err}
		}
	}

	st := &Store{opts: opts}
	var base alloc.Allocator
	switch opts.Region {
	case types.RegionHandles:
		st.heap = alloc.NewHeap()
		base = st.heap
	default:
		region, err := newRegion(opts)
		if err != nil {
			return nil, err
		}
		arena, err := alloc.NewArena(region,
			alloc.WithGrowPages(opts.GrowPages),
			alloc.WithMaxBytes(opts.Limits.MaxArenaBytes),
		)
		if err != nil {
			_ = region.Close()
			return nil, err
		}
		st.arena = arena
		base = arena
	}

	if opts.Limits.MaxLiveCells > 0 {
		st.limited = alloc.NewLimited(base, opts.Limits.MaxLiveCells)
		base = st.limited
	}
	st.binding = alloc.Bind(base)

	l, err := list.New(st.binding, list.WithMaxNodes(opts.Limits.MaxNodes))
	if err != nil {
		_ = st.closeBacking()
		return nil, fmt.Errorf("slist: create list: %w", err)
	}
	st.list = l
	return st, nil
}

// Open loads options from the YAML file at path and builds a Store.
func Open(path string) (*Store, error) {
	opts, err := types.LoadOptions(path)
	if err != nil {
		return nil, err
	}
	return New(opts)
}

func newRegion(opts types.Options) (alloc.Region, error) {
	size := opts.InitialPages * format.PageSize
	if opts.Region == types.RegionMmap {
		return alloc.NewMmapRegion(size)
	}
	return alloc.NewHeapRegion(size), nil
}
