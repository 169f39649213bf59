package alloc

import (
	"fmt"
	"math"

	"github.com/duke-git/lancet/v2/mathutil"
	"github.com/google/btree"

	"github.com/joshuapare/slist/internal/format"
)

const (
	// freeIndexDegree is the B-tree degree of the free-cell index.
	freeIndexDegree = 16

	// DefaultGrowPages is the minimum number of pages added per growth.
	DefaultGrowPages = 1

	// maxArenaBytes keeps every offset below NilRef and representable as int32.
	maxArenaBytes = math.MaxInt32 - format.PageSize
)

// freeCell is an entry of the free index, ordered by size then offset so that
// the first entry >= a request is the best fit with the lowest address.
type freeCell struct {
	size int32
	off  int32
}

func freeLess(a, b freeCell) bool {
	if a.size != b.size {
		return a.size < b.size
	}
	return a.off < b.off
}

// Arena carves cells out of a single Region.
//
// Cells tile the range [0, end) without gaps. New cells come from a free cell
// when one is large enough (best fit), otherwise from the bump pointer at end.
// The region grows by whole pages when the bump pointer runs out of room.
type Arena struct {
	r Region

	// end is the bump pointer: the offset of the first byte never handed out.
	end int32

	growPages int
	maxBytes  int

	free  *btree.BTreeG[freeCell]
	live  map[CellRef]Class
	stats counters
}

// ArenaOption configures an Arena.
type ArenaOption func(*Arena)

// WithGrowPages sets the minimum number of pages added when the region grows.
func WithGrowPages(n int) ArenaOption {
	return func(a *Arena) {
		if n > 0 {
			a.growPages = n
		}
	}
}

// WithMaxBytes caps the region size. Allocations that would need a larger
// region fail with ErrNoSpace.
func WithMaxBytes(n int) ArenaOption {
	return func(a *Arena) {
		if n > 0 && n < a.maxBytes {
			a.maxBytes = n
		}
	}
}

// NewArena creates an arena over r. Existing region contents are ignored;
// the first allocation starts at offset 0.
func NewArena(r Region, opts ...ArenaOption) (*Arena, error) {
	if r == nil {
		return nil, ErrNilRegion
	}
	a := &Arena{
		r:         r,
		growPages: DefaultGrowPages,
		maxBytes:  maxArenaBytes,
		free:      btree.NewG[freeCell](freeIndexDegree, freeLess),
		live:      make(map[CellRef]Class),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Alloc allocates a cell of at least need bytes (header included).
func (a *Arena) Alloc(need int32, cls Class) (CellRef, []byte, error) {
	need, err := normalizeNeed(need)
	if err != nil {
		return 0, nil, err
	}

	off, size, ok := a.takeFree(need)
	if !ok {
		off, err = a.bump(need)
		if err != nil {
			return 0, nil, err
		}
		size = need
	}

	data := a.r.Bytes()
	format.MarkAllocated(data, int(off), size)
	payload := data[off+format.CellHeaderSize : off+size]
	clear(payload)

	ref := CellRef(off)
	a.live[ref] = cls
	a.stats.alloc(cls, size)
	traceAlloc("arena", ref, size, cls)

	return ref, payload, nil
}

// takeFree removes the best-fitting free cell from the index, splitting off
// the remainder when it can stand as a cell of its own.
func (a *Arena) takeFree(need int32) (int32, int32, bool) {
	var hit freeCell
	found := false
	a.free.AscendGreaterOrEqual(freeCell{size: need}, func(c freeCell) bool {
		hit = c
		found = true
		return false
	})
	if !found {
		return 0, 0, false
	}
	a.free.Delete(hit)

	size := hit.size
	if rem := hit.size - need; rem >= format.MinCellSize {
		tail := hit.off + need
		format.MarkFree(a.r.Bytes(), int(tail), rem)
		a.free.ReplaceOrInsert(freeCell{size: rem, off: tail})
		size = need
	}
	return hit.off, size, true
}

func (a *Arena) bump(need int32) (int32, error) {
	if int(a.end)+int(need) > len(a.r.Bytes()) {
		if err := a.grow(int(a.end) + int(need)); err != nil {
			return 0, err
		}
	}
	off := a.end
	a.end += need
	return off, nil
}

// grow extends the region so that it holds at least want bytes.
func (a *Arena) grow(want int) error {
	have := len(a.r.Bytes())
	minPages := format.AlignPage(want-have) / format.PageSize
	pages := mathutil.Max(a.growPages, minPages)
	if have+pages*format.PageSize > a.maxBytes {
		pages = minPages
	}
	if have+pages*format.PageSize > a.maxBytes {
		tracer.WithField("want", want).WithField("max", a.maxBytes).Warn("arena: size cap reached")
		return ErrNoSpace
	}
	if err := a.r.Grow(pages * format.PageSize); err != nil {
		tracer.WithError(err).WithField("pages", pages).Warn("arena: region grow failed")
		return fmt.Errorf("%w: %w", ErrGrowFail, err)
	}
	if traceEnabled() {
		tracer.WithField("pages", pages).WithField("bytes", len(a.r.Bytes())).Debug("arena: grew")
	}
	return nil
}

// Free releases the cell at ref. A free cell directly following it is absorbed,
// and a cell ending at the bump pointer gives its space back to the bump range.
func (a *Arena) Free(ref CellRef) error {
	data := a.r.Bytes()
	cls, ok := a.live[ref]
	if !ok {
		return a.badRef(data, ref)
	}

	off := int32(ref)
	size := -format.ReadI32(data, int(off))
	delete(a.live, ref)
	a.stats.free(cls, size)
	traceFree("arena", ref, size, cls)

	if next := off + size; next < a.end {
		if ns := format.ReadI32(data, int(next)); ns > 0 {
			a.free.Delete(freeCell{size: ns, off: next})
			size += ns
		}
	}

	format.MarkFree(data, int(off), size)
	if off+size == a.end {
		a.end = off
		return nil
	}
	a.free.ReplaceOrInsert(freeCell{size: size, off: off})
	return nil
}

// badRef classifies a release of something that is not a live cell.
func (a *Arena) badRef(data []byte, ref CellRef) error {
	off := int(ref)
	if ref != NilRef && off%format.CellAlignment == 0 &&
		off+format.CellHeaderSize <= len(data) && format.ReadI32(data, off) > 0 {
		return ErrDoubleFree
	}
	return ErrBadRef
}

// Bytes resolves a live cell to its payload.
func (a *Arena) Bytes(ref CellRef) ([]byte, error) {
	if _, ok := a.live[ref]; !ok {
		return nil, ErrBadRef
	}
	data := a.r.Bytes()
	off := int(ref)
	size := int(-format.ReadI32(data, off))
	return data[off+format.CellHeaderSize : off+size], nil
}

// Class returns the class a live cell was allocated with.
func (a *Arena) Class(ref CellRef) (Class, bool) {
	cls, ok := a.live[ref]
	return cls, ok
}

// Walk calls fn for every cell in address order until fn returns false.
func (a *Arena) Walk(fn func(c format.Cell) bool) error {
	data := a.r.Bytes()
	for off := 0; off < int(a.end); {
		c, err := format.ParseCell(data[:a.end], off)
		if err != nil {
			return fmt.Errorf("arena walk at 0x%X: %w", off, err)
		}
		if !fn(c) {
			return nil
		}
		off += c.Size
	}
	return nil
}

// Used returns the size of the range covered by cells.
func (a *Arena) Used() int { return int(a.end) }

// Stats returns a snapshot of arena bookkeeping.
func (a *Arena) Stats() Stats {
	s := a.stats.snapshot()
	a.free.Ascend(func(c freeCell) bool {
		s.FreeCells++
		s.FreeBytes += int64(c.size)
		return true
	})
	s.RegionBytes = len(a.r.Bytes())
	return s
}

// Close releases the backing region. Outstanding refs become invalid.
func (a *Arena) Close() error {
	a.live = make(map[CellRef]Class)
	a.free.Clear(false)
	a.end = 0
	return a.r.Close()
}
