package alloc

// Limited wraps an Allocator and refuses allocations once MaxLive cells are
// live. Frees pass straight through.
type Limited struct {
	a       Allocator
	maxLive int
	live    int
}

// NewLimited wraps a with a budget of maxLive simultaneously live cells.
// A non-positive budget refuses every allocation.
func NewLimited(a Allocator, maxLive int) *Limited {
	return &Limited{a: a, maxLive: maxLive}
}

func (l *Limited) Alloc(need int32, cls Class) (CellRef, []byte, error) {
	if l.live >= l.maxLive {
		return 0, nil, ErrNoSpace
	}
	ref, buf, err := l.a.Alloc(need, cls)
	if err != nil {
		return 0, nil, err
	}
	l.live++
	return ref, buf, nil
}

func (l *Limited) Free(ref CellRef) error {
	if err := l.a.Free(ref); err != nil {
		return err
	}
	l.live--
	return nil
}

func (l *Limited) Bytes(ref CellRef) ([]byte, error) {
	return l.a.Bytes(ref)
}

// CanAlloc and CanFree forward the slot state of the wrapped allocator.
func (l *Limited) CanAlloc() bool { return CanAlloc(l.a) }
func (l *Limited) CanFree() bool { return CanFree(l.a) }

// Live returns the number of cells allocated through l and not yet freed.
func (l *Limited) Live() int { return l.live }

// SetMax changes the live-cell budget. Lowering it below Live does not free
// anything; it only blocks further allocations.
func (l *Limited) SetMax(maxLive int) { l.maxLive = maxLive }
