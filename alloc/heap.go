package alloc

import "github.com/joshuapare/slist/internal/format"

// Heap gives every cell its own Go slice. Refs index a handle table and
// released handles are recycled, most recent first.
type Heap struct {
	cells   [][]byte
	classes []Class
	spare   []CellRef
	stats   counters
}

// NewHeap returns an empty heap allocator.
func NewHeap() *Heap {
	return &Heap{}
}

func (h *Heap) Alloc(need int32, cls Class) (CellRef, []byte, error) {
	need, err := normalizeNeed(need)
	if err != nil {
		return 0, nil, err
	}

	cell := make([]byte, need)
	format.MarkAllocated(cell, 0, need)

	var ref CellRef
	if n := len(h.spare); n > 0 {
		ref = h.spare[n-1]
		h.spare = h.spare[:n-1]
		h.cells[ref] = cell
		h.classes[ref] = cls
	} else {
		if uint64(len(h.cells)) >= uint64(NilRef) {
			return 0, nil, ErrNoSpace
		}
		ref = CellRef(len(h.cells))
		h.cells = append(h.cells, cell)
		h.classes = append(h.classes, cls)
	}

	h.stats.alloc(cls, need)
	traceAlloc("heap", ref, need, cls)
	return ref, cell[format.CellHeaderSize:], nil
}

func (h *Heap) Free(ref CellRef) error {
	if uint64(ref) >= uint64(len(h.cells)) {
		return ErrBadRef
	}
	cell := h.cells[ref]
	if cell == nil {
		return ErrDoubleFree
	}
	size := int32(len(cell))
	cls := h.classes[ref]

	h.cells[ref] = nil
	h.classes[ref] = ClassUnknown
	h.spare = append(h.spare, ref)

	h.stats.free(cls, size)
	traceFree("heap", ref, size, cls)
	return nil
}

func (h *Heap) Bytes(ref CellRef) ([]byte, error) {
	if uint64(ref) >= uint64(len(h.cells)) || h.cells[ref] == nil {
		return nil, ErrBadRef
	}
	return h.cells[ref][format.CellHeaderSize:], nil
}

// Stats returns a snapshot of heap bookkeeping.
func (h *Heap) Stats() Stats {
	return h.stats.snapshot()
}
