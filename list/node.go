package list

import (
	"fmt"

	"github.com/joshuapare/slist/alloc"
	"github.com/joshuapare/slist/internal/format"
)

// slot addresses a link field: the head field of the list header or the
// next field of a node. Walking slots instead of nodes lets insert and
// remove treat position 0 like any other position.
type slot struct {
	cell alloc.CellRef
	off  int
}

func (l *List) headSlot() slot {
	return slot{cell: l.hdr, off: format.HeaderHeadOffset}
}

func nextSlot(ref alloc.CellRef) slot {
	return slot{cell: ref, off: format.NodeNextOffset}
}

// load reads the ref stored in s.
func (l *List) load(s slot) (alloc.CellRef, error) {
	b, err := l.resolve(s.cell, s.off+4)
	if err != nil {
		return 0, err
	}
	return format.ReadU32(b, s.off), nil
}

// store writes ref into s.
func (l *List) store(s slot, ref alloc.CellRef) error {
	b, err := l.resolve(s.cell, s.off+4)
	if err != nil {
		return err
	}
	format.PutU32(b, s.off, ref)
	return nil
}

// seek walks slots from the head while a node exists and fewer than index
// nodes have been passed. It returns the slot it stopped at and the number of
// nodes walked. A negative index walks to the terminal link.
func (l *List) seek(index int) (slot, int, error) {
	s := l.headSlot()
	walked := 0
	for index < 0 || walked < index {
		ref, err := l.load(s)
		if err != nil {
			return slot{}, 0, err
		}
		if ref == format.NilRef {
			break
		}
		s = nextSlot(ref)
		walked++
	}
	return s, walked, nil
}

// splice links the detached node ref into s, taking over what s pointed at.
func (l *List) splice(s slot, ref alloc.CellRef) error {
	old, err := l.load(s)
	if err != nil {
		l.discard(ref)
		return err
	}
	n, err := l.node(ref)
	if err != nil {
		return err
	}
	n.SetNext(old)
	if err := l.store(s, ref); err != nil {
		l.discard(ref)
		return err
	}
	l.gen++
	return nil
}

// walk visits nodes in order until fn returns false.
func (l *List) walk(fn func(i int, ref alloc.CellRef, n format.NodeRecord) bool) error {
	cur, err := l.load(l.headSlot())
	if err != nil {
		return err
	}
	for i := 0; cur != format.NilRef; i++ {
		n, err := l.node(cur)
		if err != nil {
			return err
		}
		if !fn(i, cur, n) {
			return nil
		}
		cur = n.Next()
	}
	return nil
}

// newNode allocates a detached node holding v.
func (l *List) newNode(v uint32) (alloc.CellRef, error) {
	ref, payload, err := l.a.Alloc(nodeCellSize, alloc.ClassNode)
	if err != nil {
		return 0, fmt.Errorf("list: allocate node: %w", err)
	}
	if len(payload) < format.NodePayloadSize {
		l.discard(ref)
		return 0, fmt.Errorf("list: node cell too small (%d bytes): %w", len(payload), ErrCorrupt)
	}
	n := format.NodeRecord(payload)
	n.SetValue(v)
	n.SetNext(format.NilRef)
	return ref, nil
}

// discard releases a node that never became reachable.
func (l *List) discard(ref alloc.CellRef) {
	if alloc.CanFree(l.a) {
		_ = l.a.Free(ref)
	}
}

func (l *List) node(ref alloc.CellRef) (format.NodeRecord, error) {
	b, err := l.resolve(ref, format.NodePayloadSize)
	if err != nil {
		return nil, err
	}
	return format.NodeRecord(b), nil
}

// resolve returns the payload of ref, checking it holds at least need bytes.
func (l *List) resolve(ref alloc.CellRef, need int) ([]byte, error) {
	b, err := l.a.Bytes(ref)
	if err != nil {
		return nil, fmt.Errorf("list: resolve 0x%X: %w", ref, err)
	}
	if len(b) < need {
		return nil, fmt.Errorf("list: cell 0x%X holds %d bytes, need %d: %w", ref, len(b), need, ErrCorrupt)
	}
	return b, nil
}
