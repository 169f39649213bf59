package list

import (
	"fmt"

	"github.com/joshuapare/slist/alloc"
	"github.com/joshuapare/slist/internal/format"
)

// Cursor is a forward position in a List. Its state (owning list, current
// node, index and a copy of the value) lives in a cell from the list's
// allocator. A cursor does not own the node it points at.
type Cursor struct {
	l        *List
	ref      alloc.CellRef
	gen      uint64
	released bool
}

// Iterator returns a cursor positioned on index. Both allocator slots are
// required: the cursor cell is allocated first and released again if index
// has no node.
func (l *List) Iterator(index int) (*Cursor, error) {
	if !l.usable() {
		return nil, ErrNilList
	}
	if !alloc.CanAlloc(l.a) {
		return nil, ErrAllocUnset
	}
	if !alloc.CanFree(l.a) {
		return nil, ErrFreeUnset
	}
	if index < 0 {
		return nil, ErrOutOfRange
	}

	ref, _, err := l.a.Alloc(cursorCellSize, alloc.ClassCursor)
	if err != nil {
		return nil, fmt.Errorf("list: allocate cursor: %w", err)
	}

	var (
		node  alloc.CellRef
		value uint32
		found bool
	)
	err = l.walk(func(i int, cur alloc.CellRef, n format.NodeRecord) bool {
		if i == index {
			node, value, found = cur, n.Value(), true
			return false
		}
		return true
	})
	if err == nil && !found {
		err = ErrOutOfRange
	}
	if err != nil {
		_ = l.a.Free(ref)
		return nil, err
	}

	rec, err := l.resolve(ref, format.CursorPayloadSize)
	if err != nil {
		_ = l.a.Free(ref)
		return nil, err
	}
	format.CursorRecord(rec).Init(l.hdr, node, uint64(index), value)

	return &Cursor{l: l, ref: ref, gen: l.gen}, nil
}

// Next moves the cursor to the following node and refreshes the cached
// value. It returns false, leaving the cursor where it is, when there is no
// following node.
func (c *Cursor) Next() (bool, error) {
	if c == nil {
		return false, nil
	}
	rec, err := c.record()
	if err != nil {
		return false, err
	}
	cur := rec.Node()
	if cur == format.NilRef {
		return false, nil
	}
	n, err := c.l.node(cur)
	if err != nil {
		return false, err
	}
	next := n.Next()
	if next == format.NilRef {
		return false, nil
	}
	nn, err := c.l.node(next)
	if err != nil {
		return false, err
	}
	rec.SetNode(next)
	rec.SetIndex(rec.Index() + 1)
	rec.SetValue(nn.Value())
	return true, nil
}

// Index returns the zero-based position of the cursor.
func (c *Cursor) Index() (int, error) {
	rec, err := c.record()
	if err != nil {
		return 0, err
	}
	return int(rec.Index()), nil
}

// Value returns the value cached when the cursor last moved.
func (c *Cursor) Value() (uint32, error) {
	rec, err := c.record()
	if err != nil {
		return 0, err
	}
	return rec.Value(), nil
}

// Release frees the cursor cell. The cursor is unusable afterwards. Release
// works on stale cursors too, including after the list was deleted.
func (c *Cursor) Release() error {
	if c == nil {
		return ErrNilCursor
	}
	if c.released {
		return ErrCursorReleased
	}
	if !alloc.CanFree(c.l.a) {
		return ErrFreeUnset
	}
	if err := c.l.a.Free(c.ref); err != nil {
		return fmt.Errorf("list: release cursor: %w", err)
	}
	c.released = true
	return nil
}

// record resolves the cursor cell after checking the cursor is still live.
func (c *Cursor) record() (format.CursorRecord, error) {
	if c == nil {
		return nil, ErrNilCursor
	}
	if c.released {
		return nil, ErrCursorReleased
	}
	if !c.l.usable() || c.gen != c.l.gen {
		return nil, ErrStaleCursor
	}
	b, err := c.l.resolve(c.ref, format.CursorPayloadSize)
	if err != nil {
		return nil, err
	}
	rec := format.CursorRecord(b)
	if !rec.Valid() || rec.List() != c.l.hdr {
		return nil, fmt.Errorf("list: cursor 0x%X: %w", c.ref, ErrCorrupt)
	}
	return rec, nil
}
