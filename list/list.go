package list

import (
	"fmt"

	"github.com/joshuapare/slist/alloc"
	"github.com/joshuapare/slist/internal/format"
)

var (
	headerCellSize = format.CellSize(format.HeaderPayloadSize)
	nodeCellSize   = format.CellSize(format.NodePayloadSize)
	cursorCellSize = format.CellSize(format.CursorPayloadSize)
)

// List is a singly linked list of uint32 values stored in allocator cells.
// The length is not cached; Size walks the chain.
type List struct {
	a   alloc.Allocator
	hdr alloc.CellRef

	// gen increments on every structural change. Cursors compare against it.
	gen uint64

	maxNodes int
	deleted  bool
}

// Option configures a List.
type Option func(*List)

// WithMaxNodes bounds the number of nodes. Inserts beyond it fail with
// ErrListFull before allocating. Zero means unbounded.
func WithMaxNodes(n int) Option {
	return func(l *List) {
		if n > 0 {
			l.maxNodes = n
		}
	}
}

// New allocates an empty list from a. The allocator is kept for the lifetime
// of the list.
func New(a alloc.Allocator, opts ...Option) (*List, error) {
	if a == nil {
		return nil, ErrNilAllocator
	}
	if !alloc.CanAlloc(a) {
		return nil, ErrAllocUnset
	}
	ref, payload, err := a.Alloc(headerCellSize, alloc.ClassList)
	if err != nil {
		return nil, fmt.Errorf("list: allocate header: %w", err)
	}
	if len(payload) < format.HeaderPayloadSize {
		if alloc.CanFree(a) {
			_ = a.Free(ref)
		}
		return nil, fmt.Errorf("list: header cell too small (%d bytes): %w", len(payload), ErrCorrupt)
	}
	format.HeaderRecord(payload).Init()

	l := &List{a: a, hdr: ref}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Delete releases every node and then the header. The list is unusable
// afterwards and outstanding cursors become stale. If a release fails the
// walk goes on and the first error is returned.
func (l *List) Delete() error {
	if !l.usable() {
		return ErrNilList
	}
	if !alloc.CanFree(l.a) {
		return ErrFreeUnset
	}

	var first error
	cur, err := l.load(l.headSlot())
	if err != nil {
		return err
	}
	for cur != format.NilRef {
		n, err := l.node(cur)
		if err != nil {
			first = err
			break
		}
		next := n.Next()
		if err := l.a.Free(cur); err != nil && first == nil {
			first = fmt.Errorf("list: release node 0x%X: %w", cur, err)
		}
		cur = next
	}
	if err := l.a.Free(l.hdr); err != nil && first == nil {
		first = fmt.Errorf("list: release header: %w", err)
	}

	l.deleted = true
	l.hdr = format.NilRef
	l.gen++
	return first
}

// Size returns the number of nodes.
func (l *List) Size() (int, error) {
	if !l.usable() {
		return 0, ErrNilList
	}
	n := 0
	err := l.walk(func(int, alloc.CellRef, format.NodeRecord) bool {
		n++
		return true
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Find returns the index of the first node holding v.
func (l *List) Find(v uint32) (int, error) {
	if !l.usable() {
		return 0, ErrNilList
	}
	at := -1
	err := l.walk(func(i int, _ alloc.CellRef, n format.NodeRecord) bool {
		if n.Value() == v {
			at = i
			return false
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	if at < 0 {
		return 0, ErrNotFound
	}
	return at, nil
}

// Get returns the value at index.
func (l *List) Get(index int) (uint32, error) {
	if !l.usable() {
		return 0, ErrNilList
	}
	if index < 0 {
		return 0, ErrOutOfRange
	}
	var v uint32
	found := false
	err := l.walk(func(i int, _ alloc.CellRef, n format.NodeRecord) bool {
		if i == index {
			v, found = n.Value(), true
			return false
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrOutOfRange
	}
	return v, nil
}

// InsertFront prepends v. O(1).
func (l *List) InsertFront(v uint32) error {
	if err := l.checkInsert(false); err != nil {
		return err
	}
	ref, err := l.newNode(v)
	if err != nil {
		return err
	}
	return l.splice(l.headSlot(), ref)
}

// InsertEnd appends v. O(n).
func (l *List) InsertEnd(v uint32) error {
	if err := l.checkInsert(false); err != nil {
		return err
	}
	ref, err := l.newNode(v)
	if err != nil {
		return err
	}
	s, _, err := l.seek(-1)
	if err != nil {
		l.discard(ref)
		return err
	}
	return l.splice(s, ref)
}

// InsertAt inserts v so that it ends up at index. index 0 prepends and
// index == Size appends; anything larger fails with ErrOutOfRange and leaves
// the list untouched.
func (l *List) InsertAt(index int, v uint32) error {
	if err := l.checkInsert(true); err != nil {
		return err
	}
	if index < 0 {
		return ErrOutOfRange
	}

	// The node is allocated before the walk; an out-of-range index gives it back.
	ref, err := l.newNode(v)
	if err != nil {
		return err
	}
	s, walked, err := l.seek(index)
	if err != nil {
		l.discard(ref)
		return err
	}
	if walked != index {
		l.discard(ref)
		return ErrOutOfRange
	}
	return l.splice(s, ref)
}

// RemoveAt unlinks and releases the node at index.
func (l *List) RemoveAt(index int) error {
	if !l.usable() {
		return ErrNilList
	}
	if !alloc.CanFree(l.a) {
		return ErrFreeUnset
	}
	if index < 0 {
		return ErrOutOfRange
	}

	s, walked, err := l.seek(index)
	if err != nil {
		return err
	}
	target, err := l.load(s)
	if err != nil {
		return err
	}
	if walked != index || target == format.NilRef {
		return ErrOutOfRange
	}

	n, err := l.node(target)
	if err != nil {
		return err
	}
	if err := l.store(s, n.Next()); err != nil {
		return err
	}
	l.gen++
	if err := l.a.Free(target); err != nil {
		return fmt.Errorf("list: release node 0x%X: %w", target, err)
	}
	return nil
}

// Generation returns the structural change counter.
func (l *List) Generation() uint64 {
	if l == nil {
		return 0
	}
	return l.gen
}

// Allocator returns the allocator the list draws from.
func (l *List) Allocator() alloc.Allocator {
	if l == nil {
		return nil
	}
	return l.a
}

func (l *List) usable() bool {
	return l != nil && !l.deleted
}

// checkInsert validates the preconditions shared by all inserts. InsertAt
// also needs the release slot, since it may have to give its node back.
func (l *List) checkInsert(needFree bool) error {
	if !l.usable() {
		return ErrNilList
	}
	if !alloc.CanAlloc(l.a) {
		return ErrAllocUnset
	}
	if needFree && !alloc.CanFree(l.a) {
		return ErrFreeUnset
	}
	if l.maxNodes > 0 {
		n, err := l.Size()
		if err != nil {
			return err
		}
		if n >= l.maxNodes {
			return ErrListFull
		}
	}
	return nil
}
