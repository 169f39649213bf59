// Package list implements a singly linked list of uint32 values whose header,
// nodes and cursors all live in memory drawn from a caller-supplied
// allocator.
//
// # Overview
//
// A List is created over an alloc.Allocator, usually an *alloc.Binding with
// its allocate and release routines registered. Nodes are cells linked by
// alloc.CellRef handles rather than Go pointers, so the allocator is free to
// move its memory.
//
//	arena, _ := alloc.NewArena(alloc.NewHeapRegion(0))
//	l, err := list.New(alloc.Bind(arena))
//	if err != nil {
//	    return err
//	}
//	defer l.Delete()
//
//	_ = l.InsertFront(5)
//	_ = l.InsertEnd(7)
//	_ = l.InsertAt(1, 6) // 5 6 7
//
// # Slot Walking
//
// Insert and remove walk a reference to the link that owns the target
// position (the header's head field, or the next field of the previous node)
// instead of a reference to the node. Position 0 and interior positions are
// handled by the same code.
//
// # Cursors
//
// Iterator positions a Cursor on an index; Next moves it forward and reports
// false once the cursor sits on the last node. The list keeps a generation
// counter that every insert, remove and Delete bumps; a cursor created before
// such a change reports ErrStaleCursor instead of following links that may
// have been released.
//
// # Errors
//
// No operation panics. Every failure returns an error and leaves the list
// as it was: an insert whose index turns out to be out of range releases the
// node it allocated before returning.
//
// # Thread Safety
//
// Lists and cursors are not safe for concurrent use.
package list
