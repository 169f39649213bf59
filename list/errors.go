package list

import (
	"errors"

	"github.com/joshuapare/slist/alloc"
)

var (
	// ErrNilList indicates an operation on an absent or deleted list.
	ErrNilList = errors.New("list: nil list")

	// ErrNilCursor indicates an operation on an absent cursor.
	ErrNilCursor = errors.New("list: nil cursor")

	// ErrNilAllocator indicates New was called without an allocator.
	ErrNilAllocator = errors.New("list: nil allocator")

	// ErrOutOfRange indicates an index past the end of the list.
	ErrOutOfRange = errors.New("list: index out of range")

	// ErrNotFound indicates Find walked the whole list without a match.
	ErrNotFound = errors.New("list: value not found")

	// ErrListFull indicates an insert would exceed the configured node limit.
	ErrListFull = errors.New("list: node limit reached")

	// ErrStaleCursor indicates the list changed shape after the cursor was created.
	ErrStaleCursor = errors.New("list: cursor invalidated by structural change")

	// ErrCursorReleased indicates use of a cursor after Release.
	ErrCursorReleased = errors.New("list: cursor released")

	// ErrCorrupt indicates a record that does not decode as expected.
	ErrCorrupt = errors.New("list: corrupt record")
)

// Slot errors are the allocator's, re-exported so callers of this package can
// match them without importing alloc.
var (
	ErrAllocUnset = alloc.ErrAllocUnset
	ErrFreeUnset  = alloc.ErrFreeUnset
)
