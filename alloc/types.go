package alloc

import "github.com/joshuapare/slist/internal/format"

// CellRef is a handle to an allocated cell. For arenas it is the offset of the
// cell header inside the region.
type CellRef = uint32

// NilRef is never returned by Alloc and marks an absent link.
const NilRef CellRef = format.NilRef

// Class tags what a cell holds. It only feeds statistics and tracing.
type Class uint8

const (
	ClassUnknown Class = 0
	ClassList    Class = 1 // list header
	ClassNode    Class = 2 // list node
	ClassCursor  Class = 3 // iterator state

	classCount = 4
)

func (c Class) String() string {
	switch c {
	case ClassList:
		return "list"
	case ClassNode:
		return "node"
	case ClassCursor:
		return "cursor"
	default:
		return "unknown"
	}
}

// Resolver maps a live cell to its payload.
type Resolver interface {
	// Bytes returns the payload of the cell at ref. The slice aliases
	// allocator memory and is only valid until the next Alloc.
	Bytes(ref CellRef) ([]byte, error)
}

// Allocator hands out and reclaims cells.
//
// Implementations:
//   - Arena: region-backed allocator with best-fit reuse
//   - Heap: one Go slice per cell
//   - Limited: live-cell budget wrapper
//   - Binding: two registrable slots over any of the above
type Allocator interface {
	Resolver

	// Alloc allocates a cell of need bytes including the 4-byte header.
	// Returns the cell reference, a zeroed payload slice and any error.
	Alloc(need int32, cls Class) (CellRef, []byte, error)

	// Free releases the cell at ref.
	Free(ref CellRef) error
}

// SlotReporter is implemented by allocators whose allocate or release
// capability can be absent.
type SlotReporter interface {
	CanAlloc() bool
	CanFree() bool
}

// CanAlloc reports whether a can currently allocate.
func CanAlloc(a Allocator) bool {
	if a == nil {
		return false
	}
	if sr, ok := a.(SlotReporter); ok {
		return sr.CanAlloc()
	}
	return true
}

// CanFree reports whether a can currently release.
func CanFree(a Allocator) bool {
	if a == nil {
		return false
	}
	if sr, ok := a.(SlotReporter); ok {
		return sr.CanFree()
	}
	return true
}

// normalizeNeed validates a requested cell size and rounds it to the cell
// alignment.
func normalizeNeed(need int32) (int32, error) {
	if need < format.CellHeaderSize {
		return 0, ErrNeedSmall
	}
	if need > maxCellSize {
		return 0, ErrNoSpace
	}
	need = format.Align8I32(need)
	if need < format.MinCellSize {
		need = format.MinCellSize
	}
	return need, nil
}

// maxCellSize keeps offsets plus sizes representable as int32.
const maxCellSize = 1 << 30
