package format

import (
	"errors"
	"fmt"
)

// Cell is a decoded cell header plus a view of its payload.
type Cell struct {
	Offset int    // Offset of the header inside the region
	Size   int    // Total size including header
	Free   bool   // True when the header carries a positive size
	Data   []byte // Payload bytes (alias of the region)
}

// ParseCell decodes the cell whose header starts at off within b.
func ParseCell(b []byte, off int) (Cell, error) {
	if off < 0 || off+CellHeaderSize > len(b) {
		return Cell{}, fmt.Errorf("cell: %w", ErrTruncated)
	}
	raw := ReadI32(b, off)
	if raw == 0 {
		return Cell{}, errors.New("cell: zero length")
	}
	size := int(raw)
	allocated := raw < 0
	if allocated {
		size = -size
	}
	if size < MinCellSize || size&CellAlignmentMask != 0 {
		return Cell{}, fmt.Errorf("cell: bad size %d", size)
	}
	if off+size > len(b) {
		return Cell{}, fmt.Errorf("cell: %w", ErrTruncated)
	}
	return Cell{
		Offset: off,
		Size:   size,
		Free:   !allocated,
		Data:   b[off+CellHeaderSize : off+size],
	}, nil
}

// MarkAllocated writes an allocated header of size bytes at off.
func MarkAllocated(b []byte, off int, size int32) {
	PutI32(b, off, -size)
}

// MarkFree writes a free header of size bytes at off.
func MarkFree(b []byte, off int, size int32) {
	PutI32(b, off, size)
}
