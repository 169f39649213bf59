// Package format defines the byte layout of everything slist keeps inside
// allocator cells: the cell header itself plus the list header, node and
// cursor records stored in cell payloads. Higher-level packages only talk to
// memory through these accessors, so the layout lives in one place.
package format

const (
	// CellHeaderSize is the size of the signed length prefix of every cell.
	// Layout (little-endian):
	//
	//	Offset  Size  Description
	//	0x00    4     Signed size. Negative => allocated, positive => free.
	//	              The absolute value includes the 4-byte header.
	//	0x04    ...   Payload.
	CellHeaderSize = 4

	// CellAlignment is the alignment every cell size is rounded up to.
	CellAlignment = 8

	// CellAlignmentMask is CellAlignment-1, used for round-up arithmetic.
	CellAlignmentMask = CellAlignment - 1

	// MinCellSize is the smallest cell an allocator will hand out or keep
	// as a free remainder after a split.
	MinCellSize = 8

	// PageSize is the growth granule of arena regions.
	PageSize = 4096

	// PageAlignmentMask is PageSize-1.
	PageAlignmentMask = PageSize - 1
)

// NilRef marks an empty link: the head of an empty list or the next field of
// the last node.
const NilRef uint32 = 0xFFFFFFFF

// List header record.
//
//	Offset  Size  Description
//	0x00    4     CellRef of the first node, or NilRef
//	0x04    4     Signature "slst"
const (
	HeaderHeadOffset      = 0x00
	HeaderSignatureOffset = 0x04
	HeaderPayloadSize     = 0x08
)

// Node record.
//
//	Offset  Size  Description
//	0x00    4     Value (uint32)
//	0x04    4     CellRef of the next node, or NilRef
const (
	NodeValueOffset = 0x00
	NodeNextOffset  = 0x04
	NodePayloadSize = 0x08
)

// Cursor record.
//
//	Offset  Size  Description
//	0x00    4     CellRef of the owning list header
//	0x04    4     CellRef of the current node
//	0x08    8     Zero-based index of the current node
//	0x10    4     Cached value of the current node
//	0x14    4     Signature "scur"
const (
	CursorListOffset      = 0x00
	CursorNodeOffset      = 0x04
	CursorIndexOffset     = 0x08
	CursorValueOffset     = 0x10
	CursorSignatureOffset = 0x14
	CursorPayloadSize     = 0x18
)

var (
	// HeaderSignature tags a list header payload.
	HeaderSignature = []byte{'s', 'l', 's', 't'}

	// CursorSignature tags a cursor payload.
	CursorSignature = []byte{'s', 'c', 'u', 'r'}
)
