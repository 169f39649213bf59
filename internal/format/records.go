package format

import "bytes"

// HeaderRecord is a view over a list header payload.
type HeaderRecord []byte

// Head returns the CellRef of the first node.
func (h HeaderRecord) Head() uint32 { return ReadU32(h, HeaderHeadOffset) }

// SetHead points the header at ref.
func (h HeaderRecord) SetHead(ref uint32) { PutU32(h, HeaderHeadOffset, ref) }

// Init writes an empty header.
func (h HeaderRecord) Init() {
	h.SetHead(NilRef)
	copy(h[HeaderSignatureOffset:], HeaderSignature)
}

// Valid reports whether the payload is large enough and carries the signature.
func (h HeaderRecord) Valid() bool {
	return len(h) >= HeaderPayloadSize &&
		bytes.Equal(h[HeaderSignatureOffset:HeaderSignatureOffset+4], HeaderSignature)
}

// NodeRecord is a view over a node payload.
type NodeRecord []byte

func (n NodeRecord) Value() uint32 { return ReadU32(n, NodeValueOffset) }
func (n NodeRecord) SetValue(v uint32) { PutU32(n, NodeValueOffset, v) }
func (n NodeRecord) Next() uint32 { return ReadU32(n, NodeNextOffset) }
func (n NodeRecord) SetNext(ref uint32) { PutU32(n, NodeNextOffset, ref) }

// Valid reports whether the payload can hold a node.
func (n NodeRecord) Valid() bool { return len(n) >= NodePayloadSize }

// CursorRecord is a view over a cursor payload.
type CursorRecord []byte

func (c CursorRecord) List() uint32 { return ReadU32(c, CursorListOffset) }
func (c CursorRecord) Node() uint32 { return ReadU32(c, CursorNodeOffset) }
func (c CursorRecord) Index() uint64 { return ReadU64(c, CursorIndexOffset) }
func (c CursorRecord) Value() uint32 { return ReadU32(c, CursorValueOffset) }
func (c CursorRecord) SetNode(ref uint32) { PutU32(c, CursorNodeOffset, ref) }
func (c CursorRecord) SetIndex(i uint64) { PutU64(c, CursorIndexOffset, i) }
func (c CursorRecord) SetValue(v uint32) { PutU32(c, CursorValueOffset, v) }

// Init binds the cursor to a list header and positions it.
func (c CursorRecord) Init(list, node uint32, index uint64, value uint32) {
	PutU32(c, CursorListOffset, list)
	c.SetNode(node)
	c.SetIndex(index)
	c.SetValue(value)
	copy(c[CursorSignatureOffset:], CursorSignature)
}

// Valid reports whether the payload is large enough and carries the signature.
func (c CursorRecord) Valid() bool {
	return len(c) >= CursorPayloadSize &&
		bytes.Equal(c[CursorSignatureOffset:CursorSignatureOffset+4], CursorSignature)
}
