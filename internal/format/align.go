package format

// Align8I32 returns n rounded up to the next 8-byte boundary.
//
//	Align8I32(1)  = 8
//	Align8I32(8)  = 8
//	Align8I32(12) = 16
func Align8I32(n int32) int32 {
	return (n + CellAlignmentMask) & ^int32(CellAlignmentMask)
}

// AlignPage returns n rounded up to the next PageSize boundary.
//
//	AlignPage(1)    = 4096
//	AlignPage(4096) = 4096
//	AlignPage(4097) = 8192
func AlignPage(n int) int {
	return (n + PageAlignmentMask) & ^PageAlignmentMask
}

// CellSize returns the aligned cell size needed to hold payload bytes.
func CellSize(payload int32) int32 {
	need := Align8I32(payload + CellHeaderSize)
	if need < MinCellSize {
		return MinCellSize
	}
	return need
}
