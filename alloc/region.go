package alloc

// Region is a contiguous, growable block of memory an Arena carves cells from.
// Grow may move the memory; Bytes always returns the current mapping.
type Region interface {
	// Bytes returns the whole region.
	Bytes() []byte

	// Grow extends the region by n zeroed bytes.
	Grow(n int) error

	// Close releases the region. Bytes returns nil afterwards.
	Close() error
}

// HeapRegion is a Region backed by an ordinary Go slice.
type HeapRegion struct {
	data   []byte
	closed bool
}

// NewHeapRegion returns a heap region of size zeroed bytes.
func NewHeapRegion(size int) *HeapRegion {
	if size < 0 {
		size = 0
	}
	return &HeapRegion{data: make([]byte, size)}
}

func (r *HeapRegion) Bytes() []byte { return r.data }

// Grow reallocates the slice and copies the old contents over.
func (r *HeapRegion) Grow(n int) error {
	if r.closed {
		return ErrClosed
	}
	if n <= 0 {
		return nil
	}
	data := make([]byte, len(r.data)+n)
	copy(data, r.data)
	r.data = data
	return nil
}

func (r *HeapRegion) Close() error {
	r.data = nil
	r.closed = true
	return nil
}
