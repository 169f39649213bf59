//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package alloc

// NewMmapRegion falls back to a heap region where anonymous mappings are not
// available.
func NewMmapRegion(size int) (Region, error) {
	return NewHeapRegion(size), nil
}
