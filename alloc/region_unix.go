//go:build linux || darwin || freebsd || netbsd || openbsd

package alloc

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// mmapRegion is a Region backed by an anonymous private mapping. Growth maps a
// larger block, copies the contents, and unmaps the old one.
type mmapRegion struct {
	data   []byte
	closed bool
}

// NewMmapRegion returns a region of size bytes backed by anonymous memory.
// A zero size defers the first mapping until Grow.
func NewMmapRegion(size int) (Region, error) {
	r := &mmapRegion{}
	if size <= 0 {
		return r, nil
	}
	data, err := mapAnon(size)
	if err != nil {
		return nil, err
	}
	r.data = data
	return r, nil
}

func mapAnon(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", size, err)
	}
	return data, nil
}

func (r *mmapRegion) Bytes() []byte { return r.data }

func (r *mmapRegion) Grow(n int) error {
	if r.closed {
		return ErrClosed
	}
	if n <= 0 {
		return nil
	}
	data, err := mapAnon(len(r.data) + n)
	if err != nil {
		return err
	}
	copy(data, r.data)
	if r.data != nil {
		if err := unix.Munmap(r.data); err != nil {
			_ = unix.Munmap(data)
			return fmt.Errorf("munmap old region: %w", err)
		}
	}
	r.data = data
	return nil
}

func (r *mmapRegion) Close() error {
	r.closed = true
	if r.data == nil {
		return nil
	}
	err := unix.Munmap(r.data)
	r.data = nil
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
