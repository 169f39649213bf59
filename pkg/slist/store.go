package slist

import (
	"errors"

	"github.com/joshuapare/slist/alloc"
	"github.com/joshuapare/slist/list"
	"github.com/joshuapare/slist/pkg/types"
)

// Store owns a list together with the allocator stack beneath it.
type Store struct {
	opts    types.Options
	list    *list.List
	binding *alloc.Binding
	limited *alloc.Limited // nil unless MaxLiveCells is set
	arena   *alloc.Arena   // set for heap and mmap regions
	heap    *alloc.Heap    // set for RegionHandles
	closed  bool
}

// List returns the managed list.
func (s *Store) List() *list.List { return s.list }

// Binding returns the allocator binding the list draws from. Re-registering
// its routines swaps allocation for every later operation.
func (s *Store) Binding() *alloc.Binding { return s.binding }

// Options returns the options the store was built with.
func (s *Store) Options() types.Options { return s.opts }

// Stats reports the backing allocator's counters.
func (s *Store) Stats() alloc.Stats {
	if s.arena != nil {
		return s.arena.Stats()
	}
	return s.heap.Stats()
}

// Close deletes the list and releases the backing region. It is safe to
// call more than once.
func (s *Store) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if err := s.list.Delete(); err != nil && !errors.Is(err, list.ErrNilList) {
		errs = append(errs, err)
	}
	if err := s.closeBacking(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Store) closeBacking() error {
	if s.arena != nil {
		return s.arena.Close()
	}
	return nil
}
