// Package alloc provides the memory layer underneath slist: an allocator
// binding with two registrable slots, and concrete cell allocators that hand
// out raw memory addressed by stable handles.
//
// # Overview
//
// Every record slist stores (list headers, nodes, cursors) lives inside a
// cell obtained from an Allocator. A cell is addressed by a CellRef, a uint32
// handle that stays valid for the lifetime of the allocation even when the
// backing region is grown and moved. Callers resolve a handle to its payload
// with Bytes and must re-resolve after any Alloc, since growth may relocate
// the region.
//
// # Allocator Interface
//
//   - Alloc(need, class): allocate a cell of need bytes (header included)
//   - Free(ref): release a cell for reuse
//   - Bytes(ref): resolve a live cell to its payload
//
// # Binding
//
// Binding is the allocator capability handed to a list. It starts with both
// slots empty; RegisterAlloc and RegisterFree populate them. Operations that
// need a slot check it immediately before use and fail with ErrAllocUnset or
// ErrFreeUnset, leaving all state untouched.
//
//	arena, _ := alloc.NewArena(alloc.NewHeapRegion(0))
//	b := alloc.NewBinding(arena)
//	_ = b.RegisterAlloc(arena.Alloc)
//	_ = b.RegisterFree(arena.Free)
//
// Bind does both registrations in one call.
//
// # Implementations
//
// Arena: cells carved from a single growable Region
//
//   - Bump allocation at the end of the used range
//   - Best-fit reuse of freed cells through a B-tree ordered by size
//   - Splits oversized free cells, absorbs a free successor on Free
//   - Grows by whole 4KB pages; NewMmapRegion backs it with anonymous memory
//
// Heap: each cell is its own Go slice, refs index a handle table.
//
// Limited: wrapper that fails with ErrNoSpace once a live-cell budget is
// spent. Useful to exercise exhaustion paths deterministically.
//
// # Cell Layout
//
//	[Size: 4 bytes, signed int32]
//	[Payload: (abs(size) - 4) bytes]
//
// Negative size = allocated, positive size = free. All sizes are 8-byte
// aligned.
//
// # Tracing
//
// Set SLIST_LOG_ALLOC=1 to log every allocation, release and growth at debug
// level through logrus.
//
// # Thread Safety
//
// Nothing in this package is thread-safe. Callers must synchronize access
// externally.
package alloc
