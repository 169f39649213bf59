package alloc

import "errors"

var (
	// ErrNoSpace indicates that no free cell was found and growth was not possible.
	ErrNoSpace = errors.New("alloc: no space")

	// ErrGrowFail indicates that the backing region could not be grown.
	ErrGrowFail = errors.New("alloc: grow failed")

	// ErrBadRef indicates an invalid or unallocated cell reference.
	ErrBadRef = errors.New("alloc: bad cell reference")

	// ErrDoubleFree indicates a release of a cell that is already free.
	ErrDoubleFree = errors.New("alloc: cell already free")

	// ErrNeedSmall indicates the requested size cannot even hold the cell header.
	ErrNeedSmall = errors.New("alloc: need must include header and be >= 4 bytes")

	// ErrAllocUnset indicates the allocate slot of a Binding is empty.
	ErrAllocUnset = errors.New("alloc: allocate routine not registered")

	// ErrFreeUnset indicates the release slot of a Binding is empty.
	ErrFreeUnset = errors.New("alloc: release routine not registered")

	// ErrNilFunc indicates a nil routine was passed to a Register call.
	ErrNilFunc = errors.New("alloc: nil routine")

	// ErrNoResolver indicates a Binding was built without a Resolver.
	ErrNoResolver = errors.New("alloc: binding has no resolver")

	// ErrNilRegion indicates an arena was created without a region.
	ErrNilRegion = errors.New("alloc: nil region")

	// ErrClosed indicates use of a region after Close.
	ErrClosed = errors.New("alloc: region closed")
)
