package alloc

// AllocFunc is the allocate routine a Binding delegates to.
type AllocFunc func(need int32, cls Class) (CellRef, []byte, error)

// FreeFunc is the release routine a Binding delegates to.
type FreeFunc func(ref CellRef) error

// Binding holds the allocate and release slots a list draws memory from.
// Both slots start empty. The zero value is usable but cannot resolve cells;
// use NewBinding to attach the memory the routines hand out.
type Binding struct {
	res   Resolver
	alloc AllocFunc
	free  FreeFunc
}

// NewBinding returns a Binding with empty slots over the memory described by r.
func NewBinding(r Resolver) *Binding {
	return &Binding{res: r}
}

// Bind returns a Binding with both slots populated from a.
func Bind(a Allocator) *Binding {
	if a == nil {
		return &Binding{}
	}
	return &Binding{res: a, alloc: a.Alloc, free: a.Free}
}

// RegisterAlloc stores fn in the allocate slot, replacing any previous routine.
func (b *Binding) RegisterAlloc(fn AllocFunc) error {
	if fn == nil {
		return ErrNilFunc
	}
	b.alloc = fn
	return nil
}

// RegisterFree stores fn in the release slot, replacing any previous routine.
func (b *Binding) RegisterFree(fn FreeFunc) error {
	if fn == nil {
		return ErrNilFunc
	}
	b.free = fn
	return nil
}

// CanAlloc reports whether the allocate slot is populated.
func (b *Binding) CanAlloc() bool { return b != nil && b.alloc != nil }

// CanFree reports whether the release slot is populated.
func (b *Binding) CanFree() bool { return b != nil && b.free != nil }

// Alloc calls the registered allocate routine.
func (b *Binding) Alloc(need int32, cls Class) (CellRef, []byte, error) {
	if !b.CanAlloc() {
		return 0, nil, ErrAllocUnset
	}
	return b.alloc(need, cls)
}

// Free calls the registered release routine.
func (b *Binding) Free(ref CellRef) error {
	if !b.CanFree() {
		return ErrFreeUnset
	}
	return b.free(ref)
}

// Bytes resolves ref through the attached Resolver.
func (b *Binding) Bytes(ref CellRef) ([]byte, error) {
	if b == nil || b.res == nil {
		return nil, ErrNoResolver
	}
	return b.res.Bytes(ref)
}
