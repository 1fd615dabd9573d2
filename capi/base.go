package capi

import (
	"sync/atomic"
	"unsafe"
)

// Base is the first member of every bound struct.
type Base struct {
	// Size is the size of the complete struct, for future extension.
	Size uintptr

	refs atomic.Int32

	// Handle is assigned by the wrapped-handle table for structs the bridge
	// built. Zero for structs built by the other side.
	Handle uint32

	// Del runs once when the last reference is released.
	Del func(b *Base)
}

// Init prepares a struct built by hand: it records the size, sets the
// reference count to one and installs the destructor.
func (b *Base) Init(size uintptr, del func(b *Base)) {
	b.Size = size
	b.refs.Store(1)
	b.Del = del
}

// AddRef takes a reference.
func (b *Base) AddRef() {
	b.refs.Add(1)
}

// TryAddRef takes a reference only while the struct is still alive.
func (b *Base) TryAddRef() bool {
	for {
		n := b.refs.Load()
		if n <= 0 {
			return false
		}
		if b.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Release drops a reference and reports whether it was the last one.
func (b *Base) Release() bool {
	n := b.refs.Add(-1)
	if n > 0 {
		return false
	}
	if n < 0 {
		// over-release; keep the count pinned so Del cannot run twice
		b.refs.Store(0)
		return false
	}
	if b.Del != nil {
		b.Del(b)
	}
	return true
}

// HasOneRef reports whether exactly one reference is held.
func (b *Base) HasOneRef() bool {
	return b.refs.Load() == 1
}

// HasAtLeastOneRef reports whether the struct is still alive.
func (b *Base) HasAtLeastOneRef() bool {
	return b.refs.Load() > 0
}

// RefCount returns the current count for diagnostics.
func (b *Base) RefCount() int32 {
	return b.refs.Load()
}

// BaseOf returns the Base at the start of s. S must begin with Base or with
// a struct that does.
func BaseOf[S any](s *S) *Base {
	if s == nil {
		return nil
	}
	return (*Base)(unsafe.Pointer(s))
}

// Cast reinterprets s along the layout prefix. Casting to a refinement is
// only valid when the allocation really is that refinement, which callers
// establish through the type tag.
func Cast[To, From any](s *From) *To {
	if s == nil {
		return nil
	}
	return (*To)(unsafe.Pointer(s))
}

// Bool converts a Go bool to its boundary form.
func Bool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
