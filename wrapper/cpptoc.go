package wrapper

import (
	"unsafe"

	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/errors"
)

// CppToC exposes Go objects of type T as capi structs of type S.
type CppToC[T any, S any] struct {
	build   func(obj T) *S
	derived map[Type]func(base *capi.Base) T
	table   *Table
	counter *counter
	name    string
	tag     Type
}

// NewCppToC creates a binding. The struct builder is installed later with
// SetBuilder, usually from an init function, because builders refer back to
// the binding.
func NewCppToC[T any, S any](name string, tag Type) *CppToC[T, S] {
	return &CppToC[T, S]{
		derived: make(map[Type]func(base *capi.Base) T),
		table:   handles,
		counter: newCounter(name, tag, CppToCDirection),
		name:    name,
		tag:     tag,
	}
}

// SetBuilder installs the function that fills a fresh struct's function
// fields for an object. Fields left nil mark methods the object lacks.
func (c *CppToC[T, S]) SetBuilder(build func(obj T) *S) {
	c.build = build
}

// Derive registers the unwrap path for structs built by a refining binding.
func (c *CppToC[T, S]) Derive(tag Type, unwrap func(base *capi.Base) T) {
	c.derived[tag] = unwrap
}

// Name returns the bound interface name.
func (c *CppToC[T, S]) Name() string { return c.name }

// Type returns the binding's type tag.
func (c *CppToC[T, S]) Type() Type { return c.tag }

// Live returns the number of structs currently alive.
func (c *CppToC[T, S]) Live() int64 { return c.counter.live.Load() }

// Wrap returns the struct for obj with one reference for the receiver.
// Wrapping an object that already has a live struct returns that struct.
func (c *CppToC[T, S]) Wrap(obj T) *S {
	if IsNil(obj) {
		return nil
	}

	// An adapter from this binding's other direction already has a struct.
	// A refinement's struct starts with this binding's layout.
	if a, ok := any(obj).(Adapter); ok {
		if tag := a.WrapperType(); tag == c.tag || c.derived[tag] != nil {
			base := a.BaseStruct()
			base.AddRef()
			return capi.Cast[S](base)
		}
	}

	base, created := c.table.Intern(c.tag, obj, func() *capi.Base {
		s := c.build(obj)
		b := capi.BaseOf(s)
		b.Init(unsafe.Sizeof(*s), c.destroy)
		return b
	})
	if created {
		c.counter.inc()
	}
	return capi.Cast[S](base)
}

// Get returns the object behind s without touching its reference count.
// Shims use it to find their receiver; s may be a refinement's struct.
func (c *CppToC[T, S]) Get(s *S) T {
	var zero T
	if s == nil {
		return zero
	}

	base := capi.BaseOf(s)
	_, obj, ok := c.table.Lookup(base)
	if !ok {
		Violation(errors.UnknownHandle(errors.PhaseUnwrap, c.name, base.Handle))
		return zero
	}

	v, ok := obj.(T)
	if !ok {
		Violation(errors.New(errors.PhaseUnwrap, errors.KindUnexpectedType).
			Interface(c.name).
			Detail("%T is not a %s", obj, c.name).
			Build())
		return zero
	}
	return v
}

// Unwrap returns the object behind s and releases the reference that came
// with it. Structs built by a refining binding go through Derive.
func (c *CppToC[T, S]) Unwrap(s *S) T {
	var zero T
	if s == nil {
		return zero
	}

	base := capi.BaseOf(s)
	tag, obj, ok := c.table.Lookup(base)
	if !ok {
		Violation(errors.UnknownHandle(errors.PhaseUnwrap, c.name, base.Handle))
		return zero
	}

	if tag != c.tag {
		unwrap, ok := c.derived[tag]
		if !ok {
			NotReached(c.name, tag)
		}
		return unwrap(base)
	}

	v := obj.(T)
	base.Release()
	return v
}

func (c *CppToC[T, S]) destroy(base *capi.Base) {
	obj, ok := c.table.Remove(base)
	if !ok {
		return
	}
	c.counter.dec()
	if d, ok := obj.(Dropper); ok {
		d.Drop()
	}
}
