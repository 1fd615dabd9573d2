package wrapper

import (
	"runtime"
	"sync"
	"weak"

	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/errors"
)

// CRef is embedded by every adapter. It owns one reference to the struct.
type CRef[S any] struct {
	s    *S
	self any
	tag  Type
}

// Struct returns the adapted struct. Adapters read function fields from it.
func (r *CRef[S]) Struct() *S { return r.s }

// WrapperType returns the tag of the binding that built the adapter.
func (r *CRef[S]) WrapperType() Type { return r.tag }

// BaseStruct returns the struct's Base.
func (r *CRef[S]) BaseStruct() *capi.Base { return capi.BaseOf(r.s) }

// Exit ends a forwarded call. Like Recover it stops a panic, and it keeps
// the adapter reachable until the struct call has returned. Use it directly
// in a defer:
//
//	defer a.Exit("LoadHandler", "OnLoadStart")
func (r *CRef[S]) Exit(iface, method string) {
	if v := recover(); v != nil {
		logPanic(iface, method, v)
	}
	runtime.KeepAlive(r)
}

// CToCpp adapts capi structs of type S into Go values of type T.
type CToCpp[T any, S any] struct {
	build   func(ref *CRef[S]) T
	derived map[Type]func(obj T) *S
	cache   map[*capi.Base]weak.Pointer[CRef[S]]
	counter *counter
	name    string
	mu      sync.Mutex
	tag     Type
}

type collected[S any] struct {
	base *capi.Base
	ref  weak.Pointer[CRef[S]]
}

// NewCToCpp creates a binding. The adapter builder is installed later with
// SetBuilder.
func NewCToCpp[T any, S any](name string, tag Type) *CToCpp[T, S] {
	return &CToCpp[T, S]{
		derived: make(map[Type]func(obj T) *S),
		cache:   make(map[*capi.Base]weak.Pointer[CRef[S]]),
		counter: newCounter(name, tag, CToCppDirection),
		name:    name,
		tag:     tag,
	}
}

// SetBuilder installs the adapter constructor.
func (c *CToCpp[T, S]) SetBuilder(build func(ref *CRef[S]) T) {
	c.build = build
}

// Derive registers the unwrap path for adapters built by a refining binding.
func (c *CToCpp[T, S]) Derive(tag Type, unwrap func(obj T) *S) {
	c.derived[tag] = unwrap
}

// Name returns the bound interface name.
func (c *CToCpp[T, S]) Name() string { return c.name }

// Type returns the binding's type tag.
func (c *CToCpp[T, S]) Type() Type { return c.tag }

// Live returns the number of adapters not yet collected.
func (c *CToCpp[T, S]) Live() int64 { return c.counter.live.Load() }

// Wrap takes ownership of the reference that came with s and returns its
// adapter. A struct that already has a live adapter gets the same adapter
// back and the extra reference is released.
func (c *CToCpp[T, S]) Wrap(s *S) T {
	var zero T
	if s == nil {
		return zero
	}
	base := capi.BaseOf(s)

	c.mu.Lock()
	if wp, ok := c.cache[base]; ok {
		if ref := wp.Value(); ref != nil {
			c.mu.Unlock()
			base.Release()
			return ref.self.(T)
		}
	}

	ref := &CRef[S]{s: s, tag: c.tag}
	obj := c.build(ref)
	ref.self = obj
	wp := weak.Make(ref)
	c.cache[base] = wp
	c.mu.Unlock()

	c.counter.inc()
	runtime.AddCleanup(ref, c.collect, collected[S]{base: base, ref: wp})
	return obj
}

// Unwrap returns the struct behind an adapter with one reference added for
// the receiver.
func (c *CToCpp[T, S]) Unwrap(obj T) *S {
	if IsNil(obj) {
		return nil
	}

	a, ok := any(obj).(Adapter)
	if !ok {
		Violation(errors.New(errors.PhaseUnwrap, errors.KindUnknownHandle).
			Interface(c.name).
			Detail("%T was not produced by the bridge", obj).
			Build())
		return nil
	}

	if tag := a.WrapperType(); tag != c.tag {
		unwrap, ok := c.derived[tag]
		if !ok {
			NotReached(c.name, tag)
		}
		return unwrap(obj)
	}

	base := a.BaseStruct()
	base.AddRef()
	runtime.KeepAlive(obj)
	return capi.Cast[S](base)
}

func (c *CToCpp[T, S]) collect(arg collected[S]) {
	c.mu.Lock()
	if cur, ok := c.cache[arg.base]; ok && cur == arg.ref {
		delete(c.cache, arg.base)
	}
	c.mu.Unlock()

	c.counter.dec()
	arg.base.Release()
}
