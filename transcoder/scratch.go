package transcoder

import (
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/wippyai/cef-bridge/capi"
	"go.uber.org/zap"
)

// Scratch holds the transient allocations of one forwarded call. A shim
// creates one, marshals its arguments through it and defers Release, so
// the heap is cleaned up even if the callee panics.
//
// Values built by a Scratch are borrowed by the callee: they carry no Dtor.
type Scratch struct {
	heap   *Heap
	allocs *AllocationList
	once   sync.Once
}

// NewScratch returns a scratch over the default heap.
func NewScratch() *Scratch {
	return Default().Scratch()
}

func (h *Heap) Scratch() *Scratch {
	return &Scratch{heap: h, allocs: NewAllocationList()}
}

func (sc *Scratch) Heap() *Heap {
	return sc.heap
}

// String returns a borrowed heap copy of v. On failure the argument
// degrades to the empty string.
func (sc *Scratch) String(v string) *capi.String {
	s := &capi.String{}
	if v == "" {
		return s
	}
	if !utf8.ValidString(v) {
		v = strings.ToValidUTF8(v, "\uFFFD")
	}
	n := uint32(len(v))
	ptr, err := sc.heap.alloc.Alloc(n, 1)
	if err != nil {
		Logger().Warn("scratch string", zap.Int("len", len(v)), zap.Error(err))
		return s
	}
	sc.allocs.Add(ptr, n, 1)
	if err := sc.heap.mem.Write(ptr, []byte(v)); err != nil {
		Logger().Warn("scratch string", zap.Int("len", len(v)), zap.Error(err))
		return s
	}
	s.Ptr, s.Len = ptr, n
	return s
}

// StringList returns a borrowed heap array of (ptr, len) pairs.
func (sc *Scratch) StringList(values []string) capi.List {
	if len(values) == 0 {
		return capi.List{}
	}
	count := uint32(len(values))
	size := count * stringSlotSize
	arr, err := sc.heap.alloc.Alloc(size, 4)
	if err != nil {
		Logger().Warn("scratch string list", zap.Int("count", len(values)), zap.Error(err))
		return capi.List{}
	}
	sc.allocs.Add(arr, size, 4)
	for i, v := range values {
		if err := encodeString(arr+uint32(i)*stringSlotSize, v, sc.heap.mem, sc.heap.alloc, sc.allocs, nil); err != nil {
			Logger().Warn("scratch string list", zap.Int("index", i), zap.Error(err))
			return capi.List{}
		}
	}
	return capi.List{Count: count, Ptr: arr}
}

// Records lays out slice, a []T matching ct, and returns the (count, ptr)
// pair the ABI passes for it.
func (sc *Scratch) Records(ct *CompiledType, slice any) (count, ptr uint32) {
	count, ptr, err := sc.heap.encodeRecords(ct, slice, sc.allocs)
	if err != nil {
		Logger().Warn("scratch records", zap.Stringer("type", ct.GoType), zap.Error(err))
		return 0, 0
	}
	return count, ptr
}

// Record lays out a single value, v a *T matching ct, and returns its
// address.
func (sc *Scratch) Record(ct *CompiledType, v any) uint32 {
	_, ptr := sc.Records(ct, sliceOf(v))
	return ptr
}

func sliceOf(v any) any {
	pv := reflect.ValueOf(v)
	if pv.Kind() != reflect.Pointer || pv.IsNil() {
		return v
	}
	out := reflect.MakeSlice(reflect.SliceOf(pv.Type().Elem()), 1, 1)
	out.Index(0).Set(pv.Elem())
	return out.Interface()
}

// Bytes copies data into the heap and returns its address.
func (sc *Scratch) Bytes(data []byte) uint32 {
	if len(data) == 0 {
		return 0
	}
	n := uint32(len(data))
	ptr, err := sc.heap.alloc.Alloc(n, 1)
	if err != nil {
		Logger().Warn("scratch bytes", zap.Int("len", len(data)), zap.Error(err))
		return 0
	}
	sc.allocs.Add(ptr, n, 1)
	if err := sc.heap.mem.Write(ptr, data); err != nil {
		Logger().Warn("scratch bytes", zap.Int("len", len(data)), zap.Error(err))
		return 0
	}
	return ptr
}

// Release frees every allocation exactly once. Later calls do nothing.
func (sc *Scratch) Release() {
	sc.once.Do(func() {
		sc.allocs.FreeAndRelease(sc.heap.alloc)
		sc.allocs = nil
	})
}
