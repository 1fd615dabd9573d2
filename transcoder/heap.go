package transcoder

import (
	"reflect"
	"runtime"
	"strings"
	"sync/atomic"
	"unicode/utf8"
	"unsafe"

	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/errors"
	"github.com/wippyai/cef-bridge/transcoder/internal/abi"
	"go.uber.org/zap"
)

// Heap is the memory that strings and sequence arrays crossing the
// boundary live in.
type Heap struct {
	mem   Memory
	alloc Allocator
}

func NewHeap(mem Memory, alloc Allocator) *Heap {
	return &Heap{mem: mem, alloc: alloc}
}

const localHeapInitial = 64 << 10

// NewLocalHeap returns a heap over Go memory with an Arena allocator.
func NewLocalHeap() *Heap {
	mem := NewLocalMemory(localHeapInitial, 0)
	return NewHeap(mem, NewArena(mem))
}

var defaultHeap atomic.Pointer[Heap]

// Default returns the process heap, creating a local one on first use.
func Default() *Heap {
	if h := defaultHeap.Load(); h != nil {
		return h
	}
	defaultHeap.CompareAndSwap(nil, NewLocalHeap())
	return defaultHeap.Load()
}

// SetDefault replaces the process heap and returns the previous one.
// Values allocated from the old heap must be released before it goes away.
func SetDefault(h *Heap) *Heap {
	return defaultHeap.Swap(h)
}

func (h *Heap) Memory() Memory {
	return h.mem
}

func (h *Heap) Allocator() Allocator {
	return h.alloc
}

// NewString copies s into the heap. The result owns its bytes; Clear frees
// them.
func (h *Heap) NewString(s string) (capi.String, error) {
	if s == "" {
		return capi.String{}, nil
	}
	if !utf8.ValidString(s) {
		return capi.String{}, errors.InvalidUTF8(errors.PhaseMarshal, nil, []byte(s))
	}
	if len(s) > abi.MaxStringSize {
		return capi.String{}, errors.Allocation(uint32(abi.MaxStringSize), nil)
	}

	n := uint32(len(s))
	ptr, err := h.alloc.Alloc(n, 1)
	if err != nil {
		return capi.String{}, err
	}
	if err := h.mem.Write(ptr, unsafe.Slice(unsafe.StringData(s), len(s))); err != nil {
		h.alloc.Free(ptr, n, 1)
		return capi.String{}, err
	}
	return capi.String{Ptr: ptr, Len: n, Dtor: h.freeBytes}, nil
}

func (h *Heap) freeBytes(ptr, length uint32) {
	h.alloc.Free(ptr, length, 1)
}

// ReadString returns the Go copy of s. Invalid sequences are replaced with
// U+FFFD; a nil or empty string reads as "".
func (h *Heap) ReadString(s *capi.String) string {
	if s.Empty() || s.Ptr == 0 {
		return ""
	}
	data, err := h.mem.Read(s.Ptr, s.Len)
	if err != nil {
		Logger().Warn("read string", zap.Uint32("ptr", s.Ptr), zap.Uint32("len", s.Len), zap.Error(err))
		return ""
	}
	if !utf8.Valid(data) {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(data)
}

// CopyString replaces the contents of an out-parameter with v. A nil dst
// is ignored.
func (h *Heap) CopyString(dst *capi.String, v string) error {
	if dst == nil {
		return nil
	}
	s, err := h.NewString(v)
	if err != nil {
		return err
	}
	dst.Clear()
	*dst = s
	return nil
}

const stringSlotSize = 8 // [ptr: u32, len: u32]

// NewStringList copies values into the heap as an array of (ptr, len)
// pairs. The list owns the array and every string in it.
func (h *Heap) NewStringList(values []string) (capi.List, error) {
	if len(values) == 0 {
		return capi.List{}, nil
	}
	if len(values) > abi.MaxListLength {
		return capi.List{}, errors.New(errors.PhaseMarshal, errors.KindAllocation).
			Detail("list length %d exceeds maximum %d", len(values), abi.MaxListLength).
			Build()
	}

	count := uint32(len(values))
	size := count * stringSlotSize
	allocs := NewAllocationList()

	arr, err := h.alloc.Alloc(size, 4)
	if err != nil {
		allocs.FreeAndRelease(nil)
		return capi.List{}, err
	}
	allocs.Add(arr, size, 4)

	for i, v := range values {
		if err := encodeString(arr+uint32(i)*stringSlotSize, v, h.mem, h.alloc, allocs, nil); err != nil {
			allocs.FreeAndRelease(h.alloc)
			return capi.List{}, err
		}
	}

	return capi.List{
		Count: count,
		Ptr:   arr,
		Dtor:  func(uint32, uint32) { allocs.FreeAndRelease(h.alloc) },
	}, nil
}

// ReadStringList returns the Go copy of an array of strings.
func (h *Heap) ReadStringList(l *capi.List) []string {
	if l == nil || l.Count == 0 || l.Ptr == 0 {
		return nil
	}
	out := make([]string, 0, l.Count)
	for i := uint32(0); i < l.Count; i++ {
		slot := l.Ptr + i*stringSlotSize
		ptr, err := h.mem.ReadU32(slot)
		if err != nil {
			Logger().Warn("read string list", zap.Uint32("index", i), zap.Error(err))
			return out
		}
		n, err := h.mem.ReadU32(slot + 4)
		if err != nil {
			Logger().Warn("read string list", zap.Uint32("index", i), zap.Error(err))
			return out
		}
		out = append(out, h.ReadString(&capi.String{Ptr: ptr, Len: n}))
	}
	return out
}

// NewRecords lays out the elements of slice, a []T matching ct, as a
// contiguous array.
func (h *Heap) NewRecords(ct *CompiledType, slice any) (capi.List, error) {
	allocs := NewAllocationList()
	count, ptr, err := h.encodeRecords(ct, slice, allocs)
	if err != nil || count == 0 {
		allocs.FreeAndRelease(h.alloc)
		return capi.List{}, err
	}
	return capi.List{
		Count: count,
		Ptr:   ptr,
		Dtor:  func(uint32, uint32) { allocs.FreeAndRelease(h.alloc) },
	}, nil
}

func (h *Heap) encodeRecords(ct *CompiledType, slice any, allocs *AllocationList) (uint32, uint32, error) {
	sv := reflect.ValueOf(slice)
	if sv.Kind() != reflect.Slice || sv.Type().Elem() != ct.GoType {
		return 0, 0, errors.New(errors.PhaseMarshal, errors.KindInvalidInput).
			Detail("expected []%s, got %T", ct.GoType, slice).
			Build()
	}
	if sv.Len() == 0 {
		return 0, 0, nil
	}
	if sv.Len() > abi.MaxListLength {
		return 0, 0, errors.New(errors.PhaseMarshal, errors.KindAllocation).
			Detail("list length %d exceeds maximum %d", sv.Len(), abi.MaxListLength).
			Build()
	}

	count := uint32(sv.Len())
	size, ok := abi.SafeMulU32(count, ct.WitSize)
	if !ok {
		return 0, 0, errors.Allocation(count, nil)
	}

	arr, err := h.alloc.Alloc(size, ct.WitAlign)
	if err != nil {
		return 0, 0, err
	}
	allocs.Add(arr, size, ct.WitAlign)

	base := sv.UnsafePointer()
	for i := uint32(0); i < count; i++ {
		elem := unsafe.Add(base, uintptr(i)*ct.GoSize)
		if err := encodeField(arr+i*ct.WitSize, ct, elem, h.mem, h.alloc, allocs, nil); err != nil {
			return 0, 0, err
		}
	}
	runtime.KeepAlive(slice)
	return count, arr, nil
}

// ReadRecords decodes an array laid out by ct into out, a *[]T.
func (h *Heap) ReadRecords(ct *CompiledType, l *capi.List, out any) error {
	pv := reflect.ValueOf(out)
	if pv.Kind() != reflect.Pointer || pv.Elem().Kind() != reflect.Slice || pv.Elem().Type().Elem() != ct.GoType {
		return errors.New(errors.PhaseUnwrap, errors.KindInvalidInput).
			Detail("expected *[]%s", ct.GoType).
			Build()
	}
	var count, ptr uint32
	if l != nil {
		count, ptr = l.Count, l.Ptr
	}
	return h.DecodeRecords(ct, count, ptr, out)
}

// DecodeRecords is ReadRecords for a bare (count, ptr) pair.
func (h *Heap) DecodeRecords(ct *CompiledType, count, ptr uint32, out any) error {
	sliceVal := reflect.ValueOf(out).Elem()
	if count == 0 || ptr == 0 {
		sliceVal.Set(reflect.Zero(sliceVal.Type()))
		return nil
	}
	if count > abi.MaxListLength {
		return errors.New(errors.PhaseUnwrap, errors.KindOutOfBounds).
			Detail("list length %d exceeds maximum %d", count, abi.MaxListLength).
			Build()
	}

	result := reflect.MakeSlice(sliceVal.Type(), int(count), int(count))
	base := result.UnsafePointer()
	for i := uint32(0); i < count; i++ {
		elem := unsafe.Add(base, uintptr(i)*ct.GoSize)
		if err := decodeField(ptr+i*ct.WitSize, ct, elem, h.mem, nil); err != nil {
			return err
		}
	}
	sliceVal.Set(result)
	return nil
}

// NewBytes copies data into the heap.
func (h *Heap) NewBytes(data []byte) (capi.List, error) {
	if len(data) == 0 {
		return capi.List{}, nil
	}
	if len(data) > abi.MaxAlloc {
		return capi.List{}, errors.Allocation(uint32(abi.MaxAlloc), nil)
	}
	n := uint32(len(data))
	ptr, err := h.alloc.Alloc(n, 1)
	if err != nil {
		return capi.List{}, err
	}
	if err := h.mem.Write(ptr, data); err != nil {
		h.alloc.Free(ptr, n, 1)
		return capi.List{}, err
	}
	return capi.List{Count: n, Ptr: ptr, Dtor: h.freeBytes}, nil
}

// ReadBytes returns a copy of length bytes at ptr.
func (h *Heap) ReadBytes(ptr, length uint32) []byte {
	if ptr == 0 || length == 0 {
		return nil
	}
	data, err := h.mem.Read(ptr, length)
	if err != nil {
		Logger().Warn("read bytes", zap.Uint32("ptr", ptr), zap.Uint32("len", length), zap.Error(err))
		return nil
	}
	return data
}
