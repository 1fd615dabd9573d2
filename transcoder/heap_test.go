package transcoder

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"github.com/wippyai/cef-bridge/capi"
	"go.bytecodealliance.org/wit"
)

// countingAllocator wraps an Arena and counts frees per pointer.
type countingAllocator struct {
	inner  *Arena
	allocs map[uint32]int
	frees  map[uint32]int
	mu     sync.Mutex
}

func newCountingHeap() (*Heap, *countingAllocator) {
	mem := NewLocalMemory(4096, 0)
	ca := &countingAllocator{
		inner:  NewArena(mem),
		allocs: make(map[uint32]int),
		frees:  make(map[uint32]int),
	}
	return NewHeap(mem, ca), ca
}

func (c *countingAllocator) Alloc(size, align uint32) (uint32, error) {
	ptr, err := c.inner.Alloc(size, align)
	if err == nil {
		c.mu.Lock()
		c.allocs[ptr]++
		c.mu.Unlock()
	}
	return ptr, err
}

func (c *countingAllocator) Free(ptr, size, align uint32) {
	c.mu.Lock()
	c.frees[ptr]++
	c.mu.Unlock()
	c.inner.Free(ptr, size, align)
}

// balanced reports whether every allocation was freed exactly once.
func (c *countingAllocator) balanced(t *testing.T) {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	for ptr, n := range c.allocs {
		if c.frees[ptr] != n {
			t.Errorf("ptr %d allocated %d times, freed %d times", ptr, n, c.frees[ptr])
		}
	}
	for ptr, n := range c.frees {
		if c.allocs[ptr] == 0 {
			t.Errorf("ptr %d freed %d times but never allocated", ptr, n)
		}
	}
}

func TestHeap_String(t *testing.T) {
	h, ca := newCountingHeap()

	s, err := h.NewString("https://example.com/")
	if err != nil {
		t.Fatal(err)
	}
	if s.Ptr == 0 || s.Len != 20 || s.Dtor == nil {
		t.Fatalf("unexpected string %+v", s)
	}
	if got := h.ReadString(&s); got != "https://example.com/" {
		t.Errorf("got %q", got)
	}

	s.Clear()
	if s.Ptr != 0 || s.Len != 0 || s.Dtor != nil {
		t.Errorf("Clear did not zero: %+v", s)
	}
	s.Clear()
	ca.balanced(t)
}

func TestHeap_EmptyString(t *testing.T) {
	h, ca := newCountingHeap()

	s, err := h.NewString("")
	if err != nil {
		t.Fatal(err)
	}
	if s.Ptr != 0 || s.Len != 0 || s.Dtor != nil {
		t.Errorf("empty string should be zero, got %+v", s)
	}
	if got := h.ReadString(nil); got != "" {
		t.Errorf("nil string read as %q", got)
	}
	if len(ca.allocs) != 0 {
		t.Errorf("empty string allocated %d blocks", len(ca.allocs))
	}
}

func TestHeap_StringInvalidUTF8(t *testing.T) {
	h, _ := newCountingHeap()

	if _, err := h.NewString("bad\xff"); err == nil {
		t.Error("expected error for invalid UTF-8")
	}

	ptr, _ := h.Allocator().Alloc(4, 1)
	_ = h.Memory().Write(ptr, []byte("a\xffb!"))
	got := h.ReadString(&capi.String{Ptr: ptr, Len: 4})
	if got != "a�b!" {
		t.Errorf("got %q", got)
	}
}

func TestHeap_CopyString(t *testing.T) {
	h, ca := newCountingHeap()

	var out capi.String
	if err := h.CopyString(&out, "first"); err != nil {
		t.Fatal(err)
	}
	if err := h.CopyString(&out, "second"); err != nil {
		t.Fatal(err)
	}
	if got := h.ReadString(&out); got != "second" {
		t.Errorf("got %q", got)
	}
	if err := h.CopyString(nil, "ignored"); err != nil {
		t.Error(err)
	}
	out.Clear()
	ca.balanced(t)
}

func TestHeap_StringList(t *testing.T) {
	h, ca := newCountingHeap()

	in := []string{"--single-process", "", "--lang=en-US"}
	l, err := h.NewStringList(in)
	if err != nil {
		t.Fatal(err)
	}
	if l.Count != 3 {
		t.Fatalf("count = %d", l.Count)
	}

	got := h.ReadStringList(&l)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("got %q, want %q", got, in)
	}

	l.Clear()
	ca.balanced(t)

	empty, err := h.NewStringList(nil)
	if err != nil || empty.Count != 0 || empty.Ptr != 0 {
		t.Errorf("empty list = %+v, %v", empty, err)
	}
	if got := h.ReadStringList(&empty); got != nil {
		t.Errorf("empty list read as %q", got)
	}
}

type testRect struct {
	X, Y, Width, Height int32
}

type testRegion struct {
	Bounds    testRect
	Draggable bool
}

var (
	witRect = &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{
		{Name: "x", Type: wit.S32{}},
		{Name: "y", Type: wit.S32{}},
		{Name: "width", Type: wit.S32{}},
		{Name: "height", Type: wit.S32{}},
	}}}
	witRegion = &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{
		{Name: "bounds", Type: witRect},
		{Name: "draggable", Type: wit.Bool{}},
	}}}
)

func TestHeap_Records(t *testing.T) {
	h, ca := newCountingHeap()
	ct := MustCompile(witRegion, reflect.TypeOf(testRegion{}))

	in := []testRegion{
		{Bounds: testRect{0, 0, 800, 30}, Draggable: true},
		{Bounds: testRect{760, 0, 40, 30}},
	}
	l, err := h.NewRecords(ct, in)
	if err != nil {
		t.Fatal(err)
	}
	if l.Count != 2 {
		t.Fatalf("count = %d", l.Count)
	}

	var out []testRegion
	if err := h.ReadRecords(ct, &l, &out); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("got %+v, want %+v", out, in)
	}

	l.Clear()
	ca.balanced(t)
}

// The source slice is only reachable through the interface argument, so
// the encoder must keep its backing array alive while it walks it.
func TestHeap_ManyRecords(t *testing.T) {
	mem := NewLocalMemory(64<<10, 0)
	h := NewHeap(mem, NewArena(mem))
	ct := MustCompile(witRegion, reflect.TypeOf(testRegion{}))

	regions := func() any {
		rs := make([]testRegion, 512)
		for i := range rs {
			rs[i] = testRegion{Bounds: testRect{int32(i), 0, 10, 10}, Draggable: i%2 == 0}
		}
		return rs
	}

	l, err := h.NewRecords(ct, regions())
	if err != nil {
		t.Fatal(err)
	}
	defer l.Clear()
	runtime.GC()

	var out []testRegion
	if err := h.ReadRecords(ct, &l, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 512 {
		t.Fatalf("read %d records", len(out))
	}
	for i, r := range out {
		if r.Bounds.X != int32(i) || r.Draggable != (i%2 == 0) {
			t.Fatalf("record %d = %+v", i, r)
		}
	}
}

func TestHeap_RecordsTypeMismatch(t *testing.T) {
	h, _ := newCountingHeap()
	ct := MustCompile(witRect, reflect.TypeOf(testRect{}))

	if _, err := h.NewRecords(ct, []testRegion{{}}); err == nil {
		t.Error("expected error for wrong element type")
	}
	var out []testRegion
	if err := h.ReadRecords(ct, &capi.List{}, &out); err == nil {
		t.Error("expected error for wrong output type")
	}
}

func TestHeap_EmptyRecords(t *testing.T) {
	h, _ := newCountingHeap()
	ct := MustCompile(witRect, reflect.TypeOf(testRect{}))

	l, err := h.NewRecords(ct, []testRect{})
	if err != nil {
		t.Fatal(err)
	}
	if l.Ptr != 0 || l.Count != 0 {
		t.Errorf("empty records = %+v", l)
	}

	out := []testRect{{1, 2, 3, 4}}
	if err := h.ReadRecords(ct, nil, &out); err != nil {
		t.Fatal(err)
	}
	if out != nil {
		t.Errorf("expected nil slice, got %+v", out)
	}
}

func TestHeap_Bytes(t *testing.T) {
	h, ca := newCountingHeap()

	pixels := []byte{0xff, 0x00, 0x80, 0xff, 0x10, 0x20, 0x30, 0xff}
	l, err := h.NewBytes(pixels)
	if err != nil {
		t.Fatal(err)
	}
	if got := h.ReadBytes(l.Ptr, l.Count); !reflect.DeepEqual(got, pixels) {
		t.Errorf("got %v", got)
	}
	if got := h.ReadBytes(0, 8); got != nil {
		t.Errorf("null pointer read as %v", got)
	}
	l.Clear()
	ca.balanced(t)
}

func TestDefault(t *testing.T) {
	h := Default()
	if h == nil || Default() != h {
		t.Fatal("Default should be stable")
	}

	replacement := NewLocalHeap()
	prev := SetDefault(replacement)
	defer SetDefault(prev)

	if prev != h {
		t.Error("SetDefault should return the previous heap")
	}
	if Default() != replacement {
		t.Error("Default did not return the replacement")
	}
}
