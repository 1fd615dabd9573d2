package capi

import (
	"sync"
	"testing"
	"unsafe"
)

func TestBaseRefCount(t *testing.T) {
	var deleted int
	var b Base
	b.Init(unsafe.Sizeof(b), func(*Base) { deleted++ })

	if !b.HasOneRef() {
		t.Fatalf("fresh struct should hold one ref, got %d", b.RefCount())
	}

	b.AddRef()
	if b.HasOneRef() || !b.HasAtLeastOneRef() {
		t.Fatalf("unexpected count %d", b.RefCount())
	}

	if b.Release() {
		t.Fatal("release with two refs reported last")
	}
	if !b.Release() {
		t.Fatal("final release not reported")
	}
	if deleted != 1 {
		t.Fatalf("Del ran %d times", deleted)
	}

	// over-release must not run Del again
	b.Release()
	if deleted != 1 {
		t.Fatalf("Del ran %d times after over-release", deleted)
	}
	if b.TryAddRef() {
		t.Fatal("TryAddRef succeeded on a dead struct")
	}
}

func TestBaseConcurrentRefs(t *testing.T) {
	var deleted int
	var mu sync.Mutex
	var b Base
	b.Init(0, func(*Base) {
		mu.Lock()
		deleted++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.AddRef()
				b.Release()
			}
		}()
	}
	wg.Wait()

	if b.RefCount() != 1 {
		t.Fatalf("count drifted to %d", b.RefCount())
	}
	b.Release()
	if deleted != 1 {
		t.Fatalf("Del ran %d times", deleted)
	}
}

func TestCastAlongPrefix(t *testing.T) {
	var w Window
	p := Cast[Panel](&w)
	v := Cast[View](p)

	if BaseOf(v) != &w.Panel.View.Base {
		t.Error("base of the cast view is not the window's base")
	}
	if Cast[View, Panel](nil) != nil {
		t.Error("nil cast should stay nil")
	}
	if BaseOf[Browser](nil) != nil {
		t.Error("nil BaseOf should stay nil")
	}
}

func TestStringClear(t *testing.T) {
	var freed []uint32
	s := String{Ptr: 16, Len: 3, Dtor: func(ptr, _ uint32) { freed = append(freed, ptr) }}

	s.Clear()
	s.Clear()

	if len(freed) != 1 || freed[0] != 16 {
		t.Fatalf("dtor calls: %v", freed)
	}
	if !s.Empty() {
		t.Error("cleared string not empty")
	}

	borrowed := String{Ptr: 8, Len: 1}
	borrowed.Clear()
	if borrowed.Ptr != 0 {
		t.Error("clear did not zero a borrowed string")
	}
}

func TestListClear(t *testing.T) {
	calls := 0
	l := List{Count: 2, Ptr: 32, Dtor: func(_, count uint32) {
		if count != 2 {
			t.Errorf("count = %d", count)
		}
		calls++
	}}
	l.Clear()
	l.Clear()
	if calls != 1 {
		t.Fatalf("dtor ran %d times", calls)
	}
}

func TestBool(t *testing.T) {
	if Bool(true) != 1 || Bool(false) != 0 {
		t.Error("bool conversion")
	}
}
