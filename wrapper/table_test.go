package wrapper

import (
	"testing"

	"github.com/wippyai/cef-bridge/capi"
)

func newBase() *capi.Base {
	b := &capi.Base{}
	b.Init(0, nil)
	return b
}

func TestTableBasic(t *testing.T) {
	tbl := NewTable()
	obj := &pingObject{}

	b, created := tbl.Intern(TypeView, obj, newBase)
	if !created || b.Handle == 0 {
		t.Fatalf("intern: created=%v handle=%d", created, b.Handle)
	}

	tag, got, ok := tbl.Lookup(b)
	if !ok || tag != TypeView || got != any(obj) {
		t.Fatalf("lookup: %v %v %v", tag, got, ok)
	}

	again, created := tbl.Intern(TypeView, obj, newBase)
	if created || again != b {
		t.Fatal("second intern built a new struct")
	}
	if b.RefCount() != 2 {
		t.Fatalf("refcount = %d", b.RefCount())
	}

	other, created := tbl.Intern(TypePanel, obj, newBase)
	if !created || other == b {
		t.Fatal("different tag should get its own struct")
	}

	if tbl.Len() != 2 {
		t.Fatalf("len = %d", tbl.Len())
	}

	if _, ok := tbl.Remove(b); !ok {
		t.Fatal("remove failed")
	}
	if _, _, ok := tbl.Lookup(b); ok {
		t.Fatal("lookup after remove succeeded")
	}
}

func TestTableForgedHandle(t *testing.T) {
	tbl := NewTable()
	b, _ := tbl.Intern(TypeView, &pingObject{}, newBase)

	forged := newBase()
	forged.Handle = b.Handle
	if _, _, ok := tbl.Lookup(forged); ok {
		t.Fatal("forged struct resolved")
	}
	if _, ok := tbl.Remove(forged); ok {
		t.Fatal("forged struct removed the entry")
	}

	forged.Handle = 999
	if _, _, ok := tbl.Lookup(forged); ok {
		t.Fatal("out-of-range handle resolved")
	}
}

func TestTableFreeListReuse(t *testing.T) {
	tbl := NewTable()
	b1, _ := tbl.Intern(TypeView, &pingObject{}, newBase)
	h := b1.Handle
	tbl.Remove(b1)

	b2, _ := tbl.Intern(TypeView, &pingObject{}, newBase)
	if b2.Handle != h {
		t.Fatalf("handle %d not reused, got %d", h, b2.Handle)
	}
}

func TestTableValueObjectsNotDeduplicated(t *testing.T) {
	tbl := NewTable()
	b1, _ := tbl.Intern(TypeView, 42, newBase)
	b2, created := tbl.Intern(TypeView, 42, newBase)
	if !created || b1 == b2 {
		t.Fatal("value objects must not share a struct")
	}
}

func TestTableEach(t *testing.T) {
	tbl := NewTable()
	for i := 0; i < 3; i++ {
		tbl.Intern(TypeView, &pingObject{}, newBase)
	}
	n := 0
	tbl.Each(func(handle uint32, tag Type, object any) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Fatalf("Each visited %d entries after stop", n)
	}
}

func TestTypeString(t *testing.T) {
	if TypeWindowDelegate.String() != "WindowDelegate" {
		t.Error(TypeWindowDelegate.String())
	}
	if Type(999).String() != "unknown" {
		t.Error("out of range tag")
	}
}
