package transcoder

import (
	"reflect"
	"testing"

	"github.com/wippyai/cef-bridge/errors"
	"go.bytecodealliance.org/wit"
)

func TestCompiler_Record(t *testing.T) {
	c := NewCompiler()
	ct, err := c.Compile(witRegion, reflect.TypeOf(testRegion{}))
	if err != nil {
		t.Fatal(err)
	}

	if ct.Kind != KindRecord {
		t.Errorf("kind = %v", ct.Kind)
	}
	if ct.WitSize != 20 || ct.WitAlign != 4 {
		t.Errorf("layout = %d/%d, want 20/4", ct.WitSize, ct.WitAlign)
	}
	if len(ct.Fields) != 2 {
		t.Fatalf("fields = %d", len(ct.Fields))
	}
	if f := ct.Fields[1]; f.Name != "Draggable" || f.WitOffset != 16 {
		t.Errorf("draggable field = %+v", f)
	}
	if !ct.IsPure() {
		t.Error("record of numbers should be pure")
	}
}

func TestCompiler_Cached(t *testing.T) {
	c := NewCompiler()
	a, err := c.Compile(witRect, reflect.TypeOf(testRect{}))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := c.Compile(witRect, reflect.TypeOf(&testRect{}))
	if a != b {
		t.Error("expected the cached compiled type for the pointer form")
	}
}

func TestCompiler_FieldMatching(t *testing.T) {
	type screen struct {
		Scale     float32 `wit:"device-scale-factor"`
		DepthBits int32
		Ignored   int32 `wit:"-"`
	}
	rec := &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{
		{Name: "device-scale-factor", Type: wit.F32{}},
		{Name: "depth-bits", Type: wit.S32{}},
	}}}

	ct, err := Compile(rec, reflect.TypeOf(screen{}))
	if err != nil {
		t.Fatal(err)
	}
	if ct.Fields[0].Name != "Scale" || ct.Fields[1].Name != "DepthBits" {
		t.Errorf("fields = %s, %s", ct.Fields[0].Name, ct.Fields[1].Name)
	}
}

func TestCompiler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		wit    wit.Type
		goType reflect.Type
		kind   errors.Kind
	}{
		{"missing field", witRect, reflect.TypeOf(struct{ X, Y int32 }{}), errors.KindNotFound},
		{"wrong field type", witRect, reflect.TypeOf(struct{ X, Y, Width, Height int64 }{}), errors.KindInvalidInput},
		{"record into int", witRect, reflect.TypeOf(int32(0)), errors.KindInvalidInput},
		{"string into int", wit.String{}, reflect.TypeOf(0), errors.KindInvalidInput},
		{"nil go type", witRect, nil, errors.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCompiler().Compile(tt.wit, tt.goType)
			if err == nil {
				t.Fatal("expected error")
			}
			var e *errors.Error
			if !asError(err, &e) || e.Kind != tt.kind {
				t.Errorf("got %v, want kind %s", err, tt.kind)
			}
		})
	}
}

func asError(err error, target **errors.Error) bool {
	e, ok := err.(*errors.Error)
	if ok {
		*target = e
	}
	return ok
}

type testCursor uint8

func TestCompiler_EnumRoundTrip(t *testing.T) {
	type cursorRecord struct {
		Cursor testCursor
		Hot    bool
	}
	enum := &wit.TypeDef{Kind: &wit.Enum{Cases: []wit.EnumCase{
		{Name: "pointer"}, {Name: "cross"}, {Name: "hand"},
	}}}
	rec := &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{
		{Name: "cursor", Type: enum},
		{Name: "hot", Type: wit.Bool{}},
	}}}
	ct := MustCompile(rec, reflect.TypeOf(cursorRecord{}))

	h, _ := newCountingHeap()
	l, err := h.NewRecords(ct, []cursorRecord{{Cursor: 2, Hot: true}})
	if err != nil {
		t.Fatal(err)
	}
	defer l.Clear()

	var out []cursorRecord
	if err := h.ReadRecords(ct, &l, &out); err != nil {
		t.Fatal(err)
	}
	if out[0].Cursor != 2 || !out[0].Hot {
		t.Errorf("got %+v", out[0])
	}

	if _, err := h.NewRecords(ct, []cursorRecord{{Cursor: 9}}); err == nil {
		t.Error("expected error for an out of range case")
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustCompile(witRect, reflect.TypeOf(""))
}
