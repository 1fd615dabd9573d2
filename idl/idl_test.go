package idl

import (
	"reflect"
	"testing"

	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/wrapper"
	"go.bytecodealliance.org/wit"
)

func TestVerifyAll(t *testing.T) {
	for _, err := range VerifyAll() {
		t.Error(err)
	}
}

func TestCatalog_CoversEveryType(t *testing.T) {
	seen := make(map[wrapper.Type]string)
	for _, desc := range All() {
		if prev, ok := seen[desc.Type]; ok {
			t.Errorf("%s and %s share tag %s", prev, desc.Name, desc.Type)
		}
		seen[desc.Type] = desc.Name
		if desc.Type.String() != desc.Name {
			t.Errorf("%s carries tag %s", desc.Name, desc.Type)
		}
	}
	for tag := wrapper.TypeApp; tag <= wrapper.TypeWindowDelegate; tag++ {
		if _, ok := seen[tag]; !ok {
			t.Errorf("no description for %s", tag)
		}
	}
}

func TestCatalog_ParentsExist(t *testing.T) {
	for _, desc := range All() {
		if desc.Parent == "" {
			continue
		}
		parent, ok := Lookup(desc.Parent)
		if !ok {
			t.Errorf("%s: parent %s not described", desc.Name, desc.Parent)
			continue
		}
		if parent.Side != desc.Side {
			t.Errorf("%s refines %s across sides", desc.Name, desc.Parent)
		}
	}
}

func TestLayout_MatchesGoStructs(t *testing.T) {
	tests := []struct {
		name   string
		typ    wit.Type
		goType reflect.Type
	}{
		{"size", SizeType, reflect.TypeOf(capi.Size{})},
		{"point", PointType, reflect.TypeOf(capi.Point{})},
		{"rect", RectType, reflect.TypeOf(capi.Rect{})},
		{"range", RangeType, reflect.TypeOf(capi.Range{})},
		{"draggable-region", DraggableRegionType, reflect.TypeOf(capi.DraggableRegion{})},
		{"screen-info", ScreenInfoType, reflect.TypeOf(capi.ScreenInfo{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Layout(tt.typ)
			if uintptr(info.Size) != tt.goType.Size() {
				t.Errorf("layout size %d, Go size %d", info.Size, tt.goType.Size())
			}
			if uintptr(info.Align) != uintptr(tt.goType.Align()) {
				t.Errorf("layout align %d, Go align %d", info.Align, tt.goType.Align())
			}
		})
	}
}

func TestLayout_ScreenInfoOffsets(t *testing.T) {
	info := Layout(ScreenInfoType)
	want := map[string]uint32{
		"device-scale-factor": 0,
		"depth":               4,
		"is-monochrome":       12,
		"rect":                16,
		"available-rect":      32,
	}
	for name, off := range want {
		if info.FieldOffs[name] != off {
			t.Errorf("%s at %d, want %d", name, info.FieldOffs[name], off)
		}
	}
}

type driftedLoadHandler struct {
	Base capi.Base

	OnLoadingStateChange func(self *driftedLoadHandler, browser *capi.Browser, isLoading, canGoBack, canGoForward int32)
}

func TestVerify_DetectsDrift(t *testing.T) {
	desc, _ := Lookup("LoadHandler")

	tests := []struct {
		name string
		desc Interface
		typ  reflect.Type
	}{
		{"wrong struct name", desc, reflect.TypeOf(driftedLoadHandler{})},
		{"not a struct", desc, reflect.TypeOf(0)},
		{"fewer methods", func() Interface {
			d := desc
			d.Methods = d.Methods[:2]
			return d
		}(), reflect.TypeOf(capi.LoadHandler{})},
		{"renamed field", func() Interface {
			d := desc
			d.Methods = append([]Method(nil), d.Methods...)
			d.Methods[0].Field = "OnLoadingChanged"
			return d
		}(), reflect.TypeOf(capi.LoadHandler{})},
		{"wrong param class", func() Interface {
			d := desc
			d.Methods = append([]Method(nil), d.Methods...)
			d.Methods[1] = m("OnLoadStart", "OnLoadStart", nil,
				ref("browser", RefPtrDiff, "Browser"),
				ref("frame", RefPtrDiff, "Frame"),
				p("transitionType", StringByRef, nil))
			return d
		}(), reflect.TypeOf(capi.LoadHandler{})},
		{"wrong side", func() Interface {
			d := desc
			d.Methods = append([]Method(nil), d.Methods...)
			d.Methods[3] = m("OnLoadError", "OnLoadError", nil,
				ref("browser", RefPtrSame, "Browser"),
				ref("frame", RefPtrDiff, "Frame"),
				p("errorCode", Enum, nil),
				p("errorText", StringByRef, nil),
				p("failedURL", StringByRef, nil))
			return d
		}(), reflect.TypeOf(capi.LoadHandler{})},
		{"parent mismatch", func() Interface {
			d, _ := Lookup("Window")
			d.Parent = "View"
			return d
		}(), reflect.TypeOf(capi.Window{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Verify(tt.desc, tt.typ); err == nil {
				t.Error("expected drift to be reported")
			}
		})
	}
}

func TestClassString(t *testing.T) {
	if StringUserFree.String() != "string_userfree" {
		t.Errorf("got %s", StringUserFree)
	}
	if Class(200).String() != "unknown" {
		t.Errorf("got %s", Class(200))
	}
	if Client.String() != "client" || Engine.String() != "engine" {
		t.Error("side names")
	}
}
