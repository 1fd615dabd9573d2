package idl

import (
	"reflect"

	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/errors"
)

var structTypes = map[string]reflect.Type{
	"App":                   reflect.TypeOf(capi.App{}),
	"AuthCallback":          reflect.TypeOf(capi.AuthCallback{}),
	"Browser":               reflect.TypeOf(capi.Browser{}),
	"BrowserProcessHandler": reflect.TypeOf(capi.BrowserProcessHandler{}),
	"Client":                reflect.TypeOf(capi.Client{}),
	"CommandLine":           reflect.TypeOf(capi.CommandLine{}),
	"DOMNode":               reflect.TypeOf(capi.DOMNode{}),
	"DragData":              reflect.TypeOf(capi.DragData{}),
	"DragHandler":           reflect.TypeOf(capi.DragHandler{}),
	"Frame":                 reflect.TypeOf(capi.Frame{}),
	"JSDialogCallback":      reflect.TypeOf(capi.JSDialogCallback{}),
	"JSDialogHandler":       reflect.TypeOf(capi.JSDialogHandler{}),
	"ListValue":             reflect.TypeOf(capi.ListValue{}),
	"LoadHandler":           reflect.TypeOf(capi.LoadHandler{}),
	"Panel":                 reflect.TypeOf(capi.Panel{}),
	"PanelDelegate":         reflect.TypeOf(capi.PanelDelegate{}),
	"ProcessMessage":        reflect.TypeOf(capi.ProcessMessage{}),
	"RenderHandler":         reflect.TypeOf(capi.RenderHandler{}),
	"RenderProcessHandler":  reflect.TypeOf(capi.RenderProcessHandler{}),
	"Request":               reflect.TypeOf(capi.Request{}),
	"RequestCallback":       reflect.TypeOf(capi.RequestCallback{}),
	"RequestHandler":        reflect.TypeOf(capi.RequestHandler{}),
	"SchemeRegistrar":       reflect.TypeOf(capi.SchemeRegistrar{}),
	"V8Context":             reflect.TypeOf(capi.V8Context{}),
	"V8Exception":           reflect.TypeOf(capi.V8Exception{}),
	"V8StackTrace":          reflect.TypeOf(capi.V8StackTrace{}),
	"View":                  reflect.TypeOf(capi.View{}),
	"ViewDelegate":          reflect.TypeOf(capi.ViewDelegate{}),
	"Window":                reflect.TypeOf(capi.Window{}),
	"WindowDelegate":        reflect.TypeOf(capi.WindowDelegate{}),
}

// StructType returns the capi struct bound to the named interface.
func StructType(name string) (reflect.Type, bool) {
	t, ok := structTypes[name]
	return t, ok
}

// VerifyAll checks every description against its capi struct and returns
// one error per mismatch.
func VerifyAll() []error {
	var errs []error
	for _, desc := range catalog {
		t, ok := structTypes[desc.Name]
		if !ok {
			errs = append(errs, errors.NotFound(errors.PhaseRegister, "struct", desc.Name))
			continue
		}
		if err := Verify(desc, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
