package wrapper

import "github.com/wippyai/cef-bridge/capi"

// Type tags every bound interface.
type Type int32

const (
	TypeUnknown Type = iota
	TypeApp
	TypeAuthCallback
	TypeBrowser
	TypeBrowserProcessHandler
	TypeClient
	TypeCommandLine
	TypeDOMNode
	TypeDragData
	TypeDragHandler
	TypeFrame
	TypeJSDialogCallback
	TypeJSDialogHandler
	TypeListValue
	TypeLoadHandler
	TypePanel
	TypePanelDelegate
	TypeProcessMessage
	TypeRenderHandler
	TypeRenderProcessHandler
	TypeRequest
	TypeRequestCallback
	TypeRequestHandler
	TypeSchemeRegistrar
	TypeV8Context
	TypeV8Exception
	TypeV8StackTrace
	TypeView
	TypeViewDelegate
	TypeWindow
	TypeWindowDelegate
)

var typeNames = [...]string{
	TypeUnknown:               "unknown",
	TypeApp:                   "App",
	TypeAuthCallback:          "AuthCallback",
	TypeBrowser:               "Browser",
	TypeBrowserProcessHandler: "BrowserProcessHandler",
	TypeClient:                "Client",
	TypeCommandLine:           "CommandLine",
	TypeDOMNode:               "DOMNode",
	TypeDragData:              "DragData",
	TypeDragHandler:           "DragHandler",
	TypeFrame:                 "Frame",
	TypeJSDialogCallback:      "JSDialogCallback",
	TypeJSDialogHandler:       "JSDialogHandler",
	TypeListValue:             "ListValue",
	TypeLoadHandler:           "LoadHandler",
	TypePanel:                 "Panel",
	TypePanelDelegate:         "PanelDelegate",
	TypeProcessMessage:        "ProcessMessage",
	TypeRenderHandler:         "RenderHandler",
	TypeRenderProcessHandler:  "RenderProcessHandler",
	TypeRequest:               "Request",
	TypeRequestCallback:       "RequestCallback",
	TypeRequestHandler:        "RequestHandler",
	TypeSchemeRegistrar:       "SchemeRegistrar",
	TypeV8Context:             "V8Context",
	TypeV8Exception:           "V8Exception",
	TypeV8StackTrace:          "V8StackTrace",
	TypeView:                  "View",
	TypeViewDelegate:          "ViewDelegate",
	TypeWindow:                "Window",
	TypeWindowDelegate:        "WindowDelegate",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Direction says which side implements a binding's object.
type Direction string

const (
	// CppToCDirection exposes a Go object to the other side.
	CppToCDirection Direction = "cpptoc"
	// CToCppDirection adapts a struct from the other side.
	CToCppDirection Direction = "ctocpp"
)

// Dropper is implemented by objects that want to know when the other side
// released the last reference to their struct.
type Dropper interface {
	Drop()
}

// Adapter is implemented by every CToCpp adapter through its embedded CRef.
type Adapter interface {
	WrapperType() Type
	BaseStruct() *capi.Base
}
