package idl

import (
	"github.com/wippyai/cef-bridge/wrapper"
	"go.bytecodealliance.org/wit"
)

var (
	s32 = wit.S32{}
	u32 = wit.U32{}
	s64 = wit.S64{}
	f64 = wit.F64{}
)

var catalog = []Interface{
	// engine objects
	{
		Name: "Browser", Type: wrapper.TypeBrowser, Side: Engine,
		Methods: []Method{
			m("Identifier", "GetIdentifier", ret(Simple, s32)),
			m("IsLoading", "IsLoading", ret(Bool, nil)),
			m("CanGoBack", "CanGoBack", ret(Bool, nil)),
			m("CanGoForward", "CanGoForward", ret(Bool, nil)),
			m("MainFrame", "GetMainFrame", retRef(RefPtrSame, "Frame")),
			m("FrameNames", "GetFrameNames", ret(StringVec, wit.String{})),
			m("IsSame", "IsSame", ret(Bool, nil), optional(ref("that", RefPtrSame, "Browser"))),
			m("SendProcessMessage", "SendProcessMessage", ret(Bool, nil),
				p("targetProcess", Enum, nil),
				ref("message", RefPtrSame, "ProcessMessage")),
		},
	},
	{
		Name: "Frame", Type: wrapper.TypeFrame, Side: Engine,
		Methods: []Method{
			m("IsValid", "IsValid", ret(Bool, nil)),
			m("IsMain", "IsMain", ret(Bool, nil)),
			m("Name", "GetName", ret(StringUserFree, nil)),
			m("Identifier", "GetIdentifier", ret(Simple, s64)),
			m("URL", "GetURL", ret(StringUserFree, nil)),
			m("Browser", "GetBrowser", retRef(RefPtrSame, "Browser")),
			m("LoadURL", "LoadURL", nil, p("url", StringByRef, nil)),
		},
	},
	{
		Name: "Request", Type: wrapper.TypeRequest, Side: Engine,
		Methods: []Method{
			m("IsReadOnly", "IsReadOnly", ret(Bool, nil)),
			m("URL", "GetURL", ret(StringUserFree, nil)),
			m("Method", "GetMethod", ret(StringUserFree, nil)),
			m("SetURL", "SetURL", nil, p("url", StringByRef, nil)),
		},
	},
	{
		Name: "ListValue", Type: wrapper.TypeListValue, Side: Engine,
		Methods: []Method{
			m("IsValid", "IsValid", ret(Bool, nil)),
			m("Size", "GetSize", ret(Simple, u32)),
			m("SetSize", "SetSize", ret(Bool, nil), p("size", Simple, u32)),
			m("GetType", "GetType", ret(Simple, s32), p("index", Simple, u32)),
			m("GetString", "GetString", ret(StringUserFree, nil), p("index", Simple, u32)),
			m("SetString", "SetString", ret(Bool, nil), p("index", Simple, u32), optional(p("value", StringByRef, nil))),
			m("GetInt", "GetInt", ret(Simple, s32), p("index", Simple, u32)),
			m("SetInt", "SetInt", ret(Bool, nil), p("index", Simple, u32), p("value", Simple, s32)),
		},
	},
	{
		Name: "ProcessMessage", Type: wrapper.TypeProcessMessage, Side: Engine,
		Methods: []Method{
			m("IsValid", "IsValid", ret(Bool, nil)),
			m("Name", "GetName", ret(StringUserFree, nil)),
			m("ArgumentList", "GetArgumentList", retRef(RefPtrSame, "ListValue")),
		},
	},
	{
		Name: "DragData", Type: wrapper.TypeDragData, Side: Engine,
		Methods: []Method{
			m("IsLink", "IsLink", ret(Bool, nil)),
			m("IsFragment", "IsFragment", ret(Bool, nil)),
			m("IsFile", "IsFile", ret(Bool, nil)),
			m("LinkURL", "GetLinkURL", ret(StringUserFree, nil)),
			m("FragmentText", "GetFragmentText", ret(StringUserFree, nil)),
			m("FileNames", "GetFileNames", ret(StringVec, wit.String{})),
		},
	},
	{
		Name: "CommandLine", Type: wrapper.TypeCommandLine, Side: Engine,
		Methods: []Method{
			m("IsReadOnly", "IsReadOnly", ret(Bool, nil)),
			m("HasSwitch", "HasSwitch", ret(Bool, nil), p("name", StringByRef, nil)),
			m("SwitchValue", "GetSwitchValue", ret(StringUserFree, nil), p("name", StringByRef, nil)),
			m("AppendSwitch", "AppendSwitch", nil, p("name", StringByRef, nil)),
			m("AppendSwitchWithValue", "AppendSwitchWithValue", nil,
				p("name", StringByRef, nil),
				p("value", StringByRef, nil)),
			m("Argv", "GetArgv", ret(StringVec, wit.String{})),
		},
	},
	{
		Name: "SchemeRegistrar", Type: wrapper.TypeSchemeRegistrar, Side: Engine,
		Methods: []Method{
			m("AddCustomScheme", "AddCustomScheme", ret(Bool, nil),
				p("schemeName", StringByRef, nil),
				p("isStandard", Bool, nil),
				p("isLocal", Bool, nil),
				p("isDisplayIsolated", Bool, nil)),
		},
	},
	{
		Name: "AuthCallback", Type: wrapper.TypeAuthCallback, Side: Engine,
		Methods: []Method{
			m("Continue", "Cont", nil,
				p("username", StringByRef, nil),
				p("password", StringByRef, nil)),
			m("Cancel", "Cancel", nil),
		},
	},
	{
		Name: "RequestCallback", Type: wrapper.TypeRequestCallback, Side: Engine,
		Methods: []Method{
			m("Continue", "Cont", nil, p("allow", Bool, nil)),
			m("Cancel", "Cancel", nil),
		},
	},
	{
		Name: "JSDialogCallback", Type: wrapper.TypeJSDialogCallback, Side: Engine,
		Methods: []Method{
			m("Continue", "Cont", nil,
				p("success", Bool, nil),
				optional(p("userInput", StringByRef, nil))),
		},
	},
	{
		Name: "V8Context", Type: wrapper.TypeV8Context, Side: Engine,
		Methods: []Method{
			m("IsValid", "IsValid", ret(Bool, nil)),
			m("Browser", "GetBrowser", retRef(RefPtrSame, "Browser")),
			m("Frame", "GetFrame", retRef(RefPtrSame, "Frame")),
			m("Eval", "Eval", ret(Bool, nil),
				p("code", StringByRef, nil),
				p("retval", StringOut, nil),
				ref("exception", RefPtrOut, "V8Exception")),
			m("IsSame", "IsSame", ret(Bool, nil), ref("that", RefPtrSame, "V8Context")),
		},
	},
	{
		Name: "V8Exception", Type: wrapper.TypeV8Exception, Side: Engine,
		Methods: []Method{
			m("Message", "GetMessage", ret(StringUserFree, nil)),
			m("SourceLine", "GetSourceLine", ret(StringUserFree, nil)),
			m("ScriptResourceName", "GetScriptResourceName", ret(StringUserFree, nil)),
			m("LineNumber", "GetLineNumber", ret(Simple, s32)),
			m("StartColumn", "GetStartColumn", ret(Simple, s32)),
			m("EndColumn", "GetEndColumn", ret(Simple, s32)),
		},
	},
	{
		Name: "V8StackTrace", Type: wrapper.TypeV8StackTrace, Side: Engine,
		Methods: []Method{
			m("IsValid", "IsValid", ret(Bool, nil)),
			m("FrameCount", "GetFrameCount", ret(Simple, s32)),
			m("FrameText", "GetFrameText", ret(StringUserFree, nil), p("index", Simple, s32)),
		},
	},
	{
		Name: "DOMNode", Type: wrapper.TypeDOMNode, Side: Engine,
		Methods: []Method{
			m("Type", "GetType", ret(Enum, nil)),
			m("IsElement", "IsElement", ret(Bool, nil)),
			m("IsEditable", "IsEditable", ret(Bool, nil)),
			m("Name", "GetName", ret(StringUserFree, nil)),
			m("Value", "GetValue", ret(StringUserFree, nil)),
		},
	},
	{
		Name: "View", Type: wrapper.TypeView, Side: Engine,
		Methods: []Method{
			m("TypeString", "GetTypeString", ret(StringUserFree, nil)),
			m("ID", "GetID", ret(Simple, s32)),
			m("SetID", "SetID", nil, p("id", Simple, s32)),
			m("Size", "GetSize", ret(Struct, SizeType)),
			m("SetSize", "SetSize", nil, p("size", Struct, SizeType)),
			m("IsVisible", "IsVisible", ret(Bool, nil)),
			m("SetVisible", "SetVisible", nil, p("visible", Bool, nil)),
			m("ParentView", "GetParentView", retRef(RefPtrSame, "View")),
		},
	},
	{
		Name: "Panel", Parent: "View", Type: wrapper.TypePanel, Side: Engine,
		Methods: []Method{
			m("ChildViewCount", "GetChildViewCount", ret(Simple, u32)),
			m("ChildViewAt", "GetChildViewAt", retRef(RefPtrSame, "View"), p("index", Simple, s32)),
			m("AddChildView", "AddChildView", nil, ref("view", RefPtrSame, "View")),
		},
	},
	{
		Name: "Window", Parent: "Panel", Type: wrapper.TypeWindow, Side: Engine,
		Methods: []Method{
			m("Show", "Show", nil),
			m("Hide", "Hide", nil),
			m("Title", "GetTitle", ret(StringUserFree, nil)),
			m("SetTitle", "SetTitle", nil, optional(p("title", StringByRef, nil))),
			m("Close", "Close", nil),
			m("IsClosed", "IsClosed", ret(Bool, nil)),
			m("CenterWindow", "CenterWindow", nil, p("size", Struct, SizeType)),
		},
	},

	// client handlers
	{
		Name: "App", Type: wrapper.TypeApp, Side: Client,
		Methods: []Method{
			m("OnBeforeCommandLineProcessing", "OnBeforeCommandLineProcessing", nil,
				optional(p("processType", StringByRef, nil)),
				ref("commandLine", RefPtrDiff, "CommandLine")),
			m("OnRegisterCustomSchemes", "OnRegisterCustomSchemes", nil,
				ref("registrar", RefPtrDiff, "SchemeRegistrar")),
			m("GetBrowserProcessHandler", "GetBrowserProcessHandler", retRef(RefPtrSame, "BrowserProcessHandler")),
			m("GetRenderProcessHandler", "GetRenderProcessHandler", retRef(RefPtrSame, "RenderProcessHandler")),
		},
	},
	{
		Name: "BrowserProcessHandler", Type: wrapper.TypeBrowserProcessHandler, Side: Client,
		Methods: []Method{
			m("OnContextInitialized", "OnContextInitialized", nil),
			m("OnBeforeChildProcessLaunch", "OnBeforeChildProcessLaunch", nil,
				ref("commandLine", RefPtrDiff, "CommandLine")),
			m("OnRenderProcessThreadCreated", "OnRenderProcessThreadCreated", nil,
				ref("extraInfo", RefPtrDiff, "ListValue")),
		},
	},
	{
		Name: "RenderProcessHandler", Type: wrapper.TypeRenderProcessHandler, Side: Client,
		Methods: []Method{
			m("OnRenderThreadCreated", "OnRenderThreadCreated", nil,
				ref("extraInfo", RefPtrDiff, "ListValue")),
			m("OnWebKitInitialized", "OnWebKitInitialized", nil),
			m("OnBrowserCreated", "OnBrowserCreated", nil, ref("browser", RefPtrDiff, "Browser")),
			m("OnBrowserDestroyed", "OnBrowserDestroyed", nil, ref("browser", RefPtrDiff, "Browser")),
			m("GetLoadHandler", "GetLoadHandler", retRef(RefPtrSame, "LoadHandler")),
			m("OnBeforeNavigation", "OnBeforeNavigation", ret(Bool, nil),
				ref("browser", RefPtrDiff, "Browser"),
				ref("frame", RefPtrDiff, "Frame"),
				ref("request", RefPtrDiff, "Request"),
				p("navigationType", Enum, nil),
				p("isRedirect", Bool, nil)),
			m("OnContextCreated", "OnContextCreated", nil,
				ref("browser", RefPtrDiff, "Browser"),
				ref("frame", RefPtrDiff, "Frame"),
				ref("context", RefPtrDiff, "V8Context")),
			m("OnContextReleased", "OnContextReleased", nil,
				ref("browser", RefPtrDiff, "Browser"),
				ref("frame", RefPtrDiff, "Frame"),
				ref("context", RefPtrDiff, "V8Context")),
			m("OnUncaughtException", "OnUncaughtException", nil,
				ref("browser", RefPtrDiff, "Browser"),
				ref("frame", RefPtrDiff, "Frame"),
				ref("context", RefPtrDiff, "V8Context"),
				ref("exception", RefPtrDiff, "V8Exception"),
				ref("stackTrace", RefPtrDiff, "V8StackTrace")),
			m("OnFocusedNodeChanged", "OnFocusedNodeChanged", nil,
				ref("browser", RefPtrDiff, "Browser"),
				optional(ref("frame", RefPtrDiff, "Frame")),
				optional(ref("node", RefPtrDiff, "DOMNode"))),
			m("OnProcessMessageReceived", "OnProcessMessageReceived", ret(Bool, nil),
				ref("browser", RefPtrDiff, "Browser"),
				p("sourceProcess", Enum, nil),
				ref("message", RefPtrDiff, "ProcessMessage")),
		},
	},
	{
		Name: "Client", Type: wrapper.TypeClient, Side: Client,
		Methods: []Method{
			m("GetDragHandler", "GetDragHandler", retRef(RefPtrSame, "DragHandler")),
			m("GetJSDialogHandler", "GetJSDialogHandler", retRef(RefPtrSame, "JSDialogHandler")),
			m("GetLoadHandler", "GetLoadHandler", retRef(RefPtrSame, "LoadHandler")),
			m("GetRenderHandler", "GetRenderHandler", retRef(RefPtrSame, "RenderHandler")),
			m("GetRequestHandler", "GetRequestHandler", retRef(RefPtrSame, "RequestHandler")),
			m("OnProcessMessageReceived", "OnProcessMessageReceived", ret(Bool, nil),
				ref("browser", RefPtrDiff, "Browser"),
				p("sourceProcess", Enum, nil),
				ref("message", RefPtrDiff, "ProcessMessage")),
		},
	},
	{
		Name: "LoadHandler", Type: wrapper.TypeLoadHandler, Side: Client,
		Methods: []Method{
			m("OnLoadingStateChange", "OnLoadingStateChange", nil,
				ref("browser", RefPtrDiff, "Browser"),
				p("isLoading", Bool, nil),
				p("canGoBack", Bool, nil),
				p("canGoForward", Bool, nil)),
			m("OnLoadStart", "OnLoadStart", nil,
				ref("browser", RefPtrDiff, "Browser"),
				ref("frame", RefPtrDiff, "Frame"),
				p("transitionType", Enum, nil)),
			m("OnLoadEnd", "OnLoadEnd", nil,
				ref("browser", RefPtrDiff, "Browser"),
				ref("frame", RefPtrDiff, "Frame"),
				p("httpStatusCode", Simple, s32)),
			m("OnLoadError", "OnLoadError", nil,
				ref("browser", RefPtrDiff, "Browser"),
				ref("frame", RefPtrDiff, "Frame"),
				p("errorCode", Enum, nil),
				optional(p("errorText", StringByRef, nil)),
				p("failedURL", StringByRef, nil)),
		},
	},
	{
		Name: "DragHandler", Type: wrapper.TypeDragHandler, Side: Client,
		Methods: []Method{
			m("OnDragEnter", "OnDragEnter", ret(Bool, nil),
				ref("browser", RefPtrDiff, "Browser"),
				ref("dragData", RefPtrDiff, "DragData"),
				p("mask", Enum, nil)),
			m("OnDraggableRegionsChanged", "OnDraggableRegionsChanged", nil,
				ref("browser", RefPtrDiff, "Browser"),
				optional(p("regions", SimpleVec, DraggableRegionType))),
		},
	},
	{
		Name: "JSDialogHandler", Type: wrapper.TypeJSDialogHandler, Side: Client,
		Methods: []Method{
			m("OnJSDialog", "OnJSDialog", ret(Bool, nil),
				ref("browser", RefPtrDiff, "Browser"),
				optional(p("originURL", StringByRef, nil)),
				p("dialogType", Enum, nil),
				optional(p("messageText", StringByRef, nil)),
				optional(p("defaultPromptText", StringByRef, nil)),
				ref("callback", RefPtrDiff, "JSDialogCallback"),
				p("suppressMessage", BoolByRef, nil)),
			m("OnBeforeUnloadDialog", "OnBeforeUnloadDialog", ret(Bool, nil),
				ref("browser", RefPtrDiff, "Browser"),
				optional(p("messageText", StringByRef, nil)),
				p("isReload", Bool, nil),
				ref("callback", RefPtrDiff, "JSDialogCallback")),
			m("OnResetDialogState", "OnResetDialogState", nil, ref("browser", RefPtrDiff, "Browser")),
			m("OnDialogClosed", "OnDialogClosed", nil, ref("browser", RefPtrDiff, "Browser")),
		},
	},
	{
		Name: "RequestHandler", Type: wrapper.TypeRequestHandler, Side: Client,
		Methods: []Method{
			m("OnCertificateError", "OnCertificateError", ret(Bool, nil),
				ref("browser", RefPtrDiff, "Browser"),
				p("certError", Enum, nil),
				p("requestURL", StringByRef, nil),
				ref("callback", RefPtrDiff, "RequestCallback")),
			m("GetAuthCredentials", "GetAuthCredentials", ret(Bool, nil),
				ref("browser", RefPtrDiff, "Browser"),
				ref("frame", RefPtrDiff, "Frame"),
				p("isProxy", Bool, nil),
				p("host", StringByRef, nil),
				p("port", Simple, s32),
				optional(p("realm", StringByRef, nil)),
				optional(p("scheme", StringByRef, nil)),
				ref("callback", RefPtrDiff, "AuthCallback")),
			m("OnRenderProcessTerminated", "OnRenderProcessTerminated", nil,
				ref("browser", RefPtrDiff, "Browser"),
				p("status", Enum, nil)),
		},
	},
	{
		Name: "RenderHandler", Type: wrapper.TypeRenderHandler, Side: Client,
		Methods: []Method{
			m("GetViewRect", "GetViewRect", ret(Bool, nil),
				ref("browser", RefPtrDiff, "Browser"),
				p("rect", Struct, RectType)),
			m("GetScreenInfo", "GetScreenInfo", ret(Bool, nil),
				ref("browser", RefPtrDiff, "Browser"),
				p("screenInfo", Struct, ScreenInfoType)),
			m("GetScreenPoint", "GetScreenPoint", ret(Bool, nil),
				ref("browser", RefPtrDiff, "Browser"),
				p("viewX", Simple, s32),
				p("viewY", Simple, s32),
				p("screenX", SimpleByRef, s32),
				p("screenY", SimpleByRef, s32)),
			m("OnPopupShow", "OnPopupShow", nil,
				ref("browser", RefPtrDiff, "Browser"),
				p("show", Bool, nil)),
			m("OnPopupSize", "OnPopupSize", nil,
				ref("browser", RefPtrDiff, "Browser"),
				p("rect", Struct, RectType)),
			m("OnPaint", "OnPaint", nil,
				ref("browser", RefPtrDiff, "Browser"),
				p("type", Enum, nil),
				optional(p("dirtyRects", SimpleVec, RectType)),
				p("buffer", Simple, u32),
				p("width", Simple, s32),
				p("height", Simple, s32)),
			m("OnCursorChange", "OnCursorChange", nil,
				ref("browser", RefPtrDiff, "Browser"),
				p("type", Enum, nil)),
			m("OnScrollOffsetChanged", "OnScrollOffsetChanged", nil,
				ref("browser", RefPtrDiff, "Browser"),
				p("x", Simple, f64),
				p("y", Simple, f64)),
			m("OnImeCompositionRangeChanged", "OnImeCompositionRangeChanged", nil,
				ref("browser", RefPtrDiff, "Browser"),
				p("selectedRange", Struct, RangeType),
				optional(p("characterBounds", SimpleVec, RectType))),
		},
	},
	{
		Name: "ViewDelegate", Type: wrapper.TypeViewDelegate, Side: Client,
		Methods: []Method{
			m("GetPreferredSize", "GetPreferredSize", ret(Struct, SizeType), ref("view", RefPtrDiff, "View")),
			m("GetMinimumSize", "GetMinimumSize", ret(Struct, SizeType), ref("view", RefPtrDiff, "View")),
			m("GetMaximumSize", "GetMaximumSize", ret(Struct, SizeType), ref("view", RefPtrDiff, "View")),
			m("GetHeightForWidth", "GetHeightForWidth", ret(Simple, s32),
				ref("view", RefPtrDiff, "View"),
				p("width", Simple, s32)),
			m("OnParentViewChanged", "OnParentViewChanged", nil,
				ref("view", RefPtrDiff, "View"),
				p("added", Bool, nil),
				ref("parent", RefPtrDiff, "View")),
			m("OnChildViewChanged", "OnChildViewChanged", nil,
				ref("view", RefPtrDiff, "View"),
				p("added", Bool, nil),
				ref("child", RefPtrDiff, "View")),
		},
	},
	{
		Name: "PanelDelegate", Parent: "ViewDelegate", Type: wrapper.TypePanelDelegate, Side: Client,
	},
	{
		Name: "WindowDelegate", Parent: "PanelDelegate", Type: wrapper.TypeWindowDelegate, Side: Client,
		Methods: []Method{
			m("OnWindowCreated", "OnWindowCreated", nil, ref("window", RefPtrDiff, "Window")),
			m("OnWindowDestroyed", "OnWindowDestroyed", nil, ref("window", RefPtrDiff, "Window")),
			m("IsFrameless", "IsFrameless", ret(Bool, nil), ref("window", RefPtrDiff, "Window")),
			m("CanClose", "CanClose", ret(Bool, nil), ref("window", RefPtrDiff, "Window")),
		},
	},
}

// All returns the description of every bound interface.
func All() []Interface {
	out := make([]Interface, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the description of the named interface.
func Lookup(name string) (Interface, bool) {
	for _, iface := range catalog {
		if iface.Name == name {
			return iface, true
		}
	}
	return Interface{}, false
}
