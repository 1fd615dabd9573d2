package capi

// Browser is cef_browser_t.
type Browser struct {
	Base Base

	GetIdentifier      func(self *Browser) int32
	IsLoading          func(self *Browser) int32
	CanGoBack          func(self *Browser) int32
	CanGoForward       func(self *Browser) int32
	GetMainFrame       func(self *Browser) *Frame
	GetFrameNames      func(self *Browser) List
	IsSame             func(self *Browser, that *Browser) int32
	SendProcessMessage func(self *Browser, targetProcess int32, message *ProcessMessage) int32
}

// Frame is cef_frame_t.
type Frame struct {
	Base Base

	IsValid       func(self *Frame) int32
	IsMain        func(self *Frame) int32
	GetName       func(self *Frame) String
	GetIdentifier func(self *Frame) int64
	GetURL        func(self *Frame) String
	GetBrowser    func(self *Frame) *Browser
	LoadURL       func(self *Frame, url *String)
}

// Request is cef_request_t.
type Request struct {
	Base Base

	IsReadOnly func(self *Request) int32
	GetURL     func(self *Request) String
	GetMethod  func(self *Request) String
	SetURL     func(self *Request, url *String)
}

// ListValue is cef_list_value_t.
type ListValue struct {
	Base Base

	IsValid   func(self *ListValue) int32
	GetSize   func(self *ListValue) uint32
	SetSize   func(self *ListValue, size uint32) int32
	GetType   func(self *ListValue, index uint32) int32
	GetString func(self *ListValue, index uint32) String
	SetString func(self *ListValue, index uint32, value *String) int32
	GetInt    func(self *ListValue, index uint32) int32
	SetInt    func(self *ListValue, index uint32, value int32) int32
}

// ProcessMessage is cef_process_message_t.
type ProcessMessage struct {
	Base Base

	IsValid         func(self *ProcessMessage) int32
	GetName         func(self *ProcessMessage) String
	GetArgumentList func(self *ProcessMessage) *ListValue
}

// DragData is cef_drag_data_t.
type DragData struct {
	Base Base

	IsLink          func(self *DragData) int32
	IsFragment      func(self *DragData) int32
	IsFile          func(self *DragData) int32
	GetLinkURL      func(self *DragData) String
	GetFragmentText func(self *DragData) String
	GetFileNames    func(self *DragData) List
}

// CommandLine is cef_command_line_t.
type CommandLine struct {
	Base Base

	IsReadOnly            func(self *CommandLine) int32
	HasSwitch             func(self *CommandLine, name *String) int32
	GetSwitchValue        func(self *CommandLine, name *String) String
	AppendSwitch          func(self *CommandLine, name *String)
	AppendSwitchWithValue func(self *CommandLine, name, value *String)
	GetArgv               func(self *CommandLine) List
}

// SchemeRegistrar is cef_scheme_registrar_t.
type SchemeRegistrar struct {
	Base Base

	AddCustomScheme func(self *SchemeRegistrar, schemeName *String, isStandard, isLocal, isDisplayIsolated int32) int32
}

// AuthCallback is cef_auth_callback_t.
type AuthCallback struct {
	Base Base

	Cont   func(self *AuthCallback, username, password *String)
	Cancel func(self *AuthCallback)
}

// RequestCallback is cef_request_callback_t.
type RequestCallback struct {
	Base Base

	Cont   func(self *RequestCallback, allow int32)
	Cancel func(self *RequestCallback)
}

// JSDialogCallback is cef_jsdialog_callback_t.
type JSDialogCallback struct {
	Base Base

	Cont func(self *JSDialogCallback, success int32, userInput *String)
}

// V8Context is cef_v8context_t.
type V8Context struct {
	Base Base

	IsValid    func(self *V8Context) int32
	GetBrowser func(self *V8Context) *Browser
	GetFrame   func(self *V8Context) *Frame
	Eval       func(self *V8Context, code *String, retval *String, exception **V8Exception) int32
	IsSame     func(self *V8Context, that *V8Context) int32
}

// V8Exception is cef_v8exception_t.
type V8Exception struct {
	Base Base

	GetMessage            func(self *V8Exception) String
	GetSourceLine         func(self *V8Exception) String
	GetScriptResourceName func(self *V8Exception) String
	GetLineNumber         func(self *V8Exception) int32
	GetStartColumn        func(self *V8Exception) int32
	GetEndColumn          func(self *V8Exception) int32
}

// V8StackTrace is cef_v8stack_trace_t.
type V8StackTrace struct {
	Base Base

	IsValid       func(self *V8StackTrace) int32
	GetFrameCount func(self *V8StackTrace) int32
	GetFrameText  func(self *V8StackTrace, index int32) String
}

// DOMNode is cef_domnode_t.
type DOMNode struct {
	Base Base

	GetType    func(self *DOMNode) int32
	IsElement  func(self *DOMNode) int32
	IsEditable func(self *DOMNode) int32
	GetName    func(self *DOMNode) String
	GetValue   func(self *DOMNode) String
}
