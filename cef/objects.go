package cef

// Browser is a single browser window or off-screen browser.
type Browser interface {
	Identifier() int32
	IsLoading() bool
	CanGoBack() bool
	CanGoForward() bool
	MainFrame() Frame
	FrameNames() []string
	IsSame(that Browser) bool
	SendProcessMessage(target ProcessID, message ProcessMessage) bool
}

// Frame is a document frame inside a Browser.
type Frame interface {
	IsValid() bool
	IsMain() bool
	Name() string
	Identifier() int64
	URL() string
	Browser() Browser
	LoadURL(url string)
}

// Request is a navigation or resource request.
type Request interface {
	IsReadOnly() bool
	URL() string
	Method() string
	SetURL(url string)
}

// ListValue is an indexed list of values carried by process messages.
type ListValue interface {
	IsValid() bool
	Size() int
	SetSize(size int) bool
	GetType(index int) ValueType
	GetString(index int) string
	SetString(index int, value string) bool
	GetInt(index int) int32
	SetInt(index int, value int32) bool
}

// ProcessMessage is a named message between browser and renderer.
type ProcessMessage interface {
	IsValid() bool
	Name() string
	ArgumentList() ListValue
}

// DragData describes what is being dragged.
type DragData interface {
	IsLink() bool
	IsFragment() bool
	IsFile() bool
	LinkURL() string
	FragmentText() string
	FileNames() []string
}

// CommandLine is a process command line.
type CommandLine interface {
	IsReadOnly() bool
	HasSwitch(name string) bool
	SwitchValue(name string) string
	AppendSwitch(name string)
	AppendSwitchWithValue(name, value string)
	Argv() []string
}

// SchemeRegistrar collects custom schemes during startup.
type SchemeRegistrar interface {
	AddCustomScheme(name string, isStandard, isLocal, isDisplayIsolated bool) bool
}

// AuthCallback resumes or cancels a credentials request.
type AuthCallback interface {
	Continue(username, password string)
	Cancel()
}

// RequestCallback resumes or cancels a request decision.
type RequestCallback interface {
	Continue(allow bool)
	Cancel()
}

// JSDialogCallback completes a script dialog.
type JSDialogCallback interface {
	Continue(success bool, userInput string)
}

// V8Context is a script context bound to a frame.
type V8Context interface {
	IsValid() bool
	Browser() Browser
	Frame() Frame
	// Eval runs code and returns its result as a string. On failure it
	// returns false and the exception.
	Eval(code string) (string, V8Exception, bool)
	IsSame(that V8Context) bool
}

// V8Exception is an uncaught script exception.
type V8Exception interface {
	Message() string
	SourceLine() string
	ScriptResourceName() string
	LineNumber() int
	StartColumn() int
	EndColumn() int
}

// V8StackTrace is the script stack at the point of an exception.
type V8StackTrace interface {
	IsValid() bool
	FrameCount() int
	FrameText(index int) string
}

// DOMNode is a node in a frame's document.
type DOMNode interface {
	Type() DOMNodeType
	IsElement() bool
	IsEditable() bool
	Name() string
	Value() string
}
