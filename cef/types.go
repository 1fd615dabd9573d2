package cef

// ProcessID identifies the process a message is sent to or came from.
type ProcessID int32

const (
	PIDBrowser ProcessID = iota
	PIDRenderer
)

func (p ProcessID) String() string {
	switch p {
	case PIDBrowser:
		return "browser"
	case PIDRenderer:
		return "renderer"
	default:
		return "unknown"
	}
}

// TransitionType is the navigation transition, mirroring cef_transition_type_t.
type TransitionType int32

const (
	TTLink           TransitionType = 0
	TTExplicit       TransitionType = 1
	TTAutoSubframe   TransitionType = 3
	TTManualSubframe TransitionType = 4
	TTFormSubmit     TransitionType = 7
	TTReload         TransitionType = 8
)

// ErrorCode is a network error code as reported by the engine.
type ErrorCode int32

const (
	ErrNone                  ErrorCode = 0
	ErrFailed                ErrorCode = -2
	ErrAborted               ErrorCode = -3
	ErrInvalidArgument       ErrorCode = -4
	ErrInvalidHandle         ErrorCode = -5
	ErrFileNotFound          ErrorCode = -6
	ErrTimedOut              ErrorCode = -7
	ErrConnectionRefused     ErrorCode = -102
	ErrNameNotResolved       ErrorCode = -105
	ErrInternetDisconnected  ErrorCode = -106
	ErrCertCommonNameInvalid ErrorCode = -200
	ErrCertDateInvalid       ErrorCode = -201
	ErrCertAuthorityInvalid  ErrorCode = -202
)

// IsCertError reports whether the code is in the certificate error range.
func (e ErrorCode) IsCertError() bool {
	return e <= -200 && e > -300
}

// DragOperationsMask is a bit set of allowed drag operations.
type DragOperationsMask uint32

const (
	DragOperationNone    DragOperationsMask = 0
	DragOperationCopy    DragOperationsMask = 1
	DragOperationLink    DragOperationsMask = 2
	DragOperationGeneric DragOperationsMask = 4
	DragOperationPrivate DragOperationsMask = 8
	DragOperationMove    DragOperationsMask = 16
	DragOperationDelete  DragOperationsMask = 32
	DragOperationEvery   DragOperationsMask = ^DragOperationsMask(0)
)

// NavigationType classifies a render-side navigation.
type NavigationType int32

const (
	NavigationLinkClicked NavigationType = iota
	NavigationFormSubmitted
	NavigationBackForward
	NavigationReload
	NavigationFormResubmitted
	NavigationOther
)

// JSDialogType is the kind of script dialog.
type JSDialogType int32

const (
	JSDialogAlert JSDialogType = iota
	JSDialogConfirm
	JSDialogPrompt
)

// PaintElementType tells OnPaint which surface changed.
type PaintElementType int32

const (
	PETView PaintElementType = iota
	PETPopup
)

// CursorType is the cursor the page asked for.
type CursorType int32

const (
	CursorPointer CursorType = iota
	CursorCross
	CursorHand
	CursorIBeam
	CursorWait
	CursorHelp
	CursorEastResize
	CursorNorthResize
	CursorMove
	CursorNotAllowed
	CursorNone
	CursorCustom
)

// TerminationStatus describes how a render process ended.
type TerminationStatus int32

const (
	TSAbnormalTermination TerminationStatus = iota
	TSProcessWasKilled
	TSProcessCrashed
)

// ValueType is the type of a list entry, mirroring cef_value_type_t.
type ValueType int32

const (
	ValueTypeInvalid ValueType = iota
	ValueTypeNull
	ValueTypeBool
	ValueTypeInt
	ValueTypeDouble
	ValueTypeString
	ValueTypeBinary
	ValueTypeDictionary
	ValueTypeList
)

// DOMNodeType mirrors cef_dom_node_type_t.
type DOMNodeType int32

const (
	DOMNodeUnsupported DOMNodeType = iota
	DOMNodeElement
	DOMNodeAttribute
	DOMNodeText
	DOMNodeCDATASection
	DOMNodeProcessingInstruction
	DOMNodeComment
	DOMNodeDocument
	DOMNodeDocumentType
	DOMNodeDocumentFragment
)

// Size is a width and height in view coordinates.
type Size struct {
	Width  int32
	Height int32
}

// Point is a position in view or screen coordinates.
type Point struct {
	X int32
	Y int32
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Range is a half-open character range.
type Range struct {
	From int32
	To   int32
}

// DraggableRegion marks part of a frameless window as draggable or not.
type DraggableRegion struct {
	Bounds    Rect
	Draggable bool
}

// ScreenInfo describes the screen a view is shown on.
type ScreenInfo struct {
	DeviceScaleFactor float32
	Depth             int32
	DepthPerComponent int32
	IsMonochrome      bool
	Rect              Rect
	AvailableRect     Rect
}
