package content

// KeyEventType distinguishes the phases of a key press.
type KeyEventType int

const (
	KeyRawDown KeyEventType = iota
	KeyDown
	KeyUp
	KeyChar
)

// KeyEvent is a keyboard event bound for a render widget.
type KeyEvent struct {
	Type      KeyEventType
	KeyCode   int
	Character rune
	Modifiers uint32
}

// MouseEventType distinguishes mouse actions.
type MouseEventType int

const (
	MouseMove MouseEventType = iota
	MouseDown
	MouseUp
	MouseLeave
)

// MouseButton identifies the button of a MouseDown or MouseUp.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// MouseEvent is a mouse event in view coordinates.
type MouseEvent struct {
	Type       MouseEventType
	X          int
	Y          int
	Button     MouseButton
	ClickCount int
	Modifiers  uint32
}

// WheelEvent is a mouse wheel event in view coordinates.
type WheelEvent struct {
	X         int
	Y         int
	DeltaX    float64
	DeltaY    float64
	Modifiers uint32
}
