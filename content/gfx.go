package content

// Size is a size in device-independent pixels.
type Size struct {
	Width  int
	Height int
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is a rectangle in device-independent pixels.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size returns the rectangle's size.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlap of r and o, or the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.Width, o.X+o.Width), min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Range is a half-open range of character offsets.
type Range struct {
	Start int
	End   int
}

// ScreenInfo describes the display a widget is shown on.
type ScreenInfo struct {
	DeviceScaleFactor float32
	Depth             int
	DepthPerComponent int
	IsMonochrome      bool
	Rect              Rect
	AvailableRect     Rect
}

// DraggableRegion is a region of a frameless window's page marked with
// -webkit-app-region.
type DraggableRegion struct {
	Bounds    Rect
	Draggable bool
}

// CursorType is the engine's cursor identifier.
type CursorType int

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
