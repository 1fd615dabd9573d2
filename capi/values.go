package capi

// Size is cef_size_t.
type Size struct {
	Width  int32
	Height int32
}

// Point is cef_point_t.
type Point struct {
	X int32
	Y int32
}

// Rect is cef_rect_t.
type Rect struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// Range is cef_range_t.
type Range struct {
	From int32
	To   int32
}

// DraggableRegion is cef_draggable_region_t.
type DraggableRegion struct {
	Bounds    Rect
	Draggable int32
}

// ScreenInfo is cef_screen_info_t.
type ScreenInfo struct {
	DeviceScaleFactor float32
	Depth             int32
	DepthPerComponent int32
	IsMonochrome      int32
	Rect              Rect
	AvailableRect     Rect
}
