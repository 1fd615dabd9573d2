package idl

import (
	"github.com/wippyai/cef-bridge/transcoder"
	"go.bytecodealliance.org/wit"
)

func record(name string, fields ...wit.Field) *wit.TypeDef {
	return &wit.TypeDef{Name: &name, Kind: &wit.Record{Fields: fields}}
}

func field(name string, t wit.Type) wit.Field {
	return wit.Field{Name: name, Type: t}
}

var (
	SizeType = record("size",
		field("width", wit.S32{}),
		field("height", wit.S32{}))

	PointType = record("point",
		field("x", wit.S32{}),
		field("y", wit.S32{}))

	RectType = record("rect",
		field("x", wit.S32{}),
		field("y", wit.S32{}),
		field("width", wit.S32{}),
		field("height", wit.S32{}))

	RangeType = record("range",
		field("from", wit.S32{}),
		field("to", wit.S32{}))

	DraggableRegionType = record("draggable-region",
		field("bounds", RectType),
		field("draggable", wit.S32{}))

	ScreenInfoType = record("screen-info",
		field("device-scale-factor", wit.F32{}),
		field("depth", wit.S32{}),
		field("depth-per-component", wit.S32{}),
		field("is-monochrome", wit.S32{}),
		field("rect", RectType),
		field("available-rect", RectType))
)

var layouts = transcoder.NewLayoutCalculator()

// Layout returns the heap size, alignment and field offsets of t.
func Layout(t wit.Type) transcoder.LayoutInfo {
	return layouts.Calculate(t)
}
