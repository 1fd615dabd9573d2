package bridge

import (
	"reflect"

	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/idl"
	"github.com/wippyai/cef-bridge/transcoder"
	"github.com/wippyai/cef-bridge/wrapper"
	"go.uber.org/zap"
)

var (
	rectCodec            = transcoder.MustCompile(idl.RectType, reflect.TypeOf(capi.Rect{}))
	draggableRegionCodec = transcoder.MustCompile(idl.DraggableRegionType, reflect.TypeOf(capi.DraggableRegion{}))
)

func toSize(s capi.Size) cef.Size {
	return cef.Size{Width: s.Width, Height: s.Height}
}

func fromSize(s cef.Size) capi.Size {
	return capi.Size{Width: s.Width, Height: s.Height}
}

func toRect(r capi.Rect) cef.Rect {
	return cef.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func fromRect(r cef.Rect) capi.Rect {
	return capi.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func toRange(r capi.Range) cef.Range {
	return cef.Range{From: r.From, To: r.To}
}

func fromRange(r cef.Range) capi.Range {
	return capi.Range{From: r.From, To: r.To}
}

func toScreenInfo(s capi.ScreenInfo) cef.ScreenInfo {
	return cef.ScreenInfo{
		DeviceScaleFactor: s.DeviceScaleFactor,
		Depth:             s.Depth,
		DepthPerComponent: s.DepthPerComponent,
		IsMonochrome:      isTrue(s.IsMonochrome),
		Rect:              toRect(s.Rect),
		AvailableRect:     toRect(s.AvailableRect),
	}
}

func fromScreenInfo(s cef.ScreenInfo) capi.ScreenInfo {
	return capi.ScreenInfo{
		DeviceScaleFactor: s.DeviceScaleFactor,
		Depth:             s.Depth,
		DepthPerComponent: s.DepthPerComponent,
		IsMonochrome:      capi.Bool(s.IsMonochrome),
		Rect:              fromRect(s.Rect),
		AvailableRect:     fromRect(s.AvailableRect),
	}
}

// readRects decodes a (count, ptr) rect array owned by the caller.
func readRects(iface, method string, count, ptr uint32) []cef.Rect {
	var raw []capi.Rect
	if err := heap().DecodeRecords(rectCodec, count, ptr, &raw); err != nil {
		wrapper.Logger().Warn("read rects",
			zap.String("interface", iface),
			zap.String("method", method),
			zap.Error(err))
		return nil
	}
	if raw == nil {
		return nil
	}
	out := make([]cef.Rect, len(raw))
	for i, r := range raw {
		out[i] = toRect(r)
	}
	return out
}

func scratchRects(sc *transcoder.Scratch, rects []cef.Rect) (uint32, uint32) {
	if len(rects) == 0 {
		return 0, 0
	}
	raw := make([]capi.Rect, len(rects))
	for i, r := range rects {
		raw[i] = fromRect(r)
	}
	return sc.Records(rectCodec, raw)
}

func readDraggableRegions(count, ptr uint32) []cef.DraggableRegion {
	var raw []capi.DraggableRegion
	if err := heap().DecodeRecords(draggableRegionCodec, count, ptr, &raw); err != nil {
		wrapper.Logger().Warn("read draggable regions", zap.Error(err))
		return nil
	}
	if raw == nil {
		return nil
	}
	out := make([]cef.DraggableRegion, len(raw))
	for i, r := range raw {
		out[i] = cef.DraggableRegion{Bounds: toRect(r.Bounds), Draggable: isTrue(r.Draggable)}
	}
	return out
}

func scratchDraggableRegions(sc *transcoder.Scratch, regions []cef.DraggableRegion) (uint32, uint32) {
	if len(regions) == 0 {
		return 0, 0
	}
	raw := make([]capi.DraggableRegion, len(regions))
	for i, r := range regions {
		raw[i] = capi.DraggableRegion{Bounds: fromRect(r.Bounds), Draggable: capi.Bool(r.Draggable)}
	}
	return sc.Records(draggableRegionCodec, raw)
}
