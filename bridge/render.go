package bridge

import (
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/transcoder"
	"github.com/wippyai/cef-bridge/wrapper"
)

var (
	RenderHandlerCppToC = wrapper.NewCppToC[cef.RenderHandler, capi.RenderHandler]("RenderHandler", wrapper.TypeRenderHandler)
	RenderHandlerCToCpp = wrapper.NewCToCpp[cef.RenderHandler, capi.RenderHandler]("RenderHandler", wrapper.TypeRenderHandler)
)

func init() {
	RenderHandlerCppToC.SetBuilder(func(h cef.RenderHandler) *capi.RenderHandler {
		s := &capi.RenderHandler{}
		if _, ok := h.(cef.ViewRectProvider); ok {
			s.GetViewRect = renderHandlerGetViewRect
		}
		if _, ok := h.(cef.ScreenInfoProvider); ok {
			s.GetScreenInfo = renderHandlerGetScreenInfo
		}
		if _, ok := h.(cef.ScreenPointProvider); ok {
			s.GetScreenPoint = renderHandlerGetScreenPoint
		}
		if _, ok := h.(cef.PopupShowHandler); ok {
			s.OnPopupShow = renderHandlerOnPopupShow
		}
		if _, ok := h.(cef.PopupSizeHandler); ok {
			s.OnPopupSize = renderHandlerOnPopupSize
		}
		if _, ok := h.(cef.PaintHandler); ok {
			s.OnPaint = renderHandlerOnPaint
		}
		if _, ok := h.(cef.CursorChangeHandler); ok {
			s.OnCursorChange = renderHandlerOnCursorChange
		}
		if _, ok := h.(cef.ScrollOffsetChangedHandler); ok {
			s.OnScrollOffsetChanged = renderHandlerOnScrollOffsetChanged
		}
		if _, ok := h.(cef.ImeCompositionRangeChangedHandler); ok {
			s.OnImeCompositionRangeChanged = renderHandlerOnImeCompositionRangeChanged
		}
		return s
	})
	RenderHandlerCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.RenderHandler]) cef.RenderHandler {
		return &renderHandlerAdapter{CRef: ref}
	})
}

func renderHandlerGetViewRect(self *capi.RenderHandler, browser *capi.Browser, rect *capi.Rect) int32 {
	defer wrapper.Recover("RenderHandler", "GetViewRect")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.ViewRectProvider](RenderHandlerCppToC, self, "RenderHandler", "GetViewRect")
	if !ok {
		return 0
	}
	if b == nil {
		wrapper.MissingParam("RenderHandler", "GetViewRect", "browser")
		return 0
	}
	if rect == nil {
		wrapper.MissingParam("RenderHandler", "GetViewRect", "rect")
		return 0
	}
	r := toRect(*rect)
	filled := h.GetViewRect(b, &r)
	*rect = fromRect(r)
	return capi.Bool(filled)
}

func renderHandlerGetScreenInfo(self *capi.RenderHandler, browser *capi.Browser, info *capi.ScreenInfo) int32 {
	defer wrapper.Recover("RenderHandler", "GetScreenInfo")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.ScreenInfoProvider](RenderHandlerCppToC, self, "RenderHandler", "GetScreenInfo")
	if !ok {
		return 0
	}
	if b == nil {
		wrapper.MissingParam("RenderHandler", "GetScreenInfo", "browser")
		return 0
	}
	if info == nil {
		wrapper.MissingParam("RenderHandler", "GetScreenInfo", "screenInfo")
		return 0
	}
	si := toScreenInfo(*info)
	filled := h.GetScreenInfo(b, &si)
	*info = fromScreenInfo(si)
	return capi.Bool(filled)
}

func renderHandlerGetScreenPoint(self *capi.RenderHandler, browser *capi.Browser, viewX, viewY int32, screenX, screenY *int32) int32 {
	defer wrapper.Recover("RenderHandler", "GetScreenPoint")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.ScreenPointProvider](RenderHandlerCppToC, self, "RenderHandler", "GetScreenPoint")
	if !ok {
		return 0
	}
	switch {
	case b == nil:
		wrapper.MissingParam("RenderHandler", "GetScreenPoint", "browser")
		return 0
	case screenX == nil:
		wrapper.MissingParam("RenderHandler", "GetScreenPoint", "screenX")
		return 0
	case screenY == nil:
		wrapper.MissingParam("RenderHandler", "GetScreenPoint", "screenY")
		return 0
	}
	x, y := int(*screenX), int(*screenY)
	filled := h.GetScreenPoint(b, int(viewX), int(viewY), &x, &y)
	*screenX, *screenY = int32(x), int32(y)
	return capi.Bool(filled)
}

func renderHandlerOnPopupShow(self *capi.RenderHandler, browser *capi.Browser, show int32) {
	defer wrapper.Recover("RenderHandler", "OnPopupShow")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.PopupShowHandler](RenderHandlerCppToC, self, "RenderHandler", "OnPopupShow")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("RenderHandler", "OnPopupShow", "browser")
		return
	}
	h.OnPopupShow(b, isTrue(show))
}

func renderHandlerOnPopupSize(self *capi.RenderHandler, browser *capi.Browser, rect *capi.Rect) {
	defer wrapper.Recover("RenderHandler", "OnPopupSize")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.PopupSizeHandler](RenderHandlerCppToC, self, "RenderHandler", "OnPopupSize")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("RenderHandler", "OnPopupSize", "browser")
		return
	}
	if rect == nil {
		wrapper.MissingParam("RenderHandler", "OnPopupSize", "rect")
		return
	}
	h.OnPopupSize(b, toRect(*rect))
}

func renderHandlerOnPaint(self *capi.RenderHandler, browser *capi.Browser, elementType int32, dirtyRectsCount uint32, dirtyRects uint32, buffer uint32, width, height int32) {
	defer wrapper.Recover("RenderHandler", "OnPaint")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.PaintHandler](RenderHandlerCppToC, self, "RenderHandler", "OnPaint")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("RenderHandler", "OnPaint", "browser")
		return
	}
	rects := readRects("RenderHandler", "OnPaint", dirtyRectsCount, dirtyRects)
	var pixels []byte
	if width > 0 && height > 0 {
		pixels = heap().ReadBytes(buffer, uint32(width)*uint32(height)*4)
	}
	h.OnPaint(b, cef.PaintElementType(elementType), rects, pixels, int(width), int(height))
}

func renderHandlerOnCursorChange(self *capi.RenderHandler, browser *capi.Browser, cursorType int32) {
	defer wrapper.Recover("RenderHandler", "OnCursorChange")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.CursorChangeHandler](RenderHandlerCppToC, self, "RenderHandler", "OnCursorChange")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("RenderHandler", "OnCursorChange", "browser")
		return
	}
	h.OnCursorChange(b, cef.CursorType(cursorType))
}

func renderHandlerOnScrollOffsetChanged(self *capi.RenderHandler, browser *capi.Browser, x, y float64) {
	defer wrapper.Recover("RenderHandler", "OnScrollOffsetChanged")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.ScrollOffsetChangedHandler](RenderHandlerCppToC, self, "RenderHandler", "OnScrollOffsetChanged")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("RenderHandler", "OnScrollOffsetChanged", "browser")
		return
	}
	h.OnScrollOffsetChanged(b, x, y)
}

func renderHandlerOnImeCompositionRangeChanged(self *capi.RenderHandler, browser *capi.Browser, selectedRange *capi.Range, characterBoundsCount uint32, characterBounds uint32) {
	defer wrapper.Recover("RenderHandler", "OnImeCompositionRangeChanged")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.ImeCompositionRangeChangedHandler](RenderHandlerCppToC, self, "RenderHandler", "OnImeCompositionRangeChanged")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("RenderHandler", "OnImeCompositionRangeChanged", "browser")
		return
	}
	if selectedRange == nil {
		wrapper.MissingParam("RenderHandler", "OnImeCompositionRangeChanged", "selectedRange")
		return
	}
	bounds := readRects("RenderHandler", "OnImeCompositionRangeChanged", characterBoundsCount, characterBounds)
	h.OnImeCompositionRangeChanged(b, toRange(*selectedRange), bounds)
}

type renderHandlerAdapter struct {
	*wrapper.CRef[capi.RenderHandler]
}

func (a *renderHandlerAdapter) GetViewRect(browser cef.Browser, rect *cef.Rect) bool {
	defer a.Exit("RenderHandler", "GetViewRect")
	s := a.Struct()
	if s.GetViewRect == nil {
		return false
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RenderHandler", "GetViewRect", "browser")
		return false
	}
	if rect == nil {
		wrapper.MissingParam("RenderHandler", "GetViewRect", "rect")
		return false
	}
	raw := fromRect(*rect)
	filled := s.GetViewRect(s, BrowserCppToC.Wrap(browser), &raw)
	*rect = toRect(raw)
	return isTrue(filled)
}

func (a *renderHandlerAdapter) GetScreenInfo(browser cef.Browser, info *cef.ScreenInfo) bool {
	defer a.Exit("RenderHandler", "GetScreenInfo")
	s := a.Struct()
	if s.GetScreenInfo == nil {
		return false
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RenderHandler", "GetScreenInfo", "browser")
		return false
	}
	if info == nil {
		wrapper.MissingParam("RenderHandler", "GetScreenInfo", "screenInfo")
		return false
	}
	raw := fromScreenInfo(*info)
	filled := s.GetScreenInfo(s, BrowserCppToC.Wrap(browser), &raw)
	*info = toScreenInfo(raw)
	return isTrue(filled)
}

func (a *renderHandlerAdapter) GetScreenPoint(browser cef.Browser, viewX, viewY int, screenX, screenY *int) bool {
	defer a.Exit("RenderHandler", "GetScreenPoint")
	s := a.Struct()
	if s.GetScreenPoint == nil {
		return false
	}
	switch {
	case wrapper.IsNil(browser):
		wrapper.MissingParam("RenderHandler", "GetScreenPoint", "browser")
		return false
	case screenX == nil:
		wrapper.MissingParam("RenderHandler", "GetScreenPoint", "screenX")
		return false
	case screenY == nil:
		wrapper.MissingParam("RenderHandler", "GetScreenPoint", "screenY")
		return false
	}
	x, y := int32(*screenX), int32(*screenY)
	filled := s.GetScreenPoint(s, BrowserCppToC.Wrap(browser), int32(viewX), int32(viewY), &x, &y)
	*screenX, *screenY = int(x), int(y)
	return isTrue(filled)
}

func (a *renderHandlerAdapter) OnPopupShow(browser cef.Browser, show bool) {
	defer a.Exit("RenderHandler", "OnPopupShow")
	s := a.Struct()
	if s.OnPopupShow == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RenderHandler", "OnPopupShow", "browser")
		return
	}
	s.OnPopupShow(s, BrowserCppToC.Wrap(browser), capi.Bool(show))
}

func (a *renderHandlerAdapter) OnPopupSize(browser cef.Browser, rect cef.Rect) {
	defer a.Exit("RenderHandler", "OnPopupSize")
	s := a.Struct()
	if s.OnPopupSize == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RenderHandler", "OnPopupSize", "browser")
		return
	}
	raw := fromRect(rect)
	s.OnPopupSize(s, BrowserCppToC.Wrap(browser), &raw)
}

func (a *renderHandlerAdapter) OnPaint(browser cef.Browser, elementType cef.PaintElementType, dirtyRects []cef.Rect, buffer []byte, width, height int) {
	defer a.Exit("RenderHandler", "OnPaint")
	s := a.Struct()
	if s.OnPaint == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RenderHandler", "OnPaint", "browser")
		return
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	count, ptr := scratchRects(sc, dirtyRects)
	s.OnPaint(s, BrowserCppToC.Wrap(browser), int32(elementType), count, ptr, sc.Bytes(buffer), int32(width), int32(height))
}

func (a *renderHandlerAdapter) OnCursorChange(browser cef.Browser, cursor cef.CursorType) {
	defer a.Exit("RenderHandler", "OnCursorChange")
	s := a.Struct()
	if s.OnCursorChange == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RenderHandler", "OnCursorChange", "browser")
		return
	}
	s.OnCursorChange(s, BrowserCppToC.Wrap(browser), int32(cursor))
}

func (a *renderHandlerAdapter) OnScrollOffsetChanged(browser cef.Browser, x, y float64) {
	defer a.Exit("RenderHandler", "OnScrollOffsetChanged")
	s := a.Struct()
	if s.OnScrollOffsetChanged == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RenderHandler", "OnScrollOffsetChanged", "browser")
		return
	}
	s.OnScrollOffsetChanged(s, BrowserCppToC.Wrap(browser), x, y)
}

func (a *renderHandlerAdapter) OnImeCompositionRangeChanged(browser cef.Browser, selectedRange cef.Range, characterBounds []cef.Rect) {
	defer a.Exit("RenderHandler", "OnImeCompositionRangeChanged")
	s := a.Struct()
	if s.OnImeCompositionRangeChanged == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RenderHandler", "OnImeCompositionRangeChanged", "browser")
		return
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	raw := fromRange(selectedRange)
	count, ptr := scratchRects(sc, characterBounds)
	s.OnImeCompositionRangeChanged(s, BrowserCppToC.Wrap(browser), &raw, count, ptr)
}
