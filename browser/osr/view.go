package osr

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/content"
	"go.uber.org/zap"
)

// View is an off-screen content.RenderWidgetHostView. It is the browser's
// main view, a popup of another view, or a child view presenting a guest.
type View struct {
	widget   content.RenderWidgetHost
	browser  cef.Browser
	handler  cef.RenderHandler
	cfg      Config
	interval time.Duration

	mu            sync.Mutex
	showing       bool
	focused       bool
	background    uint32
	loading       bool
	tooltip       string
	scale         float32
	size          content.Size
	holdResize    bool
	pendingResize bool

	parent        *View
	popup         *View
	child         *View
	guests        map[*View]struct{}
	isPopup       bool
	popupPosition content.Rect

	scrollX, scrollY float64
	scrollPending    bool

	beginFrames bool
	cancel      context.CancelFunc
	ticker      sync.WaitGroup
	inFrame     atomic.Int32

	destroyed bool
}

var _ content.RenderWidgetHostView = (*View)(nil)

// NewView creates a view for widget painting through handler. handler may
// be nil, in which case the view paints nowhere and uses default sizes.
func NewView(widget content.RenderWidgetHost, browser cef.Browser, handler cef.RenderHandler, cfg *Config) *View {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	v := &View{
		widget:   widget,
		browser:  browser,
		handler:  handler,
		cfg:      c,
		interval: c.frameInterval(),
		showing:  true,
		guests:   make(map[*View]struct{}),
	}
	if c.Transparent {
		v.background = 0
	} else {
		v.background = 0xFFFFFFFF
	}
	v.scale = v.ScreenInfo().DeviceScaleFactor
	v.size = v.viewRect().Size()
	return v
}

// RenderWidgetHost returns the widget the view presents.
func (v *View) RenderWidgetHost() content.RenderWidgetHost { return v.widget }

// InitAsPopup makes v a popup of parent at pos, in parent view
// coordinates. An existing popup of parent is destroyed first.
func (v *View) InitAsPopup(parent *View, pos content.Rect) {
	parent.mu.Lock()
	old := parent.popup
	parent.popup = v
	parent.mu.Unlock()
	if old != nil && old != v {
		old.Destroy()
	}

	v.mu.Lock()
	v.parent = parent
	v.isPopup = true
	v.popupPosition = pos
	v.size = pos.Size()
	v.mu.Unlock()

	if h, ok := v.handler.(cef.PopupShowHandler); ok {
		h.OnPopupShow(v.browser, true)
	}
	v.notifyPopupSize(pos)
	v.WasResized()
}

// InitAsChild makes v the child view of parent.
func (v *View) InitAsChild(parent *View) {
	parent.mu.Lock()
	parent.child = v
	parent.mu.Unlock()

	v.mu.Lock()
	v.parent = parent
	v.mu.Unlock()
}

// AddGuestView registers a guest view; it is resized and destroyed with v.
func (v *View) AddGuestView(guest *View) {
	v.mu.Lock()
	v.guests[guest] = struct{}{}
	v.mu.Unlock()
}

// RemoveGuestView forgets a guest view.
func (v *View) RemoveGuestView(guest *View) {
	v.mu.Lock()
	delete(v.guests, guest)
	v.mu.Unlock()
}

// IsPopup reports whether v was initialized as a popup.
func (v *View) IsPopup() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.isPopup
}

// Popup returns the view's open popup, or nil.
func (v *View) Popup() *View {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.popup
}

// SetSize resizes a popup. The main view's size always comes from the
// RenderHandler, so the call is ignored there.
func (v *View) SetSize(size content.Size) {
	v.mu.Lock()
	if !v.isPopup {
		v.mu.Unlock()
		return
	}
	v.popupPosition.Width = size.Width
	v.popupPosition.Height = size.Height
	pos := v.popupPosition
	v.mu.Unlock()

	v.notifyPopupSize(pos)
	v.WasResized()
}

// SetBounds moves and resizes a popup. Ignored for the main view.
func (v *View) SetBounds(rect content.Rect) {
	v.mu.Lock()
	if !v.isPopup {
		v.mu.Unlock()
		return
	}
	v.popupPosition = rect
	v.mu.Unlock()

	v.notifyPopupSize(rect)
	v.WasResized()
}

func (v *View) notifyPopupSize(pos content.Rect) {
	if h, ok := v.handler.(cef.PopupSizeHandler); ok {
		h.OnPopupSize(v.browser, toCefRect(pos))
	}
}

// ViewBounds returns the popup position for popups and the
// RenderHandler's view rectangle otherwise.
func (v *View) ViewBounds() content.Rect {
	v.mu.Lock()
	if v.isPopup {
		defer v.mu.Unlock()
		return v.popupPosition
	}
	v.mu.Unlock()
	return v.viewRect()
}

func (v *View) viewRect() content.Rect {
	h, ok := v.handler.(cef.ViewRectProvider)
	if !ok || v.browser == nil {
		return content.Rect{}
	}
	var r cef.Rect
	if !h.GetViewRect(v.browser, &r) {
		return content.Rect{}
	}
	return fromCefRect(r)
}

// ScreenInfo asks the RenderHandler for the screen. Without an answer, or
// with a zero scale factor, the scale factor is 1. Config.ScaleFactor
// overrides both.
func (v *View) ScreenInfo() content.ScreenInfo {
	info := cef.ScreenInfo{DeviceScaleFactor: 1, Depth: 24, DepthPerComponent: 8}
	if h, ok := v.handler.(cef.ScreenInfoProvider); ok && v.browser != nil {
		if !h.GetScreenInfo(v.browser, &info) {
			info = cef.ScreenInfo{DeviceScaleFactor: 1, Depth: 24, DepthPerComponent: 8}
		}
	}
	if info.DeviceScaleFactor <= 0 {
		info.DeviceScaleFactor = 1
	}
	if v.cfg.ScaleFactor > 0 {
		info.DeviceScaleFactor = v.cfg.ScaleFactor
	}
	out := content.ScreenInfo{
		DeviceScaleFactor: info.DeviceScaleFactor,
		Depth:             int(info.Depth),
		DepthPerComponent: int(info.DepthPerComponent),
		IsMonochrome:      info.IsMonochrome,
		Rect:              fromCefRect(info.Rect),
		AvailableRect:     fromCefRect(info.AvailableRect),
	}
	if out.Rect.IsEmpty() {
		out.Rect = v.viewRect()
	}
	if out.AvailableRect.IsEmpty() {
		out.AvailableRect = out.Rect
	}
	return out
}

// ScreenPoint converts a view point to screen coordinates. Without a
// RenderHandler answer the point is returned unchanged.
func (v *View) ScreenPoint(x, y int) (int, int) {
	h, ok := v.handler.(cef.ScreenPointProvider)
	if !ok || v.browser == nil {
		return x, y
	}
	var sx, sy int
	if !h.GetScreenPoint(v.browser, x, y, &sx, &sy) {
		return x, y
	}
	return sx, sy
}

// ScaleFactor returns the device scale factor in use.
func (v *View) ScaleFactor() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scale
}

// Size returns the view size in device-independent pixels.
func (v *View) Size() content.Size {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.size
}

// PhysicalSize returns the size of the pixel buffer OnPaint delivers.
func (v *View) PhysicalSize() content.Size {
	v.mu.Lock()
	defer v.mu.Unlock()
	return content.Size{
		Width:  int(math.Ceil(float64(v.size.Width) * float64(v.scale))),
		Height: int(math.Ceil(float64(v.size.Height) * float64(v.scale))),
	}
}

// OnScreenInfoChanged rereads the screen and resizes for the new scale
// factor.
func (v *View) OnScreenInfoChanged() {
	scale := v.ScreenInfo().DeviceScaleFactor
	v.mu.Lock()
	v.scale = scale
	v.mu.Unlock()

	v.widget.ScreenInfoChanged()
	v.WasResized()
}

// HoldResize defers WasResized until ReleaseResize.
func (v *View) HoldResize() {
	v.mu.Lock()
	v.holdResize = true
	v.mu.Unlock()
}

// ReleaseResize ends a hold and applies a resize requested during it.
func (v *View) ReleaseResize() {
	v.mu.Lock()
	if !v.holdResize {
		v.mu.Unlock()
		return
	}
	v.holdResize = false
	pending := v.pendingResize
	v.pendingResize = false
	v.mu.Unlock()

	if pending {
		v.WasResized()
	}
}

// WasResized picks up a new size from the RenderHandler and tells the
// widget. During a hold the resize is remembered instead.
func (v *View) WasResized() {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return
	}
	if v.holdResize {
		v.pendingResize = true
		v.mu.Unlock()
		return
	}
	isPopup := v.isPopup
	size := v.popupPosition.Size()
	v.mu.Unlock()

	if !isPopup {
		size = v.viewRect().Size()
	}

	v.mu.Lock()
	v.size = size
	guests := v.guestList()
	v.mu.Unlock()

	v.widget.WasResized()
	for _, g := range guests {
		g.WasResized()
	}
}

func (v *View) guestList() []*View {
	out := make([]*View, 0, len(v.guests))
	for g := range v.guests {
		out = append(out, g)
	}
	return out
}

// Show makes the view visible and resumes painting.
func (v *View) Show() {
	v.mu.Lock()
	if v.showing || v.destroyed {
		v.mu.Unlock()
		return
	}
	v.showing = true
	v.mu.Unlock()

	v.widget.WasShown()
	v.Invalidate(cef.PETView)
}

// Hide stops painting until Show.
func (v *View) Hide() {
	v.mu.Lock()
	if !v.showing || v.destroyed {
		v.mu.Unlock()
		return
	}
	v.showing = false
	v.mu.Unlock()

	v.widget.WasHidden()
}

func (v *View) IsShowing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.showing
}

// Focus gives the widget keyboard focus.
func (v *View) Focus() {
	v.SendFocusEvent(true)
}

func (v *View) HasFocus() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.focused
}

// SendFocusEvent gives or takes keyboard focus.
func (v *View) SendFocusEvent(focus bool) {
	v.mu.Lock()
	v.focused = focus
	v.mu.Unlock()
	v.widget.SetFocus(focus)
}

// SetBackgroundColor sets the ARGB background. Transparent views stay
// transparent.
func (v *View) SetBackgroundColor(color uint32) {
	if v.cfg.Transparent {
		color = 0
	}
	v.mu.Lock()
	v.background = color
	v.mu.Unlock()
}

// BackgroundColor returns the ARGB background.
func (v *View) BackgroundColor() uint32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.background
}

// UpdateCursor forwards a cursor change to the RenderHandler.
func (v *View) UpdateCursor(cursor content.CursorType) {
	if h, ok := v.handler.(cef.CursorChangeHandler); ok && v.browser != nil {
		h.OnCursorChange(v.browser, cef.CursorType(cursor))
	}
}

func (v *View) SetIsLoading(loading bool) {
	v.mu.Lock()
	v.loading = loading
	v.mu.Unlock()
}

// IsLoading reports the last value passed to SetIsLoading.
func (v *View) IsLoading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *View) SetTooltipText(text string) {
	v.mu.Lock()
	v.tooltip = text
	v.mu.Unlock()
}

// TooltipText returns the current tooltip.
func (v *View) TooltipText() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tooltip
}

// ImeCompositionRangeChanged forwards the composition range and character
// bounds to the RenderHandler.
func (v *View) ImeCompositionRangeChanged(rng content.Range, characterBounds []content.Rect) {
	h, ok := v.handler.(cef.ImeCompositionRangeChangedHandler)
	if !ok || v.browser == nil {
		return
	}
	rects := make([]cef.Rect, len(characterBounds))
	for i, r := range characterBounds {
		rects[i] = toCefRect(r)
	}
	h.OnImeCompositionRangeChanged(v.browser, cef.Range{From: int32(rng.Start), To: int32(rng.End)}, rects)
}

// Invalidate requests a full repaint of the view, or of its popup.
func (v *View) Invalidate(t cef.PaintElementType) {
	if t == cef.PETPopup {
		if p := v.Popup(); p != nil {
			p.Invalidate(cef.PETView)
		}
		return
	}
	size := v.Size()
	v.widget.RequestRepaint(content.Rect{Width: size.Width, Height: size.Height})
}

// OnPaint hands a BGRA frame of width x height physical pixels to the
// RenderHandler. damage is clipped to the frame; frames with an empty
// damage rect or a short buffer are dropped. Hidden views do not paint.
func (v *View) OnPaint(damage content.Rect, width, height int, pixels []byte) {
	v.mu.Lock()
	skip := v.destroyed || !v.showing
	isPopup := v.isPopup
	v.mu.Unlock()
	if skip {
		return
	}

	v.flushScrollOffset()

	h, ok := v.handler.(cef.PaintHandler)
	if !ok || v.browser == nil {
		return
	}
	if len(pixels) < width*height*4 {
		Logger().Warn("paint buffer too small",
			zap.Int("width", width),
			zap.Int("height", height),
			zap.Int("bytes", len(pixels)))
		return
	}
	damage = damage.Intersect(content.Rect{Width: width, Height: height})
	if damage.IsEmpty() {
		return
	}

	pet := cef.PETView
	if isPopup {
		pet = cef.PETPopup
	}
	h.OnPaint(v.browser, pet, []cef.Rect{toCefRect(damage)}, pixels[:width*height*4], width, height)
}

// SetScrollOffset records the root layer scroll offset. The RenderHandler
// hears about a change with the next paint or begin frame.
func (v *View) SetScrollOffset(x, y float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if x == v.scrollX && y == v.scrollY {
		return
	}
	v.scrollX, v.scrollY = x, y
	v.scrollPending = true
}

// ScrollOffset returns the last recorded scroll offset.
func (v *View) ScrollOffset() (x, y float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrollX, v.scrollY
}

func (v *View) flushScrollOffset() {
	v.mu.Lock()
	if !v.scrollPending {
		v.mu.Unlock()
		return
	}
	v.scrollPending = false
	x, y := v.scrollX, v.scrollY
	v.mu.Unlock()

	if h, ok := v.handler.(cef.ScrollOffsetChangedHandler); ok && v.browser != nil {
		h.OnScrollOffsetChanged(v.browser, x, y)
	}
}

// SetNeedsBeginFrames starts or stops the begin-frame ticker. Stopping waits
// for the ticker to exit unless a frame is being delivered.
func (v *View) SetNeedsBeginFrames(enabled bool) {
	v.mu.Lock()
	if v.destroyed || enabled == v.beginFrames {
		v.mu.Unlock()
		return
	}
	v.beginFrames = enabled
	if !enabled {
		cancel := v.cancel
		v.cancel = nil
		v.mu.Unlock()
		v.stopBeginFrames(cancel)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.ticker.Add(1)
	v.mu.Unlock()

	go v.runBeginFrames(ctx)
}

func (v *View) runBeginFrames(ctx context.Context) {
	defer v.ticker.Done()
	t := time.NewTicker(v.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			v.inFrame.Add(1)
			if ctx.Err() == nil {
				v.flushScrollOffset()
			}
			if ctx.Err() == nil {
				v.widget.SendBeginFrame(now, v.interval)
			}
			v.inFrame.Add(-1)
		}
	}
}

// stopBeginFrames cancels the ticker and waits for it to exit. While a frame
// is being delivered the caller may be the ticker itself, so it only
// cancels; the ticker exits once that frame returns.
func (v *View) stopBeginFrames(cancel context.CancelFunc) {
	cancel()
	if v.inFrame.Load() == 0 {
		v.ticker.Wait()
	}
}

// FrameRate returns the begin-frame rate in frames per second.
func (v *View) FrameRate() int {
	return v.cfg.frameRate()
}

// SendKeyEvent forwards a key event to the widget.
func (v *View) SendKeyEvent(ev content.KeyEvent) {
	v.widget.ForwardKeyboardEvent(ev)
}

// SendMouseEvent forwards a mouse event. Events inside an open popup go to
// the popup in its own coordinates.
func (v *View) SendMouseEvent(ev content.MouseEvent) {
	if p, pos, ok := v.popupAt(ev.X, ev.Y); ok {
		ev.X -= pos.X
		ev.Y -= pos.Y
		p.SendMouseEvent(ev)
		return
	}
	v.widget.ForwardMouseEvent(ev)
}

// SendMouseWheelEvent forwards a wheel event. Wheel events inside an open
// popup scroll the popup; anywhere else they close it.
func (v *View) SendMouseWheelEvent(ev content.WheelEvent) {
	if p := v.Popup(); p != nil {
		pos := p.ViewBounds()
		if pos.Contains(ev.X, ev.Y) {
			ev.X -= pos.X
			ev.Y -= pos.Y
			p.SendMouseWheelEvent(ev)
			return
		}
		p.Destroy()
	}
	v.widget.ForwardWheelEvent(ev)
}

func (v *View) popupAt(x, y int) (*View, content.Rect, bool) {
	p := v.Popup()
	if p == nil {
		return nil, content.Rect{}, false
	}
	pos := p.ViewBounds()
	return p, pos, pos.Contains(x, y)
}

// RenderProcessGone tears the view down after the render process died.
func (v *View) RenderProcessGone(status content.TerminationStatus, errorCode int) {
	Logger().Debug("render process gone",
		zap.Int("widget", v.widget.ID()),
		zap.Int("status", int(status)),
		zap.Int("error_code", errorCode))
	v.Destroy()
}

// Destroy stops the begin-frame ticker, closes popups, child and guest
// views, and detaches from the parent. A destroyed popup tells the
// RenderHandler it is hidden.
func (v *View) Destroy() {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return
	}
	v.destroyed = true
	cancel := v.cancel
	v.cancel = nil
	v.beginFrames = false
	popup, child := v.popup, v.child
	v.popup, v.child = nil, nil
	guests := v.guestList()
	clear(v.guests)
	parent := v.parent
	isPopup := v.isPopup
	v.mu.Unlock()

	if cancel != nil {
		v.stopBeginFrames(cancel)
	}
	if popup != nil {
		popup.Destroy()
	}
	if child != nil {
		child.Destroy()
	}
	for _, g := range guests {
		g.Destroy()
	}

	if parent != nil {
		parent.mu.Lock()
		if parent.popup == v {
			parent.popup = nil
		}
		if parent.child == v {
			parent.child = nil
		}
		delete(parent.guests, v)
		parent.mu.Unlock()
	}
	if isPopup {
		if h, ok := v.handler.(cef.PopupShowHandler); ok && v.browser != nil {
			h.OnPopupShow(v.browser, false)
		}
		v.notifyPopupSize(content.Rect{})
	}
}

// IsDestroyed reports whether Destroy ran.
func (v *View) IsDestroyed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.destroyed
}

func toCefRect(r content.Rect) cef.Rect {
	return cef.Rect{X: int32(r.X), Y: int32(r.Y), Width: int32(r.Width), Height: int32(r.Height)}
}

func fromCefRect(r cef.Rect) content.Rect {
	return content.Rect{X: int(r.X), Y: int(r.Y), Width: int(r.Width), Height: int(r.Height)}
}
