package browser

import (
	"sync"

	"github.com/wippyai/cef-bridge/browser/osr"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/content"
	"github.com/wippyai/cef-bridge/wrapper"
	"go.uber.org/zap"
)

// beforeUnloadMessage is shown by before-unload dialogs; pages no longer
// supply their own text.
const beforeUnloadMessage = "Is it OK to leave/reload this page?"

// Host is one browser. The client sees it as a cef.Browser; the engine
// drives it as a content.WebContentsObserver.
type Host struct {
	ctx    *Context
	id     int32
	client cef.Client
	wc     content.WebContents

	mu      sync.RWMutex
	loading bool
	frames  map[int64]*Frame
	order   []int64
	main    *Frame
	dialog  *dialogCallback
	view    *osr.View
	closed  bool
}

var (
	_ cef.Browser                 = (*Host)(nil)
	_ content.WebContentsObserver = (*Host)(nil)
)

func newHost(ctx *Context, id int32, client cef.Client, wc content.WebContents) *Host {
	return &Host{
		ctx:    ctx,
		id:     id,
		client: client,
		wc:     wc,
		frames: make(map[int64]*Frame),
	}
}

func (h *Host) Identifier() int32 { return h.id }

func (h *Host) IsLoading() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loading
}

func (h *Host) CanGoBack() bool    { return h.wc.CanGoBack() }
func (h *Host) CanGoForward() bool { return h.wc.CanGoForward() }

func (h *Host) MainFrame() cef.Frame {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.main == nil {
		return nil
	}
	return h.main
}

// FrameNames returns the frame names in the order the frames appeared.
func (h *Host) FrameNames() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.order))
	for _, id := range h.order {
		names = append(names, h.frames[id].name)
	}
	return names
}

// IsSame compares identifiers; a Host that crossed the boundary comes
// back as an adapter.
func (h *Host) IsSame(that cef.Browser) bool {
	if other, ok := that.(*Host); ok {
		return other == h
	}
	return !wrapper.IsNil(that) && that.Identifier() == h.id
}

// SendProcessMessage delivers message to the page's render process. Only
// PIDRenderer is a valid target from the browser process.
func (h *Host) SendProcessMessage(target cef.ProcessID, message cef.ProcessMessage) bool {
	if target != cef.PIDRenderer {
		Logger().Warn("process message to invalid target",
			zap.Int32("browser", h.id),
			zap.Stringer("target", target))
		return false
	}
	if message == nil || !message.IsValid() || h.isClosed() {
		return false
	}
	return h.wc.Send(content.Message{
		Name: message.Name(),
		Args: cef.ListValues(message.ArgumentList()),
	})
}

// Frame returns the frame with the given engine identifier.
func (h *Host) Frame(id int64) (*Frame, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	f, ok := h.frames[id]
	return f, ok
}

// Close invalidates the host's frames, destroys its view and removes it
// from the context.
func (h *Host) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	view := h.view
	h.view = nil
	dialog := h.dialog
	h.dialog = nil
	h.mu.Unlock()

	if dialog != nil {
		dialog.disconnect()
	}
	if view != nil {
		view.Destroy()
	}
	h.ctx.removeBrowser(h.id)
	Logger().Debug("browser closed", zap.Int32("id", h.id))
}

func (h *Host) isClosed() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.closed
}

// CreateView creates the off-screen view presenting widget. It paints
// through the client's RenderHandler.
func (h *Host) CreateView(widget content.RenderWidgetHost, cfg *osr.Config) *osr.View {
	var rh cef.RenderHandler
	if p, ok := h.client.(cef.RenderHandlerProvider); ok {
		rh = p.GetRenderHandler()
	}
	v := osr.NewView(widget, h, rh, cfg)

	h.mu.Lock()
	old := h.view
	h.view = v
	h.mu.Unlock()
	if old != nil {
		old.Destroy()
	}
	return v
}

// View returns the host's off-screen view, or nil.
func (h *Host) View() *osr.View {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.view
}

func (h *Host) loadHandler() cef.LoadHandler {
	if p, ok := h.client.(cef.LoadHandlerProvider); ok {
		return p.GetLoadHandler()
	}
	return nil
}

func (h *Host) dragHandler() cef.DragHandler {
	if p, ok := h.client.(cef.DragHandlerProvider); ok {
		return p.GetDragHandler()
	}
	return nil
}

func (h *Host) dialogHandler() cef.JSDialogHandler {
	if p, ok := h.client.(cef.JSDialogHandlerProvider); ok {
		return p.GetJSDialogHandler()
	}
	return nil
}

func (h *Host) requestHandler() cef.RequestHandler {
	if p, ok := h.client.(cef.RequestHandlerProvider); ok {
		return p.GetRequestHandler()
	}
	return nil
}

// frame returns the frame for id, creating it on first sight.
func (h *Host) frame(id int64, name, url string, isMain bool) *Frame {
	h.mu.Lock()
	defer h.mu.Unlock()
	f, ok := h.frames[id]
	if !ok {
		f = &Frame{host: h, id: id}
		h.frames[id] = f
		h.order = append(h.order, id)
	}
	f.update(name, url, isMain)
	if isMain {
		if h.main != nil && h.main != f {
			h.main.setMain(false)
		}
		h.main = f
	}
	return f
}

func (h *Host) existingFrame(id int64, url string) *Frame {
	h.mu.RLock()
	f, ok := h.frames[id]
	h.mu.RUnlock()
	if ok {
		f.setURL(url)
		return f
	}
	return h.frame(id, "", url, false)
}

func (h *Host) setLoading(loading bool) {
	h.mu.Lock()
	h.loading = loading
	h.mu.Unlock()

	if lh, ok := h.loadHandler().(cef.LoadingStateChangeHandler); ok {
		lh.OnLoadingStateChange(h, loading, h.wc.CanGoBack(), h.wc.CanGoForward())
	}
}

func (h *Host) DidStartLoading() { h.setLoading(true) }
func (h *Host) DidStopLoading()  { h.setLoading(false) }

func (h *Host) DidStartNavigation(nav content.NavigationHandle) {
	f := h.frame(nav.FrameID(), nav.FrameName(), nav.URL(), nav.IsInMainFrame())
	if lh, ok := h.loadHandler().(cef.LoadStartHandler); ok {
		lh.OnLoadStart(h, f, cef.TransitionType(nav.Transition()))
	}
}

func (h *Host) DidFinishLoad(frameID int64, url string, httpStatusCode int) {
	f := h.existingFrame(frameID, url)
	if lh, ok := h.loadHandler().(cef.LoadEndHandler); ok {
		lh.OnLoadEnd(h, f, httpStatusCode)
	}
}

// DidFailLoad forwards the engine's error code and text unchanged.
func (h *Host) DidFailLoad(frameID int64, url string, errorCode int, description string) {
	f := h.existingFrame(frameID, url)
	if lh, ok := h.loadHandler().(cef.LoadErrorHandler); ok {
		lh.OnLoadError(h, f, cef.ErrorCode(errorCode), description, url)
	}
}

func (h *Host) DraggableRegionsChanged(regions []content.DraggableRegion) {
	dh, ok := h.dragHandler().(cef.DraggableRegionsChangedHandler)
	if !ok {
		return
	}
	out := make([]cef.DraggableRegion, len(regions))
	for i, r := range regions {
		out[i] = cef.DraggableRegion{
			Bounds: cef.Rect{
				X:      int32(r.Bounds.X),
				Y:      int32(r.Bounds.Y),
				Width:  int32(r.Bounds.Width),
				Height: int32(r.Bounds.Height),
			},
			Draggable: r.Draggable,
		}
	}
	dh.OnDraggableRegionsChanged(h, out)
}

// RenderProcessGone reports an abnormal render process exit to the
// client's RequestHandler. Normal exits are not reported.
func (h *Host) RenderProcessGone(status content.TerminationStatus) {
	h.mu.Lock()
	h.loading = false
	view := h.view
	h.mu.Unlock()

	if view != nil {
		view.RenderProcessGone(status, 0)
	}

	var ts cef.TerminationStatus
	switch status {
	case content.TerminationAbnormal:
		ts = cef.TSAbnormalTermination
	case content.TerminationKilled:
		ts = cef.TSProcessWasKilled
	case content.TerminationCrashed:
		ts = cef.TSProcessCrashed
	default:
		return
	}
	Logger().Warn("render process gone", zap.Int32("browser", h.id), zap.Int("status", int(status)))
	if rh, ok := h.requestHandler().(cef.RenderProcessTerminatedHandler); ok {
		rh.OnRenderProcessTerminated(h, ts)
	}
}

// ProcessMessageReceived delivers a message from the render process to the
// client. It reports whether the client handled it.
func (h *Host) ProcessMessageReceived(msg content.Message) bool {
	r, ok := h.client.(cef.ProcessMessageReceiver)
	if !ok {
		return false
	}
	m := cef.NewProcessMessage(msg.Name, msg.Args...)
	m.Arguments().SetReadOnly()
	return r.OnProcessMessageReceived(h, cef.PIDRenderer, m)
}

// DragEnter asks the client about data dragged onto the page. It returns
// true to cancel the drag.
func (h *Host) DragEnter(data content.DropData, mask content.DragOperation) bool {
	dh, ok := h.dragHandler().(cef.DragEnterHandler)
	if !ok {
		return false
	}
	return dh.OnDragEnter(h, &dragData{data: data}, cef.DragOperationsMask(mask))
}

// AuthRequired asks the client for credentials. It returns false when the
// client declined; callback then runs with ok false.
func (h *Host) AuthRequired(frameID int64, isProxy bool, host string, port int, realm, scheme string, callback content.AuthCallback) bool {
	cb := &authCallback{run: callback}
	rh, ok := h.requestHandler().(cef.AuthCredentialsProvider)
	if !ok {
		cb.Cancel()
		return false
	}
	f := h.existingFrame(frameID, "")
	if !rh.GetAuthCredentials(h, f, isProxy, host, port, realm, scheme, cb) {
		cb.Cancel()
		return false
	}
	return true
}

// RunJavaScriptDialog asks the client to run a script dialog. When the
// client neither handles nor suppresses it, the dialog is suppressed: no
// platform dialog runner exists off-screen. It reports whether the message
// was suppressed; a suppressed dialog never runs callback.
func (h *Host) RunJavaScriptDialog(originURL string, dialogType content.DialogType, messageText, defaultPromptText string, callback content.DialogCallback) (suppressed bool) {
	dh, ok := h.dialogHandler().(cef.JSDialogRunner)
	if !ok {
		return true
	}

	cb := &dialogCallback{host: h, run: callback}
	h.setDialog(cb)
	suppress := false
	if dh.OnJSDialog(h, originURL, cef.JSDialogType(dialogType), messageText, defaultPromptText, cb, &suppress) {
		return false
	}
	h.clearDialog(cb)
	cb.disconnect()
	return true
}

// RunBeforeUnloadDialog asks the client whether the page may be left.
// Unhandled dialogs allow leaving.
func (h *Host) RunBeforeUnloadDialog(isReload bool, callback content.DialogCallback) {
	h.mu.RLock()
	running := h.dialog != nil
	h.mu.RUnlock()
	if running {
		callback(true, "")
		return
	}

	dh, ok := h.dialogHandler().(cef.BeforeUnloadDialogRunner)
	if !ok {
		callback(true, "")
		return
	}
	cb := &dialogCallback{host: h, run: callback}
	h.setDialog(cb)
	if dh.OnBeforeUnloadDialog(h, beforeUnloadMessage, isReload, cb) {
		return
	}
	h.clearDialog(cb)
	cb.disconnect()
	callback(true, "")
}

// CancelDialogs drops any running dialog. Its callback is ignored from now
// on and the client is told to reset its dialog state.
func (h *Host) CancelDialogs() {
	h.mu.Lock()
	cb := h.dialog
	h.dialog = nil
	h.mu.Unlock()

	if cb != nil {
		cb.disconnect()
	}
	if dh, ok := h.dialogHandler().(cef.DialogStateResetter); ok {
		dh.OnResetDialogState(h)
	}
}

func (h *Host) setDialog(cb *dialogCallback) {
	h.mu.Lock()
	h.dialog = cb
	h.mu.Unlock()
}

func (h *Host) clearDialog(cb *dialogCallback) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.dialog != cb {
		return false
	}
	h.dialog = nil
	return true
}

func (h *Host) dialogClosed(cb *dialogCallback) {
	if !h.clearDialog(cb) {
		return
	}
	if dh, ok := h.dialogHandler().(cef.DialogClosedHandler); ok {
		dh.OnDialogClosed(h)
	}
}

// Frame is a document frame of a Host.
type Frame struct {
	host *Host
	id   int64

	mu   sync.RWMutex
	name string
	url  string
	main bool
}

var _ cef.Frame = (*Frame)(nil)

func (f *Frame) update(name, url string, isMain bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name != "" {
		f.name = name
	}
	f.url = url
	f.main = isMain
}

func (f *Frame) setURL(url string) {
	if url == "" {
		return
	}
	f.mu.Lock()
	f.url = url
	f.mu.Unlock()
}

func (f *Frame) setMain(isMain bool) {
	f.mu.Lock()
	f.main = isMain
	f.mu.Unlock()
}

func (f *Frame) IsValid() bool { return !f.host.isClosed() }

func (f *Frame) IsMain() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.main
}

func (f *Frame) Name() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.name
}

func (f *Frame) Identifier() int64 { return f.id }

func (f *Frame) URL() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.url
}

func (f *Frame) Browser() cef.Browser { return f.host }

func (f *Frame) LoadURL(url string) {
	if !f.IsValid() {
		return
	}
	f.host.wc.LoadURL(f.id, url)
}
