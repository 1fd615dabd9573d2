package browser

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wippyai/cef-bridge/bridge"
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/content"
	"github.com/wippyai/cef-bridge/transcoder"
)

func useHeap(t *testing.T) {
	t.Helper()
	mem := transcoder.NewLocalMemory(64<<10, 0)
	prev := transcoder.SetDefault(transcoder.NewHeap(mem, transcoder.NewArena(mem)))
	t.Cleanup(func() { transcoder.SetDefault(prev) })
}

// initContext runs Init with cfg, filling in a command line when missing,
// and shuts the context down when the test ends.
func initContext(t *testing.T, cfg *Config) *Context {
	t.Helper()
	if cfg.CommandLine == nil {
		cfg.CommandLine = newFakeCommandLine()
	}
	c, err := Init(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Shutdown() })
	return c
}

type fakeCommandLine struct {
	mu       sync.Mutex
	program  string
	names    []string
	switches map[string]string
}

func newFakeCommandLine(switches ...string) *fakeCommandLine {
	c := &fakeCommandLine{program: "/opt/app/app", switches: make(map[string]string)}
	for _, s := range switches {
		c.AppendSwitch(s)
	}
	return c
}

func (c *fakeCommandLine) HasSwitch(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.switches[name]
	return ok
}

func (c *fakeCommandLine) SwitchValue(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.switches[name]
}

func (c *fakeCommandLine) AppendSwitch(name string) {
	c.AppendSwitchWithValue(name, "")
}

func (c *fakeCommandLine) AppendSwitchWithValue(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.switches[name]; !ok {
		c.names = append(c.names, name)
	}
	c.switches[name] = value
}

func (c *fakeCommandLine) Argv() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	argv := []string{c.program}
	for _, n := range c.names {
		if v := c.switches[n]; v != "" {
			argv = append(argv, fmt.Sprintf("--%s=%s", n, v))
		} else {
			argv = append(argv, "--"+n)
		}
	}
	return argv
}

type fakeBrowserContext struct {
	path         string
	offTheRecord bool
	original     *fakeBrowserContext
}

func (c *fakeBrowserContext) IsOffTheRecord() bool { return c.offTheRecord }
func (c *fakeBrowserContext) Path() string         { return c.path }

func (c *fakeBrowserContext) OriginalContext() content.BrowserContext {
	if c.original != nil {
		return c.original
	}
	return c
}

type fakeProcess struct {
	id  int
	ctx content.BrowserContext
}

func (p *fakeProcess) ID() int                                { return p.id }
func (p *fakeProcess) BrowserContext() content.BrowserContext { return p.ctx }

type fakeSite struct {
	id   int
	url  string
	proc *fakeProcess
}

func (s *fakeSite) ID() int          { return s.id }
func (s *fakeSite) SiteURL() string  { return s.url }
func (s *fakeSite) HasProcess() bool { return s.proc != nil }

func (s *fakeSite) Process() content.RenderProcessHost {
	if s.proc == nil {
		return nil
	}
	return s.proc
}

type fakeNav struct {
	url        string
	frameID    int64
	frameName  string
	main       bool
	redirect   bool
	transition int
}

func (n *fakeNav) URL() string         { return n.url }
func (n *fakeNav) FrameID() int64      { return n.frameID }
func (n *fakeNav) FrameName() string   { return n.frameName }
func (n *fakeNav) IsInMainFrame() bool { return n.main }
func (n *fakeNav) IsRedirect() bool    { return n.redirect }
func (n *fakeNav) Transition() int     { return n.transition }

type loadCall struct {
	frameID int64
	url     string
}

type fakeWebContents struct {
	mu      sync.Mutex
	ctx     content.BrowserContext
	back    bool
	forward bool
	loads   []loadCall
	sent    []content.Message
}

func newFakeWebContents() *fakeWebContents {
	return &fakeWebContents{ctx: &fakeBrowserContext{path: "/tmp/profile"}, back: true}
}

func (w *fakeWebContents) BrowserContext() content.BrowserContext { return w.ctx }
func (w *fakeWebContents) CanGoBack() bool                        { return w.back }
func (w *fakeWebContents) CanGoForward() bool                     { return w.forward }

func (w *fakeWebContents) LoadURL(frameID int64, url string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.loads = append(w.loads, loadCall{frameID: frameID, url: url})
}

func (w *fakeWebContents) Send(msg content.Message) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sent = append(w.sent, msg)
	return true
}

type fakeURLHandler struct {
	pairs [][2]content.URLRewriter
}

func (h *fakeURLHandler) AddHandlerPair(handler, reverse content.URLRewriter) {
	h.pairs = append(h.pairs, [2]content.URLRewriter{handler, reverse})
}

type fakeWidget struct {
	mu      sync.Mutex
	resized int
}

func (w *fakeWidget) ID() int                                 { return 1 }
func (w *fakeWidget) WasShown()                               {}
func (w *fakeWidget) WasHidden()                              {}
func (w *fakeWidget) SetFocus(bool)                           {}
func (w *fakeWidget) ScreenInfoChanged()                      {}
func (w *fakeWidget) RequestRepaint(content.Rect)             {}
func (w *fakeWidget) SendBeginFrame(time.Time, time.Duration) {}
func (w *fakeWidget) ForwardKeyboardEvent(content.KeyEvent)   {}
func (w *fakeWidget) ForwardMouseEvent(content.MouseEvent)    {}
func (w *fakeWidget) ForwardWheelEvent(content.WheelEvent)    {}

func (w *fakeWidget) WasResized() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resized++
}

// testApp is the client application seen by Init.
type testApp struct {
	mu          sync.Mutex
	processType []string
	appendFlag  string
	schemes     []string
	registered  []bool
	handler     *testProcessHandler
}

func (a *testApp) OnBeforeCommandLineProcessing(processType string, cmd cef.CommandLine) {
	a.mu.Lock()
	a.processType = append(a.processType, processType)
	a.mu.Unlock()
	if a.appendFlag != "" {
		cmd.AppendSwitch(a.appendFlag)
	}
}

func (a *testApp) OnRegisterCustomSchemes(registrar cef.SchemeRegistrar) {
	for _, s := range a.schemes {
		ok := registrar.AddCustomScheme(s, true, false, false)
		a.mu.Lock()
		a.registered = append(a.registered, ok)
		a.mu.Unlock()
	}
}

func (a *testApp) GetBrowserProcessHandler() cef.BrowserProcessHandler {
	if a.handler == nil {
		return nil
	}
	return a.handler
}

func wrapApp(app cef.App) *Config {
	return &Config{App: bridge.AppCppToC.Wrap(app)}
}

type testProcessHandler struct {
	mu          sync.Mutex
	initialized int
	childFlag   string
	launched    int
	extraInfo   func(cef.ListValue)
}

func (h *testProcessHandler) OnContextInitialized() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.initialized++
}

func (h *testProcessHandler) OnBeforeChildProcessLaunch(cmd cef.CommandLine) {
	h.mu.Lock()
	h.launched++
	h.mu.Unlock()
	if h.childFlag != "" {
		cmd.AppendSwitch(h.childFlag)
	}
}

func (h *testProcessHandler) OnRenderProcessThreadCreated(extraInfo cef.ListValue) {
	if h.extraInfo != nil {
		h.extraInfo(extraInfo)
	}
}

// testClient hands out the recording handlers below.
type testClient struct {
	load    *recordingLoadHandler
	drag    *recordingDragHandler
	dialog  *recordingDialogHandler
	request *recordingRequestHandler
	render  *recordingRenderHandler

	mu       sync.Mutex
	messages []string
	args     [][]any
}

func (c *testClient) GetLoadHandler() cef.LoadHandler {
	if c.load == nil {
		return nil
	}
	return c.load
}

func (c *testClient) GetDragHandler() cef.DragHandler {
	if c.drag == nil {
		return nil
	}
	return c.drag
}

func (c *testClient) GetJSDialogHandler() cef.JSDialogHandler {
	if c.dialog == nil {
		return nil
	}
	return c.dialog
}

func (c *testClient) GetRequestHandler() cef.RequestHandler {
	if c.request == nil {
		return nil
	}
	return c.request
}

func (c *testClient) GetRenderHandler() cef.RenderHandler {
	if c.render == nil {
		return nil
	}
	return c.render
}

func (c *testClient) OnProcessMessageReceived(_ cef.Browser, source cef.ProcessID, message cef.ProcessMessage) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, fmt.Sprintf("%s:%s", source, message.Name()))
	c.args = append(c.args, cef.ListValues(message.ArgumentList()))
	return message.Name() == "handled"
}

func wrapClient(c cef.Client) *capi.Client {
	return bridge.ClientCppToC.Wrap(c)
}

type recordingLoadHandler struct {
	mu     sync.Mutex
	events []string
}

func (h *recordingLoadHandler) add(format string, args ...any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, fmt.Sprintf(format, args...))
}

func (h *recordingLoadHandler) OnLoadingStateChange(b cef.Browser, isLoading, canGoBack, canGoForward bool) {
	h.add("state %d %t %t %t", b.Identifier(), isLoading, canGoBack, canGoForward)
}

func (h *recordingLoadHandler) OnLoadStart(b cef.Browser, f cef.Frame, tt cef.TransitionType) {
	h.add("start %d %d %s %t %d", b.Identifier(), f.Identifier(), f.URL(), f.IsMain(), tt)
}

func (h *recordingLoadHandler) OnLoadEnd(b cef.Browser, f cef.Frame, code int) {
	h.add("end %d %d %s %d", b.Identifier(), f.Identifier(), f.URL(), code)
}

func (h *recordingLoadHandler) OnLoadError(b cef.Browser, f cef.Frame, code cef.ErrorCode, text, url string) {
	h.add("error %d %d %d %s %s", b.Identifier(), f.Identifier(), code, text, url)
}

type recordingDragHandler struct {
	mu      sync.Mutex
	cancel  bool
	links   []string
	files   [][]string
	regions []cef.DraggableRegion
}

func (h *recordingDragHandler) OnDragEnter(_ cef.Browser, data cef.DragData, _ cef.DragOperationsMask) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.links = append(h.links, data.LinkURL())
	h.files = append(h.files, data.FileNames())
	return h.cancel
}

func (h *recordingDragHandler) OnDraggableRegionsChanged(_ cef.Browser, regions []cef.DraggableRegion) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.regions = regions
}

type recordingDialogHandler struct {
	mu       sync.Mutex
	handle   bool
	suppress bool
	pending  cef.JSDialogCallback
	messages []string
	unload   []bool
	resets   int
	closed   int
}

func (h *recordingDialogHandler) OnJSDialog(_ cef.Browser, origin string, dt cef.JSDialogType, message, prompt string, cb cef.JSDialogCallback, suppress *bool) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, fmt.Sprintf("%s %d %s %s", origin, dt, message, prompt))
	*suppress = h.suppress
	if h.handle {
		h.pending = cb
	}
	return h.handle
}

func (h *recordingDialogHandler) OnBeforeUnloadDialog(_ cef.Browser, message string, isReload bool, cb cef.JSDialogCallback) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, message)
	h.unload = append(h.unload, isReload)
	if h.handle {
		h.pending = cb
	}
	return h.handle
}

func (h *recordingDialogHandler) OnResetDialogState(cef.Browser) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.resets++
}

func (h *recordingDialogHandler) OnDialogClosed(cef.Browser) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed++
}

func (h *recordingDialogHandler) take() cef.JSDialogCallback {
	h.mu.Lock()
	defer h.mu.Unlock()
	cb := h.pending
	h.pending = nil
	return cb
}

type recordingRequestHandler struct {
	mu         sync.Mutex
	certHandle bool
	certAllow  bool
	certs      []string
	authUser   string
	auth       []string
	terminated []cef.TerminationStatus
}

func (h *recordingRequestHandler) OnCertificateError(_ cef.Browser, code cef.ErrorCode, url string, cb cef.RequestCallback) bool {
	h.mu.Lock()
	h.certs = append(h.certs, fmt.Sprintf("%d %s", code, url))
	handle, allow := h.certHandle, h.certAllow
	h.mu.Unlock()
	if handle {
		cb.Continue(allow)
	}
	return handle
}

func (h *recordingRequestHandler) GetAuthCredentials(_ cef.Browser, f cef.Frame, isProxy bool, host string, port int, realm, scheme string, cb cef.AuthCallback) bool {
	h.mu.Lock()
	h.auth = append(h.auth, fmt.Sprintf("%d %t %s:%d %s %s", f.Identifier(), isProxy, host, port, realm, scheme))
	user := h.authUser
	h.mu.Unlock()
	if user == "" {
		return false
	}
	cb.Continue(user, "secret")
	return true
}

func (h *recordingRequestHandler) OnRenderProcessTerminated(_ cef.Browser, status cef.TerminationStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.terminated = append(h.terminated, status)
}

type recordingRenderHandler struct {
	mu       sync.Mutex
	popups   []bool
	cursors  []cef.CursorType
	browsers []int32
}

func (h *recordingRenderHandler) GetViewRect(b cef.Browser, rect *cef.Rect) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.browsers = append(h.browsers, b.Identifier())
	*rect = cef.Rect{Width: 640, Height: 480}
	return true
}

func (h *recordingRenderHandler) OnCursorChange(_ cef.Browser, cursor cef.CursorType) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursors = append(h.cursors, cursor)
}
