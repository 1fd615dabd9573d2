package renderer

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wippyai/cef-bridge/bridge"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/transcoder"
)

func useHeap(t *testing.T) {
	t.Helper()
	mem := transcoder.NewLocalMemory(64<<10, 0)
	prev := transcoder.SetDefault(transcoder.NewHeap(mem, transcoder.NewArena(mem)))
	t.Cleanup(func() { transcoder.SetDefault(prev) })
}

// newProcess starts a Process for app with the given switches. Each switch
// is "name" or "name=value".
func newProcess(t *testing.T, app cef.App, switches ...string) *Process {
	t.Helper()
	cfg := &Config{CommandLine: newTestCommandLine(switches...)}
	if app != nil {
		cfg.App = bridge.AppCppToC.Wrap(app)
	}
	p, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

type testCommandLine struct {
	mu       sync.Mutex
	names    []string
	switches map[string]string
}

func newTestCommandLine(switches ...string) *testCommandLine {
	c := &testCommandLine{switches: make(map[string]string)}
	for _, s := range switches {
		name, value, _ := strings.Cut(s, "=")
		c.AppendSwitchWithValue(name, value)
	}
	return c
}

func (c *testCommandLine) HasSwitch(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.switches[name]
	return ok
}

func (c *testCommandLine) SwitchValue(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.switches[name]
}

func (c *testCommandLine) AppendSwitch(name string) { c.AppendSwitchWithValue(name, "") }

func (c *testCommandLine) AppendSwitchWithValue(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.switches[name]; !ok {
		c.names = append(c.names, name)
	}
	c.switches[name] = value
}

func (c *testCommandLine) Argv() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	argv := []string{"/opt/app/app", "--type=renderer"}
	for _, n := range c.names {
		if v := c.switches[n]; v != "" {
			argv = append(argv, "--"+n+"="+v)
		} else {
			argv = append(argv, "--"+n)
		}
	}
	return argv
}

type testBrowser struct{ id int32 }

func (b *testBrowser) Identifier() int32                                         { return b.id }
func (b *testBrowser) IsLoading() bool                                           { return false }
func (b *testBrowser) CanGoBack() bool                                           { return false }
func (b *testBrowser) CanGoForward() bool                                        { return false }
func (b *testBrowser) MainFrame() cef.Frame                                      { return nil }
func (b *testBrowser) FrameNames() []string                                      { return nil }
func (b *testBrowser) IsSame(that cef.Browser) bool                              { return that != nil && that.Identifier() == b.id }
func (b *testBrowser) SendProcessMessage(cef.ProcessID, cef.ProcessMessage) bool { return false }

type testFrame struct {
	id      int64
	url     string
	browser cef.Browser
}

func (f *testFrame) IsValid() bool        { return true }
func (f *testFrame) IsMain() bool         { return f.id == 1 }
func (f *testFrame) Name() string         { return "" }
func (f *testFrame) Identifier() int64    { return f.id }
func (f *testFrame) URL() string          { return f.url }
func (f *testFrame) Browser() cef.Browser { return f.browser }
func (f *testFrame) LoadURL(url string)   { f.url = url }

type testRequest struct{ url string }

func (r *testRequest) IsReadOnly() bool  { return true }
func (r *testRequest) URL() string       { return r.url }
func (r *testRequest) Method() string    { return "GET" }
func (r *testRequest) SetURL(url string) { r.url = url }

type testApp struct {
	handler cef.RenderProcessHandler
}

func (a *testApp) GetRenderProcessHandler() cef.RenderProcessHandler { return a.handler }

type uncaught struct {
	message  string
	resource string
	line     int
	frames   []string
}

// recordingHandler implements every render process callback and records
// what it sees as formatted events.
type recordingHandler struct {
	mu         sync.Mutex
	events     []string
	extraInfo  []any
	cancelURL  string
	evals      []string
	exceptions []uncaught
	load       *recordingLoadHandler
}

func (h *recordingHandler) record(format string, args ...any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, fmt.Sprintf(format, args...))
}

func (h *recordingHandler) recorded() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.events...)
}

func (h *recordingHandler) OnRenderThreadCreated(extraInfo cef.ListValue) {
	h.mu.Lock()
	h.extraInfo = cef.ListValues(extraInfo)
	h.mu.Unlock()
	h.record("thread created: read-only=%t", !extraInfo.SetString(0, "changed"))
}

func (h *recordingHandler) OnWebKitInitialized() { h.record("webkit") }

func (h *recordingHandler) OnBrowserCreated(b cef.Browser) {
	h.record("browser created %d", b.Identifier())
}

func (h *recordingHandler) OnBrowserDestroyed(b cef.Browser) {
	h.record("browser destroyed %d", b.Identifier())
}

func (h *recordingHandler) GetLoadHandler() cef.LoadHandler {
	if h.load == nil {
		return nil
	}
	return h.load
}

func (h *recordingHandler) OnBeforeNavigation(b cef.Browser, f cef.Frame, req cef.Request, navigationType cef.NavigationType, isRedirect bool) bool {
	h.record("navigate %s %s %d %t", req.Method(), req.URL(), navigationType, isRedirect)
	return req.URL() == h.cancelURL
}

func (h *recordingHandler) OnContextCreated(b cef.Browser, f cef.Frame, ctx cef.V8Context) {
	h.record("context created %d/%d", b.Identifier(), f.Identifier())
	if v, _, ok := ctx.Eval("40 + 2"); ok {
		h.mu.Lock()
		h.evals = append(h.evals, v)
		h.mu.Unlock()
	}
}

func (h *recordingHandler) OnContextReleased(b cef.Browser, f cef.Frame, ctx cef.V8Context) {
	h.record("context released %d/%d valid=%t", b.Identifier(), f.Identifier(), ctx.IsValid())
}

func (h *recordingHandler) OnUncaughtException(b cef.Browser, f cef.Frame, ctx cef.V8Context, exc cef.V8Exception, st cef.V8StackTrace) {
	u := uncaught{message: exc.Message(), resource: exc.ScriptResourceName(), line: exc.LineNumber()}
	for i := 0; i < st.FrameCount(); i++ {
		u.frames = append(u.frames, st.FrameText(i))
	}
	h.mu.Lock()
	h.exceptions = append(h.exceptions, u)
	h.mu.Unlock()
}

func (h *recordingHandler) OnFocusedNodeChanged(b cef.Browser, f cef.Frame, node cef.DOMNode) {
	if node == nil {
		h.record("focus cleared frame=%t", f != nil)
		return
	}
	h.record("focus %s element=%t editable=%t value=%q", node.Name(), node.IsElement(), node.IsEditable(), node.Value())
}

func (h *recordingHandler) OnProcessMessageReceived(b cef.Browser, source cef.ProcessID, msg cef.ProcessMessage) bool {
	h.record("message %s from %s: %v", msg.Name(), source, cef.ListValues(msg.ArgumentList()))
	return msg.Name() == "handled"
}

type recordingLoadHandler struct {
	mu     sync.Mutex
	events []string
}

func (l *recordingLoadHandler) record(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

func (l *recordingLoadHandler) OnLoadingStateChange(b cef.Browser, isLoading, canGoBack, canGoForward bool) {
	l.record("state %t %t %t", isLoading, canGoBack, canGoForward)
}

func (l *recordingLoadHandler) OnLoadStart(b cef.Browser, f cef.Frame, transitionType cef.TransitionType) {
	l.record("start %d %d", f.Identifier(), transitionType)
}

func (l *recordingLoadHandler) OnLoadEnd(b cef.Browser, f cef.Frame, httpStatusCode int) {
	l.record("end %d %d", f.Identifier(), httpStatusCode)
}

func (l *recordingLoadHandler) OnLoadError(b cef.Browser, f cef.Frame, errorCode cef.ErrorCode, errorText, failedURL string) {
	l.record("error %d %s %s", errorCode, errorText, failedURL)
}
