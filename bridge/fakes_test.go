package bridge

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/transcoder"
	"github.com/wippyai/cef-bridge/wrapper"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// useHeap installs a fresh default heap for the test and returns its arena.
func useHeap(t *testing.T) *transcoder.Arena {
	t.Helper()
	mem := transcoder.NewLocalMemory(64<<10, 0)
	arena := transcoder.NewArena(mem)
	prev := transcoder.SetDefault(transcoder.NewHeap(mem, arena))
	t.Cleanup(func() { transcoder.SetDefault(prev) })
	return arena
}

func requireNoLiveAllocations(t *testing.T, arena *transcoder.Arena) {
	t.Helper()
	if st := arena.Stats(); st.Live != 0 {
		t.Fatalf("%d allocations still live (%d bytes)", st.Live, st.LiveBytes)
	}
}

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	prev := wrapper.Logger()
	wrapper.SetLogger(zap.New(core))
	t.Cleanup(func() { wrapper.SetLogger(prev) })
	return logs
}

type fakeBrowser struct {
	id      int32
	loading bool
	frames  []string
	main    *fakeFrame

	mu   sync.Mutex
	sent []cef.ProcessMessage
}

func (b *fakeBrowser) Identifier() int32    { return b.id }
func (b *fakeBrowser) IsLoading() bool      { return b.loading }
func (b *fakeBrowser) CanGoBack() bool      { return false }
func (b *fakeBrowser) CanGoForward() bool   { return true }
func (b *fakeBrowser) MainFrame() cef.Frame { return b.main }
func (b *fakeBrowser) FrameNames() []string { return b.frames }

func (b *fakeBrowser) IsSame(that cef.Browser) bool {
	return that != nil && that.Identifier() == b.id
}

func (b *fakeBrowser) SendProcessMessage(target cef.ProcessID, message cef.ProcessMessage) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, message)
	return target == cef.PIDRenderer
}

type fakeFrame struct {
	browser *fakeBrowser
	name    string
	url     string
	id      int64
	loaded  string
}

func (f *fakeFrame) IsValid() bool     { return true }
func (f *fakeFrame) IsMain() bool      { return f.browser != nil && f.browser.main == f }
func (f *fakeFrame) Name() string      { return f.name }
func (f *fakeFrame) Identifier() int64 { return f.id }
func (f *fakeFrame) URL() string       { return f.url }
func (f *fakeFrame) LoadURL(url string) {
	f.loaded = url
}

func (f *fakeFrame) Browser() cef.Browser {
	if f.browser == nil {
		return nil
	}
	return f.browser
}

func newFakeBrowser(id int32) *fakeBrowser {
	b := &fakeBrowser{id: id, frames: []string{"main", "ads"}}
	b.main = &fakeFrame{browser: b, name: "main", url: "https://example.com/", id: 7}
	return b
}

type fakeList struct {
	values []any
}

func (l *fakeList) IsValid() bool { return true }
func (l *fakeList) Size() int     { return len(l.values) }

func (l *fakeList) SetSize(size int) bool {
	if size < 0 {
		return false
	}
	next := make([]any, size)
	copy(next, l.values)
	l.values = next
	return true
}

func (l *fakeList) GetType(index int) cef.ValueType {
	if index < 0 || index >= len(l.values) {
		return cef.ValueTypeInvalid
	}
	switch l.values[index].(type) {
	case string:
		return cef.ValueTypeString
	case int32:
		return cef.ValueTypeInt
	default:
		return cef.ValueTypeNull
	}
}

func (l *fakeList) GetString(index int) string {
	if index < 0 || index >= len(l.values) {
		return ""
	}
	s, _ := l.values[index].(string)
	return s
}

func (l *fakeList) SetString(index int, value string) bool {
	if index < 0 || index >= len(l.values) {
		return false
	}
	l.values[index] = value
	return true
}

func (l *fakeList) GetInt(index int) int32 {
	if index < 0 || index >= len(l.values) {
		return 0
	}
	v, _ := l.values[index].(int32)
	return v
}

func (l *fakeList) SetInt(index int, value int32) bool {
	if index < 0 || index >= len(l.values) {
		return false
	}
	l.values[index] = value
	return true
}

type fakeMessage struct {
	name string
	args *fakeList
}

func (m *fakeMessage) IsValid() bool                { return true }
func (m *fakeMessage) Name() string                 { return m.name }
func (m *fakeMessage) ArgumentList() cef.ListValue { return m.args }

// loadStartOnly implements a single LoadHandler capability.
type loadStartOnly struct {
	starts atomic.Int32
	last   cef.TransitionType
	url    string
}

func (h *loadStartOnly) OnLoadStart(browser cef.Browser, frame cef.Frame, transitionType cef.TransitionType) {
	h.starts.Add(1)
	h.last = transitionType
	h.url = frame.URL()
}

type panickingLoadHandler struct{}

func (panickingLoadHandler) OnLoadEnd(cef.Browser, cef.Frame, int) {
	panic("handler exploded")
}

type recordingRenderHandler struct {
	rects  []cef.Rect
	buffer []byte
	width  int
	height int
	bounds []cef.Rect
	rng    cef.Range
}

func (h *recordingRenderHandler) GetViewRect(browser cef.Browser, rect *cef.Rect) bool {
	*rect = cef.Rect{Width: 800, Height: 600}
	return true
}

func (h *recordingRenderHandler) GetScreenInfo(browser cef.Browser, info *cef.ScreenInfo) bool {
	info.DeviceScaleFactor = 2
	info.Depth = 24
	info.Rect = cef.Rect{Width: 1920, Height: 1080}
	return true
}

func (h *recordingRenderHandler) GetScreenPoint(browser cef.Browser, viewX, viewY int, screenX, screenY *int) bool {
	*screenX = viewX + 100
	*screenY = viewY + 200
	return true
}

func (h *recordingRenderHandler) OnPaint(browser cef.Browser, elementType cef.PaintElementType, dirtyRects []cef.Rect, buffer []byte, width, height int) {
	h.rects = dirtyRects
	h.buffer = append([]byte(nil), buffer...)
	h.width = width
	h.height = height
}

func (h *recordingRenderHandler) OnImeCompositionRangeChanged(browser cef.Browser, selectedRange cef.Range, characterBounds []cef.Rect) {
	h.rng = selectedRange
	h.bounds = characterBounds
}

type fakeDialogCallback struct {
	success bool
	input   string
	calls   int
}

func (c *fakeDialogCallback) Continue(success bool, userInput string) {
	c.success = success
	c.input = userInput
	c.calls++
}

type promptAnswerer struct{}

func (promptAnswerer) OnJSDialog(browser cef.Browser, originURL string, dialogType cef.JSDialogType, messageText, defaultPromptText string, callback cef.JSDialogCallback, suppressMessage *bool) bool {
	if dialogType != cef.JSDialogPrompt {
		*suppressMessage = true
		return false
	}
	callback.Continue(true, defaultPromptText+" from "+originURL)
	return true
}

type fakeView struct {
	id      int32
	size    cef.Size
	visible bool
	parent  cef.View
}

func (v *fakeView) TypeString() string     { return "View" }
func (v *fakeView) ID() int32              { return v.id }
func (v *fakeView) SetID(id int32)         { v.id = id }
func (v *fakeView) Size() cef.Size         { return v.size }
func (v *fakeView) SetSize(size cef.Size)  { v.size = size }
func (v *fakeView) IsVisible() bool        { return v.visible }
func (v *fakeView) SetVisible(visible bool) { v.visible = visible }
func (v *fakeView) ParentView() cef.View {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

type fakePanel struct {
	fakeView
	children []cef.View
}

func (p *fakePanel) TypeString() string { return "Panel" }
func (p *fakePanel) ChildViewCount() int { return len(p.children) }

func (p *fakePanel) ChildViewAt(index int) cef.View {
	if index < 0 || index >= len(p.children) {
		return nil
	}
	return p.children[index]
}

func (p *fakePanel) AddChildView(view cef.View) {
	p.children = append(p.children, view)
}

type fakeWindow struct {
	fakePanel
	title  string
	shown  bool
	closed bool
}

func (w *fakeWindow) TypeString() string        { return "Window" }
func (w *fakeWindow) Show()                     { w.shown = true }
func (w *fakeWindow) Hide()                     { w.shown = false }
func (w *fakeWindow) Title() string             { return w.title }
func (w *fakeWindow) SetTitle(title string)     { w.title = title }
func (w *fakeWindow) Close()                    { w.closed = true }
func (w *fakeWindow) IsClosed() bool            { return w.closed }
func (w *fakeWindow) CenterWindow(size cef.Size) { w.size = size }

type sizingDelegate struct {
	created int
}

func (d *sizingDelegate) GetPreferredSize(view cef.View) cef.Size {
	return cef.Size{Width: view.ID() * 10, Height: 50}
}

func (d *sizingDelegate) OnWindowCreated(window cef.Window) {
	d.created++
}

func (d *sizingDelegate) CanClose(window cef.Window) bool {
	return window.Title() != "busy"
}

type fakeException struct {
	message string
	line    int
}

func (e *fakeException) Message() string            { return e.message }
func (e *fakeException) SourceLine() string         { return "" }
func (e *fakeException) ScriptResourceName() string { return "test.js" }
func (e *fakeException) LineNumber() int            { return e.line }
func (e *fakeException) StartColumn() int           { return 0 }
func (e *fakeException) EndColumn() int             { return 1 }

type fakeContext struct {
	browser *fakeBrowser
}

func (c *fakeContext) IsValid() bool        { return true }
func (c *fakeContext) Browser() cef.Browser { return c.browser }
func (c *fakeContext) Frame() cef.Frame     { return c.browser.main }
func (c *fakeContext) IsSame(that cef.V8Context) bool {
	return that != nil && that.Browser().Identifier() == c.browser.id
}

func (c *fakeContext) Eval(code string) (string, cef.V8Exception, bool) {
	if code == "throw" {
		return "", &fakeException{message: "Uncaught boom", line: 3}, false
	}
	return "evaluated:" + code, nil, true
}

type fakeCommandLine struct {
	switches map[string]string
	order    []string
}

func newFakeCommandLine() *fakeCommandLine {
	return &fakeCommandLine{switches: make(map[string]string)}
}

func (c *fakeCommandLine) IsReadOnly() bool { return false }

func (c *fakeCommandLine) HasSwitch(name string) bool {
	_, ok := c.switches[name]
	return ok
}

func (c *fakeCommandLine) SwitchValue(name string) string { return c.switches[name] }

func (c *fakeCommandLine) AppendSwitch(name string) {
	c.AppendSwitchWithValue(name, "")
}

func (c *fakeCommandLine) AppendSwitchWithValue(name, value string) {
	c.switches[name] = value
	c.order = append(c.order, name)
}

func (c *fakeCommandLine) Argv() []string {
	argv := []string{"app"}
	for _, name := range c.order {
		arg := "--" + name
		if v := c.switches[name]; v != "" {
			arg += "=" + v
		}
		argv = append(argv, arg)
	}
	return argv
}

// gpuOffApp disables the GPU in every process it sees.
type gpuOffApp struct {
	processTypes []string
}

func (a *gpuOffApp) OnBeforeCommandLineProcessing(processType string, commandLine cef.CommandLine) {
	a.processTypes = append(a.processTypes, processType)
	if !commandLine.HasSwitch("disable-gpu") {
		commandLine.AppendSwitch("disable-gpu")
	}
	commandLine.AppendSwitchWithValue("lang", "en-US")
}

type emptyDelegate struct{}
