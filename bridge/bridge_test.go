package bridge

import (
	"bytes"
	"sync"
	"testing"

	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/wrapper"
)

// engineBrowser exposes fb through the bridge and adapts it back, the way
// the engine's browser reaches client code.
func engineBrowser(fb *fakeBrowser) cef.Browser {
	return BrowserCToCpp.Wrap(BrowserCppToC.Wrap(fb))
}

func TestBrowserRoundTrip(t *testing.T) {
	arena := useHeap(t)
	fb := newFakeBrowser(42)
	b := engineBrowser(fb)

	if got := b.Identifier(); got != 42 {
		t.Errorf("Identifier() = %d, want 42", got)
	}
	if b.IsLoading() || b.CanGoBack() || !b.CanGoForward() {
		t.Error("navigation flags did not cross the boundary")
	}

	names := b.FrameNames()
	if len(names) != 2 || names[0] != "main" || names[1] != "ads" {
		t.Errorf("FrameNames() = %v", names)
	}

	frame := b.MainFrame()
	if frame == nil {
		t.Fatal("MainFrame() returned nil")
	}
	if got := frame.URL(); got != "https://example.com/" {
		t.Errorf("URL() = %q", got)
	}
	if got := frame.Identifier(); got != 7 {
		t.Errorf("frame Identifier() = %d, want 7", got)
	}
	if !frame.IsMain() {
		t.Error("main frame reports IsMain() = false")
	}
	if frame.Browser() != b {
		t.Error("frame.Browser() did not return the same adapter")
	}

	frame.LoadURL("https://example.org/next")
	if fb.main.loaded != "https://example.org/next" {
		t.Errorf("LoadURL reached the frame with %q", fb.main.loaded)
	}

	if !b.IsSame(engineBrowser(fb)) {
		t.Error("IsSame() = false for the same browser")
	}

	requireNoLiveAllocations(t, arena)
}

func TestWrapNil(t *testing.T) {
	if s := BrowserCppToC.Wrap(nil); s != nil {
		t.Error("Wrap(nil) returned a struct")
	}
	var typed *fakeBrowser
	if s := BrowserCppToC.Wrap(typed); s != nil {
		t.Error("Wrap(typed nil) returned a struct")
	}
	if b := BrowserCToCpp.Wrap(nil); b != nil {
		t.Error("CToCpp Wrap(nil) returned an adapter")
	}
}

func TestWrapDeduplicates(t *testing.T) {
	fb := newFakeBrowser(1)
	s1 := BrowserCppToC.Wrap(fb)
	s2 := BrowserCppToC.Wrap(fb)
	if s1 != s2 {
		t.Fatal("wrapping the same object twice built two structs")
	}
	if got := s1.Base.RefCount(); got != 2 {
		t.Errorf("RefCount() = %d, want 2", got)
	}

	if got := BrowserCppToC.Unwrap(s1); got != cef.Browser(fb) {
		t.Errorf("Unwrap() = %v, want the wrapped browser", got)
	}
	if got := s2.Base.RefCount(); got != 1 {
		t.Errorf("RefCount() after Unwrap = %d, want 1", got)
	}
	s2.Base.Release()
}

func TestListValueRoundTrip(t *testing.T) {
	arena := useHeap(t)
	l := ListValueCToCpp.Wrap(ListValueCppToC.Wrap(&fakeList{}))

	if !l.SetSize(3) {
		t.Fatal("SetSize(3) failed")
	}
	if !l.SetString(0, "hello") || !l.SetInt(1, 42) {
		t.Fatal("setters failed")
	}
	if got := l.Size(); got != 3 {
		t.Errorf("Size() = %d, want 3", got)
	}
	if got := l.GetString(0); got != "hello" {
		t.Errorf("GetString(0) = %q", got)
	}
	if got := l.GetInt(1); got != 42 {
		t.Errorf("GetInt(1) = %d", got)
	}
	for i, want := range []cef.ValueType{cef.ValueTypeString, cef.ValueTypeInt, cef.ValueTypeNull, cef.ValueTypeInvalid} {
		if got := l.GetType(i); got != want {
			t.Errorf("GetType(%d) = %d, want %d", i, got, want)
		}
	}
	if got := l.GetString(-1); got != "" {
		t.Errorf("GetString(-1) = %q, want empty", got)
	}
	if l.SetInt(-1, 1) {
		t.Error("SetInt(-1) succeeded")
	}

	requireNoLiveAllocations(t, arena)
}

func TestSendProcessMessage(t *testing.T) {
	arena := useHeap(t)
	fb := newFakeBrowser(3)
	b := engineBrowser(fb)

	fm := &fakeMessage{name: "ping", args: &fakeList{values: []any{"payload", int32(9)}}}
	msg := ProcessMessageCToCpp.Wrap(ProcessMessageCppToC.Wrap(fm))

	if got := msg.Name(); got != "ping" {
		t.Errorf("Name() = %q", got)
	}
	args := msg.ArgumentList()
	if got := args.GetString(0); got != "payload" {
		t.Errorf("argument 0 = %q", got)
	}
	if got := args.GetInt(1); got != 9 {
		t.Errorf("argument 1 = %d", got)
	}

	if !b.SendProcessMessage(cef.PIDRenderer, msg) {
		t.Error("SendProcessMessage() = false")
	}
	if len(fb.sent) != 1 || fb.sent[0] != cef.ProcessMessage(fm) {
		t.Fatalf("browser received %v, want the original message", fb.sent)
	}

	requireNoLiveAllocations(t, arena)
}

func TestSendForeignMessageIsRejected(t *testing.T) {
	logs := observe(t)
	fb := newFakeBrowser(3)
	b := engineBrowser(fb)

	// A message built outside the bridge has no struct to hand over.
	b.SendProcessMessage(cef.PIDRenderer, &fakeMessage{name: "stray"})

	if len(fb.sent) != 0 {
		t.Errorf("browser received %d messages, want 0", len(fb.sent))
	}
	if logs.FilterMessage("contract violation").Len() == 0 {
		t.Error("no contract violation logged")
	}
}

func TestMissingCapability(t *testing.T) {
	useHeap(t)
	h := &loadStartOnly{}
	s := LoadHandlerCppToC.Wrap(h)
	if s.OnLoadStart == nil {
		t.Fatal("OnLoadStart not exposed")
	}
	if s.OnLoadEnd != nil || s.OnLoadError != nil || s.OnLoadingStateChange != nil {
		t.Fatal("unimplemented capabilities were exposed")
	}

	a := LoadHandlerCToCpp.Wrap(s)
	b := engineBrowser(newFakeBrowser(1))
	f := b.MainFrame()

	a.(cef.LoadEndHandler).OnLoadEnd(b, f, 200)
	a.(cef.LoadErrorHandler).OnLoadError(b, f, cef.ErrAborted, "", "https://x/")
	a.(cef.LoadStartHandler).OnLoadStart(b, f, cef.TTReload)

	if got := h.starts.Load(); got != 1 {
		t.Fatalf("OnLoadStart calls = %d, want 1", got)
	}
	if h.last != cef.TTReload || h.url != "https://example.com/" {
		t.Errorf("OnLoadStart got (%v, %q)", h.last, h.url)
	}
}

func TestPanicIsContained(t *testing.T) {
	logs := observe(t)
	a := LoadHandlerCToCpp.Wrap(LoadHandlerCppToC.Wrap(panickingLoadHandler{}))
	b := engineBrowser(newFakeBrowser(1))

	a.(cef.LoadEndHandler).OnLoadEnd(b, b.MainFrame(), 500)

	entries := logs.FilterMessage("panic in bound call").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d panics, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["method"]; got != "OnLoadEnd" {
		t.Errorf("method = %v", got)
	}
}

func TestShimMissingParam(t *testing.T) {
	logs := observe(t)
	h := &loadStartOnly{}
	s := LoadHandlerCppToC.Wrap(h)
	defer s.Base.Release()

	s.OnLoadStart(s, nil, nil, int32(cef.TTLink))

	if h.starts.Load() != 0 {
		t.Error("handler ran without a browser")
	}
	entries := logs.FilterMessage("contract violation").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d violations, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["method"]; got != "OnLoadStart" {
		t.Errorf("method = %v", got)
	}
}

func TestForgedHandle(t *testing.T) {
	logs := observe(t)
	forged := &capi.Browser{}
	forged.Base.Handle = 1 << 20

	if got := browserGetIdentifier(forged); got != 0 {
		t.Errorf("GetIdentifier(forged) = %d, want 0", got)
	}
	if got := browserGetIdentifier(nil); got != 0 {
		t.Errorf("GetIdentifier(nil) = %d, want 0", got)
	}
	if logs.FilterMessage("contract violation").Len() != 2 {
		t.Errorf("logged %d violations, want 2", logs.FilterMessage("contract violation").Len())
	}
}

func TestRenderHandler(t *testing.T) {
	arena := useHeap(t)
	rh := &recordingRenderHandler{}
	a := RenderHandlerCToCpp.Wrap(RenderHandlerCppToC.Wrap(rh))
	b := engineBrowser(newFakeBrowser(5))

	var rect cef.Rect
	if !a.(cef.ViewRectProvider).GetViewRect(b, &rect) {
		t.Fatal("GetViewRect() = false")
	}
	if rect != (cef.Rect{Width: 800, Height: 600}) {
		t.Errorf("GetViewRect() filled %+v", rect)
	}

	var info cef.ScreenInfo
	if !a.(cef.ScreenInfoProvider).GetScreenInfo(b, &info) {
		t.Fatal("GetScreenInfo() = false")
	}
	if info.DeviceScaleFactor != 2 || info.Depth != 24 || info.Rect.Width != 1920 {
		t.Errorf("GetScreenInfo() filled %+v", info)
	}

	var x, y int
	if !a.(cef.ScreenPointProvider).GetScreenPoint(b, 10, 20, &x, &y) {
		t.Fatal("GetScreenPoint() = false")
	}
	if x != 110 || y != 220 {
		t.Errorf("GetScreenPoint() = (%d, %d)", x, y)
	}

	dirty := []cef.Rect{{X: 0, Y: 0, Width: 2, Height: 1}, {X: 1, Y: 0, Width: 1, Height: 1}}
	buffer := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	a.(cef.PaintHandler).OnPaint(b, cef.PETView, dirty, buffer, 2, 1)

	if len(rh.rects) != 2 || rh.rects[1] != dirty[1] {
		t.Errorf("OnPaint rects = %+v", rh.rects)
	}
	if !bytes.Equal(rh.buffer, buffer) || rh.width != 2 || rh.height != 1 {
		t.Errorf("OnPaint buffer = %v (%dx%d)", rh.buffer, rh.width, rh.height)
	}

	bounds := []cef.Rect{{X: 3, Y: 4, Width: 5, Height: 6}}
	a.(cef.ImeCompositionRangeChangedHandler).OnImeCompositionRangeChanged(b, cef.Range{From: 1, To: 4}, bounds)
	if rh.rng != (cef.Range{From: 1, To: 4}) || len(rh.bounds) != 1 || rh.bounds[0] != bounds[0] {
		t.Errorf("OnImeCompositionRangeChanged got %+v %+v", rh.rng, rh.bounds)
	}

	requireNoLiveAllocations(t, arena)
}

func TestJSDialog(t *testing.T) {
	arena := useHeap(t)
	a := JSDialogHandlerCToCpp.Wrap(JSDialogHandlerCppToC.Wrap(promptAnswerer{}))
	runner := a.(cef.JSDialogRunner)
	b := engineBrowser(newFakeBrowser(1))

	tests := []struct {
		name         string
		dialogType   cef.JSDialogType
		wantHandled  bool
		wantSuppress bool
		wantCalls    int
		wantInput    string
	}{
		{name: "prompt", dialogType: cef.JSDialogPrompt, wantHandled: true, wantCalls: 1, wantInput: "42 from https://a.test"},
		{name: "alert", dialogType: cef.JSDialogAlert, wantSuppress: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := &fakeDialogCallback{}
			callback := JSDialogCallbackCToCpp.Wrap(JSDialogCallbackCppToC.Wrap(cb))
			suppress := false

			handled := runner.OnJSDialog(b, "https://a.test", tt.dialogType, "question?", "42", callback, &suppress)

			if handled != tt.wantHandled {
				t.Errorf("handled = %v, want %v", handled, tt.wantHandled)
			}
			if suppress != tt.wantSuppress {
				t.Errorf("suppressMessage = %v, want %v", suppress, tt.wantSuppress)
			}
			if cb.calls != tt.wantCalls || cb.input != tt.wantInput {
				t.Errorf("callback got %d calls, input %q", cb.calls, cb.input)
			}
		})
	}

	requireNoLiveAllocations(t, arena)
}

func TestJSDialogRequiresSuppressMessage(t *testing.T) {
	logs := observe(t)
	a := JSDialogHandlerCToCpp.Wrap(JSDialogHandlerCppToC.Wrap(promptAnswerer{}))
	b := engineBrowser(newFakeBrowser(1))
	cb := JSDialogCallbackCToCpp.Wrap(JSDialogCallbackCppToC.Wrap(&fakeDialogCallback{}))

	if a.(cef.JSDialogRunner).OnJSDialog(b, "", cef.JSDialogPrompt, "", "", cb, nil) {
		t.Error("OnJSDialog() = true without suppressMessage")
	}
	if logs.FilterMessage("contract violation").Len() != 1 {
		t.Error("missing suppressMessage was not reported")
	}
}

func TestAppCommandLine(t *testing.T) {
	arena := useHeap(t)
	app := &gpuOffApp{}
	a := AppCToCpp.Wrap(AppCppToC.Wrap(app))
	cl := newFakeCommandLine()

	a.(cef.CommandLineProcessor).OnBeforeCommandLineProcessing("", CommandLineCToCpp.Wrap(CommandLineCppToC.Wrap(cl)))
	a.(cef.CommandLineProcessor).OnBeforeCommandLineProcessing("renderer", CommandLineCToCpp.Wrap(CommandLineCppToC.Wrap(cl)))

	if len(app.processTypes) != 2 || app.processTypes[1] != "renderer" {
		t.Errorf("process types = %q", app.processTypes)
	}
	if !cl.HasSwitch("disable-gpu") || cl.SwitchValue("lang") != "en-US" {
		t.Errorf("switches = %v", cl.switches)
	}
	want := []string{"app", "--disable-gpu", "--lang=en-US", "--lang=en-US"}
	if got := cl.Argv(); len(got) != len(want) {
		t.Errorf("Argv() = %q, want %q", got, want)
	}

	// The app has no render process handler.
	if h := a.(cef.RenderProcessHandlerProvider).GetRenderProcessHandler(); h != nil {
		t.Errorf("GetRenderProcessHandler() = %v, want nil", h)
	}

	requireNoLiveAllocations(t, arena)
}

func TestV8Eval(t *testing.T) {
	arena := useHeap(t)
	fb := newFakeBrowser(8)
	ctx := V8ContextCToCpp.Wrap(V8ContextCppToC.Wrap(&fakeContext{browser: fb}))

	result, exc, ok := ctx.Eval("1+1")
	if !ok || exc != nil || result != "evaluated:1+1" {
		t.Fatalf("Eval() = (%q, %v, %v)", result, exc, ok)
	}

	result, exc, ok = ctx.Eval("throw")
	if ok || result != "" {
		t.Fatalf("Eval(throw) = (%q, ok=%v)", result, ok)
	}
	if exc == nil {
		t.Fatal("Eval(throw) returned no exception")
	}
	if exc.Message() != "Uncaught boom" || exc.LineNumber() != 3 || exc.ScriptResourceName() != "test.js" {
		t.Errorf("exception = %q line %d in %q", exc.Message(), exc.LineNumber(), exc.ScriptResourceName())
	}

	if got := ctx.Browser().Identifier(); got != 8 {
		t.Errorf("Browser().Identifier() = %d", got)
	}
	if !ctx.IsSame(ctx) {
		t.Error("IsSame(self) = false")
	}

	requireNoLiveAllocations(t, arena)
}

func TestDerivedViews(t *testing.T) {
	arena := useHeap(t)
	fw := &fakeWindow{title: "main"}
	fw.id = 1

	// A window struct handed to a View parameter still unwraps to the window.
	ws := WindowCppToC.Wrap(fw)
	if got := ViewCppToC.Unwrap(capi.Cast[capi.View](ws)); got != cef.View(fw) {
		t.Fatalf("ViewCppToC.Unwrap(window) = %v", got)
	}

	w := WindowCToCpp.Wrap(WindowCppToC.Wrap(fw))
	if got := w.TypeString(); got != "Window" {
		t.Errorf("TypeString() = %q", got)
	}
	w.SetTitle("renamed")
	if got := w.Title(); got != "renamed" {
		t.Errorf("Title() = %q", got)
	}
	w.SetSize(cef.Size{Width: 300, Height: 200})
	if fw.size != (cef.Size{Width: 300, Height: 200}) {
		t.Errorf("SetSize reached the window with %+v", fw.size)
	}
	if w.ParentView() != nil {
		t.Error("top-level window has a parent")
	}

	// Routing a Window adapter through the View binding reaches the window.
	if got := ViewCppToC.Unwrap(ViewCToCpp.Unwrap(w)); got != cef.View(fw) {
		t.Errorf("View round trip = %v", got)
	}
	if got := PanelCppToC.Unwrap(PanelCToCpp.Unwrap(w)); got != cef.Panel(fw) {
		t.Errorf("Panel round trip = %v", got)
	}

	child := &fakeView{id: 9}
	w.AddChildView(ViewCToCpp.Wrap(ViewCppToC.Wrap(child)))
	if w.ChildViewCount() != 1 || fw.children[0] != cef.View(child) {
		t.Fatalf("children = %v", fw.children)
	}
	if got := w.ChildViewAt(0).ID(); got != 9 {
		t.Errorf("ChildViewAt(0).ID() = %d", got)
	}
	if w.ChildViewAt(5) != nil {
		t.Error("ChildViewAt(5) != nil")
	}

	w.Close()
	if !w.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}

	requireNoLiveAllocations(t, arena)
}

func TestWindowDelegate(t *testing.T) {
	useHeap(t)
	d := &sizingDelegate{}
	wd := WindowDelegateCToCpp.Wrap(WindowDelegateCppToC.Wrap(d))

	fw := &fakeWindow{title: "busy"}
	w := WindowCToCpp.Wrap(WindowCppToC.Wrap(fw))

	wd.(cef.WindowCreatedHandler).OnWindowCreated(w)
	if d.created != 1 {
		t.Errorf("OnWindowCreated calls = %d", d.created)
	}
	if wd.(cef.CanCloseHandler).CanClose(w) {
		t.Error("CanClose() = true for a busy window")
	}
	fw.title = "idle"
	if !wd.(cef.CanCloseHandler).CanClose(w) {
		t.Error("CanClose() = false for an idle window")
	}

	view := ViewCToCpp.Wrap(ViewCppToC.Wrap(&fakeView{id: 4}))
	if got := wd.(cef.PreferredSizeProvider).GetPreferredSize(view); got != (cef.Size{Width: 40, Height: 50}) {
		t.Errorf("GetPreferredSize() = %+v", got)
	}
	if got := wd.(cef.MinimumSizeProvider).GetMinimumSize(view); got != (cef.Size{}) {
		t.Errorf("GetMinimumSize() = %+v, want zero", got)
	}

	// Routed through the base binding the delegate is still the same object.
	if got := ViewDelegateCppToC.Unwrap(ViewDelegateCToCpp.Unwrap(wd)); got != cef.ViewDelegate(d) {
		t.Errorf("ViewDelegate round trip = %v", got)
	}
}

func TestWindowDelegateDefaults(t *testing.T) {
	useHeap(t)
	wd := WindowDelegateCToCpp.Wrap(WindowDelegateCppToC.Wrap(&emptyDelegate{}))
	w := WindowCToCpp.Wrap(WindowCppToC.Wrap(&fakeWindow{}))

	if !wd.(cef.CanCloseHandler).CanClose(w) {
		t.Error("CanClose() without a handler = false, want true")
	}
	if wd.(cef.FramelessProvider).IsFrameless(w) {
		t.Error("IsFrameless() without a handler = true")
	}
}

func TestConcurrentCalls(t *testing.T) {
	arena := useHeap(t)
	fb := newFakeBrowser(11)
	b := engineBrowser(fb)

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if b.Identifier() != 11 {
					errs <- "identifier"
					return
				}
				if names := b.FrameNames(); len(names) != 2 {
					errs <- "frame names"
					return
				}
				if b.MainFrame().URL() != "https://example.com/" {
					errs <- "url"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Errorf("concurrent %s mismatch", e)
	}

	requireNoLiveAllocations(t, arena)
}

func TestEveryTypeIsBound(t *testing.T) {
	bound := make(map[wrapper.Type]map[wrapper.Direction]bool)
	for _, b := range wrapper.Bindings() {
		if bound[b.Type] == nil {
			bound[b.Type] = make(map[wrapper.Direction]bool)
		}
		bound[b.Type][b.Direction] = true
	}

	for tag := wrapper.TypeApp; tag <= wrapper.TypeWindowDelegate; tag++ {
		if !bound[tag][wrapper.CppToCDirection] {
			t.Errorf("%s has no cpptoc binding", tag)
		}
		if !bound[tag][wrapper.CToCppDirection] {
			t.Errorf("%s has no ctocpp binding", tag)
		}
	}
}
