package renderer

import (
	"strconv"
	"sync"

	"github.com/wippyai/cef-bridge/bridge"
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/content"
	"github.com/wippyai/cef-bridge/crashreport"
	"github.com/wippyai/cef-bridge/errors"
	"go.uber.org/zap"
)

// uncaughtStackSizeSwitch turns on OnUncaughtException and sets how many
// stack frames it reports.
const uncaughtStackSizeSwitch = "uncaught-exception-stack-size"

// Config holds configuration for New.
type Config struct {
	// App is the client application. New takes ownership of the reference
	// that comes with it. May be nil.
	App *capi.App

	// CommandLine is the render process command line. Required.
	CommandLine content.CommandLine

	// CrashConfig turns on crash reporting in this process when set.
	CrashConfig *crashreport.Config
}

// Process is the render-process side of the client application.
type Process struct {
	app       cef.App
	handler   cef.RenderProcessHandler
	cmd       content.CommandLine
	reporter  *crashreport.Reporter
	stackSize int

	mu       sync.Mutex
	started  bool
	webkit   bool
	browsers map[int32]cef.Browser
	contexts map[int64]*ScriptContext
	closed   bool
}

// New creates the render process adapter.
func New(cfg *Config) (*Process, error) {
	if cfg == nil || cfg.CommandLine == nil {
		if cfg != nil && cfg.App != nil {
			cfg.App.Base.Release()
		}
		return nil, errors.InvalidInput(errors.PhaseContext, "config with a command line is required")
	}

	p := &Process{
		app:      bridge.AppCToCpp.Wrap(cfg.App),
		cmd:      cfg.CommandLine,
		reporter: crashreport.New(cfg.CrashConfig, nil),
		browsers: make(map[int32]cef.Browser),
		contexts: make(map[int64]*ScriptContext),
	}
	p.reporter.PreSandboxStartup(p.cmd, "renderer")

	if v := p.cmd.SwitchValue(uncaughtStackSizeSwitch); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			Logger().Warn("invalid uncaught exception stack size", zap.String("value", v))
		} else {
			p.stackSize = n
		}
	}

	if prov, ok := p.app.(cef.RenderProcessHandlerProvider); ok {
		p.handler = prov.GetRenderProcessHandler()
	}

	Logger().Info("render process started",
		zap.Bool("handler", p.handler != nil),
		zap.Int("uncaught_stack_size", p.stackSize))
	return p, nil
}

// Handler returns the App's render process handler, or nil.
func (p *Process) Handler() cef.RenderProcessHandler { return p.handler }

// CrashReporter returns the process crash reporter.
func (p *Process) CrashReporter() *crashreport.Reporter { return p.reporter }

// UncaughtExceptionStackSize returns the frame limit for uncaught
// exception reports. Zero means they are not reported.
func (p *Process) UncaughtExceptionStackSize() int { return p.stackSize }

// RenderThreadStarted hands the extra info collected in the browser
// process to the handler, as a read-only list. Only the first call counts.
func (p *Process) RenderThreadStarted(extraInfo []any) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	if h, ok := p.handler.(cef.RenderThreadCreatedHandler); ok {
		info := cef.NewList(extraInfo...)
		info.SetReadOnly()
		h.OnRenderThreadCreated(info)
	}
}

// WebKitInitialized tells the handler the engine is ready. Only the first
// call counts.
func (p *Process) WebKitInitialized() {
	p.mu.Lock()
	if p.webkit {
		p.mu.Unlock()
		return
	}
	p.webkit = true
	p.mu.Unlock()

	if h, ok := p.handler.(cef.WebKitInitializedHandler); ok {
		h.OnWebKitInitialized()
	}
}

// BrowserCreated records a browser shown in this process.
func (p *Process) BrowserCreated(b cef.Browser) {
	p.mu.Lock()
	p.browsers[b.Identifier()] = b
	p.mu.Unlock()

	if h, ok := p.handler.(cef.BrowserCreatedHandler); ok {
		h.OnBrowserCreated(b)
	}
}

// BrowserDestroyed releases the browser's script contexts and forgets it.
func (p *Process) BrowserDestroyed(b cef.Browser) {
	id := b.Identifier()
	p.mu.Lock()
	delete(p.browsers, id)
	var frames []int64
	for frameID, c := range p.contexts {
		if c.browser.Identifier() == id {
			frames = append(frames, frameID)
		}
	}
	p.mu.Unlock()

	for _, frameID := range frames {
		p.ReleaseContext(frameID)
	}
	if h, ok := p.handler.(cef.BrowserDestroyedHandler); ok {
		h.OnBrowserDestroyed(b)
	}
}

// Browser returns a browser shown in this process.
func (p *Process) Browser(id int32) (cef.Browser, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.browsers[id]
	return b, ok
}

// BeforeNavigation asks the handler about a navigation. It returns true
// to cancel it.
func (p *Process) BeforeNavigation(b cef.Browser, f cef.Frame, req cef.Request, navigationType cef.NavigationType, isRedirect bool) bool {
	h, ok := p.handler.(cef.BeforeNavigationHandler)
	if !ok {
		return false
	}
	cancel := h.OnBeforeNavigation(b, f, req, navigationType, isRedirect)
	if cancel {
		Logger().Debug("navigation canceled",
			zap.Int32("browser", b.Identifier()),
			zap.String("url", req.URL()))
	}
	return cancel
}

// CreateContext creates the script context of frame f. A context the frame
// already had is released first.
func (p *Process) CreateContext(b cef.Browser, f cef.Frame) (*ScriptContext, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, errors.Closed(errors.PhaseContext, "render process")
	}
	_, exists := p.contexts[f.Identifier()]
	p.mu.Unlock()
	if exists {
		p.ReleaseContext(f.Identifier())
	}

	c, err := newScriptContext(b, f)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.contexts[f.Identifier()] = c
	p.mu.Unlock()

	if h, ok := p.handler.(cef.ContextCreatedHandler); ok {
		h.OnContextCreated(b, f, c)
	}
	return c, nil
}

// Context returns the script context of a frame.
func (p *Process) Context(frameID int64) (*ScriptContext, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.contexts[frameID]
	return c, ok
}

// ReleaseContext tells the handler a frame's context is going away, then
// closes it.
func (p *Process) ReleaseContext(frameID int64) {
	p.mu.Lock()
	c, ok := p.contexts[frameID]
	delete(p.contexts, frameID)
	p.mu.Unlock()
	if !ok {
		return
	}

	if h, ok := p.handler.(cef.ContextReleasedHandler); ok {
		h.OnContextReleased(c.browser, c.frame, c)
	}
	c.release()
}

// RunScript runs page script in a frame's context. An exception is
// reported to OnUncaughtException when uncaught exception reporting is on.
func (p *Process) RunScript(frameID int64, code string) (string, bool) {
	c, ok := p.Context(frameID)
	if !ok {
		Logger().Warn("script for frame without context", zap.Int64("frame", frameID))
		return "", false
	}

	res, trace, err := c.run(code)
	switch {
	case err != nil:
		Logger().Warn("script failed", zap.Int64("frame", frameID), zap.Error(err))
		return "", false
	case res.OK:
		return res.Value, true
	}

	h, ok := p.handler.(cef.UncaughtExceptionHandler)
	if !ok || p.stackSize == 0 {
		return "", false
	}
	h.OnUncaughtException(c.browser, c.frame, c, c.exception(code, res, trace), trace.limit(p.stackSize))
	return "", false
}

// FocusedNodeChanged reports the newly focused node. frame and node are
// nil when focus left the document.
func (p *Process) FocusedNodeChanged(b cef.Browser, f cef.Frame, node *Node) {
	h, ok := p.handler.(cef.FocusedNodeChangedHandler)
	if !ok {
		return
	}
	var n cef.DOMNode
	if node != nil {
		n = node
	}
	h.OnFocusedNodeChanged(b, f, n)
}

// ProcessMessageReceived delivers a message from the browser process. It
// reports whether the handler took it.
func (p *Process) ProcessMessageReceived(b cef.Browser, msg content.Message) bool {
	h, ok := p.handler.(cef.ProcessMessageReceiver)
	if !ok {
		return false
	}
	m := cef.NewProcessMessage(msg.Name, msg.Args...)
	m.Arguments().SetReadOnly()
	return h.OnProcessMessageReceived(b, cef.PIDBrowser, m)
}

func (p *Process) loadHandler() cef.LoadHandler {
	if prov, ok := p.handler.(cef.LoadHandlerProvider); ok {
		return prov.GetLoadHandler()
	}
	return nil
}

// LoadingStateChange forwards to the handler's LoadHandler.
func (p *Process) LoadingStateChange(b cef.Browser, isLoading, canGoBack, canGoForward bool) {
	if lh, ok := p.loadHandler().(cef.LoadingStateChangeHandler); ok {
		lh.OnLoadingStateChange(b, isLoading, canGoBack, canGoForward)
	}
}

func (p *Process) LoadStart(b cef.Browser, f cef.Frame, transitionType cef.TransitionType) {
	if lh, ok := p.loadHandler().(cef.LoadStartHandler); ok {
		lh.OnLoadStart(b, f, transitionType)
	}
}

func (p *Process) LoadEnd(b cef.Browser, f cef.Frame, httpStatusCode int) {
	if lh, ok := p.loadHandler().(cef.LoadEndHandler); ok {
		lh.OnLoadEnd(b, f, httpStatusCode)
	}
}

func (p *Process) LoadError(b cef.Browser, f cef.Frame, errorCode cef.ErrorCode, errorText, failedURL string) {
	if lh, ok := p.loadHandler().(cef.LoadErrorHandler); ok {
		lh.OnLoadError(b, f, errorCode, errorText, failedURL)
	}
}

// Close releases every script context. The process cannot create new ones
// afterwards.
func (p *Process) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	frames := make([]int64, 0, len(p.contexts))
	for id := range p.contexts {
		frames = append(frames, id)
	}
	p.mu.Unlock()

	for _, id := range frames {
		p.ReleaseContext(id)
	}
	Logger().Debug("render process closed", zap.Int("contexts", len(frames)))
}
