package browser

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/wippyai/cef-bridge/bridge"
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/content"
	"github.com/wippyai/cef-bridge/crashreport"
	"github.com/wippyai/cef-bridge/engine"
	"github.com/wippyai/cef-bridge/errors"
	"github.com/wippyai/cef-bridge/transcoder"
	"go.uber.org/zap"
)

var current atomic.Pointer[Context]

// Current returns the active context, or nil outside Init and Shutdown.
func Current() *Context {
	return current.Load()
}

// Context is the browser-process state created by Init.
type Context struct {
	settings    Settings
	allowPopups bool
	cmd         content.CommandLine

	app      cef.App
	handler  cef.BrowserProcessHandler
	schemes  *SchemeRegistry
	client   *ContentBrowserClient
	reporter *crashreport.Reporter

	heap     *engine.Heap
	prevHeap *transcoder.Heap

	mu     sync.RWMutex
	hosts  map[int32]*Host
	nextID int32
	closed bool
}

// Init creates the process context. Only one context may exist at a time;
// a second Init before Shutdown fails with KindAlreadyInitialized.
func Init(cfg *Config) (*Context, error) {
	if cfg == nil || cfg.CommandLine == nil {
		if cfg != nil {
			releaseApp(cfg.App)
		}
		return nil, errors.InvalidInput(errors.PhaseContext, "config with a command line is required")
	}

	c := &Context{
		settings:    cfg.Settings,
		allowPopups: cfg.AllowPopups,
		cmd:         cfg.CommandLine,
		schemes:     newSchemeRegistry(),
		hosts:       make(map[int32]*Host),
	}
	if !current.CompareAndSwap(nil, c) {
		releaseApp(cfg.App)
		return nil, errors.AlreadyInitialized(errors.PhaseContext, "browser context")
	}

	if err := c.init(cfg); err != nil {
		if c.app == nil {
			releaseApp(cfg.App)
		}
		c.restoreHeap()
		current.CompareAndSwap(c, nil)
		return nil, err
	}

	Logger().Info("browser context initialized",
		zap.Int("custom_schemes", len(c.schemes.Schemes())),
		zap.Bool("crash_reporting", c.reporter.Enabled()))

	if h, ok := c.handler.(cef.ContextInitializedHandler); ok {
		h.OnContextInitialized()
	}
	return c, nil
}

// releaseApp drops the App reference Init was handed but never adopted.
func releaseApp(app *capi.App) {
	if app != nil {
		app.Base.Release()
	}
}

func (c *Context) init(cfg *Config) error {
	if cfg.Heap != nil {
		h, err := engine.NewHeapWithConfig(context.Background(), cfg.Heap)
		if err != nil {
			return err
		}
		c.heap = h
		c.prevHeap = transcoder.SetDefault(h.Heap)
	}

	var crashCfg *crashreport.Config
	if cfg.CrashConfigPath != "" {
		loaded, err := crashreport.LoadConfig(cfg.CrashConfigPath)
		switch {
		case err == nil:
			crashCfg = loaded
		case errors.IsKind(err, errors.KindNotFound):
			Logger().Debug("no crash reporter config", zap.String("path", cfg.CrashConfigPath))
		default:
			return err
		}
	}
	c.reporter = crashreport.New(crashCfg, cfg.CrashStore)
	c.reporter.BasicStartupComplete(c.cmd)

	c.app = bridge.AppCToCpp.Wrap(cfg.App)

	c.settings.apply(c.cmd)
	if p, ok := c.app.(cef.CommandLineProcessor); ok {
		p.OnBeforeCommandLineProcessing("", newCommandLine(c.cmd, false))
	}
	c.reporter.PreSandboxStartup(c.cmd, "")

	if r, ok := c.app.(cef.CustomSchemeRegisterer); ok {
		r.OnRegisterCustomSchemes(c.schemes)
	}
	c.schemes.seal()

	c.client = newContentBrowserClient(c)
	for _, s := range c.schemes.Schemes() {
		c.client.RegisterCustomScheme(s.Name)
	}

	if p, ok := c.app.(cef.BrowserProcessHandlerProvider); ok {
		c.handler = p.GetBrowserProcessHandler()
	}
	return nil
}

// Shutdown closes every browser and releases the context. The context is
// unusable afterwards.
func (c *Context) Shutdown() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errors.Closed(errors.PhaseContext, "browser context")
	}
	c.closed = true
	hosts := make([]*Host, 0, len(c.hosts))
	for _, h := range c.hosts {
		hosts = append(hosts, h)
	}
	c.mu.Unlock()

	for _, h := range hosts {
		h.Close()
	}

	c.handler = nil
	c.app = nil
	current.CompareAndSwap(c, nil)

	Logger().Info("browser context shut down", zap.Int("browsers", len(hosts)))
	return c.restoreHeap()
}

func (c *Context) restoreHeap() error {
	if c.heap == nil {
		return nil
	}
	transcoder.SetDefault(c.prevHeap)
	err := c.heap.Close(context.Background())
	c.heap = nil
	return err
}

// App returns the client application, or nil.
func (c *Context) App() cef.App { return c.app }

// BrowserProcessHandler returns the App's browser process handler, or nil.
func (c *Context) BrowserProcessHandler() cef.BrowserProcessHandler { return c.handler }

// Schemes returns the custom scheme registry.
func (c *Context) Schemes() *SchemeRegistry { return c.schemes }

// BrowserClient returns the context's ContentBrowserClient.
func (c *Context) BrowserClient() *ContentBrowserClient { return c.client }

// CommandLine returns the browser process command line.
func (c *Context) CommandLine() content.CommandLine { return c.cmd }

// Settings returns the settings Init was called with.
func (c *Context) Settings() Settings { return c.settings }

// CrashReporter returns the process crash reporter.
func (c *Context) CrashReporter() *crashreport.Reporter { return c.reporter }

// CrashReportingEnabled reports whether crash reporting is on.
func (c *Context) CrashReportingEnabled() bool { return c.reporter.Enabled() }

// SetCrashKeyValue sets a crash key registered in the crash config.
func (c *Context) SetCrashKeyValue(key, value string) bool {
	return c.reporter.SetCrashKeyValue(key, value)
}

// CrashReportingEnabled reports whether the current context has crash
// reporting on.
func CrashReportingEnabled() bool {
	c := Current()
	return c != nil && c.CrashReportingEnabled()
}

// SetCrashKeyValue sets a crash key on the current context.
func SetCrashKeyValue(key, value string) bool {
	c := Current()
	return c != nil && c.SetCrashKeyValue(key, value)
}

// CreateBrowser creates a Host for wc. The context takes ownership of the
// reference that comes with client, which may be nil.
func (c *Context) CreateBrowser(client *capi.Client, wc content.WebContents) (*Host, error) {
	if wc == nil {
		return nil, errors.InvalidInput(errors.PhaseContext, "web contents is required")
	}
	cl := bridge.ClientCToCpp.Wrap(client)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, errors.Closed(errors.PhaseContext, "browser context")
	}
	c.nextID++
	h := newHost(c, c.nextID, cl, wc)
	c.hosts[h.id] = h

	Logger().Debug("browser created", zap.Int32("id", h.id))
	return h, nil
}

// Browser returns the host with the given identifier.
func (c *Context) Browser(id int32) (*Host, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.hosts[id]
	return h, ok
}

// Browsers returns the open hosts ordered by identifier.
func (c *Context) Browsers() []*Host {
	c.mu.RLock()
	out := make([]*Host, 0, len(c.hosts))
	for _, h := range c.hosts {
		out = append(out, h)
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// browserForWebContents finds the host presenting wc.
func (c *Context) browserForWebContents(wc content.WebContents) *Host {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, h := range c.hosts {
		if h.wc == wc {
			return h
		}
	}
	return nil
}

func (c *Context) removeBrowser(id int32) {
	c.mu.Lock()
	delete(c.hosts, id)
	c.mu.Unlock()
}
