package browser

import (
	"net/url"
	"strings"
	"sync"

	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/content"
	"go.uber.org/zap"
)

const extensionScheme = "chrome-extension"

// childSwitches are copied from the browser command line to every child
// process that does not set them itself.
var childSwitches = []string{
	"disable-extensions",
	"disable-pack-loading",
	"lang",
	"locales-dir-path",
	"log-file",
	"log-severity",
	"product-version",
	"resources-dir-path",
	"uncaught-exception-stack-size",
	"user-agent",
}

// ContentBrowserClient answers the engine's browser-process questions.
type ContentBrowserClient struct {
	ctx *Context

	mu        sync.RWMutex
	custom    map[string]struct{}
	processes map[int]content.RenderProcessHost
	extraInfo map[int][]any
	sites     map[int]int
}

var _ content.BrowserClient = (*ContentBrowserClient)(nil)

func newContentBrowserClient(ctx *Context) *ContentBrowserClient {
	return &ContentBrowserClient{
		ctx:       ctx,
		custom:    make(map[string]struct{}),
		processes: make(map[int]content.RenderProcessHost),
		extraInfo: make(map[int][]any),
		sites:     make(map[int]int),
	}
}

// Get returns the client of the current context, or nil.
func Get() *ContentBrowserClient {
	if c := Current(); c != nil {
		return c.client
	}
	return nil
}

// RegisterCustomScheme makes the browser process handle scheme.
func (c *ContentBrowserClient) RegisterCustomScheme(scheme string) {
	c.mu.Lock()
	c.custom[strings.ToLower(scheme)] = struct{}{}
	c.mu.Unlock()
}

func (c *ContentBrowserClient) isCustomScheme(scheme string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.custom[scheme]
	return ok
}

func schemeOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Scheme)
}

// IsHandledURL reports whether the engine or a custom scheme handler can
// load rawURL.
func (c *ContentBrowserClient) IsHandledURL(rawURL string) bool {
	scheme := schemeOf(rawURL)
	if scheme == "" {
		return false
	}
	if _, ok := engineSchemes[scheme]; ok {
		return true
	}
	return c.isCustomScheme(scheme)
}

// ShouldUseProcessPerSite keeps all frames of an extension in one process.
func (c *ContentBrowserClient) ShouldUseProcessPerSite(_ content.BrowserContext, effectiveURL string) bool {
	return schemeOf(effectiveURL) == extensionScheme
}

// RenderProcessWillLaunch records the process and collects the extra info
// the App wants delivered to the new renderer.
func (c *ContentBrowserClient) RenderProcessWillLaunch(host content.RenderProcessHost) {
	info := cef.NewList()
	if h, ok := c.ctx.BrowserProcessHandler().(cef.RenderProcessThreadCreatedHandler); ok {
		h.OnRenderProcessThreadCreated(info)
	}
	info.SetReadOnly()

	c.mu.Lock()
	c.processes[host.ID()] = host
	c.extraInfo[host.ID()] = info.Values()
	c.mu.Unlock()

	Logger().Debug("render process launching", zap.Int("id", host.ID()))
}

// ExtraInfo returns the values collected for a render process at launch.
func (c *ContentBrowserClient) ExtraInfo(processID int) []any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.extraInfo[processID]
}

// RenderProcess returns a launched render process.
func (c *ContentBrowserClient) RenderProcess(id int) (content.RenderProcessHost, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.processes[id]
	return h, ok
}

// SiteInstanceGotProcess records which process hosts a site instance.
func (c *ContentBrowserClient) SiteInstanceGotProcess(site content.SiteInstance) {
	if !site.HasProcess() {
		return
	}
	pid := site.Process().ID()
	c.mu.Lock()
	c.sites[site.ID()] = pid
	c.mu.Unlock()

	Logger().Debug("site instance got process",
		zap.Int("site", site.ID()),
		zap.String("url", site.SiteURL()),
		zap.Int("process", pid))
}

// SiteInstanceDeleting forgets a site instance.
func (c *ContentBrowserClient) SiteInstanceDeleting(site content.SiteInstance) {
	c.mu.Lock()
	delete(c.sites, site.ID())
	c.mu.Unlock()
}

// SiteProcess returns the process hosting a site instance.
func (c *ContentBrowserClient) SiteProcess(siteID int) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pid, ok := c.sites[siteID]
	return pid, ok
}

// AppendExtraCommandLineSwitches prepares a child process command line:
// switches from childSwitches are copied from the browser command line,
// then the App's browser process handler gets the final say.
func (c *ContentBrowserClient) AppendExtraCommandLineSwitches(cmd content.CommandLine, childProcessID int) {
	browserCmd := c.ctx.CommandLine()
	for _, name := range childSwitches {
		if !browserCmd.HasSwitch(name) || cmd.HasSwitch(name) {
			continue
		}
		if v := browserCmd.SwitchValue(name); v != "" {
			cmd.AppendSwitchWithValue(name, v)
		} else {
			cmd.AppendSwitch(name)
		}
	}
	if c.ctx.CrashReportingEnabled() && !cmd.HasSwitch("enable-crash-reporter") {
		cmd.AppendSwitch("enable-crash-reporter")
	}

	if h, ok := c.ctx.BrowserProcessHandler().(cef.ChildProcessLaunchHandler); ok {
		h.OnBeforeChildProcessLaunch(newCommandLine(cmd, false))
	}
	Logger().Debug("child process switches",
		zap.Int("child", childProcessID),
		zap.String("type", cmd.SwitchValue("type")))
}

// AllowCertificateError asks the browser's RequestHandler. The client can
// only allow the request when the error is overridable and not under
// strict enforcement; otherwise its answer is ignored. Without a handler,
// or for sub-frame resources, the request is denied. A handler that
// declines cancels the request.
func (c *ContentBrowserClient) AllowCertificateError(wc content.WebContents, certError int, requestURL string, mainFrame, overridable, strictEnforcement bool, callback content.CertificateCallback) {
	if !mainFrame {
		callback(content.CertificateDeny)
		return
	}
	host := c.ctx.browserForWebContents(wc)
	if host == nil {
		callback(content.CertificateDeny)
		return
	}
	h, ok := host.requestHandler().(cef.CertificateErrorHandler)
	if !ok {
		callback(content.CertificateDeny)
		return
	}

	cb := newCertificateCallback(callback)
	live := overridable && !strictEnforcement
	var answer cef.RequestCallback = cb
	if !live {
		answer = &inertRequestCallback{}
	}
	if !h.OnCertificateError(host, cef.ErrorCode(certError), requestURL, answer) {
		cb.Cancel()
		return
	}
	if !live {
		cb.Continue(false)
	}
}

// inertRequestCallback is handed out when the decision is not the
// client's to make.
type inertRequestCallback struct{}

func (inertRequestCallback) Continue(bool) {}
func (inertRequestCallback) Cancel()       {}

// CanCreateWindow applies the popup policy from Config.AllowPopups.
func (c *ContentBrowserClient) CanCreateWindow(openerURL, targetURL string, userGesture bool) bool {
	if !c.ctx.allowPopups {
		Logger().Debug("popup blocked",
			zap.String("opener", openerURL),
			zap.String("target", targetURL),
			zap.Bool("user_gesture", userGesture))
	}
	return c.ctx.allowPopups
}

// GetDefaultDownloadName is the file name used when a download has none.
func (c *ContentBrowserClient) GetDefaultDownloadName() string {
	return "download"
}

// BrowserURLHandlerCreated keeps custom scheme URLs from being rewritten
// or handed to the platform.
func (c *ContentBrowserClient) BrowserURLHandlerCreated(handler content.BrowserURLHandler) {
	keep := func(rawURL string) (string, bool) {
		if c.isCustomScheme(schemeOf(rawURL)) {
			return rawURL, true
		}
		return rawURL, false
	}
	handler.AddHandlerPair(keep, keep)
}
