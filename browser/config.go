package browser

import (
	"strconv"

	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/content"
	"github.com/wippyai/cef-bridge/crashreport"
	"github.com/wippyai/cef-bridge/engine"
)

// Settings are the process-wide options. Non-empty values are written to
// the browser command line before the App sees it.
type Settings struct {
	BrowserSubprocessPath string
	Locale                string
	UserAgent             string
	ProductVersion        string
	LogFile               string
	ResourcesDirPath      string
	LocalesDirPath        string

	// RemoteDebuggingPort enables remote debugging when in 1024..65535.
	RemoteDebuggingPort int

	WindowlessRenderingEnabled bool
}

// Config holds configuration for Init.
type Config struct {
	Settings Settings

	// App is the client application. Init takes ownership of the
	// reference that comes with it. May be nil.
	App *capi.App

	// CommandLine is the browser process command line. Required.
	CommandLine content.CommandLine

	// AllowPopups is returned by CanCreateWindow.
	AllowPopups bool

	// CrashConfigPath names the crash reporter configuration file. Empty
	// or missing disables crash reporting.
	CrashConfigPath string

	// CrashStore receives crash key snapshots. May be nil.
	CrashStore crashreport.Store

	// Heap, when set, makes Init install a wazero-backed boundary heap as
	// the process default. Shutdown restores the previous one.
	Heap *engine.Config
}

func (s Settings) apply(cmd content.CommandLine) {
	setSwitch := func(name, value string) {
		if value != "" && !cmd.HasSwitch(name) {
			cmd.AppendSwitchWithValue(name, value)
		}
	}
	setSwitch("browser-subprocess-path", s.BrowserSubprocessPath)
	setSwitch("lang", s.Locale)
	setSwitch("user-agent", s.UserAgent)
	setSwitch("product-version", s.ProductVersion)
	setSwitch("log-file", s.LogFile)
	setSwitch("resources-dir-path", s.ResourcesDirPath)
	setSwitch("locales-dir-path", s.LocalesDirPath)
	if s.RemoteDebuggingPort >= 1024 && s.RemoteDebuggingPort <= 65535 {
		setSwitch("remote-debugging-port", strconv.Itoa(s.RemoteDebuggingPort))
	}
	if s.WindowlessRenderingEnabled && !cmd.HasSwitch("off-screen-rendering-enabled") {
		cmd.AppendSwitch("off-screen-rendering-enabled")
	}
}
