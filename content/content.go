package content

import "time"

// CommandLine is a process command line owned by the engine.
type CommandLine interface {
	HasSwitch(name string) bool
	SwitchValue(name string) string
	AppendSwitch(name string)
	AppendSwitchWithValue(name, value string)
	Argv() []string
}

// BrowserContext is a profile: cookies, cache and storage.
type BrowserContext interface {
	IsOffTheRecord() bool
	Path() string
	// OriginalContext returns the regular profile for an off-the-record
	// one, and the context itself otherwise.
	OriginalContext() BrowserContext
}

// RenderProcessHost is the browser-side handle of a render process.
type RenderProcessHost interface {
	ID() int
	BrowserContext() BrowserContext
}

// SiteInstance groups frames of one site inside a browsing instance.
type SiteInstance interface {
	ID() int
	SiteURL() string
	HasProcess() bool
	Process() RenderProcessHost
}

// NavigationHandle tracks one navigation from start to commit.
type NavigationHandle interface {
	URL() string
	FrameID() int64
	FrameName() string
	IsInMainFrame() bool
	IsRedirect() bool
	// Transition is the engine's page transition value.
	Transition() int
}

// Message is a named process message with its arguments. Arguments are
// strings or int32 values.
type Message struct {
	Name string
	Args []any
}

// WebContents is the engine's page: navigation, frames and messaging.
type WebContents interface {
	BrowserContext() BrowserContext
	CanGoBack() bool
	CanGoForward() bool
	LoadURL(frameID int64, url string)
	// Send delivers a message to the page's render process.
	Send(msg Message) bool
}

// DialogType is the kind of script dialog the engine wants to run.
type DialogType int

const (
	DialogAlert DialogType = iota
	DialogConfirm
	DialogPrompt
)

// DialogCallback completes a script dialog. It must be run exactly once.
type DialogCallback func(success bool, userInput string)

// DropData describes data dragged onto a page.
type DropData struct {
	URL       string
	Fragment  string
	FileNames []string
}

// DragOperation is a bit set of allowed drag operations.
type DragOperation uint32

// AuthCallback completes an authentication challenge. Cancelled challenges
// get ok false.
type AuthCallback func(username, password string, ok bool)

// WebContentsObserver receives page events from the engine.
type WebContentsObserver interface {
	DidStartLoading()
	DidStopLoading()
	DidStartNavigation(nav NavigationHandle)
	DidFinishLoad(frameID int64, url string, httpStatusCode int)
	DidFailLoad(frameID int64, url string, errorCode int, description string)
	DraggableRegionsChanged(regions []DraggableRegion)
	RenderProcessGone(status TerminationStatus)
}

// TerminationStatus says why a render process went away.
type TerminationStatus int

const (
	TerminationNormal TerminationStatus = iota
	TerminationAbnormal
	TerminationKilled
	TerminationCrashed
)

// CertificateRequestResult is the outcome of a certificate error prompt.
type CertificateRequestResult int

const (
	CertificateContinue CertificateRequestResult = iota
	CertificateDeny
	CertificateCancel
)

// CertificateCallback receives the decision for a certificate error. It
// is run exactly once.
type CertificateCallback func(result CertificateRequestResult)

// URLRewriter rewrites a URL before navigation. It reports whether it
// handled the URL.
type URLRewriter func(url string) (string, bool)

// BrowserURLHandler collects URL rewriters.
type BrowserURLHandler interface {
	AddHandlerPair(handler, reverse URLRewriter)
}

// BrowserClient is the browser-process embedder interface the engine calls.
type BrowserClient interface {
	RenderProcessWillLaunch(host RenderProcessHost)
	ShouldUseProcessPerSite(ctx BrowserContext, effectiveURL string) bool
	IsHandledURL(url string) bool
	SiteInstanceGotProcess(site SiteInstance)
	SiteInstanceDeleting(site SiteInstance)
	AppendExtraCommandLineSwitches(cmd CommandLine, childProcessID int)
	AllowCertificateError(wc WebContents, certError int, requestURL string, mainFrame, overridable, strictEnforcement bool, callback CertificateCallback)
	CanCreateWindow(openerURL, targetURL string, userGesture bool) bool
	GetDefaultDownloadName() string
	BrowserURLHandlerCreated(handler BrowserURLHandler)
}

// RenderWidgetHost is the browser-side end of a render widget.
type RenderWidgetHost interface {
	ID() int
	WasShown()
	WasHidden()
	WasResized()
	SetFocus(focused bool)
	ScreenInfoChanged()
	RequestRepaint(rect Rect)
	SendBeginFrame(frameTime time.Time, interval time.Duration)
	ForwardKeyboardEvent(ev KeyEvent)
	ForwardMouseEvent(ev MouseEvent)
	ForwardWheelEvent(ev WheelEvent)
}

// RenderWidgetHostView presents a render widget. Off-screen views paint
// into buffers handed to the embedder instead of a native window.
type RenderWidgetHostView interface {
	RenderWidgetHost() RenderWidgetHost
	SetSize(size Size)
	SetBounds(rect Rect)
	ViewBounds() Rect
	Show()
	Hide()
	IsShowing() bool
	Focus()
	HasFocus() bool
	SetBackgroundColor(color uint32)
	UpdateCursor(cursor CursorType)
	SetIsLoading(loading bool)
	SetTooltipText(text string)
	ImeCompositionRangeChanged(rng Range, characterBounds []Rect)
	SetNeedsBeginFrames(enabled bool)
	RenderProcessGone(status TerminationStatus, errorCode int)
	Destroy()
}
