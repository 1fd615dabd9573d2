package cef

// App is the client application. It may implement CommandLineProcessor,
// CustomSchemeRegisterer, BrowserProcessHandlerProvider and
// RenderProcessHandlerProvider.
type App interface{}

type CommandLineProcessor interface {
	OnBeforeCommandLineProcessing(processType string, commandLine CommandLine)
}

type CustomSchemeRegisterer interface {
	OnRegisterCustomSchemes(registrar SchemeRegistrar)
}

type BrowserProcessHandlerProvider interface {
	GetBrowserProcessHandler() BrowserProcessHandler
}

type RenderProcessHandlerProvider interface {
	GetRenderProcessHandler() RenderProcessHandler
}

// BrowserProcessHandler receives browser-process lifecycle events.
type BrowserProcessHandler interface{}

type ContextInitializedHandler interface {
	OnContextInitialized()
}

type ChildProcessLaunchHandler interface {
	OnBeforeChildProcessLaunch(commandLine CommandLine)
}

type RenderProcessThreadCreatedHandler interface {
	OnRenderProcessThreadCreated(extraInfo ListValue)
}

// RenderProcessHandler receives render-process events.
type RenderProcessHandler interface{}

type RenderThreadCreatedHandler interface {
	OnRenderThreadCreated(extraInfo ListValue)
}

type WebKitInitializedHandler interface {
	OnWebKitInitialized()
}

type BrowserCreatedHandler interface {
	OnBrowserCreated(browser Browser)
}

type BrowserDestroyedHandler interface {
	OnBrowserDestroyed(browser Browser)
}

type LoadHandlerProvider interface {
	GetLoadHandler() LoadHandler
}

type BeforeNavigationHandler interface {
	OnBeforeNavigation(browser Browser, frame Frame, request Request, navigationType NavigationType, isRedirect bool) bool
}

type ContextCreatedHandler interface {
	OnContextCreated(browser Browser, frame Frame, context V8Context)
}

type ContextReleasedHandler interface {
	OnContextReleased(browser Browser, frame Frame, context V8Context)
}

type UncaughtExceptionHandler interface {
	OnUncaughtException(browser Browser, frame Frame, context V8Context, exception V8Exception, stackTrace V8StackTrace)
}

// FocusedNodeChangedHandler gets a nil frame and node when focus leaves
// the document.
type FocusedNodeChangedHandler interface {
	OnFocusedNodeChanged(browser Browser, frame Frame, node DOMNode)
}

// ProcessMessageReceiver is shared by Client and RenderProcessHandler.
type ProcessMessageReceiver interface {
	OnProcessMessageReceived(browser Browser, sourceProcess ProcessID, message ProcessMessage) bool
}

// Client hands out the per-browser handlers.
type Client interface{}

type DragHandlerProvider interface {
	GetDragHandler() DragHandler
}

type JSDialogHandlerProvider interface {
	GetJSDialogHandler() JSDialogHandler
}

type RenderHandlerProvider interface {
	GetRenderHandler() RenderHandler
}

type RequestHandlerProvider interface {
	GetRequestHandler() RequestHandler
}

// LoadHandler receives load notifications.
type LoadHandler interface{}

type LoadingStateChangeHandler interface {
	OnLoadingStateChange(browser Browser, isLoading, canGoBack, canGoForward bool)
}

type LoadStartHandler interface {
	OnLoadStart(browser Browser, frame Frame, transitionType TransitionType)
}

type LoadEndHandler interface {
	OnLoadEnd(browser Browser, frame Frame, httpStatusCode int)
}

type LoadErrorHandler interface {
	OnLoadError(browser Browser, frame Frame, errorCode ErrorCode, errorText, failedURL string)
}

// DragHandler receives drag notifications.
type DragHandler interface{}

type DragEnterHandler interface {
	OnDragEnter(browser Browser, dragData DragData, mask DragOperationsMask) bool
}

type DraggableRegionsChangedHandler interface {
	OnDraggableRegionsChanged(browser Browser, regions []DraggableRegion)
}

// JSDialogHandler runs script dialogs.
type JSDialogHandler interface{}

type JSDialogRunner interface {
	OnJSDialog(browser Browser, originURL string, dialogType JSDialogType, messageText, defaultPromptText string, callback JSDialogCallback, suppressMessage *bool) bool
}

type BeforeUnloadDialogRunner interface {
	OnBeforeUnloadDialog(browser Browser, messageText string, isReload bool, callback JSDialogCallback) bool
}

type DialogStateResetter interface {
	OnResetDialogState(browser Browser)
}

type DialogClosedHandler interface {
	OnDialogClosed(browser Browser)
}

// RequestHandler decides on certificate errors, credentials and crashes.
type RequestHandler interface{}

type CertificateErrorHandler interface {
	OnCertificateError(browser Browser, certError ErrorCode, requestURL string, callback RequestCallback) bool
}

type AuthCredentialsProvider interface {
	GetAuthCredentials(browser Browser, frame Frame, isProxy bool, host string, port int, realm, scheme string, callback AuthCallback) bool
}

type RenderProcessTerminatedHandler interface {
	OnRenderProcessTerminated(browser Browser, status TerminationStatus)
}

// RenderHandler receives off-screen rendering output.
type RenderHandler interface{}

type ViewRectProvider interface {
	GetViewRect(browser Browser, rect *Rect) bool
}

type ScreenInfoProvider interface {
	GetScreenInfo(browser Browser, info *ScreenInfo) bool
}

type ScreenPointProvider interface {
	GetScreenPoint(browser Browser, viewX, viewY int, screenX, screenY *int) bool
}

type PopupShowHandler interface {
	OnPopupShow(browser Browser, show bool)
}

type PopupSizeHandler interface {
	OnPopupSize(browser Browser, rect Rect)
}

// PaintHandler gets a BGRA buffer of width*height*4 bytes. The buffer is
// only valid during the call.
type PaintHandler interface {
	OnPaint(browser Browser, elementType PaintElementType, dirtyRects []Rect, buffer []byte, width, height int)
}

type CursorChangeHandler interface {
	OnCursorChange(browser Browser, cursor CursorType)
}

type ScrollOffsetChangedHandler interface {
	OnScrollOffsetChanged(browser Browser, x, y float64)
}

type ImeCompositionRangeChangedHandler interface {
	OnImeCompositionRangeChanged(browser Browser, selectedRange Range, characterBounds []Rect)
}
