package capi

// App is cef_app_t.
type App struct {
	Base Base

	OnBeforeCommandLineProcessing func(self *App, processType *String, commandLine *CommandLine)
	OnRegisterCustomSchemes       func(self *App, registrar *SchemeRegistrar)
	GetBrowserProcessHandler      func(self *App) *BrowserProcessHandler
	GetRenderProcessHandler       func(self *App) *RenderProcessHandler
}

// BrowserProcessHandler is cef_browser_process_handler_t.
type BrowserProcessHandler struct {
	Base Base

	OnContextInitialized         func(self *BrowserProcessHandler)
	OnBeforeChildProcessLaunch   func(self *BrowserProcessHandler, commandLine *CommandLine)
	OnRenderProcessThreadCreated func(self *BrowserProcessHandler, extraInfo *ListValue)
}

// RenderProcessHandler is cef_render_process_handler_t.
type RenderProcessHandler struct {
	Base Base

	OnRenderThreadCreated    func(self *RenderProcessHandler, extraInfo *ListValue)
	OnWebKitInitialized      func(self *RenderProcessHandler)
	OnBrowserCreated         func(self *RenderProcessHandler, browser *Browser)
	OnBrowserDestroyed       func(self *RenderProcessHandler, browser *Browser)
	GetLoadHandler           func(self *RenderProcessHandler) *LoadHandler
	OnBeforeNavigation       func(self *RenderProcessHandler, browser *Browser, frame *Frame, request *Request, navigationType int32, isRedirect int32) int32
	OnContextCreated         func(self *RenderProcessHandler, browser *Browser, frame *Frame, context *V8Context)
	OnContextReleased        func(self *RenderProcessHandler, browser *Browser, frame *Frame, context *V8Context)
	OnUncaughtException      func(self *RenderProcessHandler, browser *Browser, frame *Frame, context *V8Context, exception *V8Exception, stackTrace *V8StackTrace)
	OnFocusedNodeChanged     func(self *RenderProcessHandler, browser *Browser, frame *Frame, node *DOMNode)
	OnProcessMessageReceived func(self *RenderProcessHandler, browser *Browser, sourceProcess int32, message *ProcessMessage) int32
}

// Client is cef_client_t.
type Client struct {
	Base Base

	GetDragHandler           func(self *Client) *DragHandler
	GetJSDialogHandler       func(self *Client) *JSDialogHandler
	GetLoadHandler           func(self *Client) *LoadHandler
	GetRenderHandler         func(self *Client) *RenderHandler
	GetRequestHandler        func(self *Client) *RequestHandler
	OnProcessMessageReceived func(self *Client, browser *Browser, sourceProcess int32, message *ProcessMessage) int32
}

// LoadHandler is cef_load_handler_t.
type LoadHandler struct {
	Base Base

	OnLoadingStateChange func(self *LoadHandler, browser *Browser, isLoading, canGoBack, canGoForward int32)
	OnLoadStart          func(self *LoadHandler, browser *Browser, frame *Frame, transitionType int32)
	OnLoadEnd            func(self *LoadHandler, browser *Browser, frame *Frame, httpStatusCode int32)
	OnLoadError          func(self *LoadHandler, browser *Browser, frame *Frame, errorCode int32, errorText, failedURL *String)
}

// DragHandler is cef_drag_handler_t.
type DragHandler struct {
	Base Base

	OnDragEnter               func(self *DragHandler, browser *Browser, dragData *DragData, mask int32) int32
	OnDraggableRegionsChanged func(self *DragHandler, browser *Browser, regionsCount uint32, regions uint32)
}

// JSDialogHandler is cef_jsdialog_handler_t.
type JSDialogHandler struct {
	Base Base

	OnJSDialog           func(self *JSDialogHandler, browser *Browser, originURL *String, dialogType int32, messageText, defaultPromptText *String, callback *JSDialogCallback, suppressMessage *int32) int32
	OnBeforeUnloadDialog func(self *JSDialogHandler, browser *Browser, messageText *String, isReload int32, callback *JSDialogCallback) int32
	OnResetDialogState   func(self *JSDialogHandler, browser *Browser)
	OnDialogClosed       func(self *JSDialogHandler, browser *Browser)
}

// RequestHandler is cef_request_handler_t.
type RequestHandler struct {
	Base Base

	OnCertificateError        func(self *RequestHandler, browser *Browser, certError int32, requestURL *String, callback *RequestCallback) int32
	GetAuthCredentials        func(self *RequestHandler, browser *Browser, frame *Frame, isProxy int32, host *String, port int32, realm, scheme *String, callback *AuthCallback) int32
	OnRenderProcessTerminated func(self *RequestHandler, browser *Browser, status int32)
}

// RenderHandler is cef_render_handler_t.
type RenderHandler struct {
	Base Base

	GetViewRect                  func(self *RenderHandler, browser *Browser, rect *Rect) int32
	GetScreenInfo                func(self *RenderHandler, browser *Browser, info *ScreenInfo) int32
	GetScreenPoint               func(self *RenderHandler, browser *Browser, viewX, viewY int32, screenX, screenY *int32) int32
	OnPopupShow                  func(self *RenderHandler, browser *Browser, show int32)
	OnPopupSize                  func(self *RenderHandler, browser *Browser, rect *Rect)
	OnPaint                      func(self *RenderHandler, browser *Browser, elementType int32, dirtyRectsCount uint32, dirtyRects uint32, buffer uint32, width, height int32)
	OnCursorChange               func(self *RenderHandler, browser *Browser, cursorType int32)
	OnScrollOffsetChanged        func(self *RenderHandler, browser *Browser, x, y float64)
	OnImeCompositionRangeChanged func(self *RenderHandler, browser *Browser, selectedRange *Range, characterBoundsCount uint32, characterBounds uint32)
}
