package bridge

import (
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/transcoder"
	"github.com/wippyai/cef-bridge/wrapper"
)

var (
	LoadHandlerCppToC = wrapper.NewCppToC[cef.LoadHandler, capi.LoadHandler]("LoadHandler", wrapper.TypeLoadHandler)
	LoadHandlerCToCpp = wrapper.NewCToCpp[cef.LoadHandler, capi.LoadHandler]("LoadHandler", wrapper.TypeLoadHandler)

	DragHandlerCppToC = wrapper.NewCppToC[cef.DragHandler, capi.DragHandler]("DragHandler", wrapper.TypeDragHandler)
	DragHandlerCToCpp = wrapper.NewCToCpp[cef.DragHandler, capi.DragHandler]("DragHandler", wrapper.TypeDragHandler)

	JSDialogHandlerCppToC = wrapper.NewCppToC[cef.JSDialogHandler, capi.JSDialogHandler]("JSDialogHandler", wrapper.TypeJSDialogHandler)
	JSDialogHandlerCToCpp = wrapper.NewCToCpp[cef.JSDialogHandler, capi.JSDialogHandler]("JSDialogHandler", wrapper.TypeJSDialogHandler)

	RequestHandlerCppToC = wrapper.NewCppToC[cef.RequestHandler, capi.RequestHandler]("RequestHandler", wrapper.TypeRequestHandler)
	RequestHandlerCToCpp = wrapper.NewCToCpp[cef.RequestHandler, capi.RequestHandler]("RequestHandler", wrapper.TypeRequestHandler)
)

func init() {
	LoadHandlerCppToC.SetBuilder(func(h cef.LoadHandler) *capi.LoadHandler {
		s := &capi.LoadHandler{}
		if _, ok := h.(cef.LoadingStateChangeHandler); ok {
			s.OnLoadingStateChange = loadHandlerOnLoadingStateChange
		}
		if _, ok := h.(cef.LoadStartHandler); ok {
			s.OnLoadStart = loadHandlerOnLoadStart
		}
		if _, ok := h.(cef.LoadEndHandler); ok {
			s.OnLoadEnd = loadHandlerOnLoadEnd
		}
		if _, ok := h.(cef.LoadErrorHandler); ok {
			s.OnLoadError = loadHandlerOnLoadError
		}
		return s
	})
	LoadHandlerCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.LoadHandler]) cef.LoadHandler {
		return &loadHandlerAdapter{CRef: ref}
	})

	DragHandlerCppToC.SetBuilder(func(h cef.DragHandler) *capi.DragHandler {
		s := &capi.DragHandler{}
		if _, ok := h.(cef.DragEnterHandler); ok {
			s.OnDragEnter = dragHandlerOnDragEnter
		}
		if _, ok := h.(cef.DraggableRegionsChangedHandler); ok {
			s.OnDraggableRegionsChanged = dragHandlerOnDraggableRegionsChanged
		}
		return s
	})
	DragHandlerCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.DragHandler]) cef.DragHandler {
		return &dragHandlerAdapter{CRef: ref}
	})

	JSDialogHandlerCppToC.SetBuilder(func(h cef.JSDialogHandler) *capi.JSDialogHandler {
		s := &capi.JSDialogHandler{}
		if _, ok := h.(cef.JSDialogRunner); ok {
			s.OnJSDialog = jsDialogHandlerOnJSDialog
		}
		if _, ok := h.(cef.BeforeUnloadDialogRunner); ok {
			s.OnBeforeUnloadDialog = jsDialogHandlerOnBeforeUnloadDialog
		}
		if _, ok := h.(cef.DialogStateResetter); ok {
			s.OnResetDialogState = jsDialogHandlerOnResetDialogState
		}
		if _, ok := h.(cef.DialogClosedHandler); ok {
			s.OnDialogClosed = jsDialogHandlerOnDialogClosed
		}
		return s
	})
	JSDialogHandlerCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.JSDialogHandler]) cef.JSDialogHandler {
		return &jsDialogHandlerAdapter{CRef: ref}
	})

	RequestHandlerCppToC.SetBuilder(func(h cef.RequestHandler) *capi.RequestHandler {
		s := &capi.RequestHandler{}
		if _, ok := h.(cef.CertificateErrorHandler); ok {
			s.OnCertificateError = requestHandlerOnCertificateError
		}
		if _, ok := h.(cef.AuthCredentialsProvider); ok {
			s.GetAuthCredentials = requestHandlerGetAuthCredentials
		}
		if _, ok := h.(cef.RenderProcessTerminatedHandler); ok {
			s.OnRenderProcessTerminated = requestHandlerOnRenderProcessTerminated
		}
		return s
	})
	RequestHandlerCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.RequestHandler]) cef.RequestHandler {
		return &requestHandlerAdapter{CRef: ref}
	})
}

func loadHandlerOnLoadingStateChange(self *capi.LoadHandler, browser *capi.Browser, isLoading, canGoBack, canGoForward int32) {
	defer wrapper.Recover("LoadHandler", "OnLoadingStateChange")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.LoadingStateChangeHandler](LoadHandlerCppToC, self, "LoadHandler", "OnLoadingStateChange")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("LoadHandler", "OnLoadingStateChange", "browser")
		return
	}
	h.OnLoadingStateChange(b, isTrue(isLoading), isTrue(canGoBack), isTrue(canGoForward))
}

func loadHandlerOnLoadStart(self *capi.LoadHandler, browser *capi.Browser, frame *capi.Frame, transitionType int32) {
	defer wrapper.Recover("LoadHandler", "OnLoadStart")
	b := BrowserCToCpp.Wrap(browser)
	f := FrameCToCpp.Wrap(frame)
	h, ok := capability[cef.LoadStartHandler](LoadHandlerCppToC, self, "LoadHandler", "OnLoadStart")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("LoadHandler", "OnLoadStart", "browser")
		return
	}
	if f == nil {
		wrapper.MissingParam("LoadHandler", "OnLoadStart", "frame")
		return
	}
	h.OnLoadStart(b, f, cef.TransitionType(transitionType))
}

func loadHandlerOnLoadEnd(self *capi.LoadHandler, browser *capi.Browser, frame *capi.Frame, httpStatusCode int32) {
	defer wrapper.Recover("LoadHandler", "OnLoadEnd")
	b := BrowserCToCpp.Wrap(browser)
	f := FrameCToCpp.Wrap(frame)
	h, ok := capability[cef.LoadEndHandler](LoadHandlerCppToC, self, "LoadHandler", "OnLoadEnd")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("LoadHandler", "OnLoadEnd", "browser")
		return
	}
	if f == nil {
		wrapper.MissingParam("LoadHandler", "OnLoadEnd", "frame")
		return
	}
	h.OnLoadEnd(b, f, int(httpStatusCode))
}

func loadHandlerOnLoadError(self *capi.LoadHandler, browser *capi.Browser, frame *capi.Frame, errorCode int32, errorText, failedURL *capi.String) {
	defer wrapper.Recover("LoadHandler", "OnLoadError")
	b := BrowserCToCpp.Wrap(browser)
	f := FrameCToCpp.Wrap(frame)
	h, ok := capability[cef.LoadErrorHandler](LoadHandlerCppToC, self, "LoadHandler", "OnLoadError")
	if !ok {
		return
	}
	switch {
	case b == nil:
		wrapper.MissingParam("LoadHandler", "OnLoadError", "browser")
		return
	case f == nil:
		wrapper.MissingParam("LoadHandler", "OnLoadError", "frame")
		return
	case failedURL == nil:
		wrapper.MissingParam("LoadHandler", "OnLoadError", "failedURL")
		return
	}
	h.OnLoadError(b, f, cef.ErrorCode(errorCode), readString(errorText), readString(failedURL))
}

type loadHandlerAdapter struct {
	*wrapper.CRef[capi.LoadHandler]
}

func (a *loadHandlerAdapter) OnLoadingStateChange(browser cef.Browser, isLoading, canGoBack, canGoForward bool) {
	defer a.Exit("LoadHandler", "OnLoadingStateChange")
	s := a.Struct()
	if s.OnLoadingStateChange == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("LoadHandler", "OnLoadingStateChange", "browser")
		return
	}
	s.OnLoadingStateChange(s, BrowserCppToC.Wrap(browser), capi.Bool(isLoading), capi.Bool(canGoBack), capi.Bool(canGoForward))
}

func (a *loadHandlerAdapter) OnLoadStart(browser cef.Browser, frame cef.Frame, transitionType cef.TransitionType) {
	defer a.Exit("LoadHandler", "OnLoadStart")
	s := a.Struct()
	if s.OnLoadStart == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("LoadHandler", "OnLoadStart", "browser")
		return
	}
	if wrapper.IsNil(frame) {
		wrapper.MissingParam("LoadHandler", "OnLoadStart", "frame")
		return
	}
	s.OnLoadStart(s, BrowserCppToC.Wrap(browser), FrameCppToC.Wrap(frame), int32(transitionType))
}

func (a *loadHandlerAdapter) OnLoadEnd(browser cef.Browser, frame cef.Frame, httpStatusCode int) {
	defer a.Exit("LoadHandler", "OnLoadEnd")
	s := a.Struct()
	if s.OnLoadEnd == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("LoadHandler", "OnLoadEnd", "browser")
		return
	}
	if wrapper.IsNil(frame) {
		wrapper.MissingParam("LoadHandler", "OnLoadEnd", "frame")
		return
	}
	s.OnLoadEnd(s, BrowserCppToC.Wrap(browser), FrameCppToC.Wrap(frame), int32(httpStatusCode))
}

func (a *loadHandlerAdapter) OnLoadError(browser cef.Browser, frame cef.Frame, errorCode cef.ErrorCode, errorText, failedURL string) {
	defer a.Exit("LoadHandler", "OnLoadError")
	s := a.Struct()
	if s.OnLoadError == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("LoadHandler", "OnLoadError", "browser")
		return
	}
	if wrapper.IsNil(frame) {
		wrapper.MissingParam("LoadHandler", "OnLoadError", "frame")
		return
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	s.OnLoadError(s, BrowserCppToC.Wrap(browser), FrameCppToC.Wrap(frame), int32(errorCode), sc.String(errorText), sc.String(failedURL))
}

func dragHandlerOnDragEnter(self *capi.DragHandler, browser *capi.Browser, dragData *capi.DragData, mask int32) int32 {
	defer wrapper.Recover("DragHandler", "OnDragEnter")
	b := BrowserCToCpp.Wrap(browser)
	d := DragDataCToCpp.Wrap(dragData)
	h, ok := capability[cef.DragEnterHandler](DragHandlerCppToC, self, "DragHandler", "OnDragEnter")
	if !ok {
		return 0
	}
	if b == nil {
		wrapper.MissingParam("DragHandler", "OnDragEnter", "browser")
		return 0
	}
	if d == nil {
		wrapper.MissingParam("DragHandler", "OnDragEnter", "dragData")
		return 0
	}
	return capi.Bool(h.OnDragEnter(b, d, cef.DragOperationsMask(uint32(mask))))
}

func dragHandlerOnDraggableRegionsChanged(self *capi.DragHandler, browser *capi.Browser, regionsCount uint32, regions uint32) {
	defer wrapper.Recover("DragHandler", "OnDraggableRegionsChanged")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.DraggableRegionsChangedHandler](DragHandlerCppToC, self, "DragHandler", "OnDraggableRegionsChanged")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("DragHandler", "OnDraggableRegionsChanged", "browser")
		return
	}
	h.OnDraggableRegionsChanged(b, readDraggableRegions(regionsCount, regions))
}

type dragHandlerAdapter struct {
	*wrapper.CRef[capi.DragHandler]
}

func (a *dragHandlerAdapter) OnDragEnter(browser cef.Browser, dragData cef.DragData, mask cef.DragOperationsMask) bool {
	defer a.Exit("DragHandler", "OnDragEnter")
	s := a.Struct()
	if s.OnDragEnter == nil {
		return false
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("DragHandler", "OnDragEnter", "browser")
		return false
	}
	if wrapper.IsNil(dragData) {
		wrapper.MissingParam("DragHandler", "OnDragEnter", "dragData")
		return false
	}
	return isTrue(s.OnDragEnter(s, BrowserCppToC.Wrap(browser), DragDataCppToC.Wrap(dragData), int32(uint32(mask))))
}

func (a *dragHandlerAdapter) OnDraggableRegionsChanged(browser cef.Browser, regions []cef.DraggableRegion) {
	defer a.Exit("DragHandler", "OnDraggableRegionsChanged")
	s := a.Struct()
	if s.OnDraggableRegionsChanged == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("DragHandler", "OnDraggableRegionsChanged", "browser")
		return
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	count, ptr := scratchDraggableRegions(sc, regions)
	s.OnDraggableRegionsChanged(s, BrowserCppToC.Wrap(browser), count, ptr)
}

func jsDialogHandlerOnJSDialog(self *capi.JSDialogHandler, browser *capi.Browser, originURL *capi.String, dialogType int32, messageText, defaultPromptText *capi.String, callback *capi.JSDialogCallback, suppressMessage *int32) int32 {
	defer wrapper.Recover("JSDialogHandler", "OnJSDialog")
	b := BrowserCToCpp.Wrap(browser)
	cb := JSDialogCallbackCToCpp.Wrap(callback)
	h, ok := capability[cef.JSDialogRunner](JSDialogHandlerCppToC, self, "JSDialogHandler", "OnJSDialog")
	if !ok {
		return 0
	}
	switch {
	case b == nil:
		wrapper.MissingParam("JSDialogHandler", "OnJSDialog", "browser")
		return 0
	case cb == nil:
		wrapper.MissingParam("JSDialogHandler", "OnJSDialog", "callback")
		return 0
	case suppressMessage == nil:
		wrapper.MissingParam("JSDialogHandler", "OnJSDialog", "suppressMessage")
		return 0
	}

	suppress := isTrue(*suppressMessage)
	handled := h.OnJSDialog(b, readString(originURL), cef.JSDialogType(dialogType),
		readString(messageText), readString(defaultPromptText), cb, &suppress)
	*suppressMessage = capi.Bool(suppress)
	return capi.Bool(handled)
}

func jsDialogHandlerOnBeforeUnloadDialog(self *capi.JSDialogHandler, browser *capi.Browser, messageText *capi.String, isReload int32, callback *capi.JSDialogCallback) int32 {
	defer wrapper.Recover("JSDialogHandler", "OnBeforeUnloadDialog")
	b := BrowserCToCpp.Wrap(browser)
	cb := JSDialogCallbackCToCpp.Wrap(callback)
	h, ok := capability[cef.BeforeUnloadDialogRunner](JSDialogHandlerCppToC, self, "JSDialogHandler", "OnBeforeUnloadDialog")
	if !ok {
		return 0
	}
	if b == nil {
		wrapper.MissingParam("JSDialogHandler", "OnBeforeUnloadDialog", "browser")
		return 0
	}
	if cb == nil {
		wrapper.MissingParam("JSDialogHandler", "OnBeforeUnloadDialog", "callback")
		return 0
	}
	return capi.Bool(h.OnBeforeUnloadDialog(b, readString(messageText), isTrue(isReload), cb))
}

func jsDialogHandlerOnResetDialogState(self *capi.JSDialogHandler, browser *capi.Browser) {
	defer wrapper.Recover("JSDialogHandler", "OnResetDialogState")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.DialogStateResetter](JSDialogHandlerCppToC, self, "JSDialogHandler", "OnResetDialogState")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("JSDialogHandler", "OnResetDialogState", "browser")
		return
	}
	h.OnResetDialogState(b)
}

func jsDialogHandlerOnDialogClosed(self *capi.JSDialogHandler, browser *capi.Browser) {
	defer wrapper.Recover("JSDialogHandler", "OnDialogClosed")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.DialogClosedHandler](JSDialogHandlerCppToC, self, "JSDialogHandler", "OnDialogClosed")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("JSDialogHandler", "OnDialogClosed", "browser")
		return
	}
	h.OnDialogClosed(b)
}

type jsDialogHandlerAdapter struct {
	*wrapper.CRef[capi.JSDialogHandler]
}

func (a *jsDialogHandlerAdapter) OnJSDialog(browser cef.Browser, originURL string, dialogType cef.JSDialogType, messageText, defaultPromptText string, callback cef.JSDialogCallback, suppressMessage *bool) bool {
	defer a.Exit("JSDialogHandler", "OnJSDialog")
	s := a.Struct()
	if s.OnJSDialog == nil {
		return false
	}
	switch {
	case wrapper.IsNil(browser):
		wrapper.MissingParam("JSDialogHandler", "OnJSDialog", "browser")
		return false
	case wrapper.IsNil(callback):
		wrapper.MissingParam("JSDialogHandler", "OnJSDialog", "callback")
		return false
	case suppressMessage == nil:
		wrapper.MissingParam("JSDialogHandler", "OnJSDialog", "suppressMessage")
		return false
	}

	sc := transcoder.NewScratch()
	defer sc.Release()
	suppress := capi.Bool(*suppressMessage)
	handled := s.OnJSDialog(s, BrowserCppToC.Wrap(browser), sc.String(originURL), int32(dialogType),
		sc.String(messageText), sc.String(defaultPromptText), JSDialogCallbackCppToC.Wrap(callback), &suppress)
	*suppressMessage = isTrue(suppress)
	return isTrue(handled)
}

func (a *jsDialogHandlerAdapter) OnBeforeUnloadDialog(browser cef.Browser, messageText string, isReload bool, callback cef.JSDialogCallback) bool {
	defer a.Exit("JSDialogHandler", "OnBeforeUnloadDialog")
	s := a.Struct()
	if s.OnBeforeUnloadDialog == nil {
		return false
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("JSDialogHandler", "OnBeforeUnloadDialog", "browser")
		return false
	}
	if wrapper.IsNil(callback) {
		wrapper.MissingParam("JSDialogHandler", "OnBeforeUnloadDialog", "callback")
		return false
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	return isTrue(s.OnBeforeUnloadDialog(s, BrowserCppToC.Wrap(browser), sc.String(messageText), capi.Bool(isReload), JSDialogCallbackCppToC.Wrap(callback)))
}

func (a *jsDialogHandlerAdapter) OnResetDialogState(browser cef.Browser) {
	defer a.Exit("JSDialogHandler", "OnResetDialogState")
	s := a.Struct()
	if s.OnResetDialogState == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("JSDialogHandler", "OnResetDialogState", "browser")
		return
	}
	s.OnResetDialogState(s, BrowserCppToC.Wrap(browser))
}

func (a *jsDialogHandlerAdapter) OnDialogClosed(browser cef.Browser) {
	defer a.Exit("JSDialogHandler", "OnDialogClosed")
	s := a.Struct()
	if s.OnDialogClosed == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("JSDialogHandler", "OnDialogClosed", "browser")
		return
	}
	s.OnDialogClosed(s, BrowserCppToC.Wrap(browser))
}

func requestHandlerOnCertificateError(self *capi.RequestHandler, browser *capi.Browser, certError int32, requestURL *capi.String, callback *capi.RequestCallback) int32 {
	defer wrapper.Recover("RequestHandler", "OnCertificateError")
	b := BrowserCToCpp.Wrap(browser)
	cb := RequestCallbackCToCpp.Wrap(callback)
	h, ok := capability[cef.CertificateErrorHandler](RequestHandlerCppToC, self, "RequestHandler", "OnCertificateError")
	if !ok {
		return 0
	}
	switch {
	case b == nil:
		wrapper.MissingParam("RequestHandler", "OnCertificateError", "browser")
		return 0
	case requestURL == nil:
		wrapper.MissingParam("RequestHandler", "OnCertificateError", "requestURL")
		return 0
	case cb == nil:
		wrapper.MissingParam("RequestHandler", "OnCertificateError", "callback")
		return 0
	}
	return capi.Bool(h.OnCertificateError(b, cef.ErrorCode(certError), readString(requestURL), cb))
}

func requestHandlerGetAuthCredentials(self *capi.RequestHandler, browser *capi.Browser, frame *capi.Frame, isProxy int32, host *capi.String, port int32, realm, scheme *capi.String, callback *capi.AuthCallback) int32 {
	defer wrapper.Recover("RequestHandler", "GetAuthCredentials")
	b := BrowserCToCpp.Wrap(browser)
	f := FrameCToCpp.Wrap(frame)
	cb := AuthCallbackCToCpp.Wrap(callback)
	h, ok := capability[cef.AuthCredentialsProvider](RequestHandlerCppToC, self, "RequestHandler", "GetAuthCredentials")
	if !ok {
		return 0
	}
	switch {
	case b == nil:
		wrapper.MissingParam("RequestHandler", "GetAuthCredentials", "browser")
		return 0
	case f == nil:
		wrapper.MissingParam("RequestHandler", "GetAuthCredentials", "frame")
		return 0
	case host == nil:
		wrapper.MissingParam("RequestHandler", "GetAuthCredentials", "host")
		return 0
	case cb == nil:
		wrapper.MissingParam("RequestHandler", "GetAuthCredentials", "callback")
		return 0
	}
	return capi.Bool(h.GetAuthCredentials(b, f, isTrue(isProxy), readString(host), int(port), readString(realm), readString(scheme), cb))
}

func requestHandlerOnRenderProcessTerminated(self *capi.RequestHandler, browser *capi.Browser, status int32) {
	defer wrapper.Recover("RequestHandler", "OnRenderProcessTerminated")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.RenderProcessTerminatedHandler](RequestHandlerCppToC, self, "RequestHandler", "OnRenderProcessTerminated")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("RequestHandler", "OnRenderProcessTerminated", "browser")
		return
	}
	h.OnRenderProcessTerminated(b, cef.TerminationStatus(status))
}

type requestHandlerAdapter struct {
	*wrapper.CRef[capi.RequestHandler]
}

func (a *requestHandlerAdapter) OnCertificateError(browser cef.Browser, certError cef.ErrorCode, requestURL string, callback cef.RequestCallback) bool {
	defer a.Exit("RequestHandler", "OnCertificateError")
	s := a.Struct()
	if s.OnCertificateError == nil {
		return false
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RequestHandler", "OnCertificateError", "browser")
		return false
	}
	if wrapper.IsNil(callback) {
		wrapper.MissingParam("RequestHandler", "OnCertificateError", "callback")
		return false
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	return isTrue(s.OnCertificateError(s, BrowserCppToC.Wrap(browser), int32(certError), sc.String(requestURL), RequestCallbackCppToC.Wrap(callback)))
}

func (a *requestHandlerAdapter) GetAuthCredentials(browser cef.Browser, frame cef.Frame, isProxy bool, host string, port int, realm, scheme string, callback cef.AuthCallback) bool {
	defer a.Exit("RequestHandler", "GetAuthCredentials")
	s := a.Struct()
	if s.GetAuthCredentials == nil {
		return false
	}
	switch {
	case wrapper.IsNil(browser):
		wrapper.MissingParam("RequestHandler", "GetAuthCredentials", "browser")
		return false
	case wrapper.IsNil(frame):
		wrapper.MissingParam("RequestHandler", "GetAuthCredentials", "frame")
		return false
	case wrapper.IsNil(callback):
		wrapper.MissingParam("RequestHandler", "GetAuthCredentials", "callback")
		return false
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	return isTrue(s.GetAuthCredentials(s,
		BrowserCppToC.Wrap(browser),
		FrameCppToC.Wrap(frame),
		capi.Bool(isProxy),
		sc.String(host),
		int32(port),
		sc.String(realm),
		sc.String(scheme),
		AuthCallbackCppToC.Wrap(callback)))
}

func (a *requestHandlerAdapter) OnRenderProcessTerminated(browser cef.Browser, status cef.TerminationStatus) {
	defer a.Exit("RequestHandler", "OnRenderProcessTerminated")
	s := a.Struct()
	if s.OnRenderProcessTerminated == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RequestHandler", "OnRenderProcessTerminated", "browser")
		return
	}
	s.OnRenderProcessTerminated(s, BrowserCppToC.Wrap(browser), int32(status))
}
