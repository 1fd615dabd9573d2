package bridge

import (
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/transcoder"
	"github.com/wippyai/cef-bridge/wrapper"
)

var (
	AppCppToC = wrapper.NewCppToC[cef.App, capi.App]("App", wrapper.TypeApp)
	AppCToCpp = wrapper.NewCToCpp[cef.App, capi.App]("App", wrapper.TypeApp)

	BrowserProcessHandlerCppToC = wrapper.NewCppToC[cef.BrowserProcessHandler, capi.BrowserProcessHandler]("BrowserProcessHandler", wrapper.TypeBrowserProcessHandler)
	BrowserProcessHandlerCToCpp = wrapper.NewCToCpp[cef.BrowserProcessHandler, capi.BrowserProcessHandler]("BrowserProcessHandler", wrapper.TypeBrowserProcessHandler)

	RenderProcessHandlerCppToC = wrapper.NewCppToC[cef.RenderProcessHandler, capi.RenderProcessHandler]("RenderProcessHandler", wrapper.TypeRenderProcessHandler)
	RenderProcessHandlerCToCpp = wrapper.NewCToCpp[cef.RenderProcessHandler, capi.RenderProcessHandler]("RenderProcessHandler", wrapper.TypeRenderProcessHandler)
)

func init() {
	AppCppToC.SetBuilder(func(app cef.App) *capi.App {
		s := &capi.App{}
		if _, ok := app.(cef.CommandLineProcessor); ok {
			s.OnBeforeCommandLineProcessing = appOnBeforeCommandLineProcessing
		}
		if _, ok := app.(cef.CustomSchemeRegisterer); ok {
			s.OnRegisterCustomSchemes = appOnRegisterCustomSchemes
		}
		if _, ok := app.(cef.BrowserProcessHandlerProvider); ok {
			s.GetBrowserProcessHandler = appGetBrowserProcessHandler
		}
		if _, ok := app.(cef.RenderProcessHandlerProvider); ok {
			s.GetRenderProcessHandler = appGetRenderProcessHandler
		}
		return s
	})
	AppCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.App]) cef.App {
		return &appAdapter{CRef: ref}
	})

	BrowserProcessHandlerCppToC.SetBuilder(func(h cef.BrowserProcessHandler) *capi.BrowserProcessHandler {
		s := &capi.BrowserProcessHandler{}
		if _, ok := h.(cef.ContextInitializedHandler); ok {
			s.OnContextInitialized = browserProcessHandlerOnContextInitialized
		}
		if _, ok := h.(cef.ChildProcessLaunchHandler); ok {
			s.OnBeforeChildProcessLaunch = browserProcessHandlerOnBeforeChildProcessLaunch
		}
		if _, ok := h.(cef.RenderProcessThreadCreatedHandler); ok {
			s.OnRenderProcessThreadCreated = browserProcessHandlerOnRenderProcessThreadCreated
		}
		return s
	})
	BrowserProcessHandlerCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.BrowserProcessHandler]) cef.BrowserProcessHandler {
		return &browserProcessHandlerAdapter{CRef: ref}
	})

	RenderProcessHandlerCppToC.SetBuilder(func(h cef.RenderProcessHandler) *capi.RenderProcessHandler {
		s := &capi.RenderProcessHandler{}
		if _, ok := h.(cef.RenderThreadCreatedHandler); ok {
			s.OnRenderThreadCreated = renderProcessHandlerOnRenderThreadCreated
		}
		if _, ok := h.(cef.WebKitInitializedHandler); ok {
			s.OnWebKitInitialized = renderProcessHandlerOnWebKitInitialized
		}
		if _, ok := h.(cef.BrowserCreatedHandler); ok {
			s.OnBrowserCreated = renderProcessHandlerOnBrowserCreated
		}
		if _, ok := h.(cef.BrowserDestroyedHandler); ok {
			s.OnBrowserDestroyed = renderProcessHandlerOnBrowserDestroyed
		}
		if _, ok := h.(cef.LoadHandlerProvider); ok {
			s.GetLoadHandler = renderProcessHandlerGetLoadHandler
		}
		if _, ok := h.(cef.BeforeNavigationHandler); ok {
			s.OnBeforeNavigation = renderProcessHandlerOnBeforeNavigation
		}
		if _, ok := h.(cef.ContextCreatedHandler); ok {
			s.OnContextCreated = renderProcessHandlerOnContextCreated
		}
		if _, ok := h.(cef.ContextReleasedHandler); ok {
			s.OnContextReleased = renderProcessHandlerOnContextReleased
		}
		if _, ok := h.(cef.UncaughtExceptionHandler); ok {
			s.OnUncaughtException = renderProcessHandlerOnUncaughtException
		}
		if _, ok := h.(cef.FocusedNodeChangedHandler); ok {
			s.OnFocusedNodeChanged = renderProcessHandlerOnFocusedNodeChanged
		}
		if _, ok := h.(cef.ProcessMessageReceiver); ok {
			s.OnProcessMessageReceived = renderProcessHandlerOnProcessMessageReceived
		}
		return s
	})
	RenderProcessHandlerCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.RenderProcessHandler]) cef.RenderProcessHandler {
		return &renderProcessHandlerAdapter{CRef: ref}
	})
}

func appOnBeforeCommandLineProcessing(self *capi.App, processType *capi.String, commandLine *capi.CommandLine) {
	defer wrapper.Recover("App", "OnBeforeCommandLineProcessing")
	cl := CommandLineCToCpp.Wrap(commandLine)
	h, ok := capability[cef.CommandLineProcessor](AppCppToC, self, "App", "OnBeforeCommandLineProcessing")
	if !ok {
		return
	}
	if cl == nil {
		wrapper.MissingParam("App", "OnBeforeCommandLineProcessing", "commandLine")
		return
	}
	h.OnBeforeCommandLineProcessing(readString(processType), cl)
}

func appOnRegisterCustomSchemes(self *capi.App, registrar *capi.SchemeRegistrar) {
	defer wrapper.Recover("App", "OnRegisterCustomSchemes")
	r := SchemeRegistrarCToCpp.Wrap(registrar)
	h, ok := capability[cef.CustomSchemeRegisterer](AppCppToC, self, "App", "OnRegisterCustomSchemes")
	if !ok {
		return
	}
	if r == nil {
		wrapper.MissingParam("App", "OnRegisterCustomSchemes", "registrar")
		return
	}
	h.OnRegisterCustomSchemes(r)
}

func appGetBrowserProcessHandler(self *capi.App) *capi.BrowserProcessHandler {
	defer wrapper.Recover("App", "GetBrowserProcessHandler")
	h, ok := capability[cef.BrowserProcessHandlerProvider](AppCppToC, self, "App", "GetBrowserProcessHandler")
	if !ok {
		return nil
	}
	return BrowserProcessHandlerCppToC.Wrap(h.GetBrowserProcessHandler())
}

func appGetRenderProcessHandler(self *capi.App) *capi.RenderProcessHandler {
	defer wrapper.Recover("App", "GetRenderProcessHandler")
	h, ok := capability[cef.RenderProcessHandlerProvider](AppCppToC, self, "App", "GetRenderProcessHandler")
	if !ok {
		return nil
	}
	return RenderProcessHandlerCppToC.Wrap(h.GetRenderProcessHandler())
}

type appAdapter struct {
	*wrapper.CRef[capi.App]
}

func (a *appAdapter) OnBeforeCommandLineProcessing(processType string, commandLine cef.CommandLine) {
	defer a.Exit("App", "OnBeforeCommandLineProcessing")
	s := a.Struct()
	if s.OnBeforeCommandLineProcessing == nil {
		return
	}
	if wrapper.IsNil(commandLine) {
		wrapper.MissingParam("App", "OnBeforeCommandLineProcessing", "commandLine")
		return
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	s.OnBeforeCommandLineProcessing(s, sc.String(processType), CommandLineCppToC.Wrap(commandLine))
}

func (a *appAdapter) OnRegisterCustomSchemes(registrar cef.SchemeRegistrar) {
	defer a.Exit("App", "OnRegisterCustomSchemes")
	s := a.Struct()
	if s.OnRegisterCustomSchemes == nil {
		return
	}
	if wrapper.IsNil(registrar) {
		wrapper.MissingParam("App", "OnRegisterCustomSchemes", "registrar")
		return
	}
	s.OnRegisterCustomSchemes(s, SchemeRegistrarCppToC.Wrap(registrar))
}

func (a *appAdapter) GetBrowserProcessHandler() cef.BrowserProcessHandler {
	defer a.Exit("App", "GetBrowserProcessHandler")
	s := a.Struct()
	if s.GetBrowserProcessHandler == nil {
		return nil
	}
	return BrowserProcessHandlerCToCpp.Wrap(s.GetBrowserProcessHandler(s))
}

func (a *appAdapter) GetRenderProcessHandler() cef.RenderProcessHandler {
	defer a.Exit("App", "GetRenderProcessHandler")
	s := a.Struct()
	if s.GetRenderProcessHandler == nil {
		return nil
	}
	return RenderProcessHandlerCToCpp.Wrap(s.GetRenderProcessHandler(s))
}

func browserProcessHandlerOnContextInitialized(self *capi.BrowserProcessHandler) {
	defer wrapper.Recover("BrowserProcessHandler", "OnContextInitialized")
	h, ok := capability[cef.ContextInitializedHandler](BrowserProcessHandlerCppToC, self, "BrowserProcessHandler", "OnContextInitialized")
	if !ok {
		return
	}
	h.OnContextInitialized()
}

func browserProcessHandlerOnBeforeChildProcessLaunch(self *capi.BrowserProcessHandler, commandLine *capi.CommandLine) {
	defer wrapper.Recover("BrowserProcessHandler", "OnBeforeChildProcessLaunch")
	cl := CommandLineCToCpp.Wrap(commandLine)
	h, ok := capability[cef.ChildProcessLaunchHandler](BrowserProcessHandlerCppToC, self, "BrowserProcessHandler", "OnBeforeChildProcessLaunch")
	if !ok {
		return
	}
	if cl == nil {
		wrapper.MissingParam("BrowserProcessHandler", "OnBeforeChildProcessLaunch", "commandLine")
		return
	}
	h.OnBeforeChildProcessLaunch(cl)
}

func browserProcessHandlerOnRenderProcessThreadCreated(self *capi.BrowserProcessHandler, extraInfo *capi.ListValue) {
	defer wrapper.Recover("BrowserProcessHandler", "OnRenderProcessThreadCreated")
	info := ListValueCToCpp.Wrap(extraInfo)
	h, ok := capability[cef.RenderProcessThreadCreatedHandler](BrowserProcessHandlerCppToC, self, "BrowserProcessHandler", "OnRenderProcessThreadCreated")
	if !ok {
		return
	}
	if info == nil {
		wrapper.MissingParam("BrowserProcessHandler", "OnRenderProcessThreadCreated", "extraInfo")
		return
	}
	h.OnRenderProcessThreadCreated(info)
}

type browserProcessHandlerAdapter struct {
	*wrapper.CRef[capi.BrowserProcessHandler]
}

func (a *browserProcessHandlerAdapter) OnContextInitialized() {
	defer a.Exit("BrowserProcessHandler", "OnContextInitialized")
	s := a.Struct()
	if s.OnContextInitialized == nil {
		return
	}
	s.OnContextInitialized(s)
}

func (a *browserProcessHandlerAdapter) OnBeforeChildProcessLaunch(commandLine cef.CommandLine) {
	defer a.Exit("BrowserProcessHandler", "OnBeforeChildProcessLaunch")
	s := a.Struct()
	if s.OnBeforeChildProcessLaunch == nil {
		return
	}
	if wrapper.IsNil(commandLine) {
		wrapper.MissingParam("BrowserProcessHandler", "OnBeforeChildProcessLaunch", "commandLine")
		return
	}
	s.OnBeforeChildProcessLaunch(s, CommandLineCppToC.Wrap(commandLine))
}

func (a *browserProcessHandlerAdapter) OnRenderProcessThreadCreated(extraInfo cef.ListValue) {
	defer a.Exit("BrowserProcessHandler", "OnRenderProcessThreadCreated")
	s := a.Struct()
	if s.OnRenderProcessThreadCreated == nil {
		return
	}
	if wrapper.IsNil(extraInfo) {
		wrapper.MissingParam("BrowserProcessHandler", "OnRenderProcessThreadCreated", "extraInfo")
		return
	}
	s.OnRenderProcessThreadCreated(s, ListValueCppToC.Wrap(extraInfo))
}

func renderProcessHandlerOnRenderThreadCreated(self *capi.RenderProcessHandler, extraInfo *capi.ListValue) {
	defer wrapper.Recover("RenderProcessHandler", "OnRenderThreadCreated")
	info := ListValueCToCpp.Wrap(extraInfo)
	h, ok := capability[cef.RenderThreadCreatedHandler](RenderProcessHandlerCppToC, self, "RenderProcessHandler", "OnRenderThreadCreated")
	if !ok {
		return
	}
	if info == nil {
		wrapper.MissingParam("RenderProcessHandler", "OnRenderThreadCreated", "extraInfo")
		return
	}
	h.OnRenderThreadCreated(info)
}

func renderProcessHandlerOnWebKitInitialized(self *capi.RenderProcessHandler) {
	defer wrapper.Recover("RenderProcessHandler", "OnWebKitInitialized")
	h, ok := capability[cef.WebKitInitializedHandler](RenderProcessHandlerCppToC, self, "RenderProcessHandler", "OnWebKitInitialized")
	if !ok {
		return
	}
	h.OnWebKitInitialized()
}

func renderProcessHandlerOnBrowserCreated(self *capi.RenderProcessHandler, browser *capi.Browser) {
	defer wrapper.Recover("RenderProcessHandler", "OnBrowserCreated")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.BrowserCreatedHandler](RenderProcessHandlerCppToC, self, "RenderProcessHandler", "OnBrowserCreated")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("RenderProcessHandler", "OnBrowserCreated", "browser")
		return
	}
	h.OnBrowserCreated(b)
}

func renderProcessHandlerOnBrowserDestroyed(self *capi.RenderProcessHandler, browser *capi.Browser) {
	defer wrapper.Recover("RenderProcessHandler", "OnBrowserDestroyed")
	b := BrowserCToCpp.Wrap(browser)
	h, ok := capability[cef.BrowserDestroyedHandler](RenderProcessHandlerCppToC, self, "RenderProcessHandler", "OnBrowserDestroyed")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("RenderProcessHandler", "OnBrowserDestroyed", "browser")
		return
	}
	h.OnBrowserDestroyed(b)
}

func renderProcessHandlerGetLoadHandler(self *capi.RenderProcessHandler) *capi.LoadHandler {
	defer wrapper.Recover("RenderProcessHandler", "GetLoadHandler")
	h, ok := capability[cef.LoadHandlerProvider](RenderProcessHandlerCppToC, self, "RenderProcessHandler", "GetLoadHandler")
	if !ok {
		return nil
	}
	return LoadHandlerCppToC.Wrap(h.GetLoadHandler())
}

func renderProcessHandlerOnBeforeNavigation(self *capi.RenderProcessHandler, browser *capi.Browser, frame *capi.Frame, request *capi.Request, navigationType int32, isRedirect int32) int32 {
	defer wrapper.Recover("RenderProcessHandler", "OnBeforeNavigation")
	b := BrowserCToCpp.Wrap(browser)
	f := FrameCToCpp.Wrap(frame)
	r := RequestCToCpp.Wrap(request)
	h, ok := capability[cef.BeforeNavigationHandler](RenderProcessHandlerCppToC, self, "RenderProcessHandler", "OnBeforeNavigation")
	if !ok {
		return 0
	}
	if b == nil {
		wrapper.MissingParam("RenderProcessHandler", "OnBeforeNavigation", "browser")
		return 0
	}
	if f == nil {
		wrapper.MissingParam("RenderProcessHandler", "OnBeforeNavigation", "frame")
		return 0
	}
	if r == nil {
		wrapper.MissingParam("RenderProcessHandler", "OnBeforeNavigation", "request")
		return 0
	}
	return capi.Bool(h.OnBeforeNavigation(b, f, r, cef.NavigationType(navigationType), isTrue(isRedirect)))
}

func renderProcessHandlerOnContextCreated(self *capi.RenderProcessHandler, browser *capi.Browser, frame *capi.Frame, context *capi.V8Context) {
	defer wrapper.Recover("RenderProcessHandler", "OnContextCreated")
	b := BrowserCToCpp.Wrap(browser)
	f := FrameCToCpp.Wrap(frame)
	c := V8ContextCToCpp.Wrap(context)
	h, ok := capability[cef.ContextCreatedHandler](RenderProcessHandlerCppToC, self, "RenderProcessHandler", "OnContextCreated")
	if !ok {
		return
	}
	if b == nil || f == nil || c == nil {
		wrapper.MissingParam("RenderProcessHandler", "OnContextCreated", missingName(b == nil, f == nil, "browser", "frame", "context"))
		return
	}
	h.OnContextCreated(b, f, c)
}

func renderProcessHandlerOnContextReleased(self *capi.RenderProcessHandler, browser *capi.Browser, frame *capi.Frame, context *capi.V8Context) {
	defer wrapper.Recover("RenderProcessHandler", "OnContextReleased")
	b := BrowserCToCpp.Wrap(browser)
	f := FrameCToCpp.Wrap(frame)
	c := V8ContextCToCpp.Wrap(context)
	h, ok := capability[cef.ContextReleasedHandler](RenderProcessHandlerCppToC, self, "RenderProcessHandler", "OnContextReleased")
	if !ok {
		return
	}
	if b == nil || f == nil || c == nil {
		wrapper.MissingParam("RenderProcessHandler", "OnContextReleased", missingName(b == nil, f == nil, "browser", "frame", "context"))
		return
	}
	h.OnContextReleased(b, f, c)
}

func renderProcessHandlerOnUncaughtException(self *capi.RenderProcessHandler, browser *capi.Browser, frame *capi.Frame, context *capi.V8Context, exception *capi.V8Exception, stackTrace *capi.V8StackTrace) {
	defer wrapper.Recover("RenderProcessHandler", "OnUncaughtException")
	b := BrowserCToCpp.Wrap(browser)
	f := FrameCToCpp.Wrap(frame)
	c := V8ContextCToCpp.Wrap(context)
	e := V8ExceptionCToCpp.Wrap(exception)
	st := V8StackTraceCToCpp.Wrap(stackTrace)
	h, ok := capability[cef.UncaughtExceptionHandler](RenderProcessHandlerCppToC, self, "RenderProcessHandler", "OnUncaughtException")
	if !ok {
		return
	}
	switch {
	case b == nil:
		wrapper.MissingParam("RenderProcessHandler", "OnUncaughtException", "browser")
		return
	case f == nil:
		wrapper.MissingParam("RenderProcessHandler", "OnUncaughtException", "frame")
		return
	case c == nil:
		wrapper.MissingParam("RenderProcessHandler", "OnUncaughtException", "context")
		return
	case e == nil:
		wrapper.MissingParam("RenderProcessHandler", "OnUncaughtException", "exception")
		return
	case st == nil:
		wrapper.MissingParam("RenderProcessHandler", "OnUncaughtException", "stackTrace")
		return
	}
	h.OnUncaughtException(b, f, c, e, st)
}

func renderProcessHandlerOnFocusedNodeChanged(self *capi.RenderProcessHandler, browser *capi.Browser, frame *capi.Frame, node *capi.DOMNode) {
	defer wrapper.Recover("RenderProcessHandler", "OnFocusedNodeChanged")
	b := BrowserCToCpp.Wrap(browser)
	f := FrameCToCpp.Wrap(frame)
	n := DOMNodeCToCpp.Wrap(node)
	h, ok := capability[cef.FocusedNodeChangedHandler](RenderProcessHandlerCppToC, self, "RenderProcessHandler", "OnFocusedNodeChanged")
	if !ok {
		return
	}
	if b == nil {
		wrapper.MissingParam("RenderProcessHandler", "OnFocusedNodeChanged", "browser")
		return
	}
	h.OnFocusedNodeChanged(b, f, n)
}

func renderProcessHandlerOnProcessMessageReceived(self *capi.RenderProcessHandler, browser *capi.Browser, sourceProcess int32, message *capi.ProcessMessage) int32 {
	defer wrapper.Recover("RenderProcessHandler", "OnProcessMessageReceived")
	b := BrowserCToCpp.Wrap(browser)
	m := ProcessMessageCToCpp.Wrap(message)
	h, ok := capability[cef.ProcessMessageReceiver](RenderProcessHandlerCppToC, self, "RenderProcessHandler", "OnProcessMessageReceived")
	if !ok {
		return 0
	}
	if b == nil {
		wrapper.MissingParam("RenderProcessHandler", "OnProcessMessageReceived", "browser")
		return 0
	}
	if m == nil {
		wrapper.MissingParam("RenderProcessHandler", "OnProcessMessageReceived", "message")
		return 0
	}
	return capi.Bool(h.OnProcessMessageReceived(b, cef.ProcessID(sourceProcess), m))
}

// missingName picks the first absent name of a browser, frame, context
// triple.
func missingName(noBrowser, noFrame bool, browser, frame, context string) string {
	switch {
	case noBrowser:
		return browser
	case noFrame:
		return frame
	default:
		return context
	}
}

type renderProcessHandlerAdapter struct {
	*wrapper.CRef[capi.RenderProcessHandler]
}

func (a *renderProcessHandlerAdapter) OnRenderThreadCreated(extraInfo cef.ListValue) {
	defer a.Exit("RenderProcessHandler", "OnRenderThreadCreated")
	s := a.Struct()
	if s.OnRenderThreadCreated == nil {
		return
	}
	if wrapper.IsNil(extraInfo) {
		wrapper.MissingParam("RenderProcessHandler", "OnRenderThreadCreated", "extraInfo")
		return
	}
	s.OnRenderThreadCreated(s, ListValueCppToC.Wrap(extraInfo))
}

func (a *renderProcessHandlerAdapter) OnWebKitInitialized() {
	defer a.Exit("RenderProcessHandler", "OnWebKitInitialized")
	s := a.Struct()
	if s.OnWebKitInitialized == nil {
		return
	}
	s.OnWebKitInitialized(s)
}

func (a *renderProcessHandlerAdapter) OnBrowserCreated(browser cef.Browser) {
	defer a.Exit("RenderProcessHandler", "OnBrowserCreated")
	s := a.Struct()
	if s.OnBrowserCreated == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RenderProcessHandler", "OnBrowserCreated", "browser")
		return
	}
	s.OnBrowserCreated(s, BrowserCppToC.Wrap(browser))
}

func (a *renderProcessHandlerAdapter) OnBrowserDestroyed(browser cef.Browser) {
	defer a.Exit("RenderProcessHandler", "OnBrowserDestroyed")
	s := a.Struct()
	if s.OnBrowserDestroyed == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RenderProcessHandler", "OnBrowserDestroyed", "browser")
		return
	}
	s.OnBrowserDestroyed(s, BrowserCppToC.Wrap(browser))
}

func (a *renderProcessHandlerAdapter) GetLoadHandler() cef.LoadHandler {
	defer a.Exit("RenderProcessHandler", "GetLoadHandler")
	s := a.Struct()
	if s.GetLoadHandler == nil {
		return nil
	}
	return LoadHandlerCToCpp.Wrap(s.GetLoadHandler(s))
}

func (a *renderProcessHandlerAdapter) OnBeforeNavigation(browser cef.Browser, frame cef.Frame, request cef.Request, navigationType cef.NavigationType, isRedirect bool) bool {
	defer a.Exit("RenderProcessHandler", "OnBeforeNavigation")
	s := a.Struct()
	if s.OnBeforeNavigation == nil {
		return false
	}
	switch {
	case wrapper.IsNil(browser):
		wrapper.MissingParam("RenderProcessHandler", "OnBeforeNavigation", "browser")
		return false
	case wrapper.IsNil(frame):
		wrapper.MissingParam("RenderProcessHandler", "OnBeforeNavigation", "frame")
		return false
	case wrapper.IsNil(request):
		wrapper.MissingParam("RenderProcessHandler", "OnBeforeNavigation", "request")
		return false
	}
	return isTrue(s.OnBeforeNavigation(s,
		BrowserCppToC.Wrap(browser),
		FrameCppToC.Wrap(frame),
		RequestCppToC.Wrap(request),
		int32(navigationType),
		capi.Bool(isRedirect)))
}

func (a *renderProcessHandlerAdapter) OnContextCreated(browser cef.Browser, frame cef.Frame, context cef.V8Context) {
	defer a.Exit("RenderProcessHandler", "OnContextCreated")
	s := a.Struct()
	if s.OnContextCreated == nil {
		return
	}
	if wrapper.IsNil(browser) || wrapper.IsNil(frame) || wrapper.IsNil(context) {
		wrapper.MissingParam("RenderProcessHandler", "OnContextCreated",
			missingName(wrapper.IsNil(browser), wrapper.IsNil(frame), "browser", "frame", "context"))
		return
	}
	s.OnContextCreated(s, BrowserCppToC.Wrap(browser), FrameCppToC.Wrap(frame), V8ContextCppToC.Wrap(context))
}

func (a *renderProcessHandlerAdapter) OnContextReleased(browser cef.Browser, frame cef.Frame, context cef.V8Context) {
	defer a.Exit("RenderProcessHandler", "OnContextReleased")
	s := a.Struct()
	if s.OnContextReleased == nil {
		return
	}
	if wrapper.IsNil(browser) || wrapper.IsNil(frame) || wrapper.IsNil(context) {
		wrapper.MissingParam("RenderProcessHandler", "OnContextReleased",
			missingName(wrapper.IsNil(browser), wrapper.IsNil(frame), "browser", "frame", "context"))
		return
	}
	s.OnContextReleased(s, BrowserCppToC.Wrap(browser), FrameCppToC.Wrap(frame), V8ContextCppToC.Wrap(context))
}

func (a *renderProcessHandlerAdapter) OnUncaughtException(browser cef.Browser, frame cef.Frame, context cef.V8Context, exception cef.V8Exception, stackTrace cef.V8StackTrace) {
	defer a.Exit("RenderProcessHandler", "OnUncaughtException")
	s := a.Struct()
	if s.OnUncaughtException == nil {
		return
	}
	switch {
	case wrapper.IsNil(browser):
		wrapper.MissingParam("RenderProcessHandler", "OnUncaughtException", "browser")
		return
	case wrapper.IsNil(frame):
		wrapper.MissingParam("RenderProcessHandler", "OnUncaughtException", "frame")
		return
	case wrapper.IsNil(context):
		wrapper.MissingParam("RenderProcessHandler", "OnUncaughtException", "context")
		return
	case wrapper.IsNil(exception):
		wrapper.MissingParam("RenderProcessHandler", "OnUncaughtException", "exception")
		return
	case wrapper.IsNil(stackTrace):
		wrapper.MissingParam("RenderProcessHandler", "OnUncaughtException", "stackTrace")
		return
	}
	s.OnUncaughtException(s,
		BrowserCppToC.Wrap(browser),
		FrameCppToC.Wrap(frame),
		V8ContextCppToC.Wrap(context),
		V8ExceptionCppToC.Wrap(exception),
		V8StackTraceCppToC.Wrap(stackTrace))
}

func (a *renderProcessHandlerAdapter) OnFocusedNodeChanged(browser cef.Browser, frame cef.Frame, node cef.DOMNode) {
	defer a.Exit("RenderProcessHandler", "OnFocusedNodeChanged")
	s := a.Struct()
	if s.OnFocusedNodeChanged == nil {
		return
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RenderProcessHandler", "OnFocusedNodeChanged", "browser")
		return
	}
	s.OnFocusedNodeChanged(s, BrowserCppToC.Wrap(browser), FrameCppToC.Wrap(frame), DOMNodeCppToC.Wrap(node))
}

func (a *renderProcessHandlerAdapter) OnProcessMessageReceived(browser cef.Browser, sourceProcess cef.ProcessID, message cef.ProcessMessage) bool {
	defer a.Exit("RenderProcessHandler", "OnProcessMessageReceived")
	s := a.Struct()
	if s.OnProcessMessageReceived == nil {
		return false
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("RenderProcessHandler", "OnProcessMessageReceived", "browser")
		return false
	}
	if wrapper.IsNil(message) {
		wrapper.MissingParam("RenderProcessHandler", "OnProcessMessageReceived", "message")
		return false
	}
	return isTrue(s.OnProcessMessageReceived(s, BrowserCppToC.Wrap(browser), int32(sourceProcess), ProcessMessageCppToC.Wrap(message)))
}
