package bridge

import (
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/wrapper"
)

var (
	ClientCppToC = wrapper.NewCppToC[cef.Client, capi.Client]("Client", wrapper.TypeClient)
	ClientCToCpp = wrapper.NewCToCpp[cef.Client, capi.Client]("Client", wrapper.TypeClient)
)

func init() {
	ClientCppToC.SetBuilder(func(c cef.Client) *capi.Client {
		s := &capi.Client{}
		if _, ok := c.(cef.DragHandlerProvider); ok {
			s.GetDragHandler = clientGetDragHandler
		}
		if _, ok := c.(cef.JSDialogHandlerProvider); ok {
			s.GetJSDialogHandler = clientGetJSDialogHandler
		}
		if _, ok := c.(cef.LoadHandlerProvider); ok {
			s.GetLoadHandler = clientGetLoadHandler
		}
		if _, ok := c.(cef.RenderHandlerProvider); ok {
			s.GetRenderHandler = clientGetRenderHandler
		}
		if _, ok := c.(cef.RequestHandlerProvider); ok {
			s.GetRequestHandler = clientGetRequestHandler
		}
		if _, ok := c.(cef.ProcessMessageReceiver); ok {
			s.OnProcessMessageReceived = clientOnProcessMessageReceived
		}
		return s
	})
	ClientCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.Client]) cef.Client {
		return &clientAdapter{CRef: ref}
	})
}

func clientGetDragHandler(self *capi.Client) *capi.DragHandler {
	defer wrapper.Recover("Client", "GetDragHandler")
	c, ok := capability[cef.DragHandlerProvider](ClientCppToC, self, "Client", "GetDragHandler")
	if !ok {
		return nil
	}
	return DragHandlerCppToC.Wrap(c.GetDragHandler())
}

func clientGetJSDialogHandler(self *capi.Client) *capi.JSDialogHandler {
	defer wrapper.Recover("Client", "GetJSDialogHandler")
	c, ok := capability[cef.JSDialogHandlerProvider](ClientCppToC, self, "Client", "GetJSDialogHandler")
	if !ok {
		return nil
	}
	return JSDialogHandlerCppToC.Wrap(c.GetJSDialogHandler())
}

func clientGetLoadHandler(self *capi.Client) *capi.LoadHandler {
	defer wrapper.Recover("Client", "GetLoadHandler")
	c, ok := capability[cef.LoadHandlerProvider](ClientCppToC, self, "Client", "GetLoadHandler")
	if !ok {
		return nil
	}
	return LoadHandlerCppToC.Wrap(c.GetLoadHandler())
}

func clientGetRenderHandler(self *capi.Client) *capi.RenderHandler {
	defer wrapper.Recover("Client", "GetRenderHandler")
	c, ok := capability[cef.RenderHandlerProvider](ClientCppToC, self, "Client", "GetRenderHandler")
	if !ok {
		return nil
	}
	return RenderHandlerCppToC.Wrap(c.GetRenderHandler())
}

func clientGetRequestHandler(self *capi.Client) *capi.RequestHandler {
	defer wrapper.Recover("Client", "GetRequestHandler")
	c, ok := capability[cef.RequestHandlerProvider](ClientCppToC, self, "Client", "GetRequestHandler")
	if !ok {
		return nil
	}
	return RequestHandlerCppToC.Wrap(c.GetRequestHandler())
}

func clientOnProcessMessageReceived(self *capi.Client, browser *capi.Browser, sourceProcess int32, message *capi.ProcessMessage) int32 {
	defer wrapper.Recover("Client", "OnProcessMessageReceived")
	b := BrowserCToCpp.Wrap(browser)
	m := ProcessMessageCToCpp.Wrap(message)
	c, ok := capability[cef.ProcessMessageReceiver](ClientCppToC, self, "Client", "OnProcessMessageReceived")
	if !ok {
		return 0
	}
	if b == nil {
		wrapper.MissingParam("Client", "OnProcessMessageReceived", "browser")
		return 0
	}
	if m == nil {
		wrapper.MissingParam("Client", "OnProcessMessageReceived", "message")
		return 0
	}
	return capi.Bool(c.OnProcessMessageReceived(b, cef.ProcessID(sourceProcess), m))
}

type clientAdapter struct {
	*wrapper.CRef[capi.Client]
}

func (a *clientAdapter) GetDragHandler() cef.DragHandler {
	defer a.Exit("Client", "GetDragHandler")
	s := a.Struct()
	if s.GetDragHandler == nil {
		return nil
	}
	return DragHandlerCToCpp.Wrap(s.GetDragHandler(s))
}

func (a *clientAdapter) GetJSDialogHandler() cef.JSDialogHandler {
	defer a.Exit("Client", "GetJSDialogHandler")
	s := a.Struct()
	if s.GetJSDialogHandler == nil {
		return nil
	}
	return JSDialogHandlerCToCpp.Wrap(s.GetJSDialogHandler(s))
}

func (a *clientAdapter) GetLoadHandler() cef.LoadHandler {
	defer a.Exit("Client", "GetLoadHandler")
	s := a.Struct()
	if s.GetLoadHandler == nil {
		return nil
	}
	return LoadHandlerCToCpp.Wrap(s.GetLoadHandler(s))
}

func (a *clientAdapter) GetRenderHandler() cef.RenderHandler {
	defer a.Exit("Client", "GetRenderHandler")
	s := a.Struct()
	if s.GetRenderHandler == nil {
		return nil
	}
	return RenderHandlerCToCpp.Wrap(s.GetRenderHandler(s))
}

func (a *clientAdapter) GetRequestHandler() cef.RequestHandler {
	defer a.Exit("Client", "GetRequestHandler")
	s := a.Struct()
	if s.GetRequestHandler == nil {
		return nil
	}
	return RequestHandlerCToCpp.Wrap(s.GetRequestHandler(s))
}

func (a *clientAdapter) OnProcessMessageReceived(browser cef.Browser, sourceProcess cef.ProcessID, message cef.ProcessMessage) bool {
	defer a.Exit("Client", "OnProcessMessageReceived")
	s := a.Struct()
	if s.OnProcessMessageReceived == nil {
		return false
	}
	if wrapper.IsNil(browser) {
		wrapper.MissingParam("Client", "OnProcessMessageReceived", "browser")
		return false
	}
	if wrapper.IsNil(message) {
		wrapper.MissingParam("Client", "OnProcessMessageReceived", "message")
		return false
	}
	return isTrue(s.OnProcessMessageReceived(s, BrowserCppToC.Wrap(browser), int32(sourceProcess), ProcessMessageCppToC.Wrap(message)))
}
