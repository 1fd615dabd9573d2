package bridge

import (
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/transcoder"
	"github.com/wippyai/cef-bridge/wrapper"
)

var (
	BrowserCppToC = wrapper.NewCppToC[cef.Browser, capi.Browser]("Browser", wrapper.TypeBrowser)
	BrowserCToCpp = wrapper.NewCToCpp[cef.Browser, capi.Browser]("Browser", wrapper.TypeBrowser)
)

func init() {
	BrowserCppToC.SetBuilder(func(cef.Browser) *capi.Browser {
		return &capi.Browser{
			GetIdentifier:      browserGetIdentifier,
			IsLoading:          browserIsLoading,
			CanGoBack:          browserCanGoBack,
			CanGoForward:       browserCanGoForward,
			GetMainFrame:       browserGetMainFrame,
			GetFrameNames:      browserGetFrameNames,
			IsSame:             browserIsSame,
			SendProcessMessage: browserSendProcessMessage,
		}
	})
	BrowserCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.Browser]) cef.Browser {
		return &browserAdapter{CRef: ref}
	})
}

func browserGetIdentifier(self *capi.Browser) int32 {
	defer wrapper.Recover("Browser", "GetIdentifier")
	b, ok := receiver(BrowserCppToC, self, "Browser", "GetIdentifier")
	if !ok {
		return 0
	}
	return b.Identifier()
}

func browserIsLoading(self *capi.Browser) int32 {
	defer wrapper.Recover("Browser", "IsLoading")
	b, ok := receiver(BrowserCppToC, self, "Browser", "IsLoading")
	if !ok {
		return 0
	}
	return capi.Bool(b.IsLoading())
}

func browserCanGoBack(self *capi.Browser) int32 {
	defer wrapper.Recover("Browser", "CanGoBack")
	b, ok := receiver(BrowserCppToC, self, "Browser", "CanGoBack")
	if !ok {
		return 0
	}
	return capi.Bool(b.CanGoBack())
}

func browserCanGoForward(self *capi.Browser) int32 {
	defer wrapper.Recover("Browser", "CanGoForward")
	b, ok := receiver(BrowserCppToC, self, "Browser", "CanGoForward")
	if !ok {
		return 0
	}
	return capi.Bool(b.CanGoForward())
}

func browserGetMainFrame(self *capi.Browser) *capi.Frame {
	defer wrapper.Recover("Browser", "GetMainFrame")
	b, ok := receiver(BrowserCppToC, self, "Browser", "GetMainFrame")
	if !ok {
		return nil
	}
	return FrameCppToC.Wrap(b.MainFrame())
}

func browserGetFrameNames(self *capi.Browser) capi.List {
	defer wrapper.Recover("Browser", "GetFrameNames")
	b, ok := receiver(BrowserCppToC, self, "Browser", "GetFrameNames")
	if !ok {
		return capi.List{}
	}
	return newStringList("Browser", "GetFrameNames", b.FrameNames())
}

func browserIsSame(self *capi.Browser, that *capi.Browser) int32 {
	defer wrapper.Recover("Browser", "IsSame")
	other := BrowserCppToC.Unwrap(that)
	b, ok := receiver(BrowserCppToC, self, "Browser", "IsSame")
	if !ok {
		return 0
	}
	return capi.Bool(b.IsSame(other))
}

func browserSendProcessMessage(self *capi.Browser, targetProcess int32, message *capi.ProcessMessage) int32 {
	defer wrapper.Recover("Browser", "SendProcessMessage")
	msg := ProcessMessageCppToC.Unwrap(message)
	b, ok := receiver(BrowserCppToC, self, "Browser", "SendProcessMessage")
	if !ok {
		return 0
	}
	if msg == nil {
		wrapper.MissingParam("Browser", "SendProcessMessage", "message")
		return 0
	}
	return capi.Bool(b.SendProcessMessage(cef.ProcessID(targetProcess), msg))
}

type browserAdapter struct {
	*wrapper.CRef[capi.Browser]
}

func (a *browserAdapter) Identifier() int32 {
	defer a.Exit("Browser", "GetIdentifier")
	s := a.Struct()
	if s.GetIdentifier == nil {
		return 0
	}
	return s.GetIdentifier(s)
}

func (a *browserAdapter) IsLoading() bool {
	defer a.Exit("Browser", "IsLoading")
	s := a.Struct()
	if s.IsLoading == nil {
		return false
	}
	return isTrue(s.IsLoading(s))
}

func (a *browserAdapter) CanGoBack() bool {
	defer a.Exit("Browser", "CanGoBack")
	s := a.Struct()
	if s.CanGoBack == nil {
		return false
	}
	return isTrue(s.CanGoBack(s))
}

func (a *browserAdapter) CanGoForward() bool {
	defer a.Exit("Browser", "CanGoForward")
	s := a.Struct()
	if s.CanGoForward == nil {
		return false
	}
	return isTrue(s.CanGoForward(s))
}

func (a *browserAdapter) MainFrame() cef.Frame {
	defer a.Exit("Browser", "GetMainFrame")
	s := a.Struct()
	if s.GetMainFrame == nil {
		return nil
	}
	return FrameCToCpp.Wrap(s.GetMainFrame(s))
}

func (a *browserAdapter) FrameNames() []string {
	defer a.Exit("Browser", "GetFrameNames")
	s := a.Struct()
	if s.GetFrameNames == nil {
		return nil
	}
	return takeStringList(s.GetFrameNames(s))
}

func (a *browserAdapter) IsSame(that cef.Browser) bool {
	defer a.Exit("Browser", "IsSame")
	s := a.Struct()
	if s.IsSame == nil {
		return false
	}
	return isTrue(s.IsSame(s, BrowserCToCpp.Unwrap(that)))
}

func (a *browserAdapter) SendProcessMessage(target cef.ProcessID, message cef.ProcessMessage) bool {
	defer a.Exit("Browser", "SendProcessMessage")
	s := a.Struct()
	if s.SendProcessMessage == nil {
		return false
	}
	if wrapper.IsNil(message) {
		wrapper.MissingParam("Browser", "SendProcessMessage", "message")
		return false
	}
	return isTrue(s.SendProcessMessage(s, int32(target), ProcessMessageCToCpp.Unwrap(message)))
}

var (
	FrameCppToC = wrapper.NewCppToC[cef.Frame, capi.Frame]("Frame", wrapper.TypeFrame)
	FrameCToCpp = wrapper.NewCToCpp[cef.Frame, capi.Frame]("Frame", wrapper.TypeFrame)
)

func init() {
	FrameCppToC.SetBuilder(func(cef.Frame) *capi.Frame {
		return &capi.Frame{
			IsValid:       frameIsValid,
			IsMain:        frameIsMain,
			GetName:       frameGetName,
			GetIdentifier: frameGetIdentifier,
			GetURL:        frameGetURL,
			GetBrowser:    frameGetBrowser,
			LoadURL:       frameLoadURL,
		}
	})
	FrameCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.Frame]) cef.Frame {
		return &frameAdapter{CRef: ref}
	})
}

func frameIsValid(self *capi.Frame) int32 {
	defer wrapper.Recover("Frame", "IsValid")
	f, ok := receiver(FrameCppToC, self, "Frame", "IsValid")
	if !ok {
		return 0
	}
	return capi.Bool(f.IsValid())
}

func frameIsMain(self *capi.Frame) int32 {
	defer wrapper.Recover("Frame", "IsMain")
	f, ok := receiver(FrameCppToC, self, "Frame", "IsMain")
	if !ok {
		return 0
	}
	return capi.Bool(f.IsMain())
}

func frameGetName(self *capi.Frame) capi.String {
	defer wrapper.Recover("Frame", "GetName")
	f, ok := receiver(FrameCppToC, self, "Frame", "GetName")
	if !ok {
		return capi.String{}
	}
	return newString("Frame", "GetName", f.Name())
}

func frameGetIdentifier(self *capi.Frame) int64 {
	defer wrapper.Recover("Frame", "GetIdentifier")
	f, ok := receiver(FrameCppToC, self, "Frame", "GetIdentifier")
	if !ok {
		return 0
	}
	return f.Identifier()
}

func frameGetURL(self *capi.Frame) capi.String {
	defer wrapper.Recover("Frame", "GetURL")
	f, ok := receiver(FrameCppToC, self, "Frame", "GetURL")
	if !ok {
		return capi.String{}
	}
	return newString("Frame", "GetURL", f.URL())
}

func frameGetBrowser(self *capi.Frame) *capi.Browser {
	defer wrapper.Recover("Frame", "GetBrowser")
	f, ok := receiver(FrameCppToC, self, "Frame", "GetBrowser")
	if !ok {
		return nil
	}
	return BrowserCppToC.Wrap(f.Browser())
}

func frameLoadURL(self *capi.Frame, url *capi.String) {
	defer wrapper.Recover("Frame", "LoadURL")
	f, ok := receiver(FrameCppToC, self, "Frame", "LoadURL")
	if !ok {
		return
	}
	if url == nil {
		wrapper.MissingParam("Frame", "LoadURL", "url")
		return
	}
	f.LoadURL(readString(url))
}

type frameAdapter struct {
	*wrapper.CRef[capi.Frame]
}

func (a *frameAdapter) IsValid() bool {
	defer a.Exit("Frame", "IsValid")
	s := a.Struct()
	if s.IsValid == nil {
		return false
	}
	return isTrue(s.IsValid(s))
}

func (a *frameAdapter) IsMain() bool {
	defer a.Exit("Frame", "IsMain")
	s := a.Struct()
	if s.IsMain == nil {
		return false
	}
	return isTrue(s.IsMain(s))
}

func (a *frameAdapter) Name() string {
	defer a.Exit("Frame", "GetName")
	s := a.Struct()
	if s.GetName == nil {
		return ""
	}
	return takeString(s.GetName(s))
}

func (a *frameAdapter) Identifier() int64 {
	defer a.Exit("Frame", "GetIdentifier")
	s := a.Struct()
	if s.GetIdentifier == nil {
		return 0
	}
	return s.GetIdentifier(s)
}

func (a *frameAdapter) URL() string {
	defer a.Exit("Frame", "GetURL")
	s := a.Struct()
	if s.GetURL == nil {
		return ""
	}
	return takeString(s.GetURL(s))
}

func (a *frameAdapter) Browser() cef.Browser {
	defer a.Exit("Frame", "GetBrowser")
	s := a.Struct()
	if s.GetBrowser == nil {
		return nil
	}
	return BrowserCToCpp.Wrap(s.GetBrowser(s))
}

func (a *frameAdapter) LoadURL(url string) {
	defer a.Exit("Frame", "LoadURL")
	s := a.Struct()
	if s.LoadURL == nil {
		return
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	s.LoadURL(s, sc.String(url))
}

var (
	RequestCppToC = wrapper.NewCppToC[cef.Request, capi.Request]("Request", wrapper.TypeRequest)
	RequestCToCpp = wrapper.NewCToCpp[cef.Request, capi.Request]("Request", wrapper.TypeRequest)
)

func init() {
	RequestCppToC.SetBuilder(func(cef.Request) *capi.Request {
		return &capi.Request{
			IsReadOnly: requestIsReadOnly,
			GetURL:     requestGetURL,
			GetMethod:  requestGetMethod,
			SetURL:     requestSetURL,
		}
	})
	RequestCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.Request]) cef.Request {
		return &requestAdapter{CRef: ref}
	})
}

func requestIsReadOnly(self *capi.Request) int32 {
	defer wrapper.Recover("Request", "IsReadOnly")
	r, ok := receiver(RequestCppToC, self, "Request", "IsReadOnly")
	if !ok {
		return 0
	}
	return capi.Bool(r.IsReadOnly())
}

func requestGetURL(self *capi.Request) capi.String {
	defer wrapper.Recover("Request", "GetURL")
	r, ok := receiver(RequestCppToC, self, "Request", "GetURL")
	if !ok {
		return capi.String{}
	}
	return newString("Request", "GetURL", r.URL())
}

func requestGetMethod(self *capi.Request) capi.String {
	defer wrapper.Recover("Request", "GetMethod")
	r, ok := receiver(RequestCppToC, self, "Request", "GetMethod")
	if !ok {
		return capi.String{}
	}
	return newString("Request", "GetMethod", r.Method())
}

func requestSetURL(self *capi.Request, url *capi.String) {
	defer wrapper.Recover("Request", "SetURL")
	r, ok := receiver(RequestCppToC, self, "Request", "SetURL")
	if !ok {
		return
	}
	if url == nil {
		wrapper.MissingParam("Request", "SetURL", "url")
		return
	}
	r.SetURL(readString(url))
}

type requestAdapter struct {
	*wrapper.CRef[capi.Request]
}

func (a *requestAdapter) IsReadOnly() bool {
	defer a.Exit("Request", "IsReadOnly")
	s := a.Struct()
	if s.IsReadOnly == nil {
		return false
	}
	return isTrue(s.IsReadOnly(s))
}

func (a *requestAdapter) URL() string {
	defer a.Exit("Request", "GetURL")
	s := a.Struct()
	if s.GetURL == nil {
		return ""
	}
	return takeString(s.GetURL(s))
}

func (a *requestAdapter) Method() string {
	defer a.Exit("Request", "GetMethod")
	s := a.Struct()
	if s.GetMethod == nil {
		return ""
	}
	return takeString(s.GetMethod(s))
}

func (a *requestAdapter) SetURL(url string) {
	defer a.Exit("Request", "SetURL")
	s := a.Struct()
	if s.SetURL == nil {
		return
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	s.SetURL(s, sc.String(url))
}
