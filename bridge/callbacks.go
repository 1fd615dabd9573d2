package bridge

import (
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/transcoder"
	"github.com/wippyai/cef-bridge/wrapper"
)

var (
	AuthCallbackCppToC = wrapper.NewCppToC[cef.AuthCallback, capi.AuthCallback]("AuthCallback", wrapper.TypeAuthCallback)
	AuthCallbackCToCpp = wrapper.NewCToCpp[cef.AuthCallback, capi.AuthCallback]("AuthCallback", wrapper.TypeAuthCallback)

	RequestCallbackCppToC = wrapper.NewCppToC[cef.RequestCallback, capi.RequestCallback]("RequestCallback", wrapper.TypeRequestCallback)
	RequestCallbackCToCpp = wrapper.NewCToCpp[cef.RequestCallback, capi.RequestCallback]("RequestCallback", wrapper.TypeRequestCallback)

	JSDialogCallbackCppToC = wrapper.NewCppToC[cef.JSDialogCallback, capi.JSDialogCallback]("JSDialogCallback", wrapper.TypeJSDialogCallback)
	JSDialogCallbackCToCpp = wrapper.NewCToCpp[cef.JSDialogCallback, capi.JSDialogCallback]("JSDialogCallback", wrapper.TypeJSDialogCallback)
)

func init() {
	AuthCallbackCppToC.SetBuilder(func(cef.AuthCallback) *capi.AuthCallback {
		return &capi.AuthCallback{Cont: authCallbackCont, Cancel: authCallbackCancel}
	})
	AuthCallbackCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.AuthCallback]) cef.AuthCallback {
		return &authCallbackAdapter{CRef: ref}
	})

	RequestCallbackCppToC.SetBuilder(func(cef.RequestCallback) *capi.RequestCallback {
		return &capi.RequestCallback{Cont: requestCallbackCont, Cancel: requestCallbackCancel}
	})
	RequestCallbackCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.RequestCallback]) cef.RequestCallback {
		return &requestCallbackAdapter{CRef: ref}
	})

	JSDialogCallbackCppToC.SetBuilder(func(cef.JSDialogCallback) *capi.JSDialogCallback {
		return &capi.JSDialogCallback{Cont: jsDialogCallbackCont}
	})
	JSDialogCallbackCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.JSDialogCallback]) cef.JSDialogCallback {
		return &jsDialogCallbackAdapter{CRef: ref}
	})
}

func authCallbackCont(self *capi.AuthCallback, username, password *capi.String) {
	defer wrapper.Recover("AuthCallback", "Continue")
	cb, ok := receiver(AuthCallbackCppToC, self, "AuthCallback", "Continue")
	if !ok {
		return
	}
	if username == nil {
		wrapper.MissingParam("AuthCallback", "Continue", "username")
		return
	}
	if password == nil {
		wrapper.MissingParam("AuthCallback", "Continue", "password")
		return
	}
	cb.Continue(readString(username), readString(password))
}

func authCallbackCancel(self *capi.AuthCallback) {
	defer wrapper.Recover("AuthCallback", "Cancel")
	cb, ok := receiver(AuthCallbackCppToC, self, "AuthCallback", "Cancel")
	if !ok {
		return
	}
	cb.Cancel()
}

type authCallbackAdapter struct {
	*wrapper.CRef[capi.AuthCallback]
}

func (a *authCallbackAdapter) Continue(username, password string) {
	defer a.Exit("AuthCallback", "Continue")
	s := a.Struct()
	if s.Cont == nil {
		return
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	s.Cont(s, sc.String(username), sc.String(password))
}

func (a *authCallbackAdapter) Cancel() {
	defer a.Exit("AuthCallback", "Cancel")
	s := a.Struct()
	if s.Cancel == nil {
		return
	}
	s.Cancel(s)
}

func requestCallbackCont(self *capi.RequestCallback, allow int32) {
	defer wrapper.Recover("RequestCallback", "Continue")
	cb, ok := receiver(RequestCallbackCppToC, self, "RequestCallback", "Continue")
	if !ok {
		return
	}
	cb.Continue(isTrue(allow))
}

func requestCallbackCancel(self *capi.RequestCallback) {
	defer wrapper.Recover("RequestCallback", "Cancel")
	cb, ok := receiver(RequestCallbackCppToC, self, "RequestCallback", "Cancel")
	if !ok {
		return
	}
	cb.Cancel()
}

type requestCallbackAdapter struct {
	*wrapper.CRef[capi.RequestCallback]
}

func (a *requestCallbackAdapter) Continue(allow bool) {
	defer a.Exit("RequestCallback", "Continue")
	s := a.Struct()
	if s.Cont == nil {
		return
	}
	s.Cont(s, capi.Bool(allow))
}

func (a *requestCallbackAdapter) Cancel() {
	defer a.Exit("RequestCallback", "Cancel")
	s := a.Struct()
	if s.Cancel == nil {
		return
	}
	s.Cancel(s)
}

func jsDialogCallbackCont(self *capi.JSDialogCallback, success int32, userInput *capi.String) {
	defer wrapper.Recover("JSDialogCallback", "Continue")
	cb, ok := receiver(JSDialogCallbackCppToC, self, "JSDialogCallback", "Continue")
	if !ok {
		return
	}
	cb.Continue(isTrue(success), readString(userInput))
}

type jsDialogCallbackAdapter struct {
	*wrapper.CRef[capi.JSDialogCallback]
}

func (a *jsDialogCallbackAdapter) Continue(success bool, userInput string) {
	defer a.Exit("JSDialogCallback", "Continue")
	s := a.Struct()
	if s.Cont == nil {
		return
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	s.Cont(s, capi.Bool(success), sc.String(userInput))
}
