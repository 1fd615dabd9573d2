package bridge

import (
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/transcoder"
	"github.com/wippyai/cef-bridge/wrapper"
)

var (
	V8ContextCppToC = wrapper.NewCppToC[cef.V8Context, capi.V8Context]("V8Context", wrapper.TypeV8Context)
	V8ContextCToCpp = wrapper.NewCToCpp[cef.V8Context, capi.V8Context]("V8Context", wrapper.TypeV8Context)

	V8ExceptionCppToC = wrapper.NewCppToC[cef.V8Exception, capi.V8Exception]("V8Exception", wrapper.TypeV8Exception)
	V8ExceptionCToCpp = wrapper.NewCToCpp[cef.V8Exception, capi.V8Exception]("V8Exception", wrapper.TypeV8Exception)

	V8StackTraceCppToC = wrapper.NewCppToC[cef.V8StackTrace, capi.V8StackTrace]("V8StackTrace", wrapper.TypeV8StackTrace)
	V8StackTraceCToCpp = wrapper.NewCToCpp[cef.V8StackTrace, capi.V8StackTrace]("V8StackTrace", wrapper.TypeV8StackTrace)

	DOMNodeCppToC = wrapper.NewCppToC[cef.DOMNode, capi.DOMNode]("DOMNode", wrapper.TypeDOMNode)
	DOMNodeCToCpp = wrapper.NewCToCpp[cef.DOMNode, capi.DOMNode]("DOMNode", wrapper.TypeDOMNode)
)

func init() {
	V8ContextCppToC.SetBuilder(func(cef.V8Context) *capi.V8Context {
		return &capi.V8Context{
			IsValid:    v8ContextIsValid,
			GetBrowser: v8ContextGetBrowser,
			GetFrame:   v8ContextGetFrame,
			Eval:       v8ContextEval,
			IsSame:     v8ContextIsSame,
		}
	})
	V8ContextCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.V8Context]) cef.V8Context {
		return &v8ContextAdapter{CRef: ref}
	})

	V8ExceptionCppToC.SetBuilder(func(cef.V8Exception) *capi.V8Exception {
		return &capi.V8Exception{
			GetMessage:            v8ExceptionGetMessage,
			GetSourceLine:         v8ExceptionGetSourceLine,
			GetScriptResourceName: v8ExceptionGetScriptResourceName,
			GetLineNumber:         v8ExceptionGetLineNumber,
			GetStartColumn:        v8ExceptionGetStartColumn,
			GetEndColumn:          v8ExceptionGetEndColumn,
		}
	})
	V8ExceptionCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.V8Exception]) cef.V8Exception {
		return &v8ExceptionAdapter{CRef: ref}
	})

	V8StackTraceCppToC.SetBuilder(func(cef.V8StackTrace) *capi.V8StackTrace {
		return &capi.V8StackTrace{
			IsValid:       v8StackTraceIsValid,
			GetFrameCount: v8StackTraceGetFrameCount,
			GetFrameText:  v8StackTraceGetFrameText,
		}
	})
	V8StackTraceCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.V8StackTrace]) cef.V8StackTrace {
		return &v8StackTraceAdapter{CRef: ref}
	})

	DOMNodeCppToC.SetBuilder(func(cef.DOMNode) *capi.DOMNode {
		return &capi.DOMNode{
			GetType:    domNodeGetType,
			IsElement:  domNodeIsElement,
			IsEditable: domNodeIsEditable,
			GetName:    domNodeGetName,
			GetValue:   domNodeGetValue,
		}
	})
	DOMNodeCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.DOMNode]) cef.DOMNode {
		return &domNodeAdapter{CRef: ref}
	})
}

func v8ContextIsValid(self *capi.V8Context) int32 {
	defer wrapper.Recover("V8Context", "IsValid")
	c, ok := receiver(V8ContextCppToC, self, "V8Context", "IsValid")
	if !ok {
		return 0
	}
	return capi.Bool(c.IsValid())
}

func v8ContextGetBrowser(self *capi.V8Context) *capi.Browser {
	defer wrapper.Recover("V8Context", "GetBrowser")
	c, ok := receiver(V8ContextCppToC, self, "V8Context", "GetBrowser")
	if !ok {
		return nil
	}
	return BrowserCppToC.Wrap(c.Browser())
}

func v8ContextGetFrame(self *capi.V8Context) *capi.Frame {
	defer wrapper.Recover("V8Context", "GetFrame")
	c, ok := receiver(V8ContextCppToC, self, "V8Context", "GetFrame")
	if !ok {
		return nil
	}
	return FrameCppToC.Wrap(c.Frame())
}

func v8ContextEval(self *capi.V8Context, code *capi.String, retval *capi.String, exception **capi.V8Exception) int32 {
	defer wrapper.Recover("V8Context", "Eval")
	// An in-value left in the out slot is released before it is replaced.
	if exception != nil && *exception != nil {
		V8ExceptionCppToC.Unwrap(*exception)
		*exception = nil
	}
	c, ok := receiver(V8ContextCppToC, self, "V8Context", "Eval")
	if !ok {
		return 0
	}
	if code == nil {
		wrapper.MissingParam("V8Context", "Eval", "code")
		return 0
	}
	if retval == nil {
		wrapper.MissingParam("V8Context", "Eval", "retval")
		return 0
	}
	if exception == nil {
		wrapper.MissingParam("V8Context", "Eval", "exception")
		return 0
	}

	result, exc, ok := c.Eval(readString(code))
	copyString("V8Context", "Eval", retval, result)
	*exception = V8ExceptionCppToC.Wrap(exc)
	return capi.Bool(ok)
}

func v8ContextIsSame(self *capi.V8Context, that *capi.V8Context) int32 {
	defer wrapper.Recover("V8Context", "IsSame")
	other := V8ContextCppToC.Unwrap(that)
	c, ok := receiver(V8ContextCppToC, self, "V8Context", "IsSame")
	if !ok {
		return 0
	}
	if other == nil {
		wrapper.MissingParam("V8Context", "IsSame", "that")
		return 0
	}
	return capi.Bool(c.IsSame(other))
}

type v8ContextAdapter struct {
	*wrapper.CRef[capi.V8Context]
}

func (a *v8ContextAdapter) IsValid() bool {
	defer a.Exit("V8Context", "IsValid")
	s := a.Struct()
	if s.IsValid == nil {
		return false
	}
	return isTrue(s.IsValid(s))
}

func (a *v8ContextAdapter) Browser() cef.Browser {
	defer a.Exit("V8Context", "GetBrowser")
	s := a.Struct()
	if s.GetBrowser == nil {
		return nil
	}
	return BrowserCToCpp.Wrap(s.GetBrowser(s))
}

func (a *v8ContextAdapter) Frame() cef.Frame {
	defer a.Exit("V8Context", "GetFrame")
	s := a.Struct()
	if s.GetFrame == nil {
		return nil
	}
	return FrameCToCpp.Wrap(s.GetFrame(s))
}

func (a *v8ContextAdapter) Eval(code string) (string, cef.V8Exception, bool) {
	defer a.Exit("V8Context", "Eval")
	s := a.Struct()
	if s.Eval == nil {
		return "", nil, false
	}
	sc := transcoder.NewScratch()
	defer sc.Release()

	var retval capi.String
	var exc *capi.V8Exception
	ok := isTrue(s.Eval(s, sc.String(code), &retval, &exc))
	return takeString(retval), V8ExceptionCToCpp.Wrap(exc), ok
}

func (a *v8ContextAdapter) IsSame(that cef.V8Context) bool {
	defer a.Exit("V8Context", "IsSame")
	s := a.Struct()
	if s.IsSame == nil {
		return false
	}
	if wrapper.IsNil(that) {
		wrapper.MissingParam("V8Context", "IsSame", "that")
		return false
	}
	return isTrue(s.IsSame(s, V8ContextCToCpp.Unwrap(that)))
}

func v8ExceptionGetMessage(self *capi.V8Exception) capi.String {
	defer wrapper.Recover("V8Exception", "GetMessage")
	e, ok := receiver(V8ExceptionCppToC, self, "V8Exception", "GetMessage")
	if !ok {
		return capi.String{}
	}
	return newString("V8Exception", "GetMessage", e.Message())
}

func v8ExceptionGetSourceLine(self *capi.V8Exception) capi.String {
	defer wrapper.Recover("V8Exception", "GetSourceLine")
	e, ok := receiver(V8ExceptionCppToC, self, "V8Exception", "GetSourceLine")
	if !ok {
		return capi.String{}
	}
	return newString("V8Exception", "GetSourceLine", e.SourceLine())
}

func v8ExceptionGetScriptResourceName(self *capi.V8Exception) capi.String {
	defer wrapper.Recover("V8Exception", "GetScriptResourceName")
	e, ok := receiver(V8ExceptionCppToC, self, "V8Exception", "GetScriptResourceName")
	if !ok {
		return capi.String{}
	}
	return newString("V8Exception", "GetScriptResourceName", e.ScriptResourceName())
}

func v8ExceptionGetLineNumber(self *capi.V8Exception) int32 {
	defer wrapper.Recover("V8Exception", "GetLineNumber")
	e, ok := receiver(V8ExceptionCppToC, self, "V8Exception", "GetLineNumber")
	if !ok {
		return 0
	}
	return int32(e.LineNumber())
}

func v8ExceptionGetStartColumn(self *capi.V8Exception) int32 {
	defer wrapper.Recover("V8Exception", "GetStartColumn")
	e, ok := receiver(V8ExceptionCppToC, self, "V8Exception", "GetStartColumn")
	if !ok {
		return 0
	}
	return int32(e.StartColumn())
}

func v8ExceptionGetEndColumn(self *capi.V8Exception) int32 {
	defer wrapper.Recover("V8Exception", "GetEndColumn")
	e, ok := receiver(V8ExceptionCppToC, self, "V8Exception", "GetEndColumn")
	if !ok {
		return 0
	}
	return int32(e.EndColumn())
}

type v8ExceptionAdapter struct {
	*wrapper.CRef[capi.V8Exception]
}

func (a *v8ExceptionAdapter) Message() string {
	defer a.Exit("V8Exception", "GetMessage")
	s := a.Struct()
	if s.GetMessage == nil {
		return ""
	}
	return takeString(s.GetMessage(s))
}

func (a *v8ExceptionAdapter) SourceLine() string {
	defer a.Exit("V8Exception", "GetSourceLine")
	s := a.Struct()
	if s.GetSourceLine == nil {
		return ""
	}
	return takeString(s.GetSourceLine(s))
}

func (a *v8ExceptionAdapter) ScriptResourceName() string {
	defer a.Exit("V8Exception", "GetScriptResourceName")
	s := a.Struct()
	if s.GetScriptResourceName == nil {
		return ""
	}
	return takeString(s.GetScriptResourceName(s))
}

func (a *v8ExceptionAdapter) LineNumber() int {
	defer a.Exit("V8Exception", "GetLineNumber")
	s := a.Struct()
	if s.GetLineNumber == nil {
		return 0
	}
	return int(s.GetLineNumber(s))
}

func (a *v8ExceptionAdapter) StartColumn() int {
	defer a.Exit("V8Exception", "GetStartColumn")
	s := a.Struct()
	if s.GetStartColumn == nil {
		return 0
	}
	return int(s.GetStartColumn(s))
}

func (a *v8ExceptionAdapter) EndColumn() int {
	defer a.Exit("V8Exception", "GetEndColumn")
	s := a.Struct()
	if s.GetEndColumn == nil {
		return 0
	}
	return int(s.GetEndColumn(s))
}

func v8StackTraceIsValid(self *capi.V8StackTrace) int32 {
	defer wrapper.Recover("V8StackTrace", "IsValid")
	t, ok := receiver(V8StackTraceCppToC, self, "V8StackTrace", "IsValid")
	if !ok {
		return 0
	}
	return capi.Bool(t.IsValid())
}

func v8StackTraceGetFrameCount(self *capi.V8StackTrace) int32 {
	defer wrapper.Recover("V8StackTrace", "GetFrameCount")
	t, ok := receiver(V8StackTraceCppToC, self, "V8StackTrace", "GetFrameCount")
	if !ok {
		return 0
	}
	return int32(t.FrameCount())
}

func v8StackTraceGetFrameText(self *capi.V8StackTrace, index int32) capi.String {
	defer wrapper.Recover("V8StackTrace", "GetFrameText")
	t, ok := receiver(V8StackTraceCppToC, self, "V8StackTrace", "GetFrameText")
	if !ok {
		return capi.String{}
	}
	return newString("V8StackTrace", "GetFrameText", t.FrameText(int(index)))
}

type v8StackTraceAdapter struct {
	*wrapper.CRef[capi.V8StackTrace]
}

func (a *v8StackTraceAdapter) IsValid() bool {
	defer a.Exit("V8StackTrace", "IsValid")
	s := a.Struct()
	if s.IsValid == nil {
		return false
	}
	return isTrue(s.IsValid(s))
}

func (a *v8StackTraceAdapter) FrameCount() int {
	defer a.Exit("V8StackTrace", "GetFrameCount")
	s := a.Struct()
	if s.GetFrameCount == nil {
		return 0
	}
	return int(s.GetFrameCount(s))
}

func (a *v8StackTraceAdapter) FrameText(index int) string {
	defer a.Exit("V8StackTrace", "GetFrameText")
	s := a.Struct()
	if s.GetFrameText == nil {
		return ""
	}
	return takeString(s.GetFrameText(s, int32(index)))
}

func domNodeGetType(self *capi.DOMNode) int32 {
	defer wrapper.Recover("DOMNode", "GetType")
	n, ok := receiver(DOMNodeCppToC, self, "DOMNode", "GetType")
	if !ok {
		return int32(cef.DOMNodeUnsupported)
	}
	return int32(n.Type())
}

func domNodeIsElement(self *capi.DOMNode) int32 {
	defer wrapper.Recover("DOMNode", "IsElement")
	n, ok := receiver(DOMNodeCppToC, self, "DOMNode", "IsElement")
	if !ok {
		return 0
	}
	return capi.Bool(n.IsElement())
}

func domNodeIsEditable(self *capi.DOMNode) int32 {
	defer wrapper.Recover("DOMNode", "IsEditable")
	n, ok := receiver(DOMNodeCppToC, self, "DOMNode", "IsEditable")
	if !ok {
		return 0
	}
	return capi.Bool(n.IsEditable())
}

func domNodeGetName(self *capi.DOMNode) capi.String {
	defer wrapper.Recover("DOMNode", "GetName")
	n, ok := receiver(DOMNodeCppToC, self, "DOMNode", "GetName")
	if !ok {
		return capi.String{}
	}
	return newString("DOMNode", "GetName", n.Name())
}

func domNodeGetValue(self *capi.DOMNode) capi.String {
	defer wrapper.Recover("DOMNode", "GetValue")
	n, ok := receiver(DOMNodeCppToC, self, "DOMNode", "GetValue")
	if !ok {
		return capi.String{}
	}
	return newString("DOMNode", "GetValue", n.Value())
}

type domNodeAdapter struct {
	*wrapper.CRef[capi.DOMNode]
}

func (a *domNodeAdapter) Type() cef.DOMNodeType {
	defer a.Exit("DOMNode", "GetType")
	s := a.Struct()
	if s.GetType == nil {
		return cef.DOMNodeUnsupported
	}
	return cef.DOMNodeType(s.GetType(s))
}

func (a *domNodeAdapter) IsElement() bool {
	defer a.Exit("DOMNode", "IsElement")
	s := a.Struct()
	if s.IsElement == nil {
		return false
	}
	return isTrue(s.IsElement(s))
}

func (a *domNodeAdapter) IsEditable() bool {
	defer a.Exit("DOMNode", "IsEditable")
	s := a.Struct()
	if s.IsEditable == nil {
		return false
	}
	return isTrue(s.IsEditable(s))
}

func (a *domNodeAdapter) Name() string {
	defer a.Exit("DOMNode", "GetName")
	s := a.Struct()
	if s.GetName == nil {
		return ""
	}
	return takeString(s.GetName(s))
}

func (a *domNodeAdapter) Value() string {
	defer a.Exit("DOMNode", "GetValue")
	s := a.Struct()
	if s.GetValue == nil {
		return ""
	}
	return takeString(s.GetValue(s))
}
