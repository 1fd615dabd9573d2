package renderer

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/errors"
	"modernc.org/quickjs"
)

// evalWrapper runs source with an indirect eval so it executes in global
// scope, and reports the outcome as JSON. %s is the source as a JSON string.
const evalWrapper = `(function (src) {
	try {
		var r = (0, eval)(src);
		return JSON.stringify({ok: true, value: String(r)});
	} catch (e) {
		var isErr = e instanceof Error;
		return JSON.stringify({
			ok: false,
			message: isErr ? e.name + ": " + e.message : "Uncaught " + String(e),
			stack: isErr && e.stack ? String(e.stack) : ""
		});
	}
})(%s)`

type evalResult struct {
	OK      bool   `json:"ok"`
	Value   string `json:"value"`
	Message string `json:"message"`
	Stack   string `json:"stack"`
}

// ScriptContext is a frame's script context. It implements cef.V8Context.
// A quickjs VM is not safe for concurrent use; calls are serialized.
type ScriptContext struct {
	browser cef.Browser
	frame   cef.Frame

	mu       sync.Mutex
	vm       *quickjs.VM
	released bool
}

var _ cef.V8Context = (*ScriptContext)(nil)

func newScriptContext(browser cef.Browser, frame cef.Frame) (*ScriptContext, error) {
	vm, err := quickjs.NewVM()
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEngine, errors.KindAllocation, err, "create script context")
	}
	return &ScriptContext{browser: browser, frame: frame, vm: vm}, nil
}

// IsValid reports whether the context has not been released.
func (c *ScriptContext) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.released
}

func (c *ScriptContext) Browser() cef.Browser { return c.browser }
func (c *ScriptContext) Frame() cef.Frame     { return c.frame }

// IsSame compares contexts by frame. A context that crossed the boundary
// comes back as an adapter.
func (c *ScriptContext) IsSame(that cef.V8Context) bool {
	if other, ok := that.(*ScriptContext); ok {
		return other == c
	}
	if that == nil || !that.IsValid() || !c.IsValid() {
		return false
	}
	f := that.Frame()
	return f != nil && f.Identifier() == c.frame.Identifier()
}

// Eval runs code in the context's global scope. The result is converted
// with String(). A thrown value is returned as the exception.
func (c *ScriptContext) Eval(code string) (string, cef.V8Exception, bool) {
	res, trace, err := c.run(code)
	if err != nil {
		return "", &Exception{message: err.Error(), resource: c.resourceName()}, false
	}
	if !res.OK {
		return "", c.exception(code, res, trace), false
	}
	return res.Value, nil, true
}

func (c *ScriptContext) run(code string) (evalResult, *StackTrace, error) {
	src, err := json.Marshal(code)
	if err != nil {
		return evalResult{}, nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return evalResult{}, nil, errors.Closed(errors.PhaseEngine, "script context")
	}
	out, err := c.vm.Eval(strings.Replace(evalWrapper, "%s", string(src), 1), quickjs.EvalGlobal)
	if err != nil {
		return evalResult{}, nil, err
	}
	s, ok := out.(string)
	if !ok {
		return evalResult{}, nil, errors.New(errors.PhaseEngine, errors.KindUnexpectedType).
			Detail("script result is %T", out).
			Build()
	}

	var res evalResult
	if err := json.Unmarshal([]byte(s), &res); err != nil {
		return evalResult{}, nil, err
	}
	return res, parseStack(res.Stack), nil
}

func (c *ScriptContext) resourceName() string {
	if c.frame == nil {
		return ""
	}
	return c.frame.URL()
}

func (c *ScriptContext) exception(code string, res evalResult, trace *StackTrace) *Exception {
	e := &Exception{message: res.Message, resource: c.resourceName()}
	if top, ok := trace.top(); ok {
		e.line = top.line
		if top.column > 0 {
			e.start = top.column - 1
			e.end = top.column
		}
	}
	if e.line > 0 {
		lines := strings.Split(code, "\n")
		if e.line <= len(lines) {
			e.sourceLine = lines[e.line-1]
		}
	}
	return e
}

// release closes the VM. Later calls fail as on a released context.
func (c *ScriptContext) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return
	}
	c.released = true
	c.vm.Close()
}

// Exception is an uncaught script exception. It implements
// cef.V8Exception.
type Exception struct {
	message    string
	sourceLine string
	resource   string
	line       int
	start      int
	end        int
}

var _ cef.V8Exception = (*Exception)(nil)

func (e *Exception) Message() string            { return e.message }
func (e *Exception) SourceLine() string         { return e.sourceLine }
func (e *Exception) ScriptResourceName() string { return e.resource }
func (e *Exception) LineNumber() int            { return e.line }
func (e *Exception) StartColumn() int           { return e.start }
func (e *Exception) EndColumn() int             { return e.end }

type stackFrame struct {
	text   string
	line   int
	column int
}

// StackTrace is the script stack captured with an exception. It
// implements cef.V8StackTrace.
type StackTrace struct {
	frames []stackFrame
}

var _ cef.V8StackTrace = (*StackTrace)(nil)

func (s *StackTrace) IsValid() bool   { return s != nil }
func (s *StackTrace) FrameCount() int { return len(s.frames) }

// FrameText returns the frame description, or "" out of range.
func (s *StackTrace) FrameText(index int) string {
	if index < 0 || index >= len(s.frames) {
		return ""
	}
	return s.frames[index].text
}

func (s *StackTrace) top() (stackFrame, bool) {
	if s == nil || len(s.frames) == 0 {
		return stackFrame{}, false
	}
	return s.frames[0], true
}

// limit keeps at most n frames.
func (s *StackTrace) limit(n int) *StackTrace {
	if n < len(s.frames) {
		return &StackTrace{frames: s.frames[:n]}
	}
	return s
}

var stackLocation = regexp.MustCompile(`:(\d+)(?::(\d+))?\)?$`)

// parseStack reads an Error.stack string: one "at ..." line per frame.
func parseStack(stack string) *StackTrace {
	st := &StackTrace{}
	for _, line := range strings.Split(stack, "\n") {
		line = strings.TrimSpace(line)
		text, ok := strings.CutPrefix(line, "at ")
		if !ok {
			continue
		}
		f := stackFrame{text: text}
		if m := stackLocation.FindStringSubmatch(text); m != nil {
			f.line, _ = strconv.Atoi(m[1])
			if m[2] != "" {
				f.column, _ = strconv.Atoi(m[2])
			}
		}
		st.frames = append(st.frames, f)
	}
	return st
}
