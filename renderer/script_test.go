package renderer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wippyai/cef-bridge/cef"
)

func newTestContext(t *testing.T) *ScriptContext {
	t.Helper()
	b := &testBrowser{id: 1}
	c, err := newScriptContext(b, &testFrame{id: 1, url: "https://example.com/app.js", browser: b})
	require.NoError(t, err)
	t.Cleanup(c.release)
	return c
}

func TestEval(t *testing.T) {
	c := newTestContext(t)

	tests := []struct {
		code string
		want string
	}{
		{"1 + 2", "3"},
		{"'a' + 'b'", "ab"},
		{"[1, 2, 3].join('-')", "1-2-3"},
		{"undefined", "undefined"},
		{"({}).toString()", "[object Object]"},
		{"'<tag> & \"quotes\"'", "<tag> & \"quotes\""},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, exc, ok := c.Eval(tt.code)
			require.True(t, ok)
			require.Nil(t, exc)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEvalGlobalScope(t *testing.T) {
	c := newTestContext(t)

	_, _, ok := c.Eval("var counter = 1; function next() { return ++counter; }")
	require.True(t, ok)
	got, _, ok := c.Eval("next(); next()")
	require.True(t, ok)
	require.Equal(t, "3", got)
}

func TestEvalException(t *testing.T) {
	c := newTestContext(t)

	tests := []struct {
		name string
		code string
		want string
	}{
		{"error", "throw new Error('boom')", "Error: boom"},
		{"type error", "throw new TypeError('bad type')", "TypeError: bad type"},
		{"value", "throw 42", "Uncaught 42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, exc, ok := c.Eval(tt.code)
			require.False(t, ok)
			require.Empty(t, got)
			require.NotNil(t, exc)
			require.Equal(t, tt.want, exc.Message())
			require.Equal(t, "https://example.com/app.js", exc.ScriptResourceName())
		})
	}
}

func TestEvalSyntaxError(t *testing.T) {
	c := newTestContext(t)

	_, exc, ok := c.Eval("1 +")
	require.False(t, ok)
	require.Contains(t, exc.Message(), "SyntaxError")

	got, _, ok := c.Eval("2 * 21")
	require.True(t, ok)
	require.Equal(t, "42", got)
}

func TestEvalAfterRelease(t *testing.T) {
	c := newTestContext(t)
	require.True(t, c.IsValid())

	c.release()
	c.release()
	require.False(t, c.IsValid())

	_, exc, ok := c.Eval("1")
	require.False(t, ok)
	require.NotEmpty(t, exc.Message())
}

func TestScriptContextIsSame(t *testing.T) {
	b := &testBrowser{id: 1}
	c1 := newTestContext(t)
	c2 := newTestContext(t)
	other, err := newScriptContext(b, &testFrame{id: 2, browser: b})
	require.NoError(t, err)
	t.Cleanup(other.release)

	require.True(t, c1.IsSame(c1))
	require.False(t, c1.IsSame(c2))
	require.False(t, c1.IsSame(nil))
	require.Same(t, c1.Browser(), c1.Frame().Browser())

	// A foreign context compares by frame.
	require.True(t, c1.IsSame(foreignContext{c2}))
	require.False(t, c1.IsSame(foreignContext{other}))

	c2.release()
	require.False(t, c1.IsSame(foreignContext{c2}))
}

type foreignContext struct{ *ScriptContext }

func TestParseStack(t *testing.T) {
	st := parseStack("Error: boom\n    at f (page.js:3:9)\n    at <eval> (page.js:5)\n    at native\n")

	require.True(t, st.IsValid())
	require.Equal(t, 3, st.FrameCount())
	require.Equal(t, "f (page.js:3:9)", st.FrameText(0))
	require.Equal(t, "<eval> (page.js:5)", st.FrameText(1))
	require.Equal(t, "native", st.FrameText(2))
	require.Empty(t, st.FrameText(3))
	require.Empty(t, st.FrameText(-1))

	require.Equal(t, []stackFrame{
		{text: "f (page.js:3:9)", line: 3, column: 9},
		{text: "<eval> (page.js:5)", line: 5},
		{text: "native"},
	}, st.frames)

	empty := parseStack("")
	require.True(t, empty.IsValid())
	require.Zero(t, empty.FrameCount())

	var missing *StackTrace
	require.False(t, missing.IsValid())
}

func TestStackTraceLimit(t *testing.T) {
	st := parseStack("at a (x:1:1)\nat b (x:2:1)\nat c (x:3:1)")

	require.Equal(t, 2, st.limit(2).FrameCount())
	require.Equal(t, "b (x:2:1)", st.limit(2).FrameText(1))
	require.Same(t, st, st.limit(3))
	require.Same(t, st, st.limit(10))
	require.Zero(t, st.limit(0).FrameCount())
}

func TestException(t *testing.T) {
	c := newTestContext(t)
	code := "var a = 1;\n  throw new Error(a);\n"
	res := evalResult{Message: "Error: 1"}

	exc := c.exception(code, res, parseStack("    at <eval> (app.js:2:3)"))
	require.Equal(t, "Error: 1", exc.Message())
	require.Equal(t, 2, exc.LineNumber())
	require.Equal(t, "  throw new Error(a);", exc.SourceLine())
	require.Equal(t, 2, exc.StartColumn())
	require.Equal(t, 3, exc.EndColumn())

	// Locations outside the source leave the line empty.
	exc = c.exception(code, res, parseStack("at f (other.js:40:1)"))
	require.Equal(t, 40, exc.LineNumber())
	require.Empty(t, exc.SourceLine())

	exc = c.exception(code, res, parseStack(""))
	require.Zero(t, exc.LineNumber())
	require.Zero(t, exc.StartColumn())
}

func TestNode(t *testing.T) {
	tests := []struct {
		node    *Node
		element bool
	}{
		{&Node{NodeType: cef.DOMNodeElement, NodeName: "INPUT", Editable: true}, true},
		{&Node{NodeType: cef.DOMNodeText, NodeName: "#text", NodeValue: "hi"}, false},
		{&Node{}, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.element, tt.node.IsElement(), tt.node.NodeName)
		require.Equal(t, tt.node.NodeType, tt.node.Type())
		require.Equal(t, tt.node.NodeName, tt.node.Name())
		require.Equal(t, tt.node.NodeValue, tt.node.Value())
		require.Equal(t, tt.node.Editable, tt.node.IsEditable())
	}
}
