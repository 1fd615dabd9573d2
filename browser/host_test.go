package browser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wippyai/cef-bridge/browser/osr"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/content"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestHost(t *testing.T, client *testClient) (*Context, *Host, *fakeWebContents) {
	t.Helper()
	useHeap(t)
	c := initContext(t, &Config{})
	wc := newFakeWebContents()
	h, err := c.CreateBrowser(wrapClient(client), wc)
	require.NoError(t, err)
	return c, h, wc
}

func TestCreateBrowser(t *testing.T) {
	c, h1, _ := newTestHost(t, &testClient{})
	h2, err := c.CreateBrowser(nil, newFakeWebContents())
	require.NoError(t, err)

	require.Equal(t, int32(1), h1.Identifier())
	require.Equal(t, int32(2), h2.Identifier())
	require.Equal(t, []*Host{h1, h2}, c.Browsers())

	got, ok := c.Browser(2)
	require.True(t, ok)
	require.Same(t, h2, got)

	require.True(t, h1.IsSame(h1))
	require.False(t, h1.IsSame(h2))
	require.False(t, h1.IsSame(nil))

	h2.Close()
	h2.Close()
	_, ok = c.Browser(2)
	require.False(t, ok)
	require.Equal(t, []*Host{h1}, c.Browsers())

	_, err = c.CreateBrowser(nil, nil)
	require.Error(t, err)
}

func TestHostNavigation(t *testing.T) {
	load := &recordingLoadHandler{}
	_, h, wc := newTestHost(t, &testClient{load: load})

	h.DidStartLoading()
	h.DidStartNavigation(&fakeNav{url: "https://example.com/", frameID: 10, main: true, transition: int(cef.TTLink)})
	h.DidStartNavigation(&fakeNav{url: "https://ads.example/", frameID: 11, frameName: "ads"})
	h.DidFinishLoad(10, "https://example.com/", 200)
	h.DidFailLoad(11, "https://ads.example/", -105, "net::ERR_NAME_NOT_RESOLVED")
	require.True(t, h.IsLoading())
	h.DidStopLoading()
	require.False(t, h.IsLoading())

	require.Equal(t, []string{
		"state 1 true true false",
		"start 1 10 https://example.com/ true 0",
		"start 1 11 https://ads.example/ false 0",
		"end 1 10 https://example.com/ 200",
		"error 1 11 -105 net::ERR_NAME_NOT_RESOLVED https://ads.example/",
		"state 1 false true false",
	}, load.events)

	require.Equal(t, []string{"", "ads"}, h.FrameNames())
	main := h.MainFrame()
	require.NotNil(t, main)
	require.Equal(t, int64(10), main.Identifier())
	require.True(t, main.IsMain())
	require.Same(t, h, main.Browser())

	f, ok := h.Frame(11)
	require.True(t, ok)
	require.False(t, f.IsMain())
	f.LoadURL("https://other.example/")
	require.Equal(t, []loadCall{{frameID: 11, url: "https://other.example/"}}, wc.loads)

	// A new main frame replaces the old one.
	h.DidStartNavigation(&fakeNav{url: "https://example.com/next", frameID: 12, main: true})
	require.Equal(t, int64(12), h.MainFrame().Identifier())
	require.False(t, main.IsMain())

	h.Close()
	require.False(t, f.IsValid())
	f.LoadURL("https://ignored.example/")
	require.Len(t, wc.loads, 1)
}

func TestHostWithoutClient(t *testing.T) {
	useHeap(t)
	c := initContext(t, &Config{})
	h, err := c.CreateBrowser(nil, newFakeWebContents())
	require.NoError(t, err)

	require.Nil(t, h.MainFrame())
	h.DidStartLoading()
	h.DidStartNavigation(&fakeNav{url: "https://example.com/", frameID: 1, main: true})
	h.DraggableRegionsChanged([]content.DraggableRegion{{Draggable: true}})
	h.RenderProcessGone(content.TerminationCrashed)
	require.False(t, h.ProcessMessageReceived(content.Message{Name: "m"}))
	require.False(t, h.DragEnter(content.DropData{URL: "https://x/"}, 1))
	require.True(t, h.RunJavaScriptDialog("https://x/", content.DialogAlert, "hi", "", func(bool, string) {
		t.Fatal("suppressed dialog ran its callback")
	}))
}

func TestSendProcessMessage(t *testing.T) {
	useHeap(t)
	core, logs := observer.New(zap.WarnLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })

	_, h, wc := newTestHost(t, &testClient{})
	msg := cef.NewProcessMessage("ping", "a", int32(7))

	require.True(t, h.SendProcessMessage(cef.PIDRenderer, msg))
	require.Equal(t, []content.Message{{Name: "ping", Args: []any{"a", int32(7)}}}, wc.sent)

	require.False(t, h.SendProcessMessage(cef.PIDBrowser, msg))
	require.Equal(t, 1, logs.FilterMessage("process message to invalid target").Len())
	require.False(t, h.SendProcessMessage(cef.PIDRenderer, nil))

	h.Close()
	require.False(t, h.SendProcessMessage(cef.PIDRenderer, msg))
	require.Len(t, wc.sent, 1)
}

func TestProcessMessageReceived(t *testing.T) {
	client := &testClient{}
	_, h, _ := newTestHost(t, client)

	require.True(t, h.ProcessMessageReceived(content.Message{Name: "handled", Args: []any{"x", int32(1)}}))
	require.False(t, h.ProcessMessageReceived(content.Message{Name: "other"}))

	require.Equal(t, []string{"renderer:handled", "renderer:other"}, client.messages)
	require.Equal(t, []any{"x", int32(1)}, client.args[0])
	require.Empty(t, client.args[1])
}

func TestDrag(t *testing.T) {
	drag := &recordingDragHandler{cancel: true}
	_, h, _ := newTestHost(t, &testClient{drag: drag})

	require.True(t, h.DragEnter(content.DropData{URL: "https://link/", FileNames: []string{"a.txt", "b.txt"}}, 1))
	require.Equal(t, []string{"https://link/"}, drag.links)
	require.Equal(t, [][]string{{"a.txt", "b.txt"}}, drag.files)

	h.DraggableRegionsChanged([]content.DraggableRegion{
		{Bounds: content.Rect{X: 0, Y: 0, Width: 100, Height: 30}, Draggable: true},
		{Bounds: content.Rect{X: 80, Y: 0, Width: 20, Height: 30}},
	})
	require.Equal(t, []cef.DraggableRegion{
		{Bounds: cef.Rect{Width: 100, Height: 30}, Draggable: true},
		{Bounds: cef.Rect{X: 80, Width: 20, Height: 30}},
	}, drag.regions)
}

func TestDragData(t *testing.T) {
	d := &dragData{data: content.DropData{Fragment: "<b>x</b>", FileNames: []string{"f"}}}
	require.False(t, d.IsLink())
	require.True(t, d.IsFragment())
	require.True(t, d.IsFile())
	require.Equal(t, "<b>x</b>", d.FragmentText())

	names := d.FileNames()
	names[0] = "changed"
	require.Equal(t, []string{"f"}, d.FileNames())
}

func TestRenderProcessGone(t *testing.T) {
	tests := []struct {
		status content.TerminationStatus
		want   []cef.TerminationStatus
	}{
		{content.TerminationNormal, nil},
		{content.TerminationAbnormal, []cef.TerminationStatus{cef.TSAbnormalTermination}},
		{content.TerminationKilled, []cef.TerminationStatus{cef.TSProcessWasKilled}},
		{content.TerminationCrashed, []cef.TerminationStatus{cef.TSProcessCrashed}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			rh := &recordingRequestHandler{}
			_, h, _ := newTestHost(t, &testClient{request: rh})
			h.DidStartLoading()
			h.RenderProcessGone(tt.status)
			require.Equal(t, tt.want, rh.terminated)
			require.False(t, h.IsLoading())
		})
	}
}

func TestAuthRequired(t *testing.T) {
	rh := &recordingRequestHandler{authUser: "alice"}
	_, h, _ := newTestHost(t, &testClient{request: rh})

	type answer struct {
		user, pass string
		ok         bool
	}
	var got []answer
	record := func(u, p string, ok bool) { got = append(got, answer{u, p, ok}) }

	require.True(t, h.AuthRequired(5, true, "proxy.example", 3128, "corp", "basic", record))
	require.Equal(t, []answer{{"alice", "secret", true}}, got)
	require.Equal(t, []string{"5 true proxy.example:3128 corp basic"}, rh.auth)

	rh.authUser = ""
	require.False(t, h.AuthRequired(5, false, "site.example", 443, "", "digest", record))
	require.Equal(t, answer{"", "", false}, got[1])
}

func TestAuthRequiredWithoutHandler(t *testing.T) {
	_, h, _ := newTestHost(t, &testClient{})
	var ok = true
	require.False(t, h.AuthRequired(1, false, "x", 80, "", "basic", func(_, _ string, o bool) { ok = o }))
	require.False(t, ok)
}

func TestJavaScriptDialog(t *testing.T) {
	dh := &recordingDialogHandler{handle: true}
	_, h, _ := newTestHost(t, &testClient{dialog: dh})

	var results []string
	suppressed := h.RunJavaScriptDialog("https://example.com", content.DialogPrompt, "name?", "bob",
		func(ok bool, input string) {
			if ok {
				results = append(results, "ok:"+input)
			} else {
				results = append(results, "cancel")
			}
		})
	require.False(t, suppressed)
	require.Equal(t, []string{"https://example.com 2 name? bob"}, dh.messages)

	cb := dh.take()
	require.NotNil(t, cb)
	cb.Continue(true, "alice")
	cb.Continue(false, "")
	require.Equal(t, []string{"ok:alice"}, results)
	require.Equal(t, 1, dh.closed)
}

func TestJavaScriptDialogUnhandled(t *testing.T) {
	dh := &recordingDialogHandler{}
	_, h, _ := newTestHost(t, &testClient{dialog: dh})

	suppressed := h.RunJavaScriptDialog("https://example.com", content.DialogAlert, "hi", "", func(bool, string) {
		t.Fatal("callback ran for a suppressed dialog")
	})
	require.True(t, suppressed)
	require.Len(t, dh.messages, 1)
}

func TestBeforeUnloadDialog(t *testing.T) {
	dh := &recordingDialogHandler{handle: true}
	_, h, _ := newTestHost(t, &testClient{dialog: dh})

	var results []bool
	h.RunBeforeUnloadDialog(true, func(ok bool, _ string) { results = append(results, ok) })
	require.Equal(t, []string{beforeUnloadMessage}, dh.messages)
	require.Equal(t, []bool{true}, dh.unload)
	require.Empty(t, results)

	// A second dialog while one runs is allowed straight away.
	h.RunBeforeUnloadDialog(false, func(ok bool, _ string) { results = append(results, ok) })
	require.Equal(t, []bool{true}, results)

	dh.take().Continue(false, "")
	require.Equal(t, []bool{true, false}, results)
	require.Equal(t, 1, dh.closed)
}

func TestBeforeUnloadDialogUnhandled(t *testing.T) {
	_, h, _ := newTestHost(t, &testClient{dialog: &recordingDialogHandler{}})

	var results []bool
	h.RunBeforeUnloadDialog(false, func(ok bool, _ string) { results = append(results, ok) })
	require.Equal(t, []bool{true}, results)
}

func TestCancelDialogs(t *testing.T) {
	dh := &recordingDialogHandler{handle: true}
	_, h, _ := newTestHost(t, &testClient{dialog: dh})

	ran := false
	h.RunJavaScriptDialog("https://example.com", content.DialogConfirm, "sure?", "", func(bool, string) { ran = true })
	cb := dh.take()

	h.CancelDialogs()
	require.Equal(t, 1, dh.resets)

	cb.Continue(true, "")
	require.False(t, ran)
	require.Equal(t, 0, dh.closed)
}

func TestCreateView(t *testing.T) {
	render := &recordingRenderHandler{}
	_, h, _ := newTestHost(t, &testClient{render: render})

	w := &fakeWidget{}
	v := h.CreateView(w, &osr.Config{Transparent: true})
	require.Same(t, v, h.View())
	require.Equal(t, content.Size{Width: 640, Height: 480}, v.Size())
	require.Equal(t, []int32{1}, render.browsers[:1])
	require.Equal(t, uint32(0), v.BackgroundColor())

	v.UpdateCursor(content.CursorHand)
	require.Equal(t, []cef.CursorType{cef.CursorHand}, render.cursors)

	// Replacing the view destroys the old one.
	v2 := h.CreateView(&fakeWidget{}, nil)
	require.True(t, v.IsDestroyed())

	h.RenderProcessGone(content.TerminationCrashed)
	require.True(t, v2.IsDestroyed())

	h.Close()
	require.Nil(t, h.View())
}
