package bridge

import (
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/transcoder"
	"github.com/wippyai/cef-bridge/wrapper"
)

var (
	ViewCppToC = wrapper.NewCppToC[cef.View, capi.View]("View", wrapper.TypeView)
	ViewCToCpp = wrapper.NewCToCpp[cef.View, capi.View]("View", wrapper.TypeView)

	PanelCppToC = wrapper.NewCppToC[cef.Panel, capi.Panel]("Panel", wrapper.TypePanel)
	PanelCToCpp = wrapper.NewCToCpp[cef.Panel, capi.Panel]("Panel", wrapper.TypePanel)

	WindowCppToC = wrapper.NewCppToC[cef.Window, capi.Window]("Window", wrapper.TypeWindow)
	WindowCToCpp = wrapper.NewCToCpp[cef.Window, capi.Window]("Window", wrapper.TypeWindow)
)

func init() {
	ViewCppToC.SetBuilder(func(cef.View) *capi.View {
		s := &capi.View{}
		fillView(s)
		return s
	})
	PanelCppToC.SetBuilder(func(cef.Panel) *capi.Panel {
		s := &capi.Panel{}
		fillPanel(s)
		return s
	})
	WindowCppToC.SetBuilder(func(cef.Window) *capi.Window {
		s := &capi.Window{
			Show:         windowShow,
			Hide:         windowHide,
			GetTitle:     windowGetTitle,
			SetTitle:     windowSetTitle,
			Close:        windowClose,
			IsClosed:     windowIsClosed,
			CenterWindow: windowCenterWindow,
		}
		fillPanel(&s.Panel)
		return s
	})

	ViewCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.View]) cef.View {
		return &viewAdapter{CRef: ref, viewCalls: viewCalls[capi.View]{ref}}
	})
	PanelCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.Panel]) cef.Panel {
		return &panelAdapter{CRef: ref, viewCalls: viewCalls[capi.Panel]{ref}, panelCalls: panelCalls[capi.Panel]{ref}}
	})
	WindowCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.Window]) cef.Window {
		return &windowAdapter{CRef: ref, viewCalls: viewCalls[capi.Window]{ref}, panelCalls: panelCalls[capi.Window]{ref}}
	})

	ViewCppToC.Derive(wrapper.TypePanel, func(base *capi.Base) cef.View {
		return PanelCppToC.Unwrap(capi.Cast[capi.Panel](base))
	})
	ViewCppToC.Derive(wrapper.TypeWindow, func(base *capi.Base) cef.View {
		return WindowCppToC.Unwrap(capi.Cast[capi.Window](base))
	})
	PanelCppToC.Derive(wrapper.TypeWindow, func(base *capi.Base) cef.Panel {
		return WindowCppToC.Unwrap(capi.Cast[capi.Window](base))
	})

	ViewCToCpp.Derive(wrapper.TypePanel, func(obj cef.View) *capi.View {
		return capi.Cast[capi.View](PanelCToCpp.Unwrap(obj.(cef.Panel)))
	})
	ViewCToCpp.Derive(wrapper.TypeWindow, func(obj cef.View) *capi.View {
		return capi.Cast[capi.View](WindowCToCpp.Unwrap(obj.(cef.Window)))
	})
	PanelCToCpp.Derive(wrapper.TypeWindow, func(obj cef.Panel) *capi.Panel {
		return capi.Cast[capi.Panel](WindowCToCpp.Unwrap(obj.(cef.Window)))
	})
}

func fillView(s *capi.View) {
	s.GetTypeString = viewGetTypeString
	s.GetID = viewGetID
	s.SetID = viewSetID
	s.GetSize = viewGetSize
	s.SetSize = viewSetSize
	s.IsVisible = viewIsVisible
	s.SetVisible = viewSetVisible
	s.GetParentView = viewGetParentView
}

func fillPanel(s *capi.Panel) {
	fillView(&s.View)
	s.GetChildViewCount = panelGetChildViewCount
	s.GetChildViewAt = panelGetChildViewAt
	s.AddChildView = panelAddChildView
}

func viewGetTypeString(self *capi.View) capi.String {
	defer wrapper.Recover("View", "GetTypeString")
	v, ok := receiver(ViewCppToC, self, "View", "GetTypeString")
	if !ok {
		return capi.String{}
	}
	return newString("View", "GetTypeString", v.TypeString())
}

func viewGetID(self *capi.View) int32 {
	defer wrapper.Recover("View", "GetID")
	v, ok := receiver(ViewCppToC, self, "View", "GetID")
	if !ok {
		return 0
	}
	return v.ID()
}

func viewSetID(self *capi.View, id int32) {
	defer wrapper.Recover("View", "SetID")
	v, ok := receiver(ViewCppToC, self, "View", "SetID")
	if !ok {
		return
	}
	v.SetID(id)
}

func viewGetSize(self *capi.View) capi.Size {
	defer wrapper.Recover("View", "GetSize")
	v, ok := receiver(ViewCppToC, self, "View", "GetSize")
	if !ok {
		return capi.Size{}
	}
	return fromSize(v.Size())
}

func viewSetSize(self *capi.View, size *capi.Size) {
	defer wrapper.Recover("View", "SetSize")
	v, ok := receiver(ViewCppToC, self, "View", "SetSize")
	if !ok {
		return
	}
	if size == nil {
		wrapper.MissingParam("View", "SetSize", "size")
		return
	}
	v.SetSize(toSize(*size))
}

func viewIsVisible(self *capi.View) int32 {
	defer wrapper.Recover("View", "IsVisible")
	v, ok := receiver(ViewCppToC, self, "View", "IsVisible")
	if !ok {
		return 0
	}
	return capi.Bool(v.IsVisible())
}

func viewSetVisible(self *capi.View, visible int32) {
	defer wrapper.Recover("View", "SetVisible")
	v, ok := receiver(ViewCppToC, self, "View", "SetVisible")
	if !ok {
		return
	}
	v.SetVisible(isTrue(visible))
}

func viewGetParentView(self *capi.View) *capi.View {
	defer wrapper.Recover("View", "GetParentView")
	v, ok := receiver(ViewCppToC, self, "View", "GetParentView")
	if !ok {
		return nil
	}
	return ViewCppToC.Wrap(v.ParentView())
}

func panelGetChildViewCount(self *capi.Panel) uint32 {
	defer wrapper.Recover("Panel", "GetChildViewCount")
	p, ok := receiver(PanelCppToC, self, "Panel", "GetChildViewCount")
	if !ok {
		return 0
	}
	return uint32(p.ChildViewCount())
}

func panelGetChildViewAt(self *capi.Panel, index int32) *capi.View {
	defer wrapper.Recover("Panel", "GetChildViewAt")
	p, ok := receiver(PanelCppToC, self, "Panel", "GetChildViewAt")
	if !ok {
		return nil
	}
	return ViewCppToC.Wrap(p.ChildViewAt(int(index)))
}

func panelAddChildView(self *capi.Panel, view *capi.View) {
	defer wrapper.Recover("Panel", "AddChildView")
	child := ViewCppToC.Unwrap(view)
	p, ok := receiver(PanelCppToC, self, "Panel", "AddChildView")
	if !ok {
		return
	}
	if child == nil {
		wrapper.MissingParam("Panel", "AddChildView", "view")
		return
	}
	p.AddChildView(child)
}

func windowShow(self *capi.Window) {
	defer wrapper.Recover("Window", "Show")
	w, ok := receiver(WindowCppToC, self, "Window", "Show")
	if !ok {
		return
	}
	w.Show()
}

func windowHide(self *capi.Window) {
	defer wrapper.Recover("Window", "Hide")
	w, ok := receiver(WindowCppToC, self, "Window", "Hide")
	if !ok {
		return
	}
	w.Hide()
}

func windowGetTitle(self *capi.Window) capi.String {
	defer wrapper.Recover("Window", "GetTitle")
	w, ok := receiver(WindowCppToC, self, "Window", "GetTitle")
	if !ok {
		return capi.String{}
	}
	return newString("Window", "GetTitle", w.Title())
}

func windowSetTitle(self *capi.Window, title *capi.String) {
	defer wrapper.Recover("Window", "SetTitle")
	w, ok := receiver(WindowCppToC, self, "Window", "SetTitle")
	if !ok {
		return
	}
	w.SetTitle(readString(title))
}

func windowClose(self *capi.Window) {
	defer wrapper.Recover("Window", "Close")
	w, ok := receiver(WindowCppToC, self, "Window", "Close")
	if !ok {
		return
	}
	w.Close()
}

func windowIsClosed(self *capi.Window) int32 {
	defer wrapper.Recover("Window", "IsClosed")
	w, ok := receiver(WindowCppToC, self, "Window", "IsClosed")
	if !ok {
		return 0
	}
	return capi.Bool(w.IsClosed())
}

func windowCenterWindow(self *capi.Window, size *capi.Size) {
	defer wrapper.Recover("Window", "CenterWindow")
	w, ok := receiver(WindowCppToC, self, "Window", "CenterWindow")
	if !ok {
		return
	}
	if size == nil {
		wrapper.MissingParam("Window", "CenterWindow", "size")
		return
	}
	w.CenterWindow(toSize(*size))
}

// viewCalls forwards View methods through the View prefix of S.
type viewCalls[S any] struct {
	ref *wrapper.CRef[S]
}

func (c viewCalls[S]) view() *capi.View {
	return capi.Cast[capi.View](c.ref.Struct())
}

func (c viewCalls[S]) TypeString() string {
	defer c.ref.Exit("View", "GetTypeString")
	s := c.view()
	if s.GetTypeString == nil {
		return ""
	}
	return takeString(s.GetTypeString(s))
}

func (c viewCalls[S]) ID() int32 {
	defer c.ref.Exit("View", "GetID")
	s := c.view()
	if s.GetID == nil {
		return 0
	}
	return s.GetID(s)
}

func (c viewCalls[S]) SetID(id int32) {
	defer c.ref.Exit("View", "SetID")
	s := c.view()
	if s.SetID == nil {
		return
	}
	s.SetID(s, id)
}

func (c viewCalls[S]) Size() cef.Size {
	defer c.ref.Exit("View", "GetSize")
	s := c.view()
	if s.GetSize == nil {
		return cef.Size{}
	}
	return toSize(s.GetSize(s))
}

func (c viewCalls[S]) SetSize(size cef.Size) {
	defer c.ref.Exit("View", "SetSize")
	s := c.view()
	if s.SetSize == nil {
		return
	}
	raw := fromSize(size)
	s.SetSize(s, &raw)
}

func (c viewCalls[S]) IsVisible() bool {
	defer c.ref.Exit("View", "IsVisible")
	s := c.view()
	if s.IsVisible == nil {
		return false
	}
	return isTrue(s.IsVisible(s))
}

func (c viewCalls[S]) SetVisible(visible bool) {
	defer c.ref.Exit("View", "SetVisible")
	s := c.view()
	if s.SetVisible == nil {
		return
	}
	s.SetVisible(s, capi.Bool(visible))
}

func (c viewCalls[S]) ParentView() cef.View {
	defer c.ref.Exit("View", "GetParentView")
	s := c.view()
	if s.GetParentView == nil {
		return nil
	}
	return ViewCToCpp.Wrap(s.GetParentView(s))
}

// panelCalls forwards Panel methods through the Panel prefix of S.
type panelCalls[S any] struct {
	ref *wrapper.CRef[S]
}

func (c panelCalls[S]) panel() *capi.Panel {
	return capi.Cast[capi.Panel](c.ref.Struct())
}

func (c panelCalls[S]) ChildViewCount() int {
	defer c.ref.Exit("Panel", "GetChildViewCount")
	s := c.panel()
	if s.GetChildViewCount == nil {
		return 0
	}
	return int(s.GetChildViewCount(s))
}

func (c panelCalls[S]) ChildViewAt(index int) cef.View {
	defer c.ref.Exit("Panel", "GetChildViewAt")
	s := c.panel()
	if s.GetChildViewAt == nil {
		return nil
	}
	return ViewCToCpp.Wrap(s.GetChildViewAt(s, int32(index)))
}

func (c panelCalls[S]) AddChildView(view cef.View) {
	defer c.ref.Exit("Panel", "AddChildView")
	s := c.panel()
	if s.AddChildView == nil {
		return
	}
	if wrapper.IsNil(view) {
		wrapper.MissingParam("Panel", "AddChildView", "view")
		return
	}
	s.AddChildView(s, ViewCToCpp.Unwrap(view))
}

type viewAdapter struct {
	*wrapper.CRef[capi.View]
	viewCalls[capi.View]
}

type panelAdapter struct {
	*wrapper.CRef[capi.Panel]
	viewCalls[capi.Panel]
	panelCalls[capi.Panel]
}

type windowAdapter struct {
	*wrapper.CRef[capi.Window]
	viewCalls[capi.Window]
	panelCalls[capi.Window]
}

func (a *windowAdapter) Show() {
	defer a.Exit("Window", "Show")
	s := a.Struct()
	if s.Show == nil {
		return
	}
	s.Show(s)
}

func (a *windowAdapter) Hide() {
	defer a.Exit("Window", "Hide")
	s := a.Struct()
	if s.Hide == nil {
		return
	}
	s.Hide(s)
}

func (a *windowAdapter) Title() string {
	defer a.Exit("Window", "GetTitle")
	s := a.Struct()
	if s.GetTitle == nil {
		return ""
	}
	return takeString(s.GetTitle(s))
}

func (a *windowAdapter) SetTitle(title string) {
	defer a.Exit("Window", "SetTitle")
	s := a.Struct()
	if s.SetTitle == nil {
		return
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	s.SetTitle(s, sc.String(title))
}

func (a *windowAdapter) Close() {
	defer a.Exit("Window", "Close")
	s := a.Struct()
	if s.Close == nil {
		return
	}
	s.Close(s)
}

func (a *windowAdapter) IsClosed() bool {
	defer a.Exit("Window", "IsClosed")
	s := a.Struct()
	if s.IsClosed == nil {
		return false
	}
	return isTrue(s.IsClosed(s))
}

func (a *windowAdapter) CenterWindow(size cef.Size) {
	defer a.Exit("Window", "CenterWindow")
	s := a.Struct()
	if s.CenterWindow == nil {
		return
	}
	raw := fromSize(size)
	s.CenterWindow(s, &raw)
}
