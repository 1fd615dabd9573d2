package bridge

import (
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/wrapper"
)

var (
	ViewDelegateCppToC = wrapper.NewCppToC[cef.ViewDelegate, capi.ViewDelegate]("ViewDelegate", wrapper.TypeViewDelegate)
	ViewDelegateCToCpp = wrapper.NewCToCpp[cef.ViewDelegate, capi.ViewDelegate]("ViewDelegate", wrapper.TypeViewDelegate)

	PanelDelegateCppToC = wrapper.NewCppToC[cef.PanelDelegate, capi.PanelDelegate]("PanelDelegate", wrapper.TypePanelDelegate)
	PanelDelegateCToCpp = wrapper.NewCToCpp[cef.PanelDelegate, capi.PanelDelegate]("PanelDelegate", wrapper.TypePanelDelegate)

	WindowDelegateCppToC = wrapper.NewCppToC[cef.WindowDelegate, capi.WindowDelegate]("WindowDelegate", wrapper.TypeWindowDelegate)
	WindowDelegateCToCpp = wrapper.NewCToCpp[cef.WindowDelegate, capi.WindowDelegate]("WindowDelegate", wrapper.TypeWindowDelegate)
)

func init() {
	ViewDelegateCppToC.SetBuilder(func(d cef.ViewDelegate) *capi.ViewDelegate {
		s := &capi.ViewDelegate{}
		fillViewDelegate(s, d)
		return s
	})
	PanelDelegateCppToC.SetBuilder(func(d cef.PanelDelegate) *capi.PanelDelegate {
		s := &capi.PanelDelegate{}
		fillViewDelegate(&s.ViewDelegate, d)
		return s
	})
	WindowDelegateCppToC.SetBuilder(func(d cef.WindowDelegate) *capi.WindowDelegate {
		s := &capi.WindowDelegate{}
		fillViewDelegate(&s.PanelDelegate.ViewDelegate, d)
		if _, ok := d.(cef.WindowCreatedHandler); ok {
			s.OnWindowCreated = windowDelegateOnWindowCreated
		}
		if _, ok := d.(cef.WindowDestroyedHandler); ok {
			s.OnWindowDestroyed = windowDelegateOnWindowDestroyed
		}
		if _, ok := d.(cef.FramelessProvider); ok {
			s.IsFrameless = windowDelegateIsFrameless
		}
		if _, ok := d.(cef.CanCloseHandler); ok {
			s.CanClose = windowDelegateCanClose
		}
		return s
	})

	ViewDelegateCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.ViewDelegate]) cef.ViewDelegate {
		return &viewDelegateAdapter{CRef: ref, viewDelegateCalls: viewDelegateCalls[capi.ViewDelegate]{ref}}
	})
	PanelDelegateCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.PanelDelegate]) cef.PanelDelegate {
		return &panelDelegateAdapter{CRef: ref, viewDelegateCalls: viewDelegateCalls[capi.PanelDelegate]{ref}}
	})
	WindowDelegateCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.WindowDelegate]) cef.WindowDelegate {
		return &windowDelegateAdapter{CRef: ref, viewDelegateCalls: viewDelegateCalls[capi.WindowDelegate]{ref}}
	})

	ViewDelegateCppToC.Derive(wrapper.TypePanelDelegate, func(base *capi.Base) cef.ViewDelegate {
		return PanelDelegateCppToC.Unwrap(capi.Cast[capi.PanelDelegate](base))
	})
	ViewDelegateCppToC.Derive(wrapper.TypeWindowDelegate, func(base *capi.Base) cef.ViewDelegate {
		return WindowDelegateCppToC.Unwrap(capi.Cast[capi.WindowDelegate](base))
	})
	PanelDelegateCppToC.Derive(wrapper.TypeWindowDelegate, func(base *capi.Base) cef.PanelDelegate {
		return WindowDelegateCppToC.Unwrap(capi.Cast[capi.WindowDelegate](base))
	})

	ViewDelegateCToCpp.Derive(wrapper.TypePanelDelegate, func(obj cef.ViewDelegate) *capi.ViewDelegate {
		return capi.Cast[capi.ViewDelegate](PanelDelegateCToCpp.Unwrap(obj))
	})
	ViewDelegateCToCpp.Derive(wrapper.TypeWindowDelegate, func(obj cef.ViewDelegate) *capi.ViewDelegate {
		return capi.Cast[capi.ViewDelegate](WindowDelegateCToCpp.Unwrap(obj))
	})
	PanelDelegateCToCpp.Derive(wrapper.TypeWindowDelegate, func(obj cef.PanelDelegate) *capi.PanelDelegate {
		return capi.Cast[capi.PanelDelegate](WindowDelegateCToCpp.Unwrap(obj))
	})
}

func fillViewDelegate(s *capi.ViewDelegate, d any) {
	if _, ok := d.(cef.PreferredSizeProvider); ok {
		s.GetPreferredSize = viewDelegateGetPreferredSize
	}
	if _, ok := d.(cef.MinimumSizeProvider); ok {
		s.GetMinimumSize = viewDelegateGetMinimumSize
	}
	if _, ok := d.(cef.MaximumSizeProvider); ok {
		s.GetMaximumSize = viewDelegateGetMaximumSize
	}
	if _, ok := d.(cef.HeightForWidthProvider); ok {
		s.GetHeightForWidth = viewDelegateGetHeightForWidth
	}
	if _, ok := d.(cef.ParentViewChangedHandler); ok {
		s.OnParentViewChanged = viewDelegateOnParentViewChanged
	}
	if _, ok := d.(cef.ChildViewChangedHandler); ok {
		s.OnChildViewChanged = viewDelegateOnChildViewChanged
	}
}

func viewDelegateGetPreferredSize(self *capi.ViewDelegate, view *capi.View) capi.Size {
	defer wrapper.Recover("ViewDelegate", "GetPreferredSize")
	v := ViewCToCpp.Wrap(view)
	d, ok := capability[cef.PreferredSizeProvider](ViewDelegateCppToC, self, "ViewDelegate", "GetPreferredSize")
	if !ok {
		return capi.Size{}
	}
	if v == nil {
		wrapper.MissingParam("ViewDelegate", "GetPreferredSize", "view")
		return capi.Size{}
	}
	return fromSize(d.GetPreferredSize(v))
}

func viewDelegateGetMinimumSize(self *capi.ViewDelegate, view *capi.View) capi.Size {
	defer wrapper.Recover("ViewDelegate", "GetMinimumSize")
	v := ViewCToCpp.Wrap(view)
	d, ok := capability[cef.MinimumSizeProvider](ViewDelegateCppToC, self, "ViewDelegate", "GetMinimumSize")
	if !ok {
		return capi.Size{}
	}
	if v == nil {
		wrapper.MissingParam("ViewDelegate", "GetMinimumSize", "view")
		return capi.Size{}
	}
	return fromSize(d.GetMinimumSize(v))
}

func viewDelegateGetMaximumSize(self *capi.ViewDelegate, view *capi.View) capi.Size {
	defer wrapper.Recover("ViewDelegate", "GetMaximumSize")
	v := ViewCToCpp.Wrap(view)
	d, ok := capability[cef.MaximumSizeProvider](ViewDelegateCppToC, self, "ViewDelegate", "GetMaximumSize")
	if !ok {
		return capi.Size{}
	}
	if v == nil {
		wrapper.MissingParam("ViewDelegate", "GetMaximumSize", "view")
		return capi.Size{}
	}
	return fromSize(d.GetMaximumSize(v))
}

func viewDelegateGetHeightForWidth(self *capi.ViewDelegate, view *capi.View, width int32) int32 {
	defer wrapper.Recover("ViewDelegate", "GetHeightForWidth")
	v := ViewCToCpp.Wrap(view)
	d, ok := capability[cef.HeightForWidthProvider](ViewDelegateCppToC, self, "ViewDelegate", "GetHeightForWidth")
	if !ok {
		return 0
	}
	if v == nil {
		wrapper.MissingParam("ViewDelegate", "GetHeightForWidth", "view")
		return 0
	}
	return d.GetHeightForWidth(v, width)
}

func viewDelegateOnParentViewChanged(self *capi.ViewDelegate, view *capi.View, added int32, parent *capi.View) {
	defer wrapper.Recover("ViewDelegate", "OnParentViewChanged")
	v := ViewCToCpp.Wrap(view)
	p := ViewCToCpp.Wrap(parent)
	d, ok := capability[cef.ParentViewChangedHandler](ViewDelegateCppToC, self, "ViewDelegate", "OnParentViewChanged")
	if !ok {
		return
	}
	if v == nil {
		wrapper.MissingParam("ViewDelegate", "OnParentViewChanged", "view")
		return
	}
	if p == nil {
		wrapper.MissingParam("ViewDelegate", "OnParentViewChanged", "parent")
		return
	}
	d.OnParentViewChanged(v, isTrue(added), p)
}

func viewDelegateOnChildViewChanged(self *capi.ViewDelegate, view *capi.View, added int32, child *capi.View) {
	defer wrapper.Recover("ViewDelegate", "OnChildViewChanged")
	v := ViewCToCpp.Wrap(view)
	c := ViewCToCpp.Wrap(child)
	d, ok := capability[cef.ChildViewChangedHandler](ViewDelegateCppToC, self, "ViewDelegate", "OnChildViewChanged")
	if !ok {
		return
	}
	if v == nil {
		wrapper.MissingParam("ViewDelegate", "OnChildViewChanged", "view")
		return
	}
	if c == nil {
		wrapper.MissingParam("ViewDelegate", "OnChildViewChanged", "child")
		return
	}
	d.OnChildViewChanged(v, isTrue(added), c)
}

func windowDelegateOnWindowCreated(self *capi.WindowDelegate, window *capi.Window) {
	defer wrapper.Recover("WindowDelegate", "OnWindowCreated")
	w := WindowCToCpp.Wrap(window)
	d, ok := capability[cef.WindowCreatedHandler](WindowDelegateCppToC, self, "WindowDelegate", "OnWindowCreated")
	if !ok {
		return
	}
	if w == nil {
		wrapper.MissingParam("WindowDelegate", "OnWindowCreated", "window")
		return
	}
	d.OnWindowCreated(w)
}

func windowDelegateOnWindowDestroyed(self *capi.WindowDelegate, window *capi.Window) {
	defer wrapper.Recover("WindowDelegate", "OnWindowDestroyed")
	w := WindowCToCpp.Wrap(window)
	d, ok := capability[cef.WindowDestroyedHandler](WindowDelegateCppToC, self, "WindowDelegate", "OnWindowDestroyed")
	if !ok {
		return
	}
	if w == nil {
		wrapper.MissingParam("WindowDelegate", "OnWindowDestroyed", "window")
		return
	}
	d.OnWindowDestroyed(w)
}

func windowDelegateIsFrameless(self *capi.WindowDelegate, window *capi.Window) int32 {
	defer wrapper.Recover("WindowDelegate", "IsFrameless")
	w := WindowCToCpp.Wrap(window)
	d, ok := capability[cef.FramelessProvider](WindowDelegateCppToC, self, "WindowDelegate", "IsFrameless")
	if !ok {
		return 0
	}
	if w == nil {
		wrapper.MissingParam("WindowDelegate", "IsFrameless", "window")
		return 0
	}
	return capi.Bool(d.IsFrameless(w))
}

func windowDelegateCanClose(self *capi.WindowDelegate, window *capi.Window) int32 {
	defer wrapper.Recover("WindowDelegate", "CanClose")
	w := WindowCToCpp.Wrap(window)
	d, ok := capability[cef.CanCloseHandler](WindowDelegateCppToC, self, "WindowDelegate", "CanClose")
	if !ok {
		return 1
	}
	if w == nil {
		wrapper.MissingParam("WindowDelegate", "CanClose", "window")
		return 1
	}
	return capi.Bool(d.CanClose(w))
}

// viewDelegateCalls forwards ViewDelegate methods through the ViewDelegate
// prefix of S.
type viewDelegateCalls[S any] struct {
	ref *wrapper.CRef[S]
}

func (c viewDelegateCalls[S]) delegate() *capi.ViewDelegate {
	return capi.Cast[capi.ViewDelegate](c.ref.Struct())
}

func (c viewDelegateCalls[S]) GetPreferredSize(view cef.View) cef.Size {
	defer c.ref.Exit("ViewDelegate", "GetPreferredSize")
	s := c.delegate()
	if s.GetPreferredSize == nil {
		return cef.Size{}
	}
	if wrapper.IsNil(view) {
		wrapper.MissingParam("ViewDelegate", "GetPreferredSize", "view")
		return cef.Size{}
	}
	return toSize(s.GetPreferredSize(s, ViewCppToC.Wrap(view)))
}

func (c viewDelegateCalls[S]) GetMinimumSize(view cef.View) cef.Size {
	defer c.ref.Exit("ViewDelegate", "GetMinimumSize")
	s := c.delegate()
	if s.GetMinimumSize == nil {
		return cef.Size{}
	}
	if wrapper.IsNil(view) {
		wrapper.MissingParam("ViewDelegate", "GetMinimumSize", "view")
		return cef.Size{}
	}
	return toSize(s.GetMinimumSize(s, ViewCppToC.Wrap(view)))
}

func (c viewDelegateCalls[S]) GetMaximumSize(view cef.View) cef.Size {
	defer c.ref.Exit("ViewDelegate", "GetMaximumSize")
	s := c.delegate()
	if s.GetMaximumSize == nil {
		return cef.Size{}
	}
	if wrapper.IsNil(view) {
		wrapper.MissingParam("ViewDelegate", "GetMaximumSize", "view")
		return cef.Size{}
	}
	return toSize(s.GetMaximumSize(s, ViewCppToC.Wrap(view)))
}

func (c viewDelegateCalls[S]) GetHeightForWidth(view cef.View, width int32) int32 {
	defer c.ref.Exit("ViewDelegate", "GetHeightForWidth")
	s := c.delegate()
	if s.GetHeightForWidth == nil {
		return 0
	}
	if wrapper.IsNil(view) {
		wrapper.MissingParam("ViewDelegate", "GetHeightForWidth", "view")
		return 0
	}
	return s.GetHeightForWidth(s, ViewCppToC.Wrap(view), width)
}

func (c viewDelegateCalls[S]) OnParentViewChanged(view cef.View, added bool, parent cef.View) {
	defer c.ref.Exit("ViewDelegate", "OnParentViewChanged")
	s := c.delegate()
	if s.OnParentViewChanged == nil {
		return
	}
	if wrapper.IsNil(view) {
		wrapper.MissingParam("ViewDelegate", "OnParentViewChanged", "view")
		return
	}
	if wrapper.IsNil(parent) {
		wrapper.MissingParam("ViewDelegate", "OnParentViewChanged", "parent")
		return
	}
	s.OnParentViewChanged(s, ViewCppToC.Wrap(view), capi.Bool(added), ViewCppToC.Wrap(parent))
}

func (c viewDelegateCalls[S]) OnChildViewChanged(view cef.View, added bool, child cef.View) {
	defer c.ref.Exit("ViewDelegate", "OnChildViewChanged")
	s := c.delegate()
	if s.OnChildViewChanged == nil {
		return
	}
	if wrapper.IsNil(view) {
		wrapper.MissingParam("ViewDelegate", "OnChildViewChanged", "view")
		return
	}
	if wrapper.IsNil(child) {
		wrapper.MissingParam("ViewDelegate", "OnChildViewChanged", "child")
		return
	}
	s.OnChildViewChanged(s, ViewCppToC.Wrap(view), capi.Bool(added), ViewCppToC.Wrap(child))
}

type viewDelegateAdapter struct {
	*wrapper.CRef[capi.ViewDelegate]
	viewDelegateCalls[capi.ViewDelegate]
}

type panelDelegateAdapter struct {
	*wrapper.CRef[capi.PanelDelegate]
	viewDelegateCalls[capi.PanelDelegate]
}

type windowDelegateAdapter struct {
	*wrapper.CRef[capi.WindowDelegate]
	viewDelegateCalls[capi.WindowDelegate]
}

func (a *windowDelegateAdapter) OnWindowCreated(window cef.Window) {
	defer a.Exit("WindowDelegate", "OnWindowCreated")
	s := a.Struct()
	if s.OnWindowCreated == nil {
		return
	}
	if wrapper.IsNil(window) {
		wrapper.MissingParam("WindowDelegate", "OnWindowCreated", "window")
		return
	}
	s.OnWindowCreated(s, WindowCppToC.Wrap(window))
}

func (a *windowDelegateAdapter) OnWindowDestroyed(window cef.Window) {
	defer a.Exit("WindowDelegate", "OnWindowDestroyed")
	s := a.Struct()
	if s.OnWindowDestroyed == nil {
		return
	}
	if wrapper.IsNil(window) {
		wrapper.MissingParam("WindowDelegate", "OnWindowDestroyed", "window")
		return
	}
	s.OnWindowDestroyed(s, WindowCppToC.Wrap(window))
}

func (a *windowDelegateAdapter) IsFrameless(window cef.Window) bool {
	defer a.Exit("WindowDelegate", "IsFrameless")
	s := a.Struct()
	if s.IsFrameless == nil {
		return false
	}
	if wrapper.IsNil(window) {
		wrapper.MissingParam("WindowDelegate", "IsFrameless", "window")
		return false
	}
	return isTrue(s.IsFrameless(s, WindowCppToC.Wrap(window)))
}

func (a *windowDelegateAdapter) CanClose(window cef.Window) bool {
	defer a.Exit("WindowDelegate", "CanClose")
	s := a.Struct()
	if s.CanClose == nil {
		return true
	}
	if wrapper.IsNil(window) {
		wrapper.MissingParam("WindowDelegate", "CanClose", "window")
		return true
	}
	return isTrue(s.CanClose(s, WindowCppToC.Wrap(window)))
}
