package capi

// View is cef_view_t.
type View struct {
	Base Base

	GetTypeString func(self *View) String
	GetID         func(self *View) int32
	SetID         func(self *View, id int32)
	GetSize       func(self *View) Size
	SetSize       func(self *View, size *Size)
	IsVisible     func(self *View) int32
	SetVisible    func(self *View, visible int32)
	GetParentView func(self *View) *View
}

// Panel is cef_panel_t. It refines View.
type Panel struct {
	View View

	GetChildViewCount func(self *Panel) uint32
	GetChildViewAt    func(self *Panel, index int32) *View
	AddChildView      func(self *Panel, view *View)
}

// Window is cef_window_t. It refines Panel.
type Window struct {
	Panel Panel

	Show         func(self *Window)
	Hide         func(self *Window)
	GetTitle     func(self *Window) String
	SetTitle     func(self *Window, title *String)
	Close        func(self *Window)
	IsClosed     func(self *Window) int32
	CenterWindow func(self *Window, size *Size)
}

// ViewDelegate is cef_view_delegate_t.
type ViewDelegate struct {
	Base Base

	GetPreferredSize    func(self *ViewDelegate, view *View) Size
	GetMinimumSize      func(self *ViewDelegate, view *View) Size
	GetMaximumSize      func(self *ViewDelegate, view *View) Size
	GetHeightForWidth   func(self *ViewDelegate, view *View, width int32) int32
	OnParentViewChanged func(self *ViewDelegate, view *View, added int32, parent *View)
	OnChildViewChanged  func(self *ViewDelegate, view *View, added int32, child *View)
}

// PanelDelegate is cef_panel_delegate_t. It adds nothing to ViewDelegate.
type PanelDelegate struct {
	ViewDelegate ViewDelegate
}

// WindowDelegate is cef_window_delegate_t.
type WindowDelegate struct {
	PanelDelegate PanelDelegate

	OnWindowCreated   func(self *WindowDelegate, window *Window)
	OnWindowDestroyed func(self *WindowDelegate, window *Window)
	IsFrameless       func(self *WindowDelegate, window *Window) int32
	CanClose          func(self *WindowDelegate, window *Window) int32
}
