package cef

// View is the root of the views hierarchy.
type View interface {
	TypeString() string
	ID() int32
	SetID(id int32)
	Size() Size
	SetSize(size Size)
	IsVisible() bool
	SetVisible(visible bool)
	ParentView() View
}

// Panel is a View that holds child views.
type Panel interface {
	View
	ChildViewCount() int
	ChildViewAt(index int) View
	AddChildView(view View)
}

// Window is a top-level Panel.
type Window interface {
	Panel
	Show()
	Hide()
	Title() string
	SetTitle(title string)
	Close()
	IsClosed() bool
	CenterWindow(size Size)
}

// ViewDelegate customizes a View. See the capability interfaces below.
type ViewDelegate interface{}

// PanelDelegate customizes a Panel.
type PanelDelegate interface{}

// WindowDelegate customizes a Window.
type WindowDelegate interface{}

type PreferredSizeProvider interface {
	GetPreferredSize(view View) Size
}

type MinimumSizeProvider interface {
	GetMinimumSize(view View) Size
}

type MaximumSizeProvider interface {
	GetMaximumSize(view View) Size
}

type HeightForWidthProvider interface {
	GetHeightForWidth(view View, width int32) int32
}

type ParentViewChangedHandler interface {
	OnParentViewChanged(view View, added bool, parent View)
}

type ChildViewChangedHandler interface {
	OnChildViewChanged(view View, added bool, child View)
}

type WindowCreatedHandler interface {
	OnWindowCreated(window Window)
}

type WindowDestroyedHandler interface {
	OnWindowDestroyed(window Window)
}

type FramelessProvider interface {
	IsFrameless(window Window) bool
}

type CanCloseHandler interface {
	CanClose(window Window) bool
}
