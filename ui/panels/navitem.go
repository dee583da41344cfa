package panels

import (
	"manhattan-map/internal/app"
	"manhattan-map/internal/content"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NavItem is one entry of the navigation panel. Hovering it highlights the
// matching landmark; tapping it opens that landmark's modal.
type NavItem struct {
	widget.BaseWidget

	item     content.NavItem
	state    *app.State
	mobile   func() bool
	onSelect func()

	hovered bool
}

var (
	_ fyne.Tappable     = (*NavItem)(nil)
	_ desktop.Hoverable = (*NavItem)(nil)
)

// NewNavItem creates a nav entry. mobile reports whether the panel is in its
// mobile arrangement, where hover does not sync to the map; nil means never.
// onSelect runs after a successful open.
func NewNavItem(item content.NavItem, state *app.State, mobile func() bool, onSelect func()) *NavItem {
	n := &NavItem{item: item, state: state, mobile: mobile, onSelect: onSelect}
	n.ExtendBaseWidget(n)
	return n
}

// Target returns the navigation target.
func (n *NavItem) Target() string {
	return n.item.Target
}

// Tapped opens the modal for the linked landmark.
func (n *NavItem) Tapped(*fyne.PointEvent) {
	if !n.state.OpenNavTarget(n.item.Target, n) {
		return
	}
	if n.onSelect != nil {
		n.onSelect()
	}
}

// MouseIn implements desktop.Hoverable.
func (n *NavItem) MouseIn(*desktop.MouseEvent) {
	n.hovered = true
	if !n.isMobile() {
		n.state.SetHoveredNavTarget(n.item.Target)
	}
	n.Refresh()
}

// MouseMoved implements desktop.Hoverable.
func (n *NavItem) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable.
func (n *NavItem) MouseOut() {
	n.hovered = false
	if n.state.HoveredNavTarget() == n.item.Target {
		n.state.SetHoveredNavTarget("")
	}
	n.Refresh()
}

func (n *NavItem) isMobile() bool {
	return n.mobile != nil && n.mobile()
}

func (n *NavItem) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(app.ColorHighlight)
	bg.CornerRadius = theme.InputRadiusSize()
	text := canvas.NewText(n.item.Label, app.ColorInk)
	text.TextSize = theme.TextSize() * 1.2
	text.Alignment = fyne.TextAlignTrailing

	r := &navItemRenderer{item: n, bg: bg, text: text}
	r.stack = container.NewStack(bg, container.NewPadded(text))
	r.Refresh()
	return r
}

type navItemRenderer struct {
	item  *NavItem
	bg    *canvas.Rectangle
	text  *canvas.Text
	stack *fyne.Container
}

func (r *navItemRenderer) Layout(size fyne.Size) {
	r.stack.Resize(size)
}

func (r *navItemRenderer) MinSize() fyne.Size {
	return r.stack.MinSize()
}

func (r *navItemRenderer) Refresh() {
	r.bg.Hidden = !r.item.hovered
	r.text.TextStyle.Bold = r.item.hovered
	r.stack.Refresh()
}

func (r *navItemRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.stack}
}

func (r *navItemRenderer) Destroy() {}
