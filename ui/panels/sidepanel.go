// Package panels provides UI panels for the application.
package panels

import (
	"manhattan-map/internal/app"
	"manhattan-map/internal/content"
	"manhattan-map/internal/pan"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

// StarLabel is the glyph on the highlight toggle.
const StarLabel = "★"

// SidePanel is the navigation column on the right edge of the window. On
// desktop widths it is always shown; on mobile widths it sits behind a menu
// button.
type SidePanel struct {
	state  *app.State
	device pan.Device
	log    zerolog.Logger

	width float64

	items      []*NavItem
	star       *widget.Button
	menuButton *widget.Button
	list       *fyne.Container
	container  *fyne.Container

	offs []func()
}

// NewSidePanel creates the navigation panel.
func NewSidePanel(state *app.State, device pan.Device, log zerolog.Logger) *SidePanel {
	if device == nil {
		device = app.DefaultBreakpoint()
	}
	sp := &SidePanel{
		state:  state,
		device: device,
		log:    log,
	}

	objs := make([]fyne.CanvasObject, 0, len(content.NavItems)+1)
	for _, item := range content.NavItems {
		ni := NewNavItem(item, state, sp.mobile, sp.afterSelect)
		sp.items = append(sp.items, ni)
		objs = append(objs, ni)
	}
	sp.star = widget.NewButton(StarLabel, sp.toggleStar)
	sp.star.Importance = widget.LowImportance
	objs = append(objs, sp.star)

	sp.list = container.NewVBox(objs...)
	sp.menuButton = widget.NewButtonWithIcon("", theme.MenuIcon(), func() {
		state.SetMenuOpen(!state.MenuOpen())
	})

	column := container.NewVBox(sp.menuButton, sp.list)
	sp.container = container.NewBorder(nil, nil, nil, container.NewPadded(column))

	sp.offs = append(sp.offs, state.On(app.EventMenuChanged, func(interface{}) {
		sp.applyVisibility()
	}))
	sp.applyVisibility()
	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// Items returns the navigation entries in display order.
func (sp *SidePanel) Items() []*NavItem {
	return sp.items
}

// Close unbinds the panel from the state.
func (sp *SidePanel) Close() {
	for _, off := range sp.offs {
		off()
	}
	sp.offs = nil
}

// SetWidth switches between the desktop and mobile arrangement.
func (sp *SidePanel) SetWidth(width float64) {
	wasMobile := sp.mobile()
	sp.width = width
	if wasMobile && !sp.mobile() {
		sp.state.SetMenuOpen(false)
	}
	if sp.mobile() {
		// Hover sync and highlight-all exist on desktop only.
		sp.state.SetHoveredNavTarget("")
		sp.state.SetHighlightAll(false)
	}
	sp.applyVisibility()
}

func (sp *SidePanel) mobile() bool {
	return sp.device.IsMobile(sp.width)
}

// ListVisible reports whether the navigation entries are shown.
func (sp *SidePanel) ListVisible() bool {
	return sp.list.Visible()
}

// MenuButtonVisible reports whether the mobile menu button is shown.
func (sp *SidePanel) MenuButtonVisible() bool {
	return sp.menuButton.Visible()
}

// Star returns the highlight toggle.
func (sp *SidePanel) Star() *widget.Button {
	return sp.star
}

// MenuButton returns the mobile menu button.
func (sp *SidePanel) MenuButton() *widget.Button {
	return sp.menuButton
}

func (sp *SidePanel) applyVisibility() {
	if sp.mobile() {
		sp.menuButton.Show()
		if sp.state.MenuOpen() {
			sp.list.Show()
		} else {
			sp.list.Hide()
		}
	} else {
		sp.menuButton.Hide()
		sp.list.Show()
	}
	sp.container.Refresh()
}

func (sp *SidePanel) toggleStar() {
	if sp.mobile() {
		sp.state.SetMenuOpen(false)
		return
	}
	on := !sp.state.HighlightAll()
	sp.log.Debug().Bool("highlight", on).Msg("highlight all landmarks")
	sp.state.SetHighlightAll(on)
}

func (sp *SidePanel) afterSelect() {
	if sp.mobile() {
		sp.state.SetMenuOpen(false)
	}
}
