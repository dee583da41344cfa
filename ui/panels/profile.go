package panels

import (
	"image"
	"net/url"

	"manhattan-map/internal/app"
	"manhattan-map/internal/content"
	"manhattan-map/internal/pan"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

const portraitSide float32 = 72

// ProfilePanel is the owner column on the left edge of the window. On
// desktop widths the name and LinkedIn link sit under the portrait; on
// mobile widths they move into a menu opened by tapping the portrait.
type ProfilePanel struct {
	state  *app.State
	device pan.Device
	log    zerolog.Logger

	width float64

	portrait  *Portrait
	details   *fyne.Container
	menu      *fyne.Container
	closeMenu *widget.Button
	container *fyne.Container

	offs []func()
}

// NewProfilePanel creates the profile panel. portrait may be nil.
func NewProfilePanel(state *app.State, device pan.Device, portrait image.Image, log zerolog.Logger) *ProfilePanel {
	if device == nil {
		device = app.DefaultBreakpoint()
	}
	pp := &ProfilePanel{state: state, device: device, log: log}

	pp.portrait = NewPortrait(portrait, pp.tapPortrait)
	pp.details = container.NewVBox(profileName(), linkedIn())

	pp.closeMenu = widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		state.SetProfileMenuOpen(false)
	})
	pp.closeMenu.Importance = widget.LowImportance
	pp.menu = container.NewVBox(
		container.NewBorder(nil, nil, nil, pp.closeMenu, profileName()),
		linkedIn(),
	)

	column := container.NewVBox(pp.portrait, pp.details, pp.menu)
	pp.container = container.NewBorder(nil, nil, container.NewPadded(column), nil)

	pp.offs = append(pp.offs, state.On(app.EventProfileMenuChanged, func(interface{}) {
		pp.applyVisibility()
	}))
	pp.applyVisibility()
	return pp
}

func profileName() *widget.Label {
	return widget.NewLabelWithStyle(content.Owner.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}

func linkedIn() fyne.CanvasObject {
	u, err := url.Parse(content.Owner.LinkedIn)
	if err != nil {
		return widget.NewLabel("LinkedIn")
	}
	return widget.NewHyperlinkWithStyle("LinkedIn", u, fyne.TextAlignCenter, fyne.TextStyle{})
}

// Container returns the panel container.
func (pp *ProfilePanel) Container() fyne.CanvasObject {
	return pp.container
}

// Close unbinds the panel from the state.
func (pp *ProfilePanel) Close() {
	for _, off := range pp.offs {
		off()
	}
	pp.offs = nil
}

// SetWidth switches between the desktop and mobile arrangement. Leaving the
// mobile arrangement closes the profile menu.
func (pp *ProfilePanel) SetWidth(width float64) {
	pp.width = width
	if !pp.mobile() {
		pp.state.SetProfileMenuOpen(false)
	}
	pp.applyVisibility()
}

func (pp *ProfilePanel) mobile() bool {
	return pp.device.IsMobile(pp.width)
}

// Portrait returns the tappable portrait.
func (pp *ProfilePanel) Portrait() *Portrait {
	return pp.portrait
}

// CloseMenuButton returns the button that closes the mobile profile menu.
func (pp *ProfilePanel) CloseMenuButton() *widget.Button {
	return pp.closeMenu
}

// DetailsVisible reports whether the desktop name and link are shown.
func (pp *ProfilePanel) DetailsVisible() bool {
	return pp.details.Visible()
}

// MenuVisible reports whether the mobile profile menu is shown.
func (pp *ProfilePanel) MenuVisible() bool {
	return pp.menu.Visible()
}

func (pp *ProfilePanel) applyVisibility() {
	if pp.mobile() {
		pp.details.Hide()
		if pp.state.ProfileMenuOpen() {
			pp.menu.Show()
		} else {
			pp.menu.Hide()
		}
	} else {
		pp.details.Show()
		pp.menu.Hide()
	}
	pp.container.Refresh()
}

// tapPortrait closes the nav menu when it is open and otherwise toggles the
// profile menu. Desktop widths show the details already.
func (pp *ProfilePanel) tapPortrait() {
	if pp.state.MenuOpen() {
		pp.state.SetMenuOpen(false)
		return
	}
	if !pp.mobile() {
		return
	}
	open := !pp.state.ProfileMenuOpen()
	pp.log.Debug().Bool("open", open).Msg("profile menu")
	pp.state.SetProfileMenuOpen(open)
}

// Portrait is the owner's picture. It falls back to the account icon when
// no image is available.
type Portrait struct {
	widget.BaseWidget

	img      image.Image
	onTapped func()
}

var _ fyne.Tappable = (*Portrait)(nil)

// NewPortrait creates a portrait that runs onTapped when tapped.
func NewPortrait(img image.Image, onTapped func()) *Portrait {
	p := &Portrait{img: img, onTapped: onTapped}
	p.ExtendBaseWidget(p)
	return p
}

// Tapped implements fyne.Tappable.
func (p *Portrait) Tapped(*fyne.PointEvent) {
	if p.onTapped != nil {
		p.onTapped()
	}
}

func (p *Portrait) CreateRenderer() fyne.WidgetRenderer {
	var pic *canvas.Image
	if p.img != nil {
		pic = canvas.NewImageFromImage(p.img)
	} else {
		pic = canvas.NewImageFromResource(theme.AccountIcon())
	}
	pic.FillMode = canvas.ImageFillContain
	pic.SetMinSize(fyne.NewSquareSize(portraitSide))

	border := canvas.NewCircle(app.ColorPaper)
	border.StrokeColor = app.ColorInk
	border.StrokeWidth = 2

	return widget.NewSimpleRenderer(container.NewStack(border, container.NewPadded(pic)))
}
