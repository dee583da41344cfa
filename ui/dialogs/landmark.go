// Package dialogs provides application dialogs.
package dialogs

import (
	"net/url"
	"strings"

	"manhattan-map/internal/app"
	"manhattan-map/internal/content"
	"manhattan-map/internal/landmark"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

// LandmarkDialog shows the content for the active landmark whenever the
// shared state opens a modal, and hands focus back to the trigger on close.
type LandmarkDialog struct {
	state  *app.State
	window fyne.Window
	log    zerolog.Logger

	dlg  dialog.Dialog
	body fyne.CanvasObject
	offs []func()
}

// NewLandmarkDialog binds modal rendering for state to window.
func NewLandmarkDialog(state *app.State, window fyne.Window, log zerolog.Logger) *LandmarkDialog {
	d := &LandmarkDialog{state: state, window: window, log: log}
	d.offs = append(d.offs,
		state.On(app.EventModalOpened, func(data interface{}) {
			if l, ok := data.(landmark.Landmark); ok {
				d.show(l)
			}
		}),
		state.On(app.EventModalClosed, func(data interface{}) {
			d.hide()
			if trigger, ok := data.(fyne.CanvasObject); ok {
				d.refocus(trigger)
			}
		}),
	)
	return d
}

// Close unbinds the dialog from the state.
func (d *LandmarkDialog) Close() {
	for _, off := range d.offs {
		off()
	}
	d.offs = nil
}

// Visible reports whether the dialog is on screen.
func (d *LandmarkDialog) Visible() bool {
	return d.dlg != nil
}

// Dismiss closes the modal through the state, as the close button does.
func (d *LandmarkDialog) Dismiss() {
	d.state.CloseModal()
}

// Dialog body limits. The width shrinks to fit narrow windows.
const (
	maxBodyWidth  float32 = 420
	maxBodyHeight float32 = 560
	bodyInset     float32 = 48
)

// Body returns the dialog content for a landmark. onLink runs after any link
// in the body opens its URL and may be nil.
func Body(l landmark.Landmark, onLink func()) (title string, body fyne.CanvasObject) {
	section := content.ForLandmark(l)

	items := []fyne.CanvasObject{
		widget.NewLabelWithStyle(section.Label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	}
	if section.Description != "" {
		items = append(items, wrapped(section.Description))
	}
	if section.LongDescription != "" {
		for _, para := range strings.Split(section.LongDescription, "\n\n") {
			items = append(items, wrapped(para))
		}
	}
	for _, c := range section.Companies {
		items = append(items, companyCard(c, onLink))
	}
	if section.Contact != nil {
		items = append(items, contactRows(*section.Contact, onLink))
	}
	for _, p := range section.MiscProjects {
		items = append(items, miscCard(p, onLink))
	}
	if section.LinkHref != "" {
		text := section.LinkText
		if text == "" {
			text = section.LinkHref
		}
		items = append(items, newLink(text, section.LinkHref, onLink))
	}
	return section.Title, container.NewVBox(items...)
}

func wrapped(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Wrapping = fyne.TextWrapWord
	return l
}

func companyCard(c content.Company, onLink func()) *widget.Card {
	projects := make([]fyne.CanvasObject, 0, len(c.Projects))
	for _, p := range c.Projects {
		rows := []fyne.CanvasObject{
			widget.NewLabelWithStyle(p.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			wrapped(p.Description),
		}
		if len(p.Skills) > 0 {
			skills := wrapped(strings.Join(p.Skills, " · "))
			skills.TextStyle = fyne.TextStyle{Italic: true}
			rows = append(rows, skills)
		}
		for _, link := range p.Links {
			rows = append(rows, newLink(link.Label, link.URL, onLink))
		}
		projects = append(projects, container.NewVBox(rows...))
	}
	return widget.NewCard(c.Name, c.Role+" · "+c.Period, container.NewVBox(projects...))
}

func contactRows(info content.ContactInfo, onLink func()) *fyne.Container {
	return container.New(layout.NewFormLayout(),
		widget.NewLabel("Calendar"), newLink("Book a call", info.Calendar, onLink),
		widget.NewLabel("Business"), newLink(info.BusinessEmail, "mailto:"+info.BusinessEmail, onLink),
		widget.NewLabel("Personal"), newLink(info.PersonalEmail, "mailto:"+info.PersonalEmail, onLink),
	)
}

func miscCard(p content.MiscProject, onLink func()) *widget.Card {
	var links []fyne.CanvasObject
	if p.SiteURL != "" {
		label := p.SiteLabel
		if label == "" {
			label = p.SiteURL
		}
		links = append(links, newLink(label, p.SiteURL, onLink))
	}
	if p.RepoURL != "" {
		links = append(links, newLink("Source", p.RepoURL, onLink))
	}
	return widget.NewCard(p.Name, "", container.NewVBox(wrapped(p.Description), container.NewHBox(links...)))
}

// newLink returns a hyperlink for absolute URLs and plain text otherwise.
// Tapping the link opens the URL and then runs onLink.
func newLink(text, href string, onLink func()) fyne.CanvasObject {
	u, err := url.Parse(href)
	if err != nil || !u.IsAbs() {
		return widget.NewLabel(text)
	}
	link := widget.NewHyperlink(text, u)
	link.OnTapped = func() {
		if a := fyne.CurrentApp(); a != nil {
			if err := a.OpenURL(u); err != nil {
				fyne.LogError("open "+href, err)
			}
		}
		if onLink != nil {
			onLink()
		}
	}
	return link
}

// bodySize fits the body inside the window, capped at the preferred size.
func (d *LandmarkDialog) bodySize(body fyne.CanvasObject) fyne.Size {
	size := fyne.NewSize(maxBodyWidth, min(body.MinSize().Height, maxBodyHeight))
	if d.window == nil {
		return size
	}
	win := d.window.Canvas().Size()
	if w := win.Width - bodyInset; w > 0 {
		size.Width = min(size.Width, w)
	}
	if h := win.Height*0.7 - bodyInset; h > 0 {
		size.Height = min(maxBodyHeight, h)
	}
	return size
}

func (d *LandmarkDialog) show(l landmark.Landmark) {
	d.hide()

	title, body := Body(l, d.Dismiss)
	d.body = body
	sized := container.NewGridWrap(d.bodySize(body), container.NewVScroll(body))

	dlg := dialog.NewCustom(title, "Close", sized, d.window)
	dlg.SetOnClosed(func() {
		// Closing via the button or Escape goes through the state so the
		// debounce and refocus apply.
		if d.dlg == dlg {
			d.dlg = nil
			d.body = nil
			d.state.CloseModal()
		}
	})
	d.dlg = dlg
	d.log.Debug().Str("landmark", l.ID).Msg("modal opened")
	dlg.Show()
}

func (d *LandmarkDialog) hide() {
	if d.dlg == nil {
		return
	}
	dlg := d.dlg
	d.dlg = nil
	d.body = nil
	dlg.Hide()
}

func (d *LandmarkDialog) refocus(trigger fyne.CanvasObject) {
	f, ok := trigger.(fyne.Focusable)
	if !ok || d.window == nil {
		return
	}
	d.window.Canvas().Focus(f)
}
