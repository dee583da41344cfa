package mapview

import (
	"image"

	"manhattan-map/internal/app"
	"manhattan-map/internal/landmark"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// LandmarkButton is a clickable hotspot drawn over the map. Taps are consumed
// here and never reach the map's drag handling.
type LandmarkButton struct {
	widget.BaseWidget

	landmark landmark.Landmark
	state    *app.State
	sprite   image.Image

	hovered bool
	focused bool
}

var (
	_ fyne.Tappable     = (*LandmarkButton)(nil)
	_ fyne.Focusable    = (*LandmarkButton)(nil)
	_ desktop.Hoverable = (*LandmarkButton)(nil)
)

// NewLandmarkButton creates a hotspot for l. sprite may be nil.
func NewLandmarkButton(l landmark.Landmark, state *app.State, sprite image.Image) *LandmarkButton {
	b := &LandmarkButton{landmark: l, state: state, sprite: sprite}
	b.ExtendBaseWidget(b)
	return b
}

// Landmark returns the landmark this button represents.
func (b *LandmarkButton) Landmark() landmark.Landmark {
	return b.landmark
}

// Highlighted reports whether the button draws its hover style, either
// from the pointer or from nav-panel hover sync.
func (b *LandmarkButton) Highlighted() bool {
	return b.hovered || b.focused || b.state.IsHighlighted(b.landmark)
}

func (b *LandmarkButton) activate() {
	b.state.OpenModal(b.landmark, b)
}

// Tapped opens the landmark's modal.
func (b *LandmarkButton) Tapped(*fyne.PointEvent) {
	b.activate()
}

// MouseIn implements desktop.Hoverable.
func (b *LandmarkButton) MouseIn(*desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

// MouseMoved implements desktop.Hoverable.
func (b *LandmarkButton) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable.
func (b *LandmarkButton) MouseOut() {
	b.hovered = false
	b.Refresh()
}

// FocusGained implements fyne.Focusable.
func (b *LandmarkButton) FocusGained() {
	b.focused = true
	b.Refresh()
}

// FocusLost implements fyne.Focusable.
func (b *LandmarkButton) FocusLost() {
	b.focused = false
	b.Refresh()
}

// TypedRune implements fyne.Focusable.
func (b *LandmarkButton) TypedRune(r rune) {
	if r == ' ' {
		b.activate()
	}
}

// TypedKey implements fyne.Focusable.
func (b *LandmarkButton) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		b.activate()
	}
}

func (b *LandmarkButton) CreateRenderer() fyne.WidgetRenderer {
	highlight := canvas.NewRectangle(app.ColorHighlight)
	highlight.CornerRadius = theme.InputRadiusSize()

	var sprite *canvas.Image
	if b.sprite != nil {
		sprite = canvas.NewImageFromImage(b.sprite)
		sprite.FillMode = canvas.ImageFillStretch
	}

	tipText := canvas.NewText(b.landmark.Label(), app.ColorPaper)
	tipText.TextSize = theme.CaptionTextSize()
	tipBg := canvas.NewRectangle(app.ColorTooltip)
	tipBg.CornerRadius = 4

	r := &landmarkRenderer{
		button:    b,
		highlight: highlight,
		sprite:    sprite,
		tipBg:     tipBg,
		tipText:   tipText,
	}
	r.Refresh()
	return r
}

type landmarkRenderer struct {
	button    *LandmarkButton
	highlight *canvas.Rectangle
	sprite    *canvas.Image
	tipBg     *canvas.Rectangle
	tipText   *canvas.Text
}

func (r *landmarkRenderer) Layout(size fyne.Size) {
	r.highlight.Move(fyne.NewPos(0, 0))
	r.highlight.Resize(size)
	if r.sprite != nil {
		r.sprite.Move(fyne.NewPos(0, 0))
		r.sprite.Resize(size)
	}

	// Tooltip centered above the hotspot.
	pad := float32(6)
	textSize := r.tipText.MinSize()
	tip := fyne.NewSize(textSize.Width+2*pad, textSize.Height+pad)
	tipPos := fyne.NewPos((size.Width-tip.Width)/2, -tip.Height-pad)
	r.tipBg.Move(tipPos)
	r.tipBg.Resize(tip)
	r.tipText.Move(tipPos.Add(fyne.NewPos(pad, pad/2)))
	r.tipText.Resize(textSize)
}

func (r *landmarkRenderer) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (r *landmarkRenderer) Refresh() {
	on := r.button.Highlighted()
	r.highlight.Hidden = !on
	r.tipBg.Hidden = !on
	r.tipText.Hidden = !on
	r.Layout(r.button.Size())
	for _, o := range r.Objects() {
		canvas.Refresh(o)
	}
}

func (r *landmarkRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.highlight}
	if r.sprite != nil {
		objs = append(objs, r.sprite)
	}
	return append(objs, r.tipBg, r.tipText)
}

func (r *landmarkRenderer) Destroy() {}
