// Package mapview provides the pannable map widget with its landmark overlay.
package mapview

import (
	"image"

	"manhattan-map/internal/app"
	"manhattan-map/internal/landmark"
	"manhattan-map/internal/pan"
	"manhattan-map/internal/scale"
	"manhattan-map/pkg/geometry"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"
)

// SwipeHint is the text shown on mobile widths until the first drag.
const SwipeHint = "Swipe to explore"

// Options configures a MapView.
type Options struct {
	// Device decides mobile vs desktop from the widget width.
	Device pan.Device
	// LoadSprite loads a landmark's hover image. Nil or failing loads leave
	// the hotspot without a sprite.
	LoadSprite func(path string) (image.Image, error)
	Log        zerolog.Logger
}

// MapView draws the map image with landmark hotspots on top. On mobile
// widths the map fills the height and can be dragged horizontally with one
// finger; on desktop widths it is contained and centered.
type MapView struct {
	widget.BaseWidget

	state    *app.State
	device   pan.Device
	log      zerolog.Logger
	resolver *scale.Resolver
	pan      *pan.Controller

	img     image.Image
	natural geometry.Size

	markers []*LandmarkButton
	touches touchTracker
	// gesture is set while a mouse drag is in progress, accepted or not, so
	// a rejected start is not retried on every move.
	gesture  bool
	inLayout bool
	renderer *mapRenderer

	offs []func()
}

var (
	_ fyne.Draggable   = (*MapView)(nil)
	_ mobile.Touchable = (*MapView)(nil)
	_ pan.Measurer     = (*MapView)(nil)
)

// New creates a map view over the landmarks held by state.
func New(state *app.State, opts Options) *MapView {
	device := opts.Device
	if device == nil {
		device = app.DefaultBreakpoint()
	}

	m := &MapView{
		state:    state,
		device:   device,
		log:      opts.Log,
		resolver: scale.NewResolver(opts.Log),
	}
	m.pan = pan.NewController(device, m, opts.Log)

	for _, l := range state.Landmarks().All() {
		m.markers = append(m.markers, NewLandmarkButton(l, state, loadSprite(opts, l)))
	}

	m.offs = append(m.offs,
		m.pan.Subscribe(func(pan.Snapshot) { m.placeContent() }),
		state.On(app.EventHoverChanged, func(interface{}) { m.refreshMarkers() }),
		state.On(app.EventHighlightChanged, func(interface{}) { m.refreshMarkers() }),
	)

	m.ExtendBaseWidget(m)
	return m
}

func loadSprite(opts Options, l landmark.Landmark) image.Image {
	if opts.LoadSprite == nil || l.Image == "" {
		return nil
	}
	img, err := opts.LoadSprite(l.Image)
	if err != nil {
		opts.Log.Warn().Err(err).Str("landmark", l.ID).Msg("landmark sprite not loaded")
		return nil
	}
	return img
}

// Close detaches the view from the shared state.
func (m *MapView) Close() {
	for _, off := range m.offs {
		off()
	}
	m.offs = nil
}

// SetImage replaces the map image. The scale is recomputed on the next
// layout, once the rendered size is known.
func (m *MapView) SetImage(img image.Image) {
	m.img = img
	m.natural = geometry.Size{}
	if img != nil {
		b := img.Bounds()
		m.natural = geometry.NewSize(float64(b.Dx()), float64(b.Dy()))
	}
	m.log.Debug().
		Float64("width", m.natural.Width).
		Float64("height", m.natural.Height).
		Msg("map image set")
	m.Refresh()
}

// Scale returns the current design-to-pixel scale.
func (m *MapView) Scale() float64 { return m.resolver.Scale() }

// Offset returns the current pan offset.
func (m *MapView) Offset() geometry.Point2D { return m.pan.Position() }

// IsDragging reports whether a drag is active.
func (m *MapView) IsDragging() bool { return m.pan.IsDragging() }

// Controller returns the drag controller.
func (m *MapView) Controller() *pan.Controller { return m.pan }

// Resolver returns the scale resolver.
func (m *MapView) Resolver() *scale.Resolver { return m.resolver }

// Markers returns the landmark hotspots in display order.
func (m *MapView) Markers() []*LandmarkButton { return m.markers }

// ContainerSize implements pan.Measurer.
func (m *MapView) ContainerSize() geometry.Size {
	s := m.Size()
	return geometry.NewSize(float64(s.Width), float64(s.Height))
}

// ContentSize implements pan.Measurer. It is measured from the current
// widget size every call so bounds never lag behind a resize.
func (m *MapView) ContentSize() geometry.Size {
	return m.renderedSize(m.ContainerSize())
}

func (m *MapView) renderedSize(container geometry.Size) geometry.Size {
	if m.device.IsMobile(container.Width) {
		return scale.FitHeight(m.natural, container.Height)
	}
	return scale.FitContain(m.natural, container)
}

// origin returns the top-left corner of the map image inside the widget.
func (m *MapView) origin(container, rendered geometry.Size) geometry.Point2D {
	centered := geometry.NewPoint2D(
		(container.Width-rendered.Width)/2,
		(container.Height-rendered.Height)/2,
	)
	return r2.Add(centered, m.pan.Position())
}

func (m *MapView) markerAt(p fyne.Position) bool {
	for _, b := range m.markers {
		if !b.Visible() {
			continue
		}
		pos, size := b.Position(), b.Size()
		r := geometry.Rect{
			X:      float64(pos.X),
			Y:      float64(pos.Y),
			Width:  float64(size.Width),
			Height: float64(size.Height),
		}
		if r.Contains(toPoint(p)) {
			return true
		}
	}
	return false
}

func toPoint(p fyne.Position) geometry.Point2D {
	return geometry.NewPoint2D(float64(p.X), float64(p.Y))
}

// TouchDown implements mobile.Touchable.
func (m *MapView) TouchDown(ev *mobile.TouchEvent) {
	m.touches.down(toPoint(ev.Position))
	m.pan.TouchStart(pan.Touch{
		Points:     m.touches.snapshot(),
		OnLandmark: m.markerAt(ev.Position),
	})
}

// TouchUp implements mobile.Touchable.
func (m *MapView) TouchUp(ev *mobile.TouchEvent) {
	m.touches.up(toPoint(ev.Position))
	m.pan.TouchEnd()
}

// TouchCancel implements mobile.Touchable.
func (m *MapView) TouchCancel(*mobile.TouchEvent) {
	m.touches.clear()
	m.pan.TouchCancel()
}

// Dragged implements fyne.Draggable. Touch drags are routed through the
// finger tracker; pointer drags are treated as a single touch.
func (m *MapView) Dragged(ev *fyne.DragEvent) {
	to := toPoint(ev.Position)
	from := r2.Sub(to, geometry.NewPoint2D(float64(ev.Dragged.DX), float64(ev.Dragged.DY)))

	if m.touches.count() > 0 {
		m.touches.move(from, to)
		m.pan.TouchMove(pan.Touch{Points: m.touches.snapshot()})
		return
	}

	if !m.gesture {
		m.gesture = true
		start := fyne.NewPos(float32(from.X), float32(from.Y))
		m.pan.TouchStart(pan.Touch{
			Points:     []geometry.Point2D{from},
			OnLandmark: m.markerAt(start),
		})
	}
	m.pan.TouchMove(pan.Single(to))
}

// DragEnd implements fyne.Draggable.
func (m *MapView) DragEnd() {
	m.gesture = false
	if m.touches.count() == 0 {
		m.pan.TouchEnd()
	}
}

func (m *MapView) refreshMarkers() {
	for _, b := range m.markers {
		b.Refresh()
	}
}

// placeContent moves the image and markers to the current pan offset.
func (m *MapView) placeContent() {
	if m.inLayout {
		return
	}
	if m.renderer != nil {
		m.renderer.place(m.Size())
	}
}

func (m *MapView) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.BackgroundColor())

	img := canvas.NewImageFromImage(m.img)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleSmooth

	hintText := canvas.NewText(SwipeHint, app.ColorPaper)
	hintText.TextSize = theme.TextSize()
	hintText.Alignment = fyne.TextAlignCenter
	hintBg := canvas.NewRectangle(app.ColorTooltip)
	hintBg.CornerRadius = theme.InputRadiusSize() * 2

	r := &mapRenderer{
		view:     m,
		bg:       bg,
		image:    img,
		hintBg:   hintBg,
		hintText: hintText,
	}
	m.renderer = r
	return r
}

type mapRenderer struct {
	view     *MapView
	bg       *canvas.Rectangle
	image    *canvas.Image
	hintBg   *canvas.Rectangle
	hintText *canvas.Text
}

func (r *mapRenderer) Layout(size fyne.Size) {
	m := r.view
	m.inLayout = true
	defer func() { m.inLayout = false }()

	m.pan.Resize(float64(size.Width))
	container := geometry.NewSize(float64(size.Width), float64(size.Height))
	m.resolver.Resolve(m.renderedSize(container))
	m.pan.Reclamp()

	r.bg.Move(fyne.NewPos(0, 0))
	r.bg.Resize(size)
	r.place(size)
}

// place positions everything that follows the pan offset.
func (r *mapRenderer) place(size fyne.Size) {
	m := r.view
	container := geometry.NewSize(float64(size.Width), float64(size.Height))
	overlay := m.resolver.OverlaySize()
	measured := m.img != nil && overlay.Measured()
	origin := m.origin(container, overlay)

	r.image.Hidden = !measured
	r.image.Move(fyne.NewPos(float32(origin.X), float32(origin.Y)))
	r.image.Resize(fyne.NewSize(float32(overlay.Width), float32(overlay.Height)))

	for _, b := range m.markers {
		if !measured {
			b.Hide()
			continue
		}
		box := m.resolver.ProjectLandmark(b.Landmark()).Translate(origin)
		b.Move(fyne.NewPos(float32(box.X), float32(box.Y)))
		b.Resize(fyne.NewSize(float32(box.Width), float32(box.Height)))
		b.Show()
	}

	visible := m.pan.HintVisible()
	r.hintBg.Hidden = !visible
	r.hintText.Hidden = !visible
	if visible {
		pad := theme.Padding() * 2
		text := r.hintText.MinSize()
		hint := fyne.NewSize(text.Width+2*pad, text.Height+pad)
		pos := fyne.NewPos((size.Width-hint.Width)/2, size.Height-hint.Height-4*pad)
		r.hintBg.Move(pos)
		r.hintBg.Resize(hint)
		r.hintText.Move(pos.Add(fyne.NewPos(pad, pad/2)))
		r.hintText.Resize(text)
	}

	canvas.Refresh(r.image)
	canvas.Refresh(r.hintBg)
	canvas.Refresh(r.hintText)
}

func (r *mapRenderer) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (r *mapRenderer) Refresh() {
	r.image.Image = r.view.img
	r.image.Refresh()
	r.bg.FillColor = theme.BackgroundColor()
	r.Layout(r.view.Size())
}

func (r *mapRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.bg, r.image}
	for _, b := range r.view.markers {
		objs = append(objs, b)
	}
	return append(objs, r.hintBg, r.hintText)
}

func (r *mapRenderer) Destroy() {}
