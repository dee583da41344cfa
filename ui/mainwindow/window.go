// Package mainwindow provides the main application window.
package mainwindow

import (
	"image"

	"manhattan-map/internal/app"
	"manhattan-map/internal/assets"
	"manhattan-map/internal/config"
	"manhattan-map/internal/landmark"
	"manhattan-map/internal/version"
	"manhattan-map/ui/dialogs"
	"manhattan-map/ui/mapview"
	"manhattan-map/ui/panels"
	"manhattan-map/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"github.com/rs/zerolog"
)

const appTitle = "Manhattan Map"

// MainWindow is the primary application window: the map fills the window
// and the navigation panel floats over its right edge.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	cfg   config.Config
	prefs *prefs.Prefs
	log   zerolog.Logger

	device       app.Breakpoint
	mapView      *mapview.MapView
	sidePanel    *panels.SidePanel
	profilePanel *panels.ProfilePanel
	modal        *dialogs.LandmarkDialog

	lastSize fyne.Size

	// Menu items that need state tracking
	highlightItem *fyne.MenuItem
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, cfg config.Config, p *prefs.Prefs, log zerolog.Logger) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		cfg:    cfg,
		prefs:  p,
		log:    log,
		device: app.Breakpoint{MaxWidth: cfg.Breakpoint},
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restoreWindowSize()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.mapView = mapview.New(mw.state, mapview.Options{
		Device:     mw.device,
		LoadSprite: assets.Load,
		Log:        mw.log,
	})
	mw.mapView.SetImage(mw.loadMapImage())

	mw.sidePanel = panels.NewSidePanel(mw.state, mw.device, mw.log)
	mw.profilePanel = panels.NewProfilePanel(mw.state, mw.device, mw.loadPortrait(), mw.log)
	mw.modal = dialogs.NewLandmarkDialog(mw.state, mw.Window, mw.log)

	content := container.New(&resizeLayout{onResize: mw.onResize},
		mw.mapView,
		mw.profilePanel.Container(),
		mw.sidePanel.Container(),
	)
	mw.SetPadded(false)
	mw.SetContent(content)
}

// loadMapImage loads the configured map, falling back to a blank image with
// the map's proportions so the layout still works.
func (mw *MainWindow) loadMapImage() image.Image {
	img, err := assets.Load(mw.cfg.MapImage)
	if err != nil {
		mw.log.Warn().Err(err).Str("path", mw.cfg.MapImage).Msg("map image not loaded, using placeholder")
		return assets.Placeholder(landmark.DesignWidth, landmark.DesignHeight)
	}
	return img
}

// loadPortrait loads the profile picture, or nil to use the default icon.
func (mw *MainWindow) loadPortrait() image.Image {
	if mw.cfg.Portrait == "" {
		return nil
	}
	img, err := assets.Load(mw.cfg.Portrait)
	if err != nil {
		mw.log.Debug().Err(err).Str("path", mw.cfg.Portrait).Msg("portrait not loaded")
		return nil
	}
	return assets.Fit(img, 256)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Reload Map Image", mw.onReloadImage),
	)

	mw.highlightItem = fyne.NewMenuItem("Highlight Landmarks", mw.onToggleHighlight)
	viewMenu := fyne.NewMenu("View", mw.highlightItem)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventHighlightChanged, func(data interface{}) {
		if on, ok := data.(bool); ok {
			mw.highlightItem.Checked = on
			if menu := mw.MainMenu(); menu != nil {
				menu.Refresh()
			}
		}
	})

	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape && mw.state.IsModalOpen() {
			mw.modal.Dismiss()
		}
	})

	mw.SetCloseIntercept(func() {
		mw.SavePreferences()
		mw.mapView.Close()
		mw.sidePanel.Close()
		mw.profilePanel.Close()
		mw.modal.Close()
		mw.Close()
	})
}

func (mw *MainWindow) onResize(size fyne.Size) {
	if size == mw.lastSize {
		return
	}
	mw.lastSize = size
	mw.sidePanel.SetWidth(float64(size.Width))
	mw.profilePanel.SetWidth(float64(size.Width))
	mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
}

func (mw *MainWindow) restoreWindowSize() {
	w := mw.prefs.FloatWithFallback(prefs.KeyWindowWidth, float64(mw.cfg.Window.Width))
	h := mw.prefs.FloatWithFallback(prefs.KeyWindowHeight, float64(mw.cfg.Window.Height))
	if w <= 0 || h <= 0 {
		return
	}
	mw.Resize(fyne.NewSize(float32(w), float32(h)))
}

// SavePreferences writes the current preferences to disk.
func (mw *MainWindow) SavePreferences() {
	if err := mw.prefs.Save(); err != nil {
		mw.log.Warn().Err(err).Msg("save preferences")
	}
}

// SavePreferencesIfChanged writes preferences only when something changed.
func (mw *MainWindow) SavePreferencesIfChanged() {
	if _, err := mw.prefs.SaveIfChanged(); err != nil {
		mw.log.Warn().Err(err).Msg("save preferences")
	}
}

// MapView returns the map widget.
func (mw *MainWindow) MapView() *mapview.MapView {
	return mw.mapView
}

// SidePanel returns the navigation panel.
func (mw *MainWindow) SidePanel() *panels.SidePanel {
	return mw.sidePanel
}

// ProfilePanel returns the profile panel.
func (mw *MainWindow) ProfilePanel() *panels.ProfilePanel {
	return mw.profilePanel
}

// Modal returns the landmark dialog.
func (mw *MainWindow) Modal() *dialogs.LandmarkDialog {
	return mw.modal
}

func (mw *MainWindow) onReloadImage() {
	mw.mapView.SetImage(mw.loadMapImage())
}

func (mw *MainWindow) onToggleHighlight() {
	mw.state.SetHighlightAll(!mw.state.HighlightAll())
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+appTitle,
		appTitle+" "+version.String()+"\n\n"+
			"An illustrated map of Manhattan.\n"+
			"Tap a landmark to learn more.",
		mw.Window)
}

// resizeLayout stacks every object over the full area and reports size
// changes, since fyne windows have no resize callback.
type resizeLayout struct {
	onResize func(fyne.Size)
}

func (l *resizeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
	if l.onResize != nil {
		l.onResize(size)
	}
}

func (l *resizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	size := fyne.NewSize(0, 0)
	for _, o := range objects {
		size = size.Max(o.MinSize())
	}
	return size
}
