// Package main provides the entry point for the Manhattan Map application.
package main

import (
	"fmt"
	"runtime/debug"

	"manhattan-map/internal/app"
	"manhattan-map/internal/config"
	"manhattan-map/internal/landmark"
	"manhattan-map/internal/version"
	"manhattan-map/ui/mainwindow"
	"manhattan-map/ui/prefs"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

const appID = "io.github.manhattanmap"

func main() {
	cfg, err := config.LoadFromEnv()
	log := app.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Warn().Err(err).Msg("config not fully applied, using defaults where needed")
	}
	log.Info().Str("version", version.String()).Msg("starting Manhattan Map")

	landmarks, err := landmark.LoadOrDefault(cfg.Landmarks)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Landmarks).Msg("landmarks not loaded, using built-in set")
		landmarks = landmark.Defaults()
	}
	if dups := landmark.NewIndex(landmarks).Duplicates(); len(dups) > 0 {
		log.Warn().Strs("ids", dups).Msg("duplicate landmark ids, first wins")
	}

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.MapTheme{})

	win, ok := buildWindow(fyneApp, cfg, landmarks, log)
	if !ok {
		showFallback(fyneApp)
		fyneApp.Run()
		return
	}

	if cfg.HotReload {
		setupHotReload(win, log)
	}

	win.ShowAndRun()
}

// buildWindow creates the main window, reporting false if construction
// panicked.
func buildWindow(fyneApp fyne.App, cfg config.Config, landmarks []landmark.Landmark, log zerolog.Logger) (win *mainwindow.MainWindow, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("panic", fmt.Sprint(r)).
				Bytes("stack", debug.Stack()).
				Msg("main window failed")
			win, ok = nil, false
		}
	}()

	state := app.NewState(landmarks)
	return mainwindow.New(fyneApp, state, cfg, prefs.Load(), log), true
}

// showFallback shows the generic error screen.
func showFallback(fyneApp fyne.App) {
	w := fyneApp.NewWindow("Manhattan Map")
	msg := widget.NewLabelWithStyle("Something went wrong.", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	quit := widget.NewButton("Quit", fyneApp.Quit)
	w.SetContent(container.NewCenter(container.NewVBox(msg, quit)))
	w.Resize(fyne.NewSize(480, 240))
	w.Show()
}

// setupHotReload configures automatic restart detection when the binary is recompiled.
func setupHotReload(win *mainwindow.MainWindow, log zerolog.Logger) {
	reloader, err := app.NewHotReloader(log)
	if err != nil {
		log.Warn().Err(err).Msg("hot reload disabled")
		return
	}

	log.Info().
		Str("path", reloader.ExecPath()).
		Time("modified", reloader.StartupTime()).
		Msg("hot reload watching")

	reloader.OnNewBinary(func() {
		log.Info().Msg("hot reload: newer binary detected")
		win.SavePreferencesIfChanged()
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if !restart {
					reloader.ResetBaseline()
					return
				}
				win.SavePreferences()
				log.Info().Msg("hot reload: restarting")
				if err := reloader.Restart(); err != nil {
					log.Error().Err(err).Msg("hot reload: restart failed")
				}
			}, win.Window)
	})

	if err := reloader.Start(); err != nil {
		log.Warn().Err(err).Msg("hot reload disabled")
		return
	}
	win.SetOnClosed(reloader.Stop)
}
