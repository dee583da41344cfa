package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// HotReloader watches the running binary and reports when it is rebuilt.
// It is a development aid and is only started when enabled in config.
type HotReloader struct {
	execPath    string
	startupTime time.Time
	settle      time.Duration
	log         zerolog.Logger

	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	onNewBinary func()
}

// NewHotReloader creates a reloader for the current executable.
func NewHotReloader(log zerolog.Logger) (*HotReloader, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	// go build replaces the file, so follow symlinks to the real path.
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return NewHotReloaderForPath(execPath, log)
}

// NewHotReloaderForPath creates a reloader watching an arbitrary file.
func NewHotReloaderForPath(path string, log zerolog.Logger) (*HotReloader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return &HotReloader{
		execPath:    path,
		startupTime: info.ModTime(),
		settle:      500 * time.Millisecond,
		log:         log,
	}, nil
}

// OnNewBinary sets the callback invoked, from a background goroutine, when
// a newer binary is detected.
func (h *HotReloader) OnNewBinary(callback func()) {
	h.mu.Lock()
	h.onNewBinary = callback
	h.mu.Unlock()
}

// Start begins watching the binary's directory. Watching the directory
// rather than the file survives the file being replaced.
func (h *HotReloader) Start() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(h.execPath)); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(h.execPath), err)
	}

	h.mu.Lock()
	h.watcher = w
	h.mu.Unlock()

	go h.watchLoop(w)
	return nil
}

// Stop stops watching.
func (h *HotReloader) Stop() {
	h.mu.Lock()
	w := h.watcher
	h.watcher = nil
	h.mu.Unlock()
	if w != nil {
		w.Close()
	}
}

func (h *HotReloader) watchLoop(w *fsnotify.Watcher) {
	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(h.execPath) {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				// Writes arrive in bursts while the linker runs.
				pending = time.After(h.settle)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			h.log.Warn().Err(err).Msg("hot reload: watcher error")
		case <-pending:
			pending = nil
			if !h.checkForUpdate() {
				continue
			}
			h.mu.Lock()
			cb := h.onNewBinary
			h.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}
}

// checkForUpdate returns true if the binary has been modified since startup.
func (h *HotReloader) checkForUpdate() bool {
	info, err := os.Stat(h.execPath)
	if err != nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return info.ModTime().After(h.startupTime)
}

// ExecPath returns the path being watched.
func (h *HotReloader) ExecPath() string {
	return h.execPath
}

// StartupTime returns the binary modification time the reloader compares against.
func (h *HotReloader) StartupTime() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.startupTime
}

// ResetBaseline adopts the current modification time as the baseline.
// Call this when the user declines a restart.
func (h *HotReloader) ResetBaseline() {
	if info, err := os.Stat(h.execPath); err == nil {
		h.mu.Lock()
		h.startupTime = info.ModTime()
		h.mu.Unlock()
	}
}

// Restart replaces the current process with a new instance of the binary.
// It does not return on success.
func (h *HotReloader) Restart() error {
	return syscall.Exec(h.execPath, os.Args, os.Environ())
}
