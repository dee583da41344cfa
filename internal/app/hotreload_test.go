package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotReloaderDetectsRebuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manhattan-map")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o755))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	h, err := NewHotReloaderForPath(path, zerolog.Nop())
	require.NoError(t, err)
	h.settle = 10 * time.Millisecond

	fired := make(chan struct{}, 1)
	h.OnNewBinary(func() { fired <- struct{}{} })
	require.NoError(t, h.Start())
	defer h.Stop()

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o755))

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("expected new binary callback")
	}
}

func TestHotReloaderResetBaseline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o755))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	h, err := NewHotReloaderForPath(path, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, h.checkForUpdate())

	now := time.Now()
	require.NoError(t, os.Chtimes(path, now, now))
	assert.True(t, h.checkForUpdate())

	h.ResetBaseline()
	assert.False(t, h.checkForUpdate())
	assert.Equal(t, path, h.ExecPath())
}

func TestHotReloaderMissingFile(t *testing.T) {
	_, err := NewHotReloaderForPath(filepath.Join(t.TempDir(), "nope"), zerolog.Nop())
	assert.Error(t, err)
}
