package panels

import (
	"testing"

	"manhattan-map/internal/app"
	"manhattan-map/internal/landmark"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestProfile(t *testing.T, width float64) (*ProfilePanel, *app.State) {
	t.Helper()
	test.NewApp()
	state := app.NewState(landmark.Defaults())
	pp := NewProfilePanel(state, app.DefaultBreakpoint(), nil, zerolog.Nop())
	t.Cleanup(pp.Close)
	pp.SetWidth(width)
	return pp, state
}

func TestProfileDesktopShowsDetails(t *testing.T) {
	pp, state := newTestProfile(t, 1280)

	assert.True(t, pp.DetailsVisible())
	assert.False(t, pp.MenuVisible())

	test.Tap(pp.Portrait())
	assert.False(t, state.ProfileMenuOpen())
	assert.False(t, pp.MenuVisible())
}

func TestPortraitOpensMobileMenu(t *testing.T) {
	pp, state := newTestProfile(t, 375)

	assert.False(t, pp.DetailsVisible())
	assert.False(t, pp.MenuVisible())

	test.Tap(pp.Portrait())
	assert.True(t, state.ProfileMenuOpen())
	assert.True(t, pp.MenuVisible())

	test.Tap(pp.CloseMenuButton())
	assert.False(t, state.ProfileMenuOpen())
	assert.False(t, pp.MenuVisible())
}

func TestPortraitClosesNavMenuFirst(t *testing.T) {
	pp, state := newTestProfile(t, 375)
	state.SetMenuOpen(true)

	test.Tap(pp.Portrait())

	assert.False(t, state.MenuOpen())
	assert.False(t, state.ProfileMenuOpen())
}

func TestResizeToDesktopClosesProfileMenu(t *testing.T) {
	pp, state := newTestProfile(t, 375)
	test.Tap(pp.Portrait())

	pp.SetWidth(1024)

	assert.False(t, state.ProfileMenuOpen())
	assert.False(t, pp.MenuVisible())
	assert.True(t, pp.DetailsVisible())
}
