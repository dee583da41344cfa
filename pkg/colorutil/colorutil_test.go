package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#F5F3EF")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xF5, G: 0xF3, B: 0xEF, A: 0xFF}, c)

	c, err = ParseHex("ffd50066")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0xD5, B: 0x00, A: 0x66}, c)

	for _, bad := range []string{"", "#fff", "#GGGGGG", "#1234567"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestMustParseHexPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseHex("nope") })
}

func TestWithAlpha(t *testing.T) {
	ink := color.NRGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}

	assert.Equal(t, uint8(0xE6), WithAlpha(ink, 0.9).A)
	assert.Equal(t, uint8(0), WithAlpha(ink, -1).A)
	assert.Equal(t, uint8(0xFF), WithAlpha(ink, 2).A)
	assert.Equal(t, ink.R, WithAlpha(ink, 0.5).R)
}
