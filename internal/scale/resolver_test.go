package scale

import (
	"math"
	"testing"

	"manhattan-map/internal/landmark"
	"manhattan-map/pkg/geometry"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestResolveDefaultsBeforeMeasurement(t *testing.T) {
	r := NewResolver(zerolog.Nop())

	assert.Equal(t, DefaultScale, r.Scale())
	assert.Equal(t, DefaultScale, r.Resolve(geometry.NewSize(0, 0)))
	assert.Equal(t, geometry.Size{}, r.OverlaySize())
}

func TestResolveUsesRenderedHeight(t *testing.T) {
	r := NewResolver(zerolog.Nop())

	s := r.Resolve(geometry.NewSize(785.1, 800))

	assert.True(t, scalar.EqualWithinAbs(0.785, s, 0.001), "scale=%v", s)
	assert.Equal(t, geometry.NewSize(785.1, 800), r.OverlaySize())
}

func TestResolveKeepsPreviousOnZeroHeight(t *testing.T) {
	r := NewResolver(zerolog.Nop())
	prev := r.Resolve(geometry.NewSize(500, 509.5))

	for _, size := range []geometry.Size{
		geometry.NewSize(500, 0),
		geometry.NewSize(0, 0),
		geometry.NewSize(500, -10),
		geometry.NewSize(500, math.NaN()),
		geometry.NewSize(500, math.Inf(1)),
	} {
		got := r.Resolve(size)
		assert.Equal(t, prev, got)
		assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))
	}
	assert.Equal(t, 0.5, r.Scale())
	assert.Equal(t, geometry.NewSize(500, 509.5), r.OverlaySize())
}

func TestProjectLandmarksWithinOnePixel(t *testing.T) {
	r := NewResolver(zerolog.Nop())
	heights := []float64{320, 509.5, 667, 800, 1019, 1440, 2160}

	for _, h := range heights {
		s := r.Resolve(geometry.NewSize(h*landmark.DesignWidth/landmark.DesignHeight, h))
		for _, l := range landmark.Defaults() {
			got := r.ProjectLandmark(l)
			want := geometry.NewRect(l.Left*s, l.Top*s, l.Width*s, l.Height*s)
			assert.True(t, got.ApproxEqual(want, 1), "%s at h=%v: %+v vs %+v", l.ID, h, got, want)
		}
	}
}

func TestProjectBottomEdgeMeetsImage(t *testing.T) {
	r := NewResolver(zerolog.Nop())
	r.Resolve(geometry.NewSize(785, 800))

	idx := landmark.NewIndex(landmark.Defaults())
	statue, _ := idx.ByID("statue-liberty")
	box := r.ProjectLandmark(statue)

	assert.True(t, scalar.EqualWithinAbs(800, box.Y+box.Height, 1e-9))
}

func TestToDesignRoundTrip(t *testing.T) {
	r := NewResolver(zerolog.Nop())
	r.Resolve(geometry.NewSize(600, 611.4))

	p := geometry.NewPoint2D(630, 127)
	back := r.ToDesign(r.Project(geometry.NewRect(p.X, p.Y, 0, 0)).TopLeft())

	assert.True(t, scalar.EqualWithinAbs(p.X, back.X, 1e-9))
	assert.True(t, scalar.EqualWithinAbs(p.Y, back.Y, 1e-9))
}

func TestCustomDesignHeight(t *testing.T) {
	r := NewResolverForHeight(500, zerolog.Nop())
	assert.Equal(t, 2.0, r.Resolve(geometry.NewSize(100, 1000)))

	r = NewResolverForHeight(0, zerolog.Nop())
	assert.Equal(t, 1.0, r.Resolve(geometry.NewSize(100, landmark.DesignHeight)))
}

func TestFitHeight(t *testing.T) {
	natural := geometry.NewSize(1000, 1019)

	got := FitHeight(natural, 800)
	assert.True(t, scalar.EqualWithinAbs(785.08, got.Width, 0.01), "width=%v", got.Width)
	assert.Equal(t, 800.0, got.Height)

	assert.Equal(t, geometry.Size{}, FitHeight(geometry.Size{}, 800))
	assert.Equal(t, geometry.Size{}, FitHeight(natural, 0))
}

func TestFitContain(t *testing.T) {
	natural := geometry.NewSize(1000, 1019)

	wide := FitContain(natural, geometry.NewSize(1920, 1019))
	assert.Equal(t, natural, wide)

	tall := FitContain(natural, geometry.NewSize(500, 2000))
	assert.Equal(t, 500.0, tall.Width)
	assert.Equal(t, 509.5, tall.Height)

	assert.Equal(t, geometry.Size{}, FitContain(natural, geometry.Size{}))
}
