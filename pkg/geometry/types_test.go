package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectScale(t *testing.T) {
	r := NewRect(630, 127, 98, 266)

	got := r.Scale(0.5)

	assert.Equal(t, NewRect(315, 63.5, 49, 133), got)
	assert.Equal(t, r, r.Scale(1))
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	assert.True(t, r.Contains(NewPoint2D(10, 10)))
	assert.True(t, r.Contains(NewPoint2D(30, 30)))
	assert.False(t, r.Contains(NewPoint2D(9.9, 15)))
	assert.False(t, r.Contains(NewPoint2D(15, 30.1)))
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(1, 2, 3, 4).Translate(NewPoint2D(-1, 8))

	assert.Equal(t, NewRect(0, 10, 3, 4), r)
	assert.Equal(t, NewPoint2D(1.5, 12), r.Center())
}

func TestRectApproxEqual(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	assert.True(t, a.ApproxEqual(NewRect(0.4, -0.4, 10.5, 9.5), 1))
	assert.False(t, a.ApproxEqual(NewRect(2, 0, 10, 10), 1))
}

func TestSizeMeasured(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want bool
	}{
		{"positive", NewSize(375, 800), true},
		{"zero height", NewSize(375, 0), false},
		{"zero width", NewSize(0, 800), false},
		{"negative", NewSize(-1, 10), false},
		{"nan", NewSize(math.NaN(), 10), false},
		{"inf", NewSize(10, math.Inf(1)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.size.Measured())
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(12, 0, 10))
	assert.Equal(t, 0.0, Clamp(7, 0, 0))

	// idempotent
	v := Clamp(-250, -205, 205)
	assert.Equal(t, v, Clamp(v, -205, 205))
}
