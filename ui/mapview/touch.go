package mapview

import (
	"manhattan-map/pkg/geometry"

	"gonum.org/v1/gonum/spatial/r2"
)

// touchTracker keeps the last known position of every finger on the map.
// fyne's touch events carry no finger id, so points are matched by distance.
type touchTracker struct {
	points []geometry.Point2D
}

func (t *touchTracker) down(p geometry.Point2D) {
	t.points = append(t.points, p)
}

func (t *touchTracker) nearest(p geometry.Point2D) int {
	best, bestDist := -1, 0.0
	for i, q := range t.points {
		d := r2.Norm2(r2.Sub(p, q))
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// move updates the finger that was at from to its new position to.
func (t *touchTracker) move(from, to geometry.Point2D) {
	if i := t.nearest(from); i >= 0 {
		t.points[i] = to
	}
}

func (t *touchTracker) up(p geometry.Point2D) {
	if i := t.nearest(p); i >= 0 {
		t.points = append(t.points[:i], t.points[i+1:]...)
	}
}

func (t *touchTracker) clear() {
	t.points = nil
}

func (t *touchTracker) count() int {
	return len(t.points)
}

func (t *touchTracker) snapshot() []geometry.Point2D {
	return append([]geometry.Point2D(nil), t.points...)
}
