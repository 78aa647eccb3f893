package spatial

import (
	"gonum.org/v1/gonum/floats"
)

// Intervals builds the default analysis radius schedule for a pattern
// with the given inter-point distance inside a region of the given
// size. The schedule spans from 0 to half the region size, extended to
// at least four inter-point distances, with 100 points per four
// inter-point distances and never fewer than 2 points.
//
// The returned zoom is the index bounding the [0, 4·interDist] prefix
// of the schedule, suitable for close-up plots of K, g, Ga and Gs.
func Intervals(interDist, size float64) (radii []float64, zoom int, err error) {
	if interDist <= 0 || size <= 0 {
		return nil, 0, ErrIntervals
	}
	c := size / 2
	if c < 4*interDist {
		c = 4 * interDist
	}
	n := int(c / (4 * interDist) * 100)
	if n < 2 {
		n = 2
	}
	radii = make([]float64, n)
	floats.Span(radii, 0, c)
	zoom = 100
	if zoom > n-1 {
		zoom = n - 1
	}
	return radii, zoom, nil
}
