package model

import (
	"math"

	"github.com/dislotools/lpa2d/geom"
)

// Ticks returns the grid tick positions along one axis for a region of
// the given shape and size, with the given step. For a square the
// ticks span [0, m·step]; for a disk they span [-m·step, m·step] so
// the grid covers the whole disk. m = ⌈size/step⌉, so a step that does
// not divide the size only distorts the outermost cells.
func Ticks(shape geom.Shape, size, step float64) []float64 {
	m := int(math.Ceil(size / step))
	if shape == geom.Disk {
		t := make([]float64, 2*m+1)
		for i := range t {
			t[i] = step * float64(i-m)
		}
		return t
	}
	t := make([]float64, m+1)
	for i := range t {
		t[i] = step * float64(i)
	}
	return t
}

// cellCorners returns the lower-left corner of every grid cell, f times
// each, in row-major order. ticks must already exclude the last tick.
func cellCorners(ticks []float64, f int) []geom.Point {
	corners := make([]geom.Point, 0, len(ticks)*len(ticks)*f)
	for _, y := range ticks {
		for _, x := range ticks {
			for k := 0; k < f; k++ {
				corners = append(corners, geom.Point{X: x, Y: y})
			}
		}
	}
	return corners
}

// evenSenses returns the per-cell balanced senses matching cellCorners:
// f/2 positive then f/2 negative for every cell, in fixed order.
func evenSenses(cells, f int) []int8 {
	senses := make([]int8, 0, cells*f)
	for c := 0; c < cells; c++ {
		for k := 0; k < f/2; k++ {
			senses = append(senses, 1)
		}
		for k := 0; k < f/2; k++ {
			senses = append(senses, -1)
		}
	}
	return senses
}
