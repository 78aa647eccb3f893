package model

import (
	"math"
	"math/rand"

	"github.com/dislotools/lpa2d/geom"
)

// Generate draws one pattern under the given model kind and parameters,
// inside the region, using the injected random source. Parameters are
// validated before any random draw happens, so a failed call leaves the
// source untouched.
func Generate(kind Kind, reg geom.Region, p Params, rng *rand.Rand) (Pattern, error) {
	if err := p.Validate(kind); err != nil {
		return Pattern{}, err
	}
	switch kind {
	case RDD:
		return generateRDD(reg, p, rng), nil
	case RRDD:
		return generateRRDD(reg, p, rng), nil
	default:
		return generateRCDD(reg, p, rng), nil
	}
}

// generateRDD draws round(density·volume) points uniformly in the
// region. Disk sampling is polar with radius = size·√u; the square
// root keeps the density uniform in area rather than in radius.
func generateRDD(reg geom.Region, p Params, rng *rand.Rand) Pattern {
	n := int(math.Round(p.Density * reg.Volume()))
	size := reg.Size()

	pts := make([]geom.Point, n)
	for i := range pts {
		if reg.Shape() == geom.Disk {
			phi := 2 * math.Pi * rng.Float64()
			rad := size * math.Sqrt(rng.Float64())
			pts[i] = geom.Point{X: rad * math.Cos(phi), Y: rad * math.Sin(phi)}
		} else {
			pts[i] = geom.Point{X: size * rng.Float64(), Y: size * rng.Float64()}
		}
	}

	senses := make([]int8, 0, n)
	for i := 0; i < n/2; i++ {
		senses = append(senses, 1)
	}
	for i := 0; i < n/2; i++ {
		senses = append(senses, -1)
	}
	if n%2 != 0 {
		// A single leftover point gets a uniformly random sense.
		if rng.Float64() < 0.5 {
			senses = append(senses, 1)
		} else {
			senses = append(senses, -1)
		}
	}
	return Pattern{Positions: pts, Senses: senses}
}

// generateRRDD fills each grid cell with exactly f uniformly placed
// points. For a disk region the whole bounding grid is generated first
// and trimmed by the strict interior mask afterwards.
func generateRRDD(reg geom.Region, p Params, rng *rand.Rand) Pattern {
	ticks := Ticks(reg.Shape(), reg.Size(), p.CellSide)
	cellTicks := ticks[:len(ticks)-1]
	cells := len(cellTicks) * len(cellTicks)
	f := p.filling(RRDD)

	corners := cellCorners(cellTicks, f)
	pts := make([]geom.Point, len(corners))
	for i, c := range corners {
		pts[i] = geom.Point{
			X: c.X + p.CellSide*rng.Float64(),
			Y: c.Y + p.CellSide*rng.Float64(),
		}
	}

	var senses []int8
	if p.Variant == VariantRandom {
		senses = balancedShuffle(len(pts), rng)
	} else {
		senses = evenSenses(cells, f)
	}
	return maskToRegion(reg, Pattern{Positions: pts, Senses: senses})
}

// generateRCDD confines each cell's points to its wall border, and,
// for VariantDipole, expands each wall anchor into a (+,-) pair at
// ±length/2 along a uniformly random angle.
func generateRCDD(reg geom.Region, p Params, rng *rand.Rand) Pattern {
	ticks := Ticks(reg.Shape(), reg.Size(), p.CellSide)
	cellTicks := ticks[:len(ticks)-1]
	cells := len(cellTicks) * len(cellTicks)
	f := p.filling(RCDD)

	// Wall brick dimensions: l1 is half the wall thickness, the bricks
	// tile the cell border without overlap.
	l1 := p.WallThickness / 2
	l2 := p.CellSide - l1

	pts := make([]geom.Point, 0, cells*f)
	var senses []int8
	for _, y := range cellTicks {
		for _, x := range cellTicks {
			corner := geom.Point{X: x, Y: y}
			if p.Variant == VariantDipole {
				for a := 0; a < f/2; a++ {
					anchor := corner.Add(wallPoint(rng, l1, l2))
					phi := 2 * math.Pi * rng.Float64()
					u := geom.Point{
						X: p.DipoleLength / 2 * math.Cos(phi),
						Y: p.DipoleLength / 2 * math.Sin(phi),
					}
					pts = append(pts, anchor.Add(u), anchor.Sub(u))
				}
			} else {
				for k := 0; k < f; k++ {
					pts = append(pts, corner.Add(wallPoint(rng, l1, l2)))
				}
			}
		}
	}

	switch p.Variant {
	case VariantRandom:
		senses = balancedShuffle(len(pts), rng)
	case VariantEven:
		senses = evenSenses(cells, f)
	default: // VariantDipole: pairs are emitted (+, -) in order.
		senses = make([]int8, len(pts))
		for i := range senses {
			if i%2 == 0 {
				senses[i] = 1
			} else {
				senses[i] = -1
			}
		}
	}
	return maskToRegion(reg, Pattern{Positions: pts, Senses: senses})
}

// wallPoint maps a uniform draw into one of the four border bricks of a
// cell, chosen uniformly, in cell-local coordinates.
func wallPoint(rng *rand.Rand, l1, l2 float64) geom.Point {
	u1, u2 := rng.Float64(), rng.Float64()
	switch rng.Intn(4) {
	case 0:
		return geom.Point{X: l1 + l2*u1, Y: l1 * u2}
	case 1:
		return geom.Point{X: l2 * u1, Y: l2 + l1*u2}
	case 2:
		return geom.Point{X: l1 * u1, Y: l2 * u2}
	default:
		return geom.Point{X: l2 + l1*u1, Y: l1 + l2*u2}
	}
}

// balancedShuffle returns n senses, half positive and half negative,
// in one global random order.
func balancedShuffle(n int, rng *rand.Rand) []int8 {
	senses := make([]int8, n)
	for i := 0; i < n/2; i++ {
		senses[i] = 1
	}
	for i := n / 2; i < n; i++ {
		senses[i] = -1
	}
	rng.Shuffle(n, func(i, j int) {
		senses[i], senses[j] = senses[j], senses[i]
	})
	return senses
}

// maskToRegion trims a pattern to the strict interior of a disk region.
// Square regions are returned unchanged: their grid tiles the region.
func maskToRegion(reg geom.Region, pat Pattern) Pattern {
	if reg.Shape() != geom.Disk {
		return pat
	}
	mask := reg.InteriorMask(pat.Positions)
	pts := pat.Positions[:0]
	senses := pat.Senses[:0]
	for i, keep := range mask {
		if keep {
			pts = append(pts, pat.Positions[i])
			senses = append(senses, pat.Senses[i])
		}
	}
	return Pattern{Positions: pts, Senses: senses}
}
