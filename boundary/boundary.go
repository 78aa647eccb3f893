package boundary

import (
	"math"

	"github.com/dislotools/lpa2d/geom"
)

// Generator produces one fresh, independently drawn pattern patch for a
// ghost-border cell. Each invocation advances the shared random source.
type Generator func() (pts []geom.Point, senses []int8, err error)

// ImagePositions returns the image dislocations of (pts, senses) for a
// disk of the given radius. A point at distance ρ > 0 from the origin
// yields one image at radius radius²/ρ along the same angle with the
// sense flipped; points at the exact origin are skipped.
//
// The compatibility checks (disk region, screw type) are enforced by
// the caller owning the region and type tags.
func ImagePositions(radius float64, pts []geom.Point, senses []int8) ([]geom.Point, []int8) {
	imgPts := make([]geom.Point, 0, len(pts))
	imgSenses := make([]int8, 0, len(senses))
	for i, p := range pts {
		n := p.Norm()
		if n == 0 {
			continue
		}
		phi := math.Atan2(p.Y, p.X)
		r := radius * radius / n
		imgPts = append(imgPts, geom.Point{X: r * math.Cos(phi), Y: r * math.Sin(phi)})
		imgSenses = append(imgSenses, -senses[i])
	}
	return imgPts, imgSenses
}

// RingDisplacements returns the 8·rank integer lattice displacements of
// the cells at Chebyshev distance exactly rank from the origin cell,
// in a deterministic spiral order. Returns nil when rank < 1.
func RingDisplacements(rank int) [][2]int {
	if rank < 1 {
		return nil
	}
	u := make([][2]int, 0, 8*rank)
	for j := 0; j < 2*rank; j++ {
		for _, k := range [2]int{1, -1} {
			u = append(u, [2]int{-rank * k, (rank - j) * k})
			u = append(u, [2]int{(rank - j) * k, rank * k})
		}
	}
	return u
}

// Displacements returns the displacements of every cell within
// Chebyshev distance 1..rank of the origin cell, each exactly once.
func Displacements(rank int) [][2]int {
	u := make([][2]int, 0, 4*rank*(rank+1))
	for i := 1; i <= rank; i++ {
		u = append(u, RingDisplacements(i)...)
	}
	return u
}

// Replications returns the pattern (pts, senses) tiled onto every cell
// within Chebyshev distance 1..rank of a square of the given side.
// Senses are carried over unchanged.
func Replications(side float64, pts []geom.Point, senses []int8, rank int) ([]geom.Point, []int8) {
	disp := Displacements(rank)
	repPts := make([]geom.Point, 0, len(pts)*len(disp))
	repSenses := make([]int8, 0, len(senses)*len(disp))
	for _, d := range disp {
		off := geom.Point{X: side * float64(d[0]), Y: side * float64(d[1])}
		for _, p := range pts {
			repPts = append(repPts, p.Add(off))
		}
		repSenses = append(repSenses, senses...)
	}
	return repPts, repSenses
}

// GhostPatches fills every cell within Chebyshev distance 1..rank of a
// square of the given side with an independently generated patch.
// Unlike Replications, the patches are fresh draws, which approximates
// an infinite homogeneous medium without periodic correlation
// artifacts. The ring traversal order is deterministic, so a fixed
// generator state yields a reproducible border.
func GhostPatches(side float64, rank int, gen Generator) ([]geom.Point, []int8, error) {
	var ghostPts []geom.Point
	var ghostSenses []int8
	for _, d := range Displacements(rank) {
		pts, senses, err := gen()
		if err != nil {
			return nil, nil, err
		}
		off := geom.Point{X: side * float64(d[0]), Y: side * float64(d[1])}
		for _, p := range pts {
			ghostPts = append(ghostPts, p.Add(off))
		}
		ghostSenses = append(ghostSenses, senses...)
	}
	return ghostPts, ghostSenses, nil
}
