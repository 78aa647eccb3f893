package boundary_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dislotools/lpa2d/boundary"
	"github.com/dislotools/lpa2d/geom"
)

// TestImagePositions_ReciprocalRadius verifies the size²/ρ formula, the
// sign flip, and that reflecting an image would restore the original
// radius.
func TestImagePositions_ReciprocalRadius(t *testing.T) {
	const s = 2.0
	pts := []geom.Point{{X: 1, Y: 0}, {X: 0, Y: 0.5}}
	senses := []int8{1, -1}

	imgPts, imgSenses := boundary.ImagePositions(s, pts, senses)
	require.Len(t, imgPts, 2)

	// Point at distance 1 → image at distance 4 on the same ray.
	require.InDelta(t, 4.0, imgPts[0].X, 1e-12)
	require.InDelta(t, 0.0, imgPts[0].Y, 1e-12)
	require.Equal(t, int8(-1), imgSenses[0])

	// Point at distance 0.5 → image at distance 8.
	require.InDelta(t, 8.0, imgPts[1].Y, 1e-12)
	require.Equal(t, int8(1), imgSenses[1])

	// Reflecting the image restores the original radius: s²/(s²/ρ) = ρ.
	again, _ := boundary.ImagePositions(s, imgPts[:1], imgSenses[:1])
	require.InDelta(t, 1.0, again[0].Norm(), 1e-12)
}

// TestImagePositions_SkipsOrigin verifies that a point at the exact
// origin has no image.
func TestImagePositions_SkipsOrigin(t *testing.T) {
	pts := []geom.Point{{X: 1, Y: 0}, {}}
	senses := []int8{1, 1}
	imgPts, imgSenses := boundary.ImagePositions(2, pts, senses)
	require.Len(t, imgPts, 1)
	require.Len(t, imgSenses, 1)
}

// TestRingDisplacements_Count verifies that ring r holds exactly 8·r
// cells, all at Chebyshev distance r, with no duplicates.
func TestRingDisplacements_Count(t *testing.T) {
	for rank := 1; rank <= 5; rank++ {
		ring := boundary.RingDisplacements(rank)
		require.Len(t, ring, 8*rank, "rank %d", rank)
		seen := make(map[[2]int]bool, len(ring))
		for _, d := range ring {
			cheb := math.Max(math.Abs(float64(d[0])), math.Abs(float64(d[1])))
			require.Equal(t, float64(rank), cheb, "displacement %v", d)
			require.False(t, seen[d], "duplicate displacement %v", d)
			seen[d] = true
		}
	}
	require.Nil(t, boundary.RingDisplacements(0))
}

// TestDisplacements_Coverage verifies full coverage of the Chebyshev
// ball minus the origin, once per cell.
func TestDisplacements_Coverage(t *testing.T) {
	const rank = 3
	disp := boundary.Displacements(rank)
	side := 2*rank + 1
	require.Len(t, disp, side*side-1)

	seen := make(map[[2]int]bool, len(disp))
	for _, d := range disp {
		require.False(t, seen[d], "duplicate displacement %v", d)
		seen[d] = true
	}
	for i := -rank; i <= rank; i++ {
		for j := -rank; j <= rank; j++ {
			if i == 0 && j == 0 {
				require.False(t, seen[[2]int{0, 0}])
				continue
			}
			require.True(t, seen[[2]int{i, j}], "missing cell (%d,%d)", i, j)
		}
	}
}

// TestReplications_Translation verifies the tiled copies are exact
// translations carrying the original senses.
func TestReplications_Translation(t *testing.T) {
	const side = 10.0
	pts := []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	senses := []int8{1, -1}

	repPts, repSenses := boundary.Replications(side, pts, senses, 1)
	require.Len(t, repPts, 8*len(pts))
	require.Len(t, repSenses, 8*len(senses))

	// Every replica point is an original plus a multiple of the side.
	for i, p := range repPts {
		orig := pts[i%len(pts)]
		dx := (p.X - orig.X) / side
		dy := (p.Y - orig.Y) / side
		require.InDelta(t, math.Round(dx), dx, 1e-12)
		require.InDelta(t, math.Round(dy), dy, 1e-12)
		require.Equal(t, senses[i%len(senses)], repSenses[i])
	}
}

// TestGhostPatches_Independence verifies each surrounding cell receives
// a fresh draw in deterministic order.
func TestGhostPatches_Independence(t *testing.T) {
	const side = 5.0
	calls := 0
	gen := func() ([]geom.Point, []int8, error) {
		calls++
		// Distinguishable patch per call.
		return []geom.Point{{X: float64(calls), Y: 0}}, []int8{1}, nil
	}
	pts, senses, err := boundary.GhostPatches(side, 1, gen)
	require.NoError(t, err)
	require.Equal(t, 8, calls)
	require.Len(t, pts, 8)
	require.Len(t, senses, 8)

	// Patches differ cell to cell: the x offsets encode the call order.
	require.NotEqual(t, pts[0], pts[1])
}

// TestConditions_Constructors covers the tagged-variant constructors.
func TestConditions_Constructors(t *testing.T) {
	require.Equal(t, boundary.NoCondition, boundary.None().Kind)
	require.Equal(t, boundary.ImageReflection, boundary.Images().Kind)

	c, err := boundary.Replicate(2)
	require.NoError(t, err)
	require.Equal(t, boundary.Replication, c.Kind)
	require.Equal(t, 2, c.Rank)
	require.Equal(t, "PBC2", c.String())

	_, err = boundary.Replicate(0)
	require.ErrorIs(t, err, boundary.ErrRank)

	g, err := boundary.Ghost(3)
	require.NoError(t, err)
	require.Equal(t, "GBC3", g.String())
	_, err = boundary.Ghost(-1)
	require.ErrorIs(t, err, boundary.ErrRank)

	require.Equal(t, "none", boundary.None().String())
	require.Equal(t, "IDBC", boundary.Images().String())
}
