package overlap_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dislotools/lpa2d/geom"
	"github.com/dislotools/lpa2d/overlap"
)

// TestCircleCircle_IdenticalDisks verifies that two coincident disks
// overlap on the full disk area.
func TestCircleCircle_IdenticalDisks(t *testing.T) {
	for _, r := range []float64{0.5, 1, 10, 1000} {
		require.InDelta(t, math.Pi*r*r, overlap.CircleCircle(r, r, 0), 1e-9*r*r)
	}
}

// TestCircleCircle_Disjoint verifies the zero branch at and beyond contact.
func TestCircleCircle_Disjoint(t *testing.T) {
	require.Equal(t, 0.0, overlap.CircleCircle(1, 1, 2))
	require.Equal(t, 0.0, overlap.CircleCircle(1, 2, 3.5))
	require.Equal(t, 0.0, overlap.CircleCircle(1000, 1, 1001))
}

// TestCircleCircle_Contained verifies the contained branch returns the
// smaller disk area.
func TestCircleCircle_Contained(t *testing.T) {
	require.InDelta(t, math.Pi, overlap.CircleCircle(1, 10, 2), 1e-12)
	require.InDelta(t, math.Pi, overlap.CircleCircle(10, 1, 2), 1e-12)
	require.InDelta(t, math.Pi, overlap.CircleCircle(1000, 1, 0), 1e-9)
}

// TestCircleCircle_Symmetry checks CircleCircle(a,b,d) == CircleCircle(b,a,d).
func TestCircleCircle_Symmetry(t *testing.T) {
	cases := [][3]float64{{1, 2, 1.5}, {3, 4, 5}, {0.3, 0.7, 0.5}, {2, 2, 1}}
	for _, c := range cases {
		require.InDelta(t,
			overlap.CircleCircle(c[0], c[1], c[2]),
			overlap.CircleCircle(c[1], c[0], c[2]),
			1e-12)
	}
}

// TestCircleCircle_MonotoneInDistance checks the area never increases
// with the center distance at fixed radii.
func TestCircleCircle_MonotoneInDistance(t *testing.T) {
	const rA, rB = 2.0, 3.0
	prev := math.Inf(1)
	for d := 0.0; d <= rA+rB+1; d += 0.05 {
		a := overlap.CircleCircle(rA, rB, d)
		require.LessOrEqual(t, a, prev+1e-12, "area increased at d=%g", d)
		prev = a
	}
}

// TestCircleCircle_HalfOverlap cross-checks the general branch against
// the textbook value for two unit disks at distance 1.
func TestCircleCircle_HalfOverlap(t *testing.T) {
	// 2·acos(1/2) - √3/2 for unit disks at d=1.
	want := 2*math.Acos(0.5) - math.Sqrt(3)/2
	require.InDelta(t, want, overlap.CircleCircle(1, 1, 1), 1e-12)
}

// TestCircleSquare_FullyContained verifies a small disk deep inside the
// square keeps its full area.
func TestCircleSquare_FullyContained(t *testing.T) {
	require.InDelta(t, math.Pi, overlap.CircleSquare(5, 5, 1, 10), 1e-12)
}

// TestCircleSquare_CenteredCovering verifies a disk covering the whole
// square overlaps on exactly the square area.
func TestCircleSquare_CenteredCovering(t *testing.T) {
	// Disk centered in a unit square with radius √2 covers it entirely.
	require.InDelta(t, 1.0, overlap.CircleSquare(0.5, 0.5, math.Sqrt2, 1), 1e-9)
}

// TestCircleSquare_EdgeAndCorner checks half and quarter disk cases.
func TestCircleSquare_EdgeAndCorner(t *testing.T) {
	const r, s = 1.0, 100.0
	// Center on the middle of an edge: half the disk is inside.
	require.InDelta(t, math.Pi*r*r/2, overlap.CircleSquare(0, s/2, r, s), 1e-9)
	// Center on a corner: a quarter of the disk is inside.
	require.InDelta(t, math.Pi*r*r/4, overlap.CircleSquare(0, 0, r, s), 1e-9)
}

// TestCircleSquareRadii matches the scalar function elementwise.
func TestCircleSquareRadii(t *testing.T) {
	radii := []float64{0, 0.5, 1, 2, 4}
	got := overlap.CircleSquareRadii(3, 4, radii, 10)
	require.Len(t, got, len(radii))
	for i, r := range radii {
		require.Equal(t, overlap.CircleSquare(3, 4, r, 10), got[i])
	}
}

// TestCircleCircleRadii matches the scalar function elementwise.
func TestCircleCircleRadii(t *testing.T) {
	radii := []float64{0, 1, 2, 5}
	got := overlap.CircleCircleRadii(radii, 3, 1.5)
	for i, r := range radii {
		require.Equal(t, overlap.CircleCircle(r, 3, 1.5), got[i])
	}
}

// TestMean_AgainstMonteCarlo checks quadrature and Monte Carlo agree
// within the documented tolerance on both shapes.
func TestMean_AgainstMonteCarlo(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const samples = 100000

	disk := geom.MustNew(geom.Disk, 10)
	square := geom.MustNew(geom.Square, 10)
	for _, r := range []float64{1, 3, 7} {
		mq := overlap.Mean(r, disk)
		mc := overlap.MeanMC(r, disk, samples, rng)
		require.InEpsilon(t, mq, mc, 0.01, "disk r=%g", r)

		mq = overlap.Mean(r, square)
		mc = overlap.MeanMC(r, square, samples, rng)
		require.InEpsilon(t, mq, mc, 0.01, "square r=%g", r)
	}
}

// TestMean_SmallRadiusLimit checks that for r much smaller than the
// region the mean overlap approaches the full disk area.
func TestMean_SmallRadiusLimit(t *testing.T) {
	reg := geom.MustNew(geom.Square, 1000)
	r := 1.0
	// Boundary cells are a vanishing fraction of the region.
	require.InEpsilon(t, math.Pi*r*r, overlap.Mean(r, reg), 0.02)
}
