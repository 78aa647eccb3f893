package pattern_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dislotools/lpa2d/boundary"
	"github.com/dislotools/lpa2d/geom"
	"github.com/dislotools/lpa2d/model"
	"github.com/dislotools/lpa2d/pattern"
)

// TestNew_DensityInvariant verifies density == count/volume exactly and
// the derived inter-dislocation distance.
func TestNew_DensityInvariant(t *testing.T) {
	reg := geom.MustNew(geom.Square, 200)
	d, err := pattern.New(reg, model.RDD, model.Params{Density: 0.002}, pattern.WithSeed(1))
	require.NoError(t, err)

	require.Equal(t, float64(d.Len())/reg.Volume(), d.Density())
	require.Equal(t, 1/math.Sqrt(d.Density()), d.InterPointDistance())
}

// TestNew_ZeroDensity verifies an empty pattern is rejected.
func TestNew_ZeroDensity(t *testing.T) {
	reg := geom.MustNew(geom.Square, 10)
	// density·volume = 1e-9·100 rounds to zero points.
	_, err := pattern.New(reg, model.RDD, model.Params{Density: 1e-9})
	require.ErrorIs(t, err, pattern.ErrZeroDensity)
}

// TestNew_DeterministicSeed reproduces the end-to-end example: same
// seed, same point count, same first point.
func TestNew_DeterministicSeed(t *testing.T) {
	reg := geom.MustNew(geom.Disk, 1000)
	p := model.Params{Density: 1e-3}

	a, err := pattern.New(reg, model.RDD, p, pattern.WithSeed(0))
	require.NoError(t, err)
	b, err := pattern.New(reg, model.RDD, p, pattern.WithSeed(0))
	require.NoError(t, err)

	require.Equal(t, int64(0), a.Seed())
	require.Equal(t, a.Len(), b.Len())
	require.Equal(t, a.Positions()[0], b.Positions()[0])
	require.Equal(t, a.Senses()[0], b.Senses()[0])
}

// TestNew_RecordedSeed verifies an omitted seed is drawn, recorded, and
// reproduces the distribution when reused.
func TestNew_RecordedSeed(t *testing.T) {
	reg := geom.MustNew(geom.Square, 100)
	p := model.Params{Density: 0.01}

	a, err := pattern.New(reg, model.RDD, p)
	require.NoError(t, err)

	b, err := pattern.New(reg, model.RDD, p, pattern.WithSeed(a.Seed()))
	require.NoError(t, err)
	require.Equal(t, a.Positions(), b.Positions())
}

// TestExtend_Images verifies the image extension doubles the pattern
// (no point sits at the exact origin) with flipped senses.
func TestExtend_Images(t *testing.T) {
	reg := geom.MustNew(geom.Disk, 100)
	d, err := pattern.New(reg, model.RDD, model.Params{Density: 0.001},
		pattern.WithSeed(2), pattern.WithBoundary(boundary.Images()))
	require.NoError(t, err)

	n := d.GeneratedLen()
	require.Equal(t, 2*n, d.Len())

	// Image of point i sits at size²/ρ on the same ray with flipped sense.
	s2 := reg.Size() * reg.Size()
	for i := 0; i < n; i++ {
		orig, img := d.Positions()[i], d.Positions()[n+i]
		require.InDelta(t, s2/orig.Norm(), img.Norm(), 1e-9)
		require.Equal(t, -d.Senses()[i], d.Senses()[n+i])
	}
}

// TestExtend_Incompatibilities runs the geometric-compatibility table.
func TestExtend_Incompatibilities(t *testing.T) {
	rep, err := boundary.Replicate(1)
	require.NoError(t, err)
	ghost, err := boundary.Ghost(1)
	require.NoError(t, err)

	cases := []struct {
		name  string
		shape geom.Shape
		ptype string
		cond  boundary.Condition
		err   error
	}{
		{"ImagesOnSquare", geom.Square, pattern.TypeScrew, boundary.Images(), boundary.ErrImageShape},
		{"ImagesOnEdgeType", geom.Disk, pattern.TypeEdge, boundary.Images(), boundary.ErrImageType},
		{"ReplicationOnDisk", geom.Disk, pattern.TypeScrew, rep, boundary.ErrReplicationShape},
		{"GhostOnDisk", geom.Disk, pattern.TypeScrew, ghost, boundary.ErrGhostShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := geom.MustNew(tc.shape, 100)
			_, err := pattern.New(reg, model.RDD, model.Params{Density: 0.001},
				pattern.WithSeed(3), pattern.WithType(tc.ptype), pattern.WithBoundary(tc.cond))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestExtend_Reapplication verifies a second boundary extension is
// rejected.
func TestExtend_Reapplication(t *testing.T) {
	reg := geom.MustNew(geom.Disk, 100)
	d, err := pattern.New(reg, model.RDD, model.Params{Density: 0.001},
		pattern.WithSeed(4), pattern.WithBoundary(boundary.Images()))
	require.NoError(t, err)

	err = d.Extend(boundary.Images())
	require.ErrorIs(t, err, boundary.ErrAlreadyApplied)
}

// TestExtend_Replication verifies the replicated pattern size.
func TestExtend_Replication(t *testing.T) {
	reg := geom.MustNew(geom.Square, 100)
	rep, err := boundary.Replicate(2)
	require.NoError(t, err)

	d, err := pattern.New(reg, model.RDD, model.Params{Density: 0.002},
		pattern.WithSeed(5), pattern.WithBoundary(rep))
	require.NoError(t, err)

	// Rank 2 adds the 24 surrounding cells.
	require.Equal(t, d.GeneratedLen()*25, d.Len())
}

// TestExtend_GhostBorder verifies ghost patches are fresh draws, not
// copies.
func TestExtend_GhostBorder(t *testing.T) {
	reg := geom.MustNew(geom.Square, 100)
	ghost, err := boundary.Ghost(1)
	require.NoError(t, err)

	d, err := pattern.New(reg, model.RDD, model.Params{Density: 0.002},
		pattern.WithSeed(6), pattern.WithBoundary(ghost))
	require.NoError(t, err)

	n := d.GeneratedLen()
	require.Equal(t, 9*n, d.Len(), "8 ghost patches of the same expected count")

	// The first ghost patch must differ from the interior pattern
	// beyond a pure translation.
	base := d.Positions()[:n]
	patch := d.Positions()[n : 2*n]
	shift := patch[0].Sub(base[0])
	same := true
	for i := range base {
		if patch[i].Sub(base[i]) != shift {
			same = false
			break
		}
	}
	require.False(t, same, "ghost patch is a translated copy")
}

// TestEdgeWeight verifies the inverse-visibility weights: 1 at radius
// zero and deep inside, 2 for a half-visible neighborhood at the edge.
func TestEdgeWeight(t *testing.T) {
	reg := geom.MustNew(geom.Square, 1000)
	d, err := pattern.New(reg, model.RDD, model.Params{Density: 0.0005}, pattern.WithSeed(7))
	require.NoError(t, err)

	radii := []float64{0, 5, 10}
	center := geom.Point{X: 500, Y: 500}
	w := d.EdgeWeight(center, radii)
	require.Equal(t, 1.0, w[0])
	require.InDelta(t, 1.0, w[1], 1e-12)
	require.InDelta(t, 1.0, w[2], 1e-12)

	// On the middle of an edge half the neighborhood is outside.
	onEdge := geom.Point{X: 0, Y: 500}
	w = d.EdgeWeight(onEdge, radii)
	require.InDelta(t, 2.0, w[1], 1e-9)
	require.InDelta(t, 2.0, w[2], 1e-9)
}

// TestStem covers the export stem composition.
func TestStem(t *testing.T) {
	reg := geom.MustNew(geom.Disk, 1000)
	d, err := pattern.New(reg, model.RDD, model.Params{Density: 1e-3},
		pattern.WithSeed(8), pattern.WithBoundary(boundary.Images()))
	require.NoError(t, err)

	stem := d.Stem()
	require.Contains(t, stem, "disk_1000nm_RDD")
	require.Contains(t, stem, "screw")
	require.Contains(t, stem, "IDBC")
}
