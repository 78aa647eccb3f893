package geom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dislotools/lpa2d/geom"
)

// TestNew_Errors verifies that invalid shapes and sizes are rejected.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		shape geom.Shape
		size  float64
		err   error
	}{
		{"UnknownShape", geom.Shape(42), 1, geom.ErrUnknownShape},
		{"ZeroSize", geom.Disk, 0, geom.ErrNonPositiveSize},
		{"NegativeSize", geom.Square, -3, geom.ErrNonPositiveSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geom.New(tc.shape, tc.size)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestRegion_Volume checks dimension and n-volume for both shapes.
func TestRegion_Volume(t *testing.T) {
	disk := geom.MustNew(geom.Disk, 3)
	require.Equal(t, 2, disk.Dimension())
	require.InDelta(t, 9*math.Pi, disk.Volume(), 1e-12)

	square := geom.MustNew(geom.Square, 4)
	require.Equal(t, 2, square.Dimension())
	require.Equal(t, 16.0, square.Volume())
}

// TestRegion_Contains_Disk checks that membership is strict at the rim.
func TestRegion_Contains_Disk(t *testing.T) {
	const s, eps = 5.0, 1e-9
	disk := geom.MustNew(geom.Disk, s)

	require.True(t, disk.Contains(geom.Point{X: s - eps}))
	require.False(t, disk.Contains(geom.Point{X: s}))
	require.False(t, disk.Contains(geom.Point{X: s + eps}))
	require.True(t, disk.Contains(geom.Point{}))
}

// TestRegion_Contains_Square checks strict bounds on all four sides.
func TestRegion_Contains_Square(t *testing.T) {
	const s, eps = 2.0, 1e-9
	sq := geom.MustNew(geom.Square, s)

	inside := []geom.Point{{X: eps, Y: eps}, {X: s - eps, Y: s - eps}, {X: 1, Y: 1}}
	for _, p := range inside {
		require.True(t, sq.Contains(p), "point %v should be inside", p)
	}
	outside := []geom.Point{
		{X: 0, Y: 1}, {X: s, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: s},
		{X: -eps, Y: 1}, {X: s + eps, Y: 1},
	}
	for _, p := range outside {
		require.False(t, sq.Contains(p), "point %v should be outside", p)
	}
}

// TestRegion_InteriorMask checks the vectorized form against Contains.
func TestRegion_InteriorMask(t *testing.T) {
	disk := geom.MustNew(geom.Disk, 1)
	pts := []geom.Point{{}, {X: 0.5}, {X: 1}, {X: 0.9, Y: 0.9}}
	mask := disk.InteriorMask(pts)
	require.Len(t, mask, len(pts))
	for i, p := range pts {
		require.Equal(t, disk.Contains(p), mask[i])
	}
}

// TestMustNew_Panics verifies MustNew panics on invalid input.
func TestMustNew_Panics(t *testing.T) {
	require.Panics(t, func() { geom.MustNew(geom.Disk, -1) })
}

// TestShape_String covers the display names.
func TestShape_String(t *testing.T) {
	require.Equal(t, "disk", geom.Disk.String())
	require.Equal(t, "square", geom.Square.String())
	require.True(t, errors.Is(func() error {
		_, err := geom.New(geom.Shape(7), 1)
		return err
	}(), geom.ErrUnknownShape))
}
