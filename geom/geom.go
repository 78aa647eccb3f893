package geom

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for region construction and queries.
var (
	// ErrUnknownShape indicates a shape value outside {Disk, Square}.
	ErrUnknownShape = errors.New("geom: unknown region shape")
	// ErrNonPositiveSize indicates a characteristic size ≤ 0.
	ErrNonPositiveSize = errors.New("geom: region size must be strictly positive")
)

// Shape selects the geometry of the region of interest.
type Shape int

const (
	// Disk is a disk of the given radius centered at the origin.
	Disk Shape = iota
	// Square is an axis-aligned square of the given side with one
	// corner at the origin.
	Square
)

// String returns the lower-case name of the shape.
func (s Shape) String() string {
	switch s {
	case Disk:
		return "disk"
	case Square:
		return "square"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Norm2 returns the squared distance of p to the origin.
func (p Point) Norm2() float64 { return p.X*p.X + p.Y*p.Y }

// Norm returns the distance of p to the origin.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Region is a finite region of interest. It is immutable once built.
type Region struct {
	shape Shape
	size  float64
}

// New validates and builds a region of interest.
// Returns ErrUnknownShape or ErrNonPositiveSize on invalid input.
func New(shape Shape, size float64) (Region, error) {
	if shape != Disk && shape != Square {
		return Region{}, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
	}
	if size <= 0 {
		return Region{}, fmt.Errorf("%w: %g", ErrNonPositiveSize, size)
	}
	return Region{shape: shape, size: size}, nil
}

// MustNew is New for known-good literals; it panics on invalid input.
// Intended for tests and examples.
func MustNew(shape Shape, size float64) Region {
	r, err := New(shape, size)
	if err != nil {
		panic(err)
	}
	return r
}

// Shape returns the shape of the region.
func (r Region) Shape() Shape { return r.shape }

// Size returns the characteristic size of the region: the radius of a
// disk or the side of a square.
func (r Region) Size() float64 { return r.size }

// Dimension returns the dimension of the embedding space (always 2).
func (r Region) Dimension() int { return 2 }

// Volume returns the n-volume of the region: π·size² for a disk,
// size² for a square.
func (r Region) Volume() float64 {
	if r.shape == Disk {
		return math.Pi * r.size * r.size
	}
	return r.size * r.size
}

// Contains reports whether p lies strictly inside the region.
// Boundary points are excluded on all sides.
func (r Region) Contains(p Point) bool {
	if r.shape == Disk {
		return p.Norm2() < r.size*r.size
	}
	return p.X > 0 && p.X < r.size && p.Y > 0 && p.Y < r.size
}

// InteriorMask returns, for each point, whether it lies strictly inside
// the region.
func (r Region) InteriorMask(pts []Point) []bool {
	mask := make([]bool, len(pts))
	for i, p := range pts {
		mask[i] = r.Contains(p)
	}
	return mask
}
