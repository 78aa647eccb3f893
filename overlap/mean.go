package overlap

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/dislotools/lpa2d/geom"
)

// quadNodes is the number of Gauss-Legendre nodes per axis used by Mean.
const quadNodes = 64

// Mean returns the average overlap area of a disk of radius r with the
// region, over centers uniformly distributed inside the region. It
// underlies the normalization of the weighting edge-correction mode.
//
// The disk case reduces to a single radial integral; the square case is
// a nested double integral. Both use fixed Gauss-Legendre quadrature.
func Mean(r float64, reg geom.Region) float64 {
	s := reg.Size()
	switch reg.Shape() {
	case geom.Disk:
		f := func(rho float64) float64 {
			return 2 * math.Pi * rho * CircleCircle(r, s, rho)
		}
		return quad.Fixed(f, 0, s, quadNodes, nil, 0) / reg.Volume()
	default: // geom.Square, enforced by the Region constructor
		f := func(x float64) float64 {
			inner := func(y float64) float64 { return CircleSquare(x, y, r, s) }
			return quad.Fixed(inner, 0, s, quadNodes, nil, 0)
		}
		return quad.Fixed(f, 0, s, quadNodes, nil, 0) / reg.Volume()
	}
}

// MeanMC is the Monte Carlo counterpart of Mean: it averages the
// overlap area over n centers drawn uniformly inside the region.
// Agreement with Mean is within about 1% for n = 1e5.
func MeanMC(r float64, reg geom.Region, n int, rng *rand.Rand) float64 {
	s := reg.Size()
	var sum float64
	for i := 0; i < n; i++ {
		switch reg.Shape() {
		case geom.Disk:
			rho := s * math.Sqrt(rng.Float64()) // area-uniform radius
			sum += CircleCircle(r, s, rho)
		default:
			sum += CircleSquare(s*rng.Float64(), s*rng.Float64(), r, s)
		}
	}
	return sum / float64(n)
}
