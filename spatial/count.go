package spatial

import (
	"fmt"
	"math"
	"sort"

	"github.com/dislotools/lpa2d/boundary"
	"github.com/dislotools/lpa2d/geom"
	"github.com/dislotools/lpa2d/pattern"
)

// NeighborCount returns, for each squared radius in radii2 (ascending),
// the number of observed points whose squared distance to center is
// strictly positive and at most that value. The center itself, or any
// observed point exactly on it, is never its own neighbor.
//
// Squared distances are sorted once, then swept together with the
// schedule, so the cost is O(M log M + R) for M observed points and R
// radii.
func NeighborCount(center geom.Point, observed []geom.Point, radii2 []float64) []float64 {
	d2 := make([]float64, 0, len(observed))
	for _, p := range observed {
		v := p.Sub(center).Norm2()
		if v > 0 {
			d2 = append(d2, v)
		}
	}
	sort.Float64s(d2)

	counts := make([]float64, len(radii2))
	j := 0
	for i, r2 := range radii2 {
		for j < len(d2) && d2[j] <= r2 {
			j++
		}
		counts[i] = float64(j)
	}
	return counts
}

// AveragedCount returns the mean neighbor count over the given centers,
// optionally weighting each center's count vector by weight(center).
// The divisor is the number of centers regardless of weights. With no
// centers the result is all zeros.
func AveragedCount(centers, observed []geom.Point, radii []float64, weight WeightFunc) []float64 {
	radii2 := make([]float64, len(radii))
	for i, r := range radii {
		radii2[i] = r * r
	}
	sum := make([]float64, len(radii))
	for _, c := range centers {
		n := NeighborCount(c, observed, radii2)
		if weight != nil {
			w := weight(c, radii)
			for i := range n {
				n[i] *= w[i]
			}
		}
		for i := range sum {
			sum[i] += n[i]
		}
	}
	if len(centers) > 0 {
		inv := 1 / float64(len(centers))
		for i := range sum {
			sum[i] *= inv
		}
	}
	return sum
}

// Counts holds the four sense-resolved averaged neighbor counts and the
// interior population they were computed from.
type Counts struct {
	// Mpp, Mnp, Mpn, Mnn are M++, M-+, M+-, M-- over the radius
	// schedule: first index the center sense, second the neighbor sense.
	Mpp, Mnp, Mpn, Mnn []float64
	// Cp and Cn are the interior counts of each sense.
	Cp, Cn int
}

// CrossCounts computes the four averaged neighbor counts of a
// distribution under the given edge-consideration mode.
//
// Centers are always the interior points of each sense. The observed
// set depends on the mode:
//   - EdgeNone: the distribution's full stored point set, boundary
//     extension included;
//   - EdgeWeighting: the interior points, each center's counts scaled
//     by the inverse visible fraction at every radius;
//   - EdgeReplication: the interior points plus their periodic replicas
//     out to the rank covering the largest radius (square regions);
//   - EdgeGhost: the interior points plus freshly drawn ghost patches
//     of the same rank (square regions).
func CrossCounts(d *pattern.Distribution, radii []float64, mode EdgeMode) (Counts, error) {
	reg := d.Region()
	pts := d.Positions()
	senses := d.Senses()
	n := d.GeneratedLen()

	var ctrP, ctrN []geom.Point
	for i := 0; i < n; i++ {
		if senses[i] > 0 {
			ctrP = append(ctrP, pts[i])
		} else {
			ctrN = append(ctrN, pts[i])
		}
	}

	interior := make([]geom.Point, n)
	copy(interior, pts[:n])
	intSenses := make([]int8, n)
	copy(intSenses, senses[:n])

	var obs []geom.Point
	var obsSenses []int8
	var weight WeightFunc
	switch mode {
	case EdgeNone:
		obs, obsSenses = pts, senses
	case EdgeWeighting:
		obs, obsSenses = interior, intSenses
		weight = d.EdgeWeight
	case EdgeReplication:
		if reg.Shape() != geom.Square {
			return Counts{}, boundary.ErrReplicationShape
		}
		rank := coveringRank(radii, reg.Size())
		ext, extS := boundary.Replications(reg.Size(), interior, intSenses, rank)
		obs = append(interior, ext...)
		obsSenses = append(intSenses, extS...)
	case EdgeGhost:
		if reg.Shape() != geom.Square {
			return Counts{}, boundary.ErrGhostShape
		}
		rank := coveringRank(radii, reg.Size())
		ext, extS, err := boundary.GhostPatches(reg.Size(), rank, func() ([]geom.Point, []int8, error) {
			pat, err := d.GhostPattern()
			if err != nil {
				return nil, nil, err
			}
			return pat.Positions, pat.Senses, nil
		})
		if err != nil {
			return Counts{}, err
		}
		obs = append(interior, ext...)
		obsSenses = append(intSenses, extS...)
	default:
		return Counts{}, fmt.Errorf("%w: %v", ErrUnknownEdgeMode, mode)
	}

	var obsP, obsN []geom.Point
	for i, p := range obs {
		if obsSenses[i] > 0 {
			obsP = append(obsP, p)
		} else {
			obsN = append(obsN, p)
		}
	}

	return Counts{
		Mpp: AveragedCount(ctrP, obsP, radii, weight),
		Mnp: AveragedCount(ctrN, obsP, radii, weight),
		Mpn: AveragedCount(ctrP, obsN, radii, weight),
		Mnn: AveragedCount(ctrN, obsN, radii, weight),
		Cp:  len(ctrP),
		Cn:  len(ctrN),
	}, nil
}

// coveringRank is the smallest replication rank whose border covers the
// largest analysis radius, never less than 1.
func coveringRank(radii []float64, side float64) int {
	maxR := radii[len(radii)-1]
	rank := int(math.Ceil(maxR / side))
	if rank < 1 {
		rank = 1
	}
	return rank
}
