package pattern

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/dislotools/lpa2d/boundary"
	"github.com/dislotools/lpa2d/geom"
	"github.com/dislotools/lpa2d/model"
)

// Sample is an ordered, fixed-length collection of independently
// generated distributions sharing model, region, type and boundary
// parameters but not point data. One base seed makes the whole sample
// reproducible: member k is generated with seed base+k.
type Sample struct {
	members []*Distribution
	region  geom.Region
	kind    model.Kind
	params  model.Params
	ptype   string
	cond    boundary.Condition
	seed    int64

	density   float64
	interDist float64
}

// NewSample builds n member distributions. Density and
// inter-dislocation distance are arithmetic means over the members.
func NewSample(n int, reg geom.Region, kind model.Kind, params model.Params, opts ...Option) (*Sample, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSampleSize, n)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	base := model.PickSeed(o.seed)

	members := make([]*Distribution, n)
	densities := make([]float64, n)
	interDists := make([]float64, n)
	for k := 0; k < n; k++ {
		memberOpts := []Option{
			WithType(o.ptype),
			WithBoundary(o.cond),
			WithSeed(base + int64(k)),
		}
		d, err := New(reg, kind, params, memberOpts...)
		if err != nil {
			return nil, fmt.Errorf("pattern: sample member %d: %w", k, err)
		}
		members[k] = d
		densities[k] = d.Density()
		interDists[k] = d.InterPointDistance()
	}

	return &Sample{
		members:   members,
		region:    reg,
		kind:      kind,
		params:    params,
		ptype:     o.ptype,
		cond:      o.cond,
		seed:      base,
		density:   stat.Mean(densities, nil),
		interDist: stat.Mean(interDists, nil),
	}, nil
}

// Len returns the number of member distributions.
func (s *Sample) Len() int { return len(s.members) }

// At returns the k-th member distribution.
func (s *Sample) At(k int) *Distribution { return s.members[k] }

// Region returns the shared region of interest.
func (s *Sample) Region() geom.Region { return s.region }

// Seed returns the base seed of the sample.
func (s *Sample) Seed() int64 { return s.seed }

// Density returns the mean areal density over the members [nm⁻²].
func (s *Sample) Density() float64 { return s.density }

// InterPointDistance returns the mean inter-dislocation distance over
// the members [nm].
func (s *Sample) InterPointDistance() float64 { return s.interDist }

// Stem returns an export file stem for the sample, prefixed with the
// member count.
func (s *Sample) Stem() string {
	return fmt.Sprintf("%d_%s", s.Len(), s.members[0].Stem())
}

// Result is a fixed-length tuple of float64 rows. A scalar result is
// represented as a single row of length 1; a stacked statistic as one
// row per component.
type Result [][]float64

// Func computes one result tuple on a member distribution.
type Func func(*Distribution) (Result, error)

// Average applies f to every member, sums the result tuples
// element-wise, and divides by the member count. On a sample of size 1
// the result equals f(member 0) exactly. All members must return
// tuples of the same shape.
func (s *Sample) Average(f Func) (Result, error) {
	first, err := f(s.members[0])
	if err != nil {
		return nil, err
	}
	acc := make(Result, len(first))
	for i, row := range first {
		acc[i] = append([]float64(nil), row...)
	}

	for k := 1; k < len(s.members); k++ {
		r, err := f(s.members[k])
		if err != nil {
			return nil, err
		}
		if len(r) != len(acc) {
			return nil, fmt.Errorf("%w: member %d returned %d rows, want %d",
				ErrResultShape, k, len(r), len(acc))
		}
		for i := range acc {
			if len(r[i]) != len(acc[i]) {
				return nil, fmt.Errorf("%w: member %d row %d has length %d, want %d",
					ErrResultShape, k, i, len(r[i]), len(acc[i]))
			}
			floats.Add(acc[i], r[i])
		}
	}

	inv := 1 / float64(len(s.members))
	for i := range acc {
		floats.Scale(inv, acc[i])
	}
	return acc, nil
}
