package spatial_test

import (
	"testing"

	"github.com/dislotools/lpa2d/geom"
	"github.com/dislotools/lpa2d/model"
	"github.com/dislotools/lpa2d/pattern"
	"github.com/dislotools/lpa2d/spatial"
)

func benchDistribution(b *testing.B) (*pattern.Distribution, []float64) {
	b.Helper()
	reg := geom.MustNew(geom.Square, 1000)
	d, err := pattern.New(reg, model.RDD, model.Params{Density: 1e-3}, pattern.WithSeed(0))
	if err != nil {
		b.Fatal(err)
	}
	radii, _, err := spatial.Intervals(d.InterPointDistance(), reg.Size())
	if err != nil {
		b.Fatal(err)
	}
	return d, radii
}

// BenchmarkNeighborCount measures the sort-and-sweep counting kernel
// on a 1000-point pattern and a full default schedule.
func BenchmarkNeighborCount(b *testing.B) {
	d, radii := benchDistribution(b)
	radii2 := make([]float64, len(radii))
	for i, r := range radii {
		radii2[i] = r * r
	}
	pts := d.Positions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = spatial.NeighborCount(pts[0], pts, radii2)
	}
}

// BenchmarkCalculateM measures the four cross counts without edge
// compensation.
func BenchmarkCalculateM(b *testing.B) {
	d, radii := benchDistribution(b)
	q := []spatial.Quantity{spatial.StatM}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spatial.Calculate(d, radii, q, spatial.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCalculateWeighted measures the same counts with
// inverse-visibility weighting, which adds one overlap-area solve per
// center and radius.
func BenchmarkCalculateWeighted(b *testing.B) {
	d, radii := benchDistribution(b)
	q := []spatial.Quantity{spatial.StatM}
	opts := spatial.Options{Mode: spatial.EdgeWeighting}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spatial.Calculate(d, radii, q, opts); err != nil {
			b.Fatal(err)
		}
	}
}
