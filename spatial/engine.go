package spatial

import (
	"fmt"
	"math"

	"github.com/dislotools/lpa2d/pattern"
)

// rowCount returns the number of stacked rows a quantity produces.
func rowCount(q Quantity) (int, error) {
	switch q {
	case StatM, StatK, StatG:
		return 4, nil
	case StatGaGs, StatCounts, StatDensities:
		return 2, nil
	case StatShellDeriv:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownQuantity, q)
	}
}

// needsCounts reports whether a quantity requires the cross counts.
func needsCounts(q Quantity) bool { return q != StatShellDeriv }

// needsRipley reports whether a quantity requires density-normalized
// statistics, and therefore both sense populations to be non-empty.
// Ga and Gs are count-weighted, not density-normalized, so they stay
// computable with an empty sense population.
func needsRipley(q Quantity) bool {
	switch q {
	case StatK, StatG, StatDensities:
		return true
	default:
		return false
	}
}

// Calculate evaluates the requested quantities of one distribution over
// the radius schedule, in request order. Only the work the request
// actually needs is done: a request for counts alone never divides by a
// sense density and cannot fail with ErrSenseEmpty.
func Calculate(d *pattern.Distribution, radii []float64, quantities []Quantity, opts Options) ([]Stacked, error) {
	if len(quantities) == 0 {
		return nil, ErrNoQuantities
	}
	if err := validRadii(radii); err != nil {
		return nil, err
	}
	for _, q := range quantities {
		if _, err := rowCount(q); err != nil {
			return nil, err
		}
	}

	var (
		counts     Counts
		haveCounts bool
		stats      Stats
		haveStats  bool
	)
	for _, q := range quantities {
		if needsCounts(q) && !haveCounts {
			var err error
			counts, err = CrossCounts(d, radii, opts.Mode)
			if err != nil {
				return nil, err
			}
			haveCounts = true
		}
		if needsRipley(q) && !haveStats {
			var err error
			stats, err = Compute(counts, radii, d.Region().Volume())
			if err != nil {
				return nil, err
			}
			haveStats = true
		}
	}

	out := make([]Stacked, 0, len(quantities))
	for _, q := range quantities {
		switch q {
		case StatM:
			out = append(out, Stacked{counts.Mpp, counts.Mnp, counts.Mpn, counts.Mnn})
		case StatK:
			out = append(out, Stacked(stats.K[:]))
		case StatG:
			out = append(out, Stacked(stats.G[:]))
		case StatGaGs:
			ga, gs := DerivedG(counts, radii)
			out = append(out, Stacked{ga, gs})
		case StatCounts:
			out = append(out, Stacked{{float64(counts.Cp)}, {float64(counts.Cn)}})
		case StatDensities:
			out = append(out, Stacked{{stats.Dp}, {stats.Dn}})
		case StatShellDeriv:
			row := make([]float64, len(radii))
			for i, r := range radii {
				row[i] = 2 * math.Pi * r
			}
			out = append(out, Stacked{row})
		}
	}
	return out, nil
}

// CalculateSample evaluates the requested quantities for every member
// of a sample and returns their element-wise average, in request order.
// Member results are flattened into one row stack for the averaging
// pass, then split back by the per-quantity row counts.
func CalculateSample(s *pattern.Sample, radii []float64, quantities []Quantity, opts Options) ([]Stacked, error) {
	if len(quantities) == 0 {
		return nil, ErrNoQuantities
	}
	rows := make([]int, len(quantities))
	for i, q := range quantities {
		n, err := rowCount(q)
		if err != nil {
			return nil, err
		}
		rows[i] = n
	}

	flat, err := s.Average(func(d *pattern.Distribution) (pattern.Result, error) {
		stacks, err := Calculate(d, radii, quantities, opts)
		if err != nil {
			return nil, err
		}
		var res pattern.Result
		for _, st := range stacks {
			res = append(res, st...)
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]Stacked, len(quantities))
	at := 0
	for i, n := range rows {
		out[i] = Stacked(flat[at : at+n])
		at += n
	}
	return out, nil
}
