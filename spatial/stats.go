package spatial

import (
	"math"
)

// gradient returns the derivative of y with respect to x by central
// differences. The two endpoints have no centered stencil and are NaN.
// Both slices must have the same length, at least 2.
func gradient(y, x []float64) []float64 {
	g := make([]float64, len(y))
	g[0] = math.NaN()
	g[len(g)-1] = math.NaN()
	for i := 1; i < len(y)-1; i++ {
		g[i] = (y[i+1] - y[i-1]) / (x[i+1] - x[i-1])
	}
	return g
}

// Stats holds every statistic derivable from one Counts result.
type Stats struct {
	// Radii is the analysis schedule the rows are indexed by.
	Radii []float64
	// M holds the four averaged counts in the order ++, -+, +-, --.
	M [4][]float64
	// K holds the four Ripley's K functions in the same order.
	K [4][]float64
	// G holds the four pair correlation functions in the same order.
	G [4][]float64
	// Ga and Gs are the antisymmetric and symmetric derived functions.
	Ga, Gs []float64
	// Cp, Cn are the interior sense counts; Dp, Dn their densities.
	Cp, Cn int
	Dp, Dn float64
}

// RipleyK derives the four Ripley's K functions from the averaged
// counts: each count is divided by the density of its neighbor sense.
// An empty sense population makes its density undefined and returns
// ErrSenseEmpty.
func RipleyK(c Counts, volume float64) (kpp, knp, kpn, knn []float64, dp, dn float64, err error) {
	if c.Cp == 0 || c.Cn == 0 {
		return nil, nil, nil, nil, 0, 0, ErrSenseEmpty
	}
	dp = float64(c.Cp) / volume
	dn = float64(c.Cn) / volume
	div := func(m []float64, d float64) []float64 {
		k := make([]float64, len(m))
		for i, v := range m {
			k[i] = v / d
		}
		return k
	}
	return div(c.Mpp, dp), div(c.Mnp, dp), div(c.Mpn, dn), div(c.Mnn, dn), dp, dn, nil
}

// PairCorrelation derives g from one Ripley's K function:
// g(r) = K'(r) / (2πr). The derivative is a central difference, so
// both endpoints are NaN; so is any point with r = 0.
func PairCorrelation(k, radii []float64) []float64 {
	g := gradient(k, radii)
	for i, r := range radii {
		if r == 0 {
			g[i] = math.NaN()
			continue
		}
		g[i] /= 2 * math.Pi * r
	}
	return g
}

// DerivedG computes the antisymmetric and symmetric combined functions
// from the radius derivatives of the four averaged counts, weighted by
// the interior sense counts:
//
//	Ga = c⁺(M'₊₊ - M'₊₋) + c⁻(M'₋₋ - M'₋₊)
//	Gs = c⁺(M'₊₊ + M'₊₋) + c⁻(M'₋₋ + M'₋₊)
//
// Endpoints inherit NaN from the central differences.
func DerivedG(c Counts, radii []float64) (ga, gs []float64) {
	cp := float64(c.Cp)
	cn := float64(c.Cn)
	dpp := gradient(c.Mpp, radii)
	dnp := gradient(c.Mnp, radii)
	dpn := gradient(c.Mpn, radii)
	dnn := gradient(c.Mnn, radii)
	ga = make([]float64, len(radii))
	gs = make([]float64, len(radii))
	for i := range radii {
		ga[i] = cp*(dpp[i]-dpn[i]) + cn*(dnn[i]-dnp[i])
		gs[i] = cp*(dpp[i]+dpn[i]) + cn*(dnn[i]+dnp[i])
	}
	return ga, gs
}

// Compute runs the whole statistics pipeline for one counts result.
func Compute(c Counts, radii []float64, volume float64) (Stats, error) {
	kpp, knp, kpn, knn, dp, dn, err := RipleyK(c, volume)
	if err != nil {
		return Stats{}, err
	}
	s := Stats{
		Radii: radii,
		M:     [4][]float64{c.Mpp, c.Mnp, c.Mpn, c.Mnn},
		K:     [4][]float64{kpp, knp, kpn, knn},
		Cp:    c.Cp, Cn: c.Cn,
		Dp: dp, Dn: dn,
	}
	for i, k := range s.K {
		s.G[i] = PairCorrelation(k, radii)
	}
	s.Ga, s.Gs = DerivedG(c, radii)
	return s, nil
}
