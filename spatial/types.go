package spatial

import (
	"errors"
	"fmt"

	"github.com/dislotools/lpa2d/geom"
)

// Sentinel errors for statistics requests.
var (
	// ErrUnknownQuantity indicates a requested quantity outside the enum.
	ErrUnknownQuantity = errors.New("spatial: unknown requested quantity")
	// ErrUnknownEdgeMode indicates an edge-consideration mode outside the enum.
	ErrUnknownEdgeMode = errors.New("spatial: unknown edge-consideration mode")
	// ErrRadii indicates a radius schedule that is not ascending from a
	// non-negative start, or has fewer than two points.
	ErrRadii = errors.New("spatial: radius schedule must be ascending, non-negative, with at least 2 points")
	// ErrNoQuantities indicates an empty quantity request.
	ErrNoQuantities = errors.New("spatial: no quantities requested")
	// ErrSenseEmpty indicates an empty interior sense population, which
	// leaves the per-sense density undefined.
	ErrSenseEmpty = errors.New("spatial: no interior dislocations of one sense")
	// ErrIntervals indicates non-positive inputs to the radius-schedule helper.
	ErrIntervals = errors.New("spatial: inter-point distance and size must be strictly positive")
)

// EdgeMode selects how the engine compensates for neighborhoods
// truncated by the region boundary.
type EdgeMode int

const (
	// EdgeNone applies no compensation; the observed set is the
	// distribution's full stored point set.
	EdgeNone EdgeMode = iota
	// EdgeWeighting weights each center by its inverse visibility.
	EdgeWeighting
	// EdgeReplication observes interior points plus their periodic
	// replicas (square regions only).
	EdgeReplication
	// EdgeGhost observes interior points plus freshly generated ghost
	// patches (square regions only).
	EdgeGhost
)

// String returns the mode name.
func (m EdgeMode) String() string {
	switch m {
	case EdgeNone:
		return "none"
	case EdgeWeighting:
		return "weighting"
	case EdgeReplication:
		return "replication"
	case EdgeGhost:
		return "ghost"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Quantity names one computable statistic of the pipeline.
type Quantity int

const (
	// StatM is the stack of the four averaged counts M++, M-+, M+-, M--.
	StatM Quantity = iota
	// StatK is the stack of the four Ripley's K functions.
	StatK
	// StatG is the stack of the four pair-correlation functions.
	StatG
	// StatGaGs is the stack of the derived Ga and Gs functions.
	StatGaGs
	// StatCounts is the pair of interior sense counts (c+, c-).
	StatCounts
	// StatDensities is the pair of interior sense densities (d+, d-).
	StatDensities
	// StatShellDeriv is the derivative of the neighborhood volume, 2πr.
	StatShellDeriv
)

// String returns the quantity name.
func (q Quantity) String() string {
	switch q {
	case StatM:
		return "M"
	case StatK:
		return "K"
	case StatG:
		return "g"
	case StatGaGs:
		return "GaGs"
	case StatCounts:
		return "counts"
	case StatDensities:
		return "densities"
	case StatShellDeriv:
		return "shellDeriv"
	default:
		return fmt.Sprintf("quantity(%d)", int(q))
	}
}

// Stacked is one computed statistic: one row per component, each row
// indexed by the radius schedule (scalar pairs are a single short row).
type Stacked [][]float64

// WeightFunc returns, for one center, a multiplicative weight per
// radius. A nil WeightFunc means unit weights.
type WeightFunc func(center geom.Point, radii []float64) []float64

// Options tunes Calculate.
type Options struct {
	// Mode selects the edge-consideration strategy (default EdgeNone).
	Mode EdgeMode
}

// DefaultOptions returns the default engine options.
func DefaultOptions() Options { return Options{Mode: EdgeNone} }

// validRadii checks the schedule is ascending from a non-negative start.
func validRadii(radii []float64) error {
	if len(radii) < 2 || radii[0] < 0 {
		return ErrRadii
	}
	for i := 1; i < len(radii); i++ {
		if radii[i] <= radii[i-1] {
			return fmt.Errorf("%w: index %d", ErrRadii, i)
		}
	}
	return nil
}
