package model

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/dislotools/lpa2d/geom"
)

// Sentinel errors for model parameter validation.
var (
	// ErrUnknownKind indicates a model kind outside {RDD, RRDD, RCDD}.
	ErrUnknownKind = errors.New("model: unknown model kind")
	// ErrUnknownVariant indicates a variant not supported by the model kind.
	ErrUnknownVariant = errors.New("model: variant not supported by this model")
	// ErrDensity indicates a missing or non-positive density.
	ErrDensity = errors.New("model: density must be strictly positive")
	// ErrCellSide indicates a missing or non-positive cell side.
	ErrCellSide = errors.New("model: cell side must be strictly positive")
	// ErrOddFilling indicates an odd per-cell filling count.
	ErrOddFilling = errors.New("model: odd number of dislocations per cell")
	// ErrFilling indicates a zero or negative per-cell filling count.
	ErrFilling = errors.New("model: filling must be strictly positive")
	// ErrWallThickness indicates a wall thicker than half the cell side.
	ErrWallThickness = errors.New("model: inconsistent wall thickness and cell side")
	// ErrDipoleLength indicates a dipole that does not fit the wall budget.
	ErrDipoleLength = errors.New("model: dipole length exceeds the wall budget")
)

// Kind selects a generation model.
type Kind int

const (
	// RDD draws points uniformly in the whole region.
	RDD Kind = iota
	// RRDD draws a fixed number of points uniformly inside each grid cell.
	RRDD
	// RCDD draws points inside the wall border of each grid cell.
	RCDD
)

// String returns the canonical model acronym.
func (k Kind) String() string {
	switch k {
	case RDD:
		return "RDD"
	case RRDD:
		return "RRDD"
	case RCDD:
		return "RCDD"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Variant selects the sign-assignment scheme of the grid models.
type Variant int

const (
	// VariantNone applies to RDD, which has no variant.
	VariantNone Variant = iota
	// VariantRandom shuffles exactly half positive, half negative senses
	// over the whole pattern.
	VariantRandom
	// VariantEven gives each cell exactly f/2 positive then f/2 negative
	// senses in a fixed order.
	VariantEven
	// VariantDipole (RCDD only) pairs each wall anchor into one positive
	// and one negative point at ±length/2 along a random angle.
	VariantDipole
)

// String returns the single-letter variant code used in file stems.
func (v Variant) String() string {
	switch v {
	case VariantNone:
		return ""
	case VariantRandom:
		return "R"
	case VariantEven:
		return "E"
	case VariantDipole:
		return "D"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Params carries the model parameters. Which fields are required
// depends on the model kind; Validate checks the combination
// exhaustively before generation.
type Params struct {
	// Density is the target areal density of dislocations [nm⁻²].
	// Required by RDD; used by RRDD/RCDD to derive Filling when unset.
	Density float64
	// CellSide is the grid step of RRDD/RCDD [nm].
	CellSide float64
	// Filling is the number of dislocations per cell. Zero means
	// "derive from Density": round(Density·CellSide²).
	Filling int
	// WallThickness is the RCDD wall border thickness [nm].
	WallThickness float64
	// DipoleLength is the separation of a VariantDipole pair [nm].
	DipoleLength float64
	// Variant selects the sign-assignment scheme of RRDD/RCDD.
	Variant Variant
}

// filling resolves the per-cell count, deriving it from the density
// when not given directly. RCDD forces the count even and ≥ 2.
func (p Params) filling(kind Kind) int {
	f := p.Filling
	if f == 0 {
		f = int(math.Round(p.Density * p.CellSide * p.CellSide))
	}
	if kind == RCDD {
		half := int(math.Round(float64(f) / 2))
		if half < 1 {
			half = 1
		}
		f = 2 * half
	}
	return f
}

// Validate checks the parameter combination for the given model kind,
// failing fast on the first inconsistency.
func (p Params) Validate(kind Kind) error {
	switch kind {
	case RDD:
		if p.Density <= 0 {
			return fmt.Errorf("%w: got %g", ErrDensity, p.Density)
		}
		if p.Variant != VariantNone {
			return fmt.Errorf("%w: RDD takes no variant", ErrUnknownVariant)
		}
		return nil
	case RRDD:
		if p.CellSide <= 0 {
			return fmt.Errorf("%w: got %g", ErrCellSide, p.CellSide)
		}
		if p.Filling == 0 && p.Density <= 0 {
			return fmt.Errorf("%w: filling unset and density %g", ErrDensity, p.Density)
		}
		f := p.filling(kind)
		if f <= 0 {
			return fmt.Errorf("%w: got %d", ErrFilling, f)
		}
		if f%2 != 0 {
			return fmt.Errorf("%w: got %d", ErrOddFilling, f)
		}
		if p.Variant != VariantRandom && p.Variant != VariantEven {
			return fmt.Errorf("%w: RRDD supports VariantRandom and VariantEven", ErrUnknownVariant)
		}
		return nil
	case RCDD:
		if p.CellSide <= 0 {
			return fmt.Errorf("%w: got %g", ErrCellSide, p.CellSide)
		}
		if p.Filling == 0 && p.Density <= 0 {
			return fmt.Errorf("%w: filling unset and density %g", ErrDensity, p.Density)
		}
		if p.WallThickness <= 0 || p.WallThickness > p.CellSide/2 {
			return fmt.Errorf("%w: thickness %g, cell side %g",
				ErrWallThickness, p.WallThickness, p.CellSide)
		}
		switch p.Variant {
		case VariantRandom, VariantEven:
		case VariantDipole:
			if p.DipoleLength <= 0 || p.DipoleLength/2 > p.WallThickness {
				return fmt.Errorf("%w: length %g, wall thickness %g",
					ErrDipoleLength, p.DipoleLength, p.WallThickness)
			}
		default:
			return fmt.Errorf("%w: RCDD supports VariantRandom, VariantEven and VariantDipole",
				ErrUnknownVariant)
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// Pattern is one generated point pattern: parallel position and sense
// slices of equal length.
type Pattern struct {
	Positions []geom.Point
	Senses    []int8
}

// Len returns the number of dislocations in the pattern.
func (p Pattern) Len() int { return len(p.Senses) }

// CountBySense returns the number of positive and negative senses.
func (p Pattern) CountBySense() (pos, neg int) {
	for _, b := range p.Senses {
		if b > 0 {
			pos++
		} else {
			neg++
		}
	}
	return pos, neg
}

// PickSeed returns *seed when given, otherwise draws a fresh seed so
// that the caller can record it for reproducibility reporting. A nil
// seed never silently reuses shared generator state: the drawn value
// seeds a dedicated source.
func PickSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return rand.Int63()
}
