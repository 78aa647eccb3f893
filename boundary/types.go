package boundary

import (
	"errors"
	"fmt"
)

// Sentinel errors for boundary-condition construction and application.
var (
	// ErrRank indicates a replication or ghost rank < 1.
	ErrRank = errors.New("boundary: replication rank must be at least 1")
	// ErrImageShape indicates image reflection requested on a non-disk region.
	ErrImageShape = errors.New("boundary: image reflection requires a disk region")
	// ErrImageType indicates image reflection requested for a dislocation
	// type other than screw; the reciprocal-radius formula only holds there.
	ErrImageType = errors.New("boundary: image reflection requires screw-type dislocations")
	// ErrReplicationShape indicates replication requested on a non-square region.
	ErrReplicationShape = errors.New("boundary: replication requires a square region")
	// ErrGhostShape indicates ghost borders requested on a non-square region.
	ErrGhostShape = errors.New("boundary: ghost border requires a square region")
	// ErrAlreadyApplied indicates a second boundary extension on the same
	// distribution.
	ErrAlreadyApplied = errors.New("boundary: conditions already applied to this distribution")
	// ErrUnknownKind indicates a condition kind outside the defined variants.
	ErrUnknownKind = errors.New("boundary: unknown condition kind")
)

// Kind selects a boundary-condition strategy.
type Kind int

const (
	// NoCondition leaves the generated pattern as is.
	NoCondition Kind = iota
	// ImageReflection appends sign-flipped images at reciprocal radii
	// (disk regions, screw dislocations only).
	ImageReflection
	// Replication appends tiled copies of the pattern on the surrounding
	// lattice cells (square regions only).
	Replication
	// GhostBorder appends freshly generated patches on the surrounding
	// lattice cells (square regions only).
	GhostBorder
)

// Condition is a tagged boundary-condition variant. The zero value is
// "no condition". Rank is meaningful for Replication and GhostBorder.
type Condition struct {
	Kind Kind
	Rank int
}

// None returns the absent boundary condition.
func None() Condition { return Condition{} }

// Images returns the image-reflection condition.
func Images() Condition { return Condition{Kind: ImageReflection} }

// Replicate returns a periodic-replication condition of the given rank.
// Returns ErrRank when rank < 1.
func Replicate(rank int) (Condition, error) {
	if rank < 1 {
		return Condition{}, fmt.Errorf("%w: got %d", ErrRank, rank)
	}
	return Condition{Kind: Replication, Rank: rank}, nil
}

// Ghost returns a ghost-border condition of the given rank.
// Returns ErrRank when rank < 1.
func Ghost(rank int) (Condition, error) {
	if rank < 1 {
		return Condition{}, fmt.Errorf("%w: got %d", ErrRank, rank)
	}
	return Condition{Kind: GhostBorder, Rank: rank}, nil
}

// String returns a compact code usable in file stems: "IDBC" for image
// reflection, "PBC<rank>" for replication, "GBC<rank>" for ghost borders.
func (c Condition) String() string {
	switch c.Kind {
	case NoCondition:
		return "none"
	case ImageReflection:
		return "IDBC"
	case Replication:
		return fmt.Sprintf("PBC%d", c.Rank)
	case GhostBorder:
		return fmt.Sprintf("GBC%d", c.Rank)
	default:
		return fmt.Sprintf("condition(%d)", int(c.Kind))
	}
}
