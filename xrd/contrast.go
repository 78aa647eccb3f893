package xrd

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dislotools/lpa2d/pattern"
)

// Sentinel errors for direction and character checks.
var (
	// ErrUnknownType indicates a dislocation type tag outside
	// {screw, edge}.
	ErrUnknownType = errors.New("xrd: unknown dislocation type")
	// ErrScrewDirections indicates a screw character with l not
	// parallel to b.
	ErrScrewDirections = errors.New("xrd: screw type but line and Burgers directions not parallel")
	// ErrEdgeDirections indicates an edge character with l not
	// perpendicular to b.
	ErrEdgeDirections = errors.New("xrd: edge type but line and Burgers directions not perpendicular")
)

// CheckDirections verifies the line direction l against the Burgers
// direction b for the given dislocation character: parallel for screw,
// perpendicular for edge.
func CheckDirections(ptype string, l, b r3.Vec) error {
	switch ptype {
	case pattern.TypeScrew:
		if c := r3.Cross(l, b); r3.Norm(c) != 0 {
			return ErrScrewDirections
		}
	case pattern.TypeEdge:
		if r3.Dot(l, b) != 0 {
			return ErrEdgeDirections
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, ptype)
	}
	return nil
}

// ContrastFactor returns the dislocation contrast factor in an
// elastically isotropic crystal, for the diffraction direction g, line
// direction l, Burgers direction b and Poisson's number nu.
//
// With g = (2,0,0) and l = b = (1,1,0), the screw factor is 0.25.
func ContrastFactor(ptype string, g, l, b r3.Vec, nu float64) (float64, error) {
	psi := math.Acos(r3.Dot(g, l) / (r3.Norm(g) * r3.Norm(l)))
	switch ptype {
	case pattern.TypeScrew:
		s, c := math.Sin(psi), math.Cos(psi)
		return s * s * c * c, nil
	case pattern.TypeEdge:
		nl2 := r3.Norm2(l)
		pg := r3.Sub(g, r3.Scale(r3.Dot(g, l)/nl2, l))
		pb := r3.Sub(b, r3.Scale(r3.Dot(b, l)/nl2, l))
		gamma := math.Acos(r3.Dot(pg, pb) / (r3.Norm(pg) * r3.Norm(pb)))
		s := math.Sin(psi)
		cg := math.Cos(gamma)
		return s * s * s * s / (8 * (1 - nu) * (1 - nu)) *
			(1 - 4*nu + 8*nu*nu + 4*(1-2*nu)*cg*cg), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, ptype)
	}
}
