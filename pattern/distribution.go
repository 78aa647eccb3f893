package pattern

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/dislotools/lpa2d/boundary"
	"github.com/dislotools/lpa2d/geom"
	"github.com/dislotools/lpa2d/model"
	"github.com/dislotools/lpa2d/overlap"
)

// Sentinel errors for distribution and sample construction.
var (
	// ErrZeroDensity indicates the model produced an empty pattern.
	ErrZeroDensity = errors.New("pattern: distribution density is zero")
	// ErrSampleSize indicates a sample size < 1.
	ErrSampleSize = errors.New("pattern: sample size must be at least 1")
	// ErrResultShape indicates members returned result tuples of
	// differing shape to Average.
	ErrResultShape = errors.New("pattern: result shape mismatch across sample members")
)

// TypeScrew and TypeEdge are the conventional dislocation type tags.
// The tag is free text; it informs image-reflection compatibility and
// downstream export only.
const (
	TypeScrew = "screw"
	TypeEdge  = "edge"
)

// Option configures New and NewSample.
type Option func(*options)

type options struct {
	ptype string
	cond  boundary.Condition
	seed  *int64
}

func defaultOptions() options {
	return options{ptype: TypeScrew}
}

// WithType sets the dislocation type tag (default TypeScrew).
func WithType(t string) Option {
	return func(o *options) { o.ptype = t }
}

// WithBoundary applies a boundary condition right after generation.
func WithBoundary(c boundary.Condition) Option {
	return func(o *options) { o.cond = c }
}

// WithSeed fixes the random seed. Without it a seed is drawn and
// recorded, retrievable through Seed.
func WithSeed(seed int64) Option {
	return func(o *options) { s := seed; o.seed = &s }
}

// Distribution is one generated dislocation pattern together with its
// region, model identity, derived scalars, and the random source that
// produced it. It is built in one shot and immutable afterwards,
// except for the one-time boundary extension.
type Distribution struct {
	region geom.Region
	kind   model.Kind
	params model.Params
	ptype  string
	cond   boundary.Condition
	seed   int64
	rng    *rand.Rand

	pat       model.Pattern
	generated int // points produced by the model, before extension

	density   float64
	interDist float64
}

// New generates a Distribution: validate, generate, derive density and
// inter-dislocation distance, then apply the boundary condition (if
// any) exactly once.
func New(reg geom.Region, kind model.Kind, params model.Params, opts ...Option) (*Distribution, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	seed := model.PickSeed(o.seed)
	rng := rand.New(rand.NewSource(seed))

	pat, err := model.Generate(kind, reg, params, rng)
	if err != nil {
		return nil, err
	}
	if pat.Len() == 0 {
		return nil, fmt.Errorf("%w: model %v produced no points", ErrZeroDensity, kind)
	}

	d := &Distribution{
		region:    reg,
		kind:      kind,
		params:    params,
		ptype:     o.ptype,
		seed:      seed,
		rng:       rng,
		pat:       pat,
		generated: pat.Len(),
	}
	d.density = float64(d.generated) / reg.Volume()
	d.interDist = 1 / math.Sqrt(d.density)

	if o.cond.Kind != boundary.NoCondition {
		if err := d.Extend(o.cond); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Extend appends the auxiliary point set of the given boundary
// condition to the stored pattern. A distribution carries at most one
// condition: a second call returns boundary.ErrAlreadyApplied.
func (d *Distribution) Extend(c boundary.Condition) error {
	if d.cond.Kind != boundary.NoCondition {
		return boundary.ErrAlreadyApplied
	}
	var extPts []geom.Point
	var extSenses []int8
	switch c.Kind {
	case boundary.NoCondition:
		return nil
	case boundary.ImageReflection:
		if d.region.Shape() != geom.Disk {
			return boundary.ErrImageShape
		}
		if d.ptype != TypeScrew {
			return fmt.Errorf("%w: type %q", boundary.ErrImageType, d.ptype)
		}
		extPts, extSenses = boundary.ImagePositions(d.region.Size(), d.pat.Positions, d.pat.Senses)
	case boundary.Replication:
		if d.region.Shape() != geom.Square {
			return boundary.ErrReplicationShape
		}
		if c.Rank < 1 {
			return fmt.Errorf("%w: got %d", boundary.ErrRank, c.Rank)
		}
		extPts, extSenses = boundary.Replications(d.region.Size(), d.pat.Positions, d.pat.Senses, c.Rank)
	case boundary.GhostBorder:
		if d.region.Shape() != geom.Square {
			return boundary.ErrGhostShape
		}
		if c.Rank < 1 {
			return fmt.Errorf("%w: got %d", boundary.ErrRank, c.Rank)
		}
		var err error
		extPts, extSenses, err = boundary.GhostPatches(d.region.Size(), c.Rank, d.ghostGenerator())
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %v", boundary.ErrUnknownKind, c.Kind)
	}
	d.pat.Positions = append(d.pat.Positions, extPts...)
	d.pat.Senses = append(d.pat.Senses, extSenses...)
	d.cond = c
	return nil
}

// ghostGenerator adapts the distribution's own model and shared random
// source into a boundary.Generator. Every call advances the source.
func (d *Distribution) ghostGenerator() boundary.Generator {
	return func() ([]geom.Point, []int8, error) {
		pat, err := model.Generate(d.kind, d.region, d.params, d.rng)
		if err != nil {
			return nil, nil, err
		}
		return pat.Positions, pat.Senses, nil
	}
}

// GhostPattern draws one fresh patch from the distribution's model with
// its shared random source. The statistics engine uses it to build
// ghost-border observation sets at analysis time.
func (d *Distribution) GhostPattern() (model.Pattern, error) {
	return model.Generate(d.kind, d.region, d.params, d.rng)
}

// Region returns the region of interest.
func (d *Distribution) Region() geom.Region { return d.region }

// Kind returns the generation model kind.
func (d *Distribution) Kind() model.Kind { return d.kind }

// Params returns the model parameters.
func (d *Distribution) Params() model.Params { return d.params }

// Type returns the dislocation type tag.
func (d *Distribution) Type() string { return d.ptype }

// Condition returns the applied boundary condition (zero value if none).
func (d *Distribution) Condition() boundary.Condition { return d.cond }

// Seed returns the seed that produced this distribution, whether it was
// supplied or drawn.
func (d *Distribution) Seed() int64 { return d.seed }

// Len returns the stored number of dislocations, boundary extension
// included.
func (d *Distribution) Len() int { return d.pat.Len() }

// GeneratedLen returns the number of model-generated dislocations,
// before any boundary extension.
func (d *Distribution) GeneratedLen() int { return d.generated }

// Positions returns the stored positions. The slice is shared with the
// distribution and must not be mutated.
func (d *Distribution) Positions() []geom.Point { return d.pat.Positions }

// Senses returns the stored Burgers vector senses, parallel to
// Positions. The slice is shared and must not be mutated.
func (d *Distribution) Senses() []int8 { return d.pat.Senses }

// CountBySense returns the stored number of positive and negative
// dislocations.
func (d *Distribution) CountBySense() (pos, neg int) { return d.pat.CountBySense() }

// Density returns the areal density of the generated pattern [nm⁻²].
func (d *Distribution) Density() float64 { return d.density }

// InterPointDistance returns 1/√density, the characteristic length
// scale of the pattern [nm].
func (d *Distribution) InterPointDistance() float64 { return d.interDist }

// EdgeWeight returns, for each radius, the reciprocal of the fraction
// of the disk of that radius around a that overlaps the region. Near
// the boundary the fraction drops below 1 and the weight compensates
// the truncated neighborhood. At radius 0 the ratio is undefined and
// the weight defaults to 1.
func (d *Distribution) EdgeWeight(a geom.Point, radii []float64) []float64 {
	w := make([]float64, len(radii))
	dist := a.Norm()
	size := d.region.Size()
	for i, r := range radii {
		if r <= 0 {
			w[i] = 1
			continue
		}
		var vo float64
		if d.region.Shape() == geom.Disk {
			vo = overlap.CircleCircle(r, size, dist)
		} else {
			vo = overlap.CircleSquare(a.X, a.Y, r, size)
		}
		w[i] = math.Pi * r * r / vo
	}
	return w
}

// Stem returns a compact identifier usable as an export file stem,
// e.g. "disk_1000nm_RDD_5e-04nm-2_screw_IDBC".
func (d *Distribution) Stem() string {
	parts := []string{
		d.region.Shape().String(),
		fmt.Sprintf("%gnm", d.region.Size()),
		d.kind.String() + d.params.Variant.String(),
		fmt.Sprintf("%.0enm-2", d.density),
		d.ptype,
	}
	if d.cond.Kind != boundary.NoCondition {
		parts = append(parts, d.cond.String())
	}
	return strings.Join(parts, "_")
}
