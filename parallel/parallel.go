package parallel

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/dislotools/lpa2d/boundary"
	"github.com/dislotools/lpa2d/geom"
	"github.com/dislotools/lpa2d/model"
	"github.com/dislotools/lpa2d/pattern"
	"github.com/dislotools/lpa2d/spatial"
)

// Sentinel errors for job configuration.
var (
	// ErrWorkers indicates a worker count < 1.
	ErrWorkers = errors.New("parallel: worker count must be at least 1")
	// ErrSize indicates a per-worker sample size < 1.
	ErrSize = errors.New("parallel: per-worker sample size must be at least 1")
)

// Config describes one pooled generation-plus-analysis job.
type Config struct {
	// Region, Kind and Params describe the patterns to draw.
	Region geom.Region
	Kind   model.Kind
	Params model.Params
	// Type is the dislocation type tag (default screw).
	Type string
	// Boundary is applied to every drawn distribution (default none).
	Boundary boundary.Condition
	// Workers is the number of concurrent workers.
	Workers int
	// Size is the number of distributions per worker sample.
	Size int
	// BaseSeed anchors the seed layout: worker w draws its sample with
	// seed BaseSeed + w*Size. Nil draws a base seed and records it.
	BaseSeed *int64
	// Quantities and Mode are forwarded to the statistics engine.
	Quantities []spatial.Quantity
	Mode       spatial.EdgeMode
	// Logger receives per-worker progress and seed-collision warnings.
	// Nil disables logging.
	Logger *zap.Logger
}

// Result is the pooled outcome of one job.
type Result struct {
	// Radii is the shared analysis schedule, derived from the averaged
	// inter-dislocation distance.
	Radii []float64
	// Zoom bounds the short-range prefix of Radii for display.
	Zoom int
	// Stacks holds the pooled quantities, in request order.
	Stacks []spatial.Stacked
	// InterDist is the worker-averaged inter-dislocation distance the
	// schedule was derived from.
	InterDist float64
	// Seed is the base seed of the layout, supplied or drawn.
	Seed int64
}

// Run executes the job: every worker draws one sample, the
// inter-dislocation distances are averaged into a shared radius
// schedule, every worker analyzes its own sample over that schedule,
// and the per-worker stacks are reduced to their element-wise mean.
func Run(cfg Config) (*Result, error) {
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrWorkers, cfg.Workers)
	}
	if cfg.Size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrSize, cfg.Size)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	base := model.PickSeed(cfg.BaseSeed)

	opts := []pattern.Option{}
	if cfg.Type != "" {
		opts = append(opts, pattern.WithType(cfg.Type))
	}
	if cfg.Boundary.Kind != boundary.NoCondition {
		opts = append(opts, pattern.WithBoundary(cfg.Boundary))
	}

	// Generation phase: one sample per worker, disjoint seed ranges.
	samples := make([]*pattern.Sample, cfg.Workers)
	errs := make([]error, cfg.Workers)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			seed := base + int64(w*cfg.Size)
			s, err := pattern.NewSample(cfg.Size, cfg.Region, cfg.Kind, cfg.Params,
				append(opts, pattern.WithSeed(seed))...)
			if err != nil {
				errs[w] = fmt.Errorf("worker %d: %w", w, err)
				return
			}
			samples[w] = s
			log.Debug("sample generated",
				zap.Int("worker", w),
				zap.Int64("seed", seed),
				zap.Float64("density", s.Density()))
		}(w)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	warnCollisions(log, samples)

	// Shared schedule from the averaged inter-dislocation distance.
	dists := make([]float64, cfg.Workers)
	for w, s := range samples {
		dists[w] = s.InterPointDistance()
	}
	interDist := stat.Mean(dists, nil)
	radii, zoom, err := spatial.Intervals(interDist, cfg.Region.Size())
	if err != nil {
		return nil, err
	}

	// Analysis phase over the shared schedule.
	stacks := make([][]spatial.Stacked, cfg.Workers)
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			out, err := spatial.CalculateSample(samples[w], radii, cfg.Quantities, spatial.Options{Mode: cfg.Mode})
			if err != nil {
				errs[w] = fmt.Errorf("worker %d: %w", w, err)
				return
			}
			stacks[w] = out
			log.Debug("sample analyzed", zap.Int("worker", w))
		}(w)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &Result{
		Radii:     radii,
		Zoom:      zoom,
		Stacks:    reduce(stacks),
		InterDist: interDist,
		Seed:      base,
	}, nil
}

// reduce averages the per-worker stacks element-wise. Shapes are
// identical across workers because every worker ran the same request.
func reduce(stacks [][]spatial.Stacked) []spatial.Stacked {
	n := len(stacks)
	out := make([]spatial.Stacked, len(stacks[0]))
	for q := range out {
		out[q] = make(spatial.Stacked, len(stacks[0][q]))
		for r := range out[q] {
			row := make([]float64, len(stacks[0][q][r]))
			copy(row, stacks[0][q][r])
			for w := 1; w < n; w++ {
				floats.Add(row, stacks[w][q][r])
			}
			floats.Scale(1/float64(n), row)
			out[q][r] = row
		}
	}
	return out
}

// warnCollisions logs every member seed used by more than one
// distribution. Collisions bias the pooled average: two members with
// the same seed contribute the same realization twice.
func warnCollisions(log *zap.Logger, samples []*pattern.Sample) {
	seen := make(map[int64][2]int)
	for w, s := range samples {
		for k := 0; k < s.Len(); k++ {
			seed := s.At(k).Seed()
			if prev, ok := seen[seed]; ok {
				log.Warn("duplicate member seed",
					zap.Int64("seed", seed),
					zap.Int("worker", w),
					zap.Int("member", k),
					zap.Int("firstWorker", prev[0]),
					zap.Int("firstMember", prev[1]))
				continue
			}
			seen[seed] = [2]int{w, k}
		}
	}
}
