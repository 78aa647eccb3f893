// Package pattern owns generated dislocation patterns: the Distribution
// (one pattern) and the Sample (a fixed-size collection of
// independently generated patterns sharing parameters).
//
// What:
//
//   - New builds a Distribution in one shot: validate the region and
//     model parameters, generate the pattern, derive the density and
//     inter-dislocation distance, and apply at most one boundary
//     condition. The result is immutable.
//   - EdgeWeight returns the inverse-visibility weights used by the
//     weighting edge-correction mode: the reciprocal of the fraction of
//     a neighborhood disk that remains inside the region.
//   - NewSample builds n member distributions off one base seed; member
//     k is seeded with base+k, so one top-level seed reproduces the
//     whole sample while keeping member streams independent.
//   - Average applies a function to every member and averages the
//     results element-wise. It is the only bridge between
//     per-distribution computation and sample-level aggregation; the
//     statistics engine feeds its whole result tuple through it.
//
// Conventions:
//
//   - Density is derived from the model-generated points, before any
//     boundary extension is appended, and must be nonzero.
//   - Inter-dislocation distance is 1/√density; for a sample both are
//     arithmetic means over the members.
//   - The edge weight at radius 0 is defined as 1.
//
// Errors:
//
//   - ErrZeroDensity: the model produced no points.
//   - ErrSampleSize: sample size < 1.
//   - ErrResultShape: members returned tuples of differing shape.
//   - boundary.ErrAlreadyApplied and the boundary compatibility errors
//     surface unchanged from Extend.
package pattern
