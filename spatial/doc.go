// Package spatial is the incremental multi-type spatial-statistics
// engine: neighbor counting → averaged counts M → Ripley's K → pair
// correlation g → derived antisymmetric/symmetric functions Ga/Gs,
// over one Distribution or, member-averaged, over a Sample.
//
// Pipeline:
//
//  1. NeighborCount: points of an observed set within each squared
//     radius of a center, by one sort plus cumulative binning —
//     O(M log M + R) instead of O(M·R). A coincident point at the
//     exact center is never counted.
//  2. AveragedCount: the weighted neighbor count averaged over the
//     centers. Convention: the divisor is the NUMBER OF CENTERS in
//     every edge mode, so corrected and uncorrected estimators share
//     one scale.
//  3. CrossCounts: the four sign-resolved averages M++, M-+, M+-, M--,
//     with centers restricted to the region interior and the observed
//     set chosen by the edge-consideration mode.
//  4. RipleyK: M divided by the observed sense's areal density.
//  5. PairCorrelation: dK/dr via central differences, normalized by the
//     shell derivative 2πr; both schedule endpoints are NaN because the
//     one-sided difference there is unreliable.
//  6. DerivedG: Ga and Gs, sense-count-weighted combinations of the
//     radius derivatives of the four M arrays.
//
// Edge-consideration modes:
//
//   - EdgeNone: observed = the distribution's full stored point set
//     (boundary extension included); no weighting.
//   - EdgeWeighting: observed = the interior set itself, weighted by
//     the inverse-visibility edge weights.
//   - EdgeReplication: observed = interior points plus their periodic
//     replicas at rank ⌈max radius / size⌉ (square only). Caveat: once
//     the radius reaches the region size or its multiples the same
//     physical point is seen through several replicas, which produces
//     counting discontinuities.
//   - EdgeGhost: observed = interior points plus freshly generated
//     ghost patches at the same rank (square only); advances the
//     distribution's random source.
//
// Calculate computes only the minimal dependency chain for the
// requested quantities; requesting extra quantities never alters
// already-computed ones. CalculateSample feeds the whole result tuple
// through pattern.Average, so the pipeline is averaged member-wise,
// never pooled.
//
// Errors:
//
//   - ErrUnknownQuantity, ErrUnknownEdgeMode: unrecognized request tags.
//   - ErrRadii: radius schedule not ascending from a non-negative start.
//   - ErrNoQuantities: empty request.
//   - ErrSenseEmpty: an interior sense population is empty, leaving the
//     per-sense density undefined.
//   - boundary.ErrReplicationShape / boundary.ErrGhostShape: tiling
//     modes on a disk region.
package spatial
