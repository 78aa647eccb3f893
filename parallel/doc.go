// Package parallel pools the spatial analysis of independently
// generated samples across worker goroutines.
//
// What:
//   - 🧵 Run fans one generation-plus-analysis job out to W workers,
//     each drawing its own sample with a disjoint seed range, and
//     reduces the per-worker results to their element-wise mean;
//   - 📏 the radius schedule is shared: worker inter-dislocation
//     distances are averaged first, then one schedule is derived from
//     the average and handed to every worker.
//
// Why: statistics of stochastic patterns converge with the number of
// analyzed realizations. The workers are fully independent, so the
// pooled mean over W workers of S members each equals the mean of one
// sample of W×S members, at a fraction of the wall time.
//
// Determinism: worker w seeds its sample with BaseSeed + w×Size, so
// member seeds never collide across workers. A collision, possible
// only through a custom seed layout, is logged as a warning because it
// silently biases the pooled average.
//
// Errors: ErrWorkers, ErrSize, plus anything generation or analysis
// returns.
package parallel
