// Package lpa2d generates synthetic two-dimensional dislocation patterns
// and computes multi-type spatial statistics over them.
//
// A dislocation is a 2-D position plus a Burgers vector sense (+1 or -1).
// A Distribution is a set of dislocations generated in a finite region of
// interest (a disk or a square) according to a stochastic model. A Sample
// is a set of independently generated Distributions sharing the same
// parameters.
//
// 🚀 What does lpa2d provide?
//
//	A pure-numeric library that brings together:
//		• Region geometry: disk/square predicates, n-volume, interior masks
//		• Overlap areas: closed-form circle-circle and circle-square intersection
//		• Boundary conditions: image reflection, periodic replication, ghost borders
//		• Generation models: uniform (RDD), restricted random (RRDD), cell/dipole (RCDD)
//		• Spatial statistics: neighbor counts, Ripley's K, pair correlation g, Ga/Gs
//		• Edge-bias correction: inverse-visibility weighting or replicated observation sets
//		• Parallel averaging: goroutine fan-out over independently seeded samples
//
// ✨ Why choose lpa2d?
//
//   - Reproducible – every stochastic call threads an explicit seeded generator
//   - Fail-fast – typed parameter structs validated at construction time
//   - Incremental – K and g reuse neighbor counts, no redundant O(N²) passes
//   - Pure Go numerics – gonum for quadrature and slice math, nothing exotic
//
// Everything is organized under leaf-first subpackages:
//
//	geom/     — region-of-interest shapes, volumes and membership masks
//	overlap/  — analytic intersection areas used for edge-correction weights
//	boundary/ — finite-region compensation strategies and ring enumeration
//	model/    — stochastic generators of (position, sense) patterns
//	pattern/  — Distribution and Sample containers plus the Average reducer
//	spatial/  — the incremental statistics engine (N → M → K → g, Ga/Gs)
//	xrd/      — contrast factors and diffraction-simulation input export
//	parallel/ — multi-worker sample averaging with a shared radius schedule
//
// Dive into the package docs for formulas, conventions and error contracts.
package lpa2d
