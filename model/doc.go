// Package model implements the stochastic models generating dislocation
// patterns: positions in the region of interest plus Burgers vector
// senses (+1 or -1), driven by an injected random source.
//
// Models:
//
//   - RDD ("random dislocation distribution"): round(density·volume)
//     points uniformly distributed in the region. Disk positions use
//     polar sampling with radius ∝ √u so the distribution is uniform in
//     area, not in radius. Senses split evenly, a single odd leftover
//     gets a random sense.
//   - RRDD ("restricted random"): a regular grid of square cells, each
//     holding exactly f points placed uniformly inside the cell. f is
//     given directly or derived as round(density·side²) and must be
//     even. Variants: VariantRandom (one global shuffle of half
//     positive, half negative) or VariantEven (each cell gets exactly
//     f/2 positive then f/2 negative, in fixed order).
//   - RCDD ("random cell"): the same grid, but points are confined to a
//     wall border of thickness t around each cell, drawn by mapping a
//     uniform unit-square sample into one of four border bricks.
//     Variants: VariantRandom and VariantEven as above, plus
//     VariantDipole, which spends half the cell budget on wall anchors
//     and splits each anchor into a (+,-) pair at ±length/2 along a
//     uniformly random angle.
//
// For a disk region, grid models over-generate on the bounding grid and
// trim with the strict interior mask afterwards; cells are never
// clipped one by one.
//
// Parameters are carried by the typed Params struct and validated
// exhaustively before any generation happens. The grid step should
// divide the region size; a small mismatch only distorts the outermost
// cells.
//
// Reproducibility: every generator takes a *rand.Rand. Callers who omit
// a seed should obtain one from PickSeed so the drawn value can be
// recorded and reported.
//
// Errors:
//
//   - ErrUnknownKind, ErrUnknownVariant: tags outside the enums.
//   - ErrDensity: missing or non-positive density where required.
//   - ErrCellSide: missing or non-positive cell side for grid models.
//   - ErrOddFilling: an odd per-cell filling where sign balance demands even.
//   - ErrWallThickness: wall thicker than half the cell side.
//   - ErrDipoleLength: dipole length exceeding the wall budget.
package model
