// Package boundary implements the strategies compensating for the
// finite size of the region of interest, so that a generated pattern
// emulates a patch of an infinite medium.
//
// What:
//
//   - ImageReflection (disk only, screw type only): every dislocation at
//     distance ρ > 0 from the center gets a sign-flipped image at radius
//     size²/ρ along the same angle. Points at the exact origin have no
//     image.
//   - Replication(rank) (square only): the whole pattern is tiled onto
//     every lattice cell within Chebyshev distance 1..rank of the origin
//     cell, signs unchanged.
//   - GhostBorder(rank) (square only): each surrounding cell receives a
//     freshly generated, independent patch instead of a copy, which
//     avoids the periodic correlation artifacts of replication.
//
// The ring of surrounding cells is enumerated by one unified spiral
// routine valid for any rank: ring r contains exactly 8·r cells, and
// the union of rings 1..rank covers every cell within Chebyshev
// distance rank, with no duplicates. The traversal order is
// deterministic, which GhostBorder requires for reproducibility.
//
// Why:
//
//   - Neighborhoods centered near the region edge are truncated;
//     appending image, replicated or ghost points restores the missing
//     neighbors that an infinite medium would provide.
//
// Errors:
//
//   - ErrRank: replication or ghost rank < 1.
//   - ErrImageShape / ErrImageType: image reflection on a non-disk
//     region or non-screw dislocation type.
//   - ErrReplicationShape / ErrGhostShape: tiling strategies on a
//     non-square region.
//   - ErrAlreadyApplied: boundary conditions applied twice to the same
//     distribution.
//   - ErrUnknownKind: condition kind outside the defined variants.
package boundary
