// Package geom defines the region-of-interest geometry used by every
// other package of lpa2d: the shape of the finite domain containing a
// dislocation pattern, its n-volume, and strict interior membership.
//
// What:
//
//   - Region wraps a Shape (Disk or Square) with a characteristic size:
//     the radius of a disk centered at the origin, or the side of a
//     square with one corner at the origin.
//   - Volume returns the 2-volume (area): π·size² or size².
//   - Contains/InteriorMask test strict interior membership; points
//     exactly on the boundary are excluded.
//
// Why:
//
//   - Generation models need membership masks to trim over-generated
//     grids to a disk.
//   - The statistics engine restricts neighborhood centers to interior
//     points before applying edge correction.
//
// Conventions:
//
//   - The disk is centered at (0, 0); the square spans (0, size)×(0, size).
//   - Dimension is always 2 in this library.
//
// Errors:
//
//   - ErrUnknownShape: shape value outside {Disk, Square}.
//   - ErrNonPositiveSize: characteristic size ≤ 0.
package geom
