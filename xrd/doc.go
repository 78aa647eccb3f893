// Package xrd writes standardized input data files for X-ray
// diffraction line-profile simulation programs.
//
// What:
//   - 📝 fixed-width data files listing Burgers vector senses and
//     dislocation coordinates, preceded by a simulation header;
//   - 📐 dislocation contrast factors in elastically isotropic
//     crystals, for both screw and edge characters;
//   - ✅ consistency checks between the dislocation character and the
//     line/Burgers vector directions.
//
// Why: diffraction simulation codes consume the generated patterns
// through a rigid text format. Keeping the writer here, next to the
// contrast-factor math, guarantees the header and the geometry stay
// consistent.
//
// Exports:
//   - Export writes one distribution to an io.Writer;
//   - ExportFile writes one distribution to <dir>/<stem>.<format>;
//   - ExportSample writes one file per sample member into a dedicated
//     directory, with zero-padded file stems.
//
// Errors: ErrUnknownType, ErrScrewDirections, ErrEdgeDirections.
package xrd
