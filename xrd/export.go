package xrd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dislotools/lpa2d/geom"
	"github.com/dislotools/lpa2d/pattern"
)

// formatVersion tags the header so a simulation program can detect
// incompatible layout changes.
const formatVersion = "1.0.0"

// Defaults per dislocation character: line direction l and the
// direction of the Fourier variable L.
var (
	defaultLine = map[string]r3.Vec{
		pattern.TypeEdge:  {X: 1, Y: -1, Z: -2},
		pattern.TypeScrew: {X: 1, Y: 1, Z: 0},
	}
	defaultFourier = map[string]r3.Vec{
		pattern.TypeEdge:  {X: 1, Y: 1, Z: 0},
		pattern.TypeScrew: {X: -1, Y: 1, Z: 0},
	}
)

// Params tunes the exported header. The zero value of a field selects
// its default; call Complete to resolve them explicitly.
type Params struct {
	// Diffraction is the diffraction vector direction g (hkl).
	// Default (2,0,0).
	Diffraction *r3.Vec
	// Burgers is the Burgers vector direction b [uvw]. Default (1,1,0).
	Burgers *r3.Vec
	// Line is the dislocation line direction l [uvw]. The default
	// depends on the dislocation character.
	Line *r3.Vec
	// Fourier is the direction of the Fourier variable L along x
	// [uvw]. The default depends on the dislocation character.
	Fourier *r3.Vec
	// CellParam is the crystal cell parameter [nm]. Default 0.40494.
	CellParam float64
	// StepA3 is the step size of L along x [nm].
	// Default max(2, interDist/12).
	StepA3 float64
	// Nu is Poisson's number. Default 0.345.
	Nu float64
	// Rank is the replication rank advertised in the header and
	// appended to default stems as "_PBC<rank>". Default 0 (no
	// replication).
	Rank int
	// Format is the file extension used by ExportFile and
	// ExportSample. Default "dat".
	Format string
}

// Complete resolves every defaulted field for the given dislocation
// character and inter-dislocation distance.
func (p Params) Complete(ptype string, interDist float64) (Params, error) {
	if _, ok := defaultLine[ptype]; !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownType, ptype)
	}
	if p.Diffraction == nil {
		p.Diffraction = &r3.Vec{X: 2, Y: 0, Z: 0}
	}
	if p.Burgers == nil {
		p.Burgers = &r3.Vec{X: 1, Y: 1, Z: 0}
	}
	if p.Line == nil {
		l := defaultLine[ptype]
		p.Line = &l
	}
	if p.Fourier == nil {
		f := defaultFourier[ptype]
		p.Fourier = &f
	}
	if p.CellParam == 0 {
		p.CellParam = 0.40494
	}
	if p.StepA3 == 0 {
		p.StepA3 = interDist / 12
		if p.StepA3 < 2 {
			p.StepA3 = 2
		}
	}
	if p.Nu == 0 {
		p.Nu = 0.345
	}
	if p.Format == "" {
		p.Format = "dat"
	}
	return p, nil
}

// indices renders a crystallographic direction as header indices.
func indices(v r3.Vec) string {
	return fmt.Sprintf("%2.0f %2.0f %2.0f", v.X, v.Y, v.Z)
}

// regionLabel names the header line holding the region size.
func regionLabel(shape geom.Shape, rank int) string {
	if shape == geom.Disk {
		return "Cylinder radius"
	}
	if rank > 0 {
		return fmt.Sprintf("Square_%d side", rank)
	}
	return "Square side"
}

// Export writes the distribution to w in the standardized input
// format: an eleven-line header followed by one fixed-width row per
// dislocation (sense, x, y). The inter-dislocation distance is passed
// separately because a sample export uses the sample-wide average
// rather than the member's own.
func Export(w io.Writer, d *pattern.Distribution, interDist float64, p Params) error {
	p, err := p.Complete(d.Type(), interDist)
	if err != nil {
		return err
	}
	if err := CheckDirections(d.Type(), *p.Line, *p.Burgers); err != nil {
		return err
	}
	c, err := ContrastFactor(d.Type(), *p.Diffraction, *p.Line, *p.Burgers, p.Nu)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%8s # file format version\n", formatVersion)
	fmt.Fprintf(bw, "%8.2E # dislocation density [m^-2]\n", d.Density()*1e18)
	fmt.Fprintf(bw, "%s # z: direction of 'l' (line vector) [uvw]\n", indices(*p.Line))
	fmt.Fprintf(bw, "%s # x: direction of 'L' (Fourier variable) [uvw]\n", indices(*p.Fourier))
	fmt.Fprintf(bw, "%s # b: Burgers vector direction [uvw]\n", indices(*p.Burgers))
	fmt.Fprintf(bw, "%s # g: diffraction vector direction (hkl)\n", indices(*p.Diffraction))
	fmt.Fprintf(bw, "%8.6f # C: contrast coefficient [1]\n", c)
	fmt.Fprintf(bw, "%8.6f # a: cell parameter [nm]\n", p.CellParam)
	fmt.Fprintf(bw, "%8.0f # s: %s [nm]\n", d.Region().Size(), regionLabel(d.Region().Shape(), p.Rank))
	fmt.Fprintf(bw, "%8.1f # a3: step size of 'L' along x [nm]\n", p.StepA3)
	fmt.Fprintf(bw, "%8.3f # nu: Poisson's number [1]\n", p.Nu)
	fmt.Fprintf(bw, "%8.0f # number of dislocations in this file\n", float64(d.Len()))
	fmt.Fprintf(bw, "# Burgers vector senses and dislocation (x,y) coordinates [1], [nm], [nm]\n")

	pts := d.Positions()
	senses := d.Senses()
	for i, pt := range pts {
		fmt.Fprintf(bw, "%2.0f %22.15E %22.15E\n", float64(senses[i]), pt.X, pt.Y)
	}
	return bw.Flush()
}

// stemSuffix is appended to default file stems when a replication rank
// is advertised.
func stemSuffix(rank int) string {
	if rank > 0 {
		return fmt.Sprintf("_PBC%d", rank)
	}
	return ""
}

// ExportFile writes one distribution to <dir>/<stem>.<format>, with
// the distribution's own stem by default.
func ExportFile(dir string, d *pattern.Distribution, p Params) error {
	name := d.Stem() + stemSuffix(p.Rank) + "." + resolveFormat(p)
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if err := Export(f, d, d.InterPointDistance(), p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportSample writes one file per sample member into the directory
// <dir>/<sample stem>, named by the member ordinal zero-padded to a
// common width. Every member shares the sample-wide averaged
// inter-dislocation distance.
func ExportSample(dir string, s *pattern.Sample, p Params) error {
	sub := filepath.Join(dir, s.Stem()+stemSuffix(p.Rank))
	if err := os.MkdirAll(sub, 0o755); err != nil {
		return err
	}
	width := len(fmt.Sprint(s.Len()))
	for k := 0; k < s.Len(); k++ {
		name := fmt.Sprintf("%0*d.%s", width, k+1, resolveFormat(p))
		f, err := os.Create(filepath.Join(sub, name))
		if err != nil {
			return err
		}
		if err := Export(f, s.At(k), s.InterPointDistance(), p); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func resolveFormat(p Params) string {
	if p.Format == "" {
		return "dat"
	}
	return p.Format
}
