package overlap

import "math"

// clampUnit clamps x to [-1, 1] so acos never sees an argument pushed
// out of range by floating-point error.
func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

// CircleCircle returns the area of the intersection of two disks of
// radii rA and rB whose centers are d apart.
//
// Branches:
//   - d ≥ rA+rB: the disks are disjoint, the area is 0.
//   - d+rA ≤ rB: disk A lies inside disk B, the area is π·rA².
//   - d+rB ≤ rA: disk B lies inside disk A, the area is π·rB².
//   - otherwise the general lens formula applies.
func CircleCircle(rA, rB, d float64) float64 {
	if rA+rB <= d {
		return 0
	}
	if d+rA <= rB {
		return math.Pi * rA * rA
	}
	if d+rB <= rA {
		return math.Pi * rB * rB
	}
	r2A, r2B, d2 := rA*rA, rB*rB, d*d
	aA := r2A * math.Acos(clampUnit((d2+r2A-r2B)/(2*d*rA)))
	aB := r2B * math.Acos(clampUnit((d2+r2B-r2A)/(2*d*rB)))
	cut := math.Sqrt((rA+rB-d)*(rA+rB+d)*(rA-rB+d)*(rB-rA+d)) / 2
	return aA + aB - cut
}

// CircleCircleRadii broadcasts CircleCircle over a schedule of disk
// radii against a fixed disk of radius rB at center distance d.
func CircleCircleRadii(radii []float64, rB, d float64) []float64 {
	out := make([]float64, len(radii))
	for i, r := range radii {
		out[i] = CircleCircle(r, rB, d)
	}
	return out
}

// cornerExcess returns the area of the part of a disk of radius r that
// lies outside the quadrant whose corner sits at distances d1 and d2
// from the disk center (along the two half-plane normals).
//
// When the corner is outside the disk (d1²+d2² > r²) the excised area
// is the sum of up to two circular segments; otherwise the quadrant
// formula π·r²/4 - d1·d2 applies.
func cornerExcess(d1, d2, r, r2 float64) float64 {
	if d1*d1+d2*d2 > r2 {
		var e float64
		if d1 < r {
			e += (r2*math.Acos(clampUnit(d1/r)) - d1*math.Sqrt(r2-d1*d1)) / 2
		}
		if d2 < r {
			e += (r2*math.Acos(clampUnit(d2/r)) - d2*math.Sqrt(r2-d2*d2)) / 2
		}
		return e
	}
	return math.Pi*r2/4 - d1*d2
}

// CircleSquare returns the area of the intersection of a disk of radius
// r centered at (cx, cy) with the square (0, side)². The center is
// expected inside the square, which is how the edge-correction weights
// invoke it.
func CircleSquare(cx, cy, r, side float64) float64 {
	r2 := r * r
	dA := side - cx
	dB := side - cy
	dC := cx
	dD := cy
	e := cornerExcess(dA, dB, r, r2) +
		cornerExcess(dB, dC, r, r2) +
		cornerExcess(dC, dD, r, r2) +
		cornerExcess(dD, dA, r, r2)
	return math.Pi*r2 - e
}

// CircleSquareRadii broadcasts CircleSquare over a schedule of disk radii.
func CircleSquareRadii(cx, cy float64, radii []float64, side float64) []float64 {
	out := make([]float64, len(radii))
	for i, r := range radii {
		out[i] = CircleSquare(cx, cy, r, side)
	}
	return out
}
