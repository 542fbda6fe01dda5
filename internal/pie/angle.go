package pie

import "math"

const (
	// FullCircle is the number of radians in one turn.
	FullCircle = math.Pi + math.Pi
	// HalfPi is the base weight every item receives.
	HalfPi = math.Pi / 2
)

// AngularDifference returns the shortest signed rotation from b to a.
// Of the unwrapped difference and the difference across the ±π seam, the
// one with the smaller magnitude wins; ties keep the unwrapped value.
func AngularDifference(a, b float64) float64 {
	c := a - b
	var d float64
	if a > b {
		d = a - (b + FullCircle)
	} else {
		d = a - (b - FullCircle)
	}
	if math.Abs(c) <= math.Abs(d) {
		return c
	}
	return d
}

// NormalizeAngle wraps a into (−π, π] with at most one full turn, so callers
// must pass values that are already close to the canonical range.
func NormalizeAngle(a float64) float64 {
	if a <= -math.Pi {
		return a + FullCircle
	}
	if a > math.Pi {
		return a - FullCircle
	}
	return a
}
