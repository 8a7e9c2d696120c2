package spatialmath

import "math"

// WrapTo2Pi returns the given angle in the [0, 2pi) range.
func WrapTo2Pi(theta float64) float64 {
	wrapped := theta - 2*math.Pi*math.Floor(theta/(2*math.Pi))
	if wrapped >= 2*math.Pi {
		// floating point can land exactly on the open end
		return 0
	}
	return wrapped
}

// WrapToPi returns the given angle in the [-pi, pi) range.
func WrapToPi(theta float64) float64 {
	wrapped := theta - 2*math.Pi*math.Floor((theta+math.Pi)/(2*math.Pi))
	if wrapped >= math.Pi {
		wrapped -= 2 * math.Pi
	}
	return wrapped
}

// AngleDiff returns the signed smallest rotation taking a1 to a2, in [-pi, pi).
func AngleDiff(a1, a2 float64) float64 {
	return WrapToPi(a2 - a1)
}

// CartesianToPolar converts a cartesian coordinate into a radius and an angle in [-pi, pi).
// The origin maps to (0, 0).
func CartesianToPolar(x, y float64) (float64, float64) {
	return math.Hypot(x, y), WrapToPi(math.Atan2(y, x))
}
