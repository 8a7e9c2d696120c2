// Package utils contains small numeric helpers shared by the config file, the planner and the cli.
package utils

import (
	"math"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// ScaleEpsilon grows an absolute tolerance with the magnitude of a quantity, never shrinking it below eps.
func ScaleEpsilon(eps, magnitude float64) float64 {
	return eps * math.Max(1, math.Abs(magnitude))
}
