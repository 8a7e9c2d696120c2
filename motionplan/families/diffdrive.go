package families

import (
	"math"

	"go.viam.com/carplan/motionplan/segments"
	"go.viam.com/carplan/spatialmath"
)

// DiffDrive returns the two families of a base able to rotate in place: face the goal, drive straight to
// it, then rotate to the goal heading; either driving forwards or backing up.
func DiffDrive() []Family {
	return []Family{
		{Name: "P+S+P+", Generate: pivotForwardPivot},
		{Name: "P+S-P+", Generate: pivotBackwardPivot},
	}
}

// pivot rotates in place by the signed angle, always in forward gear.
func pivot(angle float64) segments.Element {
	if angle < 0 {
		return segments.NewPivot(-angle, segments.Right, segments.Forward)
	}
	return segments.NewPivot(angle, segments.Left, segments.Forward)
}

func pivotForwardPivot(x, y, phi float64) segments.Path {
	rho, theta := spatialmath.CartesianToPolar(x, y)
	return segments.Path{
		pivot(theta),
		segments.NewElement(rho, segments.Straight, segments.Forward),
		pivot(spatialmath.WrapToPi(phi - theta)),
	}
}

func pivotBackwardPivot(x, y, phi float64) segments.Path {
	rho, theta := spatialmath.CartesianToPolar(x, y)
	facing := spatialmath.WrapToPi(theta + math.Pi)
	return segments.Path{
		pivot(facing),
		segments.NewElement(rho, segments.Straight, segments.Backward),
		pivot(spatialmath.WrapToPi(phi - facing)),
	}
}
