package segments

import (
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/carplan/spatialmath"
)

// Advance returns the pose reached after driving the element from the given pose with the given turning
// radius. Turns are integrated exactly around the turning circle center.
func Advance(from spatialmath.Pose, e Element, turningRadius float64) spatialmath.Pose {
	return AdvanceFraction(from, e, turningRadius, 1)
}

// AdvanceFraction is Advance over the first frac (in [0, 1]) of the element.
func AdvanceFraction(from spatialmath.Pose, e Element, turningRadius, frac float64) spatialmath.Pose {
	param := e.Param * frac
	theta := from.Theta()
	switch {
	case e.Pivot:
		return spatialmath.NewPoseFromPoint(from.Point(), theta+param*e.Steering.Sign()*e.Gear.Sign())
	case e.Steering == Straight:
		d := from.Heading().Mul(e.Gear.Sign() * param * turningRadius)
		return spatialmath.NewPoseFromPoint(from.Point().Add(d), theta)
	default:
		steer := e.Steering.Sign()
		thetaNext := theta + param*steer*e.Gear.Sign()
		sin0, cos0 := math.Sincos(theta)
		sin1, cos1 := math.Sincos(thetaNext)
		center := from.Point().Sub(r2.Point{X: sin0, Y: -cos0}.Mul(steer * turningRadius))
		pos := center.Add(r2.Point{X: sin1, Y: -cos1}.Mul(steer * turningRadius))
		return spatialmath.NewPoseFromPoint(pos, thetaNext)
	}
}

// Endpoint returns the pose reached after driving the whole path.
func Endpoint(p Path, start spatialmath.Pose, turningRadius float64) spatialmath.Pose {
	pose := start
	for _, e := range p {
		pose = Advance(pose, e, turningRadius)
	}
	return pose
}
