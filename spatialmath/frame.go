package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// ChangeOfBasis expresses end in the frame whose origin is start and whose +X axis is start's heading.
func ChangeOfBasis(start, end Pose) Pose {
	d := end.Point().Sub(start.Point())
	s, c := math.Sincos(start.theta)
	return NewPose(
		d.X*c+d.Y*s,
		-d.X*s+d.Y*c,
		end.theta-start.theta,
	)
}

// Frame maps poses between world coordinates and a normalized frame anchored at Origin in which
// distances are divided by Scale. With Scale set to a vehicle's turning radius, the normalized frame is
// the one every closed-form path family is written in: start at the origin, heading 0, unit radius.
type Frame struct {
	Origin Pose
	Scale  float64
}

// NewFrame returns the normalized frame anchored at origin with the given scale.
func NewFrame(origin Pose, scale float64) Frame {
	return Frame{Origin: origin, Scale: scale}
}

// ToLocal converts a world pose into the normalized frame.
func (f Frame) ToLocal(world Pose) Pose {
	return ChangeOfBasis(f.Origin, world).Scale(1 / f.Scale)
}

// ToWorld converts a pose in the normalized frame back into world coordinates.
func (f Frame) ToWorld(local Pose) Pose {
	s, c := math.Sincos(f.Origin.theta)
	scaled := local.Point().Mul(f.Scale)
	rotated := r2.Point{X: scaled.X*c - scaled.Y*s, Y: scaled.X*s + scaled.Y*c}
	return NewPoseFromPoint(f.Origin.Point().Add(rotated), local.theta+f.Origin.theta)
}
