package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats/scalar"
)

const defaultPoseEpsilon = 1e-6

// Pose is the position and heading of a planar body. Heading is in radians, counter-clockwise from +X,
// and is always stored wrapped to [-pi, pi). Pose is a value type; none of its methods modify the receiver.
type Pose struct {
	x, y  float64
	theta float64
}

// NewPose creates a pose, wrapping the heading into [-pi, pi).
func NewPose(x, y, theta float64) Pose {
	return Pose{x: x, y: y, theta: WrapToPi(theta)}
}

// NewPoseFromPoint creates a pose at the given point with the given heading.
func NewPoseFromPoint(pt r2.Point, theta float64) Pose {
	return NewPose(pt.X, pt.Y, theta)
}

// NewZeroPose returns the pose at the origin facing +X.
func NewZeroPose() Pose {
	return Pose{}
}

// X returns the x coordinate.
func (p Pose) X() float64 { return p.x }

// Y returns the y coordinate.
func (p Pose) Y() float64 { return p.y }

// Theta returns the heading in [-pi, pi).
func (p Pose) Theta() float64 { return p.theta }

// Point returns the position of the pose.
func (p Pose) Point() r2.Point {
	return r2.Point{X: p.x, Y: p.y}
}

// Heading returns the unit vector the pose is facing.
func (p Pose) Heading() r2.Point {
	return r2.Point{X: math.Cos(p.theta), Y: math.Sin(p.theta)}
}

// IsFinite reports whether every component of the pose is a finite number.
func (p Pose) IsFinite() bool {
	for _, v := range []float64{p.x, p.y, p.theta} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Translate returns the pose moved by the given offset, keeping its heading.
func (p Pose) Translate(offset r2.Point) Pose {
	return Pose{x: p.x + offset.X, y: p.y + offset.Y, theta: p.theta}
}

// Scale returns the pose with its position multiplied by k. The heading is unchanged.
func (p Pose) Scale(k float64) Pose {
	return Pose{x: p.x * k, y: p.y * k, theta: p.theta}
}

func (p Pose) String() string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", p.x, p.y, p.theta)
}

// PoseAlmostEqual returns whether two poses are within a small epsilon of each other, comparing the
// heading by its wrapped difference.
func PoseAlmostEqual(a, b Pose) bool {
	return PoseAlmostEqualEps(a, b, defaultPoseEpsilon)
}

// PoseAlmostEqualEps is PoseAlmostEqual with a caller-provided epsilon.
func PoseAlmostEqualEps(a, b Pose, epsilon float64) bool {
	return scalar.EqualWithinAbs(a.x, b.x, epsilon) &&
		scalar.EqualWithinAbs(a.y, b.y, epsilon) &&
		math.Abs(AngleDiff(a.theta, b.theta)) <= epsilon
}
