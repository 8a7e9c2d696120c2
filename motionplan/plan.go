package motionplan

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"go.viam.com/carplan/motionplan/segments"
	"go.viam.com/carplan/spatialmath"
)

// Plan is a solved query. There are two key components to a Plan: its Path holds the selected word in
// the normalized frame, and its Poses and Gears hold the world waypoints a controller follows.
type Plan struct {
	Model         Model
	Start         spatialmath.Pose
	Goal          spatialmath.Pose
	TurningRadius float64

	Path  segments.Path
	Poses []spatialmath.Pose
	Gears []segments.Gear
}

// Length returns the world length of the selected path.
func (plan *Plan) Length() float64 {
	return plan.Path.WorldLength(plan.TurningRadius)
}

// End returns the exact pose the path ends at, which is the goal up to numerical error.
func (plan *Plan) End() spatialmath.Pose {
	return segments.Endpoint(plan.Path, plan.Start, plan.TurningRadius)
}

// Cusps returns the number of waypoints at which the vehicle changes gear.
func (plan *Plan) Cusps() int {
	cusps := 0
	for i := 1; i < len(plan.Gears); i++ {
		if plan.Gears[i] != plan.Gears[i-1] {
			cusps++
		}
	}
	return cusps
}

// String returns a human-readable version of the Plan, suitable for debugging.
func (plan *Plan) String() string {
	var str strings.Builder
	fmt.Fprintf(&str, "%s %s length %.4f", plan.Model, plan.Path.Word(), plan.Length())
	for i, pose := range plan.Poses {
		fmt.Fprintf(&str, "\n%s %v", plan.Gears[i], pose)
	}
	return str.String()
}

// RemainingPlan returns a new Plan holding the waypoints of the given plan from waypointIndex onwards. The
// path is kept as is since a waypoint may fall inside an element.
func RemainingPlan(plan *Plan, waypointIndex int) (*Plan, error) {
	if waypointIndex < 0 {
		return nil, errors.New("could not access plan with negative waypoint index")
	}
	if waypointIndex >= len(plan.Poses) {
		return nil, errors.Errorf("could not access waypoint index %d, must be less than %d", waypointIndex, len(plan.Poses))
	}
	remaining := *plan
	remaining.Start = plan.Poses[waypointIndex]
	remaining.Poses = append([]spatialmath.Pose(nil), plan.Poses[waypointIndex:]...)
	remaining.Gears = append([]segments.Gear(nil), plan.Gears[waypointIndex:]...)
	return &remaining, nil
}

// OffsetPlan returns a new Plan equivalent to the given plan expressed in a frame whose origin sits at
// offset. The normalized path does not change.
func OffsetPlan(plan *Plan, offset spatialmath.Pose) *Plan {
	frame := spatialmath.NewFrame(offset, 1)
	moved := *plan
	moved.Start = frame.ToWorld(plan.Start)
	moved.Goal = frame.ToWorld(plan.Goal)
	moved.Poses = make([]spatialmath.Pose, 0, len(plan.Poses))
	for _, pose := range plan.Poses {
		moved.Poses = append(moved.Poses, frame.ToWorld(pose))
	}
	moved.Gears = append([]segments.Gear(nil), plan.Gears...)
	moved.Path = plan.Path.Clone()
	return &moved
}
