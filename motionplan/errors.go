package motionplan

import (
	"github.com/pkg/errors"

	"go.viam.com/carplan/spatialmath"
)

var (
	// ErrNoPath is returned when no candidate word connects the start to the goal.
	ErrNoPath = errors.New("no feasible path between start and goal")

	// ErrInvalidTurningRadius is returned for a turning radius that is not a positive finite number.
	ErrInvalidTurningRadius = errors.New("turning radius must be positive and finite")

	// ErrInvalidStepSize is returned for a sampling step that is not a positive finite number.
	ErrInvalidStepSize = errors.New("step size must be positive and finite")

	// ErrNonFinitePose is returned when a start or goal pose holds NaN or Inf.
	ErrNonFinitePose = errors.New("pose is not finite")
)

// NewPlannerFailedError wraps ErrNoPath with the query that failed.
func NewPlannerFailedError(model Model, start, goal spatialmath.Pose) error {
	return errors.Wrapf(ErrNoPath, "%s planner failed to find path from %v to %v", model, start, goal)
}

func newNonFinitePoseError(which string, pose spatialmath.Pose) error {
	return errors.Wrapf(ErrNonFinitePose, "%s %v", which, pose)
}

func newInvalidTurningRadiusError(turningRadius float64) error {
	return errors.Wrapf(ErrInvalidTurningRadius, "got %v", turningRadius)
}

func newInvalidStepSizeError(stepSize float64) error {
	return errors.Wrapf(ErrInvalidStepSize, "got %v", stepSize)
}

func newTooManyStepsError(stepSize float64) error {
	return errors.Wrapf(ErrInvalidStepSize, "step %v needs more than %d waypoints", stepSize, maxPathSteps)
}

func newUnknownModelError(model Model) error {
	return errors.Errorf("unknown vehicle model %q, expected one of %v", model, Models())
}

func newUnknownFamilyError(model Model, name string) error {
	return errors.Errorf("%s has no path family named %q", model, name)
}
