package motionplan

import (
	"math"
	"runtime"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"go.viam.com/carplan/motionplan/families"
)

// default values for planning options.
const (
	// Minimum turning radius of the vehicle, in world units.
	defaultTurningRadius = 1.

	// When breaking down a path into waypoints, add a waypoint every this many world units of movement.
	defaultStepSize = 0.1

	defaultModel = ReedsSheppModel
)

var defaultNumThreads = max(runtime.NumCPU()/2, 1)

// Model names a vehicle kinematic model and the path words it can drive.
type Model string

// the set of supported vehicle models.
const (
	// ReedsSheppModel is a car that may reverse: 12 words under all four symmetries.
	ReedsSheppModel Model = "reeds-shepp"
	// DubinsModel is a forward-only car: 6 words.
	DubinsModel Model = "dubins"
	// DiffDriveModel is a base that turns in place: 2 pivot-straight-pivot words.
	DiffDriveModel Model = "diff-drive"
)

// Models returns every supported vehicle model.
func Models() []Model {
	return []Model{ReedsSheppModel, DubinsModel, DiffDriveModel}
}

// AllowsReverse reports whether the model can drive backwards.
func (m Model) AllowsReverse() bool {
	return m != DubinsModel
}

// Families returns the path words of the model in enumeration order.
func (m Model) Families() ([]families.Family, error) {
	switch m {
	case ReedsSheppModel:
		return families.ReedsShepp(), nil
	case DubinsModel:
		return families.Dubins(), nil
	case DiffDriveModel:
		return families.DiffDrive(), nil
	default:
		return nil, newUnknownModelError(m)
	}
}

// ModelFromReverse picks the car model for a vehicle with or without reverse gear.
func ModelFromReverse(allowReverse bool) Model {
	if allowReverse {
		return ReedsSheppModel
	}
	return DubinsModel
}

// NewBasicPlannerOptions specifies a set of basic options for the planner.
func NewBasicPlannerOptions() *PlannerOptions {
	return &PlannerOptions{
		Model:         defaultModel,
		TurningRadius: defaultTurningRadius,
		StepSize:      defaultStepSize,
		NumThreads:    defaultNumThreads,
	}
}

// PlannerOptions are a set of options to be passed to a planner which will specify how to solve a planning problem.
type PlannerOptions struct {
	// Vehicle kinematic model.
	Model Model `json:"model" yaml:"model"`

	// Minimum turning radius, in world units.
	TurningRadius float64 `json:"turning_radius" yaml:"turning_radius"`

	// Distance between sampled waypoints, in world units.
	StepSize float64 `json:"step_size" yaml:"step_size"`

	// Restricts planning to these words of the model. Empty means all of them.
	Families []string `json:"families,omitempty" yaml:"families,omitempty"`

	// Disallow reverse gear even if the model supports it.
	ForwardOnly bool `json:"forward_only" yaml:"forward_only"`

	// Number of queries planned at once by PlanBatch
	NumThreads int `json:"num_threads" yaml:"num_threads"`
}

// Validate returns every problem with the options at once.
func (opts *PlannerOptions) Validate() error {
	if opts == nil {
		return errors.New("planner options are nil")
	}
	var err error
	fams, famErr := opts.Model.Families()
	if famErr != nil {
		err = multierr.Append(err, famErr)
	} else {
		names := families.Names(fams)
		for _, name := range opts.Families {
			if !lo.Contains(names, name) {
				err = multierr.Append(err, newUnknownFamilyError(opts.Model, name))
			}
		}
	}
	if !validPositive(opts.TurningRadius) {
		err = multierr.Append(err, newInvalidTurningRadiusError(opts.TurningRadius))
	}
	if !validPositive(opts.StepSize) {
		err = multierr.Append(err, newInvalidStepSizeError(opts.StepSize))
	}
	if opts.NumThreads < 0 {
		err = multierr.Append(err, errors.Errorf("num_threads must not be negative, got %d", opts.NumThreads))
	}
	return err
}

func (opts *PlannerOptions) allowReverse() bool {
	return opts.Model.AllowsReverse() && !opts.ForwardOnly
}

// families returns the selected words of the model.
func (opts *PlannerOptions) families() ([]families.Family, error) {
	fams, err := opts.Model.Families()
	if err != nil {
		return nil, err
	}
	return families.Select(fams, opts.Families), nil
}

func validPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
