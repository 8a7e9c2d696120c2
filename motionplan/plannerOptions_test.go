package motionplan

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/test"

	"go.viam.com/carplan/motionplan/families"
)

func TestBasicPlannerOptions(t *testing.T) {
	opts := NewBasicPlannerOptions()
	test.That(t, opts.Validate(), test.ShouldBeNil)
	test.That(t, opts.Model, test.ShouldEqual, ReedsSheppModel)
	test.That(t, opts.TurningRadius, test.ShouldEqual, defaultTurningRadius)
	test.That(t, opts.StepSize, test.ShouldEqual, defaultStepSize)
	test.That(t, opts.NumThreads, test.ShouldBeGreaterThan, 0)
	test.That(t, opts.allowReverse(), test.ShouldBeTrue)

	fams, err := opts.families()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(fams), test.ShouldEqual, 12)
}

func TestPlannerOptionsValidate(t *testing.T) {
	opts := &PlannerOptions{
		Model:         DubinsModel,
		TurningRadius: math.NaN(),
		StepSize:      -1,
		Families:      []string{"LSL", "L+S+L+"},
		NumThreads:    -2,
	}
	err := opts.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, len(multierr.Errors(err)), test.ShouldEqual, 4)
	test.That(t, errors.Is(err, ErrInvalidTurningRadius), test.ShouldBeTrue)
	test.That(t, errors.Is(err, ErrInvalidStepSize), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"L+S+L+"`)

	opts = NewBasicPlannerOptions()
	opts.Model = "tricycle"
	err = opts.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, len(multierr.Errors(err)), test.ShouldEqual, 1)

	var nilOpts *PlannerOptions
	test.That(t, nilOpts.Validate(), test.ShouldNotBeNil)
}

func TestModels(t *testing.T) {
	test.That(t, ModelFromReverse(true), test.ShouldEqual, ReedsSheppModel)
	test.That(t, ModelFromReverse(false), test.ShouldEqual, DubinsModel)
	test.That(t, DubinsModel.AllowsReverse(), test.ShouldBeFalse)
	test.That(t, DiffDriveModel.AllowsReverse(), test.ShouldBeTrue)

	for _, model := range Models() {
		fams, err := model.Families()
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(fams), test.ShouldBeGreaterThan, 0)
	}
	test.That(t, families.Names(families.DiffDrive()), test.ShouldResemble, []string{"P+S+P+", "P+S-P+"})

	opts := NewBasicPlannerOptions()
	opts.Model = DubinsModel
	opts.Families = []string{"RSR", "LSL"}
	fams, err := opts.families()
	test.That(t, err, test.ShouldBeNil)
	// model order wins over the listed order
	test.That(t, families.Names(fams), test.ShouldResemble, []string{"LSL", "RSR"})
}
