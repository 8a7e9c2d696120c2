package motionplan

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/carplan/motionplan/segments"
	"go.viam.com/carplan/spatialmath"
)

func TestSampleExact(t *testing.T) {
	path := segments.Path{
		segments.NewElement(1, segments.Straight, segments.Forward),
		segments.NewElement(math.Pi/2, segments.Left, segments.Forward),
		segments.NewElement(-1, segments.Straight, segments.Forward),
	}
	poses, err := SampleExact(path, spatialmath.NewZeroPose(), 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(poses), test.ShouldEqual, 4)

	expected := []spatialmath.Pose{
		spatialmath.NewZeroPose(),
		spatialmath.NewPose(2, 0, 0),
		spatialmath.NewPose(4, 2, math.Pi/2),
		// the negative straight was canonicalized into a backward one
		spatialmath.NewPose(4, 0, math.Pi/2),
	}
	for i, pose := range expected {
		test.That(t, spatialmath.PoseAlmostEqual(poses[i], pose), test.ShouldBeTrue)
	}

	backward := segments.Path{segments.NewElement(math.Pi/2, segments.Left, segments.Backward)}
	poses, err = SampleExact(backward, spatialmath.NewZeroPose(), 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatialmath.PoseAlmostEqual(poses[1], spatialmath.NewPose(-1, 1, -math.Pi/2)), test.ShouldBeTrue)
}

func TestSamplePathEmpty(t *testing.T) {
	start := spatialmath.NewPose(1, 2, 3)
	poses, gears, err := SamplePath(nil, start, 1, 0.1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, poses, test.ShouldResemble, []spatialmath.Pose{start})
	test.That(t, gears, test.ShouldResemble, []segments.Gear{segments.Forward})
}

func TestSamplePathGears(t *testing.T) {
	path := segments.Path{
		segments.NewElement(1, segments.Left, segments.Backward),
		segments.NewElement(0.5, segments.Straight, segments.Forward),
	}
	poses, gears, err := SamplePath(path, spatialmath.NewZeroPose(), 1, 0.3)
	test.That(t, err, test.ShouldBeNil)

	// ceil(1/0.3) samples along the arc and the 2 sample minimum along the straight
	steps, err := PathStepCount(path, 1, 0.3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, steps, test.ShouldEqual, 6)
	test.That(t, len(poses), test.ShouldEqual, 7)
	test.That(t, len(gears), test.ShouldEqual, len(poses))
	test.That(t, gears, test.ShouldResemble, []segments.Gear{
		segments.Backward,
		segments.Backward, segments.Backward, segments.Backward, segments.Backward,
		segments.Forward, segments.Forward,
	})

	plan := &Plan{Gears: gears}
	test.That(t, plan.Cusps(), test.ShouldEqual, 1)
}

func TestSamplePathPivot(t *testing.T) {
	path := segments.Path{segments.NewPivot(math.Pi, segments.Right, segments.Forward)}
	start := spatialmath.NewPose(3, 4, 0)
	poses, gears, err := SamplePath(path, start, 0.5, 0.2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(poses), test.ShouldEqual, len(gears))
	for _, pose := range poses {
		test.That(t, pose.Point(), test.ShouldResemble, start.Point())
	}
	test.That(t, poses[1].Theta(), test.ShouldBeLessThan, 0.)
	test.That(t, math.Abs(poses[len(poses)-1].Theta()), test.ShouldAlmostEqual, math.Pi, 1e-9)
}

// Consecutive samples are never further apart than the step, and the last sample is the exact end.
func TestSamplePathFidelity(t *testing.T) {
	//nolint:gosec
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		start := randomPose(rng, 10)
		goal := randomPose(rng, 10)
		radius := 0.5 + rng.Float64()*3
		step := 0.05 + rng.Float64()

		path, err := PlanOptimal(start, goal, radius, i%2 == 0)
		test.That(t, err, test.ShouldBeNil)
		poses, gears, err := SamplePath(path, start, radius, step)
		test.That(t, err, test.ShouldBeNil)

		test.That(t, len(poses), test.ShouldEqual, len(gears))
		steps, err := PathStepCount(path, radius, step)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(poses), test.ShouldEqual, steps+1)
		test.That(t, poses[0], test.ShouldResemble, start)
		test.That(t, gears[0], test.ShouldEqual, path[0].Gear)
		for j := 1; j < len(poses); j++ {
			gap := poses[j].Point().Sub(poses[j-1].Point()).Norm()
			test.That(t, gap, test.ShouldBeLessThanOrEqualTo, step*(1+1e-9))
		}

		end := segments.Endpoint(path, start, radius)
		last := poses[len(poses)-1]
		test.That(t, spatialmath.PoseAlmostEqualEps(last, end, 1e-6*math.Max(1, radius)), test.ShouldBeTrue)
		test.That(t, spatialmath.PoseAlmostEqualEps(last, goal, 1e-5), test.ShouldBeTrue)

		exact, err := SampleExact(path, start, radius)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(exact), test.ShouldEqual, len(path)+1)
		test.That(t, spatialmath.PoseAlmostEqual(exact[len(exact)-1], last), test.ShouldBeTrue)
	}
}

func TestSamplePathPreconditions(t *testing.T) {
	path := segments.Path{segments.NewElement(1, segments.Straight, segments.Forward)}
	start := spatialmath.NewZeroPose()

	for _, step := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, _, err := SamplePath(path, start, 1, step)
		test.That(t, errors.Is(err, ErrInvalidStepSize), test.ShouldBeTrue)
	}
	for _, radius := range []float64{0, -2, math.NaN()} {
		_, _, err := SamplePath(path, start, radius, 0.1)
		test.That(t, errors.Is(err, ErrInvalidTurningRadius), test.ShouldBeTrue)
		_, err = SampleExact(path, start, radius)
		test.That(t, errors.Is(err, ErrInvalidTurningRadius), test.ShouldBeTrue)
	}

	_, _, err := SamplePath(path, spatialmath.NewPose(math.Inf(1), 0, 0), 1, 0.1)
	test.That(t, errors.Is(err, ErrNonFinitePose), test.ShouldBeTrue)

	bad := segments.Path{{Param: math.NaN(), Steering: segments.Left, Gear: segments.Forward}}
	_, _, err = SamplePath(bad, start, 1, 0.1)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestElementStepCount(t *testing.T) {
	straight := segments.NewElement(1, segments.Straight, segments.Forward)
	for _, tc := range []struct {
		elem          segments.Element
		radius, step  float64
		expectedSteps int
	}{
		{straight, 1, 0.3, 4},
		{straight, 3, 0.3, 10},
		{straight, 1, 5, 2},
		{segments.NewElement(0, segments.Left, segments.Forward), 1, 0.1, 2},
	} {
		n, err := ElementStepCount(tc.elem, tc.radius, tc.step)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, n, test.ShouldEqual, tc.expectedSteps)
	}

	for _, step := range []float64{1e-300, 1e-7} {
		_, err := ElementStepCount(straight, 1, step)
		test.That(t, errors.Is(err, ErrInvalidStepSize), test.ShouldBeTrue)
	}
}

func TestPathStepCountLimit(t *testing.T) {
	// each element fits on its own but the path does not
	step := 4. / maxPathSteps
	path := segments.Path{
		segments.NewElement(3, segments.Straight, segments.Forward),
		segments.NewElement(3, segments.Straight, segments.Forward),
	}
	n, err := ElementStepCount(path[0], 1, step)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldBeLessThanOrEqualTo, maxPathSteps)
	_, err = PathStepCount(path, 1, step)
	test.That(t, errors.Is(err, ErrInvalidStepSize), test.ShouldBeTrue)

	poses, gears, err := SamplePath(path, spatialmath.NewZeroPose(), 1, 1e-300)
	test.That(t, errors.Is(err, ErrInvalidStepSize), test.ShouldBeTrue)
	test.That(t, poses, test.ShouldBeNil)
	test.That(t, gears, test.ShouldBeNil)
}

func TestCloseSamples(t *testing.T) {
	end := spatialmath.NewPose(2, 1, 0.5)
	start := spatialmath.NewZeroPose()
	gears := []segments.Gear{segments.Backward, segments.Backward}

	// a last sample on the end is kept as is
	poses, outGears := closeSamples([]spatialmath.Pose{start, end}, gears, end, 10)
	test.That(t, len(poses), test.ShouldEqual, 2)
	test.That(t, len(outGears), test.ShouldEqual, 2)

	// drift below the radius scaled tolerance is ignored
	poses, _ = closeSamples([]spatialmath.Pose{start, spatialmath.NewPose(2+5e-9, 1, 0.5)}, gears, end, 10)
	test.That(t, len(poses), test.ShouldEqual, 2)

	drifted := spatialmath.NewPose(2+1e-6, 1, 0.5)
	poses, outGears = closeSamples([]spatialmath.Pose{start, drifted}, gears, end, 10)
	test.That(t, len(poses), test.ShouldEqual, 3)
	test.That(t, poses[2], test.ShouldResemble, end)
	test.That(t, outGears, test.ShouldResemble, []segments.Gear{segments.Backward, segments.Backward, segments.Backward})
}
