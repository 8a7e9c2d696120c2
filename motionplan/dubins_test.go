package motionplan

import (
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/carplan/motionplan/segments"
	"go.viam.com/carplan/spatialmath"
)

func newDubinsPlanner(t *testing.T, radius, stepSize float64) *Planner {
	t.Helper()
	opts := NewBasicPlannerOptions()
	opts.Model = DubinsModel
	opts.TurningRadius = radius
	opts.StepSize = stepSize
	mp, err := NewPlanner(opts, nil)
	test.That(t, err, test.ShouldBeNil)
	return mp
}

func TestAllPaths(t *testing.T) {
	d := newDubinsPlanner(t, 1, 1)

	// no movement
	start := spatialmath.NewZeroPose()
	paths, err := d.AllPaths(start, start)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(paths), test.ShouldBeGreaterThan, 0)
	test.That(t, paths[0].Path.Length(), test.ShouldEqual, 0.)
	test.That(t, len(paths[0].Path), test.ShouldEqual, 0)

	// test shortest path with movement
	end := spatialmath.NewPose(4, 4, math.Pi)
	epsilon := 0.00001

	paths, err = d.AllPaths(start, end)
	test.That(t, err, test.ShouldBeNil)
	shortest := paths[0]
	test.That(t, shortest.Family, test.ShouldEqual, "LSL")
	test.That(t, shortest.Path.Word(), test.ShouldEqual, "L+S+L+")
	test.That(t, shortest.Path.Length(), test.ShouldAlmostEqual, 7.61372, epsilon)
	dubinsPath := []float64{0.4636476090008061, 4.47213595499958, 2.677945044588987}
	for i, param := range dubinsPath {
		test.That(t, shortest.Path[i].Param, test.ShouldAlmostEqual, param, epsilon)
	}

	// each word is found once directly and once as the reflection of its mirror word; the two CCC
	// words cannot reach a goal this far away
	allLengths := []float64{
		7.613728608589373, 7.613728608589373,
		10.726625850327286, 10.726625850327286,
		13.86821850391708, 13.86821850391708,
		16.63588051169736, 16.63588051169736,
	}
	test.That(t, len(paths), test.ShouldEqual, len(allLengths))
	for i, val := range allLengths {
		test.That(t, paths[i].Path.Length(), test.ShouldAlmostEqual, val, epsilon)
		test.That(t, paths[i].Path.HasReverse(), test.ShouldBeFalse)
	}
}

func TestGeneratePoints(t *testing.T) {
	epsilon := 0.0001

	// straight movement points
	d := newDubinsPlanner(t, 1, 20)
	start := spatialmath.NewZeroPose()
	end := spatialmath.NewPose(1, 0, 0)
	plan, err := d.Plan(start, end)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, plan.Path.Word(), test.ShouldEqual, "S+")
	// a single element is still split in two
	test.That(t, len(plan.Poses), test.ShouldEqual, 3)
	test.That(t, spatialmath.PoseAlmostEqualEps(plan.Poses[0], start, epsilon), test.ShouldBeTrue)
	test.That(t, spatialmath.PoseAlmostEqualEps(plan.Poses[1], spatialmath.NewPose(0.5, 0, 0), epsilon), test.ShouldBeTrue)
	test.That(t, spatialmath.PoseAlmostEqualEps(plan.Poses[2], end, epsilon), test.ShouldBeTrue)

	// curved movement points
	end = spatialmath.NewPose(1, 1, math.Pi/4.0)
	plan, err = d.Plan(start, end)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, plan.Path.Word(), test.ShouldEqual, "R+S+L+")
	test.That(t, plan.Path.Length(), test.ShouldAlmostEqual, 7.6401871242067845, epsilon)
	test.That(t, len(plan.Poses), test.ShouldEqual, 7)
	test.That(t, spatialmath.PoseAlmostEqualEps(plan.Poses[0], start, epsilon), test.ShouldBeTrue)
	test.That(t, spatialmath.PoseAlmostEqualEps(plan.Poses[len(plan.Poses)-1], end, epsilon), test.ShouldBeTrue)
	for _, gear := range plan.Gears {
		test.That(t, gear, test.ShouldEqual, segments.Forward)
	}
}
