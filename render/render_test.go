package render

import (
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"go.viam.com/carplan/motionplan"
	"go.viam.com/carplan/spatialmath"
)

func testPlan(t *testing.T, goal spatialmath.Pose) *motionplan.Plan {
	t.Helper()
	opts := motionplan.NewBasicPlannerOptions()
	opts.TurningRadius = 2
	mp, err := motionplan.NewPlanner(opts, nil)
	test.That(t, err, test.ShouldBeNil)
	plan, err := mp.Plan(spatialmath.NewZeroPose(), goal)
	test.That(t, err, test.ShouldBeNil)
	return plan
}

func TestDrawPlan(t *testing.T) {
	// backing straight up draws in the backward color
	plan := testPlan(t, spatialmath.NewPose(-6, 0, 0))
	test.That(t, plan.Path.Word(), test.ShouldEqual, "S-")

	opts := DefaultOptions()
	opts.ShowLabel = false
	img, err := DrawPlan(plan, opts)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, img.Bounds().Dx(), test.ShouldEqual, opts.Width)
	test.That(t, img.Bounds().Dy(), test.ShouldEqual, opts.Height)

	// the straight runs through the middle row of the image
	midway := color.RGBAModel.Convert(img.At(opts.Width/2, opts.Height/2)).(color.RGBA)
	test.That(t, midway.R, test.ShouldBeGreaterThan, midway.G)

	corner := color.RGBAModel.Convert(img.At(1, opts.Height-2)).(color.RGBA)
	test.That(t, corner, test.ShouldResemble, color.RGBA{255, 255, 255, 255})
}

func TestDrawPlanOptions(t *testing.T) {
	plan := testPlan(t, spatialmath.NewPose(3, 4, math.Pi/2))

	opts := DefaultOptions()
	opts.ShowCircles = true
	img, err := DrawPlan(plan, opts)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, img, test.ShouldNotBeNil)

	// a plan that does not move still draws
	still := testPlan(t, spatialmath.NewZeroPose())
	test.That(t, len(still.Path), test.ShouldEqual, 0)
	_, err = DrawPlan(still, opts)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, labelFor(still), test.ShouldEqual, "(at goal)  length 0.000")

	_, err = DrawPlan(nil, opts)
	test.That(t, err, test.ShouldNotBeNil)

	opts.Margin = float64(opts.Height)
	_, err = DrawPlan(plan, opts)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, Options{Width: 0, Height: 10}.Validate(), test.ShouldNotBeNil)
}

func TestSavePNG(t *testing.T) {
	plan := testPlan(t, spatialmath.NewPose(5, 1, 0))
	img, err := DrawPlan(plan, DefaultOptions())
	test.That(t, err, test.ShouldBeNil)

	path := filepath.Join(t.TempDir(), "plan.png")
	test.That(t, SavePNG(path, img), test.ShouldBeNil)
	test.That(t, SavePNG(filepath.Join(t.TempDir(), "missing", "plan.png"), img), test.ShouldNotBeNil)
}

func TestHistogram(t *testing.T) {
	h := Histogram{Title: "lengths", XLabel: "length", Values: []float64{1, 2, 2, 3, 5, 8}}
	test.That(t, h.Save(filepath.Join(t.TempDir(), "hist.png")), test.ShouldBeNil)

	test.That(t, Histogram{}.Save(filepath.Join(t.TempDir(), "empty.png")), test.ShouldNotBeNil)
}
