package motionplan

import (
	"github.com/pkg/errors"

	"go.viam.com/carplan/motionplan/segments"
	"go.viam.com/carplan/spatialmath"
	"go.viam.com/carplan/utils"
)

// closureEpsilon bounds, relative to max(1, turning radius), how far the last sample may sit from the
// exact end of the path before a corrective pose is appended.
const closureEpsilon = 1e-9

// SampleExact returns the poses at the boundaries of every element: the start followed by one pose per
// element.
func SampleExact(p segments.Path, start spatialmath.Pose, turningRadius float64) ([]spatialmath.Pose, error) {
	if err := checkSampleInputs(p, start, turningRadius); err != nil {
		return nil, err
	}
	poses := make([]spatialmath.Pose, 0, len(p)+1)
	poses = append(poses, start)
	pose := start
	for _, e := range p {
		pose = segments.Advance(pose, e, turningRadius)
		poses = append(poses, pose)
	}
	return poses, nil
}

// SamplePath turns a path into world waypoints roughly stepSize apart. gears[i] is the gear of the motion
// arriving at poses[i]; gears[0] is the gear of the first element, or Forward for an empty path.
// Every sample of an element is computed in closed form from that element's start pose, so the error does
// not grow along the path.
func SamplePath(
	p segments.Path,
	start spatialmath.Pose,
	turningRadius, stepSize float64,
) ([]spatialmath.Pose, []segments.Gear, error) {
	if err := checkSampleInputs(p, start, turningRadius); err != nil {
		return nil, nil, err
	}
	if !validPositive(stepSize) {
		return nil, nil, newInvalidStepSizeError(stepSize)
	}

	steps, err := PathStepCount(p, turningRadius, stepSize)
	if err != nil {
		return nil, nil, err
	}
	poses := make([]spatialmath.Pose, 0, steps+2)
	gears := make([]segments.Gear, 0, steps+2)

	firstGear := segments.Forward
	if len(p) > 0 {
		firstGear = p[0].Gear
	}
	poses = append(poses, start)
	gears = append(gears, firstGear)

	pose := start
	for _, e := range p {
		n, err := ElementStepCount(e, turningRadius, stepSize)
		if err != nil {
			return nil, nil, err
		}
		for i := 1; i <= n; i++ {
			poses = append(poses, segments.AdvanceFraction(pose, e, turningRadius, float64(i)/float64(n)))
			gears = append(gears, e.Gear)
		}
		pose = segments.Advance(pose, e, turningRadius)
	}

	poses, gears = closeSamples(poses, gears, segments.Endpoint(p, start, turningRadius), turningRadius)
	return poses, gears, nil
}

// closeSamples appends end, in the last gear, when the last sample drifted from it. The last element is
// sampled up to fraction 1, so this only triggers on rounding drift.
func closeSamples(
	poses []spatialmath.Pose,
	gears []segments.Gear,
	end spatialmath.Pose,
	turningRadius float64,
) ([]spatialmath.Pose, []segments.Gear) {
	last := poses[len(poses)-1]
	if spatialmath.PoseAlmostEqualEps(last, end, utils.ScaleEpsilon(closureEpsilon, turningRadius)) {
		return poses, gears
	}
	return append(poses, end), append(gears, gears[len(gears)-1])
}

func checkSampleInputs(p segments.Path, start spatialmath.Pose, turningRadius float64) error {
	if !validPositive(turningRadius) {
		return newInvalidTurningRadiusError(turningRadius)
	}
	if !start.IsFinite() {
		return newNonFinitePoseError("start", start)
	}
	if !p.IsFinite() {
		return errors.Errorf("path %s has non-finite parameters", p.Word())
	}
	return nil
}
