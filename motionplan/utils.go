package motionplan

import (
	"math"

	"go.viam.com/carplan/motionplan/segments"
)

const (
	// minElementSteps is the least number of samples taken along any element, so that every element
	// contributes at least one interior waypoint.
	minElementSteps = 2

	// maxPathSteps caps the number of waypoints a single path is sampled into.
	maxPathSteps = 1 << 22
)

// ElementStepCount returns the number of sub-steps the sampler takes along an element. Pivots are
// measured by the arc their angle would sweep at the turning radius. A step size so small that the
// element would need more than maxPathSteps samples is an error.
func ElementStepCount(e segments.Element, turningRadius, stepSize float64) (int, error) {
	nSteps := math.Ceil(e.Param * turningRadius / stepSize)
	if nSteps > maxPathSteps {
		return 0, newTooManyStepsError(stepSize)
	}
	if !(nSteps >= minElementSteps) {
		return minElementSteps, nil
	}
	return int(nSteps), nil
}

// PathStepCount returns the number of waypoints SamplePath produces for the path, not counting the
// start pose or a corrective terminal pose.
func PathStepCount(p segments.Path, turningRadius, stepSize float64) (int, error) {
	total := 0
	for _, e := range p {
		n, err := ElementStepCount(e, turningRadius, stepSize)
		if err != nil {
			return 0, err
		}
		total += n
		if total > maxPathSteps {
			return 0, newTooManyStepsError(stepSize)
		}
	}
	return total, nil
}
