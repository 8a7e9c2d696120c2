// Package motionplan plans shortest paths for car-like vehicles. A query is moved into the start's local
// frame scaled by the turning radius, every path word of the vehicle model is solved in closed form under
// its symmetries, the shortest feasible candidate is selected and then sampled back into world waypoints.
package motionplan

import (
	"go.viam.com/carplan/logging"
	"go.viam.com/carplan/motionplan/families"
	"go.viam.com/carplan/motionplan/segments"
	"go.viam.com/carplan/spatialmath"
)

// PlanOptimal returns the shortest path from start to goal for a car with the given turning radius. With
// allowReverse the 12 Reeds-Shepp words are searched, otherwise the 6 forward-only Dubins words. The
// path is in the normalized frame; an empty path means start and goal coincide.
func PlanOptimal(start, goal spatialmath.Pose, turningRadius float64, allowReverse bool) (segments.Path, error) {
	model := ModelFromReverse(allowReverse)
	fams, err := model.Families()
	if err != nil {
		return nil, err
	}
	candidates, err := candidates(fams, allowReverse, start, goal, turningRadius)
	if err != nil {
		return nil, err
	}
	path, err := SelectOptimal(candidates)
	if err != nil {
		return nil, NewPlannerFailedError(model, start, goal)
	}
	return path, nil
}

func candidates(
	fams []families.Family,
	allowReverse bool,
	start, goal spatialmath.Pose,
	turningRadius float64,
) ([]families.Candidate, error) {
	if !validPositive(turningRadius) {
		return nil, newInvalidTurningRadiusError(turningRadius)
	}
	if !start.IsFinite() {
		return nil, newNonFinitePoseError("start", start)
	}
	if !goal.IsFinite() {
		return nil, newNonFinitePoseError("goal", goal)
	}
	local := spatialmath.NewFrame(start, turningRadius).ToLocal(goal)
	return families.Expand(fams, allowReverse, local.X(), local.Y(), local.Theta()), nil
}

// Planner plans queries for one vehicle configuration. It is safe for concurrent use.
type Planner struct {
	opts   PlannerOptions
	fams   []families.Family
	logger logging.Logger
}

// NewPlanner validates the options and returns a Planner. A nil opts uses NewBasicPlannerOptions.
func NewPlanner(opts *PlannerOptions, logger logging.Logger) (*Planner, error) {
	if opts == nil {
		opts = NewBasicPlannerOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	fams, err := opts.families()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewBlankLogger("planner")
	}
	mp := &Planner{opts: *opts, fams: fams, logger: logger}
	mp.opts.Families = append([]string(nil), opts.Families...)
	return mp, nil
}

// Options returns a copy of the options the planner was built with.
func (mp *Planner) Options() PlannerOptions {
	opts := mp.opts
	opts.Families = append([]string(nil), mp.opts.Families...)
	return opts
}

// Families returns the names of the words the planner searches.
func (mp *Planner) Families() []string {
	return families.Names(mp.fams)
}

// PlanPath returns the shortest path from start to goal in the normalized frame.
func (mp *Planner) PlanPath(start, goal spatialmath.Pose) (segments.Path, error) {
	cands, err := candidates(mp.fams, mp.opts.allowReverse(), start, goal, mp.opts.TurningRadius)
	if err != nil {
		return nil, err
	}
	path, err := SelectOptimal(cands)
	if err != nil {
		mp.logger.Debugw("no feasible candidate", "start", start.String(), "goal", goal.String(), "candidates", len(cands))
		return nil, NewPlannerFailedError(mp.opts.Model, start, goal)
	}
	mp.logger.Debugw("selected path",
		"word", path.Word(),
		"length", path.WorldLength(mp.opts.TurningRadius),
		"feasible", countFeasible(cands),
		"candidates", len(cands),
	)
	return path, nil
}

// Plan returns the shortest path from start to goal along with its sampled waypoints.
func (mp *Planner) Plan(start, goal spatialmath.Pose) (*Plan, error) {
	path, err := mp.PlanPath(start, goal)
	if err != nil {
		return nil, err
	}
	poses, gears, err := SamplePath(path, start, mp.opts.TurningRadius, mp.opts.StepSize)
	if err != nil {
		return nil, err
	}
	return &Plan{
		Model:         mp.opts.Model,
		Start:         start,
		Goal:          goal,
		TurningRadius: mp.opts.TurningRadius,
		Path:          path,
		Poses:         poses,
		Gears:         gears,
	}, nil
}

// AllPaths returns every feasible candidate from start to goal, shortest first. Candidates of equal length
// keep their enumeration order.
func (mp *Planner) AllPaths(start, goal spatialmath.Pose) ([]families.Candidate, error) {
	cands, err := candidates(mp.fams, mp.opts.allowReverse(), start, goal, mp.opts.TurningRadius)
	if err != nil {
		return nil, err
	}
	return sortedFeasible(cands), nil
}

func countFeasible(cands []families.Candidate) int {
	n := 0
	for _, c := range cands {
		if c.Feasible() {
			n++
		}
	}
	return n
}
