// Package families holds the closed-form path words of car-like vehicles and the symmetry expansion that
// turns them into a complete candidate set for a planning query.
//
// All generators work in the normalized frame: the start pose is the origin facing +X and the turning
// radius is 1. A generator returns nil when its word cannot connect the start to the goal.
package families

import (
	"math"

	"github.com/samber/lo"

	"go.viam.com/carplan/motionplan/segments"
	"go.viam.com/carplan/spatialmath"
)

// reachEpsilon is how far, in normalized units, a candidate's end may drift from the goal.
const reachEpsilon = 1e-6

// Generator solves one word for a goal given in the normalized start frame.
type Generator func(x, y, phi float64) segments.Path

// Family is a named closed-form path word.
type Family struct {
	Name     string
	Generate Generator
}

// Candidate is one entry of the candidate set: the path a family produced under a given symmetry. Path is
// nil when that combination has no solution.
type Candidate struct {
	Family   string
	Symmetry segments.Symmetry
	Path     segments.Path
}

// Feasible reports whether the candidate holds a path.
func (c Candidate) Feasible() bool {
	return len(c.Path) > 0
}

// Select returns the families whose names are listed, keeping the order of fams. An empty list keeps all.
func Select(fams []Family, names []string) []Family {
	if len(names) == 0 {
		return fams
	}
	return lo.Filter(fams, func(f Family, _ int) bool {
		return lo.Contains(names, f.Name)
	})
}

// Names returns the names of the families.
func Names(fams []Family) []string {
	return lo.Map(fams, func(f Family, _ int) string { return f.Name })
}

// Symmetries returns the transforms usable by a vehicle with or without reverse gear.
func Symmetries(allowReverse bool) []segments.Symmetry {
	all := []segments.Symmetry{
		segments.Identity,
		segments.TimeflipSymmetry,
		segments.ReflectSymmetry,
		segments.TimeflipReflectSymmetry,
	}
	if allowReverse {
		return all
	}
	return lo.Filter(all, func(s segments.Symmetry, _ int) bool { return s.PreservesGear() })
}

// Expand builds the candidate set for the normalized goal (x, y, phi): every family under every usable
// symmetry, in family order then symmetry order. Candidates needing reverse gear when it is not allowed,
// holding non-finite params, or failing to end at the goal are kept with a nil Path.
func Expand(fams []Family, allowReverse bool, x, y, phi float64) []Candidate {
	syms := Symmetries(allowReverse)
	goal := spatialmath.NewPose(x, y, phi)
	candidates := make([]Candidate, 0, len(fams)*len(syms))
	for _, f := range fams {
		for _, s := range syms {
			p := s.Apply(f.Generate(s.Goal(x, y, phi)))
			if !usable(p, allowReverse, goal) {
				p = nil
			}
			candidates = append(candidates, Candidate{Family: f.Name, Symmetry: s, Path: p})
		}
	}
	return candidates
}

func usable(p segments.Path, allowReverse bool, goal spatialmath.Pose) bool {
	if len(p) == 0 || !p.IsFinite() {
		return false
	}
	if !allowReverse && p.HasReverse() {
		return false
	}
	end := segments.Endpoint(p, spatialmath.NewZeroPose(), 1)
	return spatialmath.PoseAlmostEqualEps(end, goal, reachEpsilon*math.Max(1, goal.Point().Norm()))
}
