package motionplan

import (
	"sort"

	"github.com/samber/lo"

	"go.viam.com/carplan/motionplan/families"
	"go.viam.com/carplan/motionplan/segments"
	"go.viam.com/carplan/utils"
)

// lengthTieEpsilon is the relative length difference below which two candidates count as equally long.
// Rounding differs between families, so closer lengths are not ordered by their last few bits.
const lengthTieEpsilon = 1e-9

// SelectOptimal returns the shortest feasible candidate, with zero-length elements removed. Lengths within
// a relative 1e-9 of each other tie, and ties go to the candidate found first. A start equal to the goal
// yields an empty path and a nil error; ErrNoPath is only returned when every candidate is infeasible.
func SelectOptimal(candidates []families.Candidate) (segments.Path, error) {
	best, ok := shortest(candidates)
	if !ok {
		return nil, ErrNoPath
	}
	return best.Path.Compact(), nil
}

func shortest(candidates []families.Candidate) (families.Candidate, bool) {
	feasible := lo.Filter(candidates, func(c families.Candidate, _ int) bool { return c.Feasible() })
	if len(feasible) == 0 {
		return families.Candidate{}, false
	}
	// MinBy keeps the earlier item unless a later one is shorter.
	return lo.MinBy(feasible, func(a, b families.Candidate) bool {
		return shorter(a.Path.Length(), b.Path.Length())
	}), true
}

// shorter reports whether length a beats length b by more than the tie tolerance.
func shorter(a, b float64) bool {
	return a < b-utils.ScaleEpsilon(lengthTieEpsilon, b)
}

// sortedFeasible returns copies of the feasible candidates ordered by length, keeping enumeration order
// between equal lengths.
func sortedFeasible(candidates []families.Candidate) []families.Candidate {
	feasible := lo.FilterMap(candidates, func(c families.Candidate, _ int) (families.Candidate, bool) {
		ok := c.Feasible()
		c.Path = c.Path.Compact()
		return c, ok
	})
	sort.SliceStable(feasible, func(i, j int) bool {
		return shorter(feasible[i].Path.Length(), feasible[j].Path.Length())
	})
	return feasible
}
