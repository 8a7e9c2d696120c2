package segments

import (
	"strings"
)

// Path is an ordered list of elements. A nil or empty path returned by a path family means that the family
// has no solution for the requested geometry.
type Path []Element

// Length is the sum of element params, in units of the turning radius.
func (p Path) Length() float64 {
	total := 0.
	for _, e := range p {
		total += e.Param
	}
	return total
}

// WorldLength is the distance travelled along the path by a vehicle with the given turning radius. Pivots
// count as the arc their params would subtend at that radius.
func (p Path) WorldLength(turningRadius float64) float64 {
	return p.Length() * turningRadius
}

// IsFinite reports whether every element param is finite.
func (p Path) IsFinite() bool {
	for _, e := range p {
		if !e.IsFinite() {
			return false
		}
	}
	return true
}

// compactEpsilon is the largest param, in units of the turning radius, that Compact treats as zero.
const compactEpsilon = 1e-9

// Compact returns a copy of the path without zero-length elements. Params up to compactEpsilon count
// as zero, so rounding leftovers add no letters to the word and no gear changes.
func (p Path) Compact() Path {
	out := make(Path, 0, len(p))
	for _, e := range p {
		if e.Param > compactEpsilon {
			out = append(out, e)
		}
	}
	return out
}

// Clone returns a copy of the path that shares no memory with the receiver.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Equal returns whether both paths have the same elements in the same order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Word returns the path shape, e.g. "L+S+R-".
func (p Path) Word() string {
	var sb strings.Builder
	for _, e := range p {
		sb.WriteString(e.String())
	}
	return sb.String()
}

// HasReverse reports whether any element is driven in reverse gear.
func (p Path) HasReverse() bool {
	for _, e := range p {
		if e.Gear == Backward {
			return true
		}
	}
	return false
}
