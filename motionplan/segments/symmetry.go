package segments

// Timeflip returns the path driven with every gear reversed. Applied to a family solved for the goal
// (-x, y, -phi), it yields a path to (x, y, phi).
func Timeflip(p Path) Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	for i, e := range p {
		e.Gear = e.Gear.Flip()
		out[i] = e
	}
	return out
}

// Reflect returns the mirror image of the path, exchanging left and right turns. Applied to a family
// solved for the goal (x, -y, -phi), it yields a path to (x, y, phi).
func Reflect(p Path) Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	for i, e := range p {
		e.Steering = e.Steering.Negate()
		out[i] = e
	}
	return out
}

// Symmetry identifies which transform produced a candidate from its base family.
type Symmetry uint8

// Symmetries in the order candidates are enumerated.
const (
	Identity Symmetry = iota
	TimeflipSymmetry
	ReflectSymmetry
	TimeflipReflectSymmetry
)

// Apply transforms the path with the symmetry.
func (s Symmetry) Apply(p Path) Path {
	switch s {
	case TimeflipSymmetry:
		return Timeflip(p)
	case ReflectSymmetry:
		return Reflect(p)
	case TimeflipReflectSymmetry:
		return Reflect(Timeflip(p))
	default:
		return p.Clone()
	}
}

// Goal returns the goal a base family must be solved for so that Apply on its result reaches (x, y, phi).
func (s Symmetry) Goal(x, y, phi float64) (float64, float64, float64) {
	switch s {
	case TimeflipSymmetry:
		return -x, y, -phi
	case ReflectSymmetry:
		return x, -y, -phi
	case TimeflipReflectSymmetry:
		return -x, -y, phi
	default:
		return x, y, phi
	}
}

// PreservesGear reports whether the symmetry leaves every gear untouched, which is required when the
// vehicle cannot reverse.
func (s Symmetry) PreservesGear() bool {
	return s == Identity || s == ReflectSymmetry
}

func (s Symmetry) String() string {
	switch s {
	case Identity:
		return "identity"
	case TimeflipSymmetry:
		return "timeflip"
	case ReflectSymmetry:
		return "reflect"
	case TimeflipReflectSymmetry:
		return "timeflip+reflect"
	default:
		return "unknown"
	}
}
