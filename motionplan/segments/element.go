// Package segments defines the atomic pieces of a car-like path: turning, straight and pivot elements
// expressed in a frame normalized by the vehicle's turning radius, and the ordered paths built from them.
package segments

import (
	"fmt"
	"math"
)

// Steering is the direction of the wheels during an element.
type Steering int8

// Steering values. Left turns are counter-clockwise with the turning center to the vehicle's left.
const (
	Right    Steering = -1
	Straight Steering = 0
	Left     Steering = 1
)

// Sign returns -1, 0 or +1.
func (s Steering) Sign() float64 {
	switch s {
	case Left:
		return 1
	case Right:
		return -1
	default:
		return 0
	}
}

// Negate mirrors the steering: Left becomes Right and vice versa.
func (s Steering) Negate() Steering {
	return -s
}

func (s Steering) String() string {
	switch s {
	case Left:
		return "L"
	case Right:
		return "R"
	case Straight:
		return "S"
	default:
		return fmt.Sprintf("Steering(%d)", int8(s))
	}
}

// Gear is the direction of travel during an element.
type Gear int8

// Gear values.
const (
	Backward Gear = -1
	Forward  Gear = 1
)

// Sign returns -1 or +1.
func (g Gear) Sign() float64 {
	if g == Backward {
		return -1
	}
	return 1
}

// Flip reverses the direction of travel.
func (g Gear) Flip() Gear {
	if g == Backward {
		return Forward
	}
	return Backward
}

func (g Gear) String() string {
	if g == Backward {
		return "-"
	}
	return "+"
}

// Element is one constant-curvature piece of a path. Param is always non-negative: for a straight it is
// the length divided by the turning radius, for a turn or a pivot it is the subtended angle in radians.
type Element struct {
	Param    float64
	Steering Steering
	Gear     Gear
	// Pivot marks a rotation in place (zero radius). Only vehicles able to spin, like differential drive
	// bases, produce pivots; Steering then gives the rotation direction.
	Pivot bool
}

// NewElement creates a canonical element. A negative param is negated and the gear flipped, which
// describes the same motion.
func NewElement(param float64, steering Steering, gear Gear) Element {
	if param < 0 {
		return Element{Param: -param, Steering: steering, Gear: gear.Flip()}
	}
	return Element{Param: param, Steering: steering, Gear: gear}
}

// NewPivot creates a canonical rotation-in-place element.
func NewPivot(angle float64, steering Steering, gear Gear) Element {
	e := NewElement(angle, steering, gear)
	e.Pivot = true
	return e
}

// DeltaTheta is the signed heading change produced by the element.
func (e Element) DeltaTheta() float64 {
	return e.Param * e.Steering.Sign() * e.Gear.Sign()
}

// IsFinite reports whether the element parameter is a finite number.
func (e Element) IsFinite() bool {
	return !math.IsNaN(e.Param) && !math.IsInf(e.Param, 0)
}

func (e Element) String() string {
	if e.Pivot {
		return "P" + e.Steering.String() + e.Gear.String()
	}
	return e.Steering.String() + e.Gear.String()
}
