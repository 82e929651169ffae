package geometry

import "math"

// Angle is a magnitude tagged with its unit. Values keep the unit they were
// created in, so an angle given in degrees serializes without a round trip
// through radians.
type Angle struct {
	Value   float64
	Radians bool
}

// Deg returns an angle of v degrees.
func Deg(v float64) Angle { return Angle{Value: v} }

// Rad returns an angle of v radians.
func Rad(v float64) Angle { return Angle{Value: v, Radians: true} }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	if a.Radians {
		return a.Value * 180 / math.Pi
	}
	return a.Value
}

// Rads returns the angle in radians.
func (a Angle) Rads() float64 {
	if a.Radians {
		return a.Value
	}
	return a.Value * math.Pi / 180
}

// Add returns a+b expressed in a's unit.
func (a Angle) Add(b Angle) Angle {
	if a.Radians {
		return Rad(a.Value + b.Rads())
	}
	return Deg(a.Value + b.Degrees())
}

// Quadrant classifies the angle into 0 for [0, 90], 1 for (90, 180],
// 2 for (180, 270] and 3 for everything else, measured in the angle's
// own unit.
func (a Angle) Quadrant() int {
	q := a.Value
	quarter := 90.0
	if a.Radians {
		quarter = math.Pi / 2
	}
	switch {
	case q >= 0 && q <= quarter:
		return 0
	case q > quarter && q <= 2*quarter:
		return 1
	case q > 2*quarter && q <= 3*quarter:
		return 2
	default:
		return 3
	}
}

func (a Angle) String() string {
	if a.Radians {
		return FormatFloat(a.Value) + "rad"
	}
	return FormatFloat(a.Value)
}
