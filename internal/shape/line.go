package shape

import (
	"fmt"
	"slices"

	"seehuhn.de/go/geom/rect"

	"github.com/inamate/tikzgo/internal/geometry"
)

// Line is a straight segment, or a Bézier curve when control points are set.
type Line struct {
	base

	start, end geometry.Point
	controls   []geometry.Point

	// ToOptions is emitted as "to[...]" on straight lines.
	ToOptions string
}

// NewLine returns the segment from start to end.
func NewLine(start, end geometry.Point, opts ...Option) (*Line, error) {
	if err := geometry.SameDimension(start, end); err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}
	return &Line{base: b, start: start, end: end}, nil
}

// NewCurve returns a Bézier curve from start to end through the given
// control points.
func NewCurve(start, end geometry.Point, controls []geometry.Point, opts ...Option) (*Line, error) {
	l, err := NewLine(start, end, opts...)
	if err != nil {
		return nil, err
	}
	if err := geometry.SameDimension(append([]geometry.Point{start}, controls...)...); err != nil {
		return nil, fmt.Errorf("curve: %w", err)
	}
	l.controls = slices.Clone(controls)
	return l, nil
}

func (l *Line) Kind() Kind                        { return KindLine }
func (l *Line) Start() geometry.Point             { return l.start }
func (l *Line) End() geometry.Point               { return l.end }
func (l *Line) SetStart(p geometry.Point)         { l.start = p }
func (l *Line) SetEnd(p geometry.Point)           { l.end = p }
func (l *Line) Controls() []geometry.Point        { return slices.Clone(l.controls) }
func (l *Line) SetControls(ctrl []geometry.Point) { l.controls = slices.Clone(ctrl) }
func (l *Line) Midpoint() geometry.Point          { return l.start.Midpoint(l.end) }
func (l *Line) Pivot() geometry.Point             { return l.Midpoint() }
func (l *Line) Code() string                      { return l.code(l.Body()) }

// Body returns "(x1, y1) to[...] (x2, y2)", or the ".. controls .." form
// for curves.
func (l *Line) Body() string {
	if len(l.controls) > 0 {
		return l.start.String() + " .. controls " + joinPoints(l.controls, " and ") + " .. " + l.end.String()
	}
	return l.start.String() + " to" + Brackets(l.ToOptions) + " " + l.end.String()
}

// Slope returns the slope of the line through start and end. ok is false
// for vertical lines.
func (l *Line) Slope() (m float64, ok bool) {
	dx := l.end.X - l.start.X
	if dx == 0 {
		return 0, false
	}
	return (l.end.Y - l.start.Y) / dx, true
}

// YIntercept returns where the extended line crosses x = 0. ok is false
// for vertical lines.
func (l *Line) YIntercept() (b float64, ok bool) {
	m, ok := l.Slope()
	if !ok {
		return 0, false
	}
	return l.start.Y - m*l.start.X, true
}

// PosAtT returns start + t(end - start). t is not clamped to [0, 1].
func (l *Line) PosAtT(t float64) geometry.Point {
	return l.start.Add(l.end.Sub(l.start).Scale(t))
}

func (l *Line) Bounds() rect.Rect {
	return geometry.BoundsOf(append([]geometry.Point{l.start, l.end}, l.controls...)...)
}

func (l *Line) Clone() Shape { return l.clone() }

func (l *Line) clone() *Line {
	c := *l
	c.base = l.base.clone()
	c.controls = slices.Clone(l.controls)
	return &c
}

func (l *Line) ShiftInPlace(dx, dy float64) {
	l.start.ShiftInPlace(dx, dy)
	l.end.ShiftInPlace(dx, dy)
	for i := range l.controls {
		l.controls[i].ShiftInPlace(dx, dy)
	}
	l.shiftLabel(dx, dy)
}

func (l *Line) ScaleInPlace(s float64) {
	l.start.ScaleInPlace(s)
	l.end.ScaleInPlace(s)
	for i := range l.controls {
		l.controls[i].ScaleInPlace(s)
	}
	l.scaleLabel(s)
}

func (l *Line) RotateInPlace(a geometry.Angle, about geometry.Point) {
	l.start.RotateInPlace(a, about)
	l.end.RotateInPlace(a, about)
	for i := range l.controls {
		l.controls[i].RotateInPlace(a, about)
	}
	l.rotateLabel(a, about)
}

// Shift returns a copy moved by (dx, dy).
func (l *Line) Shift(dx, dy float64) *Line { return Shifted(l, dx, dy) }

// Scale returns a copy with every point multiplied by s.
func (l *Line) Scale(s float64) *Line { return Scaled(l, s) }

// Rotate returns a copy rotated about the midpoint.
func (l *Line) Rotate(a geometry.Angle) *Line { return Rotated(l, a, l.Pivot()) }

// RotateAbout returns a copy rotated about p.
func (l *Line) RotateAbout(a geometry.Angle, p geometry.Point) *Line { return Rotated(l, a, p) }
