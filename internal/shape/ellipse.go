package shape

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"

	"github.com/inamate/tikzgo/internal/geometry"
)

// Ellipse is an axis-aligned ellipse with semi-axes xAxis and yAxis.
type Ellipse struct {
	base

	center       geometry.Point
	xAxis, yAxis float64
}

// NewEllipse returns the ellipse around center with the given semi-axes.
func NewEllipse(center geometry.Point, xAxis, yAxis float64, opts ...Option) (*Ellipse, error) {
	if xAxis < 0 || yAxis < 0 {
		return nil, fmt.Errorf("ellipse axes %v, %v: %w", xAxis, yAxis, ErrNegativeSize)
	}
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}
	return &Ellipse{base: b, center: center, xAxis: xAxis, yAxis: yAxis}, nil
}

func (e *Ellipse) Kind() Kind                 { return KindEllipse }
func (e *Ellipse) Center() geometry.Point     { return e.center }
func (e *Ellipse) SetCenter(p geometry.Point) { e.center = p }
func (e *Ellipse) XAxis() float64             { return e.xAxis }
func (e *Ellipse) YAxis() float64             { return e.yAxis }
func (e *Ellipse) Pivot() geometry.Point      { return e.center }
func (e *Ellipse) Code() string               { return e.code(e.Body()) }

// SetAxes changes both semi-axes.
func (e *Ellipse) SetAxes(xAxis, yAxis float64) error {
	if xAxis < 0 || yAxis < 0 {
		return fmt.Errorf("ellipse axes %v, %v: %w", xAxis, yAxis, ErrNegativeSize)
	}
	e.xAxis, e.yAxis = xAxis, yAxis
	return nil
}

// Body returns "(cx, cy) ellipse (Acm and Bcm)".
func (e *Ellipse) Body() string {
	return e.center.String() + " ellipse (" + cm(e.xAxis) + " and " + cm(e.yAxis) + ")"
}

func (e *Ellipse) North() geometry.Point { return e.center.Shift(0, e.yAxis) }
func (e *Ellipse) South() geometry.Point { return e.center.Shift(0, -e.yAxis) }
func (e *Ellipse) East() geometry.Point  { return e.center.Shift(e.xAxis, 0) }
func (e *Ellipse) West() geometry.Point  { return e.center.Shift(-e.xAxis, 0) }

func (e *Ellipse) Bounds() rect.Rect {
	return geometry.BoundsOf(e.center.Shift(-e.xAxis, -e.yAxis), e.center.Shift(e.xAxis, e.yAxis))
}

func (e *Ellipse) Clone() Shape { return e.clone() }

func (e *Ellipse) clone() *Ellipse {
	cp := *e
	cp.base = e.base.clone()
	return &cp
}

func (e *Ellipse) ShiftInPlace(dx, dy float64) {
	e.center.ShiftInPlace(dx, dy)
	e.shiftLabel(dx, dy)
}

func (e *Ellipse) ScaleInPlace(s float64) {
	e.center.ScaleInPlace(s)
	e.xAxis *= math.Abs(s)
	e.yAxis *= math.Abs(s)
	e.scaleLabel(s)
}

// RotateInPlace moves the center only. The axes stay aligned with the
// coordinate axes since the ellipse path has no rotation parameter.
func (e *Ellipse) RotateInPlace(a geometry.Angle, about geometry.Point) {
	e.center.RotateInPlace(a, about)
	e.rotateLabel(a, about)
}

func (e *Ellipse) Shift(dx, dy float64) *Ellipse                           { return Shifted(e, dx, dy) }
func (e *Ellipse) Scale(s float64) *Ellipse                                { return Scaled(e, s) }
func (e *Ellipse) Rotate(a geometry.Angle) *Ellipse                        { return Rotated(e, a, e.Pivot()) }
func (e *Ellipse) RotateAbout(a geometry.Angle, p geometry.Point) *Ellipse { return Rotated(e, a, p) }
