package shape

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"

	"github.com/inamate/tikzgo/internal/geometry"
)

// Circle is a full circle around a center point.
type Circle struct {
	base

	center geometry.Point
	radius float64
}

// NewCircle returns the circle of the given radius around center.
func NewCircle(center geometry.Point, radius float64, opts ...Option) (*Circle, error) {
	if radius < 0 {
		return nil, fmt.Errorf("circle radius %v: %w", radius, ErrNegativeSize)
	}
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}
	return &Circle{base: b, center: center, radius: radius}, nil
}

func (c *Circle) Kind() Kind                 { return KindCircle }
func (c *Circle) Center() geometry.Point     { return c.center }
func (c *Circle) SetCenter(p geometry.Point) { c.center = p }
func (c *Circle) Radius() float64            { return c.radius }
func (c *Circle) Pivot() geometry.Point      { return c.center }
func (c *Circle) Code() string               { return c.code(c.Body()) }

// SetRadius changes the radius. Negative radii are rejected.
func (c *Circle) SetRadius(r float64) error {
	if r < 0 {
		return fmt.Errorf("circle radius %v: %w", r, ErrNegativeSize)
	}
	c.radius = r
	return nil
}

// Body returns "(cx, cy) circle (Rcm)".
func (c *Circle) Body() string {
	return c.center.String() + " circle (" + cm(c.radius) + ")"
}

func (c *Circle) North() geometry.Point { return c.center.Shift(0, c.radius) }
func (c *Circle) South() geometry.Point { return c.center.Shift(0, -c.radius) }
func (c *Circle) East() geometry.Point  { return c.center.Shift(c.radius, 0) }
func (c *Circle) West() geometry.Point  { return c.center.Shift(-c.radius, 0) }

// PointAtArg returns the point on the circle at angle a, measured
// counterclockwise from the positive x-axis.
func (c *Circle) PointAtArg(a geometry.Angle) geometry.Point {
	t := a.Rads()
	return c.center.Shift(c.radius*math.Cos(t), c.radius*math.Sin(t))
}

func (c *Circle) Bounds() rect.Rect {
	return geometry.BoundsOf(c.center.Shift(-c.radius, -c.radius), c.center.Shift(c.radius, c.radius))
}

func (c *Circle) Clone() Shape { return c.clone() }

func (c *Circle) clone() *Circle {
	cp := *c
	cp.base = c.base.clone()
	return &cp
}

func (c *Circle) ShiftInPlace(dx, dy float64) {
	c.center.ShiftInPlace(dx, dy)
	c.shiftLabel(dx, dy)
}

func (c *Circle) ScaleInPlace(s float64) {
	c.center.ScaleInPlace(s)
	c.radius *= math.Abs(s)
	c.scaleLabel(s)
}

// RotateInPlace moves the center; a circle is symmetric about it.
func (c *Circle) RotateInPlace(a geometry.Angle, about geometry.Point) {
	c.center.RotateInPlace(a, about)
	c.rotateLabel(a, about)
}

func (c *Circle) Shift(dx, dy float64) *Circle                           { return Shifted(c, dx, dy) }
func (c *Circle) Scale(s float64) *Circle                                { return Scaled(c, s) }
func (c *Circle) Rotate(a geometry.Angle) *Circle                        { return Rotated(c, a, c.Pivot()) }
func (c *Circle) RotateAbout(a geometry.Angle, p geometry.Point) *Circle { return Rotated(c, a, p) }
