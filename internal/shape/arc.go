package shape

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"

	"github.com/inamate/tikzgo/internal/geometry"
)

// ArcKind tells circular arcs from elliptical ones.
type ArcKind int

const (
	CircularArc ArcKind = iota
	EllipticalArc
)

// ArcGeometry describes an arc. Exactly one radius form must be set:
// Radius for a circular arc, or both XRadius and YRadius for an
// elliptical one. Zero means unset.
type ArcGeometry struct {
	Start, End       geometry.Angle
	Radius           float64
	XRadius, YRadius float64

	// FromCenter makes the arc position its geometric center. By default
	// the position is where drawing starts.
	FromCenter bool
}

func (g ArcGeometry) validate() (ArcKind, error) {
	switch {
	case g.Radius < 0 || g.XRadius < 0 || g.YRadius < 0:
		return 0, fmt.Errorf("%w: radii must be positive", ErrArcRadius)
	case g.Radius > 0 && (g.XRadius != 0 || g.YRadius != 0):
		return 0, fmt.Errorf("%w: both radius and x/y radius given", ErrArcRadius)
	case g.Radius > 0:
		return CircularArc, nil
	case g.XRadius > 0 && g.YRadius > 0:
		return EllipticalArc, nil
	case g.XRadius > 0 || g.YRadius > 0:
		return 0, fmt.Errorf("%w: x radius and y radius must be given together", ErrArcRadius)
	default:
		return 0, fmt.Errorf("%w: no radius given", ErrArcRadius)
	}
}

// Arc is a portion of a circle or an axis-aligned ellipse between two
// angles measured from the positive x-axis.
type Arc struct {
	base

	position geometry.Point
	geom     ArcGeometry
	kind     ArcKind
}

// NewArc returns the arc described by g at position.
func NewArc(position geometry.Point, g ArcGeometry, opts ...Option) (*Arc, error) {
	kind, err := g.validate()
	if err != nil {
		return nil, err
	}
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}
	return &Arc{base: b, position: position, geom: g, kind: kind}, nil
}

func (a *Arc) Kind() Kind                   { return KindArc }
func (a *Arc) ArcKind() ArcKind             { return a.kind }
func (a *Arc) Geometry() ArcGeometry        { return a.geom }
func (a *Arc) Position() geometry.Point     { return a.position }
func (a *Arc) SetPosition(p geometry.Point) { a.position = p }
func (a *Arc) Code() string                 { return a.code(a.Body()) }

// SetGeometry replaces the angles and radii after validating them.
func (a *Arc) SetGeometry(g ArcGeometry) error {
	kind, err := g.validate()
	if err != nil {
		return err
	}
	a.geom, a.kind = g, kind
	return nil
}

// Pivot is the draw start.
func (a *Arc) Pivot() geometry.Point { return a.DrawStart() }

// startOffset is the vector from the arc's center to its start point.
func (a *Arc) startOffset() (dx, dy float64) {
	if a.kind == CircularArc {
		t := a.geom.Start.Rads()
		return a.geom.Radius * math.Cos(t), a.geom.Radius * math.Sin(t)
	}
	// Polar radius of the ellipse at the start angle.
	xr, yr := a.geom.XRadius, a.geom.YRadius
	t := a.geom.Start.Rads()
	cos, sin := math.Cos(t), math.Sin(t)
	r := xr * yr / math.Hypot(yr*cos, xr*sin)
	return r * cos, r * sin
}

// DrawStart returns the point where the arc path begins.
func (a *Arc) DrawStart() geometry.Point {
	if !a.geom.FromCenter {
		return a.position
	}
	dx, dy := a.startOffset()
	return a.position.Shift(dx, dy)
}

// Center returns the center of the circle or ellipse the arc lies on.
func (a *Arc) Center() geometry.Point {
	if a.geom.FromCenter {
		return a.position
	}
	dx, dy := a.startOffset()
	return a.position.Shift(-dx, -dy)
}

// NativeAngles returns the start and end angles, in degrees, as the arc
// path expects them. For elliptical arcs these are the ellipse parameter
// angles rather than the polar angles.
func (a *Arc) NativeAngles() (start, end float64) {
	if a.kind == CircularArc {
		return a.geom.Start.Degrees(), a.geom.End.Degrees()
	}
	return EllipseParameter(a.geom.Start, a.geom.XRadius, a.geom.YRadius),
		EllipseParameter(a.geom.End, a.geom.XRadius, a.geom.YRadius)
}

// Body returns "(sx, sy) arc [start angle = A, end angle = B, radius = Rcm]",
// or the "x radius = ..., y radius = ..." form for elliptical arcs.
func (a *Arc) Body() string {
	start, end := a.NativeAngles()
	s := a.DrawStart().String() + " arc [start angle = " + geometry.FormatFloat(start) +
		", end angle = " + geometry.FormatFloat(end)
	if a.kind == CircularArc {
		return s + ", radius = " + cm(a.geom.Radius) + "]"
	}
	return s + ", x radius = " + cm(a.geom.XRadius) + ", y radius = " + cm(a.geom.YRadius) + "]"
}

// Bounds is the box of the full circle or ellipse the arc lies on.
func (a *Arc) Bounds() rect.Rect {
	rx, ry := a.geom.Radius, a.geom.Radius
	if a.kind == EllipticalArc {
		rx, ry = a.geom.XRadius, a.geom.YRadius
	}
	c := a.Center()
	return geometry.BoundsOf(c.Shift(-rx, -ry), c.Shift(rx, ry))
}

func (a *Arc) Clone() Shape { return a.clone() }

func (a *Arc) clone() *Arc {
	cp := *a
	cp.base = a.base.clone()
	return &cp
}

func (a *Arc) ShiftInPlace(dx, dy float64) {
	a.position.ShiftInPlace(dx, dy)
	a.shiftLabel(dx, dy)
}

// ScaleInPlace scales the position and the radii. A negative factor is a
// point reflection, which turns the arc half way around.
func (a *Arc) ScaleInPlace(s float64) {
	a.position.ScaleInPlace(s)
	f := math.Abs(s)
	a.geom.Radius *= f
	a.geom.XRadius *= f
	a.geom.YRadius *= f
	if s < 0 {
		a.geom.Start = a.geom.Start.Add(geometry.Deg(180))
		a.geom.End = a.geom.End.Add(geometry.Deg(180))
	}
	a.scaleLabel(s)
}

// RotateInPlace rotates the position around about. Circular arcs turn
// with it; elliptical arcs keep their axis-aligned orientation.
func (a *Arc) RotateInPlace(r geometry.Angle, about geometry.Point) {
	a.position.RotateInPlace(r, about)
	if a.kind == CircularArc {
		a.geom.Start = a.geom.Start.Add(r)
		a.geom.End = a.geom.End.Add(r)
	}
	a.rotateLabel(r, about)
}

func (a *Arc) Shift(dx, dy float64) *Arc                           { return Shifted(a, dx, dy) }
func (a *Arc) Scale(s float64) *Arc                                { return Scaled(a, s) }
func (a *Arc) Rotate(r geometry.Angle) *Arc                        { return Rotated(a, r, a.Pivot()) }
func (a *Arc) RotateAbout(r geometry.Angle, p geometry.Point) *Arc { return Rotated(a, r, p) }

// EllipseParameter converts the polar angle a of a point on an ellipse
// with semi-axes xr, yr into the parameter angle t, in degrees, such that
// the point is (xr cos t, yr sin t). Multiples of 90 degrees map to
// themselves exactly and whole turns outside [0, 360) are preserved.
func EllipseParameter(a geometry.Angle, xr, yr float64) float64 {
	deg := a.Degrees()
	turns := math.Floor(deg / 360)
	r := deg - 360*turns
	if math.Mod(r, 90) == 0 {
		return deg
	}

	t := math.Atan2(xr*math.Tan(r*math.Pi/180), yr) * 180 / math.Pi
	switch geometry.Deg(r).Quadrant() {
	case 1, 2:
		t += 180
	case 3:
		t += 360
	}
	return t + 360*turns
}
