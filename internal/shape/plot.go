package shape

import (
	"fmt"
	"slices"

	"seehuhn.de/go/geom/rect"

	"github.com/inamate/tikzgo/internal/geometry"
)

// Plot draws an ordered sequence of coordinates with the plot operation.
type Plot struct {
	base

	points []geometry.Point

	// PlotOptions is emitted as "plot[...]", e.g. "smooth, tension=.7".
	PlotOptions string
}

// NewPlot returns a plot through points.
func NewPlot(points []geometry.Point, plotOptions string, opts ...Option) (*Plot, error) {
	if err := geometry.SameDimension(points...); err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}
	return &Plot{base: b, points: slices.Clone(points), PlotOptions: plotOptions}, nil
}

// NewRelativePlot returns a plot that starts at the first point and treats
// every later point as an offset from the one before it.
func NewRelativePlot(points []geometry.Point, plotOptions string, opts ...Option) (*Plot, error) {
	if err := geometry.SameDimension(points...); err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	abs := make([]geometry.Point, len(points))
	for i, p := range points {
		if i == 0 {
			abs[i] = p
			continue
		}
		abs[i] = abs[i-1].Add(p)
	}
	return NewPlot(abs, plotOptions, opts...)
}

func (p *Plot) Kind() Kind                        { return KindPlot }
func (p *Plot) Points() []geometry.Point          { return slices.Clone(p.points) }
func (p *Plot) SetPoints(points []geometry.Point) { p.points = slices.Clone(points) }
func (p *Plot) Len() int                          { return len(p.points) }
func (p *Plot) Code() string                      { return p.code(p.Body()) }

// AddPoint appends (x, y) to the plot. On a 3D plot the new point gets
// z = 0.
func (p *Plot) AddPoint(x, y float64) {
	q := geometry.Pt(x, y)
	if len(p.points) > 0 && p.points[0].Is3D() {
		q = geometry.Pt3(x, y, 0)
	}
	p.points = append(p.points, q)
}

// Center returns the centroid of the points.
func (p *Plot) Center() geometry.Point { return geometry.Centroid(p.points...) }

// Pivot is the centroid.
func (p *Plot) Pivot() geometry.Point { return p.Center() }

// Body returns "plot[...] coordinates {(x1, y1) (x2, y2)}".
func (p *Plot) Body() string {
	return "plot" + Brackets(p.PlotOptions) + " coordinates {" + joinPoints(p.points, " ") + "}"
}

func (p *Plot) Bounds() rect.Rect { return geometry.BoundsOf(p.points...) }

func (p *Plot) Clone() Shape { return p.clone() }

func (p *Plot) clone() *Plot {
	cp := *p
	cp.base = p.base.clone()
	cp.points = slices.Clone(p.points)
	return &cp
}

func (p *Plot) ShiftInPlace(dx, dy float64) {
	for i := range p.points {
		p.points[i].ShiftInPlace(dx, dy)
	}
	p.shiftLabel(dx, dy)
}

func (p *Plot) ScaleInPlace(s float64) {
	for i := range p.points {
		p.points[i].ScaleInPlace(s)
	}
	p.scaleLabel(s)
}

func (p *Plot) RotateInPlace(a geometry.Angle, about geometry.Point) {
	for i := range p.points {
		p.points[i].RotateInPlace(a, about)
	}
	p.rotateLabel(a, about)
}

func (p *Plot) Shift(dx, dy float64) *Plot                           { return Shifted(p, dx, dy) }
func (p *Plot) Scale(s float64) *Plot                                { return Scaled(p, s) }
func (p *Plot) Rotate(a geometry.Angle) *Plot                        { return Rotated(p, a, p.Pivot()) }
func (p *Plot) RotateAbout(a geometry.Angle, q geometry.Point) *Plot { return Rotated(p, a, q) }
