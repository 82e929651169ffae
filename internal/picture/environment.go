// Package picture assembles primitives into TikZ environments: the
// top-level tikzpicture, nested scopes and clips.
package picture

import (
	"strings"

	"seehuhn.de/go/geom/rect"

	"github.com/inamate/tikzgo/internal/geometry"
	"github.com/inamate/tikzgo/internal/shape"
)

// Drawable is anything that renders to TikZ code: primitives, raw
// commands, clips and scopes.
type Drawable interface {
	Code() string
}

// transformer is implemented by drawables with geometry.
type transformer interface {
	ShiftInPlace(dx, dy float64)
	ScaleInPlace(s float64)
	RotateInPlace(a geometry.Angle, about geometry.Point)
}

type bounder interface {
	Bounds() rect.Rect
}

// Environment is an ordered list of drawables plus an option string. It
// is embedded by Picture and Scope. Items are held by reference: mutating
// a primitive after drawing it changes the next rendering.
type Environment struct {
	options string
	items   []Drawable
}

func (e *Environment) Options() string           { return e.options }
func (e *Environment) SetOptions(options string) { e.options = options }

// AddOption appends option to the option list.
func (e *Environment) AddOption(option string) {
	if e.options == "" {
		e.options = option
		return
	}
	e.options += ", " + option
}

// Draw appends items in order. Nil items are skipped.
func (e *Environment) Draw(items ...Drawable) {
	for _, it := range items {
		if it != nil {
			e.items = append(e.items, it)
		}
	}
}

// Remove deletes the first occurrence of item, compared by identity.
func (e *Environment) Remove(item Drawable) bool {
	for i, it := range e.items {
		if it == item {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return true
		}
	}
	return false
}

// Undo removes and returns the most recently drawn item.
func (e *Environment) Undo() (Drawable, bool) {
	if len(e.items) == 0 {
		return nil, false
	}
	last := e.items[len(e.items)-1]
	e.items = e.items[:len(e.items)-1]
	return last, true
}

// Items returns a copy of the item list.
func (e *Environment) Items() []Drawable {
	return append([]Drawable(nil), e.items...)
}

func (e *Environment) Len() int { return len(e.items) }

// body renders every item on its own line with the given indent.
// Multi-line items are indented line by line.
func (e *Environment) body(indent string) string {
	var sb strings.Builder
	for _, it := range e.items {
		for _, line := range strings.Split(it.Code(), "\n") {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// ShiftInPlace moves every item with geometry.
func (e *Environment) ShiftInPlace(dx, dy float64) {
	for _, it := range e.items {
		if t, ok := it.(transformer); ok {
			t.ShiftInPlace(dx, dy)
		}
	}
}

// ScaleInPlace scales every item with geometry about the origin.
func (e *Environment) ScaleInPlace(s float64) {
	for _, it := range e.items {
		if t, ok := it.(transformer); ok {
			t.ScaleInPlace(s)
		}
	}
}

// RotateInPlace rotates every item with geometry about a common pivot.
func (e *Environment) RotateInPlace(a geometry.Angle, about geometry.Point) {
	for _, it := range e.items {
		if t, ok := it.(transformer); ok {
			t.RotateInPlace(a, about)
		}
	}
}

// Bounds returns the union of the bounding boxes of all items.
func (e *Environment) Bounds() rect.Rect {
	var b rect.Rect
	for _, it := range e.items {
		if bb, ok := it.(bounder); ok {
			b = geometry.UnionBounds(b, bb.Bounds())
		}
	}
	return b
}

func add[T Drawable](e *Environment, v T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	e.Draw(v)
	return v, nil
}

// Line draws a segment from start to end.
func (e *Environment) Line(start, end geometry.Point, opts ...shape.Option) (*shape.Line, error) {
	l, err := shape.NewLine(start, end, opts...)
	return add(e, l, err)
}

// Curve draws a Bézier curve.
func (e *Environment) Curve(start, end geometry.Point, controls []geometry.Point, opts ...shape.Option) (*shape.Line, error) {
	l, err := shape.NewCurve(start, end, controls, opts...)
	return add(e, l, err)
}

// Circle draws a circle.
func (e *Environment) Circle(center geometry.Point, radius float64, opts ...shape.Option) (*shape.Circle, error) {
	c, err := shape.NewCircle(center, radius, opts...)
	return add(e, c, err)
}

// Ellipse draws an ellipse.
func (e *Environment) Ellipse(center geometry.Point, xAxis, yAxis float64, opts ...shape.Option) (*shape.Ellipse, error) {
	el, err := shape.NewEllipse(center, xAxis, yAxis, opts...)
	return add(e, el, err)
}

// Arc draws an arc.
func (e *Environment) Arc(position geometry.Point, g shape.ArcGeometry, opts ...shape.Option) (*shape.Arc, error) {
	a, err := shape.NewArc(position, g, opts...)
	return add(e, a, err)
}

// Rectangle draws the rectangle between two opposite corners.
func (e *Environment) Rectangle(left, right geometry.Point, opts ...shape.Option) (*shape.Rectangle, error) {
	r, err := shape.NewRectangle(left, right, opts...)
	return add(e, r, err)
}

// Anchor names a reference point of a rectangle.
type Anchor int

const (
	Center Anchor = iota
	North
	East
	South
	West
	LowerLeft
)

// RectangleAt draws a width x height rectangle whose anchor lies at p.
func (e *Environment) RectangleAt(anchor Anchor, p geometry.Point, width, height float64, opts ...shape.Option) (*shape.Rectangle, error) {
	var r *shape.Rectangle
	var err error
	switch anchor {
	case North:
		r, err = shape.RectangleFromNorth(p, width, height, opts...)
	case East:
		r, err = shape.RectangleFromEast(p, width, height, opts...)
	case South:
		r, err = shape.RectangleFromSouth(p, width, height, opts...)
	case West:
		r, err = shape.RectangleFromWest(p, width, height, opts...)
	case LowerLeft:
		r, err = shape.NewRectangleSized(p, width, height, opts...)
	default:
		r, err = shape.RectangleFromCenter(p, width, height, opts...)
	}
	return add(e, r, err)
}

// Plot draws a plot through points.
func (e *Environment) Plot(points []geometry.Point, plotOptions string, opts ...shape.Option) (*shape.Plot, error) {
	p, err := shape.NewPlot(points, plotOptions, opts...)
	return add(e, p, err)
}

// RelativePlot draws a plot whose points after the first are offsets from
// their predecessor.
func (e *Environment) RelativePlot(points []geometry.Point, plotOptions string, opts ...shape.Option) (*shape.Plot, error) {
	p, err := shape.NewRelativePlot(points, plotOptions, opts...)
	return add(e, p, err)
}

// Node draws a text node. A nil position leaves placement to TikZ.
func (e *Environment) Node(position *geometry.Point, options, text string) *shape.Node {
	n := shape.NewNode(position, options, text)
	e.Draw(n)
	return n
}

// Command draws a verbatim TikZ statement.
func (e *Environment) Command(statement string) *shape.Command {
	c := shape.NewCommand(statement)
	e.Draw(c)
	return c
}

// ConnectCircleEdges draws the shortest segment between two circles.
func (e *Environment) ConnectCircleEdges(a, b *shape.Circle, opts ...shape.Option) (*shape.Line, error) {
	l, err := shape.ConnectCircleEdges(a, b, opts...)
	return add(e, l, err)
}

// Segments draws straight lines joining consecutive points.
func (e *Environment) Segments(points []geometry.Point, closed bool, opts ...shape.Option) ([]*shape.Line, error) {
	lines, err := shape.Segments(points, closed, opts...)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		e.Draw(l)
	}
	return lines, nil
}

// Scope draws and returns a new nested scope.
func (e *Environment) Scope(options string) *Scope {
	s := &Scope{}
	s.options = options
	e.Draw(s)
	return s
}

// Clip draws a clip statement for s. With preview set, the clipping path
// is also drawn with the shape's options.
func (e *Environment) Clip(s shape.Shape, preview bool) *Clip {
	c := &Clip{Shape: s, Preview: preview}
	e.Draw(c)
	return c
}
