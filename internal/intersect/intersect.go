// Package intersect computes intersection points between lines and
// circles. Degenerate configurations (parallel lines, separated or
// concentric circles) produce empty results, never errors.
package intersect

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/inamate/tikzgo/internal/geometry"
	"github.com/inamate/tikzgo/internal/shape"
)

// ErrUnsupported is returned by Shapes for pairs of kinds without an
// intersection routine.
var ErrUnsupported = errors.New("unsupported intersection")

// Tolerance decides when two circles count as tangent.
const Tolerance = 1e-9

// Shapes intersects two primitives. Lines are treated as infinite.
func Shapes(a, b shape.Shape) ([]geometry.Point, error) {
	switch a := a.(type) {
	case *shape.Line:
		switch b := b.(type) {
		case *shape.Line:
			p, ok := LineLine(a, b)
			if !ok {
				return nil, nil
			}
			return []geometry.Point{p}, nil
		case *shape.Circle:
			return LineCircle(a, b), nil
		}
	case *shape.Circle:
		switch b := b.(type) {
		case *shape.Line:
			return LineCircle(b, a), nil
		case *shape.Circle:
			return CircleCircle(a.Center(), a.Radius(), b.Center(), b.Radius()), nil
		}
	}
	return nil, fmt.Errorf("%w: %s and %s", ErrUnsupported, a.Kind(), b.Kind())
}

// CircleCircle returns the points where the circles (c1, r1) and (c2, r2)
// meet: none when they are apart, nested or concentric, one when they are
// tangent, two otherwise.
func CircleCircle(c1 geometry.Point, r1 float64, c2 geometry.Point, r2 float64) []geometry.Point {
	p1, p2 := c1.Vec(), c2.Vec()
	d := p2.Sub(p1)
	dist := d.Length()
	if dist == 0 {
		return nil
	}

	tangent := math.Abs(dist-(r1+r2)) <= Tolerance || math.Abs(dist-math.Abs(r1-r2)) <= Tolerance
	if !tangent && (dist > r1+r2 || dist < math.Abs(r1-r2)) {
		return nil
	}

	// a is the distance from c1 to the chord through both intersections.
	a := (r1*r1 - r2*r2 + dist*dist) / (2 * dist)
	u := d.Mul(1 / dist)
	mid := p1.Add(u.Mul(a))
	if tangent {
		return []geometry.Point{geometry.FromVec(mid)}
	}

	h := math.Sqrt(max(r1*r1-a*a, 0))
	n := vec.Vec2{X: -u.Y, Y: u.X}
	return []geometry.Point{
		geometry.FromVec(mid.Add(n.Mul(h))),
		geometry.FromVec(mid.Sub(n.Mul(h))),
	}
}

// LineLine returns the intersection of the infinite lines through a and
// b. ok is false when the lines are parallel or coincide.
func LineLine(a, b *shape.Line) (p geometry.Point, ok bool) {
	p1, p2 := a.Start().Vec(), a.End().Vec()
	q1, q2 := b.Start().Vec(), b.End().Vec()
	r := p2.Sub(p1)
	s := q2.Sub(q1)

	det := cross(r, s)
	if det == 0 {
		return geometry.Point{}, false
	}
	t := cross(q1.Sub(p1), s) / det
	return geometry.FromVec(p1.Add(r.Mul(t))), true
}

// LineCircle returns the points where the infinite line through l meets
// c: none, one for a tangent, or two.
func LineCircle(l *shape.Line, c *shape.Circle) []geometry.Point {
	cx, cy, r := c.Center().X, c.Center().Y, c.Radius()

	m, ok := l.Slope()
	if !ok {
		// x = x0 substituted into the circle equation.
		x0 := l.Start().X
		return solve(1, -2*cy, cy*cy+(x0-cx)*(x0-cx)-r*r, func(y float64) geometry.Point {
			return geometry.Pt(x0, y)
		})
	}

	b, _ := l.YIntercept()
	// (1 + m²)x² + 2(m(b - cy) - cx)x + cx² + (b - cy)² - r² = 0
	k := b - cy
	return solve(1+m*m, 2*(m*k-cx), cx*cx+k*k-r*r, func(x float64) geometry.Point {
		return geometry.Pt(x, m*x+b)
	})
}

// solve finds the real roots of ax² + bx + c and maps each to a point.
func solve(a, b, c float64, at func(float64) geometry.Point) []geometry.Point {
	disc := b*b - 4*a*c
	switch {
	case disc < -Tolerance:
		return nil
	case disc <= Tolerance:
		return []geometry.Point{at(-b / (2 * a))}
	}
	sq := math.Sqrt(disc)
	return []geometry.Point{at((-b + sq) / (2 * a)), at((-b - sq) / (2 * a))}
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
