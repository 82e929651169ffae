package geometry

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// ErrDimensionMismatch is the panic value (wrapped) raised when 2D and 3D
// points are combined arithmetically.
var ErrDimensionMismatch = errors.New("point dimension mismatch")

// Point is a position in the plane, optionally carrying a z coordinate.
// The zero value is the 2D origin. Build 3D points with Pt3; the
// dimension of a point never changes through derived operations.
type Point struct {
	X, Y, Z float64

	threeD bool
}

// Pt returns the 2D point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pt3 returns the 3D point (x, y, z).
func Pt3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z, threeD: true}
}

// Is3D reports whether p carries a z coordinate.
func (p Point) Is3D() bool { return p.threeD }

// Vec returns the (x, y) projection of p.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// FromVec returns the 2D point at v.
func FromVec(v vec.Vec2) Point {
	return Pt(v.X, v.Y)
}

// String renders p as TikZ coordinate text, "(x, y)" or "(x, y, z)".
func (p Point) String() string {
	if p.threeD {
		return "(" + FormatFloat(p.X) + ", " + FormatFloat(p.Y) + ", " + FormatFloat(p.Z) + ")"
	}
	return "(" + FormatFloat(p.X) + ", " + FormatFloat(p.Y) + ")"
}

// FormatFloat prints v with the fewest digits that round-trip, so whole
// numbers carry no decimal part.
func FormatFloat(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Shift returns p moved by (dx, dy).
func (p Point) Shift(dx, dy float64) Point {
	p.X += dx
	p.Y += dy
	return p
}

// Shift3 returns p moved by (dx, dy, dz). The z offset is ignored for 2D points.
func (p Point) Shift3(dx, dy, dz float64) Point {
	p.X += dx
	p.Y += dy
	if p.threeD {
		p.Z += dz
	}
	return p
}

// Scale returns p with every coordinate multiplied by s.
func (p Point) Scale(s float64) Point {
	p.X *= s
	p.Y *= s
	if p.threeD {
		p.Z *= s
	}
	return p
}

// Rotate returns p rotated counterclockwise by a around about.
// Only the (x, y) projection of a 3D point is rotated.
func (p Point) Rotate(a Angle, about Point) Point {
	if p.threeD {
		slog.Warn("rotating 3D point in the xy-plane only", "point", p.String())
	}
	return RotationAbout(a.Rads(), about.X, about.Y).Apply(p)
}

// ShiftInPlace moves p by (dx, dy).
func (p *Point) ShiftInPlace(dx, dy float64) { *p = p.Shift(dx, dy) }

// ScaleInPlace multiplies every coordinate of p by s.
func (p *Point) ScaleInPlace(s float64) { *p = p.Scale(s) }

// RotateInPlace rotates p by a around about.
func (p *Point) RotateInPlace(a Angle, about Point) { *p = p.Rotate(a, about) }

// Add returns the component-wise sum. It panics if the dimensions differ.
func (p Point) Add(q Point) Point {
	mustMatch(p, q)
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z, threeD: p.threeD}
}

// Sub returns the component-wise difference. It panics if the dimensions differ.
func (p Point) Sub(q Point) Point {
	mustMatch(p, q)
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z, threeD: p.threeD}
}

// Mul is an alias of Scale.
func (p Point) Mul(s float64) Point { return p.Scale(s) }

// Div divides every coordinate by s.
func (p Point) Div(s float64) Point {
	p.X /= s
	p.Y /= s
	if p.threeD {
		p.Z /= s
	}
	return p
}

// Equal reports exact equality of all present components.
func (p Point) Equal(q Point) bool { return p == q }

// ApproxEqual reports whether p and q have the same dimension and every
// component differs by at most eps.
func (p Point) ApproxEqual(q Point, eps float64) bool {
	if p.threeD != q.threeD {
		return false
	}
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps && math.Abs(p.Z-q.Z) <= eps
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	d := p.Sub(q)
	if d.threeD {
		return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
	}
	return d.Vec().Length()
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return p.Add(q).Div(2)
}

// Centroid returns the arithmetic mean of points, or the origin when
// points is empty.
func Centroid(points ...Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	sum := points[0]
	for _, q := range points[1:] {
		sum = sum.Add(q)
	}
	return sum.Div(float64(len(points)))
}

// SameDimension returns an error wrapping ErrDimensionMismatch unless all
// points are 2D or all are 3D.
func SameDimension(points ...Point) error {
	for _, q := range points[min(1, len(points)):] {
		if q.threeD != points[0].threeD {
			return fmt.Errorf("%w: %s and %s", ErrDimensionMismatch, points[0], q)
		}
	}
	return nil
}

func mustMatch(p, q Point) {
	if err := SameDimension(p, q); err != nil {
		panic(err)
	}
}
