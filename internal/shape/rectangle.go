package shape

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"

	"github.com/inamate/tikzgo/internal/geometry"
)

// Rectangle is stored as the pair of opposite corners it is drawn
// between. Width, height and the cardinal points are derived on every
// read, so they always agree with the corners.
type Rectangle struct {
	base

	left, right geometry.Point
}

// NewRectangle returns the rectangle with opposite corners left and right.
func NewRectangle(left, right geometry.Point, opts ...Option) (*Rectangle, error) {
	if err := geometry.SameDimension(left, right); err != nil {
		return nil, fmt.Errorf("rectangle: %w", err)
	}
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}
	return &Rectangle{base: b, left: left, right: right}, nil
}

// NewRectangleSized returns the rectangle whose lower-left corner is
// corner.
func NewRectangleSized(corner geometry.Point, width, height float64, opts ...Option) (*Rectangle, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return NewRectangle(corner, corner.Shift(width, height), opts...)
}

// RectangleFromCenter returns the rectangle of the given size centered at p.
func RectangleFromCenter(p geometry.Point, width, height float64, opts ...Option) (*Rectangle, error) {
	return rectangleFrom((*Rectangle).SetCenter, p, width, height, opts)
}

// RectangleFromNorth returns the rectangle whose top edge midpoint is p.
func RectangleFromNorth(p geometry.Point, width, height float64, opts ...Option) (*Rectangle, error) {
	return rectangleFrom((*Rectangle).SetNorth, p, width, height, opts)
}

// RectangleFromEast returns the rectangle whose right edge midpoint is p.
func RectangleFromEast(p geometry.Point, width, height float64, opts ...Option) (*Rectangle, error) {
	return rectangleFrom((*Rectangle).SetEast, p, width, height, opts)
}

// RectangleFromSouth returns the rectangle whose bottom edge midpoint is p.
func RectangleFromSouth(p geometry.Point, width, height float64, opts ...Option) (*Rectangle, error) {
	return rectangleFrom((*Rectangle).SetSouth, p, width, height, opts)
}

// RectangleFromWest returns the rectangle whose left edge midpoint is p.
func RectangleFromWest(p geometry.Point, width, height float64, opts ...Option) (*Rectangle, error) {
	return rectangleFrom((*Rectangle).SetWest, p, width, height, opts)
}

func rectangleFrom(set func(*Rectangle, geometry.Point), p geometry.Point, width, height float64, opts []Option) (*Rectangle, error) {
	r, err := NewRectangleSized(geometry.Point{}, width, height, opts...)
	if err != nil {
		return nil, err
	}
	set(r, p)
	return r, nil
}

func checkSize(width, height float64) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("rectangle %vx%v: %w", width, height, ErrNegativeSize)
	}
	return nil
}

func (r *Rectangle) Kind() Kind                      { return KindRectangle }
func (r *Rectangle) LeftCorner() geometry.Point      { return r.left }
func (r *Rectangle) RightCorner() geometry.Point     { return r.right }
func (r *Rectangle) SetLeftCorner(p geometry.Point)  { r.left = p }
func (r *Rectangle) SetRightCorner(p geometry.Point) { r.right = p }
func (r *Rectangle) Width() float64                  { return math.Abs(r.right.X - r.left.X) }
func (r *Rectangle) Height() float64                 { return math.Abs(r.right.Y - r.left.Y) }
func (r *Rectangle) Pivot() geometry.Point           { return r.Center() }
func (r *Rectangle) Code() string                    { return r.code(r.Body()) }

// Body returns "(x1, y1) rectangle (x2, y2)".
func (r *Rectangle) Body() string {
	return r.left.String() + " rectangle " + r.right.String()
}

func (r *Rectangle) minX() float64 { return min(r.left.X, r.right.X) }
func (r *Rectangle) maxX() float64 { return max(r.left.X, r.right.X) }
func (r *Rectangle) minY() float64 { return min(r.left.Y, r.right.Y) }
func (r *Rectangle) maxY() float64 { return max(r.left.Y, r.right.Y) }

func (r *Rectangle) Center() geometry.Point {
	return geometry.Pt((r.left.X+r.right.X)/2, (r.left.Y+r.right.Y)/2)
}

func (r *Rectangle) North() geometry.Point { return geometry.Pt((r.left.X+r.right.X)/2, r.maxY()) }
func (r *Rectangle) South() geometry.Point { return geometry.Pt((r.left.X+r.right.X)/2, r.minY()) }
func (r *Rectangle) East() geometry.Point  { return geometry.Pt(r.maxX(), (r.left.Y+r.right.Y)/2) }
func (r *Rectangle) West() geometry.Point  { return geometry.Pt(r.minX(), (r.left.Y+r.right.Y)/2) }

// SetCenter moves the rectangle so its center is p, keeping its size.
func (r *Rectangle) SetCenter(p geometry.Point) {
	w, h := r.Width(), r.Height()
	r.left = p.Shift(-w/2, -h/2)
	r.right = p.Shift(w/2, h/2)
}

// SetNorth moves the rectangle so its top edge midpoint is p.
func (r *Rectangle) SetNorth(p geometry.Point) {
	w, h := r.Width(), r.Height()
	r.left = p.Shift(-w/2, -h)
	r.right = p.Shift(w/2, 0)
}

// SetEast moves the rectangle so its right edge midpoint is p.
func (r *Rectangle) SetEast(p geometry.Point) {
	w, h := r.Width(), r.Height()
	r.left = p.Shift(-w, -h/2)
	r.right = p.Shift(0, h/2)
}

// SetSouth moves the rectangle so its bottom edge midpoint is p.
func (r *Rectangle) SetSouth(p geometry.Point) {
	w, h := r.Width(), r.Height()
	r.left = p.Shift(-w/2, 0)
	r.right = p.Shift(w/2, h)
}

// SetWest moves the rectangle so its left edge midpoint is p.
func (r *Rectangle) SetWest(p geometry.Point) {
	w, h := r.Width(), r.Height()
	r.left = p.Shift(0, -h/2)
	r.right = p.Shift(w, h/2)
}

func (r *Rectangle) Bounds() rect.Rect {
	return geometry.BoundsOf(r.left, r.right)
}

func (r *Rectangle) Clone() Shape { return r.clone() }

func (r *Rectangle) clone() *Rectangle {
	cp := *r
	cp.base = r.base.clone()
	return &cp
}

func (r *Rectangle) ShiftInPlace(dx, dy float64) {
	r.left.ShiftInPlace(dx, dy)
	r.right.ShiftInPlace(dx, dy)
	r.shiftLabel(dx, dy)
}

func (r *Rectangle) ScaleInPlace(s float64) {
	r.left.ScaleInPlace(s)
	r.right.ScaleInPlace(s)
	r.scaleLabel(s)
}

// RotateInPlace rotates both corners. The result is still drawn axis
// aligned between the rotated corners.
func (r *Rectangle) RotateInPlace(a geometry.Angle, about geometry.Point) {
	r.left.RotateInPlace(a, about)
	r.right.RotateInPlace(a, about)
	r.rotateLabel(a, about)
}

func (r *Rectangle) Shift(dx, dy float64) *Rectangle    { return Shifted(r, dx, dy) }
func (r *Rectangle) Scale(s float64) *Rectangle         { return Scaled(r, s) }
func (r *Rectangle) Rotate(a geometry.Angle) *Rectangle { return Rotated(r, a, r.Pivot()) }

func (r *Rectangle) RotateAbout(a geometry.Angle, p geometry.Point) *Rectangle {
	return Rotated(r, a, p)
}
