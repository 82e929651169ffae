package shape

import (
	"github.com/inamate/tikzgo/internal/geometry"
)

// ConnectCircleEdges returns the shortest segment joining the edges of a
// and b, running along the line through their centers. Concentric circles
// yield a degenerate segment at the common center.
func ConnectCircleEdges(a, b *Circle, opts ...Option) (*Line, error) {
	ca, cb := a.Center().Vec(), b.Center().Vec()
	d := cb.Sub(ca)
	length := d.Length()
	if length == 0 {
		return NewLine(a.Center(), b.Center(), opts...)
	}
	u := d.Mul(1 / length)
	start := geometry.FromVec(ca.Add(u.Mul(a.Radius())))
	end := geometry.FromVec(cb.Sub(u.Mul(b.Radius())))
	return NewLine(start, end, opts...)
}

// Segments returns the straight lines joining consecutive points, plus the
// closing segment back to the first point when closed is set.
func Segments(points []geometry.Point, closed bool, opts ...Option) ([]*Line, error) {
	if len(points) < 2 {
		return nil, nil
	}
	n := len(points) - 1
	if closed {
		n++
	}
	lines := make([]*Line, 0, n)
	for i := range n {
		l, err := NewLine(points[i], points[(i+1)%len(points)], opts...)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}
