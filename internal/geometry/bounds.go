package geometry

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// BoundsOf returns the smallest axis-aligned rectangle containing the
// (x, y) projection of every point. The zero Rect is returned for no points.
func BoundsOf(points ...Point) rect.Rect {
	if len(points) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range points {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// UnionBounds returns the smallest rectangle containing both a and b.
// A zero rectangle is treated as empty.
func UnionBounds(a, b rect.Rect) rect.Rect {
	if a == (rect.Rect{}) {
		return b
	}
	if b == (rect.Rect{}) {
		return a
	}
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}
