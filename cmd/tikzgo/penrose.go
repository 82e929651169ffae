package main

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/inamate/tikzgo/internal/geometry"
	"github.com/inamate/tikzgo/internal/picture"
	"github.com/inamate/tikzgo/internal/shape"
)

const (
	c1 = math.Phi - 1.0
	c2 = 2.0 - math.Phi

	penroseLevels = 3
	penroseScale  = 5
)

// tile is half of a Penrose kite or dart. Deflation splits it into smaller
// halves; drawing emits its two outer edges and the two matching arcs.
type tile interface {
	deflate() []tile
	draw(e *picture.Environment) error
}

type halfKite struct{ geom.Triangle }

func (t halfKite) deflate() []tile {
	d := t.A.Times(c1).Plus(t.B.Times(c2))
	e := t.B.Times(c1).Plus(t.C.Times(c2))
	return []tile{
		halfKite{geom.Triangle{A: d, B: t.C, C: t.A}},
		halfKite{geom.Triangle{A: d, B: t.C, C: e}},
		halfDart{geom.Triangle{A: t.B, B: e, C: d}},
	}
}

func (t halfKite) draw(e *picture.Environment) error {
	rB := t.A.Minus(t.C).Magnitude()
	rA := rB / math.Phi
	return drawTile(e, t.Triangle, rA, rB)
}

type halfDart struct{ geom.Triangle }

func (t halfDart) deflate() []tile {
	d := t.A.Times(c2).Plus(t.C.Times(c1))
	return []tile{
		halfDart{geom.Triangle{A: t.C, B: d, C: t.B}},
		halfKite{geom.Triangle{A: t.B, B: t.A, C: d}},
	}
}

func (t halfDart) draw(e *picture.Environment) error {
	r := t.A.Minus(t.C).Magnitude()
	return drawTile(e, t.Triangle, r/(math.Phi*math.Phi), r/(math.Phi*math.Phi*math.Phi))
}

func drawTile(e *picture.Environment, t geom.Triangle, rA, rB float64) error {
	if _, err := e.Line(pt(t.B), pt(t.C), shape.WithOptions("gray")); err != nil {
		return err
	}
	if _, err := e.Line(pt(t.C), pt(t.A), shape.WithOptions("gray")); err != nil {
		return err
	}
	if _, err := e.Arc(pt(t.A), markArc(t.A, t.B, t.C, rA), shape.WithOptions("red")); err != nil {
		return err
	}
	_, err := e.Arc(pt(t.B), markArc(t.B, t.A, t.C, rB), shape.WithOptions("blue"))
	return err
}

// markArc sweeps the short way around center from the direction of from
// to the direction of to.
func markArc(center, from, to geom.Coord, r float64) shape.ArcGeometry {
	u, v := from.Minus(center), to.Minus(center)
	start := math.Atan2(u.Y, u.X)
	sweep := math.Atan2(u.X*v.Y-u.Y*v.X, u.X*v.X+u.Y*v.Y)
	return shape.ArcGeometry{
		Start:      geometry.Rad(start),
		End:        geometry.Rad(start + sweep),
		Radius:     r,
		FromCenter: true,
	}
}

func pt(c geom.Coord) geometry.Point { return geometry.Pt(c.X, c.Y) }

// sun is the ring of ten half kites around the origin.
func sun() []tile {
	unit := func(deg float64) geom.Coord {
		rad := deg * math.Pi / 180
		return geom.Coord{X: math.Cos(rad), Y: math.Sin(rad)}
	}
	tiles := make([]tile, 0, 10)
	for i := range 5 {
		a := float64(72 * i)
		tiles = append(tiles,
			halfKite{geom.Triangle{A: unit(a), B: geom.Coord{}, C: unit(a + 36)}},
			halfKite{geom.Triangle{A: unit(a), B: geom.Coord{}, C: unit(a - 36)}},
		)
	}
	return tiles
}

// penrose draws a deflated Penrose sun with its matching arcs.
func penrose(s *picture.Session) (*picture.Picture, error) {
	tiles := sun()
	for range penroseLevels {
		next := make([]tile, 0, 3*len(tiles))
		for _, t := range tiles {
			next = append(next, t.deflate()...)
		}
		tiles = next
	}

	pic := s.NewPicture(picture.WithOptions("line width=0.2pt"))
	for _, t := range tiles {
		if err := t.draw(&pic.Environment); err != nil {
			return nil, err
		}
	}
	pic.ScaleInPlace(penroseScale)
	return pic, nil
}
