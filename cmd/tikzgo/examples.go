package main

import (
	"fmt"
	"math"

	"github.com/inamate/tikzgo/internal/document"
	"github.com/inamate/tikzgo/internal/geometry"
	"github.com/inamate/tikzgo/internal/intersect"
	"github.com/inamate/tikzgo/internal/picture"
	"github.com/inamate/tikzgo/internal/shape"
)

var examples = map[string]func(*picture.Session) (*picture.Picture, error){
	"sample": func(s *picture.Session) (*picture.Picture, error) {
		return document.Build(document.NewSampleDocument(), s)
	},
	"intersections": intersections,
	"arcs":          arcs,
	"rectangles":    rectangles,
	"polygon":       polygon,
	"penrose":       penrose,
	"lorenz":        lorenz,
}

func buildExample(name string, s *picture.Session) (*picture.Picture, error) {
	build, ok := examples[name]
	if !ok {
		return nil, fmt.Errorf("unknown example %q", name)
	}
	return build(s)
}

// intersections marks where two circles and a line cross.
func intersections(s *picture.Session) (*picture.Picture, error) {
	pic := s.NewPicture(picture.Centered())
	pic.Tikzset("dot", "circle, fill=red, inner sep=1pt")

	a, err := pic.Circle(geometry.Pt(0, 0), 2, shape.WithOptions("blue"))
	if err != nil {
		return nil, err
	}
	b, err := pic.Circle(geometry.Pt(3, 0), 2, shape.WithOptions("blue"))
	if err != nil {
		return nil, err
	}
	l, err := pic.Line(geometry.Pt(-3, -1), geometry.Pt(6, 2), shape.WithOptions("dashed"))
	if err != nil {
		return nil, err
	}

	for _, pair := range [][2]shape.Shape{{a, b}, {l, a}, {l, b}} {
		pts, err := intersect.Shapes(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		for _, p := range pts {
			pic.Node(&p, "dot", "")
		}
	}
	return pic, nil
}

// arcs draws a fan of circular arcs and an elliptical arc rotated in steps.
func arcs(s *picture.Session) (*picture.Picture, error) {
	pic := s.NewPicture(picture.WithOptions("thick"))

	for i := range 6 {
		r := 0.5 + 0.5*float64(i)
		if _, err := pic.Arc(geometry.Pt(0, 0), shape.ArcGeometry{
			Start: geometry.Deg(0), End: geometry.Deg(30 * float64(i+1)), Radius: r, FromCenter: true,
		}, shape.WithOptions(fmt.Sprintf("blue!%d", 30+10*i))); err != nil {
			return nil, err
		}
	}

	e, err := pic.Arc(geometry.Pt(5, 0), shape.ArcGeometry{
		Start: geometry.Deg(0), End: geometry.Deg(270), XRadius: 2, YRadius: 1, FromCenter: true,
	}, shape.WithOptions("red, ->"))
	if err != nil {
		return nil, err
	}
	for i := 1; i < 4; i++ {
		pic.Draw(e.Shift(0, -2.5*float64(i)))
	}
	return pic, nil
}

// rectangles places a rectangle at each anchor of a point and clips a
// grid to a circle inside a scope.
func rectangles(s *picture.Session) (*picture.Picture, error) {
	pic := s.NewPicture()
	origin := geometry.Pt(0, 0)
	colors := map[picture.Anchor]string{
		picture.North: "red", picture.East: "green", picture.South: "blue", picture.West: "orange",
	}
	for _, anchor := range []picture.Anchor{picture.North, picture.East, picture.South, picture.West} {
		if _, err := pic.RectangleAt(anchor, origin, 1, 0.5, shape.WithOptions(colors[anchor])); err != nil {
			return nil, err
		}
	}

	sc := pic.Scope("shift={(4, 0)}")
	c, err := shape.NewCircle(geometry.Pt(0, 0), 1.5, shape.WithOptions("thick"))
	if err != nil {
		return nil, err
	}
	sc.Clip(c, true)
	sc.Command(`\draw[step=0.25, gray] (-2, -2) grid (2, 2)`)
	return pic, nil
}

// polygon draws a regular hexagon with circles on its vertices joined
// edge to edge.
func polygon(s *picture.Session) (*picture.Picture, error) {
	pic := s.NewPicture()
	vertices := make([]geometry.Point, 6)
	for i := range vertices {
		a := float64(i) * math.Pi / 3
		vertices[i] = geometry.Pt(3*math.Cos(a), 3*math.Sin(a))
	}
	if _, err := pic.Segments(vertices, true, shape.WithOptions("gray, dotted")); err != nil {
		return nil, err
	}

	circles := make([]*shape.Circle, len(vertices))
	for i, v := range vertices {
		c, err := pic.Circle(v, 0.4, shape.WithAction(shape.ActionFillDraw), shape.WithOptions("fill=yellow!30"))
		if err != nil {
			return nil, err
		}
		circles[i] = c
	}
	for i := range circles {
		if _, err := pic.ConnectCircleEdges(circles[i], circles[(i+1)%len(circles)], shape.WithOptions("thick")); err != nil {
			return nil, err
		}
	}
	return pic, nil
}
