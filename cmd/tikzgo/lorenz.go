package main

import (
	"github.com/inamate/tikzgo/internal/geometry"
	"github.com/inamate/tikzgo/internal/picture"
	"github.com/inamate/tikzgo/internal/shape"
)

const (
	lorenzRho   = 28.0
	lorenzSigma = 10.0
	lorenzBeta  = 8.0 / 3.0
)

func lorenzField(p geometry.Point) geometry.Point {
	return geometry.Pt3(
		lorenzSigma*(p.Y-p.X),
		p.X*(lorenzRho-p.Z)-p.Y,
		p.X*p.Y-lorenzBeta*p.Z,
	)
}

// lorenzOrbit integrates the Lorenz system from start with fixed step
// Runge-Kutta, returning steps+1 states.
func lorenzOrbit(start geometry.Point, dt float64, steps int) []geometry.Point {
	out := make([]geometry.Point, 0, steps+1)
	p := start
	out = append(out, p)
	for range steps {
		k1 := lorenzField(p)
		k2 := lorenzField(p.Add(k1.Mul(dt / 2)))
		k3 := lorenzField(p.Add(k2.Mul(dt / 2)))
		k4 := lorenzField(p.Add(k3.Mul(dt)))
		p = p.Add(k1.Add(k2.Mul(2)).Add(k3.Mul(2)).Add(k4).Mul(dt / 6))
		out = append(out, p)
	}
	return out
}

// lorenz plots an orbit of the Lorenz system in the tikz-3dplot frame,
// with arrowed axes.
func lorenz(s *picture.Session) (*picture.Picture, error) {
	pic := s.NewPicture(picture.WithOptions("tdplot_main_coords"), picture.Centered())
	pic.SetViewAngles(60, 45)
	pic.AddStyles(picture.ArrowsAlongPath...)

	origin := geometry.Pt3(0, 0, 0)
	for _, axis := range []geometry.Point{geometry.Pt3(6, 0, 0), geometry.Pt3(0, 6, 0), geometry.Pt3(0, 0, 12)} {
		if _, err := pic.Line(origin, axis, shape.WithOptions("gray, arrows_along_path=gray")); err != nil {
			return nil, err
		}
	}

	orbit := lorenzOrbit(geometry.Pt3(1, 1, 1), 0.02, 1500)
	for i := range orbit {
		orbit[i].ScaleInPlace(0.25)
	}
	if _, err := pic.Plot(orbit, "smooth", shape.WithOptions("ProcessBlue!70")); err != nil {
		return nil, err
	}
	if _, err := pic.Circle(orbit[0], 0.1, shape.WithAction(shape.ActionFill)); err != nil {
		return nil, err
	}
	pic.Node(&orbit[0], "below", "Initial: (1,1,1)")
	return pic, nil
}
