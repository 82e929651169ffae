package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/inamate/tikzgo/internal/geometry"
)

func TestEllipseParameter(t *testing.T) {
	tests := []struct {
		deg    float64
		xr, yr float64
		want   float64
	}{
		{0, 3, 2, 0},
		{90, 3, 2, 90},
		{180, 3, 2, 180},
		{270, 3, 2, 270},
		{360, 3, 2, 360},
		{-90, 3, 2, -90},
		{45, 1, 1, 45},
		{135, 1, 1, 135},
		{225, 1, 1, 225},
		{315, 1, 1, 315},
		{405, 1, 1, 405},
		{-45, 1, 1, -45},
		{45, 2, 1, math.Atan(2) * 180 / math.Pi},
		{135, 2, 1, 180 - math.Atan(2)*180/math.Pi},
	}
	for _, tt := range tests {
		got := EllipseParameter(geometry.Deg(tt.deg), tt.xr, tt.yr)
		if math.Abs(got-tt.want) > eps {
			t.Errorf("EllipseParameter(%v, %v, %v) = %v, want %v", tt.deg, tt.xr, tt.yr, got, tt.want)
		}
	}
}

func TestEllipticalArcCardinalAnglesExact(t *testing.T) {
	a := must[*Arc](t)(NewArc(geometry.Pt(0, 0), ArcGeometry{
		Start: geometry.Deg(0), End: geometry.Deg(180), XRadius: 3, YRadius: 1.5, FromCenter: true,
	}))
	start, end := a.NativeAngles()
	if start != 0 || end != 180 {
		t.Errorf("NativeAngles() = %v, %v, want exactly 0, 180", start, end)
	}
	if got := a.DrawStart(); got != geometry.Pt(3, 0) {
		t.Errorf("DrawStart() = %s, want (3, 0)", got)
	}
}

func TestEllipticalArcPointOnEllipse(t *testing.T) {
	// The start point must lie on the ellipse at the requested polar angle.
	for _, deg := range []float64{10, 60, 100, 200, 300} {
		a := must[*Arc](t)(NewArc(geometry.Pt(0, 0), ArcGeometry{
			Start: geometry.Deg(deg), End: geometry.Deg(deg + 10), XRadius: 3, YRadius: 2, FromCenter: true,
		}))
		p := a.DrawStart()
		if got := (p.X*p.X)/9 + (p.Y*p.Y)/4; math.Abs(got-1) > eps {
			t.Errorf("%v: start %s is off the ellipse (%v)", deg, p, got)
		}
		if got := math.Mod(math.Atan2(p.Y, p.X)*180/math.Pi+360, 360); math.Abs(got-deg) > 1e-6 {
			t.Errorf("%v: start %s has polar angle %v", deg, p, got)
		}
	}
}

func TestArcRadiusValidation(t *testing.T) {
	tests := []struct {
		name string
		g    ArcGeometry
	}{
		{"none", ArcGeometry{}},
		{"both", ArcGeometry{Radius: 1, XRadius: 1, YRadius: 2}},
		{"only x", ArcGeometry{XRadius: 1}},
		{"only y", ArcGeometry{YRadius: 1}},
		{"negative", ArcGeometry{Radius: -2}},
		{"negative y", ArcGeometry{XRadius: 1, YRadius: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewArc(geometry.Pt(0, 0), tt.g); !errors.Is(err, ErrArcRadius) {
				t.Errorf("err = %v, want ErrArcRadius", err)
			}
		})
	}

	a := must[*Arc](t)(NewArc(geometry.Pt(0, 0), ArcGeometry{Radius: 1}))
	if err := a.SetGeometry(ArcGeometry{XRadius: 2}); !errors.Is(err, ErrArcRadius) {
		t.Errorf("SetGeometry: err = %v", err)
	}
	if a.ArcKind() != CircularArc || a.Geometry().Radius != 1 {
		t.Errorf("rejected update changed the arc: %s", a.Code())
	}
}

func TestArcFromCenter(t *testing.T) {
	a := must[*Arc](t)(NewArc(geometry.Pt(0, 0), ArcGeometry{
		Start: geometry.Deg(0), End: geometry.Deg(90), Radius: 2, FromCenter: true,
	}))
	if got, want := a.Code(), `\draw (2, 0) arc [start angle = 0, end angle = 90, radius = 2cm];`; got != want {
		t.Errorf("Code() = %q, want %q", got, want)
	}

	e := must[*Arc](t)(NewArc(geometry.Pt(1, 1), ArcGeometry{
		Start: geometry.Deg(90), End: geometry.Deg(180), XRadius: 3, YRadius: 2, FromCenter: true,
	}))
	if diff := cmp.Diff(geometry.Pt(1, 3), e.DrawStart(), approxPoints); diff != "" {
		t.Errorf("DrawStart (-want +got):\n%s", diff)
	}

	b := must[*Arc](t)(NewArc(geometry.Pt(2, 0), ArcGeometry{Start: geometry.Deg(0), End: geometry.Deg(90), Radius: 2}))
	if got := b.Center(); got != geometry.Pt(0, 0) {
		t.Errorf("Center() = %s", got)
	}
}

func TestArcTransforms(t *testing.T) {
	a := must[*Arc](t)(NewArc(geometry.Pt(0, 0), ArcGeometry{
		Start: geometry.Deg(0), End: geometry.Deg(90), Radius: 1, FromCenter: true,
	}))

	r := a.RotateAbout(geometry.Deg(90), geometry.Pt(0, 0))
	if g := r.Geometry(); g.Start.Degrees() != 90 || g.End.Degrees() != 180 {
		t.Errorf("rotated angles = %v, %v", g.Start, g.End)
	}
	if diff := cmp.Diff(geometry.Pt(0, 1), r.DrawStart(), approxPoints); diff != "" {
		t.Errorf("rotated start (-want +got):\n%s", diff)
	}

	s := a.Shift(1, 1).Scale(2)
	if s.Position() != geometry.Pt(2, 2) || s.Geometry().Radius != 2 {
		t.Errorf("shift+scale = %s", s.Code())
	}

	f := a.Shift(1, 1).Scale(-1)
	if g := f.Geometry(); f.Position() != geometry.Pt(-1, -1) || g.Start.Degrees() != 180 || g.End.Degrees() != 270 {
		t.Errorf("point reflection = %s", f.Code())
	}

	if a.Geometry().Start.Degrees() != 0 {
		t.Errorf("copying transforms modified the receiver: %s", a.Code())
	}
}
