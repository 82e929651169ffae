package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/inamate/tikzgo/internal/geometry"
)

const eps = 1e-9

var approxPoints = cmp.Comparer(func(a, b geometry.Point) bool { return a.ApproxEqual(b, eps) })

func must[T any](t *testing.T) func(T, error) T {
	t.Helper()
	return func(v T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return v
	}
}

func TestCode(t *testing.T) {
	pt := geometry.Pt
	tests := []struct {
		name  string
		shape Shape
		want  string
	}{
		{
			name:  "line",
			shape: must[*Line](t)(NewLine(pt(0, 0), pt(1, 1))),
			want:  `\draw (0, 0) to (1, 1);`,
		},
		{
			name: "line with options",
			shape: func() Shape {
				l := must[*Line](t)(NewLine(pt(0, 0), pt(1, 1), WithOptions("->, thick"), WithAction(ActionPath)))
				l.ToOptions = "bend left"
				return l
			}(),
			want: `\path[->, thick] (0, 0) to[bend left] (1, 1);`,
		},
		{
			name:  "curve",
			shape: must[*Line](t)(NewCurve(pt(0, 0), pt(3, 0), []geometry.Point{pt(1, 1), pt(2, 1)})),
			want:  `\draw (0, 0) .. controls (1, 1) and (2, 1) .. (3, 0);`,
		},
		{
			name:  "circle",
			shape: must[*Circle](t)(NewCircle(pt(1, 2), 0.5, WithOptions("red"), WithAction(ActionFill))),
			want:  `\fill[red] (1, 2) circle (0.5cm);`,
		},
		{
			name:  "ellipse",
			shape: must[*Ellipse](t)(NewEllipse(pt(0, 0), 2, 1)),
			want:  `\draw (0, 0) ellipse (2cm and 1cm);`,
		},
		{
			name:  "arc",
			shape: must[*Arc](t)(NewArc(pt(0, 0), ArcGeometry{Start: geometry.Deg(20), End: geometry.Deg(90), Radius: 4})),
			want:  `\draw (0, 0) arc [start angle = 20, end angle = 90, radius = 4cm];`,
		},
		{
			name:  "elliptical arc",
			shape: must[*Arc](t)(NewArc(pt(1, 0), ArcGeometry{Start: geometry.Deg(0), End: geometry.Deg(180), XRadius: 3, YRadius: 2})),
			want:  `\draw (1, 0) arc [start angle = 0, end angle = 180, x radius = 3cm, y radius = 2cm];`,
		},
		{
			name:  "rectangle",
			shape: must[*Rectangle](t)(NewRectangle(pt(0, 0), pt(2, 1), WithAction(ActionFillDraw))),
			want:  `\filldraw (0, 0) rectangle (2, 1);`,
		},
		{
			name:  "plot",
			shape: must[*Plot](t)(NewPlot([]geometry.Point{pt(1, 1), pt(2, 2), pt(3, 3), pt(2, -4)}, "smooth ", WithOptions("green"))),
			want:  `\draw[green] plot[smooth ] coordinates {(1, 1) (2, 2) (3, 3) (2, -4)};`,
		},
		{
			name:  "node",
			shape: At(pt(3, 3), "above", `I love $ \sum_{x \in \mathbb{R}} f(x^2)$ !`),
			want:  `\node[above] at (3, 3) { I love $ \sum_{x \in \mathbb{R}} f(x^2)$ ! };`,
		},
		{
			name:  "unplaced node",
			shape: NewNode(nil, "", "A"),
			want:  `\node { A };`,
		},
		{
			name:  "labelled line",
			shape: must[*Line](t)(NewLine(pt(0, 0), pt(1, 0), WithLabel(NewNode(nil, "midway, above", "$x$")))),
			want:  `\draw (0, 0) to (1, 0) node[midway, above] { $x$ };`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.shape.Code()
			if got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
			if again := tt.shape.Code(); again != got {
				t.Errorf("second Code() = %q, differs from first %q", again, got)
			}
		})
	}
}

func TestInvalidAction(t *testing.T) {
	if _, err := NewCircle(geometry.Pt(0, 0), 1, WithAction("stroke")); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("NewCircle with bad action: err = %v", err)
	}
	c := must[*Circle](t)(NewCircle(geometry.Pt(0, 0), 1))
	if err := c.SetAction("erase"); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("SetAction: err = %v", err)
	}
	if c.Action() != ActionDraw {
		t.Errorf("action changed to %q after rejected update", c.Action())
	}
	for _, s := range []string{" fill ", "filldraw", "path", ""} {
		if _, err := ParseAction(s); err != nil {
			t.Errorf("ParseAction(%q): %v", s, err)
		}
	}
	if _, err := ParseAction("drawfill"); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("ParseAction(drawfill): err = %v", err)
	}
}

func TestLine(t *testing.T) {
	l := must[*Line](t)(NewLine(geometry.Pt(1, 1), geometry.Pt(3, 5)))
	if m, ok := l.Slope(); !ok || m != 2 {
		t.Errorf("Slope() = %v, %v", m, ok)
	}
	if b, ok := l.YIntercept(); !ok || b != -1 {
		t.Errorf("YIntercept() = %v, %v", b, ok)
	}
	if got := l.PosAtT(0.5); got != geometry.Pt(2, 3) {
		t.Errorf("PosAtT(0.5) = %s", got)
	}
	if got := l.PosAtT(2); got != geometry.Pt(5, 9) {
		t.Errorf("PosAtT(2) = %s", got)
	}

	vertical := must[*Line](t)(NewLine(geometry.Pt(2, 0), geometry.Pt(2, 7)))
	if _, ok := vertical.Slope(); ok {
		t.Error("vertical line reports a slope")
	}
	if _, ok := vertical.YIntercept(); ok {
		t.Error("vertical line reports an intercept")
	}

	r := l.Rotate(geometry.Deg(180))
	if diff := cmp.Diff(geometry.Pt(3, 5), r.Start(), approxPoints); diff != "" {
		t.Errorf("rotated start (-want +got):\n%s", diff)
	}
	if l.Start() != geometry.Pt(1, 1) {
		t.Errorf("Rotate modified the receiver: %s", l.Start())
	}
}

func TestCircle(t *testing.T) {
	c := must[*Circle](t)(NewCircle(geometry.Pt(1, 1), 2))
	got := []geometry.Point{c.North(), c.East(), c.South(), c.West()}
	want := []geometry.Point{geometry.Pt(1, 3), geometry.Pt(3, 1), geometry.Pt(1, -1), geometry.Pt(-1, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cardinal points (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(geometry.Pt(1, 3), c.PointAtArg(geometry.Deg(90)), approxPoints); diff != "" {
		t.Errorf("PointAtArg(90) (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(geometry.Pt(-1, 1), c.PointAtArg(geometry.Rad(math.Pi)), approxPoints); diff != "" {
		t.Errorf("PointAtArg(pi) (-want +got):\n%s", diff)
	}

	if _, err := NewCircle(geometry.Pt(0, 0), -1); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("negative radius: err = %v", err)
	}

	// Rotating about a foreign pivot moves the circle rigidly.
	moved := c.RotateAbout(geometry.Deg(90), geometry.Pt(0, 0))
	if diff := cmp.Diff(geometry.Pt(-1, 1), moved.Center(), approxPoints); diff != "" {
		t.Errorf("rotated center (-want +got):\n%s", diff)
	}
	if moved.Radius() != 2 {
		t.Errorf("rotation changed radius to %v", moved.Radius())
	}
	if rot := c.Rotate(geometry.Deg(73)); !rot.Center().ApproxEqual(c.Center(), eps) {
		t.Errorf("rotation about own center moved it to %s", rot.Center())
	}

	s := c.Scale(1.5)
	if s.Center() != geometry.Pt(1.5, 1.5) || s.Radius() != 3 {
		t.Errorf("Scale(1.5) = %s", s.Code())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	l := must[*Line](t)(NewCurve(geometry.Pt(0, 0), geometry.Pt(3, 0), []geometry.Point{geometry.Pt(1, 1)},
		WithLabel(At(geometry.Pt(0, 1), "", "a"))))
	c := l.Clone().(*Line)
	c.ShiftInPlace(1, 1)
	c.Label().Text = "b"

	if l.Code() != `\draw (0, 0) .. controls (1, 1) .. (3, 0) node at (0, 1) { a };` {
		t.Errorf("original changed: %s", l.Code())
	}
	if c.Code() != `\draw (1, 1) .. controls (2, 2) .. (4, 1) node at (1, 2) { b };` {
		t.Errorf("clone = %s", c.Code())
	}
}

func TestShiftCopyVersusInPlace(t *testing.T) {
	r := must[*Rectangle](t)(NewRectangle(geometry.Pt(0, 0), geometry.Pt(1, 1)))
	moved := r.Shift(2, 0)
	if r.LeftCorner() != geometry.Pt(0, 0) {
		t.Errorf("Shift modified receiver")
	}
	if moved.LeftCorner() != geometry.Pt(2, 0) {
		t.Errorf("moved corner = %s", moved.LeftCorner())
	}
	r.ShiftInPlace(0, 3)
	if r.RightCorner() != geometry.Pt(1, 4) {
		t.Errorf("ShiftInPlace corner = %s", r.RightCorner())
	}
}

func TestRectangle(t *testing.T) {
	r := must[*Rectangle](t)(NewRectangleSized(geometry.Pt(2, 2), 1, 2))
	got := map[string]geometry.Point{
		"center": r.Center(),
		"north":  r.North(),
		"east":   r.East(),
		"south":  r.South(),
		"west":   r.West(),
	}
	want := map[string]geometry.Point{
		"center": geometry.Pt(2.5, 3),
		"north":  geometry.Pt(2.5, 4),
		"east":   geometry.Pt(3, 3),
		"south":  geometry.Pt(2.5, 2),
		"west":   geometry.Pt(2, 3),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("anchors (-want +got):\n%s", diff)
	}
	if r.Width() != 1 || r.Height() != 2 {
		t.Errorf("size = %vx%v", r.Width(), r.Height())
	}

	setters := []struct {
		name string
		set  func(geometry.Point)
		get  func() geometry.Point
	}{
		{"north", r.SetNorth, r.North},
		{"east", r.SetEast, r.East},
		{"south", r.SetSouth, r.South},
		{"west", r.SetWest, r.West},
		{"center", r.SetCenter, r.Center},
	}
	for _, s := range setters {
		t.Run(s.name, func(t *testing.T) {
			p := geometry.Pt(-4, 7.5)
			s.set(p)
			if got := s.get(); got != p {
				t.Errorf("after set %s = %s, want %s", s.name, got, p)
			}
			if r.Width() != 1 || r.Height() != 2 {
				t.Errorf("size changed to %vx%v", r.Width(), r.Height())
			}
		})
	}

	n := must[*Rectangle](t)(RectangleFromNorth(geometry.Pt(0, 0), 4, 2))
	if n.Code() != `\draw (-2, -2) rectangle (2, 0);` {
		t.Errorf("RectangleFromNorth = %s", n.Code())
	}
	w := must[*Rectangle](t)(RectangleFromWest(geometry.Pt(0, 0), 4, 2))
	if w.Code() != `\draw (0, -1) rectangle (4, 1);` {
		t.Errorf("RectangleFromWest = %s", w.Code())
	}
	if _, err := RectangleFromCenter(geometry.Pt(0, 0), -1, 1); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("negative width: err = %v", err)
	}
}

func TestRectangleKeepsDepth(t *testing.T) {
	ctors := map[string]func(geometry.Point, float64, float64, ...Option) (*Rectangle, error){
		"center": RectangleFromCenter,
		"north":  RectangleFromNorth,
		"east":   RectangleFromEast,
		"south":  RectangleFromSouth,
		"west":   RectangleFromWest,
	}
	for name, ctor := range ctors {
		t.Run(name, func(t *testing.T) {
			r := must[*Rectangle](t)(ctor(geometry.Pt3(1, 1, 2), 2, 2))
			for _, c := range []geometry.Point{r.LeftCorner(), r.RightCorner()} {
				if !c.Is3D() || c.Z != 2 {
					t.Errorf("corner %s lost depth", c)
				}
			}
		})
	}
}

func TestMixedDimensions(t *testing.T) {
	flat, deep := geometry.Pt(0, 0), geometry.Pt3(1, 1, 1)
	_, lineErr := NewLine(flat, deep)
	_, curveErr := NewCurve(flat, geometry.Pt(1, 1), []geometry.Point{deep})
	_, rectErr := NewRectangle(deep, flat)
	_, plotErr := NewPlot([]geometry.Point{flat, deep}, "")
	_, relErr := NewRelativePlot([]geometry.Point{flat, deep}, "")
	for name, err := range map[string]error{
		"line":          lineErr,
		"curve":         curveErr,
		"rectangle":     rectErr,
		"plot":          plotErr,
		"relative plot": relErr,
	} {
		if !errors.Is(err, geometry.ErrDimensionMismatch) {
			t.Errorf("%s: err = %v, want ErrDimensionMismatch", name, err)
		}
	}

	p := must[*Plot](t)(NewPlot([]geometry.Point{deep}, ""))
	p.AddPoint(3, 4)
	if got := p.Points()[1]; got != geometry.Pt3(3, 4, 0) {
		t.Errorf("AddPoint on 3D plot = %s", got)
	}
}

func TestPlot(t *testing.T) {
	p := must[*Plot](t)(NewRelativePlot([]geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(0, 1), geometry.Pt(1, 0), geometry.Pt(1, 1),
	}, ""))
	want := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(0, 1), geometry.Pt(1, 1), geometry.Pt(2, 2)}
	if diff := cmp.Diff(want, p.Points(), approxPoints); diff != "" {
		t.Errorf("relative points (-want +got):\n%s", diff)
	}
	if got := p.Center(); got != geometry.Pt(0.75, 1) {
		t.Errorf("Center() = %s", got)
	}
	p.AddPoint(5, -8)
	if p.Len() != 5 || p.Center() != geometry.Pt(1.6, -0.8) {
		t.Errorf("after AddPoint: len %d center %s", p.Len(), p.Center())
	}
}

func TestNodeTransforms(t *testing.T) {
	n := At(geometry.Pt(1, 0), "", "x")
	n.ShiftInPlace(1, 1)
	n.ScaleInPlace(2)
	if p, ok := n.Position(); !ok || p != geometry.Pt(4, 2) {
		t.Errorf("position = %s, %v", p, ok)
	}
	free := NewNode(nil, "", "y")
	free.ShiftInPlace(3, 3)
	if _, ok := free.Position(); ok {
		t.Error("unplaced node gained a position")
	}
}

func TestConnectCircleEdges(t *testing.T) {
	a := must[*Circle](t)(NewCircle(geometry.Pt(0, 0), 1))
	b := must[*Circle](t)(NewCircle(geometry.Pt(5, 0), 2))
	l := must[*Line](t)(ConnectCircleEdges(a, b))
	if diff := cmp.Diff([]geometry.Point{geometry.Pt(1, 0), geometry.Pt(3, 0)},
		[]geometry.Point{l.Start(), l.End()}, approxPoints); diff != "" {
		t.Errorf("edges (-want +got):\n%s", diff)
	}

	c := must[*Circle](t)(NewCircle(geometry.Pt(-3, -4), 2.5))
	l = must[*Line](t)(ConnectCircleEdges(a, c))
	if diff := cmp.Diff(geometry.Pt(-0.6, -0.8), l.Start(), approxPoints); diff != "" {
		t.Errorf("start (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(geometry.Pt(-1.5, -2), l.End(), approxPoints); diff != "" {
		t.Errorf("end (-want +got):\n%s", diff)
	}
}

func TestSegments(t *testing.T) {
	pts := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(1, 0), geometry.Pt(0, 1)}
	open := must[[]*Line](t)(Segments(pts, false))
	closed := must[[]*Line](t)(Segments(pts, true))
	if len(open) != 2 || len(closed) != 3 {
		t.Fatalf("got %d open, %d closed segments", len(open), len(closed))
	}
	if closed[2].Code() != `\draw (0, 1) to (0, 0);` {
		t.Errorf("closing segment = %s", closed[2].Code())
	}
}
