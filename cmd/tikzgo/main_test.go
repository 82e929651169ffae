package main

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inamate/tikzgo/internal/config"
	"github.com/inamate/tikzgo/internal/document"
	"github.com/inamate/tikzgo/internal/geometry"
	"github.com/inamate/tikzgo/internal/picture"
)

func TestExamplesBuild(t *testing.T) {
	for _, name := range exampleNames() {
		t.Run(name, func(t *testing.T) {
			pic, err := buildExample(name, picture.NewSession())
			if err != nil {
				t.Fatal(err)
			}
			if pic.Len() == 0 {
				t.Error("example drew nothing")
			}
		})
	}
	if _, err := buildExample("nope", picture.NewSession()); err == nil {
		t.Error("unknown example accepted")
	}
}

func TestIntersectionsExample(t *testing.T) {
	pic, err := intersections(picture.NewSession())
	if err != nil {
		t.Fatal(err)
	}
	// two circles, the line, and two points for each of the three pairs
	if pic.Len() != 9 {
		t.Errorf("Len() = %d, want 9\n%s", pic.Len(), pic.Code())
	}
	if n := strings.Count(pic.Code(), `\node[dot] at (`); n != 6 {
		t.Errorf("%d intersection nodes, want 6:\n%s", n, pic.Code())
	}
}

func TestLorenzExample(t *testing.T) {
	orbit := lorenzOrbit(geometry.Pt3(1, 1, 1), 0.01, 2000)
	if len(orbit) != 2001 {
		t.Fatalf("len = %d", len(orbit))
	}
	for _, p := range orbit {
		// the attractor stays well inside this box
		if !p.Is3D() || math.Abs(p.X) > 30 || math.Abs(p.Y) > 40 || p.Z < 0 || p.Z > 60 {
			t.Fatalf("orbit left the attractor at %s", p)
		}
	}

	pic, err := lorenz(picture.NewSession())
	if err != nil {
		t.Fatal(err)
	}
	code := pic.Code()
	for _, want := range []string{
		"\\tdplotsetmaincoords{60}{45}\n\\begin{center}",
		`\begin{tikzpicture}[tdplot_main_coords]`,
		`\draw[gray, arrows_along_path=gray] (0, 0, 0) to (6, 0, 0);`,
		`\node[below] at (0.25, 0.25, 0.25) { Initial: (1,1,1) };`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("missing %q in:\n%s", want, code)
		}
	}
}

func TestRunWritesFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "figures.tex")
	if err := os.WriteFile(out, []byte("% header\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{OutputDir: dir}
	if err := run(context.Background(), cfg, "", "polygon", out, false, false); err != nil {
		t.Fatal(err)
	}

	doc := filepath.Join(dir, "doc.json")
	data := `{"name": "one", "items": [{"kind": "line", "data": {"start": [0, 0], "end": [1, 0]}}]}`
	if err := os.WriteFile(doc, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(context.Background(), cfg, doc, "", out, false, false); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	s := string(got)
	if !strings.HasPrefix(s, "% header\n") {
		t.Errorf("header lost:\n%s", s)
	}
	// Each run opens a new session, so both pictures carry id 0 and the
	// second replaces the first.
	if strings.Count(s, "%__begin__tikzgo__id__(0)") != 1 {
		t.Errorf("want one block:\n%s", s)
	}
	if !strings.Contains(s, `\draw (0, 0) to (1, 0);`) {
		t.Errorf("document picture missing:\n%s", s)
	}
}

func TestRunRejectsBadDocument(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(doc, []byte(`{"items": [{"kind": "hexagon"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	err := run(context.Background(), &config.Config{}, doc, "", filepath.Join(dir, "out.tex"), false, false)
	if !errors.Is(err, document.ErrInvalidDocument) || !strings.Contains(err.Error(), "items[0]") {
		t.Errorf("err = %v", err)
	}
}
