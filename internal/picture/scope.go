package picture

import (
	"seehuhn.de/go/geom/rect"

	"github.com/inamate/tikzgo/internal/geometry"
	"github.com/inamate/tikzgo/internal/shape"
)

// Scope is a nested environment whose options apply to its items only.
// Clips inside a scope end with it.
type Scope struct {
	Environment
}

// Code renders "\begin{scope}[...]", the indented items and "\end{scope}".
func (s *Scope) Code() string {
	return `\begin{scope}` + shape.Brackets(s.options) + "\n" + s.body("    ") + `\end{scope}`
}

// Clip restricts drawing to the area of a shape for the rest of the
// enclosing environment.
type Clip struct {
	Shape   shape.Shape
	Preview bool
}

// Code renders "\clip <path>;", or with Preview
// "\clip[preaction = {draw, <options>}] <path>;".
func (c *Clip) Code() string {
	if c.Preview {
		return `\clip[preaction = {draw, ` + c.Shape.Options() + `}] ` + c.Shape.Body() + ";"
	}
	return `\clip ` + c.Shape.Body() + ";"
}

func (c *Clip) ShiftInPlace(dx, dy float64)                          { c.Shape.ShiftInPlace(dx, dy) }
func (c *Clip) ScaleInPlace(s float64)                               { c.Shape.ScaleInPlace(s) }
func (c *Clip) RotateInPlace(a geometry.Angle, about geometry.Point) { c.Shape.RotateInPlace(a, about) }
func (c *Clip) Bounds() rect.Rect                                    { return c.Shape.Bounds() }
