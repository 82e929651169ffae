// Package shape implements the drawable TikZ primitives. Every primitive
// owns its geometry and style, renders its own statement, and supports
// shift, scale and rotate both as copies and in place.
package shape

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/geom/rect"

	"github.com/inamate/tikzgo/internal/geometry"
)

var (
	ErrInvalidAction = errors.New("invalid action")
	ErrNegativeSize  = errors.New("negative size")
	ErrArcRadius     = errors.New("invalid arc radius")
)

// Action is the verb a path statement is emitted with.
type Action string

const (
	ActionDraw     Action = "draw"
	ActionFill     Action = "fill"
	ActionFillDraw Action = "filldraw"
	ActionPath     Action = "path"
)

// Valid reports whether a is one of the four TikZ path verbs.
func (a Action) Valid() bool {
	switch a {
	case ActionDraw, ActionFill, ActionFillDraw, ActionPath:
		return true
	}
	return false
}

// ParseAction converts s, ignoring surrounding spaces, into an Action.
func ParseAction(s string) (Action, error) {
	a := Action(strings.TrimSpace(s))
	if a == "" {
		return ActionDraw, nil
	}
	if !a.Valid() {
		return "", fmt.Errorf("%w %q: must be draw, fill, filldraw or path", ErrInvalidAction, s)
	}
	return a, nil
}

// Kind identifies the concrete primitive behind a Shape.
type Kind string

const (
	KindLine      Kind = "line"
	KindCircle    Kind = "circle"
	KindEllipse   Kind = "ellipse"
	KindArc       Kind = "arc"
	KindRectangle Kind = "rectangle"
	KindPlot      Kind = "plot"
	KindNode      Kind = "node"
)

// Shape is implemented by every geometric primitive in this package.
type Shape interface {
	Kind() Kind
	// Code is the complete TikZ statement, terminated by a semicolon.
	Code() string
	// Body is the path specification without verb, options or label,
	// e.g. "(0, 0) circle (1cm)". Clips wrap it.
	Body() string
	Options() string
	// Pivot is the default center of rotation.
	Pivot() geometry.Point
	Bounds() rect.Rect
	Clone() Shape

	ShiftInPlace(dx, dy float64)
	ScaleInPlace(s float64)
	RotateInPlace(a geometry.Angle, about geometry.Point)
}

// Shifted returns a shifted copy of s, leaving s untouched.
func Shifted[S Shape](s S, dx, dy float64) S {
	c := s.Clone().(S)
	c.ShiftInPlace(dx, dy)
	return c
}

// Scaled returns a copy of s scaled by factor.
func Scaled[S Shape](s S, factor float64) S {
	c := s.Clone().(S)
	c.ScaleInPlace(factor)
	return c
}

// Rotated returns a copy of s rotated by a around about.
func Rotated[S Shape](s S, a geometry.Angle, about geometry.Point) S {
	c := s.Clone().(S)
	c.RotateInPlace(a, about)
	return c
}

// Option configures the style shared by all path primitives.
type Option func(*base)

// WithOptions sets the free-form TikZ option string, e.g. "thick, blue".
func WithOptions(options string) Option {
	return func(b *base) { b.options = options }
}

// WithAction selects the statement verb.
func WithAction(a Action) Option {
	return func(b *base) { b.action = a }
}

// WithLabel attaches n to the path.
func WithLabel(n *Node) Option {
	return func(b *base) { b.label = n }
}

// base holds the style every path primitive shares.
type base struct {
	options string
	action  Action
	label   *Node
}

func newBase(opts []Option) (base, error) {
	b := base{action: ActionDraw}
	for _, opt := range opts {
		opt(&b)
	}
	if !b.action.Valid() {
		return base{}, fmt.Errorf("%w %q", ErrInvalidAction, b.action)
	}
	return b, nil
}

func (b *base) Options() string           { return b.options }
func (b *base) SetOptions(options string) { b.options = options }
func (b *base) Action() Action            { return b.action }
func (b *base) Label() *Node              { return b.label }

// SetAction changes the statement verb, rejecting anything but the four
// TikZ path verbs.
func (b *base) SetAction(a Action) error {
	if !a.Valid() {
		return fmt.Errorf("%w %q", ErrInvalidAction, a)
	}
	b.action = a
	return nil
}

// AddLabel attaches a node with the given position (nil places it at the
// end of the path), options and text, replacing any previous label.
func (b *base) AddLabel(position *geometry.Point, options, text string) *Node {
	b.label = NewNode(position, options, text)
	return b.label
}

// RemoveLabel detaches the label.
func (b *base) RemoveLabel() { b.label = nil }

func (b *base) code(body string) string {
	var sb strings.Builder
	sb.WriteString(`\`)
	sb.WriteString(string(b.action))
	sb.WriteString(Brackets(b.options))
	sb.WriteString(" ")
	sb.WriteString(body)
	if b.label != nil {
		sb.WriteString(" node")
		sb.WriteString(Brackets(b.label.Options()))
		sb.WriteString(" ")
		sb.WriteString(b.label.Body())
	}
	sb.WriteString(";")
	return sb.String()
}

func (b base) clone() base {
	if b.label != nil {
		b.label = b.label.clone()
	}
	return b
}

func (b *base) shiftLabel(dx, dy float64) {
	if b.label != nil {
		b.label.ShiftInPlace(dx, dy)
	}
}

func (b *base) scaleLabel(s float64) {
	if b.label != nil {
		b.label.ScaleInPlace(s)
	}
}

func (b *base) rotateLabel(a geometry.Angle, about geometry.Point) {
	if b.label != nil {
		b.label.RotateInPlace(a, about)
	}
}

// Brackets wraps a non-empty option string in square brackets.
func Brackets(options string) string {
	if options == "" {
		return ""
	}
	return "[" + options + "]"
}

func cm(v float64) string {
	return geometry.FormatFloat(v) + "cm"
}

func joinPoints(points []geometry.Point, sep string) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, sep)
}
