package shape

import (
	"seehuhn.de/go/geom/rect"

	"github.com/inamate/tikzgo/internal/geometry"
)

// Node is a text label. Standing alone it renders as a \node statement;
// attached to a path it renders inline after the path.
type Node struct {
	position *geometry.Point
	options  string
	Text     string
}

// NewNode returns a node. A nil position leaves placement to TikZ.
func NewNode(position *geometry.Point, options, text string) *Node {
	n := &Node{options: options, Text: text}
	if position != nil {
		p := *position
		n.position = &p
	}
	return n
}

// At is shorthand for a node placed at p.
func At(p geometry.Point, options, text string) *Node {
	return NewNode(&p, options, text)
}

func (n *Node) Kind() Kind                { return KindNode }
func (n *Node) Options() string           { return n.options }
func (n *Node) SetOptions(options string) { n.options = options }

// Position returns the node's position and whether it has one.
func (n *Node) Position() (geometry.Point, bool) {
	if n.position == nil {
		return geometry.Point{}, false
	}
	return *n.position, true
}

// SetPosition places the node at p.
func (n *Node) SetPosition(p geometry.Point) { n.position = &p }

// ClearPosition leaves placement to TikZ.
func (n *Node) ClearPosition() { n.position = nil }

// Body returns "at (x, y) { text }", or "{ text }" without a position.
func (n *Node) Body() string {
	if n.position == nil {
		return "{ " + n.Text + " }"
	}
	return "at " + n.position.String() + " { " + n.Text + " }"
}

// Code returns "\node[options] at (x, y) { text };".
func (n *Node) Code() string {
	return `\node` + Brackets(n.options) + " " + n.Body() + ";"
}

// Pivot is the node position, or the origin for unplaced nodes.
func (n *Node) Pivot() geometry.Point {
	p, _ := n.Position()
	return p
}

func (n *Node) Bounds() rect.Rect {
	if n.position == nil {
		return rect.Rect{}
	}
	return geometry.BoundsOf(*n.position)
}

func (n *Node) Clone() Shape { return n.clone() }

func (n *Node) clone() *Node {
	return NewNode(n.position, n.options, n.Text)
}

func (n *Node) ShiftInPlace(dx, dy float64) {
	if n.position != nil {
		n.position.ShiftInPlace(dx, dy)
	}
}

func (n *Node) ScaleInPlace(s float64) {
	if n.position != nil {
		n.position.ScaleInPlace(s)
	}
}

func (n *Node) RotateInPlace(a geometry.Angle, about geometry.Point) {
	if n.position != nil {
		n.position.RotateInPlace(a, about)
	}
}

func (n *Node) Shift(dx, dy float64) *Node                           { return Shifted(n, dx, dy) }
func (n *Node) Scale(s float64) *Node                                { return Scaled(n, s) }
func (n *Node) RotateAbout(a geometry.Angle, p geometry.Point) *Node { return Rotated(n, a, p) }
