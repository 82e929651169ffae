package document

import (
	"encoding/json"
	"fmt"

	"github.com/inamate/tikzgo/internal/geometry"
)

// Document is the JSON description of a single tikzpicture.
type Document struct {
	Name    string   `json:"name,omitempty"`
	Options string   `json:"options,omitempty"`
	Center  bool     `json:"center,omitempty"`
	View    *View    `json:"view,omitempty"`
	Presets []string `json:"presets,omitempty"`
	Styles  []Style  `json:"styles,omitempty"`
	Items   []Item   `json:"items"`
}

// View holds the tikz-3dplot viewing angles in degrees.
type View struct {
	Theta float64 `json:"theta"`
	Phi   float64 `json:"phi"`
}

// Style is a named \tikzset style.
type Style struct {
	Name  string `json:"name"`
	Rules string `json:"rules"`
}

type ItemKind string

const (
	ItemLine      ItemKind = "line"
	ItemCircle    ItemKind = "circle"
	ItemEllipse   ItemKind = "ellipse"
	ItemArc       ItemKind = "arc"
	ItemRectangle ItemKind = "rectangle"
	ItemPlot      ItemKind = "plot"
	ItemNode      ItemKind = "node"
	ItemCommand   ItemKind = "command"
	ItemSegments  ItemKind = "segments"
	ItemScope     ItemKind = "scope"
	ItemClip      ItemKind = "clip"
)

// Item is one drawable. Data holds the kind-specific fields.
type Item struct {
	Kind    ItemKind        `json:"kind"`
	Options string          `json:"options,omitempty"`
	Action  string          `json:"action,omitempty"`
	Label   *Label          `json:"label,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type Label struct {
	Position *Coord `json:"position,omitempty"`
	Options  string `json:"options,omitempty"`
	Text     string `json:"text"`
}

// Coord is a point written as [x, y] or [x, y, z].
type Coord []float64

func (c Coord) point() (geometry.Point, error) {
	switch len(c) {
	case 2:
		return geometry.Pt(c[0], c[1]), nil
	case 3:
		return geometry.Pt3(c[0], c[1], c[2]), nil
	}
	return geometry.Point{}, fmt.Errorf("coordinate %v: want 2 or 3 components", []float64(c))
}

func points(cs []Coord) ([]geometry.Point, error) {
	out := make([]geometry.Point, len(cs))
	for i, c := range cs {
		p, err := c.point()
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

type LineData struct {
	Start    Coord   `json:"start"`
	End      Coord   `json:"end"`
	Controls []Coord `json:"controls,omitempty"`
	To       string  `json:"to,omitempty"`
}

type CircleData struct {
	Center Coord   `json:"center"`
	Radius float64 `json:"radius"`
}

type EllipseData struct {
	Center Coord   `json:"center"`
	XAxis  float64 `json:"xAxis"`
	YAxis  float64 `json:"yAxis"`
}

// ArcData angles are degrees unless Radians is set.
type ArcData struct {
	Position   Coord   `json:"position"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Radians    bool    `json:"radians,omitempty"`
	Radius     float64 `json:"radius,omitempty"`
	XRadius    float64 `json:"xRadius,omitempty"`
	YRadius    float64 `json:"yRadius,omitempty"`
	FromCenter bool    `json:"fromCenter,omitempty"`
}

// RectangleData is either two opposite corners, or an anchor point with a
// size. Anchor is one of center, north, east, south, west or lowerLeft.
type RectangleData struct {
	Left   Coord   `json:"left,omitempty"`
	Right  Coord   `json:"right,omitempty"`
	Anchor string  `json:"anchor,omitempty"`
	At     Coord   `json:"at,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

type PlotData struct {
	Points      []Coord `json:"points"`
	PlotOptions string  `json:"plotOptions,omitempty"`
	Relative    bool    `json:"relative,omitempty"`
}

type NodeData struct {
	Position *Coord `json:"position,omitempty"`
	Text     string `json:"text"`
}

type CommandData struct {
	Statement string `json:"statement"`
}

type SegmentsData struct {
	Points []Coord `json:"points"`
	Closed bool    `json:"closed,omitempty"`
}

type ScopeData struct {
	Items []Item `json:"items"`
}

type ClipData struct {
	Shape   Item `json:"shape"`
	Preview bool `json:"preview,omitempty"`
}
