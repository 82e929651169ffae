package document

import "encoding/json"

// NewSampleDocument returns a small picture exercising most item kinds.
func NewSampleDocument() *Document {
	return &Document{
		Name:    "sample",
		Options: "scale=1.5",
		Styles:  []Style{{Name: "dot", Rules: "fill=black, inner sep=1pt"}},
		Items: []Item{
			{Kind: ItemLine, Options: "->, thick", Data: raw(LineData{Start: Coord{0, 0}, End: Coord{3, 0}})},
			{Kind: ItemLine, Options: "->, thick", Data: raw(LineData{Start: Coord{0, 0}, End: Coord{0, 3}})},
			{Kind: ItemCircle, Options: "blue", Data: raw(CircleData{Center: Coord{1, 1}, Radius: 0.5})},
			{Kind: ItemEllipse, Options: "red", Data: raw(EllipseData{Center: Coord{2, 2}, XAxis: 0.75, YAxis: 0.4})},
			{Kind: ItemArc, Options: "dashed", Data: raw(ArcData{
				Position: Coord{0, 0}, Start: 0, End: 90, Radius: 2.5, FromCenter: true,
			})},
			{
				Kind: ItemRectangle, Action: "filldraw", Options: "fill=gray!20",
				Label: &Label{Options: "above", Text: "box"},
				Data:  raw(RectangleData{Anchor: "center", At: Coord{2, 0.75}, Width: 0.8, Height: 0.5}),
			},
			{Kind: ItemPlot, Options: "green!50!black", Data: raw(PlotData{
				Points: []Coord{{0, 0}, {0.5, 0.25}, {1, 1}, {1.5, 2.25}}, PlotOptions: "smooth",
			})},
			{Kind: ItemScope, Options: "shift={(3, 3)}", Data: raw(ScopeData{Items: []Item{
				{Kind: ItemClip, Data: raw(ClipData{
					Shape: Item{Kind: ItemCircle, Data: raw(CircleData{Center: Coord{0, 0}, Radius: 0.5})},
				})},
				{Kind: ItemSegments, Data: raw(SegmentsData{Points: []Coord{{-1, -1}, {1, 1}, {1, -1}}, Closed: true})},
			}})},
			{Kind: ItemNode, Options: "dot", Data: raw(NodeData{Position: &Coord{0, 0}})},
			{Kind: ItemNode, Options: "below left", Data: raw(NodeData{Position: &Coord{0, 0}, Text: "$O$"})},
		},
	}
}

func raw(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
