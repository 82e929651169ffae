// Package document turns a JSON picture description into a
// picture.Picture.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/inamate/tikzgo/internal/geometry"
	"github.com/inamate/tikzgo/internal/picture"
	"github.com/inamate/tikzgo/internal/shape"
)

var (
	ErrInvalidDocument = errors.New("invalid document")
	ErrUnknownKind     = errors.New("unknown item kind")
	ErrUnknownPreset   = errors.New("unknown style preset")
)

// ItemError reports the item a build failed on.
type ItemError struct {
	Path string
	Kind ItemKind
	Err  error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%v: %s (%s): %v", ErrInvalidDocument, e.Path, e.Kind, e.Err)
}

func (e *ItemError) Unwrap() []error { return []error{ErrInvalidDocument, e.Err} }

// Parse decodes a document, rejecting unknown fields.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := strictUnmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// ParseItem decodes a single item.
func ParseItem(data []byte) (Item, error) {
	var it Item
	if err := strictUnmarshal(data, &it); err != nil {
		return Item{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return it, nil
}

func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Build creates a picture in s holding every item of doc. Errors name the
// offending item by its path, e.g. "items[2].items[0]".
func Build(doc *Document, s *picture.Session) (*picture.Picture, error) {
	opts := []picture.PictureOption{picture.WithOptions(doc.Options)}
	if doc.Center {
		opts = append(opts, picture.Centered())
	}
	pic := s.NewPicture(opts...)
	if doc.View != nil {
		pic.SetViewAngles(doc.View.Theta, doc.View.Phi)
	}
	for i, name := range doc.Presets {
		styles, ok := picture.Presets[name]
		if !ok {
			return nil, fmt.Errorf("%w: presets[%d]: %w %q", ErrInvalidDocument, i, ErrUnknownPreset, name)
		}
		pic.AddStyles(styles...)
	}
	for i, st := range doc.Styles {
		if st.Name == "" {
			return nil, fmt.Errorf("%w: styles[%d]: empty name", ErrInvalidDocument, i)
		}
		pic.Tikzset(st.Name, st.Rules)
	}
	if err := drawItems(&pic.Environment, doc.Items, "items"); err != nil {
		return nil, err
	}
	return pic, nil
}

func drawItems(env *picture.Environment, items []Item, path string) error {
	for i, it := range items {
		at := fmt.Sprintf("%s[%d]", path, i)
		if err := drawItem(env, it, at); err != nil {
			var ie *ItemError
			if errors.As(err, &ie) {
				return err
			}
			return &ItemError{Path: at, Kind: it.Kind, Err: err}
		}
	}
	return nil
}

func drawItem(env *picture.Environment, it Item, path string) error {
	switch it.Kind {
	case ItemScope:
		var d ScopeData
		if err := decode(it, &d); err != nil {
			return err
		}
		sc := env.Scope(it.Options)
		return drawItems(&sc.Environment, d.Items, path+".items")

	case ItemClip:
		var d ClipData
		if err := decode(it, &d); err != nil {
			return err
		}
		s, err := NewShape(d.Shape)
		if err != nil {
			return fmt.Errorf("shape: %w", err)
		}
		env.Clip(s, d.Preview)
		return nil

	case ItemCommand:
		var d CommandData
		if err := decode(it, &d); err != nil {
			return err
		}
		if strings.TrimSpace(d.Statement) == "" {
			return errors.New("empty statement")
		}
		env.Command(d.Statement)
		return nil

	case ItemSegments:
		var d SegmentsData
		if err := decode(it, &d); err != nil {
			return err
		}
		pts, err := points(d.Points)
		if err != nil {
			return err
		}
		opts, err := styleOptions(it)
		if err != nil {
			return err
		}
		_, err = env.Segments(pts, d.Closed, opts...)
		return err
	}

	s, err := NewShape(it)
	if err != nil {
		return err
	}
	env.Draw(s)
	return nil
}

// NewShape builds the primitive described by it without drawing it.
// Scopes, clips, commands and segments are not primitives.
func NewShape(it Item) (shape.Shape, error) {
	if it.Kind == ItemNode {
		var d NodeData
		if err := decode(it, &d); err != nil {
			return nil, err
		}
		var pos *geometry.Point
		if d.Position != nil {
			p, err := d.Position.point()
			if err != nil {
				return nil, err
			}
			pos = &p
		}
		return shape.NewNode(pos, it.Options, d.Text), nil
	}

	opts, err := styleOptions(it)
	if err != nil {
		return nil, err
	}

	switch it.Kind {
	case ItemLine:
		var d LineData
		if err := decode(it, &d); err != nil {
			return nil, err
		}
		start, err := d.Start.point()
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		end, err := d.End.point()
		if err != nil {
			return nil, fmt.Errorf("end: %w", err)
		}
		ctrl, err := points(d.Controls)
		if err != nil {
			return nil, fmt.Errorf("controls: %w", err)
		}
		l, err := shape.NewCurve(start, end, ctrl, opts...)
		if err != nil {
			return nil, err
		}
		l.ToOptions = d.To
		return l, nil

	case ItemCircle:
		var d CircleData
		if err := decode(it, &d); err != nil {
			return nil, err
		}
		c, err := d.Center.point()
		if err != nil {
			return nil, err
		}
		return shape.NewCircle(c, d.Radius, opts...)

	case ItemEllipse:
		var d EllipseData
		if err := decode(it, &d); err != nil {
			return nil, err
		}
		c, err := d.Center.point()
		if err != nil {
			return nil, err
		}
		return shape.NewEllipse(c, d.XAxis, d.YAxis, opts...)

	case ItemArc:
		var d ArcData
		if err := decode(it, &d); err != nil {
			return nil, err
		}
		p, err := d.Position.point()
		if err != nil {
			return nil, err
		}
		angle := geometry.Deg
		if d.Radians {
			angle = geometry.Rad
		}
		return shape.NewArc(p, shape.ArcGeometry{
			Start:      angle(d.Start),
			End:        angle(d.End),
			Radius:     d.Radius,
			XRadius:    d.XRadius,
			YRadius:    d.YRadius,
			FromCenter: d.FromCenter,
		}, opts...)

	case ItemRectangle:
		var d RectangleData
		if err := decode(it, &d); err != nil {
			return nil, err
		}
		return newRectangle(d, opts)

	case ItemPlot:
		var d PlotData
		if err := decode(it, &d); err != nil {
			return nil, err
		}
		pts, err := points(d.Points)
		if err != nil {
			return nil, err
		}
		if d.Relative {
			return shape.NewRelativePlot(pts, d.PlotOptions, opts...)
		}
		return shape.NewPlot(pts, d.PlotOptions, opts...)
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownKind, it.Kind)
}

var anchors = map[string]func(geometry.Point, float64, float64, ...shape.Option) (*shape.Rectangle, error){
	"center":    shape.RectangleFromCenter,
	"north":     shape.RectangleFromNorth,
	"east":      shape.RectangleFromEast,
	"south":     shape.RectangleFromSouth,
	"west":      shape.RectangleFromWest,
	"lowerLeft": shape.NewRectangleSized,
}

func newRectangle(d RectangleData, opts []shape.Option) (*shape.Rectangle, error) {
	if d.Anchor == "" {
		left, err := d.Left.point()
		if err != nil {
			return nil, fmt.Errorf("left: %w", err)
		}
		right, err := d.Right.point()
		if err != nil {
			return nil, fmt.Errorf("right: %w", err)
		}
		return shape.NewRectangle(left, right, opts...)
	}
	from, ok := anchors[d.Anchor]
	if !ok {
		return nil, fmt.Errorf("unknown anchor %q", d.Anchor)
	}
	p, err := d.At.point()
	if err != nil {
		return nil, fmt.Errorf("at: %w", err)
	}
	return from(p, d.Width, d.Height, opts...)
}

func styleOptions(it Item) ([]shape.Option, error) {
	action, err := shape.ParseAction(it.Action)
	if err != nil {
		return nil, err
	}
	opts := []shape.Option{shape.WithOptions(it.Options), shape.WithAction(action)}
	if it.Label != nil {
		var pos *geometry.Point
		if it.Label.Position != nil {
			p, err := it.Label.Position.point()
			if err != nil {
				return nil, fmt.Errorf("label: %w", err)
			}
			pos = &p
		}
		opts = append(opts, shape.WithLabel(shape.NewNode(pos, it.Label.Options, it.Label.Text)))
	}
	return opts, nil
}

func decode(it Item, v any) error {
	if len(it.Data) == 0 {
		return errors.New("missing data")
	}
	if err := strictUnmarshal(it.Data, v); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	return nil
}
