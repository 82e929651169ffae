package picture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inamate/tikzgo/internal/geometry"
	"github.com/inamate/tikzgo/internal/shape"
	"github.com/inamate/tikzgo/internal/tikzfile"
)

// PictureOption configures a Picture at creation.
type PictureOption func(*Picture)

// WithOptions sets the tikzpicture option string.
func WithOptions(options string) PictureOption {
	return func(p *Picture) { p.options = options }
}

// Centered wraps the picture in a center environment.
func Centered() PictureOption {
	return func(p *Picture) { p.Center = true }
}

// Picture is a tikzpicture environment. Its identifier, assigned by the
// Session, is embedded in the sentinel comment lines that delimit the
// picture's block in an output file.
type Picture struct {
	Environment

	id     int
	styles []Style
	view   *[2]float64

	// Center wraps the picture in \begin{center} ... \end{center}.
	Center bool
}

// Style is a named TikZ style definition.
type Style struct {
	Name, Rules string
}

// ID returns the picture's session-scoped identifier.
func (p *Picture) ID() int { return p.id }

// Begin returns the sentinel line that opens the picture's block.
func (p *Picture) Begin() string {
	return "%__begin__tikzgo__id__(" + strconv.Itoa(p.id) + ")"
}

// End returns the sentinel line that closes the picture's block.
func (p *Picture) End() string {
	return "%__end__tikzgo__id__(" + strconv.Itoa(p.id) + ")"
}

// Tikzset defines a named style, emitted as
// "\tikzset{name/.style={rules}}" ahead of the picture. Redefining a
// name replaces its rules.
func (p *Picture) Tikzset(name, rules string) {
	for i := range p.styles {
		if p.styles[i].Name == name {
			p.styles[i].Rules = rules
			return
		}
	}
	p.styles = append(p.styles, Style{Name: name, Rules: rules})
}

// AddStyles defines each style in order, as Tikzset does.
func (p *Picture) AddStyles(styles ...Style) {
	for _, s := range styles {
		p.Tikzset(s.Name, s.Rules)
	}
}

// SetViewAngles sets the tikz-3dplot main coordinate frame: theta rotates
// it about the x axis and phi about the z axis, both in degrees. Items
// are only drawn in that frame under the tdplot_main_coords option.
func (p *Picture) SetViewAngles(theta, phi float64) {
	p.view = &[2]float64{theta, phi}
}

// ViewAngles returns the angles set by SetViewAngles.
func (p *Picture) ViewAngles() (theta, phi float64, ok bool) {
	if p.view == nil {
		return 0, 0, false
	}
	return p.view[0], p.view[1], true
}

// Code renders the complete block: sentinels, styles and view angles,
// the optional center wrapper and the tikzpicture with one item per line.
// It is recomputed from the current items on every call.
func (p *Picture) Code() string {
	var sb strings.Builder
	sb.WriteString(p.Begin() + "\n")
	for _, s := range p.styles {
		fmt.Fprintf(&sb, "\\tikzset{%s/.style={%s}}\n", s.Name, s.Rules)
	}
	if p.view != nil {
		fmt.Fprintf(&sb, "\\tdplotsetmaincoords{%s}{%s}\n",
			geometry.FormatFloat(p.view[0]), geometry.FormatFloat(p.view[1]))
	}
	if p.Center {
		sb.WriteString("\\begin{center}\n")
	}
	sb.WriteString(`\begin{tikzpicture}` + shape.Brackets(p.options) + "\n")
	sb.WriteString(p.body("    "))
	sb.WriteString("\\end{tikzpicture}\n")
	if p.Center {
		sb.WriteString("\\end{center}\n")
	}
	sb.WriteString(p.End() + "\n")
	return sb.String()
}

// Write stores the picture in the file at path, replacing the block
// previously written for this picture and leaving all other content
// untouched.
func (p *Picture) Write(path string) error {
	if err := tikzfile.WriteBlock(path, p.Begin(), p.End(), p.Code()); err != nil {
		return fmt.Errorf("write picture %d: %w", p.id, err)
	}
	return nil
}
