package picture

// ArrowsAlongPath draws a stealth arrow at the middle of every segment of
// a path. Add it with AddStyles, then draw with "arrows_along_path" or
// "arrows_along_path=red" to pass options to the arrows. It needs the
// decorations.markings library.
var ArrowsAlongPath = []Style{
	{Name: "arrows_along_path", Rules: `postaction={on each segment={mid arrow=#1}}`},
	{Name: "on each segment", Rules: `decorate, decoration={show path construction, ` +
		`moveto code={}, ` +
		`lineto code={\path [#1] (\tikzinputsegmentfirst) -- (\tikzinputsegmentlast);}, ` +
		`curveto code={\path [#1] (\tikzinputsegmentfirst) .. controls ` +
		`(\tikzinputsegmentsupporta) and (\tikzinputsegmentsupportb) .. (\tikzinputsegmentlast);}, ` +
		`closepath code={\path [#1] (\tikzinputsegmentfirst) -- (\tikzinputsegmentlast);},}`},
	{Name: "mid arrow", Rules: `postaction={decorate,decoration={markings, mark=at position .5 with {\arrow[#1]{stealth}}}}`},
}

// Presets maps the names accepted by documents to predefined style bundles.
var Presets = map[string][]Style{
	"arrows_along_path": ArrowsAlongPath,
}
