package figure

// Line styles the outline of a filled trace.
type Line struct {
	Color string `json:"color,omitempty"`
}

// Marker styles point traces.
type Marker struct {
	Size   int    `json:"size,omitempty"`
	Symbol string `json:"symbol,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Trace is one renderable data series within a figure, in the scatter-trace
// shape the charting schema expects. XRef and YRef name the axes the trace is
// drawn against ("x", "x2", ...) and are rewritten when a figure is composed
// into a multi-panel grid.
type Trace struct {
	Type        string  `json:"type,omitempty"`
	X           []Coord `json:"x,omitempty"`
	Y           []Coord `json:"y,omitempty"`
	Mode        string  `json:"mode,omitempty"`
	Fill        string  `json:"fill,omitempty"`
	FillColor   string  `json:"fillcolor,omitempty"`
	Line        *Line   `json:"line,omitempty"`
	Marker      *Marker `json:"marker,omitempty"`
	Text        string  `json:"text,omitempty"`
	Name        string  `json:"name,omitempty"`
	LegendGroup string  `json:"legendgroup,omitempty"`
	ShowLegend  *bool   `json:"showlegend,omitempty"`
	HoverInfo   string  `json:"hoverinfo,omitempty"`
	XRef        string  `json:"xaxis,omitempty"`
	YRef        string  `json:"yaxis,omitempty"`
}

// MaxX returns the largest plottable x value, ignoring segment breaks.
func (t *Trace) MaxX() (float64, bool) { return MaxCoord(t.X) }

// MaxY returns the largest plottable y value, ignoring segment breaks.
func (t *Trace) MaxY() (float64, bool) { return MaxCoord(t.Y) }
