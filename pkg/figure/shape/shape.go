package shape

import (
	"errors"
	"math"

	"github.com/genofig/genofig/pkg/figure"
)

// Geometry defaults shared by the primitive constructors.
const (
	DefaultHeight    = 0.25
	DefaultHeadWidth = 0.1
	DefaultPointSize = 14
	DefaultSymbol    = "square"
)

// ErrNoSpans is returned when a primitive is built without coordinates.
var ErrNoSpans = errors.New("no coordinates defined")

// Span is one contiguous coordinate interval of a feature. Start may exceed
// End for features read in reverse; constructors normalize the extent but
// keep the original endpoints for connector segments.
type Span struct {
	Start, End float64
}

// width returns the absolute extent and the left edge of the span.
func (s Span) width() (w, left float64) {
	return math.Abs(s.Start - s.End), math.Min(s.Start, s.End)
}

// Shape is one renderable primitive: vertex coordinates plus labelling.
// Vertices with coordinate breaks (see [figure.Break]) separate the polygon
// segments of multi-span shapes.
type Shape struct {
	X, Y []figure.Coord

	Name        string
	Text        string
	Filled      bool
	FillColor   string
	LegendGroup string
	ShowLegend  bool
	HoverInfo   string

	mode   string
	marker *figure.Marker
}

// Option configures a primitive at construction.
type Option func(*Shape)

// WithName sets the legend name of the shape.
func WithName(name string) Option { return func(s *Shape) { s.Name = name } }

// WithText sets the hover text.
func WithText(text string) Option { return func(s *Shape) { s.Text = text } }

// WithFillColor sets the fill (and outline) color.
func WithFillColor(color string) Option { return func(s *Shape) { s.FillColor = color } }

// WithLegendGroup groups the shape with others sharing a legend entry.
func WithLegendGroup(group string) Option { return func(s *Shape) { s.LegendGroup = group } }

// WithShowLegend toggles the legend entry.
func WithShowLegend(show bool) Option { return func(s *Shape) { s.ShowLegend = show } }

// WithHoverInfo overrides the hover detail selector.
func WithHoverInfo(info string) Option { return func(s *Shape) { s.HoverInfo = info } }

// WithSize sets the marker size of a point shape. Other primitives ignore it.
func WithSize(size int) Option {
	return func(s *Shape) {
		if s.marker != nil {
			s.marker.Size = size
		}
	}
}

// WithSymbol sets the marker symbol of a point shape. Other primitives ignore it.
func WithSymbol(symbol string) Option {
	return func(s *Shape) {
		if s.marker != nil {
			s.marker.Symbol = symbol
		}
	}
}

func newShape(mode string, opts ...Option) *Shape {
	s := &Shape{
		Filled:     true,
		ShowLegend: true,
		mode:       mode,
	}
	if mode == "markers" {
		s.marker = &figure.Marker{Size: DefaultPointSize, Symbol: DefaultSymbol}
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.HoverInfo == "" {
		s.HoverInfo = s.Name
	}
	return s
}

// Shift translates the shape by (dx, dy), skipping segment breaks.
// It returns the shape for chaining.
func (s *Shape) Shift(dx, dy float64) *Shape {
	for i, c := range s.X {
		if !c.IsBreak() {
			s.X[i] = c + figure.Coord(dx)
		}
	}
	for i, c := range s.Y {
		if !c.IsBreak() {
			s.Y[i] = c + figure.Coord(dy)
		}
	}
	return s
}

// Top returns the largest y vertex.
func (s *Shape) Top() float64 {
	v, _ := figure.MaxCoord(s.Y)
	return v
}

// Bottom returns the smallest y vertex.
func (s *Shape) Bottom() float64 {
	v, _ := figure.MinCoord(s.Y)
	return v
}

// Height returns the vertical extent of the shape.
func (s *Shape) Height() float64 { return s.Top() - s.Bottom() }

// Middle returns the vertical midpoint of the shape.
func (s *Shape) Middle() float64 { return s.Bottom() + s.Height()/2 }

// Transpose swaps the x and y vertex sequences, so a shape laid out along
// the x axis renders on a vertical (left) track. It returns the shape for
// chaining.
func (s *Shape) Transpose() *Shape {
	s.X, s.Y = s.Y, s.X
	return s
}

// AsTrace converts the shape into a figure trace. name, when non-empty,
// overrides the shape's own name.
func (s *Shape) AsTrace(name string) *figure.Trace {
	if name == "" {
		name = s.Name
	}
	show := s.ShowLegend
	tr := &figure.Trace{
		Type:        "scatter",
		X:           s.X,
		Y:           s.Y,
		Mode:        s.mode,
		Fill:        "toself",
		FillColor:   s.FillColor,
		Line:        &figure.Line{Color: s.FillColor},
		Text:        s.Text,
		Name:        name,
		LegendGroup: s.LegendGroup,
		ShowLegend:  &show,
		HoverInfo:   "text",
	}
	if s.marker != nil {
		m := *s.marker
		if m.Color == "" {
			m.Color = s.FillColor
		}
		tr.Marker = &m
	}
	return tr
}
