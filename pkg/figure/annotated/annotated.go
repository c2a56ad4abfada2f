// Package annotated composes a main figure with auxiliary annotation tracks.
//
// An [Figure] wraps a core figure plus an optional left track and an optional
// bottom track, each itself a [figure.Figure] holding annotation shapes. At
// document-build time the composition partitions the unit square into panels:
// the main plot plus a narrow strip per track, with strip extent scaled
// proportionally to the track's feature range. Track axes are framed but
// unlabelled; the outer axes carry the titles and tick labels.
package annotated

import (
	"math"

	"github.com/genofig/genofig/pkg/figure"
)

// Panel geometry constants for the track strips, as fractions of the unit
// square. A track strip occupies trackExtent of the axis; the main panel
// starts at mainStart, leaving panelSpace between the two.
const (
	trackExtent = 0.099
	mainStart   = 0.109
	panelSpace  = 0.01
)

// Default dimensions for composed figures.
const (
	DefaultWidth  = 500
	DefaultHeight = 500
)

// Figure composes a core figure with optional left and bottom annotation
// tracks. Not safe for concurrent use.
type Figure struct {
	core   *figure.Figure
	left   *figure.Figure
	bottom *figure.Figure

	// Layout carries composition-level configuration merged over the core's
	// layout during build.
	Layout figure.Layout

	title  string
	xtitle string
	ytitle string
	xrange *figure.Range
	yrange *figure.Range

	traces     []*figure.Trace
	overlaying bool
}

// Option configures a composition at construction.
type Option func(*Figure)

// WithLeftTrack attaches a track rendered left of the main panel.
func WithLeftTrack(track *figure.Figure) Option {
	return func(f *Figure) { f.left = track }
}

// WithBottomTrack attaches a track rendered below the main panel.
func WithBottomTrack(track *figure.Figure) Option {
	return func(f *Figure) { f.bottom = track }
}

// WithTitle overrides the core figure's title.
func WithTitle(title string) Option {
	return func(f *Figure) { f.title = title }
}

// WithXTitle sets the shared x-axis title.
func WithXTitle(title string) Option {
	return func(f *Figure) { f.xtitle = title }
}

// WithYTitle sets the shared y-axis title.
func WithYTitle(title string) Option {
	return func(f *Figure) { f.ytitle = title }
}

// WithXRange fixes the main-panel x range.
func WithXRange(min, max float64) Option {
	return func(f *Figure) { f.xrange = &figure.Range{Min: min, Max: max} }
}

// WithYRange fixes the main-panel y range.
func WithYRange(min, max float64) Option {
	return func(f *Figure) { f.yrange = &figure.Range{Min: min, Max: max} }
}

// WithWidth sets the composed figure width in pixels.
func WithWidth(w int) Option {
	return func(f *Figure) { f.Layout.Width = w }
}

// WithHeight sets the composed figure height in pixels.
func WithHeight(h int) Option {
	return func(f *Figure) { f.Layout.Height = h }
}

// WithLayout merges a partial layout into the composition layout.
func WithLayout(l figure.Layout) Option {
	return func(f *Figure) { f.Layout.Apply(l) }
}

// New wraps core in a composition. The composition starts from the default
// figure layout at 500x500 with visible axes and a legend.
func New(core *figure.Figure, opts ...Option) *Figure {
	f := &Figure{
		core:   core,
		Layout: figure.DefaultLayout(),
	}
	f.Layout.Width = DefaultWidth
	f.Layout.Height = DefaultHeight
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Core returns the wrapped main figure.
func (f *Figure) Core() *figure.Figure { return f.core }

// LeftTrack returns the left annotation track, or nil.
func (f *Figure) LeftTrack() *figure.Figure { return f.left }

// BottomTrack returns the bottom annotation track, or nil.
func (f *Figure) BottomTrack() *figure.Figure { return f.bottom }

// RemoveTrack detaches the selected tracks and invalidates the cached trace
// assembly so the next Doc call rebuilds the layout.
func (f *Figure) RemoveTrack(left, bottom bool) {
	if left {
		f.left = nil
	}
	if bottom {
		f.bottom = nil
	}
	if left || bottom {
		f.traces = nil
	}
}

// Doc assembles the composed document. The build path depends on which
// tracks are attached: both tracks make a 2x2 grid, a single track a 2x1 or
// 1x2 split, and no tracks pass the core figure through with outer-axis
// styling.
func (f *Figure) Doc() figure.Doc {
	switch {
	case f.left != nil && f.bottom != nil:
		return f.build2x2()
	case f.bottom != nil:
		return f.build2x1()
	case f.left != nil:
		return f.build1x2()
	default:
		return f.buildCore("x", "y")
	}
}

// buildCore folds the core figure into the composition: the core's layout
// merges into the composition layout, its traces are rerouted to the given
// axes, and the core's own axes get outer styling. When a second y axis
// overlays the first, traces already bound to a y axis move to y3.
func (f *Figure) buildCore(xref, yref string) figure.Doc {
	if f.title != "" {
		f.core.Layout.Title = &figure.Title{Text: f.title}
	}
	doc := f.core.Doc()

	if y2 := f.Layout.YAxis2; y2 != nil && y2.Overlaying != "" && y2.Overlaying != "free" {
		f.overlaying = true
	}

	f.Layout.Apply(doc.Layout)
	for _, tr := range doc.Data {
		tr.XRef = xref
		if f.overlaying && tr.YRef != "" {
			tr.YRef = "y3"
		} else {
			tr.YRef = yref
		}
	}
	f.traces = doc.Data

	xa := doc.Layout.EnsureXAxis()
	xa.SetTitle(f.xtitle)
	figure.TicksOn(xa)
	ya := doc.Layout.EnsureYAxis()
	ya.SetTitle(f.ytitle)
	figure.TicksOn(ya)
	return doc
}

// trackRange returns the display range covering a track's trace extents,
// ignoring segment breaks: [0, floor(max)+1].
func trackRange(max float64) *figure.Range {
	return &figure.Range{Min: 0, Max: math.Floor(max) + 1}
}

// maxX returns the largest x vertex across traces, deduplicating legend
// entries by group as it goes: only the first trace of each group keeps its
// legend entry.
func maxX(traces []*figure.Trace, seen map[string]bool) float64 {
	var max float64
	for _, tr := range traces {
		if v, ok := tr.MaxX(); ok && v > max {
			max = v
		}
		dedupLegend(tr, seen)
	}
	return max
}

// maxY is the y-extent counterpart of maxX.
func maxY(traces []*figure.Trace, seen map[string]bool) float64 {
	var max float64
	for _, tr := range traces {
		if v, ok := tr.MaxY(); ok && v > max {
			max = v
		}
		dedupLegend(tr, seen)
	}
	return max
}

func dedupLegend(tr *figure.Trace, seen map[string]bool) {
	if seen[tr.LegendGroup] {
		tr.ShowLegend = boolPtr(false)
	}
	seen[tr.LegendGroup] = true
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(v float64) *float64 { return &v }

// build2x2 lays out the full grid: left track on (x, y), main panel on
// (x2, y2), bottom track on (x3, y3). Track strips scale proportionally to
// their feature ranges so a crowded track gets more room.
func (f *Figure) build2x2() figure.Doc {
	if f.traces == nil {
		f.buildCore("x2", "y2")
	}

	layout := figure.Layout{
		XAxis:  &figure.Axis{Anchor: "y", Domain: &figure.Domain{Start: 0, End: trackExtent}},
		XAxis2: &figure.Axis{Anchor: "y2", Domain: &figure.Domain{Start: mainStart, End: 1}},
		XAxis3: &figure.Axis{Anchor: "y3", Domain: &figure.Domain{Start: mainStart, End: 1}},
		YAxis:  &figure.Axis{Anchor: "x", Domain: &figure.Domain{Start: mainStart, End: 1}},
		YAxis2: &figure.Axis{Anchor: "x2", Domain: &figure.Domain{Start: mainStart, End: 1}},
		YAxis3: &figure.Axis{Anchor: "x3", Domain: &figure.Domain{Start: 0, End: trackExtent}},
	}
	layout.Apply(f.Layout)

	doc := figure.Doc{Layout: layout}
	doc.Data = append(doc.Data, f.traces...)

	// Main panel: fixed ranges, framed without labels.
	x2 := doc.Layout.XAxis2
	x2.Range = f.xrange
	figure.TicksOff(x2)
	y2 := doc.Layout.YAxis2
	y2.Range = f.yrange
	figure.TicksOff(y2)

	seen := make(map[string]bool)

	leftTraces := f.left.Traces()
	leftMax := maxX(leftTraces, seen)
	leftRange := trackRange(leftMax)

	bottomTraces := f.bottom.Traces()
	for _, tr := range bottomTraces {
		tr.XRef = "x3"
		tr.YRef = "y3"
	}
	bottomRange := trackRange(maxY(bottomTraces, seen))

	doc.Data = append(doc.Data, leftTraces...)
	doc.Data = append(doc.Data, bottomTraces...)

	// Outer axes carry the titles and labels.
	ya := doc.Layout.YAxis
	ya.SetTitle(f.ytitle)
	ya.Range = f.yrange
	figure.TicksOn(ya)

	x3 := doc.Layout.XAxis3
	x3.SetTitle(f.xtitle)
	x3.Range = f.xrange
	figure.TicksOn(x3)

	// Scale the strips proportionally to the busier track's extent.
	minRange := math.Min(leftRange.Max, bottomRange.Max)

	leftProp := leftRange.Max / minRange
	xa := doc.Layout.XAxis
	xa.Domain = &figure.Domain{Start: 0, End: leftProp * trackExtent}
	xa.Title = nil
	xa.Range = leftRange
	figure.TicksOff(xa)

	x2.Domain = &figure.Domain{Start: xa.Domain.End + panelSpace, End: 1}
	x3.Domain = &figure.Domain{Start: xa.Domain.End + panelSpace, End: 1}

	bottomProp := bottomRange.Max / minRange
	y3 := doc.Layout.YAxis3
	y3.Domain = &figure.Domain{Start: 0, End: bottomProp * trackExtent}
	y3.Title = nil
	y3.Range = bottomRange
	figure.TicksOff(y3)

	ya.Domain = &figure.Domain{Start: y3.Domain.End + panelSpace, End: 1}
	y2.Domain = &figure.Domain{Start: y3.Domain.End + panelSpace, End: 1}

	return doc
}

// build2x1 lays out a main panel over a bottom track.
func (f *Figure) build2x1() figure.Doc {
	if f.traces == nil {
		f.buildCore("x", "y")
	}

	layout := figure.Layout{
		XAxis:  &figure.Axis{Anchor: "y2", Domain: &figure.Domain{Start: 0, End: 1}},
		YAxis:  &figure.Axis{Anchor: "free", Domain: &figure.Domain{Start: 0.1135, End: 1}, Position: floatPtr(0)},
		YAxis2: &figure.Axis{Anchor: "x", Domain: &figure.Domain{Start: 0, End: 0.0985}},
	}
	if f.overlaying {
		f.Layout.YAxis3 = f.Layout.YAxis2
		f.Layout.YAxis2 = nil
		f.Layout.Legend = &figure.Legend{X: floatPtr(1.3)}
	}
	layout.Apply(f.Layout)

	doc := figure.Doc{Layout: layout}
	doc.Data = append(doc.Data, f.traces...)

	xa := doc.Layout.XAxis
	xa.SetTitle(f.xtitle)
	xa.Range = f.xrange
	figure.TicksOn(xa)
	ya := doc.Layout.YAxis
	ya.SetTitle(f.ytitle)
	ya.Range = f.yrange
	figure.TicksOn(ya)

	seen := make(map[string]bool)
	bottomTraces := f.bottom.Traces()
	for _, tr := range bottomTraces {
		tr.XRef = "x"
		tr.YRef = "y2"
	}
	bottomRange := trackRange(maxY(bottomTraces, seen))
	doc.Data = append(doc.Data, bottomTraces...)

	y2 := doc.Layout.YAxis2
	if y2 == nil {
		y2 = &figure.Axis{}
		doc.Layout.YAxis2 = y2
	}
	y2.Title = nil
	y2.Range = bottomRange
	figure.TicksOff(y2)

	return doc
}

// build1x2 lays out a left track beside the main panel.
func (f *Figure) build1x2() figure.Doc {
	if f.traces == nil {
		f.buildCore("x2", "y")
	}

	layout := figure.Layout{
		XAxis:  &figure.Axis{Anchor: "y", Domain: &figure.Domain{Start: 0, End: trackExtent}},
		XAxis2: &figure.Axis{Anchor: "free", Domain: &figure.Domain{Start: mainStart, End: 1}, Position: floatPtr(0)},
		YAxis:  &figure.Axis{Anchor: "x", Domain: &figure.Domain{Start: 0, End: 1}},
	}
	layout.Apply(f.Layout)

	doc := figure.Doc{Layout: layout}
	doc.Data = append(doc.Data, f.traces...)

	x2 := doc.Layout.XAxis2
	x2.SetTitle(f.xtitle)
	x2.Range = f.xrange
	figure.TicksOn(x2)
	ya := doc.Layout.YAxis
	ya.SetTitle(f.ytitle)
	ya.Range = f.yrange
	figure.TicksOn(ya)

	seen := make(map[string]bool)
	leftTraces := f.left.Traces()
	for _, tr := range leftTraces {
		tr.YRef = "y"
	}
	leftRange := trackRange(maxX(leftTraces, seen))
	doc.Data = append(doc.Data, leftTraces...)

	xa := doc.Layout.XAxis
	xa.Title = nil
	xa.Range = leftRange
	figure.TicksOff(xa)

	return doc
}
