package figure

import (
	"errors"
	"fmt"
)

// ErrTraceNotFound is returned when a named trace is not in the figure.
var ErrTraceNotFound = errors.New("trace not found")

// Doc is the document handed to the external charting runtime: the ordered
// trace list under "data" and the layout configuration under "layout".
type Doc struct {
	Data   []*Trace `json:"data"`
	Layout Layout   `json:"layout"`
}

// Figure is a mutable container for traces and layout configuration.
// Methods are not safe for concurrent use; figures are built and consumed
// on a single goroutine.
type Figure struct {
	traces []*Trace

	// Layout is the figure-level configuration. Callers may mutate it
	// directly or merge partial layouts with Layout.Apply.
	Layout Layout

	// XTitle and YTitle, when set, win over axis titles carried in Layout
	// at Doc time.
	XTitle string
	YTitle string
}

// Option configures a figure at construction.
type Option func(*Figure)

// WithTitle sets the figure title.
func WithTitle(title string) Option {
	return func(f *Figure) { f.Layout.Title = &Title{Text: title} }
}

// WithXTitle sets the x-axis title.
func WithXTitle(title string) Option {
	return func(f *Figure) { f.XTitle = title }
}

// WithYTitle sets the y-axis title.
func WithYTitle(title string) Option {
	return func(f *Figure) { f.YTitle = title }
}

// WithWidth sets the figure width in pixels.
func WithWidth(w int) Option {
	return func(f *Figure) { f.Layout.Width = w }
}

// WithHeight sets the figure height in pixels.
func WithHeight(h int) Option {
	return func(f *Figure) { f.Layout.Height = h }
}

// WithShowLegend toggles the legend.
func WithShowLegend(show bool) Option {
	return func(f *Figure) { f.Layout.ShowLegend = boolPtr(show) }
}

// WithVisibleAxes toggles visibility of both primary axes.
func WithVisibleAxes(visible bool) Option {
	return func(f *Figure) {
		f.Layout.EnsureXAxis().Visible = boolPtr(visible)
		f.Layout.EnsureYAxis().Visible = boolPtr(visible)
	}
}

// WithLayout merges a partial layout over the defaults. Options appearing
// after WithLayout still override it, and constructor options always win
// over the merged layout.
func WithLayout(l Layout) Option {
	return func(f *Figure) { f.Layout.Apply(l) }
}

// WithTraces seeds the figure's trace list.
func WithTraces(traces ...*Trace) Option {
	return func(f *Figure) { f.traces = append(f.traces, traces...) }
}

// New creates a figure with the default layout, then applies opts in order.
func New(opts ...Option) *Figure {
	f := &Figure{Layout: DefaultLayout()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Traces returns the figure's trace list. The slice is live: order is
// display order and callers may not rely on it across mutations.
func (f *Figure) Traces() []*Trace { return f.traces }

// AddTrace appends a trace to the display list.
func (f *Figure) AddTrace(t *Trace) { f.traces = append(f.traces, t) }

// SetTraces replaces the trace list.
func (f *Figure) SetTraces(traces []*Trace) { f.traces = traces }

// TraceNames returns trace names in display order.
func (f *Figure) TraceNames() []string {
	names := make([]string, len(f.traces))
	for i, t := range f.traces {
		names[i] = t.Name
	}
	return names
}

// PopTrace removes and returns the first trace with a matching name.
func (f *Figure) PopTrace(name string) (*Trace, error) {
	for i, t := range f.traces {
		if t.Name == name {
			f.traces = append(f.traces[:i], f.traces[i+1:]...)
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTraceNotFound, name)
}

// RemoveTraces removes the named traces. It fails on the first name not
// present, leaving earlier removals in place.
func (f *Figure) RemoveTraces(names ...string) error {
	for _, name := range names {
		if _, err := f.PopTrace(name); err != nil {
			return err
		}
	}
	return nil
}

// Width returns the figure width in pixels.
func (f *Figure) Width() int { return f.Layout.Width }

// SetWidth sets the figure width in pixels.
func (f *Figure) SetWidth(w int) { f.Layout.Width = w }

// Height returns the figure height in pixels.
func (f *Figure) Height() int { return f.Layout.Height }

// SetHeight sets the figure height in pixels.
func (f *Figure) SetHeight(h int) { f.Layout.Height = h }

// Doc assembles the renderable document. Explicit XTitle/YTitle override
// titles carried in the layout. An empty figure yields a single empty trace
// so the document always has a data entry.
func (f *Figure) Doc() Doc {
	layout := f.Layout
	if f.XTitle != "" {
		layout.EnsureXAxis().SetTitle(f.XTitle)
	}
	if f.YTitle != "" {
		layout.EnsureYAxis().SetTitle(f.YTitle)
	}

	data := f.traces
	if len(data) == 0 {
		data = []*Trace{{}}
	}
	return Doc{Data: data, Layout: layout}
}
