package figure

import "fmt"

// Domain is a normalized [0,1] coordinate range assigned to a sub-plot axis
// within a larger figure. It marshals as the two-element array the charting
// schema expects.
type Domain struct {
	Start, End float64
}

// MarshalJSON encodes the domain as [start, end].
func (d Domain) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%g,%g]", d.Start, d.End)), nil
}

// Span returns the extent of the domain.
func (d Domain) Span() float64 { return d.End - d.Start }

// Range is an axis data range, marshalled as [min, max].
type Range struct {
	Min, Max float64
}

// MarshalJSON encodes the range as [min, max].
func (r Range) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%g,%g]", r.Min, r.Max)), nil
}

// Title is a text label for a figure or an axis.
type Title struct {
	Text string `json:"text,omitempty"`
}

// Axis configures one plot axis: labelling, extent, placement within the
// figure, and tick styling. Nil pointer fields are "unset" and are skipped
// both when merging and when marshalling.
type Axis struct {
	Title          *Title   `json:"title,omitempty"`
	Visible        *bool    `json:"visible,omitempty"`
	Range          *Range   `json:"range,omitempty"`
	Domain         *Domain  `json:"domain,omitempty"`
	Anchor         string   `json:"anchor,omitempty"`
	Position       *float64 `json:"position,omitempty"`
	Overlaying     string   `json:"overlaying,omitempty"`
	ShowTickLabels *bool    `json:"showticklabels,omitempty"`
	Mirror         *bool    `json:"mirror,omitempty"`
	ShowGrid       *bool    `json:"showgrid,omitempty"`
	ShowLine       *bool    `json:"showline,omitempty"`
	Ticks          *string  `json:"ticks,omitempty"`
}

// Apply merges o into a, with set fields of o winning.
func (a *Axis) Apply(o *Axis) {
	if o == nil {
		return
	}
	if o.Title != nil {
		a.Title = o.Title
	}
	if o.Visible != nil {
		a.Visible = o.Visible
	}
	if o.Range != nil {
		a.Range = o.Range
	}
	if o.Domain != nil {
		a.Domain = o.Domain
	}
	if o.Anchor != "" {
		a.Anchor = o.Anchor
	}
	if o.Position != nil {
		a.Position = o.Position
	}
	if o.Overlaying != "" {
		a.Overlaying = o.Overlaying
	}
	if o.ShowTickLabels != nil {
		a.ShowTickLabels = o.ShowTickLabels
	}
	if o.Mirror != nil {
		a.Mirror = o.Mirror
	}
	if o.ShowGrid != nil {
		a.ShowGrid = o.ShowGrid
	}
	if o.ShowLine != nil {
		a.ShowLine = o.ShowLine
	}
	if o.Ticks != nil {
		a.Ticks = o.Ticks
	}
}

// SetTitle sets the axis title text, clearing it when s is empty.
func (a *Axis) SetTitle(s string) {
	if s == "" {
		a.Title = nil
		return
	}
	a.Title = &Title{Text: s}
}

// TitleText returns the axis title text, or "" when unset.
func (a *Axis) TitleText() string {
	if a == nil || a.Title == nil {
		return ""
	}
	return a.Title.Text
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

// TicksOn styles an axis for a labelled outer edge: tick labels shown,
// mirrored frame, no grid, axis line drawn.
func TicksOn(a *Axis) {
	a.ShowTickLabels = boolPtr(true)
	a.Mirror = boolPtr(true)
	a.ShowGrid = boolPtr(false)
	a.ShowLine = boolPtr(true)
}

// TicksOff styles an axis for an annotation track: framed but unlabelled,
// with tick marks suppressed.
func TicksOff(a *Axis) {
	a.ShowTickLabels = boolPtr(false)
	a.Mirror = boolPtr(true)
	a.ShowGrid = boolPtr(false)
	a.ShowLine = boolPtr(true)
	a.Ticks = strPtr("")
}
