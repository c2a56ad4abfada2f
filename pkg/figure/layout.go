package figure

// Margin is the whitespace around the plot area, in pixels.
type Margin struct {
	L   int `json:"l"`
	R   int `json:"r"`
	T   int `json:"t"`
	B   int `json:"b"`
	Pad int `json:"pad"`
}

// Font selects the typeface for figure text.
type Font struct {
	Family string `json:"family,omitempty"`
	Size   int    `json:"size,omitempty"`
}

// Legend positions the figure legend.
type Legend struct {
	X *float64 `json:"x,omitempty"`
}

// Layout is the typed figure-level configuration: title, sizing, and up to
// three axes per direction. Three is what the 2x2 track composition needs;
// nothing in this module produces more.
type Layout struct {
	Font       *Font   `json:"font,omitempty"`
	AutoSize   *bool   `json:"autosize,omitempty"`
	HoverMode  string  `json:"hovermode,omitempty"`
	Margin     *Margin `json:"margin,omitempty"`
	Title      *Title  `json:"title,omitempty"`
	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
	ShowLegend *bool   `json:"showlegend,omitempty"`
	Legend     *Legend `json:"legend,omitempty"`

	// Meta carries generator metadata through the document without
	// affecting the drawing.
	Meta map[string]string `json:"meta,omitempty"`

	XAxis  *Axis `json:"xaxis,omitempty"`
	XAxis2 *Axis `json:"xaxis2,omitempty"`
	XAxis3 *Axis `json:"xaxis3,omitempty"`
	YAxis  *Axis `json:"yaxis,omitempty"`
	YAxis2 *Axis `json:"yaxis2,omitempty"`
	YAxis3 *Axis `json:"yaxis3,omitempty"`
}

// DefaultLayout returns the base layout every figure starts from.
func DefaultLayout() Layout {
	return Layout{
		Font:       &Font{Family: "Balto", Size: 14},
		AutoSize:   boolPtr(false),
		HoverMode:  "closest",
		Margin:     &Margin{L: 50, R: 50, T: 50, B: 50, Pad: 4},
		ShowLegend: boolPtr(true),
		XAxis:      &Axis{Visible: boolPtr(true)},
		YAxis:      &Axis{Visible: boolPtr(true)},
	}
}

// Apply merges o into l, with set fields of o winning. Axes merge field-wise
// so a partial override (say, just a range) keeps existing tick styling.
func (l *Layout) Apply(o Layout) {
	if o.Font != nil {
		l.Font = o.Font
	}
	if o.AutoSize != nil {
		l.AutoSize = o.AutoSize
	}
	if o.HoverMode != "" {
		l.HoverMode = o.HoverMode
	}
	if o.Margin != nil {
		l.Margin = o.Margin
	}
	if o.Title != nil {
		l.Title = o.Title
	}
	if o.Width != 0 {
		l.Width = o.Width
	}
	if o.Height != 0 {
		l.Height = o.Height
	}
	if o.ShowLegend != nil {
		l.ShowLegend = o.ShowLegend
	}
	if o.Legend != nil {
		l.Legend = o.Legend
	}
	if o.Meta != nil {
		l.Meta = o.Meta
	}
	mergeAxis(&l.XAxis, o.XAxis)
	mergeAxis(&l.XAxis2, o.XAxis2)
	mergeAxis(&l.XAxis3, o.XAxis3)
	mergeAxis(&l.YAxis, o.YAxis)
	mergeAxis(&l.YAxis2, o.YAxis2)
	mergeAxis(&l.YAxis3, o.YAxis3)
}

func mergeAxis(dst **Axis, src *Axis) {
	if src == nil {
		return
	}
	if *dst == nil {
		*dst = &Axis{}
	}
	(*dst).Apply(src)
}

// EnsureXAxis returns the primary x axis, allocating it if unset.
func (l *Layout) EnsureXAxis() *Axis {
	if l.XAxis == nil {
		l.XAxis = &Axis{}
	}
	return l.XAxis
}

// EnsureYAxis returns the primary y axis, allocating it if unset.
func (l *Layout) EnsureYAxis() *Axis {
	if l.YAxis == nil {
		l.YAxis = &Axis{}
	}
	return l.YAxis
}
