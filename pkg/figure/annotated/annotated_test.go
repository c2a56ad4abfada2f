package annotated

import (
	"math"
	"testing"

	"github.com/genofig/genofig/pkg/figure"
	"github.com/genofig/genofig/pkg/figure/shape"
)

// bottomTrackFigure stacks one arrow shape per row along the y axis, all in
// the same legend group. Row r sits at y=r with height 0.25 and head
// overhang 0.05, so rows rows reach y = rows-1+0.3.
func bottomTrackFigure(t *testing.T, group string, rows int) *figure.Figure {
	t.Helper()
	track := figure.New(figure.WithVisibleAxes(false))
	for row := 0; row < rows; row++ {
		s, err := shape.Make("gene", group, []shape.Span{{Start: 0, End: 100}},
			shape.AtY(float64(row)), shape.WithShapeOptions(shape.WithLegendGroup(group)))
		if err != nil {
			t.Fatalf("shape.Make() error: %v", err)
		}
		track.AddTrace(s.AsTrace(""))
	}
	return track
}

// trackFigure builds a left track: the same stacked shapes, transposed so
// the stacking extends along the x axis.
func trackFigure(t *testing.T, group string, rows int) *figure.Figure {
	t.Helper()
	track := figure.New(figure.WithVisibleAxes(false))
	for row := 0; row < rows; row++ {
		s, err := shape.Make("gene", group, []shape.Span{{Start: 0, End: 100}},
			shape.AtY(float64(row)), shape.WithShapeOptions(shape.WithLegendGroup(group)))
		if err != nil {
			t.Fatalf("shape.Make() error: %v", err)
		}
		track.AddTrace(s.Transpose().AsTrace(""))
	}
	return track
}

func coreFigure() *figure.Figure {
	f := figure.New()
	f.AddTrace(&figure.Trace{
		Type: "scatter",
		X:    []figure.Coord{0, 100},
		Y:    []figure.Coord{0, 100},
		Name: "dotplot",
	})
	return f
}

func TestDocNoTracks(t *testing.T) {
	f := New(coreFigure(), WithXTitle("seq1"), WithYTitle("seq2"))
	doc := f.Doc()

	if len(doc.Data) != 1 {
		t.Fatalf("Data length = %d, want 1", len(doc.Data))
	}
	if doc.Data[0].XRef != "x" || doc.Data[0].YRef != "y" {
		t.Errorf("core trace axes = %q/%q, want x/y", doc.Data[0].XRef, doc.Data[0].YRef)
	}
	if got := doc.Layout.XAxis.TitleText(); got != "seq1" {
		t.Errorf("x title = %q, want seq1", got)
	}
	if doc.Layout.XAxis.ShowTickLabels == nil || !*doc.Layout.XAxis.ShowTickLabels {
		t.Error("outer x axis should show tick labels")
	}
}

func TestDocDefaultSize(t *testing.T) {
	f := New(coreFigure(), WithBottomTrack(bottomTrackFigure(t, "gene", 1)))
	doc := f.Doc()
	if doc.Layout.Width != DefaultWidth || doc.Layout.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", doc.Layout.Width, doc.Layout.Height, DefaultWidth, DefaultHeight)
	}
}

func TestDocBottomOnly(t *testing.T) {
	f := New(coreFigure(),
		WithBottomTrack(bottomTrackFigure(t, "gene", 2)),
		WithXTitle("position"),
	)
	doc := f.Doc()

	// Core trace plus two track traces.
	if len(doc.Data) != 3 {
		t.Fatalf("Data length = %d, want 3", len(doc.Data))
	}
	for _, tr := range doc.Data[1:] {
		if tr.XRef != "x" || tr.YRef != "y2" {
			t.Errorf("track trace axes = %q/%q, want x/y2", tr.XRef, tr.YRef)
		}
	}

	// Panel split: main panel above, track strip below.
	ya := doc.Layout.YAxis
	y2 := doc.Layout.YAxis2
	if ya.Domain == nil || y2.Domain == nil {
		t.Fatal("missing panel domains")
	}
	if y2.Domain.End >= ya.Domain.Start {
		t.Errorf("track strip [%v,%v] should sit below main panel [%v,%v]",
			y2.Domain.Start, y2.Domain.End, ya.Domain.Start, ya.Domain.End)
	}
	if ya.Domain.End != 1 || y2.Domain.Start != 0 {
		t.Error("panels should tile the full unit interval")
	}

	// Track range covers the stacked shapes: rows at y=0 and y=1, height
	// 0.25, head overhang 0.05, so max y = 1.3 and range [0, 2].
	if y2.Range == nil || y2.Range.Max != 2 {
		t.Errorf("track range = %+v, want [0,2]", y2.Range)
	}
	if y2.ShowTickLabels == nil || *y2.ShowTickLabels {
		t.Error("track axis should hide tick labels")
	}
}

func TestDocBottomOnlyLegendDedup(t *testing.T) {
	f := New(coreFigure(), WithBottomTrack(bottomTrackFigure(t, "gene", 3)))
	doc := f.Doc()

	visible := 0
	for _, tr := range doc.Data[1:] {
		if tr.ShowLegend == nil || *tr.ShowLegend {
			visible++
		}
	}
	if visible != 1 {
		t.Errorf("visible legend entries = %d, want 1 per legend group", visible)
	}
}

func TestDocLeftOnly(t *testing.T) {
	f := New(coreFigure(), WithLeftTrack(trackFigure(t, "gene", 1)))
	doc := f.Doc()

	// Core trace rerouted to the second x axis.
	if doc.Data[0].XRef != "x2" {
		t.Errorf("core trace x axis = %q, want x2", doc.Data[0].XRef)
	}
	for _, tr := range doc.Data[1:] {
		if tr.YRef != "y" {
			t.Errorf("left track trace y axis = %q, want y", tr.YRef)
		}
	}

	xa := doc.Layout.XAxis
	x2 := doc.Layout.XAxis2
	if xa.Domain.End+panelSpace != x2.Domain.Start {
		t.Errorf("strip end %v + space %v != main start %v", xa.Domain.End, panelSpace, x2.Domain.Start)
	}
	if xa.Range == nil || xa.Range.Min != 0 {
		t.Errorf("left track range = %+v, want starting at 0", xa.Range)
	}
}

func TestDocBothTracksProportionalStrips(t *testing.T) {
	// Left track stacked three deep, bottom track one deep: the left strip
	// should widen proportionally while the bottom keeps the base extent.
	f := New(coreFigure(),
		WithLeftTrack(trackFigure(t, "gene", 3)),
		WithBottomTrack(bottomTrackFigure(t, "repeat", 1)),
	)
	doc := f.Doc()

	xa, x2, x3 := doc.Layout.XAxis, doc.Layout.XAxis2, doc.Layout.XAxis3
	ya, y2, y3 := doc.Layout.YAxis, doc.Layout.YAxis2, doc.Layout.YAxis3

	// Three transposed left rows reach x=2.3 giving range [0,3]; the single
	// bottom row stays under y=1 giving [0,1]. leftProp = 3/1 = 3.
	wantLeftEnd := 3 * trackExtent
	if !approx(xa.Domain.End, wantLeftEnd) {
		t.Errorf("left strip end = %v, want %v", xa.Domain.End, wantLeftEnd)
	}
	if !approx(x2.Domain.Start, wantLeftEnd+panelSpace) {
		t.Errorf("main panel start = %v, want %v", x2.Domain.Start, wantLeftEnd+panelSpace)
	}
	if x3.Domain.Start != x2.Domain.Start {
		t.Errorf("bottom panel start %v != main panel start %v", x3.Domain.Start, x2.Domain.Start)
	}

	if !approx(y3.Domain.End, trackExtent) {
		t.Errorf("bottom strip end = %v, want %v", y3.Domain.End, trackExtent)
	}
	if !approx(ya.Domain.Start, trackExtent+panelSpace) || ya.Domain.Start != y2.Domain.Start {
		t.Errorf("upper panels start = %v/%v, want %v", ya.Domain.Start, y2.Domain.Start, trackExtent+panelSpace)
	}

	// Core traces route to the main panel, bottom traces to (x3, y3).
	if doc.Data[0].XRef != "x2" || doc.Data[0].YRef != "y2" {
		t.Errorf("core trace axes = %q/%q, want x2/y2", doc.Data[0].XRef, doc.Data[0].YRef)
	}
	last := doc.Data[len(doc.Data)-1]
	if last.XRef != "x3" || last.YRef != "y3" {
		t.Errorf("bottom trace axes = %q/%q, want x3/y3", last.XRef, last.YRef)
	}
}

func TestDocBothTracksLegendSharedAcrossTracks(t *testing.T) {
	// The same legend group on both tracks shows a single entry.
	f := New(coreFigure(),
		WithLeftTrack(trackFigure(t, "gene", 2)),
		WithBottomTrack(bottomTrackFigure(t, "gene", 2)),
	)
	doc := f.Doc()

	visible := 0
	for _, tr := range doc.Data[1:] {
		if tr.ShowLegend == nil || *tr.ShowLegend {
			visible++
		}
	}
	if visible != 1 {
		t.Errorf("visible legend entries = %d, want 1 across both tracks", visible)
	}
}

func TestRemoveTrack(t *testing.T) {
	f := New(coreFigure(),
		WithLeftTrack(trackFigure(t, "gene", 1)),
		WithBottomTrack(bottomTrackFigure(t, "gene", 1)),
	)
	_ = f.Doc()

	f.RemoveTrack(true, false)
	if f.LeftTrack() != nil {
		t.Error("left track should be removed")
	}
	if f.BottomTrack() == nil {
		t.Error("bottom track should remain")
	}

	doc := f.Doc()
	// Rebuilt as a 2x1 composition: no third x axis in play.
	for _, tr := range doc.Data {
		if tr.XRef == "x3" {
			t.Error("removed track still routed to x3")
		}
	}
}

func TestDocTitleOverride(t *testing.T) {
	core := coreFigure()
	core.Layout.Title = &figure.Title{Text: "core title"}
	f := New(core, WithTitle("composed title"), WithBottomTrack(bottomTrackFigure(t, "gene", 1)))

	doc := f.Doc()
	if got := doc.Layout.Title.Text; got != "composed title" {
		t.Errorf("title = %q, want %q", got, "composed title")
	}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
