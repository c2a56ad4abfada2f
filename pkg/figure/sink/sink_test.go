package sink

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/genofig/genofig/pkg/figure"
)

func testFigure() *figure.Figure {
	fig := figure.New(
		figure.WithTitle("demo"),
		figure.WithWidth(640),
		figure.WithHeight(480),
	)
	fig.AddTrace(&figure.Trace{
		Type: "scatter",
		Mode: "lines",
		X:    []figure.Coord{0, 1, figure.Break(), 2, 3},
		Y:    []figure.Coord{0, 1, figure.Break(), 1, 0},
	})
	return fig
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testFigure())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out struct {
		Data []struct {
			Type string          `json:"type"`
			X    []*float64      `json:"x"`
			Y    json.RawMessage `json:"y"`
		} `json:"data"`
		Layout struct {
			Title  string  `json:"title"`
			Width  float64 `json:"width"`
			Height float64 `json:"height"`
		} `json:"layout"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if len(out.Data) != 1 {
		t.Fatalf("data count = %d, want 1", len(out.Data))
	}
	if out.Data[0].Type != "scatter" {
		t.Errorf("trace type = %q, want scatter", out.Data[0].Type)
	}
	// Polyline breaks serialize as nulls.
	if out.Data[0].X[2] != nil {
		t.Errorf("x[2] = %v, want null", *out.Data[0].X[2])
	}
	if out.Layout.Title != "demo" {
		t.Errorf("layout title = %q, want demo", out.Layout.Title)
	}
	if out.Layout.Width != 640 || out.Layout.Height != 480 {
		t.Errorf("layout size = %vx%v, want 640x480",
			out.Layout.Width, out.Layout.Height)
	}
}

func TestRenderJSONCompact(t *testing.T) {
	pretty, err := RenderJSON(testFigure())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	compact, err := RenderJSON(testFigure(), WithJSONCompact())
	if err != nil {
		t.Fatalf("RenderJSON(compact) error: %v", err)
	}

	if !strings.Contains(string(pretty), "\n") {
		t.Error("pretty output has no newlines")
	}
	if strings.Contains(string(compact), "\n") {
		t.Error("compact output has newlines")
	}

	var a, b any
	if err := json.Unmarshal(pretty, &a); err != nil {
		t.Fatalf("unmarshal pretty: %v", err)
	}
	if err := json.Unmarshal(compact, &b); err != nil {
		t.Fatalf("unmarshal compact: %v", err)
	}
}

func TestRenderHTML(t *testing.T) {
	page, err := RenderHTML(testFigure(), WithHTMLTitle("dotplot"))
	if err != nil {
		t.Fatalf("RenderHTML() error: %v", err)
	}

	html := string(page)
	for _, want := range []string{
		"<title>dotplot</title>",
		DefaultPlotlyURL,
		`Plotly.newPlot("figure"`,
		`"scatter"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderHTMLPlotlyURL(t *testing.T) {
	page, err := RenderHTML(testFigure(), WithPlotlyURL("/static/plotly.min.js"))
	if err != nil {
		t.Fatalf("RenderHTML() error: %v", err)
	}
	if !strings.Contains(string(page), `src="/static/plotly.min.js"`) {
		t.Error("page does not reference the overridden script source")
	}
}

func TestRenderJSONMeta(t *testing.T) {
	data, err := RenderJSON(testFigure(), WithJSONMeta(map[string]string{"generator": "genofig"}))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if !strings.Contains(string(data), `"generator": "genofig"`) {
		t.Error("document missing generator metadata")
	}
}
