package sink

import (
	"bytes"
	"html/template"

	"github.com/genofig/genofig/pkg/errors"
)

// DefaultPlotlyURL is the script source used when no override is given.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// HTMLOption configures HTML rendering via [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title     string
	plotlyURL string
}

// WithHTMLTitle sets the page title. Defaults to "Figure".
func WithHTMLTitle(title string) HTMLOption {
	return func(r *htmlRenderer) { r.title = title }
}

// WithPlotlyURL overrides the plotting library script source, for offline
// viewing or version pinning.
func WithPlotlyURL(url string) HTMLOption {
	return func(r *htmlRenderer) { r.plotlyURL = url }
}

var htmlTemplate = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.PlotlyURL}}"></script>
</head>
<body>
<div id="figure"></div>
<script>
var doc = {{.Doc}};
Plotly.newPlot("figure", doc.data, doc.layout, {responsive: true});
</script>
</body>
</html>
`))

// RenderHTML wraps the assembled figure document in a standalone page that
// loads the plotting library and draws the figure on open. The document is
// embedded inline, so the page needs no server beyond the script source.
func RenderHTML(d Drawable, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{title: "Figure", plotlyURL: DefaultPlotlyURL}
	for _, opt := range opts {
		opt(&r)
	}

	doc, err := RenderJSON(d, WithJSONCompact())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "assemble figure document")
	}

	var buf bytes.Buffer
	err = htmlTemplate.Execute(&buf, struct {
		Title     string
		PlotlyURL string
		Doc       template.JS
	}{r.title, r.plotlyURL, template.JS(doc)})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render html page")
	}
	return buf.Bytes(), nil
}
