// Package hierarchy renders the parent/child structure of annotation
// features (gene to transcript to exon, for instance) as a node-link
// diagram. [ToDOT] produces Graphviz DOT text; [RenderSVG] and
// [RenderPNG] rasterize it.
package hierarchy

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/genofig/genofig/pkg/errors"
	"github.com/genofig/genofig/pkg/feature"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes coordinates and strand in node labels.
	// When false, only the display name is shown.
	Detailed bool
}

// kindFills distinguishes feature kinds in the diagram. Unlisted kinds
// stay white.
var kindFills = map[string]string{
	"gene":       "lightblue",
	"transcript": "lightyellow",
	"mrna":       "lightyellow",
	"exon":       "lightgrey",
	"cds":        "palegreen",
}

// ToDOT converts a feature set to Graphviz DOT format, one node per
// feature and one edge per recorded parent link. The resulting DOT string
// can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(feats []*feature.Feature, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	byID := make(map[string]bool, len(feats))
	for _, f := range feats {
		byID[f.ID] = true
	}

	for _, f := range feats {
		label := fmtLabel(f, opts.Detailed)
		attrs := fmtAttrs(f, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(f), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, f := range feats {
		if f.Parent == "" || !byID[f.Parent] {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", f.Parent, nodeID(f))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(f *feature.Feature) string {
	if f.ID != "" {
		return f.ID
	}
	return f.DisplayName()
}

func fmtLabel(f *feature.Feature, detailed bool) string {
	if !detailed {
		return f.DisplayName()
	}

	total := f.TotalSpan()
	parts := []string{
		fmt.Sprintf("%s:%d-%d", f.SeqID, total.Start, total.End),
		"kind: " + f.Kind,
	}
	if f.Reversed() {
		parts = append(parts, "strand: -")
	}

	return f.DisplayName() + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(f *feature.Feature, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if fill, ok := kindFills[f.Kind]; ok {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%s", fill))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render graph")
	}
	return buf.Bytes(), nil
}
