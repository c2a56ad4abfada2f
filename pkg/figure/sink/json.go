// Package sink serializes assembled figures into interchange and display
// formats. [RenderJSON] emits the figure document as JSON for external
// plotting tools or caching; [RenderHTML] wraps the same document in a
// standalone web page.
package sink

import (
	"encoding/json"

	"github.com/genofig/genofig/pkg/figure"
)

// Drawable is anything that can assemble itself into a figure document.
// Both [figure.Figure] and the annotated variant satisfy it.
type Drawable interface {
	Doc() figure.Doc
}

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
	indent  string
	meta    map[string]string
}

// WithJSONCompact emits the document on a single line instead of
// pretty-printing. Useful for caching and transport.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// WithJSONIndent overrides the default two-space indentation.
func WithJSONIndent(indent string) JSONOption {
	return func(r *jsonRenderer) { r.indent = indent }
}

// WithJSONMeta records generator metadata in the document's layout meta.
func WithJSONMeta(meta map[string]string) JSONOption {
	return func(r *jsonRenderer) { r.meta = meta }
}

// RenderJSON exports the assembled figure document as a JSON object with
// "data" and "layout" keys, the interchange shape plotting front ends
// consume directly. The default output is pretty-printed with two-space
// indentation.
//
// RenderJSON assembles the document via d.Doc() but does not otherwise
// modify d, and is safe to call concurrently with other renders of the
// same value.
func RenderJSON(d Drawable, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{indent: "  "}
	for _, opt := range opts {
		opt(&r)
	}

	doc := d.Doc()
	if r.meta != nil {
		doc.Layout.Meta = r.meta
	}
	if r.compact {
		return json.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", r.indent)
}
