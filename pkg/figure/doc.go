// Package figure maintains chart state as a composable, renderer-ready
// document: an ordered list of traces plus a typed layout configuration.
//
// # Overview
//
// A [Figure] is a mutable container. Traces are appended with [Figure.AddTrace]
// and removed by name; trace order is display order. Calling [Figure.Doc]
// produces the document handed to an external charting runtime: a mapping with
// a "data" key (the trace list) and a "layout" key (axis ranges, domains,
// titles, tick styling). The document shape follows the Plotly figure schema
// and is serialized by [figure/sink].
//
// # Layout
//
// Layout configuration is typed rather than free-form. [Layout] carries the
// figure-level settings (title, size, margin, font, legend) and up to three
// axes per direction, which is sufficient for the track compositions built by
// [figure/annotated]. Partial layouts merge with [Layout.Apply]: set fields
// override, unset fields are left alone.
//
// # Grid domains
//
// [GetDomain] partitions the unit interval into evenly spaced per-element
// domains for grid plots. Y-axis elements are indexed in cartesian order, so
// element 0 is the bottom row of the rendered grid.
//
// [figure/sink]: github.com/genofig/genofig/pkg/figure/sink
// [figure/annotated]: github.com/genofig/genofig/pkg/figure/annotated
package figure
