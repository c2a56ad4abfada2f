// Package shape converts biological feature coordinates into the geometric
// primitives a figure renders: rectangles, directional arrows, diamonds, and
// point markers.
//
// Every primitive is a [Shape]: a pair of vertex coordinate slices plus
// labelling and styling. Multi-span features (an exon set, say) produce one
// closed polygon per span, joined by thin connector segments separated with
// coordinate breaks. [Shape.AsTrace] converts the geometry into a trace for
// [figure.Figure].
//
// [Make] dispatches on a feature kind (cds, exon, gene, snp, ...) to the
// conventional primitive and color for that kind, inferring strand direction
// from the span order. Unknown kinds fall back to plain rectangles.
package shape
