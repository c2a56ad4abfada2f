// Package feature models genomic sequence annotations and reads them from
// the common interchange formats.
//
// A [Feature] is a typed, stranded set of coordinate spans on a named
// sequence: a gene, an exon, a variant. Features arrive from GFF3
// ([ParseGFF]) or BED ([ParseBED]) input and convert to drawable primitives
// with [ToShape], or to whole annotation tracks with [TrackFigure].
//
// Coordinates are kept as parsed: GFF3 is 1-based inclusive, BED is 0-based
// half-open. The drawing layer treats them as opaque axis positions, so no
// normalization happens here.
package feature
