// Package pkg provides the core libraries for Genofig annotation figures.
//
// # Overview
//
// Genofig turns genome annotation files (GFF3, BED) into Plotly figure
// documents: one horizontal track per feature, drawn with kind-specific
// shapes (arrows for genes, rectangles for CDS, diamonds for variants).
// The pkg directory is organized into five main areas:
//
//  1. [figure] - Figure documents, traces, layouts, and grid arithmetic
//  2. [feature] - Annotation parsing (GFF3, BED) and shape conversion
//  3. [hierarchy] - Parent/child feature graphs rendered via Graphviz
//  4. [pipeline] - Orchestration (parse → compose → render)
//  5. [cache] / [store] - Artifact caching and figure persistence
//
// # Architecture
//
// The typical data flow through Genofig:
//
//	GFF3/BED annotation file
//	         ↓
//	    [feature] package (parse + filter features)
//	         ↓
//	    [figure/shape] package (features → geometric traces)
//	         ↓
//	    [figure/annotated] package (grid layout + track strips)
//	         ↓
//	    JSON/HTML/DOT/SVG/PNG output
//
// # Quick Start
//
// Parse annotations and render an annotated figure:
//
//	import (
//	    "os"
//	    "github.com/genofig/genofig/pkg/feature"
//	    "github.com/genofig/genofig/pkg/figure/annotated"
//	    "github.com/genofig/genofig/pkg/figure/sink"
//	)
//
//	// 1. Parse annotations
//	f, _ := os.Open("annotations.gff3")
//	feats, _ := feature.ParseGFF(f)
//
//	// 2. Compose tracks into a core figure
//	core, _ := feature.TrackFigure(feats, false)
//
//	// 3. Wrap with titles and dimensions
//	fig := annotated.New(core,
//	    annotated.WithTitle("chr1"),
//	    annotated.WithWidth(800),
//	)
//
//	// 4. Render to a standalone HTML page
//	html, _ := sink.RenderHTML(fig, sink.WithHTMLTitle("chr1"))
//
// # Main Packages
//
// ## Figures
//
// [figure] - The figure document model: traces, layout, axis domains, and
// the grid arithmetic that divides the drawing area into panels. Coordinate
// sequences use NaN to break polylines, serialized as JSON null.
//
// [figure/shape] - Geometric primitives for annotation tracks: rectangles,
// arrows, diamonds, and points, each spanning one or more genomic intervals
// with connectors between them. Shapes know their extents and can transpose
// for vertical tracks.
//
// [figure/annotated] - Composite figures with optional bottom and left
// track strips beside the main panel, sharing axes with it.
//
// [figure/sink] - Output formats for figure documents (JSON, HTML).
//
// ## Annotations
//
// [feature] - GFF3 and BED parsers producing filtered feature sets, plus
// the conversion from features to shapes and track figures. Multi-segment
// features become one shape with connectors; reverse-strand features draw
// with the arrow head at the low end.
//
// [hierarchy] - Parent/child relationships between features (gene →
// transcript → exon) rendered as Graphviz node-link diagrams.
//
// ## Infrastructure
//
// [pipeline] - Complete figure pipeline (parse → compose → render) used by
// CLI and server. Ensures consistent behavior across all entry points.
//
// [cache] - Content-addressed caching of parsed features and rendered
// artifacts. FileCache for the CLI, RedisCache for the server, NullCache
// to disable caching.
//
// [store] - Figure persistence for the HTTP server. MemoryStore for tests
// and local runs, MongoStore for deployments.
//
// [config] - TOML configuration for figure defaults, kind styling, cache
// backends, and the server.
//
// [observability] - Hooks for metrics and tracing without hard backend
// dependencies.
//
// [errors] - Structured error codes shared across packages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/figure/...       # Specific package
//	go test -run Example           # Examples only
//
// [figure]: https://pkg.go.dev/github.com/genofig/genofig/pkg/figure
// [figure/shape]: https://pkg.go.dev/github.com/genofig/genofig/pkg/figure/shape
// [figure/annotated]: https://pkg.go.dev/github.com/genofig/genofig/pkg/figure/annotated
// [figure/sink]: https://pkg.go.dev/github.com/genofig/genofig/pkg/figure/sink
// [feature]: https://pkg.go.dev/github.com/genofig/genofig/pkg/feature
// [hierarchy]: https://pkg.go.dev/github.com/genofig/genofig/pkg/hierarchy
// [pipeline]: https://pkg.go.dev/github.com/genofig/genofig/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/genofig/genofig/pkg/cache
// [store]: https://pkg.go.dev/github.com/genofig/genofig/pkg/store
// [config]: https://pkg.go.dev/github.com/genofig/genofig/pkg/config
// [observability]: https://pkg.go.dev/github.com/genofig/genofig/pkg/observability
// [errors]: https://pkg.go.dev/github.com/genofig/genofig/pkg/errors
package pkg
