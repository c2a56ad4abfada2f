// Package pipeline provides the core figure pipeline for genofig.
//
// This package implements the complete parse → compose → render pipeline
// that can be used by CLI and server components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read annotation features from GFF3 or BED files
//  2. Compose: Assemble features into a figure document, optionally with
//     annotation tracks along the axes
//  3. Render: Generate output in various formats (JSON, HTML, DOT, SVG, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "annotations.gff3",
//	    SeqID:   "chr1",
//	    Formats: []string{"html"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page := result.Artifacts["html"]
package pipeline

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/genofig/genofig/pkg/errors"
	"github.com/genofig/genofig/pkg/feature"
	"github.com/genofig/genofig/pkg/figure"
)

// Default values shared by CLI and server.
const (
	// DefaultWidth is the default figure width in pixels.
	DefaultWidth = 500

	// DefaultHeight is the default figure height in pixels.
	DefaultHeight = 500

	// DefaultFormat is the output produced when none is requested.
	DefaultFormat = FormatJSON
)

// Cache TTLs per pipeline stage. Parsed features change when the source
// file changes, so they can live long; artifacts embed display options
// and are cheap to rebuild.
const (
	TTLFeatures = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatHTML = "html"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// Options contains all configuration for the figure pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Parse options
	Input     string `json:"input,omitempty"`     // annotation file path
	Source    []byte `json:"source,omitempty"`    // inline annotation data, used when Input is empty
	InputKind string `json:"input_kind,omitempty"` // "gff" or "bed"; inferred from Input when empty
	BEDKind   string `json:"bed_kind,omitempty"`  // feature kind assigned to BED records
	Refresh   bool   `json:"refresh,omitempty"`

	// Compose options
	SeqID       string   `json:"seq_id,omitempty"`
	Kinds       []string `json:"kinds,omitempty"`
	BottomKinds []string `json:"bottom_kinds,omitempty"` // kinds shown in a strip below the main panel
	LeftKinds   []string `json:"left_kinds,omitempty"`   // kinds shown in a strip left of the main panel
	Title       string   `json:"title,omitempty"`
	XTitle      string   `json:"x_title,omitempty"`
	YTitle      string   `json:"y_title,omitempty"`
	Width       int      `json:"width,omitempty"`
	Height      int      `json:"height,omitempty"`

	// KindStyles overrides drawing styles per feature kind, keyed by
	// lower-cased kind. Typically sourced from the config file.
	KindStyles map[string]feature.KindStyle `json:"kind_styles,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // detailed labels in DOT/SVG/PNG output

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Features is the parsed, filtered annotation set.
	Features []*feature.Feature

	// FeatureHash is the content hash of the parsed feature set.
	FeatureHash string

	// Doc is the assembled figure document.
	Doc figure.Doc

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FeatureCount int
	TraceCount   int
	ParseTime    time.Duration
	ComposeTime  time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ParseHit  bool // Whether parsed features came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	return errors.ValidateFormats(formats)
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// It is idempotent; Execute calls it automatically.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Input == "" && len(o.Source) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no annotation input given")
	}
	if o.InputKind == "" {
		o.InputKind = inferInputKind(o.Input)
	}
	switch o.InputKind {
	case "gff", "bed":
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"cannot determine input kind for %q (want gff or bed)", o.Input)
	}
	if o.InputKind == "bed" && o.BEDKind == "" {
		o.BEDKind = "repeat"
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidRange, "figure size must not be negative")
	}

	o.validated = true
	return nil
}

// inferInputKind guesses the annotation format from the file extension.
func inferInputKind(path string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "gff", "gff3", "gtf":
		return "gff"
	case "bed":
		return "bed"
	}
	return ""
}
