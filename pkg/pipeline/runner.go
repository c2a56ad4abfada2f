package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/genofig/genofig/pkg/cache"
	"github.com/genofig/genofig/pkg/errors"
	"github.com/genofig/genofig/pkg/feature"
	"github.com/genofig/genofig/pkg/figure/annotated"
	"github.com/genofig/genofig/pkg/figure/sink"
	"github.com/genofig/genofig/pkg/hierarchy"
	"github.com/genofig/genofig/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// FeatureTTL and ArtifactTTL bound cache entry lifetimes for the
	// parse and render stages. NewRunner sets them to TTLFeatures and
	// TTLArtifact; callers may override them before use.
	FeatureTTL  time.Duration
	ArtifactTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:       c,
		Keyer:       keyer,
		Logger:      logger,
		FeatureTTL:  TTLFeatures,
		ArtifactTTL: TTLArtifact,
	}
}

// Execute runs the complete parse → compose → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	observability.Pipeline().OnParseStart(ctx, opts.InputKind)
	feats, parseHit, err := r.Parse(ctx, opts)
	observability.Pipeline().OnParseComplete(ctx, opts.InputKind, len(feats), time.Since(parseStart), err)
	if err != nil {
		return nil, err
	}
	result.Features = feats
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.FeatureCount = len(feats)
	result.CacheInfo.ParseHit = parseHit

	if data, err := json.Marshal(feats); err == nil {
		result.FeatureHash = cache.Hash(data)
	}

	r.Logger.Info("parsed annotations",
		"features", len(feats),
		"cached", parseHit,
		"duration", result.Stats.ParseTime)

	// Stage 2: Compose
	composeStart := time.Now()
	observability.Pipeline().OnComposeStart(ctx, len(feats))
	fig, err := r.Compose(feats, opts)
	if err != nil {
		observability.Pipeline().OnComposeComplete(ctx, 0, time.Since(composeStart), err)
		return nil, err
	}
	result.Doc = fig.Doc()
	observability.Pipeline().OnComposeComplete(ctx, len(result.Doc.Data), time.Since(composeStart), nil)
	result.Stats.ComposeTime = time.Since(composeStart)
	result.Stats.TraceCount = len(result.Doc.Data)

	r.Logger.Info("composed figure",
		"traces", result.Stats.TraceCount,
		"duration", result.Stats.ComposeTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.Render(ctx, fig, feats, result.FeatureHash, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse reads and filters the annotation source, consulting the cache
// first. The boolean reports whether the result came from cache.
func (r *Runner) Parse(ctx context.Context, opts Options) ([]*feature.Feature, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	source := opts.Source
	if opts.Input != "" {
		data, err := os.ReadFile(opts.Input)
		if err != nil {
			return nil, false, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", opts.Input)
		}
		source = data
	}

	cacheKey := r.Keyer.FeatureKey(cache.Hash(source), cache.FeatureKeyOpts{
		SeqID: opts.SeqID,
		Kinds: opts.Kinds,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var feats []*feature.Feature
			if err := json.Unmarshal(data, &feats); err == nil {
				observability.Cache().OnCacheHit(ctx, "feature")
				return feats, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "feature")
	}

	var (
		feats []*feature.Feature
		err   error
	)
	switch opts.InputKind {
	case "bed":
		feats, err = feature.ParseBED(bytes.NewReader(source), opts.BEDKind)
	default:
		feats, err = feature.ParseGFF(bytes.NewReader(source))
	}
	if err != nil {
		return nil, false, err
	}

	if opts.SeqID != "" {
		feats = feature.FilterSeqID(feats, opts.SeqID)
	}
	feats = feature.FilterKinds(feats, allKinds(opts))

	if data, err := json.Marshal(feats); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, r.FeatureTTL)
		observability.Cache().OnCacheSet(ctx, "feature", len(data))
	}
	return feats, false, nil
}

// allKinds joins the main and track kind filters, so parsing keeps every
// feature any panel will show. Empty means no filtering.
func allKinds(opts Options) []string {
	if len(opts.Kinds) == 0 {
		return nil
	}
	kinds := append([]string{}, opts.Kinds...)
	kinds = append(kinds, opts.BottomKinds...)
	kinds = append(kinds, opts.LeftKinds...)
	return kinds
}

// Compose assembles the filtered features into an annotated figure. Kinds
// listed in BottomKinds or LeftKinds move out of the main panel into
// their strips.
func (r *Runner) Compose(feats []*feature.Feature, opts Options) (*annotated.Figure, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	trackKinds := append(append([]string{}, opts.BottomKinds...), opts.LeftKinds...)
	mainFeats := feats
	if len(trackKinds) > 0 {
		mainFeats = nil
		for _, f := range feats {
			if !containsKind(trackKinds, f.Kind) {
				mainFeats = append(mainFeats, f)
			}
		}
	}

	core, err := feature.StyledTrackFigure(mainFeats, false, opts.KindStyles)
	if err != nil {
		return nil, err
	}

	annOpts := []annotated.Option{
		annotated.WithWidth(opts.Width),
		annotated.WithHeight(opts.Height),
	}
	if opts.Title != "" {
		annOpts = append(annOpts, annotated.WithTitle(opts.Title))
	}
	if opts.XTitle != "" {
		annOpts = append(annOpts, annotated.WithXTitle(opts.XTitle))
	}
	if opts.YTitle != "" {
		annOpts = append(annOpts, annotated.WithYTitle(opts.YTitle))
	}

	if len(opts.BottomKinds) > 0 {
		bottom, err := feature.StyledTrackFigure(feature.FilterKinds(feats, opts.BottomKinds), false, opts.KindStyles)
		if err != nil {
			return nil, err
		}
		annOpts = append(annOpts, annotated.WithBottomTrack(bottom))
	}
	if len(opts.LeftKinds) > 0 {
		left, err := feature.StyledTrackFigure(feature.FilterKinds(feats, opts.LeftKinds), true, opts.KindStyles)
		if err != nil {
			return nil, err
		}
		annOpts = append(annOpts, annotated.WithLeftTrack(left))
	}

	return annotated.New(core, annOpts...), nil
}

func containsKind(kinds []string, kind string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Render produces the requested artifacts, consulting the cache per
// format. The boolean reports whether every artifact came from cache.
func (r *Runner) Render(ctx context.Context, fig *annotated.Figure, feats []*feature.Feature, featureHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	figHash := figureHash(featureHash, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))
	allHit := true

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(figHash, cache.ArtifactKeyOpts{Format: format})
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		allHit = false

		data, err := r.renderFormat(ctx, fig, feats, format, opts)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data
		_ = r.Cache.Set(ctx, key, data, r.ArtifactTTL)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return artifacts, allHit && len(opts.Formats) > 0, nil
}

func (r *Runner) renderFormat(ctx context.Context, fig *annotated.Figure, feats []*feature.Feature, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return sink.RenderJSON(fig)
	case FormatHTML:
		title := opts.Title
		if title == "" {
			title = "Figure"
		}
		return sink.RenderHTML(fig, sink.WithHTMLTitle(title))
	case FormatDOT:
		return []byte(hierarchy.ToDOT(feats, hierarchy.Options{Detailed: opts.Detailed})), nil
	case FormatSVG:
		dot := hierarchy.ToDOT(feats, hierarchy.Options{Detailed: opts.Detailed})
		return hierarchy.RenderSVG(ctx, dot)
	case FormatPNG:
		dot := hierarchy.ToDOT(feats, hierarchy.Options{Detailed: opts.Detailed})
		return hierarchy.RenderPNG(ctx, dot)
	default:
		return nil, ValidateFormat(format)
	}
}

// figureHash keys rendered artifacts by everything that shapes the
// document: the feature content plus the display options.
func figureHash(featureHash string, opts Options) string {
	settings, _ := json.Marshal(struct {
		Hash   string
		Title  string
		XTitle string
		YTitle string
		Width  int
		Height int
		Bottom []string
		Left   []string
		Styles map[string]feature.KindStyle
	}{featureHash, opts.Title, opts.XTitle, opts.YTitle, opts.Width, opts.Height, opts.BottomKinds, opts.LeftKinds, opts.KindStyles})
	return cache.Hash(settings)
}
