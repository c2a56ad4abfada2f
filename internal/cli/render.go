package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genofig/genofig/pkg/config"
	apperrors "github.com/genofig/genofig/pkg/errors"
	"github.com/genofig/genofig/pkg/feature"
	"github.com/genofig/genofig/pkg/pipeline"
)

// renderFlags holds the render command's flag values.
type renderFlags struct {
	output      string
	configPath  string
	formats     string
	seqID       string
	kinds       []string
	bottomKinds []string
	leftKinds   []string
	bedKind     string
	title       string
	xtitle      string
	ytitle      string
	width       int
	height      int
	detailed    bool
	noCache     bool
	refresh     bool
}

// newRenderCmd creates the render command, which runs the full pipeline
// on an annotation file and writes the requested artifacts.
func newRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <annotation-file>",
		Short: "Build figure documents from GFF3/BED files",
		Long: `Render parses an annotation file, composes its features into a figure
document, and writes one output file per requested format.

Formats:
  json   figure document (data + layout)
  html   standalone page that draws the figure on open
  dot    feature hierarchy in Graphviz DOT
  svg    feature hierarchy rendered with Graphviz
  png    feature hierarchy rendered with Graphviz

Kinds listed with --bottom or --left move out of the main panel into a
strip along that axis.`,
		Example: `  genofig render annotations.gff3
  genofig render annotations.gff3 --seq-id chr1 --formats json,html
  genofig render annotations.gff3 --bottom gene --formats html -o figures/chr1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output path without extension (default: input name)")
	cmd.Flags().StringVar(&flags.configPath, "config", config.DefaultFileName, "config file path")
	cmd.Flags().StringVarP(&flags.formats, "formats", "f", "json", "comma-separated output formats")
	cmd.Flags().StringVar(&flags.seqID, "seq-id", "", "only draw features on this sequence")
	cmd.Flags().StringSliceVar(&flags.kinds, "kinds", nil, "only draw these feature kinds")
	cmd.Flags().StringSliceVar(&flags.bottomKinds, "bottom", nil, "kinds shown in a strip below the main panel")
	cmd.Flags().StringSliceVar(&flags.leftKinds, "left", nil, "kinds shown in a strip left of the main panel")
	cmd.Flags().StringVar(&flags.bedKind, "bed-kind", "", "feature kind assigned to BED records")
	cmd.Flags().StringVar(&flags.title, "title", "", "figure title")
	cmd.Flags().StringVar(&flags.xtitle, "x-title", "", "x axis title")
	cmd.Flags().StringVar(&flags.ytitle, "y-title", "", "y axis title")
	cmd.Flags().IntVar(&flags.width, "width", 0, "figure width in pixels")
	cmd.Flags().IntVar(&flags.height, "height", 0, "figure height in pixels")
	cmd.Flags().BoolVar(&flags.detailed, "detailed", false, "detailed labels in dot/svg/png output")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "recompute even when cached")

	return cmd
}

func runRender(cmd *cobra.Command, input string, flags renderFlags) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.width == 0 {
		flags.width = cfg.Figure.Width
	}
	if flags.height == 0 {
		flags.height = cfg.Figure.Height
	}

	runner, err := newRunner(flags.noCache, logger)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Input:       input,
		BEDKind:     flags.bedKind,
		SeqID:       flags.seqID,
		Kinds:       flags.kinds,
		BottomKinds: flags.bottomKinds,
		LeftKinds:   flags.leftKinds,
		Title:       flags.title,
		XTitle:      flags.xtitle,
		YTitle:      flags.ytitle,
		Width:       flags.width,
		Height:      flags.height,
		KindStyles:  kindStyles(cfg),
		Formats:     parseFormats(flags.formats),
		Detailed:    flags.detailed,
		Refresh:     flags.refresh,
		Logger:      logger,
	}

	spin := newSpinnerWithContext(cmd.Context(), "Rendering "+filepath.Base(input))
	spin.Start()
	result, err := runner.Execute(cmd.Context(), opts)
	spin.Stop()
	if err != nil {
		return err
	}

	base := flags.output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}
	if err := apperrors.ValidateOutputPath(base); err != nil {
		return err
	}
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	printSuccess("Rendered %s", filepath.Base(input))
	printStats(result.Stats.FeatureCount, result.Stats.TraceCount, result.CacheInfo.RenderHit)
	for _, format := range opts.Formats {
		path := base + "." + format
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	if containsFormat(opts.Formats, pipeline.FormatHTML) {
		printNextStep("Open the figure", "open "+base+".html")
	}

	return nil
}

// kindStyles converts configured kind overrides into pipeline styles.
func kindStyles(cfg config.Config) map[string]feature.KindStyle {
	if len(cfg.Kinds) == 0 {
		return nil
	}
	styles := make(map[string]feature.KindStyle, len(cfg.Kinds))
	for kind, kc := range cfg.Kinds {
		styles[strings.ToLower(kind)] = feature.KindStyle{
			Color:     kc.Color,
			Primitive: kc.Primitive,
			Height:    kc.Height,
		}
	}
	return styles
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	return strings.Split(s, ",")
}

func containsFormat(formats []string, format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}
