package cli

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/genofig/genofig/pkg/feature"
	"github.com/genofig/genofig/pkg/pipeline"
)

// newInspectCmd creates the inspect command, which summarizes the
// features in an annotation file without rendering anything.
func newInspectCmd() *cobra.Command {
	var (
		bedKind     string
		seqID       string
		interactive bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <annotation-file>",
		Short: "Summarize the features in an annotation file",
		Long: `Inspect parses an annotation file and prints per-sequence and per-kind
feature counts. With --interactive, a sequence can be picked from a list
and its features are summarized on their own.`,
		Example: `  genofig inspect annotations.gff3
  genofig inspect annotations.gff3 --seq-id chr1
  genofig inspect annotations.gff3 -i`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			runner, err := newRunner(noCache, logger)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			feats, _, err := runner.Parse(cmd.Context(), pipeline.Options{
				Input:   args[0],
				BEDKind: bedKind,
				Logger:  logger,
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Parsed %d features", len(feats)))

			if interactive {
				picked, err := pickSequence(feature.SeqIDs(feats))
				if err != nil {
					return err
				}
				if picked == "" {
					return nil
				}
				seqID = picked
			}
			if seqID != "" {
				feats = feature.FilterSeqID(feats, seqID)
				printKeyValue("sequence", seqID)
			}

			printSummary(feats)
			return nil
		},
	}

	cmd.Flags().StringVar(&bedKind, "bed-kind", "", "feature kind assigned to BED records")
	cmd.Flags().StringVar(&seqID, "seq-id", "", "only summarize this sequence")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a sequence interactively")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the feature cache")

	return cmd
}

// pickSequence runs the interactive sequence list. An empty return means
// the user quit without choosing.
func pickSequence(seqIDs []string) (string, error) {
	if len(seqIDs) == 0 {
		printInfo("No sequences found")
		return "", nil
	}

	model := newSeqListModel(seqIDs)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(seqListModel)
	if !ok || m.selected == "" {
		return "", nil
	}
	return m.selected, nil
}

// printSummary prints per-kind counts and coordinate extents.
func printSummary(feats []*feature.Feature) {
	printKeyValue("features", fmt.Sprintf("%d", len(feats)))
	printKeyValue("sequences", fmt.Sprintf("%d", len(feature.SeqIDs(feats))))

	groups := feature.GroupByKind(feats)
	kinds := make([]string, 0, len(groups))
	for kind := range groups {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	printNewline()
	for _, kind := range kinds {
		group := groups[kind]
		lo, hi := extent(group)
		printDetail("%-12s %5d  [%d, %d]", kind, len(group), lo, hi)
	}
}

// extent returns the covering coordinate interval of a feature group.
func extent(feats []*feature.Feature) (int64, int64) {
	if len(feats) == 0 {
		return 0, 0
	}
	total := feats[0].TotalSpan()
	lo, hi := total.Start, total.End
	for _, f := range feats[1:] {
		t := f.TotalSpan()
		if t.Start < lo {
			lo = t.Start
		}
		if t.End > hi {
			hi = t.End
		}
	}
	return lo, hi
}
