package hierarchy

import (
	"strings"
	"testing"

	"github.com/genofig/genofig/pkg/feature"
)

func testFeatures() []*feature.Feature {
	return []*feature.Feature{
		{
			ID: "gene:G1", Name: "BRCA2", Kind: "gene", SeqID: "chr13",
			Spans: []feature.Span{{Start: 1000, End: 5000}},
		},
		{
			ID: "transcript:T1", Kind: "mrna", SeqID: "chr13", Parent: "gene:G1",
			Spans: []feature.Span{{Start: 1000, End: 5000}},
		},
		{
			ID: "exon:E1", Kind: "exon", SeqID: "chr13", Parent: "transcript:T1",
			Spans:  []feature.Span{{Start: 1000, End: 1500}},
			Strand: feature.Reverse,
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testFeatures(), Options{})

	for _, want := range []string{
		"digraph G {",
		`"gene:G1" [label="BRCA2", fillcolor=lightblue]`,
		`"gene:G1" -> "transcript:T1"`,
		`"transcript:T1" -> "exon:E1"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testFeatures(), Options{Detailed: true})

	for _, want := range []string{
		"chr13:1000-5000",
		"kind: gene",
		"strand: -",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("detailed DOT missing %q\n%s", want, dot)
		}
	}
}

func TestToDOTDanglingParent(t *testing.T) {
	feats := []*feature.Feature{
		{ID: "exon:E9", Kind: "exon", Parent: "transcript:missing"},
	}
	dot := ToDOT(feats, Options{})
	if strings.Contains(dot, "->") {
		t.Errorf("DOT has an edge to an absent parent\n%s", dot)
	}
}
