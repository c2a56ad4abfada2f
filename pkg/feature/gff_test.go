package feature

import (
	"strings"
	"testing"

	"github.com/genofig/genofig/pkg/errors"
)

const sampleGFF = `##gff-version 3
chr1	ensembl	gene	1000	5000	.	+	.	ID=gene:G1;Name=BRCA2
chr1	ensembl	mRNA	1000	5000	.	+	.	ID=transcript:T1;Parent=gene:G1
chr1	ensembl	CDS	1000	1500	.	+	0	ID=CDS:C1;Parent=transcript:T1
chr1	ensembl	CDS	2000	2600	.	+	1	ID=CDS:C1;Parent=transcript:T1
chr2	ensembl	gene	300	900	.	-	.	ID=gene:G2
`

func TestParseGFF(t *testing.T) {
	feats, err := ParseGFF(strings.NewReader(sampleGFF))
	if err != nil {
		t.Fatalf("ParseGFF() error = %v", err)
	}
	if got, want := len(feats), 4; got != want {
		t.Fatalf("len(feats) = %d, want %d", got, want)
	}

	gene := feats[0]
	if gene.ID != "gene:G1" || gene.Name != "BRCA2" || gene.Kind != "gene" {
		t.Errorf("gene = %+v, want ID gene:G1, Name BRCA2, Kind gene", gene)
	}
	if gene.Strand != Forward {
		t.Errorf("gene.Strand = %d, want %d", gene.Strand, Forward)
	}
	if gene.DisplayName() != "BRCA2" {
		t.Errorf("DisplayName() = %q, want BRCA2", gene.DisplayName())
	}

	if feats[1].Parent != "gene:G1" {
		t.Errorf("transcript.Parent = %q, want gene:G1", feats[1].Parent)
	}

	// The two CDS records share an ID and merge into one feature.
	cds := feats[2]
	if got, want := len(cds.Spans), 2; got != want {
		t.Fatalf("len(cds.Spans) = %d, want %d", got, want)
	}
	if cds.Spans[1] != (Span{Start: 2000, End: 2600}) {
		t.Errorf("cds.Spans[1] = %+v, want {2000 2600}", cds.Spans[1])
	}

	if feats[3].Strand != Reverse || !feats[3].Reversed() {
		t.Errorf("G2 strand = %d, want reverse", feats[3].Strand)
	}
	if feats[3].DisplayName() != "gene:G2" {
		t.Errorf("unnamed DisplayName() = %q, want the ID", feats[3].DisplayName())
	}
}

func TestParseGFFStopsAtFASTA(t *testing.T) {
	input := "chr1\tsrc\tgene\t1\t10\t.\t+\t.\tID=g\n##FASTA\n>chr1\nACGT\n"
	feats, err := ParseGFF(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseGFF() error = %v", err)
	}
	if got, want := len(feats), 1; got != want {
		t.Errorf("len(feats) = %d, want %d", got, want)
	}
}

func TestParseGFFBadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too few columns", "chr1\tgene\t1\t10\n"},
		{"bad start", "chr1\tsrc\tgene\tX\t10\t.\t+\t.\tID=g\n"},
		{"bad end", "chr1\tsrc\tgene\t1\tX\t.\t+\t.\tID=g\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGFF(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ParseGFF() error = nil, want error")
			}
			if got := errors.GetCode(err); got != errors.ErrCodeInvalidFormat {
				t.Errorf("GetCode(err) = %v, want %v", got, errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestFeatureHelpers(t *testing.T) {
	feats, err := ParseGFF(strings.NewReader(sampleGFF))
	if err != nil {
		t.Fatalf("ParseGFF() error = %v", err)
	}

	if got := SeqIDs(feats); len(got) != 2 || got[0] != "chr1" || got[1] != "chr2" {
		t.Errorf("SeqIDs() = %v, want [chr1 chr2]", got)
	}
	if got := FilterSeqID(feats, "chr2"); len(got) != 1 || got[0].ID != "gene:G2" {
		t.Errorf("FilterSeqID(chr2) = %d features, want the single chr2 gene", len(got))
	}
	if got := FilterKinds(feats, []string{"gene"}); len(got) != 2 {
		t.Errorf("FilterKinds(gene) = %d features, want 2", len(got))
	}
	if got := FilterKinds(feats, nil); len(got) != len(feats) {
		t.Errorf("FilterKinds(nil) = %d features, want all %d", len(got), len(feats))
	}
	if got := Children(feats, "gene:G1"); len(got) != 1 || got[0].Kind != "mrna" {
		t.Errorf("Children(gene:G1) = %v, want the mRNA", got)
	}
	if got := GroupByKind(feats); len(got["cds"]) != 1 || len(got["gene"]) != 2 {
		t.Errorf("GroupByKind() = %v, want 1 cds and 2 genes", got)
	}
}

func TestTotalSpan(t *testing.T) {
	f := &Feature{Spans: []Span{{Start: 2000, End: 2600}, {Start: 1000, End: 1500}}}
	if got, want := f.TotalSpan(), (Span{Start: 1000, End: 2600}); got != want {
		t.Errorf("TotalSpan() = %+v, want %+v", got, want)
	}
	if !f.Contains(1800) {
		t.Error("Contains(1800) = false, want true")
	}
	if f.Contains(3000) {
		t.Error("Contains(3000) = true, want false")
	}
}
