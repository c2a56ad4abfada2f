package feature

import (
	"slices"
	"sort"
)

// Strand values.
const (
	Forward int8 = 1
	Reverse int8 = -1
	None    int8 = 0
)

// Span is one contiguous coordinate interval of a feature.
type Span struct {
	Start int64
	End   int64
}

// Length returns the span extent.
func (s Span) Length() int64 {
	if s.End > s.Start {
		return s.End - s.Start
	}
	return s.Start - s.End
}

// Feature is a single genomic annotation: a typed, stranded set of spans on
// a named sequence.
type Feature struct {
	ID     string // stable identifier (e.g. gene:ENSG00000139618)
	Name   string // display name (e.g. BRCA2)
	Kind   string // biotype: gene, exon, cds, snp, ...
	SeqID  string // the sequence the feature annotates
	Spans  []Span
	Strand int8
	Parent string // ID of the enclosing feature, if any
}

// Reversed reports whether the feature lies on the reverse strand.
func (f *Feature) Reversed() bool { return f.Strand == Reverse }

// TotalSpan returns the interval covering all spans.
func (f *Feature) TotalSpan() Span {
	if len(f.Spans) == 0 {
		return Span{}
	}
	total := f.Spans[0]
	for _, s := range f.Spans[1:] {
		lo, hi := min(s.Start, s.End), max(s.Start, s.End)
		total.Start = min(total.Start, lo)
		total.End = max(total.End, hi)
	}
	return total
}

// Contains reports whether pos falls inside the covering span.
func (f *Feature) Contains(pos int64) bool {
	t := f.TotalSpan()
	return pos >= t.Start && pos <= t.End
}

// DisplayName returns the name if set, otherwise the ID.
func (f *Feature) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ID
}

// SeqIDs returns the distinct sequence names in feats, sorted.
func SeqIDs(feats []*Feature) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, f := range feats {
		if !seen[f.SeqID] {
			seen[f.SeqID] = true
			ids = append(ids, f.SeqID)
		}
	}
	sort.Strings(ids)
	return ids
}

// FilterSeqID returns the features annotating seqID, preserving order.
func FilterSeqID(feats []*Feature, seqID string) []*Feature {
	var out []*Feature
	for _, f := range feats {
		if f.SeqID == seqID {
			out = append(out, f)
		}
	}
	return out
}

// FilterKinds returns the features whose kind is in kinds, preserving order.
// An empty kinds list keeps everything.
func FilterKinds(feats []*Feature, kinds []string) []*Feature {
	if len(kinds) == 0 {
		return feats
	}
	var out []*Feature
	for _, f := range feats {
		if slices.Contains(kinds, f.Kind) {
			out = append(out, f)
		}
	}
	return out
}

// GroupByKind buckets features by kind, preserving order within a bucket.
func GroupByKind(feats []*Feature) map[string][]*Feature {
	groups := make(map[string][]*Feature)
	for _, f := range feats {
		groups[f.Kind] = append(groups[f.Kind], f)
	}
	return groups
}

// Children returns the features whose Parent is id, preserving order.
func Children(feats []*Feature, id string) []*Feature {
	var out []*Feature
	for _, f := range feats {
		if f.Parent != "" && f.Parent == id {
			out = append(out, f)
		}
	}
	return out
}
