package feature

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/genofig/genofig/pkg/errors"
)

// ParseGFF reads GFF3 records from r. Directive and comment lines are
// skipped and parsing stops at an embedded FASTA section. Records sharing
// an ID (multi-segment CDS, for instance) merge into a single feature with
// one span per record.
func ParseGFF(r io.Reader) ([]*Feature, error) {
	var (
		feats []*Feature
		byID  = make(map[string]*Feature)
		line  int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		switch {
		case text == "" || strings.HasPrefix(text, "#"):
			if text == "##FASTA" {
				return feats, nil
			}
			continue
		}

		cols := strings.Split(text, "\t")
		if len(cols) != 9 {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"gff line %d: %d columns, want 9", line, len(cols))
		}

		start, err := strconv.ParseInt(cols[3], 10, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "gff line %d: start", line)
		}
		end, err := strconv.ParseInt(cols[4], 10, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "gff line %d: end", line)
		}

		attrs := parseAttributes(cols[8])
		f := &Feature{
			ID:     attrs["ID"],
			Name:   attrs["Name"],
			Kind:   strings.ToLower(cols[2]),
			SeqID:  cols[0],
			Spans:  []Span{{Start: start, End: end}},
			Strand: parseStrand(cols[6]),
			Parent: attrs["Parent"],
		}

		if f.ID != "" {
			if prev, ok := byID[f.ID]; ok {
				prev.Spans = append(prev.Spans, f.Spans[0])
				continue
			}
			byID[f.ID] = f
		}
		feats = append(feats, f)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read gff")
	}
	return feats, nil
}

// parseAttributes splits the GFF3 attribute column (key=value pairs joined
// by semicolons) into a map. Malformed entries are skipped.
func parseAttributes(s string) map[string]string {
	attrs := make(map[string]string)
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		attrs[k] = v
	}
	return attrs
}

func parseStrand(s string) int8 {
	switch s {
	case "+":
		return Forward
	case "-":
		return Reverse
	}
	return None
}
