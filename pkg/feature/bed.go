package feature

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/genofig/genofig/pkg/errors"
)

// ParseBED reads BED records from r, producing features of the given kind
// (BED carries no biotype of its own). Records with block definitions
// (BED12) yield one span per block; simpler records yield a single span.
// Track and browser header lines are skipped.
func ParseBED(r io.Reader, kind string) ([]*Feature, error) {
	var (
		feats []*Feature
		line  int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") ||
			strings.HasPrefix(text, "track") || strings.HasPrefix(text, "browser") {
			continue
		}

		cols := strings.Split(text, "\t")
		if len(cols) < 3 {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"bed line %d: %d columns, want at least 3", line, len(cols))
		}

		start, err := strconv.ParseInt(cols[1], 10, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "bed line %d: start", line)
		}
		end, err := strconv.ParseInt(cols[2], 10, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "bed line %d: end", line)
		}

		f := &Feature{
			Kind:  kind,
			SeqID: cols[0],
			Spans: []Span{{Start: start, End: end}},
		}
		if len(cols) > 3 {
			f.Name = cols[3]
			f.ID = cols[3]
		}
		if len(cols) > 5 {
			f.Strand = parseStrand(cols[5])
		}
		if len(cols) >= 12 {
			spans, err := parseBlocks(cols[9], cols[10], cols[11], start)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "bed line %d: blocks", line)
			}
			if len(spans) > 0 {
				f.Spans = spans
			}
		}
		feats = append(feats, f)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read bed")
	}
	return feats, nil
}

// parseBlocks expands BED12 block columns into spans. Block starts are
// relative to the record start.
func parseBlocks(countCol, sizesCol, startsCol string, recordStart int64) ([]Span, error) {
	count, err := strconv.Atoi(countCol)
	if err != nil {
		return nil, err
	}
	sizes := splitInts(sizesCol)
	starts := splitInts(startsCol)
	if len(sizes) < count || len(starts) < count {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"block count %d exceeds listed sizes/starts", count)
	}

	spans := make([]Span, 0, count)
	for i := 0; i < count; i++ {
		begin := recordStart + starts[i]
		spans = append(spans, Span{Start: begin, End: begin + sizes[i]})
	}
	return spans, nil
}

// splitInts parses a comma-separated integer list, tolerating the trailing
// comma BED writers commonly emit. Unparseable entries are dropped.
func splitInts(s string) []int64 {
	var out []int64
	for _, part := range strings.Split(strings.TrimSuffix(s, ","), ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
