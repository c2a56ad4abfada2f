package feature

import (
	"strings"

	"github.com/genofig/genofig/pkg/figure"
	"github.com/genofig/genofig/pkg/figure/shape"
)

// ToShape converts a feature into a drawable shape. Reverse-strand
// features have their spans flipped so the resulting glyph points the
// other way. The feature's display name doubles as its legend group, so
// repeated features share one legend entry.
func ToShape(f *Feature, opts ...shape.MakeOption) (*shape.Shape, error) {
	spans := make([]shape.Span, len(f.Spans))
	if f.Reversed() {
		for i, sp := range f.Spans {
			spans[len(spans)-1-i] = shape.Span{Start: float64(sp.End), End: float64(sp.Start)}
		}
	} else {
		for i, sp := range f.Spans {
			spans[i] = shape.Span{Start: float64(sp.Start), End: float64(sp.End)}
		}
	}

	name := f.DisplayName()
	opts = append([]shape.MakeOption{
		shape.WithShapeOptions(shape.WithLegendGroup(name)),
	}, opts...)
	return shape.Make(f.Kind, name, spans, opts...)
}

// KindStyle overrides how one feature kind is drawn. Zero fields keep the
// kind's conventional styling.
type KindStyle struct {
	Color     string
	Primitive string
	Height    float64
}

func (s KindStyle) makeOptions() []shape.MakeOption {
	var opts []shape.MakeOption
	if s.Primitive != "" {
		opts = append(opts, shape.WithPrimitive(s.Primitive))
	}
	if s.Height > 0 {
		opts = append(opts, shape.WithHeight(s.Height))
	}
	if s.Color != "" {
		opts = append(opts, shape.WithShapeOptions(shape.WithFillColor(s.Color)))
	}
	return opts
}

// TrackFigure lays features out as a strip figure, one row per feature.
// With transpose set the rows run vertically, suitable for a left track.
func TrackFigure(feats []*Feature, transpose bool, opts ...figure.Option) (*figure.Figure, error) {
	return StyledTrackFigure(feats, transpose, nil, opts...)
}

// StyledTrackFigure is TrackFigure with per-kind style overrides. Styles
// are keyed by lower-cased feature kind.
func StyledTrackFigure(feats []*Feature, transpose bool, styles map[string]KindStyle, opts ...figure.Option) (*figure.Figure, error) {
	fig := figure.New(opts...)
	for i, f := range feats {
		makeOpts := []shape.MakeOption{shape.AtY(float64(i))}
		if style, ok := styles[strings.ToLower(f.Kind)]; ok {
			makeOpts = append(makeOpts, style.makeOptions()...)
		}
		s, err := ToShape(f, makeOpts...)
		if err != nil {
			return nil, err
		}
		if transpose {
			s = s.Transpose()
		}
		fig.AddTrace(s.AsTrace(f.DisplayName()))
	}
	return fig, nil
}
