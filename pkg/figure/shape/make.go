package shape

import (
	"math"
	"strings"
)

// Primitive kinds produced by [Make].
const (
	KindRectangle = "rectangle"
	KindArrow     = "arrow"
	KindDiamond   = "diamond"
	KindPoint     = "point"
)

// kindPrimitives maps feature kinds to their conventional primitive.
// Unlisted kinds render as rectangles.
var kindPrimitives = map[string]string{
	"cds":        KindArrow,
	"exon":       KindArrow,
	"transcript": KindArrow,
	"gene":       KindArrow,
	"repeat":     KindRectangle,
	"snp":        KindPoint,
	"snv":        KindPoint,
	"variation":  KindDiamond,
}

// kindColors maps feature kinds to their conventional fill color.
var kindColors = map[string]string{
	"cds":        "rgba(0,0,150,0.5)",
	"exon":       "rgba(0,0,100,0.5)",
	"gene":       "rgba(0,0,150,0.5)",
	"transcript": "rgba(0,0,200,0.5)",
	"snp":        "rgba(200,0,0,0.5)",
	"snv":        "rgba(200,0,0,0.5)",
}

// PrimitiveFor returns the primitive kind used for a feature kind.
func PrimitiveFor(featureKind string) string {
	if p, ok := kindPrimitives[strings.ToLower(featureKind)]; ok {
		return p
	}
	return KindRectangle
}

// ColorFor returns the conventional fill color for a feature kind, or ""
// when the kind has no assigned color.
func ColorFor(featureKind string) string {
	return kindColors[strings.ToLower(featureKind)]
}

// MakeOption adjusts geometry parameters for [Make].
type MakeOption func(*makeOpts)

type makeOpts struct {
	y         float64
	height    float64
	headWidth float64
	reverse   *bool
	primitive string
	shapeOpts []Option
}

// AtY places the shape baseline at y instead of 0.
func AtY(y float64) MakeOption { return func(o *makeOpts) { o.y = y } }

// WithHeight overrides the default shape height.
func WithHeight(h float64) MakeOption { return func(o *makeOpts) { o.height = h } }

// WithHeadWidth overrides the default arrow head proportion.
func WithHeadWidth(w float64) MakeOption { return func(o *makeOpts) { o.headWidth = w } }

// Reversed forces the strand direction instead of inferring it from the
// span order.
func Reversed(r bool) MakeOption { return func(o *makeOpts) { o.reverse = &r } }

// WithPrimitive forces the primitive instead of the kind's conventional one.
func WithPrimitive(p string) MakeOption { return func(o *makeOpts) { o.primitive = p } }

// WithShapeOptions forwards extra styling options to the primitive.
func WithShapeOptions(opts ...Option) MakeOption {
	return func(o *makeOpts) { o.shapeOpts = append(o.shapeOpts, opts...) }
}

// Make builds the conventional primitive for a feature kind. kind selects
// the primitive and color (case-insensitive); name becomes the hover text.
// Direction is inferred from the span order: spans running backwards along
// the axis produce a reversed arrow. Spans must be non-empty and carry at
// least one finite coordinate.
func Make(kind, name string, spans []Span, opts ...MakeOption) (*Shape, error) {
	if len(spans) == 0 {
		return nil, ErrNoSpans
	}
	for _, sp := range spans {
		if math.IsNaN(sp.Start) || math.IsNaN(sp.End) {
			return nil, ErrNoSpans
		}
	}

	o := makeOpts{height: DefaultHeight, headWidth: DefaultHeadWidth}
	for _, opt := range opts {
		opt(&o)
	}

	reverse := spans[0].Start > spans[len(spans)-1].End
	if o.reverse != nil {
		reverse = *o.reverse
	}

	shapeOpts := append([]Option{
		WithName(kind),
		WithText(name),
		WithLegendGroup(kind),
		WithFillColor(ColorFor(kind)),
	}, o.shapeOpts...)

	primitive := PrimitiveFor(kind)
	if o.primitive != "" {
		primitive = o.primitive
	}

	switch primitive {
	case KindArrow:
		return NewArrow(spans, o.y, o.height, o.headWidth, reverse, shapeOpts...)
	case KindDiamond:
		return NewDiamond(spans, o.y, o.height, shapeOpts...)
	case KindPoint:
		x := math.Min(spans[0].Start, spans[len(spans)-1].End)
		return NewPoint(x, 1, shapeOpts...), nil
	default:
		return NewRectangle(spans, o.y, o.height, shapeOpts...)
	}
}
