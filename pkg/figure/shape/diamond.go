package shape

import "github.com/genofig/genofig/pkg/figure"

// diamond appends the five vertices of a closed diamond centered on y.
func diamond(xs, ys []figure.Coord, s Span, y, height float64) ([]figure.Coord, []figure.Coord) {
	w, left := s.width()
	hh := height / 2
	xs = append(xs,
		figure.Coord(left), figure.Coord(left+w/2),
		figure.Coord(left+w), figure.Coord(left+w/2),
		figure.Coord(left))
	ys = append(ys,
		figure.Coord(y), figure.Coord(y+hh),
		figure.Coord(y), figure.Coord(y-hh),
		figure.Coord(y))
	return xs, ys
}

// NewDiamond builds a diamond per span, joined by baseline connector
// segments. Diamonds mark non-directional variation features.
func NewDiamond(spans []Span, y, height float64, opts ...Option) (*Shape, error) {
	if len(spans) == 0 {
		return nil, ErrNoSpans
	}

	s := newShape("lines", opts...)
	s.X, s.Y = diamond(nil, nil, spans[0], y, height)
	for i := 1; i < len(spans); i++ {
		s.X, s.Y = connector(s.X, s.Y, spans[i-1].End, spans[i].Start, y)
		s.X, s.Y = diamond(s.X, s.Y, spans[i], y, height)
	}
	return s, nil
}
