package shape

import "github.com/genofig/genofig/pkg/figure"

// box appends the five vertices of a closed rectangle covering span onto
// the coordinate slices.
func box(xs, ys []figure.Coord, s Span, y, height float64) ([]figure.Coord, []figure.Coord) {
	w, left := s.width()
	xs = append(xs,
		figure.Coord(left), figure.Coord(left),
		figure.Coord(left+w), figure.Coord(left+w),
		figure.Coord(left))
	ys = append(ys,
		figure.Coord(y), figure.Coord(y+height),
		figure.Coord(y+height), figure.Coord(y),
		figure.Coord(y))
	return xs, ys
}

// connector appends a break-delimited line segment from x1 to x2 at height cy.
func connector(xs, ys []figure.Coord, x1, x2, cy float64) ([]figure.Coord, []figure.Coord) {
	xs = append(xs, figure.Break(), figure.Coord(x1), figure.Coord(x2), figure.Break())
	ys = append(ys, figure.Break(), figure.Coord(cy), figure.Coord(cy), figure.Break())
	return xs, ys
}

// NewRectangle builds a rectangle per span, with spans joined by a
// mid-height connector segment. y is the baseline and height the vertical
// extent of each rectangle.
func NewRectangle(spans []Span, y, height float64, opts ...Option) (*Shape, error) {
	if len(spans) == 0 {
		return nil, ErrNoSpans
	}

	s := newShape("lines", opts...)
	s.X, s.Y = box(nil, nil, spans[0], y, height)
	for i := 1; i < len(spans); i++ {
		s.X, s.Y = connector(s.X, s.Y, spans[i-1].End, spans[i].Start, y+height/2)
		s.X, s.Y = box(s.X, s.Y, spans[i], y, height)
	}
	return s, nil
}
