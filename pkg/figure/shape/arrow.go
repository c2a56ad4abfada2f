package shape

import "github.com/genofig/genofig/pkg/figure"

// NewArrow builds a directional shape: a rectangle per span except the last,
// which carries an arrow head. headWidth scales the head overhang relative to
// the span (doubled, as a fraction of height and width). When reverse is set
// the head is mirrored about the final span and the vertex order flipped, so
// the arrow points at the span start.
func NewArrow(spans []Span, y, height, headWidth float64, reverse bool, opts ...Option) (*Shape, error) {
	if len(spans) == 0 {
		return nil, ErrNoSpans
	}

	s := newShape("lines", opts...)
	for i := 0; i < len(spans)-1; i++ {
		s.X, s.Y = box(s.X, s.Y, spans[i], y, height)
		s.X, s.Y = connector(s.X, s.Y, spans[i].End, spans[i+1].Start, y+height/2)
	}

	last := spans[len(spans)-1]
	w, left := last.width()
	hh := height * headWidth * 2
	hw := w * headWidth * 2

	headX := []figure.Coord{
		figure.Coord(left),
		figure.Coord(left + w - hw),
		figure.Coord(left + w - hw),
		figure.Coord(left + w),
		figure.Coord(left + w - hw),
		figure.Coord(left + w - hw),
		figure.Coord(left),
		figure.Coord(left),
	}
	headY := []figure.Coord{
		figure.Coord(y),
		figure.Coord(y),
		figure.Coord(y - hh),
		figure.Coord(y + height/2),
		figure.Coord(y + height + hh),
		figure.Coord(y + height),
		figure.Coord(y + height),
		figure.Coord(y),
	}

	if reverse {
		// Mirror each x about the span extent, then flip the winding so the
		// polygon stays closed: x' = max + min - x, emitted in reverse order.
		lo, hi := figure.Coord(left), figure.Coord(left+w)
		for i := len(headX) - 1; i >= 0; i-- {
			s.X = append(s.X, hi-headX[i]+lo)
			s.Y = append(s.Y, headY[i])
		}
	} else {
		s.X = append(s.X, headX...)
		s.Y = append(s.Y, headY...)
	}
	return s, nil
}
