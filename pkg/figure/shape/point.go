package shape

import "github.com/genofig/genofig/pkg/figure"

// NewPoint builds a single marker at (x, y). Size and symbol default to
// [DefaultPointSize] and [DefaultSymbol]; override with [WithSize] and
// [WithSymbol].
func NewPoint(x, y float64, opts ...Option) *Shape {
	s := newShape("markers", opts...)
	s.X = []figure.Coord{figure.Coord(x)}
	s.Y = []figure.Coord{figure.Coord(y)}
	return s
}
