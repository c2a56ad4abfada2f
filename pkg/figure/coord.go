package figure

import (
	"math"
	"strconv"
)

// Coord is a single trace coordinate. NaN marks a break between polygon
// segments and marshals to JSON null, which the charting runtime renders
// as a gap in the line.
type Coord float64

// Break returns the coordinate value that separates polygon segments.
func Break() Coord { return Coord(math.NaN()) }

// IsBreak reports whether c is a segment separator.
func (c Coord) IsBreak() bool { return math.IsNaN(float64(c)) }

// MarshalJSON encodes the coordinate, writing null for breaks.
func (c Coord) MarshalJSON() ([]byte, error) {
	if c.IsBreak() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(c), 'g', -1, 64), nil
}

// UnmarshalJSON decodes a coordinate, reading null as a break.
func (c *Coord) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Break()
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*c = Coord(v)
	return nil
}

// MaxCoord returns the largest non-break value in cs, ignoring separators.
// The second return is false when cs contains no plottable values.
func MaxCoord(cs []Coord) (float64, bool) {
	best, found := math.Inf(-1), false
	for _, c := range cs {
		if c.IsBreak() {
			continue
		}
		if v := float64(c); v > best {
			best = v
		}
		found = true
	}
	return best, found
}

// MinCoord returns the smallest non-break value in cs, ignoring separators.
// The second return is false when cs contains no plottable values.
func MinCoord(cs []Coord) (float64, bool) {
	best, found := math.Inf(1), false
	for _, c := range cs {
		if c.IsBreak() {
			continue
		}
		if v := float64(c); v < best {
			best = v
		}
		found = true
	}
	return best, found
}
