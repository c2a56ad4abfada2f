package figure

import "fmt"

// DefaultSpace is the default separation between grid elements, as a
// fraction of the unit interval.
const DefaultSpace = 0.01

// GetDomain returns the evenly spaced domain for one element of a grid plot.
// total is the number of elements on the axis and element the index to
// compute the domain for. For y axes the index is reversed so the result is
// in cartesian, not array, order: element 0 is the bottom row.
//
// The separation applied on each side of an element is space/2, clamped to a
// tenth of the per-element extent so spacing never swallows small panels.
func GetDomain(total, element int, isY bool, space float64) (Domain, error) {
	if total < 1 {
		return Domain{}, fmt.Errorf("invalid total %d", total)
	}
	if total == 1 {
		return Domain{Start: 0, End: 1}, nil
	}
	if element < 0 || element > total-1 {
		return Domain{}, fmt.Errorf("%d index too big for %d", element, total)
	}

	perElement := 1 / float64(total)
	if half := perElement / 10; space/2 < half {
		space = space / 2
	} else {
		space = half
	}

	if isY {
		element = total - element - 1
	}

	start := perElement * float64(element)
	return Domain{Start: start + space, End: start + perElement - space}, nil
}
