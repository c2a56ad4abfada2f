package figure

import (
	"math"
	"testing"
)

func TestGetDomainSingleElement(t *testing.T) {
	d, err := GetDomain(1, 0, false, DefaultSpace)
	if err != nil {
		t.Fatalf("GetDomain() error: %v", err)
	}
	if d.Start != 0 || d.End != 1 {
		t.Errorf("domain = [%v,%v], want [0,1]", d.Start, d.End)
	}
}

func TestGetDomainSpacing(t *testing.T) {
	// Two elements with default spacing: each side loses space/2.
	first, err := GetDomain(2, 0, false, 0.01)
	if err != nil {
		t.Fatalf("GetDomain() error: %v", err)
	}
	second, err := GetDomain(2, 1, false, 0.01)
	if err != nil {
		t.Fatalf("GetDomain() error: %v", err)
	}

	if got, want := first.Start, 0.005; !closeEnough(got, want) {
		t.Errorf("first.Start = %v, want %v", got, want)
	}
	if got, want := first.End, 0.495; !closeEnough(got, want) {
		t.Errorf("first.End = %v, want %v", got, want)
	}
	if got, want := second.Start, 0.505; !closeEnough(got, want) {
		t.Errorf("second.Start = %v, want %v", got, want)
	}
	if got, want := second.End, 0.995; !closeEnough(got, want) {
		t.Errorf("second.End = %v, want %v", got, want)
	}
	if first.End >= second.Start {
		t.Errorf("domains overlap: first ends %v, second starts %v", first.End, second.Start)
	}
}

func TestGetDomainSpaceClamped(t *testing.T) {
	// A huge spacing request is clamped to a tenth of the element extent.
	d, err := GetDomain(4, 0, false, 10)
	if err != nil {
		t.Fatalf("GetDomain() error: %v", err)
	}
	if got, want := d.Start, 0.025; !closeEnough(got, want) {
		t.Errorf("Start = %v, want %v", got, want)
	}
	if got, want := d.End, 0.225; !closeEnough(got, want) {
		t.Errorf("End = %v, want %v", got, want)
	}
}

func TestGetDomainYReversed(t *testing.T) {
	// In cartesian order, y element 0 is the bottom row.
	bottom, err := GetDomain(3, 0, true, 0.01)
	if err != nil {
		t.Fatalf("GetDomain() error: %v", err)
	}
	top, err := GetDomain(3, 2, true, 0.01)
	if err != nil {
		t.Fatalf("GetDomain() error: %v", err)
	}
	if bottom.Start >= top.Start {
		t.Errorf("y element 0 should sit below element 2: got starts %v, %v", bottom.Start, top.Start)
	}
	flat, err := GetDomain(3, 0, false, 0.01)
	if err != nil {
		t.Fatalf("GetDomain() error: %v", err)
	}
	if !closeEnough(flat.Start, bottom.Start) {
		t.Errorf("x element 0 start = %v, want same as y element 0 start %v", flat.Start, bottom.Start)
	}
}

func TestGetDomainTiling(t *testing.T) {
	// Every element's domain must stay inside [0,1] and stay ordered.
	for total := 1; total <= 6; total++ {
		prevEnd := 0.0
		for el := 0; el < total; el++ {
			d, err := GetDomain(total, el, false, 0.01)
			if err != nil {
				t.Fatalf("GetDomain(%d, %d) error: %v", total, el, err)
			}
			if d.Start < 0 || d.End > 1 || d.Start >= d.End {
				t.Errorf("GetDomain(%d, %d) = [%v,%v], outside unit interval", total, el, d.Start, d.End)
			}
			if d.Start < prevEnd {
				t.Errorf("GetDomain(%d, %d) overlaps previous element: start %v < prev end %v", total, el, d.Start, prevEnd)
			}
			prevEnd = d.End
		}
	}
}

func TestGetDomainErrors(t *testing.T) {
	tests := []struct {
		name           string
		total, element int
	}{
		{"element too big", 3, 3},
		{"negative element", 3, -1},
		{"zero total", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GetDomain(tt.total, tt.element, false, 0.01); err == nil {
				t.Errorf("GetDomain(%d, %d) expected error, got nil", tt.total, tt.element)
			}
		})
	}
}

func closeEnough(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
