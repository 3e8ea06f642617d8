package sharedstreets

import (
	"testing"
)

func TestFormatDecimal(t *testing.T) {
	cases := []struct {
		value  float64
		places int
		want   string
	}{
		{110.0, 6, "110.000000"},
		{45.0, 6, "45.000000"},
		{-74.0048213, 6, "-74.004821"},
		{40.7416415, 6, "40.741642"},
		// Half at the last retained digit rounds away from zero in both hemispheres
		{-74.0051265, 6, "-74.005127"},
		{40.7408505, 6, "40.740851"},
		{0.0, 6, "0.000000"},
		{-0.0000001, 6, "0.000000"},
		{-0.0000009, 6, "-0.000001"},
		{179.9999995, 6, "180.000000"},
		{1.5, 0, "2"},
		{37.6417350769043, 2, "37.64"},
		{-37.645, 2, "-37.65"},
	}
	for _, c := range cases {
		got := formatDecimal(c.value, c.places)
		if got != c.want {
			t.Errorf("formatDecimal(%v, %d) must be '%s', but got '%s'", c.value, c.places, c.want, got)
		}
	}
}

func TestFormatCoordinateStability(t *testing.T) {
	// Raw floats that differ below the 6th decimal must format identically
	a := formatCoordinate(110.0)
	b := formatCoordinate(110.0000001)
	if a != b {
		t.Errorf("Coordinates rounding to the same 6 decimals must format identically, got '%s' and '%s'", a, b)
	}
}
