package utils

import "testing"

func TestDirectionFromString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"up", DirectionUp},
		{"down", DirectionDown},
		{"ArrowUp", DirectionUp},
		{"ArrowDown", DirectionDown},
		{"none", DirectionNone},
		{"start", DirectionStart},
		{"sideways", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DirectionFromString(tc.in); got != tc.want {
			t.Errorf("DirectionFromString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi float64
		want      float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tc := range cases {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%g, %g, %g) = %g, want %g", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}
