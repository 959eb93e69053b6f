package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxOverlapRatio(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected float64
	}{
		{"identical", Box{0, 0, 10, 10}, Box{0, 0, 10, 10}, 1},
		{"half covered", Box{0, 0, 10, 10}, Box{5, 0, 10, 10}, 0.5},
		{"quarter covered", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, 0.25},
		{"disjoint", Box{0, 0, 10, 10}, Box{20, 20, 5, 5}, 0},
		{"touching edges", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, 0},
		{"zero area source", Box{0, 0, 0, 10}, Box{0, 0, 10, 10}, 0},
		{"small target inside", Box{0, 0, 10, 10}, Box{2, 2, 2, 2}, 0.04},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.OverlapRatio(tc.b)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("OverlapRatio() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{X: 10, Y: 10, W: 5, H: 5}
	if !b.Contains(Vec{10, 10}) {
		t.Error("top-left corner should be inside")
	}
	if b.Contains(Vec{15, 12}) {
		t.Error("right edge should be exclusive")
	}
	if got := b.Center(); got != (Vec{12.5, 12.5}) {
		t.Errorf("Center() = %v", got)
	}
}

func TestVecDistAndLerp(t *testing.T) {
	a, b := Vec{0, 0}, Vec{3, 4}
	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
	if m := a.Lerp(b, 0.5); m != (Vec{1.5, 2}) {
		t.Errorf("Lerp() = %v", m)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if got := ClampF(1.5, -1, 1); got != 1 {
		t.Errorf("ClampF() = %v, expected 1", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex      string
		expected Color
	}{
		{"#FF0000", ColorRed},
		{"#ffffff", ColorBrightWhite},
		{"#808080", ColorGray},
		{"nope", ColorDefault},
		{"#12345G", ColorDefault},
	}
	for _, tc := range tests {
		if got := ParseHexColor(tc.hex); got != tc.expected {
			t.Errorf("ParseHexColor(%q) = %d, expected %d", tc.hex, got, tc.expected)
		}
	}
}
