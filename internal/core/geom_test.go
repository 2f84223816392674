package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub() = %v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale() = %v", got)
	}
	if got := a.Dot(b); got != 3-8 {
		t.Errorf("Dot() = %v", got)
	}
	if got := a.Len(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Len() = %v, expected 5", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 5, 5, true},
		{"right edge (exclusive)", 12, 5, false},
		{"bottom edge (exclusive)", 5, 8, false},
		{"left of rect", 1, 5, false},
		{"above rect", 5, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)
	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %d", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %d", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.3, -0.5, 0.5); got != 0.3 {
		t.Errorf("ClampF(0.3) = %v", got)
	}
	if got := ClampF(-0.9, -0.5, 0.5); got != -0.5 {
		t.Errorf("ClampF(-0.9) = %v", got)
	}
	if got := ClampF(0.9, -0.5, 0.5); got != 0.5 {
		t.Errorf("ClampF(0.9) = %v", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max failed")
	}
	if Abs(-7) != 7 || Abs(7) != 7 {
		t.Error("Abs failed")
	}
}
