package core

import (
	"image/color"
	"math"
	"testing"
)

func TestColor_Arithmetic(t *testing.T) {
	a := NewColor(0.5, 0.25, 1)
	b := NewColor(0.5, 2, 0)

	if got := a.Add(b); got != NewColor(1, 2.25, 1) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Multiply(b); got != NewColor(0.25, 0.5, 0) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := a.Scale(2); got != NewColor(1, 0.5, 2) {
		t.Errorf("Scale: got %v", got)
	}
}

func TestColor_Clamp(t *testing.T) {
	c := NewColor(-0.5, 0.3, 7).Clamp()
	if c != NewColor(0, 0.3, 1) {
		t.Errorf("Expected (0, 0.3, 1), got %v", c)
	}
}

func TestColor_ToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected color.RGBA
	}{
		{"black", Black, color.RGBA{0, 0, 0, 255}},
		{"white", White, color.RGBA{255, 255, 255, 255}},
		{"overexposed is clamped", NewColor(5, -1, 1), color.RGBA{255, 0, 255, 255}},
		// 0.5^(1/2.2) * 255 = 186.08
		{"mid gray", NewColor(0.5, 0.5, 0.5), color.RGBA{186, 186, 186, 255}},
		// 0.2^(1/2.2) * 255 = 122.69
		{"dim red", NewColor(0.2, 0, 0), color.RGBA{123, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.color.ToRGBA()
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColor_RoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		rgba := color.RGBA{uint8(b), uint8(b), uint8(b), 255}
		back := ColorFromRGBA(rgba).ToRGBA()
		if back != rgba {
			t.Fatalf("Byte %d did not round trip: got %v", b, back)
		}
	}
}

func TestColorFromRGBA_Linear(t *testing.T) {
	c := ColorFromRGBA(color.RGBA{R: 186, G: 0, B: 255, A: 255})

	const tolerance = 0.01
	if math.Abs(float64(c.Red)-0.5) > tolerance {
		t.Errorf("Expected red ≈ 0.5, got %v", c.Red)
	}
	if c.Green != 0 || c.Blue != 1 {
		t.Errorf("Expected green 0 and blue 1, got %v", c)
	}
}
