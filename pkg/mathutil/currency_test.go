package mathutil

import (
	"math"
	"testing"
)

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Very small positive", 0.001, true},
		{"Very small negative", -0.001, true},
		{"Just above tolerance", 0.02, false},
		{"Exactly tolerance", 0.01, true},
		{"Large positive", 100.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(tt.input); result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.0, 100.005, 0.01) {
		t.Error("expected values within 0.01 to match")
	}
	if WithinTolerance(100.0, 100.02, 0.01) {
		t.Error("expected values 0.02 apart not to match with tolerance 0.01")
	}
}

func TestWithinRelativeTolerance(t *testing.T) {
	tests := []struct {
		name      string
		a, b      float64
		tolerance float64
		expected  bool
	}{
		{"Both zero", 0, 0, 1e-9, true},
		{"Identical", 106618.55, 106618.55, 1e-9, true},
		{"Tiny relative drift", 500000, 500000 * (1 + 1e-12), 1e-9, true},
		{"Large relative drift", 1000, 1001, 1e-9, false},
		{"Zero against non-zero", 0, 1e-3, 1e-9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinRelativeTolerance(tt.a, tt.b, tt.tolerance); got != tt.expected {
				t.Errorf("WithinRelativeTolerance(%v, %v, %v) = %v, expected %v", tt.a, tt.b, tt.tolerance, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Below range", 999, 1000},
		{"Above range", 600000, 500000},
		{"Inside range", 25000, 25000},
		{"Lower edge", 1000, 1000},
		{"Upper edge", 500000, 500000},
		{"Negative infinity", math.Inf(-1), 1000},
		{"Positive infinity", math.Inf(1), 500000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Clamp(tt.input, 1000, 500000); result != tt.expected {
				t.Errorf("Clamp(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}

	if result := Clamp(math.NaN(), 1000, 500000); !math.IsNaN(result) {
		t.Errorf("Clamp(NaN) = %v, expected NaN", result)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(12.5) {
		t.Error("expected 12.5 to be finite")
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(v) {
			t.Errorf("expected %v not to be finite", v)
		}
	}
}
