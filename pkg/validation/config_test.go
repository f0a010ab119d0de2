package validation

import (
	"strings"
	"testing"
)

func TestCalculatorDefaultsValidateAll(t *testing.T) {
	tests := []struct {
		name             string
		defaults         CalculatorDefaults
		expectedWarnings int
		contains         string
	}{
		{
			name:             "All values in range",
			defaults:         CalculatorDefaults{Amount: 1000, InterestRate: 5, DurationMonths: 12},
			expectedWarnings: 0,
		},
		{
			name:             "Amount below minimum",
			defaults:         CalculatorDefaults{Amount: 500, InterestRate: 5, DurationMonths: 12},
			expectedWarnings: 1,
			contains:         "will be clamped",
		},
		{
			name:             "Rate above maximum",
			defaults:         CalculatorDefaults{Amount: 5000, InterestRate: 25, DurationMonths: 12},
			expectedWarnings: 1,
			contains:         "interest rate",
		},
		{
			name:             "Zero duration",
			defaults:         CalculatorDefaults{Amount: 5000, InterestRate: 5, DurationMonths: 0},
			expectedWarnings: 1,
			contains:         "duration",
		},
		{
			name:             "Everything out of range",
			defaults:         CalculatorDefaults{Amount: 900000, InterestRate: 0, DurationMonths: 61},
			expectedWarnings: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.defaults.ValidateAll()
			if len(warnings) != tt.expectedWarnings {
				t.Fatalf("ValidateAll() returned %d warnings, expected %d: %v", len(warnings), tt.expectedWarnings, warnings)
			}
			if tt.contains != "" && !strings.Contains(warnings[0], tt.contains) {
				t.Errorf("warning %q does not mention %q", warnings[0], tt.contains)
			}
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	if w := ValidateAmount(1000); w != "" {
		t.Errorf("ValidateAmount(1000) = %q, expected no warning", w)
	}
	if w := ValidateAmount(500000); w != "" {
		t.Errorf("ValidateAmount(500000) = %q, expected no warning", w)
	}
	if w := ValidateInterestRate(20); w != "" {
		t.Errorf("ValidateInterestRate(20) = %q, expected no warning", w)
	}
	if w := ValidateDuration(60); w != "" {
		t.Errorf("ValidateDuration(60) = %q, expected no warning", w)
	}
}
