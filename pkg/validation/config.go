// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/loan-calculator/pkg/constants"
)

// CalculatorDefaults mirrors the configurable starting values of the calculator.
type CalculatorDefaults struct {
	Amount         float64
	InterestRate   float64
	DurationMonths int
}

// ValidateAmount reports whether a configured amount will be clamped.
func ValidateAmount(amount float64) string {
	if amount < constants.MinLoanAmount || amount > constants.MaxLoanAmount {
		return fmt.Sprintf("Default amount %.2f is outside [%.0f, %.0f] and will be clamped",
			amount, constants.MinLoanAmount, constants.MaxLoanAmount)
	}
	return ""
}

// ValidateInterestRate reports whether a configured rate sits outside the rate control.
func ValidateInterestRate(rate float64) string {
	if rate < constants.MinInterestRate || rate > constants.MaxInterestRate {
		return fmt.Sprintf("Default interest rate %.2f%% is outside the advertised range [%.0f%%, %.0f%%]",
			rate, constants.MinInterestRate, constants.MaxInterestRate)
	}
	return ""
}

// ValidateDuration reports whether a configured duration sits outside the duration control.
func ValidateDuration(months int) string {
	if months < constants.MinDurationMonths || months > constants.MaxDurationMonths {
		return fmt.Sprintf("Default duration %d months is outside the advertised range [%d, %d]",
			months, constants.MinDurationMonths, constants.MaxDurationMonths)
	}
	return ""
}

// ValidateAll validates the calculator defaults and returns warnings
func (d CalculatorDefaults) ValidateAll() []string {
	var warnings []string

	for _, warning := range []string{
		ValidateAmount(d.Amount),
		ValidateInterestRate(d.InterestRate),
		ValidateDuration(d.DurationMonths),
	} {
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return warnings
}
