// Package loans provides the loan payment calculations behind the calculator.
package loans

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/mathutil"
)

// DefaultParameters returns the values the calculator starts with.
func DefaultParameters() Parameters {
	return Parameters{
		Principal:         constants.DefaultLoanAmount,
		AnnualRatePercent: constants.DefaultInterestRate,
		DurationMonths:    constants.DefaultDurationMonths,
		Model:             Simple,
	}
}

// ClampPrincipal bounds a numeric loan amount to the advertised range.
// NaN and zero are treated as a missing amount and become the default.
func ClampPrincipal(amount float64) float64 {
	if math.IsNaN(amount) || amount == 0 {
		amount = constants.DefaultLoanAmount
	}
	return mathutil.Clamp(amount, constants.MinLoanAmount, constants.MaxLoanAmount)
}

// NormalizePrincipal converts raw amount input into a valid principal. Input
// that is not a number falls back to the default amount; it is never an error.
func NormalizePrincipal(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return constants.DefaultLoanAmount
	}

	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return constants.DefaultLoanAmount
	}
	return ClampPrincipal(amount)
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the standard amortization formula.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	if periodicInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	denominator := power - 1.00
	if denominator == 0 {
		// The rate is too small to register against 1.0 in double precision.
		return principal / float64(termMonths)
	}

	payment := principal * (periodicInterestRate * power) / denominator
	if !mathutil.IsFinite(payment) {
		// Same payment written with the discount factor, which stays finite
		// until principal*rate itself overflows.
		discount := math.Pow(1.00+periodicInterestRate, -float64(termMonths))
		payment = principal * periodicInterestRate / (1.00 - discount)
	}
	return payment
}

// Compute derives the monthly and total payment for params. It never fails:
// the principal is clamped, a non-positive duration yields zero payments, and
// a negative or non-finite rate is treated as zero.
func Compute(params Parameters) Result {
	principal := ClampPrincipal(params.Principal)
	result := Result{Principal: principal}

	months := params.DurationMonths
	if months <= 0 {
		return result
	}

	rate := params.AnnualRatePercent
	if !mathutil.IsFinite(rate) || rate < 0 {
		rate = 0
	}

	switch params.Model {
	case Compound:
		result.MonthlyPayment = CalculateMonthlyPayment(principal, rate, months)
		result.TotalPayment = result.MonthlyPayment * float64(months)
		if rate == 0 {
			result.TotalPayment = principal
		}
	default:
		ratePerYear := rate / constants.PercentageMultiplier
		timeYears := float64(months) / constants.MonthsPerYear
		result.TotalPayment = principal * (1 + ratePerYear*timeYears)
		result.MonthlyPayment = result.TotalPayment / float64(months)
	}

	result.TotalInterest = result.TotalPayment - principal
	return result
}
