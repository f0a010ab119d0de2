package loans

import (
	"errors"
	"fmt"
	"strings"
)

// InterestModel selects the formula used to derive payments.
type InterestModel string

const (
	// Simple accrues interest linearly over the full term and splits the
	// total evenly across the months.
	Simple InterestModel = "simple"

	// Compound is the standard amortizing loan with monthly compounding.
	Compound InterestModel = "compound"
)

// KnownInterestModels lists every supported model in display order.
var KnownInterestModels = []InterestModel{
	Simple,
	Compound,
}

// ErrUnknownInterestModel is returned when parsing an unsupported model name.
var ErrUnknownInterestModel = errors.New("unknown interest model")

func (m InterestModel) String() string {
	return string(m)
}

// Label returns the human-readable name shown next to the model selector.
func (m InterestModel) Label() string {
	switch m {
	case Compound:
		return "Compound Interest"
	default:
		return "Simple Interest"
	}
}

// IsKnownInterestModel reports whether m is one of KnownInterestModels.
func IsKnownInterestModel(m InterestModel) bool {
	for _, known := range KnownInterestModels {
		if known == m {
			return true
		}
	}
	return false
}

// ParseInterestModel converts a case-insensitive name into an InterestModel.
func ParseInterestModel(s string) (InterestModel, error) {
	m := InterestModel(strings.ToLower(strings.TrimSpace(s)))
	if !IsKnownInterestModel(m) {
		return "", fmt.Errorf("%w: %q", ErrUnknownInterestModel, s)
	}
	return m, nil
}

// Parameters holds the inputs of a single calculation.
type Parameters struct {
	Principal         float64       `json:"amount"`
	AnnualRatePercent float64       `json:"rate"`
	DurationMonths    int           `json:"duration"`
	Model             InterestModel `json:"model"`
}

// Result holds the values derived from a set of Parameters.
type Result struct {
	Principal      float64 `json:"principal"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// Installment holds the values for a given month of the repayment schedule.
type Installment struct {
	Month              int     `json:"month"`
	Payment            float64 `json:"payment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	RemainingPrincipal float64 `json:"remainingPrincipal"`
}
