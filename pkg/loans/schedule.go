package loans

import (
	"fmt"

	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return remainingPrincipal * annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// ScheduleGenerator provides utilities for generating month-by-month repayment schedules
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// Schedule is a convenience wrapper around a generator without logging.
func Schedule(params Parameters) []Installment {
	return NewScheduleGenerator(nil).GenerateSchedule(params)
}

// GenerateSchedule breaks the result of Compute down into monthly installments.
// The payments add up to Result.TotalPayment and the last installment leaves
// no remaining principal. A non-positive duration yields an empty schedule.
func (g *ScheduleGenerator) GenerateSchedule(params Parameters) []Installment {
	result := Compute(params)
	months := params.DurationMonths
	if months <= 0 {
		g.logger.Debug("no schedule for a non-positive duration",
			zap.String("op", "loans.GenerateSchedule"),
			zap.Int("durationMonths", months),
		)
		return nil
	}

	var schedule []Installment
	if params.Model == Compound && !mathutil.IsZero(result.TotalInterest) {
		schedule = g.amortize(result, params.AnnualRatePercent, months)
	} else {
		schedule = g.evenSplit(result, months)
	}

	var paid float64
	for _, installment := range schedule {
		paid += installment.Payment
	}
	if !mathutil.WithinTolerance(paid, result.TotalPayment, constants.CurrencyTolerance) {
		g.logger.Warn("schedule payments do not add up to the total payment",
			zap.String("op", "loans.GenerateSchedule"),
			zap.Float64("scheduled", paid),
			zap.Float64("totalPayment", result.TotalPayment),
		)
	}

	g.logger.Debug(fmt.Sprintf("generated %d installments for %s loan of %.2f",
		len(schedule), params.Model, result.Principal),
		zap.String("op", "loans.GenerateSchedule"),
	)
	return schedule
}

// amortize charges interest on the remaining balance each month.
func (g *ScheduleGenerator) amortize(result Result, annualInterestRate float64, months int) []Installment {
	schedule := make([]Installment, 0, months)
	remaining := result.Principal

	for month := 1; month <= months; month++ {
		var current Installment
		current.Month = month
		current.Interest = CalculateInterestPayment(remaining, annualInterestRate)
		current.Payment = result.MonthlyPayment
		current.Principal = current.Payment - current.Interest

		if month == months {
			// Absorb accumulated machine error so the loan closes at exactly 0.
			current.Principal = remaining
			current.Payment = current.Principal + current.Interest
			current.RemainingPrincipal = 0
		} else {
			current.RemainingPrincipal = remaining - current.Principal
		}

		remaining = current.RemainingPrincipal
		schedule = append(schedule, current)
	}
	return schedule
}

// evenSplit spreads principal and interest evenly, matching how the simple
// model divides its lump total.
func (g *ScheduleGenerator) evenSplit(result Result, months int) []Installment {
	schedule := make([]Installment, 0, months)
	principalPart := result.Principal / float64(months)
	interestPart := result.TotalInterest / float64(months)
	remaining := result.Principal

	for month := 1; month <= months; month++ {
		current := Installment{
			Month:     month,
			Payment:   result.MonthlyPayment,
			Principal: principalPart,
			Interest:  interestPart,
		}
		if month == months {
			current.Principal = remaining
			current.RemainingPrincipal = 0
		} else {
			current.RemainingPrincipal = remaining - principalPart
		}
		remaining = current.RemainingPrincipal
		schedule = append(schedule, current)
	}
	return schedule
}
