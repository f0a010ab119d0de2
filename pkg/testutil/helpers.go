// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/loan-calculator/pkg/loans"
)

// FindInstallment finds the installment for a month in a schedule.
// Returns a pointer to the installment if found, nil otherwise.
func FindInstallment(schedule []loans.Installment, month int) *loans.Installment {
	for i := range schedule {
		if schedule[i].Month == month {
			return &schedule[i]
		}
	}
	return nil
}

// ScheduleTotals sums the payment, principal and interest columns of a schedule.
func ScheduleTotals(schedule []loans.Installment) (payment, principal, interest float64) {
	for _, installment := range schedule {
		payment += installment.Payment
		principal += installment.Principal
		interest += installment.Interest
	}
	return payment, principal, interest
}
