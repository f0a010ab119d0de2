// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/loan-calculator/pkg/format"
	"github.com/iwvelando/loan-calculator/pkg/loans"
)

// Report is the machine-readable form of one calculation.
type Report struct {
	Parameters loans.Parameters    `json:"parameters"`
	Result     loans.Result        `json:"result"`
	Schedule   []loans.Installment `json:"schedule,omitempty"`
}

// PrettyFormat outputs a human-readable rather than machine-readable summary.
func PrettyFormat(w io.Writer, params loans.Parameters, result loans.Result) error {
	lines := []struct {
		label string
		value string
	}{
		{"Interest Type", params.Model.Label()},
		{"Loan Amount", format.Currency(result.Principal)},
		{"Interest Rate", format.Percent(params.AnnualRatePercent)},
		{"Duration", fmt.Sprintf("%d months", params.DurationMonths)},
		{"Monthly Payment", format.Currency(result.MonthlyPayment)},
		{"Total Payment", format.Currency(result.TotalPayment)},
		{"Total Interest", format.Currency(result.TotalInterest)},
	}

	if _, err := fmt.Fprintf(w, "--- Loan Calculator ---\n"); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-16s| %s\n", line.label, line.value); err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat outputs in comma-separated value format with full precision.
func CsvFormat(w io.Writer, params loans.Parameters, result loans.Result) error {
	writer := csv.NewWriter(w)
	records := [][]string{
		{"model", "amount", "rate", "duration", "monthly payment", "total payment", "total interest"},
		{
			params.Model.String(),
			formatFloat(result.Principal),
			formatFloat(params.AnnualRatePercent),
			strconv.Itoa(params.DurationMonths),
			formatFloat(result.MonthlyPayment),
			formatFloat(result.TotalPayment),
			formatFloat(result.TotalInterest),
		},
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// JSONFormat outputs a Report as indented JSON.
func JSONFormat(w io.Writer, report Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// ScheduleFormat outputs the monthly breakdown as a table.
func ScheduleFormat(w io.Writer, schedule []loans.Installment) error {
	if _, err := fmt.Fprintf(w, "Month | Payment | Principal | Interest | Remaining\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "_____ | _______ | _________ | ________ | _________\n"); err != nil {
		return err
	}
	for _, installment := range schedule {
		_, err := fmt.Fprintf(w, "%5d | %s | %s | %s | %s\n",
			installment.Month,
			format.Currency(installment.Payment),
			format.Currency(installment.Principal),
			format.Currency(installment.Interest),
			format.Currency(installment.RemainingPrincipal),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
