package integration

import (
	"math"
	"testing"
	"time"

	"github.com/iwvelando/loan-calculator/internal/calculator"
	"github.com/iwvelando/loan-calculator/internal/config"
	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/loans"
	"go.uber.org/zap"
)

// TestPerformance sweeps the control domain through a single session and
// checks both the timing and the basic invariants of every result.
func TestPerformance(t *testing.T) {
	session := calculator.NewSession(zap.NewNop(), loans.DefaultParameters())

	computations := 0
	start := time.Now()

	for _, model := range loans.KnownInterestModels {
		for amount := constants.MinLoanAmount; amount <= constants.MaxLoanAmount; amount += 10000 {
			for rate := constants.MinInterestRate; rate <= constants.MaxInterestRate; rate++ {
				for months := constants.MinDurationMonths; months <= constants.MaxDurationMonths; months++ {
					session.Update(func(p *loans.Parameters) {
						p.Model = model
						p.Principal = amount
						p.AnnualRatePercent = rate
						p.DurationMonths = months
					})
					computations++

					result := session.Result()
					if math.IsNaN(result.TotalPayment) || math.IsInf(result.TotalPayment, 0) {
						t.Fatalf("non-finite total for %+v", session.Parameters())
					}
					if result.TotalPayment < result.Principal {
						t.Fatalf("total %.4f below principal %.4f for %+v", result.TotalPayment, result.Principal, session.Parameters())
					}
					if math.Abs(result.MonthlyPayment*float64(months)-result.TotalPayment) > 1e-6*result.TotalPayment {
						t.Fatalf("monthly payment does not add up to total for %+v", session.Parameters())
					}
				}
			}
		}
	}

	elapsed := time.Since(start)

	t.Logf("Performance metrics:")
	t.Logf("  Computations: %d", computations)
	t.Logf("  Total time: %v", elapsed)

	if elapsed > 10*time.Second {
		t.Errorf("Total processing time %v exceeds 10 second threshold", elapsed)
	}
}

// TestMemoryUsage performs basic memory usage validation
func TestMemoryUsage(t *testing.T) {
	generator := loans.NewScheduleGenerator(zap.NewNop())

	// Run multiple iterations to check for memory leaks
	for i := 0; i < 10; i++ {
		conf, err := config.LoadConfiguration(exampleConfig)
		if err != nil {
			t.Fatalf("LoadConfiguration failed on iteration %d: %v", i, err)
		}

		params, err := conf.Defaults()
		if err != nil {
			t.Fatalf("Defaults failed on iteration %d: %v", i, err)
		}
		params.DurationMonths = constants.MaxDurationMonths

		if schedule := generator.GenerateSchedule(params); len(schedule) != constants.MaxDurationMonths {
			t.Fatalf("expected %d installments on iteration %d, got %d", constants.MaxDurationMonths, i, len(schedule))
		}
	}

	t.Log("Successfully completed 10 iterations without memory issues")
}

// TestDataConsistency validates that multiple runs produce identical results
func TestDataConsistency(t *testing.T) {
	var first loans.Result
	var firstSchedule []loans.Installment

	for run := 0; run < 3; run++ {
		_, session := loadExample(t)
		result := session.Result()
		schedule := loans.Schedule(session.Parameters())

		if run == 0 {
			first = result
			firstSchedule = schedule
			continue
		}

		// Compare with first run
		if result != first {
			t.Errorf("Run %d: result %+v differs from %+v", run, result, first)
		}
		if len(schedule) != len(firstSchedule) {
			t.Errorf("Run %d: got %d installments, expected %d", run, len(schedule), len(firstSchedule))
			continue
		}
		for i := range schedule {
			if schedule[i] != firstSchedule[i] {
				t.Errorf("Run %d, month %d: %+v differs from %+v", run, i+1, schedule[i], firstSchedule[i])
			}
		}
	}

	t.Log("Data consistency verified across multiple runs")
}

// TestConfigurationVariations tests different configuration variations
func TestConfigurationVariations(t *testing.T) {
	variations := []struct {
		name            string
		modifyConfig    func(*config.Configuration)
		expectError     bool
		expectWarnings  int
		expectPrincipal float64
	}{
		{
			name: "Baseline config",
			modifyConfig: func(c *config.Configuration) {
				// No changes
			},
			expectPrincipal: 100000,
		},
		{
			name: "Amount above range",
			modifyConfig: func(c *config.Configuration) {
				c.Calculator.Amount = 750000
			},
			expectWarnings:  1,
			expectPrincipal: constants.MaxLoanAmount,
		},
		{
			name: "Zero duration",
			modifyConfig: func(c *config.Configuration) {
				c.Calculator.DurationMonths = 0
			},
			expectWarnings:  1,
			expectPrincipal: 100000,
		},
		{
			name: "Unknown interest model",
			modifyConfig: func(c *config.Configuration) {
				c.Calculator.InterestModel = "balloon"
			},
			expectError: true,
		},
	}

	for _, variation := range variations {
		t.Run(variation.name, func(t *testing.T) {
			conf, err := config.LoadConfiguration(exampleConfig)
			if err != nil {
				t.Fatalf("LoadConfiguration failed: %v", err)
			}

			// Apply variation
			variation.modifyConfig(conf)

			params, err := conf.Defaults()
			if variation.expectError {
				if err == nil {
					t.Errorf("Expected error in Defaults but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error in Defaults: %v", err)
			}

			if warnings := conf.ValidateConfiguration(); len(warnings) != variation.expectWarnings {
				t.Errorf("Expected %d warnings, got %v", variation.expectWarnings, warnings)
			}
			if params.Principal != variation.expectPrincipal {
				t.Errorf("Expected principal %.2f, got %.2f", variation.expectPrincipal, params.Principal)
			}
		})
	}
}
