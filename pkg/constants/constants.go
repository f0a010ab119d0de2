// Package constants provides shared constants for the loan-calculator application.
package constants

// Loan amount domain, in currency units.
const (
	// MinLoanAmount is the smallest advertised loan amount
	MinLoanAmount = 1000.0

	// MaxLoanAmount is the largest advertised loan amount
	MaxLoanAmount = 500000.0

	// DefaultLoanAmount is used when the amount input is missing or not a number
	DefaultLoanAmount = MinLoanAmount

	// LoanAmountStep is the granularity of the amount slider
	LoanAmountStep = 1000.0
)

// Interest rate domain, in percent per year.
const (
	// MinInterestRate is the lower bound of the rate slider
	MinInterestRate = 1.0

	// MaxInterestRate is the upper bound of the rate slider
	MaxInterestRate = 20.0

	// DefaultInterestRate is the rate the calculator starts with
	DefaultInterestRate = 5.0

	// InterestRateStep is the granularity of the rate slider
	InterestRateStep = 0.1
)

// Duration domain, in months.
const (
	// MinDurationMonths is the lower bound of the duration slider
	MinDurationMonths = 1

	// MaxDurationMonths is the upper bound of the duration slider
	MaxDurationMonths = 60

	// DefaultDurationMonths is the duration the calculator starts with
	DefaultDurationMonths = 12
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// MaxFractionDigits is the number of fractional digits shown for currency values
	MaxFractionDigits = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// CurrencySymbol is prefixed to every displayed amount
	CurrencySymbol = "₹"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "LOANCALC"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum JSON request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024

	// DefaultReadTimeoutSeconds is the default HTTP read timeout
	DefaultReadTimeoutSeconds = 15

	// DefaultWriteTimeoutSeconds is the default HTTP write timeout
	DefaultWriteTimeoutSeconds = 15

	// DefaultIdleTimeoutSeconds is the default HTTP keep-alive timeout
	DefaultIdleTimeoutSeconds = 60

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown
	DefaultShutdownTimeoutSeconds = 10
)
