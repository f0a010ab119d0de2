// Package config defines the data structures related to configuration and
// includes functions for loading and converting the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/loans"
	"github.com/iwvelando/loan-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for loan-calculator.
type Configuration struct {
	Calculator CalculatorConfig `mapstructure:"calculator" yaml:"calculator,omitempty"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging,omitempty"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output,omitempty"`
}

// CalculatorConfig holds the values the calculator starts with.
type CalculatorConfig struct {
	Amount         float64 `mapstructure:"amount" yaml:"amount,omitempty"`
	InterestRate   float64 `mapstructure:"interestRate" yaml:"interestRate,omitempty"`
	DurationMonths int     `mapstructure:"durationMonths" yaml:"durationMonths,omitempty"`
	InterestModel  string  `mapstructure:"interestModel" yaml:"interestModel,omitempty"` // simple, compound
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv, json
	Schedule bool   `mapstructure:"schedule" yaml:"schedule,omitempty"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")

	v.SetDefault("calculator.amount", constants.DefaultLoanAmount)
	v.SetDefault("calculator.interestRate", constants.DefaultInterestRate)
	v.SetDefault("calculator.durationMonths", constants.DefaultDurationMonths)
	v.SetDefault("calculator.interestModel", string(loans.Simple))
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.schedule", false)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")

	// LOANCALC_CALCULATOR_AMOUNT overrides calculator.amount and so on.
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

// DefaultConfiguration returns the built-in defaults plus any environment
// overrides, for when no configuration file is present.
func DefaultConfiguration() (*Configuration, error) {
	return decode(newViper())
}

// Defaults converts the calculator section into engine parameters.
func (c *Configuration) Defaults() (loans.Parameters, error) {
	model, err := loans.ParseInterestModel(c.Calculator.InterestModel)
	if err != nil {
		return loans.Parameters{}, fmt.Errorf("invalid calculator.interestModel: %w", err)
	}

	return loans.Parameters{
		Principal:         loans.ClampPrincipal(c.Calculator.Amount),
		AnnualRatePercent: c.Calculator.InterestRate,
		DurationMonths:    c.Calculator.DurationMonths,
		Model:             model,
	}, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	defaults := validation.CalculatorDefaults{
		Amount:         c.Calculator.Amount,
		InterestRate:   c.Calculator.InterestRate,
		DurationMonths: c.Calculator.DurationMonths,
	}
	return defaults.ValidateAll()
}
