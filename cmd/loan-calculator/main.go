package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/iwvelando/loan-calculator/internal/calculator"
	"github.com/iwvelando/loan-calculator/internal/config"
	"github.com/iwvelando/loan-calculator/internal/logging"
	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/loans"
	"github.com/iwvelando/loan-calculator/pkg/output"
	"github.com/iwvelando/loan-calculator/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// loadConfiguration reads the configuration file, falling back to the
// built-in defaults when the default file location does not exist.
func loadConfiguration(path string, explicit bool) (*config.Configuration, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return config.DefaultConfiguration()
		}
		return nil, err
	}
	return config.LoadConfiguration(path)
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("loan-calculator", flag.ContinueOnError)
	flags.SetOutput(stderr)

	// Process command line flags first to get config location
	configLocation := flags.String("config", constants.DefaultConfigFile, "path to configuration file")
	amount := flags.String("amount", "", "loan amount; values outside the allowed range are clamped")
	rate := flags.Float64("rate", 0, "annual interest rate in percent")
	duration := flags.Int("duration", 0, "loan duration in months")
	model := flags.String("model", "", "interest model override: simple, compound")
	outputFormatFlag := flags.String("output-format", "", "type of output override: pretty, csv, json")
	schedule := flags.Bool("schedule", false, "include the monthly payment schedule")
	logLevel := flags.String("log-level", "", "log level override (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	conf, err := loadConfiguration(*configLocation, set["config"])
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return 1
	}

	// Initialize logging based on config and CLI override
	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Error(err.Error(),
			zap.String("op", "main"),
		)
		return 1
	}

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	defaults, err := conf.Defaults()
	if err != nil {
		logger.Error("failed to read calculator defaults",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return 1
	}

	var modelOverride loans.InterestModel
	if set["model"] {
		modelOverride, err = loans.ParseInterestModel(*model)
		if err != nil {
			logger.Error("invalid interest model",
				zap.String("op", "main"),
				zap.String("model", *model),
				zap.Error(err),
			)
			return 1
		}
	}

	session := calculator.NewSession(logger, defaults)
	session.Update(func(p *loans.Parameters) {
		if set["amount"] {
			p.Principal = loans.NormalizePrincipal(*amount)
		}
		if set["rate"] {
			p.AnnualRatePercent = *rate
		}
		if set["duration"] {
			p.DurationMonths = *duration
		}
		if modelOverride != "" {
			p.Model = modelOverride
		}
	})

	params := session.Parameters()
	result := session.Result()
	includeSchedule := conf.Output.Schedule || *schedule

	logger.Debug("computed loan",
		zap.String("op", "main"),
		zap.String("model", params.Model.String()),
		zap.Float64("principal", result.Principal),
		zap.Bool("schedule", includeSchedule),
	)

	var installments []loans.Installment
	if includeSchedule {
		installments = loans.NewScheduleGenerator(logger).GenerateSchedule(params)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		err = output.PrettyFormat(stdout, params, result)
		if err == nil && includeSchedule {
			if _, err = fmt.Fprintln(stdout); err == nil {
				err = output.ScheduleFormat(stdout, installments)
			}
		}
	case constants.OutputFormatCSV:
		err = output.CsvFormat(stdout, params, result)
	case constants.OutputFormatJSON:
		err = output.JSONFormat(stdout, output.Report{
			Parameters: params,
			Result:     result,
			Schedule:   installments,
		})
	}
	if err != nil {
		logger.Error("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return 1
	}

	return 0
}
