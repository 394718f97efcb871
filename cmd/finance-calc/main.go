package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iwvelando/finance-calc/internal/config"
	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/format"
	"github.com/iwvelando/finance-calc/pkg/output"
	"github.com/iwvelando/finance-calc/pkg/validation"
)

// Build metadata, set with -ldflags.
var (
	Version   = "dev"
	GitCommit = "development"
	BuildDate = "unknown"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		}
		_ = file.Close()

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

// app is the state shared by every subcommand once the root command has
// loaded the configuration.
type app struct {
	configPath   string
	logLevel     string
	outputFormat string
	locale       string

	conf      *config.Configuration
	logger    *zap.Logger
	formatter format.Formatter
	out       io.Writer
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "finance-calc",
		Short: "Financial calculators for interest, loans, cash flows and fixed income",
		Long: `finance-calc evaluates the common personal-finance formulas:
simple and compound interest, time value of money, PRICE and SAC
amortization, NPV and IRR, percentages, returns, depreciation and a
savings / CDB / LCI fixed-income comparison.

Every calculator is also served over HTTP by "finance-calc serve".`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVar(&a.outputFormat, "output-format", "", "type of output override: pretty, csv")
	flags.StringVar(&a.locale, "locale", "", "locale override for formatted figures (pt-BR, en-US)")

	root.AddCommand(
		newSimpleCommand(a),
		newCompoundCommand(a),
		newFVCommand(a),
		newPVCommand(a),
		newAnnuityFVCommand(a),
		newAnnuityPVCommand(a),
		newAmortizationCommand(a, "price"),
		newAmortizationCommand(a, "sac"),
		newCompareCommand(a),
		newNPVCommand(a),
		newIRRCommand(a),
		newPercentCommand(a),
		newCAGRCommand(a),
		newROICommand(a),
		newInflationCommand(a),
		newDepreciationCommand(a),
		newFixedIncomeCommand(a),
		newServeCommand(a),
		newVersionCommand(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	conf, err := config.LoadConfiguration(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
	}

	// CLI overrides take precedence over config
	if a.outputFormat != "" {
		conf.Output.Format = a.outputFormat
	}
	if a.locale != "" {
		conf.Format.Locale = a.locale
	}
	if a.logLevel != "" {
		if err := validation.ValidateLogLevel(a.logLevel); err != nil {
			return err
		}
		conf.Logging.Level = a.logLevel
	}
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := initializeLogger(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.conf = conf
	a.logger = logger
	a.formatter = format.New(conf.Format.Locale)
	return nil
}

func (a *app) write(report output.Report) error {
	return output.Write(a.out, a.conf.Output.Format, report, a.formatter)
}

func (a *app) warn(op string, warnings ...string) {
	for _, warning := range warnings {
		if warning == "" {
			continue
		}
		a.logger.Warn("Input warning: "+warning,
			zap.String("op", op),
		)
	}
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
