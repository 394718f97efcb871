// Package constants provides shared constants for the finance-calc engine and
// its host commands.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// BalanceEpsilon is the residual balance below which a schedule balance
	// is clamped to exactly zero.
	BalanceEpsilon = 0.01

	// CommercialYearDays is the day count of the commercial year used by the
	// fixed-income comparison.
	CommercialYearDays = 360.0

	// MaxSchedulePeriods caps the rows any generated schedule may hold
	// (a thousand years of months).
	MaxSchedulePeriods = 12000

	// DateLayout is the calendar date format accepted for holding periods.
	DateLayout = "2006-01-02"
)

// IRR solver limits
const (
	// IRRDefaultGuess is the seed rate, in percent, for the IRR solver.
	IRRDefaultGuess = 10.0

	// IRRMaxIterations is the hard ceiling on Newton-Raphson steps.
	IRRMaxIterations = 1000

	// IRRPrecision is both the NPV and the step-size convergence threshold.
	IRRPrecision = 1e-5

	// IRRMinDerivative guards the Newton step against a vanishing slope.
	IRRMinDerivative = 1e-12
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// EnvPrefix prefixes environment overrides of configuration keys.
	EnvPrefix = "FINCALC"

	// DefaultLocale is the locale used for formatting when none is configured.
	DefaultLocale = "pt-BR"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Cache defaults
const (
	// CacheBackendMemory keeps results in process memory.
	CacheBackendMemory = "memory"

	// CacheBackendRedis keeps results in a redis instance.
	CacheBackendRedis = "redis"

	// DefaultCacheMaxEntries bounds the in-memory cache.
	DefaultCacheMaxEntries = 1024

	// DefaultRedisAddress is the default redis endpoint for the cache.
	DefaultRedisAddress = "localhost:6379"
)
