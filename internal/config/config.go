// Package config defines the data structures related to configuration and
// includes functions for loading and validating it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/fixedincome"
	"github.com/iwvelando/finance-calc/pkg/validation"
)

// Configuration holds all configuration for finance-calc.
type Configuration struct {
	Logging     LoggingConfig      `yaml:"logging,omitempty" mapstructure:"logging"`
	Output      OutputConfig       `yaml:"output,omitempty" mapstructure:"output"`
	Format      FormatConfig       `yaml:"format,omitempty" mapstructure:"format"`
	Server      ServerConfig       `yaml:"server,omitempty" mapstructure:"server"`
	Cache       CacheConfig        `yaml:"cache,omitempty" mapstructure:"cache"`
	IRR         IRRConfig          `yaml:"irr,omitempty" mapstructure:"irr"`
	FixedIncome fixedincome.Policy `yaml:"fixedIncome,omitempty" mapstructure:"fixedIncome"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv
}

// FormatConfig selects the locale figures are rendered in.
type FormatConfig struct {
	Locale string `yaml:"locale,omitempty" mapstructure:"locale"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Address     string `yaml:"address,omitempty" mapstructure:"address"`
	MaxBodySize string `yaml:"maxBodySize,omitempty" mapstructure:"maxBodySize"`
}

// CacheConfig controls the optional result cache.
type CacheConfig struct {
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled"`
	Backend    string        `yaml:"backend,omitempty" mapstructure:"backend"` // memory, redis
	TTL        time.Duration `yaml:"ttl,omitempty" mapstructure:"ttl"`
	MaxEntries int           `yaml:"maxEntries,omitempty" mapstructure:"maxEntries"`
	Redis      RedisConfig   `yaml:"redis,omitempty" mapstructure:"redis"`
}

// RedisConfig locates the redis instance backing the cache.
type RedisConfig struct {
	Address  string `yaml:"address,omitempty" mapstructure:"address"`
	Password string `yaml:"password,omitempty" mapstructure:"password"`
	DB       int    `yaml:"db,omitempty" mapstructure:"db"`
}

// IRRConfig holds the IRR solver seed in percent.
type IRRConfig struct {
	Guess float64 `yaml:"guess,omitempty" mapstructure:"guess"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults; environment
// variables prefixed with FINCALC_ override either.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Configuration {
	defaults := fixedincome.DefaultPolicy()
	return &Configuration{
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Output:  OutputConfig{Format: constants.OutputFormatPretty},
		Format:  FormatConfig{Locale: constants.DefaultLocale},
		Server: ServerConfig{
			Address:     constants.DefaultServerAddress,
			MaxBodySize: "256K",
		},
		Cache: CacheConfig{
			Backend:    constants.CacheBackendMemory,
			TTL:        10 * time.Minute,
			MaxEntries: constants.DefaultCacheMaxEntries,
			Redis:      RedisConfig{Address: constants.DefaultRedisAddress},
		},
		IRR:         IRRConfig{Guess: constants.IRRDefaultGuess},
		FixedIncome: defaults,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.outputFile", d.Logging.OutputFile)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("format.locale", d.Format.Locale)
	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.maxBodySize", d.Server.MaxBodySize)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.backend", d.Cache.Backend)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.maxEntries", d.Cache.MaxEntries)
	v.SetDefault("cache.redis.address", d.Cache.Redis.Address)
	v.SetDefault("cache.redis.password", d.Cache.Redis.Password)
	v.SetDefault("cache.redis.db", d.Cache.Redis.DB)
	v.SetDefault("irr.guess", d.IRR.Guess)

	brackets := make([]map[string]interface{}, len(d.FixedIncome.TaxSchedule))
	for i, b := range d.FixedIncome.TaxSchedule {
		brackets[i] = map[string]interface{}{"maxDays": b.MaxDays, "rate": b.Rate}
	}
	v.SetDefault("fixedIncome.taxSchedule", brackets)
	v.SetDefault("fixedIncome.savings.selicThreshold", d.FixedIncome.Savings.SelicThreshold)
	v.SetDefault("fixedIncome.savings.monthlyRate", d.FixedIncome.Savings.MonthlyRate)
	v.SetDefault("fixedIncome.savings.selicShare", d.FixedIncome.Savings.SelicShare)
}

// Validate checks every enumerated setting and the fixed-income policy.
func (c *Configuration) Validate() error {
	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := validation.ValidateCacheBackend(c.Cache.Backend); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache: maxEntries must not be negative, got %d", c.Cache.MaxEntries)
	}
	if err := c.FixedIncome.Validate(); err != nil {
		return fmt.Errorf("fixedIncome: %w", err)
	}
	return nil
}
