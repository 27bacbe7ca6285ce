// Package appconf holds the process configuration shared by the CLI and the
// HTTP server.
package appconf

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"incomeviz.dev/internal/income"
)

const DefaultDataPath = "가구특성별_소득원천별_가구소득_20251031184640.csv"

// Config holds all the configuration settings for the application.
type Config struct {
	Env       Environment   `mapstructure:"-"`
	EnvName   string        `mapstructure:"env" validate:"oneof=development test production prod"`
	Port      int           `mapstructure:"port" validate:"min=1,max=65535"`
	ApiKeys   []string      `mapstructure:"api_keys"`
	RateLimit int           `mapstructure:"rate_limit" validate:"min=0"`
	DataPath  string        `mapstructure:"data" validate:"required"`
	Encoding  string        `mapstructure:"encoding" validate:"required"`
	CacheSize int           `mapstructure:"cache_size" validate:"min=1,max=64"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl" validate:"min=0"`
	LogLevel  string        `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat string        `mapstructure:"log_format" validate:"oneof=text json"`
	Verbose   bool          `mapstructure:"verbose"`

	Schema income.Schema `mapstructure:"schema"`
}

// Defaults returns the configuration used when neither a config file nor a
// flag says otherwise.
func Defaults() Config {
	return Config{
		Env:       Development,
		EnvName:   Development.String(),
		Port:      4000,
		RateLimit: 100,
		DataPath:  DefaultDataPath,
		Encoding:  income.DefaultEncoding,
		CacheSize: 4,
		LogLevel:  "info",
		LogFormat: "text",
		Schema:    income.DefaultSchema(),
	}
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"env":        "env",
	"port":       "port",
	"api-keys":   "api_keys",
	"rate-limit": "rate_limit",
	"data":       "data",
	"encoding":   "encoding",
	"cache-size": "cache_size",
	"cache-ttl":  "cache_ttl",
	"log-level":  "log_level",
	"log-format": "log_format",
	"verbose":    "verbose",
}

// Load reads an optional YAML config file and overlays any flags the user set.
// Environment variables are not consulted.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ApiKeys = splitKeys(cfg.ApiKeys)
	cfg.Env = EnvFlagToEnvironment(cfg.EnvName)
	cfg.Schema = cfg.Schema.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("env", d.EnvName)
	v.SetDefault("port", d.Port)
	v.SetDefault("api_keys", []string{})
	v.SetDefault("rate_limit", d.RateLimit)
	v.SetDefault("data", d.DataPath)
	v.SetDefault("encoding", d.Encoding)
	v.SetDefault("cache_size", d.CacheSize)
	v.SetDefault("cache_ttl", d.CacheTTL)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("verbose", false)
	v.SetDefault("schema.household_column", d.Schema.HouseholdColumn)
	v.SetDefault("schema.source_column", d.Schema.SourceColumn)
	v.SetDefault("schema.mean_column", d.Schema.MeanColumn)
	v.SetDefault("schema.median_column", d.Schema.MedianColumn)
	v.SetDefault("schema.numeric_pattern", d.Schema.NumericPattern)
	v.SetDefault("schema.missing_token", d.Schema.MissingToken)
}

// splitKeys accepts both a YAML list and a single comma separated flag value.
func splitKeys(raw []string) []string {
	keys := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, key := range strings.Split(entry, ",") {
			if key = strings.TrimSpace(key); key != "" {
				keys = append(keys, key)
			}
		}
	}
	return keys
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges and reports every violation at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", strings.ToLower(fe.Field()), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
