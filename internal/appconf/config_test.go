package appconf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "incomeviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data", "", "")
	flags.String("encoding", "", "")
	flags.Int("port", 0, "")
	flags.StringSlice("api-keys", nil, "")
	flags.String("log-level", "", "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Env)
	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, DefaultDataPath, cfg.DataPath)
	assert.Equal(t, "cp949", cfg.Encoding)
	assert.Equal(t, "가구특성별", cfg.Schema.HouseholdColumn)
	assert.Equal(t, "2024.1", cfg.Schema.MedianColumn)
	assert.Empty(t, cfg.ApiKeys)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
env: production
port: 8080
api_keys: [alpha, beta]
data: /srv/income.csv
encoding: utf-8
cache_ttl: 10m
log_format: json
schema:
  mean_column: "2023"
  median_column: "2023.1"
  numeric_pattern: "2023"
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, Production, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.ApiKeys)
	assert.Equal(t, "/srv/income.csv", cfg.DataPath)
	assert.Equal(t, "utf-8", cfg.Encoding)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "2023", cfg.Schema.MeanColumn)
	assert.Equal(t, "2023.1", cfg.Schema.MedianColumn)
	assert.Equal(t, "원천별", cfg.Schema.SourceColumn, "unset schema keys keep their defaults")
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "port: 8080\ndata: from-file.csv\n")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--data", "from-flag.csv", "--api-keys", "one, two"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "from-flag.csv", cfg.DataPath)
	assert.Equal(t, 8080, cfg.Port, "flags that were not set leave the file value alone")
	assert.Equal(t, []string{"one", "two"}, cfg.ApiKeys)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		assert.Error(t, err)
	})

	t.Run("invalid port", func(t *testing.T) {
		_, err := Load(writeConfig(t, "port: 70000\n"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "port")
	})

	t.Run("invalid log level", func(t *testing.T) {
		flags := testFlags()
		require.NoError(t, flags.Parse([]string{"--log-level", "loud"}))
		_, err := Load("", flags)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loglevel")
	})
}

func TestEnvFlagToEnvironment(t *testing.T) {
	tests := []struct {
		in   string
		want Environment
	}{
		{"development", Development},
		{"test", Test},
		{"Production", Production},
		{"prod", Production},
		{"", Development},
		{"staging", Development},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EnvFlagToEnvironment(tt.in))
		})
	}
	assert.Equal(t, "production", Production.String())
}
