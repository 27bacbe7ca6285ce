// Package cli implements the incomeviz command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"incomeviz.dev/internal/app"
	"incomeviz.dev/internal/appconf"
	"incomeviz.dev/internal/cli/output"
	"incomeviz.dev/internal/dataset"
	"incomeviz.dev/internal/logging"
	"incomeviz.dev/internal/metrics"
)

// CLI carries the state shared by every command of one invocation.
type CLI struct {
	configFile string
	format     string

	app *app.Application
}

// loadFailure wraps a dataset load error so that it prints as one line naming
// the failure kind and the path.
type loadFailure struct {
	err error
}

func (e *loadFailure) Error() string {
	return dataset.Describe(e.err)
}

func (e *loadFailure) Unwrap() error {
	return e.err
}

// Execute runs the command line with args and returns the error to report.
// The dataset manager is shut down before returning.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c := &CLI{}
	rootCmd := c.NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	c.shutdown()
	return err
}

// NewRootCommand builds the command tree.
func (c *CLI) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "incomeviz",
		Short: "Household income by household type and income source",
		Long: `incomeviz loads the household income CSV export (가구특성별 × 원천별,
mean and median income in 만원) and answers questions about one household
type at a time: its rows, its per-source income series, charts and workbooks.

The same queries are served as a JSON HTTP API by "incomeviz serve".`,
		PersistentPreRunE: c.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	defaults := appconf.Defaults()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "YAML config file")
	flags.StringVarP(&c.format, "format", "o", "", "output format: table, json, yaml (default table on a terminal, json otherwise)")
	flags.String("data", defaults.DataPath, "path to the income CSV export")
	flags.String("encoding", defaults.Encoding, "character encoding of the CSV file")
	flags.String("env", defaults.EnvName, "environment (development|test|production)")
	flags.Int("port", defaults.Port, "API server port")
	flags.StringSlice("api-keys", nil, "comma separated API keys; empty disables the key check")
	flags.Int("rate-limit", defaults.RateLimit, "requests per second per API key; 0 disables limiting")
	flags.Int("cache-size", defaults.CacheSize, "number of loaded datasets kept in memory")
	flags.Duration("cache-ttl", defaults.CacheTTL, "how long a loaded dataset stays cached; 0 keeps it forever")
	flags.String("log-level", defaults.LogLevel, "log level: debug, info, warn, error")
	flags.String("log-format", defaults.LogFormat, "log format: text, json")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")

	rootCmd.AddCommand(
		c.newHouseholdsCommand(),
		c.newShowCommand(),
		c.newExportCommand(),
		c.newChartCommand(),
		c.newServeCommand(),
	)
	return rootCmd
}

// setupCommand is called before any command runs.
func (c *CLI) setupCommand(cmd *cobra.Command, _ []string) error {
	if _, err := output.ParseFormat(c.format); err != nil {
		return err
	}

	cfg, err := appconf.Load(c.configFile, cmd.Flags())
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if cfg.Verbose {
		level = "debug"
	}
	logger := logging.NewLogger(cmd.ErrOrStderr(), cfg.LogFormat, level).With("component", "cli")

	m := metrics.New()
	c.app = &app.Application{
		Config:  cfg,
		Logger:  logger,
		Metrics: m,
	}
	c.app.Dataset = dataset.NewManager(c.app.DatasetConfig(), logger, m)
	return nil
}

func (c *CLI) shutdown() {
	if c.app != nil && c.app.Dataset != nil {
		c.app.Dataset.Shutdown()
	}
}

// render writes data to the command's output in the selected format.
func (c *CLI) render(cmd *cobra.Command, data any) error {
	format := output.DetectFormat(c.format, cmd.OutOrStdout())
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
}

// renderTables writes tables in table format and structured otherwise.
func (c *CLI) renderTables(cmd *cobra.Command, structured any, tables []output.Data) error {
	format := output.DetectFormat(c.format, cmd.OutOrStdout())
	if format == output.FormatTable {
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), tables)
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), structured)
}

// datasetError turns load errors into loadFailure and passes the rest through.
func datasetError(err error) error {
	if err == nil {
		return nil
	}
	if dataset.IsLoadError(err) {
		return &loadFailure{err: err}
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("interrupted: %w", err)
	}
	return err
}
