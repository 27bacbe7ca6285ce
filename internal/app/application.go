package app

import (
	"log/slog"

	"incomeviz.dev/internal/appconf"
	"incomeviz.dev/internal/dataset"
	"incomeviz.dev/internal/metrics"
)

// Application holds the dependencies shared by the HTTP handlers, the
// middleware and the CLI commands.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Dataset *dataset.Manager
	Metrics *metrics.Metrics
}

// DatasetConfig derives the dataset manager settings from the app config.
func (app *Application) DatasetConfig() dataset.Config {
	return DatasetConfigFor(app.Config)
}

func DatasetConfigFor(cfg appconf.Config) dataset.Config {
	return dataset.Config{
		DataPath:  cfg.DataPath,
		Encoding:  cfg.Encoding,
		Schema:    cfg.Schema,
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
		Verbose:   cfg.Verbose,
	}
}
