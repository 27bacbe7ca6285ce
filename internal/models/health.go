package models

import (
	"time"

	"incomeviz.dev/internal/dataset"
)

// HealthModel describes the loaded dataset.
type HealthModel struct {
	Status     string   `json:"status"`
	Source     string   `json:"source"`
	Encoding   string   `json:"encoding"`
	Loaded     bool     `json:"loaded"`
	LoadedAt   int64    `json:"loadedAt"`
	Rows       int      `json:"rows"`
	Categories int      `json:"categories"`
	Warnings   []string `json:"warnings"`
	LastError  string   `json:"lastError,omitempty"`
}

// NewHealthModel reports "ok", "degraded" when the load produced schema
// warnings or a later reload failed, or "unavailable" when nothing has loaded yet.
func NewHealthModel(stats dataset.Stats) HealthModel {
	status := "ok"
	switch {
	case !stats.Loaded:
		status = "unavailable"
	case len(stats.Warnings) > 0, stats.LastError != "":
		status = "degraded"
	}

	warnings := stats.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	var loadedAt int64
	if !stats.LoadedAt.IsZero() {
		loadedAt = stats.LoadedAt.UnixNano() / int64(time.Millisecond)
	}

	return HealthModel{
		Status:     status,
		Source:     stats.Source,
		Encoding:   stats.Encoding,
		Loaded:     stats.Loaded,
		LoadedAt:   loadedAt,
		Rows:       stats.Rows,
		Categories: stats.Categories,
		Warnings:   warnings,
		LastError:  stats.LastError,
	}
}
