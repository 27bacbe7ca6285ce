// Package dataset memoizes income table loads for the CLI and the HTTP API.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"incomeviz.dev/internal/cache"
	"incomeviz.dev/internal/income"
	"incomeviz.dev/internal/logging"
	"incomeviz.dev/internal/metrics"
)

// Manager loads the configured dataset on first use and hands out the
// shared immutable table afterwards. Failed loads are retried on the next call.
type Manager struct {
	config  Config
	logger  *slog.Logger
	metrics *metrics.Metrics

	tables *cache.LRUCache[*income.Table]
	group  singleflight.Group

	statsMutex sync.RWMutex
	loadedAt   time.Time
	lastError  error
	current    *income.Table

	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// Stats summarizes the most recent load.
type Stats struct {
	Source     string    `json:"source"`
	Encoding   string    `json:"encoding"`
	Loaded     bool      `json:"loaded"`
	LoadedAt   time.Time `json:"loadedAt"`
	Rows       int       `json:"rows"`
	Categories int       `json:"categories"`
	Warnings   []string  `json:"warnings"`
	LastError  string    `json:"lastError,omitempty"`
}

// NewManager returns a manager that loads lazily.
func NewManager(config Config, logger *slog.Logger, m *metrics.Metrics) *Manager {
	config = config.withDefaults()
	if logger == nil {
		logger = logging.Discard()
	}

	manager := &Manager{
		config:       config,
		logger:       logger.With(slog.String("component", "dataset")),
		metrics:      m,
		tables:       cache.NewLRUCache[*income.Table](config.CacheSize, config.CacheTTL),
		shutdownChan: make(chan struct{}),
	}

	if config.cleanupEnabled() {
		manager.wg.Add(1)
		go manager.cleanupPeriodically()
	}

	return manager
}

// InitManager builds a manager and loads the configured dataset right away.
func InitManager(ctx context.Context, config Config, logger *slog.Logger, m *metrics.Metrics) (*Manager, error) {
	manager := NewManager(config, logger, m)
	if _, err := manager.Table(ctx); err != nil {
		manager.Shutdown()
		return nil, err
	}
	return manager, nil
}

// Shutdown stops the cache cleanup goroutine. Safe to call more than once.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
	})
}

// Config returns the effective configuration.
func (manager *Manager) Config() Config {
	return manager.config
}

// Table returns the configured dataset.
func (manager *Manager) Table(ctx context.Context) (*income.Table, error) {
	return manager.Load(ctx, manager.config.DataPath, manager.config.Encoding)
}

// Load returns the table for path decoded with enc, reading the file only
// when no cached copy exists. Concurrent callers for the same key share one read.
func (manager *Manager) Load(ctx context.Context, path, enc string) (*income.Table, error) {
	if enc == "" {
		enc = manager.config.Encoding
	}
	key := cacheKey(path, enc)

	if table, ok := manager.tables.Get(key); ok {
		manager.metrics.CacheHit()
		return table, nil
	}

	resultChan := manager.group.DoChan(key, func() (interface{}, error) {
		if table, ok := manager.tables.Get(key); ok {
			manager.metrics.CacheHit()
			return table, nil
		}
		return manager.loadFile(path, enc, key)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*income.Table), nil
	}
}

func (manager *Manager) loadFile(path, enc, key string) (*income.Table, error) {
	start := time.Now()
	table, err := income.Load(path, enc, manager.config.Schema)

	manager.statsMutex.Lock()
	defer manager.statsMutex.Unlock()

	if err != nil {
		manager.lastError = err
		manager.metrics.ObserveLoad(strings.ToLower(string(income.KindOf(err))))
		logging.LogError(manager.logger, "dataset load failed", err,
			slog.String("path", path),
			slog.String("encoding", enc),
			slog.String("kind", string(income.KindOf(err))))
		return nil, err
	}

	manager.tables.Set(key, table)
	manager.current = table
	manager.loadedAt = time.Now()
	manager.lastError = nil
	manager.metrics.ObserveLoad("ok")

	logging.LogOperation(manager.logger, "dataset_loaded",
		slog.String("path", path),
		slog.String("encoding", table.Encoding),
		slog.Int("rows", table.Len()),
		slog.Int("label_rows", len(table.LabelRows)),
		slog.Duration("duration", time.Since(start)))
	for _, w := range table.Warnings {
		manager.logger.Warn("schema mismatch", slog.String("path", path), slog.String("warning", w.Error()))
	}
	if manager.config.Verbose {
		manager.logger.Debug("dataset columns",
			slog.Any("headers", table.Headers),
			slog.Any("numeric", table.NumericColumns()))
	}

	return table, nil
}

// Categories lists the household types of the configured dataset.
func (manager *Manager) Categories(ctx context.Context) ([]string, error) {
	table, err := manager.Table(ctx)
	if err != nil {
		return nil, err
	}
	return table.Categories(), nil
}

// Select filters the configured dataset by household type. An unknown type
// yields an empty view and no error.
func (manager *Manager) Select(ctx context.Context, householdType string) (income.FilteredView, error) {
	table, err := manager.Table(ctx)
	if err != nil {
		return income.FilteredView{}, err
	}
	view := income.SelectCategory(table, householdType)
	manager.metrics.ObserveSelection(view.Empty())
	return view, nil
}

// Stats reports on the last successful load and the last failure since then.
func (manager *Manager) Stats() Stats {
	manager.statsMutex.RLock()
	defer manager.statsMutex.RUnlock()

	stats := Stats{
		Source:   manager.config.DataPath,
		Encoding: manager.config.Encoding,
		Warnings: []string{},
	}
	if manager.current != nil {
		stats.Loaded = true
		stats.LoadedAt = manager.loadedAt
		stats.Rows = manager.current.Len()
		stats.Categories = len(manager.current.Categories())
		stats.Warnings = manager.current.WarningMessages()
	}
	if manager.lastError != nil {
		stats.LastError = manager.lastError.Error()
	}
	return stats
}

// Invalidate drops the cached configured table so the next call rereads the file.
func (manager *Manager) Invalidate() {
	manager.tables.Delete(cacheKey(manager.config.DataPath, manager.config.Encoding))
}

func (manager *Manager) cleanupPeriodically() {
	defer manager.wg.Done()

	ticker := time.NewTicker(manager.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := manager.tables.CleanExpired(); removed > 0 {
				manager.logger.Debug("evicted expired tables", slog.Int("count", removed))
			}
		case <-manager.shutdownChan:
			return
		}
	}
}

func cacheKey(path, enc string) string {
	cleaned := filepath.Clean(path)
	if abs, err := filepath.Abs(cleaned); err == nil {
		cleaned = abs
	}
	return cleaned + "|" + strings.ToLower(strings.TrimSpace(enc))
}

// IsLoadError reports whether err came from reading or parsing the dataset.
func IsLoadError(err error) bool {
	var loadErr *income.LoadError
	return errors.As(err, &loadErr)
}

// Describe renders a one-line message for a failed load.
func Describe(err error) string {
	var loadErr *income.LoadError
	if errors.As(err, &loadErr) {
		if loadErr.Kind == income.KindFileNotFound {
			return fmt.Sprintf("데이터 파일을 찾을 수 없습니다: %s", loadErr.Path)
		}
		return fmt.Sprintf("%s: %s", loadErr.Kind, loadErr.Path)
	}
	return err.Error()
}
