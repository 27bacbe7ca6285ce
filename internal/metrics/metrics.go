// Package metrics exposes Prometheus counters for dataset loads and API traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "incomeviz"

// Metrics owns its registry so that several instances can live in one test binary.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	Registry *prometheus.Registry

	loads           *prometheus.CounterVec
	cacheHits       prometheus.Counter
	selections      *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_loads_total",
			Help:      "Dataset load attempts by outcome.",
		}, []string{"result"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_cache_hits_total",
			Help:      "Dataset lookups answered from the cache.",
		}),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_selections_total",
			Help:      "Household type selections, split by whether any row matched.",
		}, []string{"empty"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}

	reg.MustRegister(
		m.loads,
		m.cacheHits,
		m.selections,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveLoad counts a load attempt. result is "ok" or the lower-cased error kind.
func (m *Metrics) ObserveLoad(result string) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(result).Inc()
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *Metrics) ObserveSelection(empty bool) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(strconv.FormatBool(empty)).Inc()
}

func (m *Metrics) ObserveRequest(method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// LoadCounter exposes the load counter for one result label.
func (m *Metrics) LoadCounter(result string) prometheus.Counter {
	return m.loads.WithLabelValues(result)
}

func (m *Metrics) CacheHitCounter() prometheus.Counter {
	return m.cacheHits
}

func (m *Metrics) SelectionCounter(empty bool) prometheus.Counter {
	return m.selections.WithLabelValues(strconv.FormatBool(empty))
}
