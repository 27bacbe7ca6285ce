package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.ObserveLoad("ok")
	m.ObserveLoad("ok")
	m.ObserveLoad("file_not_found")
	m.CacheHit()
	m.ObserveSelection(true)
	m.ObserveRequest("GET", 200, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.loads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("file_not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.selections.WithLabelValues("true")))

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "incomeviz_dataset_loads_total")
	assert.Contains(t, string(body), "incomeviz_http_request_duration_seconds")
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveLoad("ok")
		m.CacheHit()
		m.ObserveSelection(false)
		m.ObserveRequest("GET", 200, time.Millisecond)
	})

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
