package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		done := m.RunStarted()
		m.RecordRun("pdf", "scanned", time.Second, nil)
		m.RecordPage("primary", errors.New("x"))
		m.RecordFallback("hf-chat", "hf-image-to-text")
		m.RecordTask("ocr:process", nil)
		done()
	})
}

func TestRecordRun(t *testing.T) {
	m := New()
	m.RecordRun("pdf", "scanned", 2*time.Second, nil)
	m.RecordRun("pdf", "scanned", time.Second, errors.New("boom"))
	m.RecordRun("image", "", time.Second, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runsTotal.WithLabelValues("pdf", "scanned", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runsTotal.WithLabelValues("pdf", "scanned", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runsTotal.WithLabelValues("image", "none", "ok")))
}

func TestRunsInFlight(t *testing.T) {
	m := New()
	done := m.RunStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runsInFlight))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.runsInFlight))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.RecordFallback("hf-chat", "hf-image-to-text")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `scriptsense_provider_fallbacks_total{fallback="hf-image-to-text",primary="hf-chat"} 1`)
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.RecordPage("primary", nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(a.pagesTotal.WithLabelValues("primary", "ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.pagesTotal.WithLabelValues("primary", "ok")))
}
