package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.TransportBound()
		m.TransportUnbound()
		m.ConnectionAccepted("e")
		m.ConnectionClosed("e")
		m.ConnectionRejected("e")
		m.ObservePhase(PhaseStop, time.Second)
		m.RecordStopOutcome(OutcomeSuccess)
	})
	assert.Nil(t, m.Registry())

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMetrics_TransportsBound(t *testing.T) {
	m := New()

	m.TransportBound()
	m.TransportBound()
	m.TransportUnbound()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.transportsBound))
}

func TestMetrics_Connections(t *testing.T) {
	m := New()

	m.ConnectionAccepted("http://127.0.0.1:1")
	m.ConnectionAccepted("http://127.0.0.1:1")
	m.ConnectionClosed("http://127.0.0.1:1")
	m.ConnectionRejected("http://127.0.0.1:1")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.connectionsAccepted.WithLabelValues("http://127.0.0.1:1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.connectionsActive.WithLabelValues("http://127.0.0.1:1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.connectionsRejected.WithLabelValues("http://127.0.0.1:1")))
}

func TestMetrics_StopOutcomes(t *testing.T) {
	m := New()

	m.RecordStopOutcome(OutcomeSuccess)
	m.RecordStopOutcome(OutcomeCancelled)
	m.RecordStopOutcome(OutcomeCancelled)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.stopOutcomes.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.stopOutcomes.WithLabelValues(OutcomeCancelled)))
}

func TestMetrics_HandlerExposesCollectors(t *testing.T) {
	m := New()
	m.TransportBound()
	m.ObservePhase(PhaseUnbind, 5*time.Millisecond)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, "portkeeper_transports_bound 1"))
	assert.True(t, strings.Contains(body, `portkeeper_lifecycle_phase_duration_seconds_count{phase="unbind"} 1`))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
