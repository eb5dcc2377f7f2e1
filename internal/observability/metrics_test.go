package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestShippingMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewShippingMetrics(reg)
	require.NoError(t, err)

	m.ObserveQuote(OutcomeMatched)
	m.ObserveQuote(OutcomeMatched)
	m.ObserveQuote(OutcomeNoZone)
	m.ObserveMatch("city")
	m.ObserveCache(true)

	assert.Equal(t, 2.0, counterValue(t, m.Quotes.WithLabelValues(OutcomeMatched)))
	assert.Equal(t, 1.0, counterValue(t, m.Quotes.WithLabelValues(OutcomeNoZone)))
	assert.Equal(t, 1.0, counterValue(t, m.ZoneMatches.WithLabelValues("city")))
	assert.Equal(t, 1.0, counterValue(t, m.ZoneCache.WithLabelValues("hit")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shipping_quotes_total")
}

func TestShippingMetrics_ReRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewShippingMetrics(reg)
	require.NoError(t, err)
	second, err := NewShippingMetrics(reg)
	require.NoError(t, err)

	first.ObserveQuote(OutcomeNoRate)
	assert.Equal(t, 1.0, counterValue(t, second.Quotes.WithLabelValues(OutcomeNoRate)))
}

func TestShippingMetrics_NilSafe(t *testing.T) {
	var m *ShippingMetrics
	m.ObserveQuote(OutcomeMatched)
	m.ObserveMatch("country")
	m.ObserveCache(false)
}
