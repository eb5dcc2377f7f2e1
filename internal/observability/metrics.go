package observability

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Quote outcomes recorded by ShippingMetrics.ObserveQuote.
const (
	OutcomeMatched      = "matched"
	OutcomeNoZone       = "no_zone"
	OutcomeNoRate       = "no_rate"
	OutcomeFreeShipping = "free"
)

// ShippingMetrics bundles the Prometheus metrics for shipping quotes.
type ShippingMetrics struct {
	gatherer prometheus.Gatherer

	Quotes      *prometheus.CounterVec
	ZoneMatches *prometheus.CounterVec
	ZoneCache   *prometheus.CounterVec
}

// NewShippingMetrics registers shipping metrics against reg, defaulting to
// the global Prometheus registry when nil. Registering twice against the
// same registry reuses the existing collectors.
func NewShippingMetrics(reg prometheus.Registerer) (*ShippingMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	quotes, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_quotes_total",
		Help: "Shipping quotes served, labeled by outcome.",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}

	matches, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_zone_matches_total",
		Help: "Zone matches, labeled by the rule type that matched.",
	}, []string{"rule_type"}))
	if err != nil {
		return nil, err
	}

	cacheLookups, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_zone_cache_lookups_total",
		Help: "Zone set cache lookups, labeled hit or miss.",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}

	return &ShippingMetrics{
		gatherer:    gatherer,
		Quotes:      quotes,
		ZoneMatches: matches,
		ZoneCache:   cacheLookups,
	}, nil
}

func (m *ShippingMetrics) ObserveQuote(outcome string) {
	if m == nil {
		return
	}
	m.Quotes.WithLabelValues(outcome).Inc()
}

func (m *ShippingMetrics) ObserveMatch(ruleType string) {
	if m == nil {
		return
	}
	m.ZoneMatches.WithLabelValues(ruleType).Inc()
}

func (m *ShippingMetrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.ZoneCache.WithLabelValues(result).Inc()
}

// Handler exposes the registry the metrics were registered against.
func (m *ShippingMetrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}
