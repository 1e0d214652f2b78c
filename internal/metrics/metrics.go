// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles every counter the service emits. It satisfies the metric
// sink interfaces in internal/session and internal/market.
type Metrics struct {
	messagesSent         prometheus.Counter
	enrichmentFailures   *prometheus.CounterVec
	marketplaceFallbacks prometheus.Counter
}

// New registers collectors on the given registerer (pass
// prometheus.DefaultRegisterer in the binary, a fresh registry in tests).
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		messagesSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "nexchat_messages_sent_total",
			Help: "Messages committed to the session store.",
		}),
		enrichmentFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nexchat_enrichment_failures_total",
			Help: "Enrichment calls that failed or timed out, by capability.",
		}, []string{"capability"}),
		marketplaceFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "nexchat_marketplace_fallbacks_total",
			Help: "Marketplace fetches that degraded to fallback data.",
		}),
	}
}

func (m *Metrics) MessageSent() {
	m.messagesSent.Inc()
}

func (m *Metrics) EnrichmentFailed(capability string) {
	m.enrichmentFailures.WithLabelValues(capability).Inc()
}

func (m *Metrics) MarketplaceFallback() {
	m.marketplaceFallbacks.Inc()
}
