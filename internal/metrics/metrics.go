// Package metrics exposes prometheus collectors for the bridge.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	MessagesRelayed   *prometheus.CounterVec
	WebhookDeliveries *prometheus.CounterVec
	MediaDownloads    *prometheus.CounterVec
	Sends             *prometheus.CounterVec
	QueueDropped      prometheus.Counter
	QueueLength       prometheus.Gauge
	ConnectionState   prometheus.Gauge
}

// New builds a metrics set backed by its own registry so parallel test
// instances do not collide on collector names.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		MessagesRelayed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bridge_messages_relayed_total",
			Help: "Inbound messages processed by the relay",
		}, []string{"result"}),
		WebhookDeliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bridge_webhook_deliveries_total",
			Help: "Webhook POST attempts by result",
		}, []string{"result"}),
		MediaDownloads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bridge_media_downloads_total",
			Help: "Media download attempts by result",
		}, []string{"result"}),
		Sends: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bridge_sends_total",
			Help: "Outbound send attempts by result",
		}, []string{"result"}),
		QueueDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "bridge_relay_queue_dropped_total",
			Help: "Inbound events dropped because the relay queue was full",
		}),
		QueueLength: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bridge_relay_queue_length",
			Help: "Current number of queued inbound events",
		}),
		ConnectionState: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bridge_connection_state",
			Help: "Lifecycle state ordinal (0 uninitialized .. 5 auth_failed)",
		}),
	}
}

// Handler serves this instance's registry in prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
