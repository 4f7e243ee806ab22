package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds the per-run Prometheus instruments for the batch job. They
// live on a private registry: a finite batch pass has no scrape endpoint, so
// results are pushed to a Pushgateway after the run when one is configured.
type Metrics struct {
	registry *prometheus.Registry

	RecordsCollected prometheus.Gauge
	RecordsSkipped   prometheus.Gauge
	NewStations      prometheus.Gauge
	MatchesFound     prometheus.Gauge
	RunDuration      prometheus.Gauge

	RegistryRequests prometheus.Counter
	RegistryErrors   prometheus.Counter
	AlertsDelivered  prometheus.Counter
}

// NewMetrics creates and registers all batch metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		RecordsCollected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "charger_alerts",
			Name:      "records_collected",
			Help:      "Connector records harvested from the registry this run.",
		}),
		RecordsSkipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "charger_alerts",
			Name:      "records_skipped",
			Help:      "Raw records dropped for missing a station identifier.",
		}),
		NewStations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "charger_alerts",
			Name:      "new_stations",
			Help:      "Station identifiers absent from the previous snapshot.",
		}),
		MatchesFound: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "charger_alerts",
			Name:      "matches_found",
			Help:      "Watch-point proximity matches produced this run.",
		}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "charger_alerts",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of the complete batch pass.",
		}),
		RegistryRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "charger_alerts",
			Name:      "registry_requests_total",
			Help:      "HTTP requests issued against the charger registry.",
		}),
		RegistryErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "charger_alerts",
			Name:      "registry_errors_total",
			Help:      "Failed registry requests, including retried attempts.",
		}),
		AlertsDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "charger_alerts",
			Name:      "alerts_delivered_total",
			Help:      "Alert messages handed to the webhook.",
		}),
	}

	reg.MustRegister(
		m.RecordsCollected,
		m.RecordsSkipped,
		m.NewStations,
		m.MatchesFound,
		m.RunDuration,
		m.RegistryRequests,
		m.RegistryErrors,
		m.AlertsDelivered,
	)

	return m
}

// Push delivers the run's metrics to a Pushgateway. A no-op when url is empty.
func (m *Metrics) Push(url string) error {
	if url == "" {
		return nil
	}
	return push.New(url, "charger_alerts").Gatherer(m.registry).Push()
}
