// Package metrics holds the prometheus instrumentation for upstream traffic and exports.
//
// The registry is private to the application so that a textfile written after an export
// only carries lineup series, ready for a node_exporter textfile collector.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lineup"

// Registry collects every lineup metric.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// UpstreamRequests counts provider API requests by host and outcome.
var UpstreamRequests = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "upstream_requests_total",
	Help:      "Provider API requests by host and status code.",
}, []string{"host", "status"})

// UpstreamDuration tracks provider API latency.
var UpstreamDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Name:      "upstream_request_duration_seconds",
	Help:      "Provider API latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"host"})

// ExportedItems is the number of channels or channel guides written by the last export.
var ExportedItems = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "exported_items",
	Help:      "Items written by the last export, by provider and kind.",
}, []string{"provider", "kind"})

// LastExport is the unix time of the last successful export.
var LastExport = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "last_export_timestamp_seconds",
	Help:      "Unix time of the last successful export, by provider and kind.",
}, []string{"provider", "kind"})

// StatusError labels requests that failed before a status code was received.
const StatusError = "error"

// ObserveRequest records one upstream round trip. status is the HTTP code or StatusError.
func ObserveRequest(host string, status string, elapsed time.Duration) {
	UpstreamRequests.WithLabelValues(host, status).Inc()
	UpstreamDuration.WithLabelValues(host).Observe(elapsed.Seconds())
}

// ObserveStatus is ObserveRequest for a received status code.
func ObserveStatus(host string, code int, elapsed time.Duration) {
	ObserveRequest(host, strconv.Itoa(code), elapsed)
}

// ObserveExport records a finished export.
func ObserveExport(provider, kind string, count int, at time.Time) {
	ExportedItems.WithLabelValues(provider, kind).Set(float64(count))
	LastExport.WithLabelValues(provider, kind).Set(float64(at.Unix()))
}

// WriteTextfile atomically writes the registry in the prometheus text format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
