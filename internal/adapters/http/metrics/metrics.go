// Package metrics exposes portal counters and latencies in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private registry so tests and servers never collide on
// the global default registerer.
type Recorder struct {
	registry  *prometheus.Registry
	mutations *prometheus.CounterVec
	requests  *prometheus.HistogramVec
}

// New constructs a Recorder with its collectors registered.
// POST: Handler serves church_mutations_total and church_http_request_duration_seconds
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "church",
			Name:      "mutations_total",
			Help:      "Store mutations by entity kind and operation.",
		}, []string{"kind", "op"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "church",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	r.registry.MustRegister(r.mutations, r.requests)
	return r
}

// ObserveMutation counts one successful create, update, delete or command.
func (r *Recorder) ObserveMutation(kind, op string) {
	r.mutations.WithLabelValues(kind, op).Inc()
}

// ObserveRequest records one served request.
func (r *Recorder) ObserveRequest(method, route string, status int, d time.Duration) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry, e.g. to add process collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
