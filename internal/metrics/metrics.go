// Package metrics exposes Prometheus counters for roadmap activity and HTTP
// traffic on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "learnroute"

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	registry *prometheus.Registry

	stepToggles        *prometheus.CounterVec
	roadmapCompletions prometheus.Counter
	pointsAwarded      prometheus.Counter
	roadmapsCreated    *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stepToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "step_toggles_total",
			Help:      "Roadmap step toggles by requested state.",
		}, []string{"completed"}),
		roadmapCompletions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roadmap_completions_total",
			Help:      "Explicit roadmap completions.",
		}),
		pointsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_awarded_total",
			Help:      "Points credited to users by roadmap completions.",
		}),
		roadmapsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roadmaps_created_total",
			Help:      "Roadmaps created by template category.",
		}, []string{"category"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.stepToggles,
		m.roadmapCompletions,
		m.pointsAwarded,
		m.roadmapsCreated,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) StepToggled(completed bool) {
	if m == nil {
		return
	}
	m.stepToggles.WithLabelValues(strconv.FormatBool(completed)).Inc()
}

func (m *Metrics) RoadmapCompleted(points int) {
	if m == nil {
		return
	}
	m.roadmapCompletions.Inc()
	m.pointsAwarded.Add(float64(points))
}

func (m *Metrics) RoadmapCreated(category string) {
	if m == nil {
		return
	}
	m.roadmapsCreated.WithLabelValues(category).Inc()
}

// ObserveRequest satisfies middleware.RequestRecorder.
func (m *Metrics) ObserveRequest(method, route string, status int, latency time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}
