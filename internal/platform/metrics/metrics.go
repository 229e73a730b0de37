package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pet_adoption"

// Registry agrupa el registro prometheus de un servicio.
// Cada router crea el suyo para que los tests puedan levantar varios sin colisiones.
type Registry struct {
	reg *prometheus.Registry

	HTTP      *HTTP
	Adoptions *Adoptions
}

func NewRegistry(service string) *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	wrapped := prometheus.WrapRegistererWith(prometheus.Labels{"service": service}, reg)

	return &Registry{
		reg:       reg,
		HTTP:      newHTTP(wrapped),
		Adoptions: newAdoptions(wrapped),
	}
}

// Handler expone /metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

type HTTP struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newHTTP(reg prometheus.Registerer) *HTTP {
	h := &HTTP{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(h.requests, h.duration)
	return h
}

func (h *HTTP) Observe(method, route, status string, d time.Duration) {
	if h == nil {
		return
	}
	h.requests.WithLabelValues(method, route, status).Inc()
	h.duration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Outcomes de adopción.
const (
	OutcomeAdopted         = "adopted"
	OutcomeUnauthorized    = "unauthorized"
	OutcomeUserNotFound    = "user_not_found"
	OutcomePetNotFound     = "pet_not_found"
	OutcomeAlreadyAdopted  = "already_adopted"
	OutcomeUpstreamFailure = "upstream_unavailable"
	OutcomeError           = "error"
)

type Adoptions struct {
	attempts *prometheus.CounterVec
}

func newAdoptions(reg prometheus.Registerer) *Adoptions {
	a := &Adoptions{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "adoptions",
			Name:      "attempts_total",
			Help:      "Adoption attempts by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(a.attempts)
	return a
}

func (a *Adoptions) Record(outcome string) {
	if a == nil {
		return
	}
	a.attempts.WithLabelValues(outcome).Inc()
}

// Count devuelve el valor actual de un outcome (tests / debug).
func (a *Adoptions) Count(outcome string) float64 {
	if a == nil {
		return 0
	}
	return counterValue(a.attempts.WithLabelValues(outcome))
}
