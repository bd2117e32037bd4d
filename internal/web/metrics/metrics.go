// Package metrics exposes Prometheus counters for form submission outcomes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeInvalid  = "invalid"
	OutcomeSignOut  = "sign_out"
)

// Recorder owns a registry and the application counters.
type Recorder struct {
	registry      *prometheus.Registry
	logins        *prometheus.CounterVec
	registrations *prometheus.CounterVec
}

// New creates a Recorder with its own registry, including Go runtime and
// process collectors.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "library_login_attempts_total",
		Help: "Login page submissions by outcome.",
	}, []string{"outcome"})
	registrations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "library_registration_submissions_total",
		Help: "Registration page submissions by outcome.",
	}, []string{"outcome"})
	registry.MustRegister(logins, registrations)

	return &Recorder{registry: registry, logins: logins, registrations: registrations}
}

// Login counts a login page submission.
func (r *Recorder) Login(outcome string) {
	if r == nil {
		return
	}
	r.logins.WithLabelValues(outcome).Inc()
}

// Registration counts a registration page submission.
func (r *Recorder) Registration(outcome string) {
	if r == nil {
		return
	}
	r.registrations.WithLabelValues(outcome).Inc()
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
