// Package metrics holds the prometheus collectors of the server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ProviderCalls counts the upstream metadata provider calls by
	// provider and outcome (ok, not_found or error).
	ProviderCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aurral_provider_calls_total",
		Help: "Upstream provider calls by provider and outcome.",
	}, []string{"provider", "outcome"})

	// CoverCacheLookups counts the cover cache lookups by result.
	CoverCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aurral_cover_cache_lookups_total",
		Help: "Cover cache lookups by result (hit or miss).",
	}, []string{"result"})

	// StreamSessions counts the opened artist stream sessions.
	StreamSessions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aurral_stream_sessions_total",
		Help: "Opened artist stream sessions.",
	})

	// StreamEvents counts the pushed stream events by event name.
	StreamEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aurral_stream_events_total",
		Help: "Pushed artist stream events by name.",
	}, []string{"event"})
)

// CountProviderCall records one provider call outcome. notFound is counted
// separately from other errors since a confirmed absence is a normal
// answer, not a failure.
func CountProviderCall(provider string, err error, notFound bool) {
	outcome := "ok"
	switch {
	case notFound:
		outcome = "not_found"
	case err != nil:
		outcome = "error"
	}
	ProviderCalls.WithLabelValues(provider, outcome).Inc()
}

// Handler returns the HTTP handler which serves the metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
