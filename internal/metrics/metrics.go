// Package metrics exposes Prometheus counters for the demo page.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the demo counters, served by Handler
	Registry = prometheus.NewRegistry()

	// LogEntries counts activity log entries by severity
	LogEntries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "comment_filter",
			Name:      "log_entries_total",
			Help:      "Activity log entries appended, by severity.",
		},
		[]string{"severity"},
	)

	// Logins counts login attempts by result
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "comment_filter",
			Name:      "logins_total",
			Help:      "Login attempts, by result.",
		},
		[]string{"result"},
	)

	// FilterTransitions counts apply and clear requests
	FilterTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "comment_filter",
			Name:      "filter_transitions_total",
			Help:      "Apply/clear filter requests, by action and result.",
		},
		[]string{"action", "result"},
	)

	// CommentsPosted counts comments written through the local client
	CommentsPosted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "comment_filter",
			Name:      "comments_posted_total",
			Help:      "Comments written through the local client.",
		},
	)
)

func init() {
	Registry.MustRegister(LogEntries, Logins, FilterTransitions, CommentsPosted)
}

// Handler serves the registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
