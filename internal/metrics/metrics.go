// Package metrics exposes Prometheus counters for the site.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

var (
	contactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome",
		},
		[]string{"outcome"},
	)

	themeToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_toggles_total",
			Help:      "Theme toggles by resulting theme",
		},
		[]string{"theme"},
	)

	navEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nav_evaluations_total",
			Help:      "Navigation state evaluations by detected background tone",
		},
		[]string{"tone"},
	)

	pageRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Rendered pages and fragments by view",
		},
		[]string{"view"},
	)

	rateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratelimit_exceeded_total",
			Help:      "Requests rejected by rate limiting",
		},
		[]string{"route"},
	)
)

// Contact outcomes.
const (
	OutcomeSent          = "sent"
	OutcomeNotConfigured = "not_configured"
	OutcomeProviderError = "provider_error"
	OutcomeFailed        = "failed"
	OutcomeInvalid       = "invalid"
)

func ContactSubmission(outcome string) { contactSubmissions.WithLabelValues(outcome).Inc() }
func ThemeToggle(theme string)         { themeToggles.WithLabelValues(theme).Inc() }
func NavEvaluation(tone string)        { navEvaluations.WithLabelValues(tone).Inc() }
func PageRender(view string)           { pageRenders.WithLabelValues(view).Inc() }
func RateLimited(route string)         { rateLimited.WithLabelValues(route).Inc() }
