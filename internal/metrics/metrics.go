// Package metrics exposes the Prometheus counters recorded by the site.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	contactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "contact_submissions_total",
		Help:      "Contact form submissions by outcome",
	}, []string{"outcome"}) // outcome=invalid|sent|failed|in_flight

	relaySends = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "mail_relay_sends_total",
		Help:      "Outbound relay sends by message kind and outcome",
	}, []string{"kind", "outcome"})

	themeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "theme_toggles_total",
		Help:      "Theme toggles by resulting mode",
	}, []string{"mode"})

	resumeDownloads = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "resume_downloads_total",
		Help:      "Resume downloads served",
	})

	linkClicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "outbound_link_clicks_total",
		Help:      "Outbound link redirects by link key",
	}, []string{"link"})

	rateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portfolio",
		Name:      "ratelimit_exceeded_total",
		Help:      "Requests rejected by the rate limiter",
	}, []string{"route"})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "portfolio",
		Name:      "contact_sessions_active",
		Help:      "Contact form sessions held in memory",
	})
)

func RecordContactSubmission(outcome string) {
	contactSubmissions.WithLabelValues(outcome).Inc()
}

func RecordRelaySend(kind string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	relaySends.WithLabelValues(kind, outcome).Inc()
}

func RecordThemeToggle(mode string) {
	themeToggles.WithLabelValues(mode).Inc()
}

func RecordResumeDownload() {
	resumeDownloads.Inc()
}

func RecordLinkClick(link string) {
	linkClicks.WithLabelValues(link).Inc()
}

func RecordRateLimited(route string) {
	rateLimited.WithLabelValues(route).Inc()
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}
