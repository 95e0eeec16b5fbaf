// Package metrics registers the Prometheus collectors exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ContactMessagesTotal counts stored contact form submissions.
	ContactMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_contact_messages_total",
		Help: "Total contact messages stored.",
	})

	// NewsletterSubscriptionsTotal counts stored newsletter subscriptions.
	NewsletterSubscriptionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_newsletter_subscriptions_total",
		Help: "Total newsletter subscribers stored.",
	})

	// NewsletterConflictsTotal counts rejected duplicate subscription attempts.
	NewsletterConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_newsletter_conflicts_total",
		Help: "Total duplicate newsletter subscription attempts rejected.",
	})

	// AnalyticsEventsTotal counts stored analytics events.
	AnalyticsEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_analytics_events_total",
		Help: "Total analytics events stored.",
	})

	// SQLiteBusyErrorsTotal counts SQLITE_BUSY class errors observed on store calls.
	SQLiteBusyErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_sqlite_busy_errors_total",
		Help: "Total SQLite busy errors observed.",
	})

	// SQLiteLockedErrorsTotal counts SQLITE_LOCKED class errors observed on store calls.
	SQLiteLockedErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_sqlite_locked_errors_total",
		Help: "Total SQLite locked errors observed.",
	})
)
