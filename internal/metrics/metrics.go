package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HazardsReported  *prometheus.CounterVec
	LocationUpdates  prometheus.Counter
	SessionLogins    prometheus.Counter
	WebhookDelivered prometheus.Counter
	WebhookFailed    prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HazardsReported: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hazard_reports_created_total",
			Help: "Total number of hazard reports persisted, by source.",
		}, []string{"source"}),
		LocationUpdates: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "location_fixes_published_total",
			Help: "Total number of coordinates published by the location feed.",
		}),
		SessionLogins: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "session_logins_total",
			Help: "Total number of successful logins.",
		}),
		WebhookDelivered: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "webhook_events_delivered_total",
			Help: "Total number of hazard events delivered to the webhook consumer.",
		}),
		WebhookFailed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "webhook_events_failed_total",
			Help: "Total number of hazard events dropped after exhausting retries.",
		}),
	}
}
