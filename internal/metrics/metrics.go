package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "expresshub"

type Metrics struct {
	PushDispatches    *prometheus.CounterVec
	PushRecipients    *prometheus.CounterVec
	AnnouncementReads prometheus.Counter
	AnnouncementsMade *prometheus.CounterVec
}

// New registers collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PushDispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_dispatches_total",
			Help:      "Push dispatch attempts by notification type and result.",
		}, []string{"type", "result"}),
		PushRecipients: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_recipients_total",
			Help:      "Recipients reported by the push gateway.",
		}, []string{"type"}),
		AnnouncementReads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "announcement_reads_total",
			Help:      "Unread to read transitions.",
		}),
		AnnouncementsMade: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "announcements_created_total",
			Help:      "Announcements created by priority.",
		}, []string{"priority"}),
	}

	reg.MustRegister(m.PushDispatches, m.PushRecipients, m.AnnouncementReads, m.AnnouncementsMade)

	return m
}

// NewNop returns collectors that are not registered anywhere, for tests.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
