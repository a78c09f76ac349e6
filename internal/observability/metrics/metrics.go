package metrics

import "github.com/prometheus/client_golang/prometheus"

// ConversationMetrics exposes counters for the dialogue surface.
type ConversationMetrics struct {
	messagesTotal    *prometheus.CounterVec
	providerFailures *prometheus.CounterVec
	bookingsTotal    prometheus.Counter
}

func NewConversationMetrics(reg prometheus.Registerer) *ConversationMetrics {
	m := &ConversationMetrics{
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intake",
			Subsystem: "dialogue",
			Name:      "messages_total",
			Help:      "Total handled chat messages",
		}, []string{"phase", "action"}),
		providerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intake",
			Subsystem: "dialogue",
			Name:      "provider_failures_total",
			Help:      "Total leaf provider failures",
		}, []string{"provider"}),
		bookingsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "intake",
			Subsystem: "dialogue",
			Name:      "bookings_total",
			Help:      "Total confirmed bookings",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.messagesTotal, m.providerFailures, m.bookingsTotal)
	return m
}

func (m *ConversationMetrics) ObserveMessage(phase, action string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(phase, action).Inc()
}

func (m *ConversationMetrics) ObserveProviderFailure(provider string) {
	if m == nil {
		return
	}
	m.providerFailures.WithLabelValues(provider).Inc()
}

func (m *ConversationMetrics) ObserveBooking() {
	if m == nil {
		return
	}
	m.bookingsTotal.Inc()
}
