package crosschat

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects fan-out outcomes per action
type Metrics struct {
	outcomes *prometheus.CounterVec
	duration *prometheus.HistogramVec
	skipped  *prometheus.CounterVec
}

// NewMetrics makes fan-out metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moderator_fanout_chat_actions_total",
				Help: "Total per-chat actions of cross-chat fan-outs",
			},
			[]string{"action", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "moderator_fanout_duration_seconds",
				Help:    "Histogram of cross-chat fan-out durations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"action"},
		),
		skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moderator_fanout_skipped_chats_total",
				Help: "Total chats skipped by fan-outs as inactive or unhealthy",
			},
			[]string{"action"},
		),
	}
	reg.MustRegister(m.outcomes, m.duration, m.skipped)
	return m
}

func (m *Metrics) observe(action string, res Result, started time.Time) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(action, "success").Add(float64(res.Success))
	m.outcomes.WithLabelValues(action, "failed").Add(float64(res.Failed))
	m.skipped.WithLabelValues(action).Add(float64(res.Skipped))
	m.duration.WithLabelValues(action).Observe(time.Since(started).Seconds())
}
