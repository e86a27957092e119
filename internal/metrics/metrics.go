// Package metrics exposes Prometheus counters for order processing passes.
package metrics

import (
	"orderalerts/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements commands.Recorder on top of Prometheus counters.
type Recorder struct {
	AlertsSentTotal         prometheus.Counter
	AlertsFailedTotal       prometheus.Counter
	OrdersUpdatedTotal      prometheus.Counter
	OrderUpdatesFailedTotal prometheus.Counter
	RunsTotal               *prometheus.CounterVec
}

var _ commands.Recorder = (*Recorder)(nil)

// NewRecorder creates the counters and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		AlertsSentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "order_alerts_sent_total",
			Help: "Total number of delivery alerts accepted by the alert API",
		}),
		AlertsFailedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "order_alerts_failed_total",
			Help: "Total number of delivery alerts rejected or not delivered",
		}),
		OrdersUpdatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "order_updates_total",
			Help: "Total number of orders persisted back to the order API",
		}),
		OrderUpdatesFailedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "order_updates_failed_total",
			Help: "Total number of order updates that failed",
		}),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_processing_runs_total",
				Help: "Total number of processing passes by outcome",
			},
			[]string{"outcome"},
		),
	}

	reg.MustRegister(
		r.AlertsSentTotal,
		r.AlertsFailedTotal,
		r.OrdersUpdatedTotal,
		r.OrderUpdatesFailedTotal,
		r.RunsTotal,
	)
	return r
}

func (r *Recorder) AlertSent()         { r.AlertsSentTotal.Inc() }
func (r *Recorder) AlertFailed()       { r.AlertsFailedTotal.Inc() }
func (r *Recorder) OrderUpdated()      { r.OrdersUpdatedTotal.Inc() }
func (r *Recorder) OrderUpdateFailed() { r.OrderUpdatesFailedTotal.Inc() }

func (r *Recorder) RunFinished(outcome string) {
	r.RunsTotal.WithLabelValues(outcome).Inc()
}
