package fanout

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the hub's Prometheus collectors.
type Metrics struct {
	Connections prometheus.Gauge
	Broadcasts  *prometheus.CounterVec
	Delivered   prometheus.Counter
	Dropped     prometheus.Counter
	Evicted     prometheus.Counter
}

// NewMetrics creates the hub collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "laundry",
			Subsystem: "fanout",
			Name:      "connections",
			Help:      "Number of registered real-time connections.",
		}),
		Broadcasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "laundry",
			Subsystem: "fanout",
			Name:      "broadcasts_total",
			Help:      "Total number of events broadcast to a group.",
		}, []string{"event"}),
		Delivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "laundry",
			Subsystem: "fanout",
			Name:      "delivered_total",
			Help:      "Total number of frames queued to a connection outbox.",
		}),
		Dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "laundry",
			Subsystem: "fanout",
			Name:      "dropped_total",
			Help:      "Total number of frames dropped because an outbox was full.",
		}),
		Evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "laundry",
			Subsystem: "fanout",
			Name:      "evicted_total",
			Help:      "Total number of connections evicted by the heartbeat.",
		}),
	}

	reg.MustRegister(m.Connections, m.Broadcasts, m.Delivered, m.Dropped, m.Evicted)
	return m
}
