package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	STATUS_OK    = "ok"
	STATUS_ERROR = "error"
)

// Metrics counts dispatched commands and their latency
type Metrics struct {
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "redigo",
			Name:      "commands_total",
			Help:      "Dispatched commands by name and outcome.",
		}, []string{"command", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "redigo",
			Name:      "command_duration_seconds",
			Help:      "Time spent dispatching a command.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"command"}),
	}

	for _, collector := range []prometheus.Collector{metrics.commands, metrics.duration} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return metrics, nil
}

func (metrics *Metrics) Observe(command string, elapsed time.Duration, err error) {
	status := STATUS_OK
	if err != nil {
		status = STATUS_ERROR
	}
	metrics.commands.WithLabelValues(command, status).Inc()
	metrics.duration.WithLabelValues(command).Observe(elapsed.Seconds())
}
