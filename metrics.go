package iso8583

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts messages a Processor parses and composes. A nil *Metrics
// records nothing.
type Metrics struct {
	parsed   *prometheus.CounterVec
	composed *prometheus.CounterVec
	size     *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg. Collectors
// already registered on reg by an earlier call are reused. A nil reg leaves
// them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		parsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "iso8583",
				Name:      "messages_parsed_total",
				Help:      "Messages parsed, by schema and result.",
			},
			[]string{"schema", "result"},
		),
		composed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "iso8583",
				Name:      "messages_composed_total",
				Help:      "Messages composed, by schema and result.",
			},
			[]string{"schema", "result"},
		),
		size: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "iso8583",
				Name:      "message_size_bytes",
				Help:      "Wire size of successfully parsed or composed messages.",
				Buckets:   prometheus.ExponentialBuckets(32, 2, 8),
			},
			[]string{"schema"},
		),
	}
	if reg != nil {
		m.parsed = register(reg, m.parsed)
		m.composed = register(reg, m.composed)
		m.size = register(reg, m.size)
	}
	return m
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) observeParse(schema string, size int, err error) {
	if m == nil {
		return
	}
	m.parsed.WithLabelValues(schema, result(err)).Inc()
	if err == nil {
		m.size.WithLabelValues(schema).Observe(float64(size))
	}
}

func (m *Metrics) observeCompose(schema string, size int, err error) {
	if m == nil {
		return
	}
	m.composed.WithLabelValues(schema, result(err)).Inc()
	if err == nil {
		m.size.WithLabelValues(schema).Observe(float64(size))
	}
}
