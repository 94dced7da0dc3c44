package iso8583

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// MessageOption represents a functional option for message construction
type MessageOption func(*Message) error

// WithValue sets a field value during message creation
func WithValue(name, value string) MessageOption {
	return func(m *Message) error {
		return m.Set(name, value)
	}
}

// WithValues sets multiple fields during message creation
func WithValues(values map[string]string) MessageOption {
	return func(m *Message) error {
		for name, value := range values {
			if err := m.Set(name, value); err != nil {
				return err
			}
		}
		return nil
	}
}

// ProcessorOption defines a function signature for configuring a Processor.
type ProcessorOption func(*Processor)

// WithConcurrency sets the maximum number of concurrent goroutines for the processor.
func WithConcurrency(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithErrorHandler sets a custom error handler for errors encountered during
// batch or stream processing.
func WithErrorHandler(handler func(error)) ProcessorOption {
	return func(p *Processor) {
		p.errorHandler = handler
	}
}

// WithLogger sets the logger parse failures are reported to.
func WithLogger(logger zerolog.Logger) ProcessorOption {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithMetrics records processor activity on the given metrics.
func WithMetrics(m *Metrics) ProcessorOption {
	return func(p *Processor) {
		p.metrics = m
	}
}

// WithRegisterer creates metrics for the processor and registers them on reg.
func WithRegisterer(reg prometheus.Registerer) ProcessorOption {
	return func(p *Processor) {
		p.metrics = NewMetrics(reg)
	}
}
