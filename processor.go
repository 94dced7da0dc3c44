package iso8583

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Processor parses and composes messages of one family, sharing a single
// immutable Schema across as many goroutines as it is configured for.
type Processor struct {
	schema       *Schema
	concurrency  int
	logger       zerolog.Logger
	metrics      *Metrics
	errorHandler func(error)
}

// NewProcessor creates a new Processor with the given schema and options.
func NewProcessor(schema *Schema, opts ...ProcessorOption) *Processor {
	p := &Processor{
		schema:      schema,
		concurrency: 4,
		logger:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Processor) Schema() *Schema {
	return p.schema
}

// Parse decodes a single message.
func (p *Processor) Parse(data string) (*Message, error) {
	msg, err := Parse(p.schema, data)
	p.metrics.observeParse(p.schema.name, len(data), err)
	if err != nil {
		p.logger.Warn().Err(err).Str("schema", p.schema.name).Int("size", len(data)).Msg("parse failed")
		if p.errorHandler != nil {
			p.errorHandler(err)
		}
		return nil, err
	}
	p.logger.Debug().Object("msg", msg).Msg("parsed")
	return msg, nil
}

// Compose encodes a single message.
func (p *Processor) Compose(msg *Message) (string, error) {
	out, err := Compose(p.schema, msg)
	p.metrics.observeCompose(p.schema.name, len(out), err)
	if err != nil {
		p.logger.Warn().Err(err).Str("schema", p.schema.name).Msg("compose failed")
		if p.errorHandler != nil {
			p.errorHandler(err)
		}
		return "", err
	}
	return out, nil
}

// ParseBatch parses every entry of batch concurrently. Results keep the
// order of batch. It stops scheduling work at the first error or when ctx
// is cancelled, and returns that error with no results.
func (p *Processor) ParseBatch(ctx context.Context, batch []string) ([]*Message, error) {
	results := make([]*Message, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, data := range batch {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			msg, err := p.Parse(data)
			if err != nil {
				return err
			}
			results[i] = msg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// ParseStream parses messages from input until it is closed or ctx is
// done, sending each parsed message to output. Messages that fail to parse
// are reported through the logger and error handler and dropped. Output
// order follows completion, not input order.
func (p *Processor) ParseStream(ctx context.Context, input <-chan string, output chan<- *Message) error {
	g := new(errgroup.Group)
	g.SetLimit(p.concurrency)

	for {
		select {
		case <-ctx.Done():
			_ = g.Wait()
			return ctx.Err()

		case data, ok := <-input:
			if !ok {
				return g.Wait()
			}

			g.Go(func() error {
				msg, err := p.Parse(data)
				if err != nil {
					return nil
				}
				select {
				case output <- msg:
				case <-ctx.Done():
				}
				return nil
			})
		}
	}
}
