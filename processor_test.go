package iso8583

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const networkMessage = "08008220000000000000040000000000000020240101120000000001301"

func TestProcessorParseBatch(t *testing.T) {
	p := NewProcessor(TietoNative, WithConcurrency(3))

	batch := []string{tietoAuthorization, networkMessage, tietoAuthorization, networkMessage, networkMessage}
	msgs, err := p.ParseBatch(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, msgs, len(batch))

	for i, data := range batch {
		out, err := msgs[i].Compose()
		require.NoError(t, err)
		assert.Equal(t, data, out, i)
	}
}

func TestProcessorParseBatchError(t *testing.T) {
	var mu sync.Mutex
	var handled []error
	p := NewProcessor(TietoNative, WithErrorHandler(func(err error) {
		mu.Lock()
		handled = append(handled, err)
		mu.Unlock()
	}))

	msgs, err := p.ParseBatch(context.Background(), []string{networkMessage, networkMessage + "X"})
	assert.Nil(t, msgs)
	assert.ErrorIs(t, err, ErrTrailingData)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, handled, 1)
	assert.ErrorIs(t, handled[0], ErrTrailingData)
}

func TestProcessorParseBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msgs, err := NewProcessor(TietoNative).ParseBatch(ctx, []string{networkMessage})
	assert.Nil(t, msgs)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessorParseStream(t *testing.T) {
	p := NewProcessor(TietoNative, WithConcurrency(2))

	in := make(chan string)
	out := make(chan *Message, 8)

	go func() {
		defer close(in)
		for _, data := range []string{networkMessage, "garbage", tietoAuthorization, networkMessage} {
			in <- data
		}
	}()

	require.NoError(t, p.ParseStream(context.Background(), in, out))
	close(out)

	var mtis []string
	for msg := range out {
		mti, _ := msg.MTI()
		mtis = append(mtis, mti)
	}
	sort.Strings(mtis)
	assert.Equal(t, []string{"0800", "0800", "1100"}, mtis)
}

func TestProcessorParseStreamCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewProcessor(TietoNative).ParseStream(ctx, make(chan string), make(chan *Message))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessorMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewProcessor(TietoNative, WithRegisterer(reg))

	msg, err := p.Parse(networkMessage)
	require.NoError(t, err)
	_, err = p.Parse("0800")
	require.Error(t, err)
	_, err = p.Compose(msg)
	require.NoError(t, err)

	m := p.metrics
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parsed.WithLabelValues("tieto-native", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parsed.WithLabelValues("tieto-native", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.composed.WithLabelValues("tieto-native", "ok")))
	series, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, series)

	// A second processor on the same registry shares the collectors.
	other := NewProcessor(TietoNative, WithRegisterer(reg))
	_, err = other.Parse(networkMessage)
	require.NoError(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.parsed.WithLabelValues("tieto-native", "ok")))
}

func TestProcessorLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	p := NewProcessor(TietoNative, WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	_, err := p.Parse(networkMessage)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"parsed"`)
	assert.Contains(t, buf.String(), `"de70":"301"`)

	buf.Reset()
	_, err = p.Parse("08")
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"schema":"tieto-native"`)
}

func TestConcurrentParseCompose(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			msg, err := Parse(TietoNative, tietoAuthorization)
			if err != nil {
				return err
			}
			out, err := msg.Compose()
			if err != nil {
				return err
			}
			if out != tietoAuthorization {
				t.Errorf("round trip mismatch: %s", out)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
