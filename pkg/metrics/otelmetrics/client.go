// Package otelmetrics implements metrics.Client on top of an OTEL meter.
// Every key becomes a monotonic Int64 counter registered on first use.
package otelmetrics

import (
	"context"
	"sync"

	"github.com/architeacher/idevices/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type (
	Client struct {
		meter    metric.Meter
		shutdown func(context.Context) error
		onError  func(key string, err error)

		mu       sync.Mutex
		counters map[string]metric.Int64Counter
	}

	Option func(*Client)
)

var _ metrics.Client = (*Client)(nil)

// WithShutdown registers the provider shutdown called by Client.Shutdown.
func WithShutdown(fn func(context.Context) error) Option {
	return func(c *Client) {
		c.shutdown = fn
	}
}

func WithErrorHandler(fn func(key string, err error)) Option {
	return func(c *Client) {
		c.onError = fn
	}
}

func NewClient(provider metric.MeterProvider, scope string, opts ...Option) *Client {
	c := &Client{
		meter:    provider.Meter(scope),
		counters: make(map[string]metric.Int64Counter),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Inc(ctx context.Context, key string, value any, attributes ...attribute.KeyValue) {
	v, ok := metrics.ToInt64(value)
	if !ok || v < 0 {
		return
	}

	counter, err := c.counter(key)
	if err != nil {
		if c.onError != nil {
			c.onError(key, err)
		}

		return
	}

	counter.Add(ctx, v, metric.WithAttributes(attributes...))
}

func (c *Client) Shutdown(ctx context.Context) error {
	if c.shutdown == nil {
		return nil
	}

	return c.shutdown(ctx)
}

func (c *Client) counter(key string) (metric.Int64Counter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if counter, ok := c.counters[key]; ok {
		return counter, nil
	}

	counter, err := metrics.RegisterInt64Counter(c.meter, metrics.Descriptor{Description: key, Unit: "1"}, key)
	if err != nil {
		return nil, err
	}

	c.counters[key] = counter

	return counter, nil
}
