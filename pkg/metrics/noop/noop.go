// Package noop provides the metrics client used when METRICS_ENABLED is off
// and by handler tests that do not assert on command or query counters.
package noop

import (
	"context"

	"github.com/architeacher/idevices/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
)

var _ metrics.Client = MetricsClient{}

// MetricsClient drops every counter increment.
type MetricsClient struct{}

func NewMetricsClient() MetricsClient {
	return MetricsClient{}
}

func (c MetricsClient) Inc(_ context.Context, _ string, _ any, _ ...attribute.KeyValue) {}

func (c MetricsClient) Shutdown(_ context.Context) error {
	return nil
}
