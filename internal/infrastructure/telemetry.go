package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/architeacher/idevices/pkg/logger"
	"github.com/architeacher/idevices/pkg/metrics"
	metricsnoop "github.com/architeacher/idevices/pkg/metrics/noop"
	"github.com/architeacher/idevices/pkg/metrics/otelmetrics"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.32.0"
	otelTrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type ShutdownFunc func(ctx context.Context) error

func newResource(ctx context.Context, serviceName, serviceVersion string) (*resource.Resource, error) {
	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	return res, nil
}

// NewTracerProvider exports finished spans as JSON to w.
func NewTracerProvider(
	ctx context.Context,
	serviceName, serviceVersion string,
	samplerRatio float64,
	w io.Writer,
) (otelTrace.TracerProvider, ShutdownFunc, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, nil, fmt.Errorf("creating stdout trace exporter: %w", err)
	}

	res, err := newResource(ctx, serviceName, serviceVersion)
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(samplerRatio))),
	)

	return tp, tp.Shutdown, nil
}

func NewNoopTracerProvider() otelTrace.TracerProvider {
	return noop.NewTracerProvider()
}

// NewMetricsClient collects counters in memory and logs their totals when
// the client is shut down.
func NewMetricsClient(ctx context.Context, serviceName, serviceVersion string, log logger.Logger) (metrics.Client, error) {
	res, err := newResource(ctx, serviceName, serviceVersion)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)

	shutdown := func(ctx context.Context) error {
		var rm metricdata.ResourceMetrics

		collectErr := reader.Collect(ctx, &rm)
		if collectErr == nil {
			logTotals(log, rm)
		}

		return errors.Join(collectErr, provider.Shutdown(ctx))
	}

	return otelmetrics.NewClient(
		provider,
		serviceName,
		otelmetrics.WithShutdown(shutdown),
		otelmetrics.WithErrorHandler(func(key string, err error) {
			log.Warn().Err(err).Str("metric", key).Msg("failed to register metric")
		}),
	), nil
}

func NewNoopMetricsClient() metrics.Client {
	return metricsnoop.NewMetricsClient()
}

func logTotals(log logger.Logger, rm metricdata.ResourceMetrics) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}

			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}

			log.Info().Str("metric", m.Name).Int64("total", total).Msg("metric total")
		}
	}
}
