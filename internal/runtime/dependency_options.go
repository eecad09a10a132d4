package runtime

import (
	"context"
	"fmt"
	"io"

	"github.com/architeacher/idevices/internal/config"
	"github.com/architeacher/idevices/internal/infrastructure"
	"github.com/architeacher/idevices/internal/services"
	"github.com/architeacher/idevices/internal/usecases"
	"github.com/architeacher/idevices/pkg/logger"
)

func defaultOptions(ctx context.Context, diagnostics io.Writer) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(diagnostics),
		WithTracing(ctx, diagnostics),
		WithMetrics(ctx),
		WithDevicesService(),
		WithApplication(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger(w io.Writer) DependencyOption {
	return func(d *dependencies) error {
		d.infra.logger = logger.NewWithWriter(d.config.Logging.Level, d.config.Logging.Format, w)

		return nil
	}
}

// WithTracing exports spans to w when tracing is enabled.
func WithTracing(ctx context.Context, w io.Writer) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.TracingEnabled() {
			d.infra.tracerProvider = infrastructure.NewNoopTracerProvider()

			return nil
		}

		tp, shutdown, err := infrastructure.NewTracerProvider(
			ctx,
			d.config.Telemetry.ServiceName,
			d.config.Telemetry.ServiceVersion,
			d.config.Telemetry.Traces.SamplerRatio,
			w,
		)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.cleanupFuncs["tracer"] = shutdown

		return nil
	}
}

func WithMetrics(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.MetricsEnabled() {
			d.infra.metricsClient = infrastructure.NewNoopMetricsClient()

			return nil
		}

		client, err := infrastructure.NewMetricsClient(
			ctx,
			d.config.Telemetry.ServiceName,
			d.config.Telemetry.ServiceVersion,
			d.infra.logger,
		)
		if err != nil {
			return fmt.Errorf("initializing metrics: %w", err)
		}

		d.infra.metricsClient = client
		d.cleanupFuncs["metrics"] = client.Shutdown

		return nil
	}
}

func WithDevicesService() DependencyOption {
	return func(d *dependencies) error {
		d.devicesService = services.NewDevicesService()

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		d.app = usecases.NewApplication(
			d.devicesService,
			d.infra.logger,
			d.infra.tracerProvider,
			d.infra.metricsClient,
		)

		return nil
	}
}
