package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/architeacher/idevices/internal/config"
	"github.com/architeacher/idevices/internal/ports"
	"github.com/architeacher/idevices/internal/usecases"
	"github.com/architeacher/idevices/pkg/logger"
	"github.com/architeacher/idevices/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	infrastructureDep struct {
		tracerProvider otelTrace.TracerProvider
		metricsClient  metrics.Client
		logger         logger.Logger
	}

	dependencies struct {
		config         *config.ServiceConfig
		infra          infrastructureDep
		devicesService ports.DevicesService
		app            *usecases.Application
		cleanupFuncs   map[string]func(context.Context) error
	}

	DependencyOption func(*dependencies) error
)

func initializeDependencies(ctx context.Context, diagnostics io.Writer, opts ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{
		cleanupFuncs: make(map[string]func(context.Context) error),
	}

	allOpts := append(defaultOptions(ctx, diagnostics), opts...)

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			return nil, errors.Join(
				fmt.Errorf("failed to apply dependency option: %w", err),
				deps.release(context.WithoutCancel(ctx)),
			)
		}
	}

	return deps, nil
}

// release shuts down every resource registered so far.
func (d *dependencies) release(ctx context.Context) error {
	var errs []error

	for resource, cleanupFn := range d.cleanupFuncs {
		if err := cleanupFn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down %s: %w", resource, err))
		}
	}

	return errors.Join(errs...)
}
