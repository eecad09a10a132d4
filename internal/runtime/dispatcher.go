package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/architeacher/idevices/internal/domain/model"
	"github.com/architeacher/idevices/internal/usecases/commands"
	"github.com/architeacher/idevices/pkg/logger"
)

type ServiceCtx struct {
	deps        *dependencies
	output      io.Writer
	diagnostics io.Writer
	catalog     []model.DeviceSpec
	depOpts     []DependencyOption
}

func New(opts ...ServiceOption) *ServiceCtx {
	c := &ServiceCtx{
		output:      os.Stdout,
		diagnostics: os.Stderr,
		catalog:     SampleCatalog(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run builds every catalog entry and prints the ones that pass validation.
// The returned error joins every construction or print failure.
func (c *ServiceCtx) Run(ctx context.Context) error {
	if err := c.build(ctx); err != nil {
		return fmt.Errorf("failed to build service: %w", err)
	}

	defer c.cleanup(context.WithoutCancel(ctx))

	var errs []error

	for i, spec := range c.catalog {
		itemCtx := logger.ContextWithCorrelationID(ctx, "catalog-"+strconv.Itoa(i))

		if err := c.printEntry(itemCtx, spec); err != nil {
			log := c.deps.infra.logger.ForDevice(spec.Kind.String()).WithContext(itemCtx)
			log.Error().
				Err(err).
				Msg("skipping catalog entry")

			errs = append(errs, fmt.Errorf("catalog entry %d (%s): %w", i, spec.Kind, err))
		}
	}

	return errors.Join(errs...)
}

func (c *ServiceCtx) build(ctx context.Context) error {
	deps, err := initializeDependencies(ctx, c.diagnostics, c.depOpts...)
	if err != nil {
		return fmt.Errorf("initializing dependencies: %w", err)
	}

	c.deps = deps

	c.deps.infra.logger.Debug().
		Str("service", c.deps.config.App.ServiceName).
		Str("version", c.deps.config.App.ServiceVersion).
		Int("catalog_size", len(c.catalog)).
		Msg("dependencies initialized")

	return nil
}

func (c *ServiceCtx) printEntry(ctx context.Context, spec model.DeviceSpec) error {
	device, err := c.deps.app.Commands.CreateDevice.Handle(ctx, commands.CreateDeviceCommand{Spec: spec})
	if err != nil {
		return err
	}

	_, err = c.deps.app.Commands.PrintDeviceDetails.Handle(ctx, commands.PrintDeviceDetailsCommand{
		Device: device,
		Writer: c.output,
	})

	return err
}

func (c *ServiceCtx) cleanup(ctx context.Context) {
	if err := c.deps.release(ctx); err != nil {
		c.deps.infra.logger.Error().
			Err(err).
			Msg("failed to shutdown resources gracefully")
	}
}
