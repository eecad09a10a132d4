package commands

import (
	"context"
	"io"

	"github.com/architeacher/idevices/internal/domain/model"
	"github.com/architeacher/idevices/internal/ports"
	"github.com/architeacher/idevices/pkg/decorator"
	"github.com/architeacher/idevices/pkg/logger"
	"github.com/architeacher/idevices/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	PrintDeviceDetailsCommand struct {
		Device model.Device
		Writer io.Writer
	}

	PrintDeviceDetailsCommandHandler = decorator.CommandHandler[PrintDeviceDetailsCommand, struct{}]

	printDeviceDetailsCommandHandler struct {
		devicesService ports.DevicesService
	}
)

func NewPrintDeviceDetailsCommandHandler(
	svc ports.DevicesService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) PrintDeviceDetailsCommandHandler {
	return decorator.ApplyCommandDecorators[PrintDeviceDetailsCommand, struct{}](
		printDeviceDetailsCommandHandler{devicesService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h printDeviceDetailsCommandHandler) Handle(ctx context.Context, cmd PrintDeviceDetailsCommand) (struct{}, error) {
	return struct{}{}, h.devicesService.PrintDevice(ctx, cmd.Writer, cmd.Device)
}
