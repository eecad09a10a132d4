package commands

import (
	"context"

	"github.com/architeacher/idevices/internal/domain/model"
	"github.com/architeacher/idevices/internal/ports"
	"github.com/architeacher/idevices/pkg/decorator"
	"github.com/architeacher/idevices/pkg/logger"
	"github.com/architeacher/idevices/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	CreateDeviceCommand struct {
		Spec model.DeviceSpec
	}

	CreateDeviceCommandHandler = decorator.CommandHandler[CreateDeviceCommand, model.Device]

	createDeviceCommandHandler struct {
		devicesService ports.DevicesService
	}
)

func NewCreateDeviceCommandHandler(
	svc ports.DevicesService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CreateDeviceCommandHandler {
	return decorator.ApplyCommandDecorators[CreateDeviceCommand, model.Device](
		createDeviceCommandHandler{devicesService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h createDeviceCommandHandler) Handle(ctx context.Context, cmd CreateDeviceCommand) (model.Device, error) {
	return h.devicesService.CreateDevice(ctx, cmd.Spec)
}
