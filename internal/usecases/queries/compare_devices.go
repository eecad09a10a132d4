package queries

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
	CompareDevicesQuery struct {
		Left  model.Device
		Right model.Device
	}

	CompareDevicesQueryHandler = decorator.QueryHandler[CompareDevicesQuery, bool]

	compareDevicesQueryHandler struct {
		devicesService ports.DevicesService
	}
)

func NewCompareDevicesQueryHandler(
	svc ports.DevicesService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CompareDevicesQueryHandler {
	return decorator.ApplyQueryDecorators[CompareDevicesQuery, bool](
		compareDevicesQueryHandler{devicesService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h compareDevicesQueryHandler) Execute(ctx context.Context, query CompareDevicesQuery) (bool, error) {
	return h.devicesService.CompareDevices(ctx, query.Left, query.Right)
}
