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
	DescribeDeviceQuery struct {
		Device model.Device
	}

	DescribeDeviceQueryHandler = decorator.QueryHandler[DescribeDeviceQuery, string]

	describeDeviceQueryHandler struct {
		devicesService ports.DevicesService
	}
)

func NewDescribeDeviceQueryHandler(
	svc ports.DevicesService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) DescribeDeviceQueryHandler {
	return decorator.ApplyQueryDecorators[DescribeDeviceQuery, string](
		describeDeviceQueryHandler{devicesService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h describeDeviceQueryHandler) Execute(ctx context.Context, query DescribeDeviceQuery) (string, error) {
	return h.devicesService.DescribeDevice(ctx, query.Device)
}
