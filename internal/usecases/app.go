package usecases

import (
	"github.com/architeacher/idevices/internal/ports"
	"github.com/architeacher/idevices/internal/usecases/commands"
	"github.com/architeacher/idevices/internal/usecases/queries"
	"github.com/architeacher/idevices/pkg/logger"
	"github.com/architeacher/idevices/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Commands struct {
		CreateDevice       commands.CreateDeviceCommandHandler
		PrintDeviceDetails commands.PrintDeviceDetailsCommandHandler
	}

	Queries struct {
		DescribeDevice queries.DescribeDeviceQueryHandler
		CompareDevices queries.CompareDevicesQueryHandler
	}

	Application struct {
		Commands Commands
		Queries  Queries
	}
)

func NewApplication(
	devicesSvc ports.DevicesService,
	log logger.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient metrics.Client,
) *Application {
	return &Application{
		Commands: Commands{
			CreateDevice:       commands.NewCreateDeviceCommandHandler(devicesSvc, log, metricsClient, tracerProvider),
			PrintDeviceDetails: commands.NewPrintDeviceDetailsCommandHandler(devicesSvc, log, metricsClient, tracerProvider),
		},
		Queries: Queries{
			DescribeDevice: queries.NewDescribeDeviceQueryHandler(devicesSvc, log, metricsClient, tracerProvider),
			CompareDevices: queries.NewCompareDevicesQueryHandler(devicesSvc, log, metricsClient, tracerProvider),
		},
	}
}
