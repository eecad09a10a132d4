package decorator

import (
	"context"
	"fmt"
	"strings"

	"github.com/architeacher/idevices/pkg/logger"
	"github.com/architeacher/idevices/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Command any

	// CommandHandler changes device state or output, e.g. CreateDeviceCommand
	// returning the built model.Device, or PrintDeviceDetailsCommand writing details.
	CommandHandler[C Command, R any] interface {
		Handle(context.Context, C) (R, error)
	}
)

// ApplyCommandDecorators puts logging outermost and tracing closest to handler.
func ApplyCommandDecorators[C Command, R any](
	handler CommandHandler[C, R],
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CommandHandler[C, R] {
	return commandLoggingDecorator[C, R]{
		base: commandMetricsDecorator[C, R]{
			base: commandTracingDecorator[C, R]{
				base:           handler,
				tracerProvider: tracerProvider,
			},
			client: metricsClient,
		},
		logger: log,
	}
}

// generateActionName turns *commands.CreateDeviceCommand into CreateDeviceCommand.
func generateActionName(v any) string {
	name := fmt.Sprintf("%T", v)

	return name[strings.LastIndex(name, ".")+1:]
}
