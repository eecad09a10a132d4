package ports

import (
	"context"
	"io"

	"github.com/architeacher/idevices/internal/domain/model"
)

// DevicesService defines the device operations exposed to the use cases.
type DevicesService interface {
	// CreateDevice validates spec and builds the matching device.
	CreateDevice(ctx context.Context, spec model.DeviceSpec) (model.Device, error)

	// DescribeDevice returns the canonical text of a device.
	DescribeDevice(ctx context.Context, device model.Device) (string, error)

	// PrintDevice writes the device details to w.
	PrintDevice(ctx context.Context, w io.Writer, device model.Device) error

	// CompareDevices reports whether two devices are equivalent.
	CompareDevices(ctx context.Context, left, right model.Device) (bool, error)
}
