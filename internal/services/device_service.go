package services

import (
	"context"
	"errors"
	"io"

	"github.com/architeacher/idevices/internal/domain/model"
)

var (
	ErrNilDevice = errors.New("device is required")
	ErrNilWriter = errors.New("writer is required")
)

type DevicesService struct{}

func NewDevicesService() *DevicesService {
	return &DevicesService{}
}

func (s *DevicesService) CreateDevice(ctx context.Context, spec model.DeviceSpec) (model.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return spec.Build()
}

func (s *DevicesService) DescribeDevice(ctx context.Context, device model.Device) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if device == nil {
		return "", ErrNilDevice
	}

	return device.Details(), nil
}

func (s *DevicesService) PrintDevice(ctx context.Context, w io.Writer, device model.Device) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if device == nil {
		return ErrNilDevice
	}

	if w == nil {
		return ErrNilWriter
	}

	return device.PrintDetails(w)
}

func (s *DevicesService) CompareDevices(ctx context.Context, left, right model.Device) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return model.Equivalent(left, right), nil
}
