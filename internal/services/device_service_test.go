package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/architeacher/idevices/internal/domain/model"
	"github.com/architeacher/idevices/internal/ports"
	"github.com/architeacher/idevices/internal/services"
	"github.com/stretchr/testify/require"
)

var _ ports.DevicesService = (*services.DevicesService)(nil)

func TestDevicesService_CreateDevice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		spec         model.DeviceSpec
		expectedKind model.Kind
		wantErr      error
	}{
		{
			name:         "creates tablet",
			spec:         model.DeviceSpec{Kind: model.KindTablet, OSVersion: "17.4"},
			expectedKind: model.KindTablet,
		},
		{
			name:         "creates phone variant",
			spec:         model.DeviceSpec{Kind: model.KindPhoneVariant, RemainingPlanMinutes: 10, PlanCarrier: "T-Mobile", MemoryGigabytes: 256},
			expectedKind: model.KindPhoneVariant,
		},
		{
			name:    "propagates validation errors",
			spec:    model.DeviceSpec{Kind: model.KindMusicPlayer, CurrentVolumeDB: 150, NumSongsStored: 5},
			wantErr: model.ErrInvalidArgument,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			device, err := services.NewDevicesService().CreateDevice(context.Background(), tc.spec)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, device)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expectedKind, device.Kind())
		})
	}
}

func TestDevicesService_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := services.NewDevicesService()
	tablet := model.NewTablet(true, "17.4")

	_, err := svc.CreateDevice(ctx, model.DeviceSpec{Kind: model.KindTablet})
	require.ErrorIs(t, err, context.Canceled)

	_, err = svc.DescribeDevice(ctx, tablet)
	require.ErrorIs(t, err, context.Canceled)

	require.ErrorIs(t, svc.PrintDevice(ctx, &bytes.Buffer{}, tablet), context.Canceled)

	_, err = svc.CompareDevices(ctx, tablet, tablet)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDevicesService_DescribeAndPrint(t *testing.T) {
	t.Parallel()

	svc := services.NewDevicesService()
	ctx := context.Background()

	player, err := model.NewMusicPlayer(50.0, 5)
	require.NoError(t, err)

	details, err := svc.DescribeDevice(ctx, player)
	require.NoError(t, err)
	require.Contains(t, details, "Number of Songs Stored: 5")

	var buf bytes.Buffer
	require.NoError(t, svc.PrintDevice(ctx, &buf, player))
	require.Equal(t, details+"\n", buf.String())

	_, err = svc.DescribeDevice(ctx, nil)
	require.ErrorIs(t, err, services.ErrNilDevice)
	require.ErrorIs(t, svc.PrintDevice(ctx, &buf, nil), services.ErrNilDevice)
	require.ErrorIs(t, svc.PrintDevice(ctx, nil, player), services.ErrNilWriter)
}

func TestDevicesService_CompareDevices(t *testing.T) {
	t.Parallel()

	svc := services.NewDevicesService()

	left, err := model.NewPhone(30, "Verizon")
	require.NoError(t, err)

	right, err := model.NewPhone(30, "Telus")
	require.NoError(t, err)

	equal, err := svc.CompareDevices(context.Background(), left, right)
	require.NoError(t, err)
	require.True(t, equal)

	equal, err = svc.CompareDevices(context.Background(), left, model.NewTablet(true, "30"))
	require.NoError(t, err)
	require.False(t, equal)
}
