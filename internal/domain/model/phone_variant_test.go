package model_test

import (
	"testing"

	"github.com/architeacher/idevices/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestNewPhoneVariant(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		minutes       float64
		carrier       string
		camera        bool
		memory        int
		expectedField string
	}{
		{
			name:    "256GB accepted",
			minutes: 10.0,
			carrier: "T-Mobile",
			camera:  true,
			memory:  256,
		},
		{
			name:    "512GB accepted",
			minutes: 10.0,
			carrier: "T-Mobile",
			camera:  false,
			memory:  512,
		},
		{
			name:          "128GB rejected",
			minutes:       10.0,
			carrier:       "T-Mobile",
			camera:        true,
			memory:        128,
			expectedField: model.FieldMemoryGigabytes,
		},
		{
			name:          "zero memory rejected",
			minutes:       10.0,
			carrier:       "T-Mobile",
			memory:        0,
			expectedField: model.FieldMemoryGigabytes,
		},
		{
			name:          "phone validation runs first",
			minutes:       0.5,
			carrier:       "T-Mobile",
			memory:        128,
			expectedField: model.FieldRemainingPlanMinutes,
		},
		{
			name:          "blank carrier rejected",
			minutes:       10.0,
			carrier:       "  ",
			memory:        256,
			expectedField: model.FieldPlanCarrier,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			variant, err := model.NewPhoneVariant(tc.minutes, tc.carrier, tc.camera, tc.memory)

			if tc.expectedField != "" {
				require.ErrorIs(t, err, model.ErrInvalidArgument)
				require.Equal(t, model.PhoneVariant{}, variant)

				var validationErrs *model.ValidationErrors
				require.ErrorAs(t, err, &validationErrs)
				require.Equal(t, []string{tc.expectedField}, validationErrs.Fields())

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.minutes, variant.RemainingPlanMinutes())
			require.Equal(t, tc.carrier, variant.PlanCarrier())
			require.Equal(t, tc.camera, variant.HighResCamera())
			require.Equal(t, tc.memory, variant.Memory().Gigabytes())
			require.Equal(t, "Talking", variant.Purpose())
			require.Equal(t, model.KindPhoneVariant, variant.Kind())
		})
	}
}

func TestNewPhoneVariant_ErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := model.NewPhoneVariant(10.0, "T-Mobile", true, 128)
	require.EqualError(t, err, "Invalid model of phone")
}

// Memory size and carrier are not part of variant equality. These cases pin
// that behavior down.
func TestPhoneVariant_Equal(t *testing.T) {
	t.Parallel()

	base, err := model.NewPhoneVariant(45.0, "T-Mobile", true, 256)
	require.NoError(t, err)

	cases := []struct {
		name     string
		minutes  float64
		carrier  string
		camera   bool
		memory   int
		expected bool
	}{
		{
			name:     "differs only in memory",
			minutes:  45.0,
			carrier:  "T-Mobile",
			camera:   true,
			memory:   512,
			expected: true,
		},
		{
			name:     "differs only in carrier",
			minutes:  45.0,
			carrier:  "AT&T",
			camera:   true,
			memory:   256,
			expected: true,
		},
		{
			name:     "differs in camera",
			minutes:  45.0,
			carrier:  "T-Mobile",
			camera:   false,
			memory:   256,
			expected: false,
		},
		{
			name:     "differs in minutes",
			minutes:  46.0,
			carrier:  "T-Mobile",
			camera:   true,
			memory:   256,
			expected: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			other, err := model.NewPhoneVariant(tc.minutes, tc.carrier, tc.camera, tc.memory)
			require.NoError(t, err)

			require.Equal(t, tc.expected, base.Equal(other))
			require.Equal(t, tc.expected, other.Equal(base))

			if tc.expected {
				require.Equal(t, base.Hash(), other.Hash())
			}
		})
	}
}

func TestPhoneVariant_Details(t *testing.T) {
	t.Parallel()

	variant, err := model.NewPhoneVariant(10.0, "T-Mobile", true, 512)
	require.NoError(t, err)

	require.Equal(t,
		"Device Purpose: Talking\n"+
			"Remaining Plan Minutes: 10.0\n"+
			"Plan Carrier: T-Mobile\n"+
			"Has High Resolution Camera: true\n"+
			"Memory: 512GB",
		variant.Details(),
	)
	require.Equal(t, variant.Phone().Details(), variant.Phone().String())
}

func TestMemorySize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		gigabytes int
		wantErr   bool
	}{
		{name: "256", gigabytes: 256},
		{name: "512", gigabytes: 512},
		{name: "128", gigabytes: 128, wantErr: true},
		{name: "1024", gigabytes: 1024, wantErr: true},
		{name: "negative", gigabytes: -256, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			size, err := model.ParseMemorySize(tc.gigabytes)
			if tc.wantErr {
				require.ErrorIs(t, err, model.ErrInvalidArgument)
				require.False(t, model.MemorySize(tc.gigabytes).IsValid())

				return
			}

			require.NoError(t, err)
			require.True(t, size.IsValid())
			require.Equal(t, tc.gigabytes, size.Gigabytes())
			require.Contains(t, model.AllMemorySizes(), size)
		})
	}

	require.Equal(t, "256GB", model.Memory256GB.String())
}
