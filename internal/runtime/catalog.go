package runtime

import "github.com/architeacher/idevices/internal/domain/model"

// SampleCatalog is the default set of devices printed by the demo.
func SampleCatalog() []model.DeviceSpec {
	return []model.DeviceSpec{
		{
			Kind:      model.KindTablet,
			HasCase:   true,
			OSVersion: "16.4.1",
		},
		{
			Kind:                 model.KindPhone,
			RemainingPlanMinutes: 120.5,
			PlanCarrier:          "Verizon",
		},
		{
			Kind:                 model.KindPhoneVariant,
			RemainingPlanMinutes: 300.0,
			PlanCarrier:          "T-Mobile",
			HighResCamera:        true,
			MemoryGigabytes:      256,
		},
		{
			Kind:            model.KindMusicPlayer,
			CurrentVolumeDB: 50.0,
			NumSongsStored:  1200,
		},
	}
}
