package model

import "fmt"

// DeviceSpec carries constructor arguments for any device kind. Only the
// fields relevant to Kind are read.
type DeviceSpec struct {
	Kind Kind

	// Purpose overrides the music player default when non-empty.
	Purpose string

	HasCase   bool
	OSVersion string

	RemainingPlanMinutes float64
	PlanCarrier          string
	HighResCamera        bool
	MemoryGigabytes      int

	CurrentVolumeDB float64
	NumSongsStored  int
}

func (s DeviceSpec) Build() (Device, error) {
	switch s.Kind {
	case KindTablet:
		return NewTablet(s.HasCase, s.OSVersion), nil
	case KindPhone:
		phone, err := NewPhone(s.RemainingPlanMinutes, s.PlanCarrier)
		if err != nil {
			return nil, err
		}

		return phone, nil
	case KindPhoneVariant:
		variant, err := NewPhoneVariant(s.RemainingPlanMinutes, s.PlanCarrier, s.HighResCamera, s.MemoryGigabytes)
		if err != nil {
			return nil, err
		}

		return variant, nil
	case KindMusicPlayer:
		var opts []MusicPlayerOption
		if s.Purpose != "" {
			opts = append(opts, WithPurpose(s.Purpose))
		}

		player, err := NewMusicPlayer(s.CurrentVolumeDB, s.NumSongsStored, opts...)
		if err != nil {
			return nil, err
		}

		return player, nil
	default:
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidArgument, ErrUnknownKind, s.Kind)
	}
}
