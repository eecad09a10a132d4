package model

import (
	"io"
	"strconv"
)

const (
	MinVolumeDB       = 0.0
	MaxVolumeDB       = 100.0
	MinNumSongsStored = 0
)

type (
	// MusicPlayer is an iPod-style music device.
	MusicPlayer struct {
		purpose         Purpose
		numSongsStored  int
		currentVolumeDB float64
	}

	musicPlayerOptions struct {
		purpose    string
		hasPurpose bool
	}

	MusicPlayerOption func(*musicPlayerOptions)
)

// WithPurpose replaces the default "Listening to Music" purpose. The purpose
// must not be blank.
func WithPurpose(purpose string) MusicPlayerOption {
	return func(o *musicPlayerOptions) {
		o.purpose = purpose
		o.hasPurpose = true
	}
}

func NewMusicPlayer(currentVolumeDB float64, numSongsStored int, opts ...MusicPlayerOption) (MusicPlayer, error) {
	options := &musicPlayerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	purpose := PurposeListening
	rules := []rule{
		between(
			FieldCurrentVolumeDB,
			currentVolumeDB,
			MinVolumeDB,
			MaxVolumeDB,
			"Current volume DB out of range. Must be between "+
				formatFloat(MinVolumeDB)+" and "+formatFloat(MaxVolumeDB),
		),
		atLeastInt(
			FieldNumSongsStored,
			numSongsStored,
			MinNumSongsStored,
			"Number of songs stored cannot be below minimum of "+strconv.Itoa(MinNumSongsStored),
		),
	}

	if options.hasPurpose {
		purpose = Purpose(options.purpose)
		rules = append([]rule{notBlank(FieldPurpose, options.purpose, "Purpose must not be blank")}, rules...)
	}

	if err := validate(rules...); err != nil {
		return MusicPlayer{}, err
	}

	return MusicPlayer{
		purpose:         purpose,
		numSongsStored:  numSongsStored,
		currentVolumeDB: currentVolumeDB,
	}, nil
}

func (m MusicPlayer) Kind() Kind                     { return KindMusicPlayer }
func (m MusicPlayer) Purpose() string                { return m.purpose.String() }
func (m MusicPlayer) NumSongsStored() int            { return m.numSongsStored }
func (m MusicPlayer) CurrentVolumeDB() float64       { return m.currentVolumeDB }
func (m MusicPlayer) String() string                 { return m.Details() }
func (m MusicPlayer) PrintDetails(w io.Writer) error { return printDetails(w, m) }

// Equal compares the number of stored songs; volume is ignored.
func (m MusicPlayer) Equal(o MusicPlayer) bool {
	return m.numSongsStored == o.numSongsStored
}

func (m MusicPlayer) Hash() uint64 {
	return hashInt(m.numSongsStored)
}

func (m MusicPlayer) Details() string {
	return newDetailsBuilder(m.purpose).
		line("Current Volume (dB)", formatFloat(m.currentVolumeDB)).
		line("Number of Songs Stored", strconv.Itoa(m.numSongsStored)).
		String()
}
