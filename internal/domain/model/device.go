// Package model holds the consumer device value types and the capability contract they share.
package model

import (
	"fmt"
	"io"
	"strings"
)

type (
	HasPurpose interface {
		Purpose() string
	}

	Describable interface {
		// Details returns the canonical multi-line description.
		Details() string
		// PrintDetails writes Details to w followed by a newline.
		PrintDetails(w io.Writer) error
	}

	Device interface {
		HasPurpose
		Describable
		fmt.Stringer
		Kind() Kind
	}

	// Equatable is satisfied by device types whose equality is only defined
	// against the same concrete type.
	Equatable[T any] interface {
		Equal(other T) bool
		Hash() uint64
	}
)

type Purpose string

const (
	PurposeLearning  Purpose = "learning"
	PurposeTalking   Purpose = "Talking"
	PurposeListening Purpose = "Listening to Music"
)

func NewPurpose(s string) (Purpose, error) {
	if err := validate(notBlank(FieldPurpose, s, "Purpose must not be blank")); err != nil {
		return "", err
	}

	return Purpose(s), nil
}

func (p Purpose) String() string {
	return string(p)
}

type Kind string

const (
	KindTablet       Kind = "tablet"
	KindPhone        Kind = "phone"
	KindPhoneVariant Kind = "phone-variant"
	KindMusicPlayer  Kind = "music-player"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindTablet, KindPhone, KindPhoneVariant, KindMusicPlayer:
		return true
	default:
		return false
	}
}

func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, s)
	}

	return kind, nil
}

func AllKinds() []Kind {
	return []Kind{KindTablet, KindPhone, KindPhoneVariant, KindMusicPlayer}
}

// Same reports whether a and b are equal under their type's own equality.
func Same[T Equatable[T]](a, b T) bool {
	return a.Equal(b)
}

// Equivalent compares two devices of unknown concrete type. Devices of
// different kinds are never equivalent, a PhoneVariant and a Phone included.
func Equivalent(a, b Device) bool {
	if a == nil || b == nil {
		return false
	}

	switch left := a.(type) {
	case Tablet:
		right, ok := b.(Tablet)
		return ok && left.Equal(right)
	case Phone:
		right, ok := b.(Phone)
		return ok && left.Equal(right)
	case PhoneVariant:
		right, ok := b.(PhoneVariant)
		return ok && left.Equal(right)
	case MusicPlayer:
		right, ok := b.(MusicPlayer)
		return ok && left.Equal(right)
	default:
		return false
	}
}

func printDetails(w io.Writer, d Describable) error {
	if w == nil {
		return fmt.Errorf("%w: writer is required", ErrInvalidArgument)
	}

	if _, err := io.WriteString(w, d.Details()+"\n"); err != nil {
		return fmt.Errorf("writing device details: %w", err)
	}

	return nil
}
