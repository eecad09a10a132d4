package model

import (
	"io"
	"strconv"
)

// PhoneVariant is an iPhone 16 style phone. It carries every Phone field plus a
// camera flag and a fixed memory size.
type PhoneVariant struct {
	phone         Phone
	highResCamera bool
	memory        MemorySize
}

func NewPhoneVariant(
	remainingPlanMinutes float64,
	planCarrier string,
	highResCamera bool,
	memoryGigabytes int,
) (PhoneVariant, error) {
	phone, err := NewPhone(remainingPlanMinutes, planCarrier)
	if err != nil {
		return PhoneVariant{}, err
	}

	err = validate(oneOf(
		FieldMemoryGigabytes,
		MemorySize(memoryGigabytes),
		AllMemorySizes(),
		"Invalid model of phone",
	))
	if err != nil {
		return PhoneVariant{}, err
	}

	return PhoneVariant{
		phone:         phone,
		highResCamera: highResCamera,
		memory:        MemorySize(memoryGigabytes),
	}, nil
}

func (v PhoneVariant) Kind() Kind                     { return KindPhoneVariant }
func (v PhoneVariant) Purpose() string                { return v.phone.Purpose() }
func (v PhoneVariant) PlanCarrier() string            { return v.phone.PlanCarrier() }
func (v PhoneVariant) RemainingPlanMinutes() float64  { return v.phone.RemainingPlanMinutes() }
func (v PhoneVariant) HighResCamera() bool            { return v.highResCamera }
func (v PhoneVariant) Memory() MemorySize             { return v.memory }
func (v PhoneVariant) String() string                 { return v.Details() }
func (v PhoneVariant) PrintDetails(w io.Writer) error { return printDetails(w, v) }

// Phone returns the plain phone view of this variant.
func (v PhoneVariant) Phone() Phone {
	return v.phone
}

// Equal compares remaining minutes and the camera flag. Memory size and
// carrier do not take part, so a 256GB and a 512GB variant can be equal.
func (v PhoneVariant) Equal(o PhoneVariant) bool {
	return v.phone.Equal(o.phone) && v.highResCamera == o.highResCamera
}

func (v PhoneVariant) Hash() uint64 {
	return v.phone.Hash()
}

func (v PhoneVariant) Details() string {
	return v.phone.details().
		line("Has High Resolution Camera", strconv.FormatBool(v.highResCamera)).
		line("Memory", v.memory.String()).
		String()
}
