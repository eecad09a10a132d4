package model

import (
	"math"
	"slices"
	"strings"
)

const (
	FieldPurpose              = "purpose"
	FieldRemainingPlanMinutes = "remaining_plan_minutes"
	FieldPlanCarrier          = "plan_carrier"
	FieldMemoryGigabytes      = "memory_gigabytes"
	FieldNumSongsStored       = "num_songs_stored"
	FieldCurrentVolumeDB      = "current_volume_db"
	FieldKind                 = "kind"
)

type rule struct {
	check   func() bool
	field   string
	message string
	code    string
}

// validate runs every rule and reports all failures at once.
func validate(rules ...rule) error {
	errs := NewValidationErrors()

	for _, r := range rules {
		if !r.check() {
			errs.Add(r.field, r.message, r.code)
		}
	}

	return errs.Err()
}

func notBlank(field, value, message string) rule {
	return rule{
		check:   func() bool { return strings.TrimSpace(value) != "" },
		field:   field,
		message: message,
		code:    CodeRequired,
	}
}

// atLeast rejects NaN along with values below minimum.
func atLeast(field string, value, minimum float64, message string) rule {
	return rule{
		check:   func() bool { return value >= minimum },
		field:   field,
		message: message,
		code:    CodeBelowMinimum,
	}
}

func atLeastInt(field string, value, minimum int, message string) rule {
	return rule{
		check:   func() bool { return value >= minimum },
		field:   field,
		message: message,
		code:    CodeBelowMinimum,
	}
}

func between(field string, value, low, high float64, message string) rule {
	return rule{
		check:   func() bool { return !math.IsNaN(value) && value >= low && value <= high },
		field:   field,
		message: message,
		code:    CodeOutOfRange,
	}
}

func oneOf[T comparable](field string, value T, allowed []T, message string) rule {
	return rule{
		check:   func() bool { return slices.Contains(allowed, value) },
		field:   field,
		message: message,
		code:    CodeNotAllowed,
	}
}
