package model

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownKind     = errors.New("unknown device kind")
)

const (
	CodeRequired     = "required"
	CodeOutOfRange   = "out_of_range"
	CodeBelowMinimum = "below_minimum"
	CodeNotAllowed   = "not_allowed"
)

type ValidationError struct {
	Field   string
	Message string
	Code    string
}

func (v ValidationError) Error() string {
	return v.Field + ": " + v.Message
}

// ValidationErrors collects every field that failed its check during construction.
// It always matches ErrInvalidArgument under errors.Is.
type ValidationErrors struct {
	Errors []ValidationError
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}

	return v.Errors[0].Message
}

func (v *ValidationErrors) Is(target error) bool {
	return target == ErrInvalidArgument
}

func (v *ValidationErrors) Add(field, message, code string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
		Code:    code,
	})
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

func (v *ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		fields = append(fields, e.Field)
	}

	return fields
}

// Err returns nil when nothing was collected.
func (v *ValidationErrors) Err() error {
	if !v.HasErrors() {
		return nil
	}

	return v
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]ValidationError, 0),
	}
}
