package availability

import (
	"clinic-scheduler/internal/pkg/errs"
)

var (
	ErrInvalidTemplate   = errs.NewKind("invalid availability template", errs.ErrValidation)
	ErrInvalidMonth      = errs.NewKind("invalid month, expected YYYY-MM", errs.ErrValidation)
	ErrHorizonExceeded   = errs.NewKind("month is beyond the scheduling horizon", errs.ErrUnprocessable)
	ErrSlotNotFound      = errs.NewKind("slot not found", errs.ErrNotFound)
	ErrTemplateNotFound  = errs.NewKind("availability template not found", errs.ErrNotFound)
	ErrSlotAlreadyBooked = errs.NewKind("slot already booked", errs.ErrConflict)
	ErrDuplicateSlot     = errs.NewKind("duplicate slot", errs.ErrInvariantViolation)
)

// ValidationError names the template field that was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid availability template: " + e.Field + " " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidTemplate || target == errs.ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
