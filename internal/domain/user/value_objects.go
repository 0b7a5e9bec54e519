package user

import (
	"regexp"
	"strings"

	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/pkg/password"
)

var (
	ErrInvalidEmail    = errs.NewKind("invalid email format", errs.ErrValidation)
	ErrInvalidRole     = errs.NewKind("invalid role", errs.ErrValidation)
	ErrPasswordTooWeak = errs.NewKind("password must be between 8 and 72 bytes long", errs.ErrValidation)
	ErrUserNotFound    = errs.NewKind("user not found", errs.ErrNotFound)
	ErrEmailTaken      = errs.NewKind("email already registered", errs.ErrConflict)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail trims and lower-cases the address.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if err := password.Validate(s); err != nil {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
