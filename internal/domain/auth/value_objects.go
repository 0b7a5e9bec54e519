// Package auth holds the login and sign-up inputs before an account exists
// or is loaded.
package auth

import (
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/pkg/password"
)

// Credentials is a validated email and password pair.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	pw, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: email, password: pw}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

// Hash returns the bcrypt hash stored for a new account.
func (c Credentials) Hash() (string, error) {
	hash, err := password.HashPassword(c.password.Value())
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return hash, nil
}

// Matches reports whether the password belongs to hash.
func (c Credentials) Matches(hash string) bool {
	return password.ComparePassword(hash, c.password.Value()) == nil
}
