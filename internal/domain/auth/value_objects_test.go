//go:build unit

package auth_test

import (
	"testing"

	"clinic-scheduler/internal/domain/auth"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid", email: "  Jane@Example.COM ", password: "password123"},
		{name: "bad email", email: "jane", password: "password123", wantErr: user.ErrInvalidEmail},
		{name: "short password", email: "jane@example.com", password: "short", wantErr: user.ErrPasswordTooWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := auth.NewCredentials(tt.email, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jane@example.com", c.Email().Value())
		})
	}
}

func TestCredentials_HashAndMatch(t *testing.T) {
	c, err := auth.NewCredentials("jane@example.com", "password123")
	require.NoError(t, err)

	hash, err := c.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, c.Matches(hash))

	other, err := auth.NewCredentials("jane@example.com", "password124")
	require.NoError(t, err)
	assert.False(t, other.Matches(hash))
	assert.False(t, c.Matches(""))
}
