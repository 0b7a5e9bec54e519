//go:build unit

package commands_test

import (
	"context"
	"testing"

	"clinic-scheduler/internal/domain/doctor"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/pkg/jwt"
	"clinic-scheduler/internal/usecase/commands"
	"clinic-scheduler/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.auth.Register(ctx, commands.RegisterInput{
		Email:    "jane@example.com",
		Password: "password123",
		Name:     "Jane Doe",
	})

	require.NoError(t, err)
	assert.Equal(t, user.RolePatient, res.Role)
	assert.Equal(t, int64(3600), res.ExpiresIn)

	claims, err := jwt.NewService("test-secret", 0).ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.UserID, claims.UserID)
	assert.Equal(t, user.RolePatient.String(), claims.Role)

	err = f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Patients().FindByUserID(ctx, res.UserID)
		if err != nil {
			return err
		}
		assert.Equal(t, "Jane Doe", p.Name())
		assert.Equal(t, "jane@example.com", p.Email().Value())
		return nil
	})
	require.NoError(t, err)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name     string
		in       commands.RegisterInput
		wantErr  error
		wantKind error
	}{
		{
			name:     "email taken",
			in:       commands.RegisterInput{Email: "taken@example.com", Password: "password123", Name: "Someone"},
			wantErr:  user.ErrEmailTaken,
			wantKind: errs.ErrConflict,
		},
		{
			name:     "invalid email",
			in:       commands.RegisterInput{Email: "not-an-email", Password: "password123", Name: "Someone"},
			wantErr:  user.ErrInvalidEmail,
			wantKind: errs.ErrValidation,
		},
		{
			name:     "short password",
			in:       commands.RegisterInput{Email: "new@example.com", Password: "short", Name: "Someone"},
			wantErr:  user.ErrPasswordTooWeak,
			wantKind: errs.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.registerPatient(t, "taken@example.com")

			_, err := f.auth.Register(context.Background(), tt.in)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
			assert.True(t, errs.Is(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestCreateAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.auth.CreateAdmin(ctx, commands.CreateAdminInput{
		Email:    "admin@example.com",
		Password: "password123",
		Name:     "Administrator",
	})
	require.NoError(t, err)

	err = f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Doctors().FindByUserID(ctx, id)
		if err != nil {
			return err
		}
		assert.Equal(t, "Administrator", d.Name())
		assert.Equal(t, doctor.AdministrationSpecialization, d.Specialization())
		return nil
	})
	require.NoError(t, err)

	_, err = f.auth.CreateAdmin(ctx, commands.CreateAdminInput{
		Email:    "admin@example.com",
		Password: "password123",
		Name:     "Second",
	})
	assert.True(t, errs.Is(err, user.ErrEmailTaken))
}
