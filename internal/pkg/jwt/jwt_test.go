//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, user.RoleDoctor)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "DOCTOR", claims.Role)
	assert.Equal(t, jwt.Issuer, claims.Issuer)
}

func TestValidateToken_Rejects(t *testing.T) {
	id := uuid.New()
	svc := jwt.NewService("secret", time.Hour)

	sign := func(t *testing.T, method gojwt.SigningMethod, key any, claims jwt.Claims) string {
		t.Helper()
		s, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := func() jwt.Claims {
		now := time.Now()
		return jwt.Claims{
			UserID: id,
			Role:   "PATIENT",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    jwt.Issuer,
				Subject:   id.String(),
				IssuedAt:  gojwt.NewNumericDate(now),
				ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
	}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "expired",
			token: func(t *testing.T) string {
				past := time.Now().Add(-2 * time.Hour)
				tok, err := svc.WithNow(func() time.Time { return past }).GenerateToken(id, user.RolePatient)
				require.NoError(t, err)
				return tok
			},
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, gojwt.SigningMethodHS256, []byte("other"), valid())
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "other hmac algorithm",
			token: func(t *testing.T) string {
				return sign(t, gojwt.SigningMethodHS512, []byte("secret"), valid())
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "foreign issuer",
			token: func(t *testing.T) string {
				c := valid()
				c.Issuer = "someone-else"
				return sign(t, gojwt.SigningMethodHS256, []byte("secret"), c)
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				c := valid()
				c.ExpiresAt = nil
				return sign(t, gojwt.SigningMethodHS256, []byte("secret"), c)
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "subject mismatch",
			token: func(t *testing.T) string {
				c := valid()
				c.Subject = uuid.NewString()
				return sign(t, gojwt.SigningMethodHS256, []byte("secret"), c)
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not.a.token" },
			wantErr: jwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token(t))

			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
			assert.True(t, errs.Is(err, errs.ErrUnauthorized))
		})
	}
}
