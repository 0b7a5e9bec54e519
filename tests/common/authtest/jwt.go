//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/config"
	"clinic-scheduler/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens with the secret the app under test verifies.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(t *testing.T, cfg config.JWTConfig) *JWTHelper {
	t.Helper()
	d, err := cfg.TokenDuration()
	require.NoError(t, err)
	return &JWTHelper{service: jwt.NewService(cfg.Secret, d)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose lifetime ended a minute ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	past := time.Now().Add(-h.service.TokenDuration() - time.Minute)
	token, err := h.service.WithNow(func() time.Time { return past }).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
