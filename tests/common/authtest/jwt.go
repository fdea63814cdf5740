//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hof-drops/internal/domain/staff"
	"hof-drops/internal/pkg/config"
	"hof-drops/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints back-office tokens signed with the app's secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, staffID uuid.UUID, role staff.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) AdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), staff.RoleAdmin)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, role staff.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(uuid.New(), role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
