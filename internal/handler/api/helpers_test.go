//go:build unit

package api_test

import (
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for the auth middleware: a request carrying an
// Authorization header is treated as signed in as the given principal.
func fakeAuth(p *shared.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", p.UserID)
			c.Set("user_role", p.Role)
		}
		c.Next()
	}
}

func newPrincipal(role user.Role) *shared.Principal {
	return &shared.Principal{UserID: uuid.New(), Role: role}
}
