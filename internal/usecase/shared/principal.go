package shared

import (
	"clinic-scheduler/internal/domain/user"

	"github.com/google/uuid"
)

// Principal is the authenticated caller, as taken from the access token.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

func (p Principal) IsStaff() bool {
	return p.Role.IsStaff()
}
