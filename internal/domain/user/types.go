package user

import "strings"

type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
	RoleAdmin   Role = "ADMIN"
)

var roleRank = map[Role]int{
	RolePatient: 1,
	RoleDoctor:  2,
	RoleAdmin:   3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast compares roles along PATIENT < DOCTOR < ADMIN.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && roleRank[r] >= roleRank[min]
}

// IsStaff is true for doctors and admins.
func (r Role) IsStaff() bool {
	return r.AtLeast(RoleDoctor)
}

// NewRole accepts any letter case.
func NewRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func Roles() []Role {
	return []Role{RolePatient, RoleDoctor, RoleAdmin}
}
