package patient

import (
	"strings"
	"time"

	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/pkg/patch"

	"github.com/google/uuid"
)

const MaxNameLength = 255

var (
	ErrEmptyName    = errs.NewKind("patient name cannot be empty", errs.ErrValidation)
	ErrNameTooLong  = errs.NewKind("patient name is too long (max 255 characters)", errs.ErrValidation)
	ErrNotFound     = errs.NewKind("patient not found", errs.ErrNotFound)
	ErrEmailTaken   = errs.NewKind("patient email already exists", errs.ErrConflict)
	ErrNoProfile    = errs.NewKind("no patient profile for this user", errs.ErrNotFound)
	ErrAccessDenied = errs.NewKind("patient profile belongs to someone else", errs.ErrForbidden)
)

type Patient struct {
	id        int64
	name      string
	phone     *string
	email     user.Email
	userID    *uuid.UUID
	createdAt time.Time
}

func NewPatient(name string, phone *string, email string, userID *uuid.UUID, now time.Time) (*Patient, error) {
	n, err := validateName(name)
	if err != nil {
		return nil, err
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return &Patient{
		name:      n,
		phone:     phone,
		email:     e,
		userID:    userID,
		createdAt: now,
	}, nil
}

func Reconstruct(id int64, name string, phone *string, email string, userID *uuid.UUID, createdAt time.Time) *Patient {
	e, _ := user.NewEmail(email)
	return &Patient{
		id:        id,
		name:      name,
		phone:     phone,
		email:     e,
		userID:    userID,
		createdAt: createdAt,
	}
}

func (p *Patient) ID() int64            { return p.id }
func (p *Patient) Name() string         { return p.name }
func (p *Patient) Phone() *string       { return p.phone }
func (p *Patient) Email() user.Email    { return p.email }
func (p *Patient) UserID() *uuid.UUID   { return p.userID }
func (p *Patient) CreatedAt() time.Time { return p.createdAt }

// OwnedBy reports whether the profile belongs to the given account.
func (p *Patient) OwnedBy(userID uuid.UUID) bool {
	return p.userID != nil && *p.userID == userID
}

type Update struct {
	Name  *string
	Phone *string
	Email *string
}

func (p *Patient) Apply(u Update) error {
	if u.Name != nil {
		n, err := validateName(*u.Name)
		if err != nil {
			return err
		}
		p.name = n
	}
	if u.Email != nil {
		e, err := user.NewEmail(*u.Email)
		if err != nil {
			return err
		}
		p.email = e
	}
	p.phone = patch.CoalescePtr(u.Phone, p.phone, false)
	return nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
