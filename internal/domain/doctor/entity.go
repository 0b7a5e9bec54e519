package doctor

import (
	"strings"

	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/pkg/patch"

	"github.com/google/uuid"
)

const (
	MaxNameLength = 255

	// AdministrationSpecialization is used for the doctor profile of
	// administrators created from the command line.
	AdministrationSpecialization = "Administration"
)

var (
	ErrEmptyName           = errs.NewKind("doctor name cannot be empty", errs.ErrValidation)
	ErrNameTooLong         = errs.NewKind("doctor name is too long (max 255 characters)", errs.ErrValidation)
	ErrEmptySpecialization = errs.NewKind("specialization cannot be empty", errs.ErrValidation)
	ErrNotFound            = errs.NewKind("doctor not found", errs.ErrNotFound)
)

// Doctor is a provider whose time is split into slots.
type Doctor struct {
	id             int64
	name           string
	specialization string
	contactInfo    *string
	departmentID   *int64
	userID         *uuid.UUID
}

type Params struct {
	Name           string
	Specialization string
	ContactInfo    *string
	DepartmentID   *int64
	UserID         *uuid.UUID
}

func NewDoctor(p Params) (*Doctor, error) {
	name, err := validateName(p.Name)
	if err != nil {
		return nil, err
	}
	spec, err := validateSpecialization(p.Specialization)
	if err != nil {
		return nil, err
	}
	return &Doctor{
		name:           name,
		specialization: spec,
		contactInfo:    p.ContactInfo,
		departmentID:   p.DepartmentID,
		userID:         p.UserID,
	}, nil
}

func Reconstruct(id int64, p Params) *Doctor {
	return &Doctor{
		id:             id,
		name:           p.Name,
		specialization: p.Specialization,
		contactInfo:    p.ContactInfo,
		departmentID:   p.DepartmentID,
		userID:         p.UserID,
	}
}

func (d *Doctor) ID() int64              { return d.id }
func (d *Doctor) Name() string           { return d.name }
func (d *Doctor) Specialization() string { return d.specialization }
func (d *Doctor) ContactInfo() *string   { return d.contactInfo }
func (d *Doctor) DepartmentID() *int64   { return d.departmentID }
func (d *Doctor) UserID() *uuid.UUID     { return d.userID }

type Update struct {
	Name              *string
	Specialization    *string
	ContactInfo       *string
	DepartmentID      *int64
	ClearDepartmentID bool
}

func (d *Doctor) Apply(u Update) error {
	if u.Name != nil {
		n, err := validateName(*u.Name)
		if err != nil {
			return err
		}
		d.name = n
	}
	if u.Specialization != nil {
		s, err := validateSpecialization(*u.Specialization)
		if err != nil {
			return err
		}
		d.specialization = s
	}
	d.contactInfo = patch.CoalescePtr(u.ContactInfo, d.contactInfo, false)
	d.departmentID = patch.CoalescePtr(u.DepartmentID, d.departmentID, u.ClearDepartmentID)
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

func validateSpecialization(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptySpecialization
	}
	return s, nil
}
