package department

import (
	"strings"

	"clinic-scheduler/internal/pkg/errs"
)

const MaxNameLength = 255

var (
	ErrEmptyName       = errs.NewKind("department name cannot be empty", errs.ErrValidation)
	ErrNameTooLong     = errs.NewKind("department name is too long (max 255 characters)", errs.ErrValidation)
	ErrNotFound        = errs.NewKind("department not found", errs.ErrNotFound)
	ErrNameTaken       = errs.NewKind("department name already exists", errs.ErrConflict)
	ErrStillReferenced = errs.NewKind("department still has doctors", errs.ErrConflict)
)

type Department struct {
	id          int64
	name        string
	description *string
}

func NewDepartment(name string, description *string) (*Department, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	return &Department{name: name, description: trimOptional(description)}, nil
}

func Reconstruct(id int64, name string, description *string) *Department {
	return &Department{id: id, name: name, description: description}
}

func (d *Department) ID() int64            { return d.id }
func (d *Department) Name() string         { return d.name }
func (d *Department) Description() *string { return d.description }

// Update applies a partial update; nil leaves the field unchanged.
func (d *Department) Update(name *string, description *string) error {
	if name != nil {
		n, err := validateName(*name)
		if err != nil {
			return err
		}
		d.name = n
	}
	if description != nil {
		d.description = trimOptional(description)
	}
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

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
