//go:build unit

package doctor_test

import (
	"strings"
	"testing"

	"clinic-scheduler/internal/domain/doctor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDoctor(t *testing.T) {
	dept := int64(3)

	t.Run("trims fields", func(t *testing.T) {
		d, err := doctor.NewDoctor(doctor.Params{Name: "  Dr. Grey ", Specialization: " Surgery", DepartmentID: &dept})

		require.NoError(t, err)
		assert.Equal(t, "Dr. Grey", d.Name())
		assert.Equal(t, "Surgery", d.Specialization())
		assert.Equal(t, &dept, d.DepartmentID())
	})

	cases := []struct {
		name   string
		params doctor.Params
		errIs  error
	}{
		{name: "空の名前NG", params: doctor.Params{Name: " ", Specialization: "Surgery"}, errIs: doctor.ErrEmptyName},
		{name: "長すぎる名前NG", params: doctor.Params{Name: strings.Repeat("a", 256), Specialization: "Surgery"}, errIs: doctor.ErrNameTooLong},
		{name: "空の専門NG", params: doctor.Params{Name: "Dr. Grey"}, errIs: doctor.ErrEmptySpecialization},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := doctor.NewDoctor(tc.params)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestDoctor_Apply(t *testing.T) {
	dept := int64(3)
	d := doctor.Reconstruct(1, doctor.Params{Name: "Dr. Grey", Specialization: "Surgery", DepartmentID: &dept})

	name := "Dr. Shepherd"
	require.NoError(t, d.Apply(doctor.Update{Name: &name}))
	assert.Equal(t, "Dr. Shepherd", d.Name())
	assert.Equal(t, &dept, d.DepartmentID())

	require.NoError(t, d.Apply(doctor.Update{ClearDepartmentID: true}))
	assert.Nil(t, d.DepartmentID())

	empty := ""
	assert.ErrorIs(t, d.Apply(doctor.Update{Specialization: &empty}), doctor.ErrEmptySpecialization)
	assert.Equal(t, "Surgery", d.Specialization())
}
