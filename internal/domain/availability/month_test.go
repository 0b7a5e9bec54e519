//go:build unit

package availability_test

import (
	"slices"
	"testing"
	"time"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMonth(t *testing.T, label string) availability.Month {
	t.Helper()
	m, err := availability.ParseMonth(label, time.UTC)
	require.NoError(t, err)
	return m
}

func TestParseMonth(t *testing.T) {
	m := mustMonth(t, "2024-02")
	assert.Equal(t, 2024, m.Year())
	assert.Equal(t, time.February, m.Month())
	assert.Equal(t, "2024-02", m.Label())
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), m.FirstDay())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), m.End())

	for _, bad := range []string{"", "2024", "2024-13", "2024-3", "2024-03-01", "March"} {
		_, err := availability.ParseMonth(bad, time.UTC)
		assert.ErrorIs(t, err, availability.ErrInvalidMonth, bad)
		assert.ErrorIs(t, err, errs.ErrValidation, bad)
	}
}

func TestMonth_Navigation(t *testing.T) {
	jan := mustMonth(t, "2024-01")

	assert.Equal(t, "2024-07", jan.AddMonths(6).Label())
	assert.Equal(t, "2023-12", jan.AddMonths(-1).Label())
	assert.Equal(t, "2025-01", mustMonth(t, "2024-12").AddMonths(1).Label())
	assert.True(t, jan.Before(jan.AddMonths(1)))
	assert.True(t, jan.AddMonths(1).After(jan))
	assert.Equal(t, 0, jan.Compare(mustMonth(t, "2024-01")))
}

func TestMonth_Days(t *testing.T) {
	days := slices.Collect(mustMonth(t, "2024-02").Days())

	require.Len(t, days, 29)
	assert.Equal(t, 1, days[0].Day())
	assert.Equal(t, 29, days[28].Day())
	assert.Len(t, slices.Collect(mustMonth(t, "2023-02").Days()), 28)
}

func TestMonth_Contains(t *testing.T) {
	m := mustMonth(t, "2024-03")

	assert.True(t, m.Contains(time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestHorizon_Check(t *testing.T) {
	h := availability.NewHorizon(availability.DefaultHorizonMonths)
	today := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		month   string
		wantErr bool
	}{
		{month: "2023-12", wantErr: false},
		{month: "2024-01", wantErr: false},
		{month: "2024-06", wantErr: false},
		{month: "2024-07", wantErr: false},
		{month: "2024-08", wantErr: true},
		{month: "2025-01", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.month, func(t *testing.T) {
			err := h.Check(mustMonth(t, tc.month), today)
			if tc.wantErr {
				assert.ErrorIs(t, err, availability.ErrHorizonExceeded)
				assert.ErrorIs(t, err, errs.ErrUnprocessable)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.Equal(t, "2024-07", h.LastMonth(today).Label())
}
