//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/calendar"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func month(t *testing.T, label string) availability.Month {
	t.Helper()
	m, err := availability.ParseMonth(label, time.UTC)
	require.NoError(t, err)
	return m
}

func slotAt(provider int64, y int, mo time.Month, d, h, mi int) availability.Slot {
	return availability.NewSlot(provider, time.Date(y, mo, d, h, mi, 0, 0, time.UTC), 30*time.Minute, 5000)
}

func TestGridStart(t *testing.T) {
	cases := []struct {
		month string
		want  string
	}{
		{month: "2024-03", want: "2024-02-25"}, // 1st is a Friday
		{month: "2024-09", want: "2024-09-01"}, // 1st is a Sunday
		{month: "2024-06", want: "2024-05-26"}, // 1st is a Saturday
	}
	for _, tc := range cases {
		t.Run(tc.month, func(t *testing.T) {
			got := calendar.GridStart(month(t, tc.month))
			assert.Equal(t, tc.want, got.Format("2006-01-02"))
			assert.Equal(t, time.Sunday, got.Weekday())
		})
	}
}

func TestBuildGrid(t *testing.T) {
	t.Run("empty collection yields 42 empty days", func(t *testing.T) {
		m := month(t, "2024-03")

		days := calendar.BuildGrid(m, 1, nil)

		require.Len(t, days, calendar.GridDays)
		current := 0
		for i, d := range days {
			assert.Empty(t, d.Slots)
			assert.Equal(t, d.Date.Month() == time.March, d.IsCurrentMonth, d.DateLabel())
			if i > 0 {
				assert.Equal(t, days[i-1].Date.AddDate(0, 0, 1), d.Date)
			}
			if d.IsCurrentMonth {
				current++
			}
		}
		assert.Equal(t, 31, current)
		assert.Equal(t, "2024-02-25", days[0].DateLabel())
		assert.Equal(t, "2024-04-06", days[41].DateLabel())
		assert.Equal(t, "25", days[0].DateNum())
		assert.Equal(t, "01", days[5].DateNum())
	})

	t.Run("slots are bucketed per date in start order", func(t *testing.T) {
		m := month(t, "2024-03")
		slots := []availability.Slot{
			slotAt(1, 2024, time.March, 4, 10, 0).WithID(3),
			slotAt(1, 2024, time.March, 4, 9, 0).WithID(4),
			slotAt(1, 2024, time.February, 26, 9, 0).WithID(5),
			slotAt(1, 2024, time.April, 6, 9, 0).WithID(6),
			slotAt(1, 2024, time.April, 7, 9, 0).WithID(7), // outside grid
			slotAt(2, 2024, time.March, 4, 9, 0).WithID(8), // other provider
		}

		days := calendar.BuildGrid(m, 1, slots)

		ids := map[string][]int64{}
		for _, d := range days {
			for _, s := range d.Slots {
				ids[d.DateLabel()] = append(ids[d.DateLabel()], s.ID())
			}
		}
		want := map[string][]int64{
			"2024-03-04": {4, 3},
			"2024-02-26": {5},
			"2024-04-06": {6},
		}
		if diff := cmp.Diff(want, ids); diff != "" {
			t.Errorf("bucketed ids mismatch (-want +got):\n%s", diff)
		}
		assert.False(t, days[1].IsCurrentMonth)
	})

	t.Run("slots are bucketed by local date of the month location", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		m, err := availability.ParseMonth("2024-03", tokyo)
		require.NoError(t, err)
		// 2024-03-04 20:00 UTC is 2024-03-05 05:00 in Tokyo
		s := slotAt(1, 2024, time.March, 4, 20, 0).WithID(1)

		days := calendar.BuildGrid(m, 1, []availability.Slot{s})

		for _, d := range days {
			if d.DateLabel() == "2024-03-05" {
				require.Len(t, d.Slots, 1)
				assert.Equal(t, "05:00", d.Slots[0].Start().Format("15:04"))
				return
			}
		}
		t.Fatal("2024-03-05 not in grid")
	})
}
