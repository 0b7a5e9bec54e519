//go:build unit

package availability_test

import (
	"slices"
	"testing"
	"time"

	"clinic-scheduler/internal/domain/availability"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTemplate(t *testing.T, weekdays []int, start, end string, minutes int) availability.Template {
	t.Helper()
	tmpl, err := availability.NewTemplate(weekdays, start, end, minutes)
	require.NoError(t, err)
	return tmpl
}

func startsOf(slots []availability.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start().Format("2006-01-02 15:04")
	}
	return out
}

func TestGenerator_Day(t *testing.T) {
	day := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	gen := availability.NewGenerator(5000)

	t.Run("full working day yields 16 half-hour slots", func(t *testing.T) {
		tmpl := mustTemplate(t, []int{0}, "09:00", "17:00", 30)

		slots := slices.Collect(gen.Day(day, tmpl, 1))

		require.Len(t, slots, 16)
		assert.Equal(t, time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), slots[0].Start())
		assert.Equal(t, time.Date(2024, 3, 4, 16, 30, 0, 0, time.UTC), slots[15].Start())
		assert.Equal(t, time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC), slots[15].End())
		for _, s := range slots {
			assert.True(t, s.Start().Before(time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC)))
			assert.Equal(t, 30*time.Minute, s.Duration())
			assert.Equal(t, int64(1), s.ProviderID())
			assert.Equal(t, 5000, s.PriceCents())
			assert.False(t, s.IsBooked())
			assert.Equal(t, "2024-03", s.CalendarMonth())
			assert.Zero(t, s.ID())
		}
	})

	t.Run("slot overrunning the window is not emitted", func(t *testing.T) {
		tmpl := mustTemplate(t, []int{0}, "09:00", "09:50", 30)

		slots := slices.Collect(gen.Day(day, tmpl, 1))

		require.Len(t, slots, 1)
		assert.Equal(t, "2024-03-04 09:00", slots[0].Start().Format("2006-01-02 15:04"))
		assert.Equal(t, "09:30", slots[0].End().Format("15:04"))
	})

	t.Run("slot ending exactly at end_time is emitted", func(t *testing.T) {
		tmpl := mustTemplate(t, []int{0}, "09:00", "10:00", 30)

		slots := slices.Collect(gen.Day(day, tmpl, 1))

		if diff := cmp.Diff([]string{"2024-03-04 09:00", "2024-03-04 09:30"}, startsOf(slots)); diff != "" {
			t.Errorf("starts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("clock fields of the day argument are ignored", func(t *testing.T) {
		tmpl := mustTemplate(t, []int{0}, "09:00", "10:00", 60)
		noon := time.Date(2024, 3, 4, 12, 34, 0, 0, time.UTC)

		slots := slices.Collect(gen.Day(noon, tmpl, 1))

		require.Len(t, slots, 1)
		assert.Equal(t, "09:00", slots[0].Start().Format("15:04"))
	})

	t.Run("sequence is restartable and supports early stop", func(t *testing.T) {
		tmpl := mustTemplate(t, []int{0}, "09:00", "17:00", 30)
		seq := gen.Day(day, tmpl, 1)

		first := slices.Collect(seq)
		second := slices.Collect(seq)
		assert.Equal(t, startsOf(first), startsOf(second))

		n := 0
		for range seq {
			n++
			if n == 3 {
				break
			}
		}
		assert.Equal(t, 3, n)
	})

	t.Run("zero template yields nothing", func(t *testing.T) {
		assert.Empty(t, slices.Collect(gen.Day(day, availability.Template{}, 1)))
	})
}

func TestGenerator_Month(t *testing.T) {
	gen := availability.NewGenerator(5000)
	march := mustMonth(t, "2024-03")

	t.Run("only templated weekdays receive slots", func(t *testing.T) {
		tmpl := mustTemplate(t, []int{int(availability.Monday), int(availability.Wednesday)}, "09:00", "10:00", 60)

		slots := slices.Collect(gen.Month(march, tmpl, 7))

		// March 2024: Mondays 4,11,18,25 and Wednesdays 6,13,20,27
		require.Len(t, slots, 8)
		for _, s := range slots {
			wd := s.Start().Weekday()
			assert.Contains(t, []time.Weekday{time.Monday, time.Wednesday}, wd, "unexpected weekday %s", s.Start())
			assert.Equal(t, time.March, s.Start().Month())
		}
		assert.Equal(t, 4, slots[0].Start().Day())
		assert.Equal(t, 27, slots[len(slots)-1].Start().Day())
	})

	t.Run("weekend template on a month starting on Saturday", func(t *testing.T) {
		june := mustMonth(t, "2024-06")
		tmpl := mustTemplate(t, []int{int(availability.Saturday), int(availability.Sunday)}, "10:00", "11:00", 60)

		slots := slices.Collect(gen.Month(june, tmpl, 1))

		require.Len(t, slots, 10)
		assert.Equal(t, "2024-06-01 10:00", slots[0].Start().Format("2006-01-02 15:04"))
		assert.Equal(t, "2024-06-30 10:00", slots[len(slots)-1].Start().Format("2006-01-02 15:04"))
	})

	t.Run("starts are strictly increasing", func(t *testing.T) {
		slots := slices.Collect(gen.Month(march, availability.DefaultTemplate(), 1))

		require.Len(t, slots, 21*16)
		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].Start().Before(slots[i].Start()))
		}
	})
}
