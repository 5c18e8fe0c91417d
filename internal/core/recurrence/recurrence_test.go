package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/paratrooper/internal/core/task"
)

func date(t *testing.T, s string) task.Date {
	t.Helper()
	d, err := task.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestParse(t *testing.T) {
	t.Run("daily", func(t *testing.T) {
		r, err := Parse("daily")
		require.NoError(t, err)
		assert.Equal(t, KindDaily, r.Kind)
	})

	t.Run("weekdays", func(t *testing.T) {
		r, err := Parse("weekdays")
		require.NoError(t, err)
		assert.Equal(t, KindWeekdays, r.Kind)
	})

	t.Run("weekly defaults to sunday", func(t *testing.T) {
		r, err := Parse("weekly")
		require.NoError(t, err)
		assert.Equal(t, KindWeekly, r.Kind)
		assert.True(t, r.Weekdays[time.Sunday])
		assert.Len(t, r.Weekdays, 1)
	})

	t.Run("weekly with days", func(t *testing.T) {
		r, err := Parse("weekly:mon, wed,fri")
		require.NoError(t, err)
		assert.True(t, r.Weekdays[time.Monday])
		assert.True(t, r.Weekdays[time.Wednesday])
		assert.True(t, r.Weekdays[time.Friday])
		assert.Len(t, r.Weekdays, 3)
	})

	t.Run("monthly defaults to the 1st", func(t *testing.T) {
		r, err := Parse("monthly")
		require.NoError(t, err)
		assert.Equal(t, 1, r.MonthDay)
	})

	t.Run("monthly with ordinal suffix", func(t *testing.T) {
		for spec, day := range map[string]int{
			"monthly:1st":  1,
			"monthly:2nd":  2,
			"monthly:3rd":  3,
			"monthly:15th": 15,
			"monthly:31":   31,
		} {
			r, err := Parse(spec)
			require.NoError(t, err, spec)
			assert.Equal(t, day, r.MonthDay, spec)
		}
	})

	t.Run("interval sums parts", func(t *testing.T) {
		r, err := Parse("recur:3d")
		require.NoError(t, err)
		assert.Equal(t, 3, r.Days)

		r, err = Parse("recur:1w,2d")
		require.NoError(t, err)
		assert.Equal(t, 9, r.Days)

		r, err = Parse("recur:1m,1y")
		require.NoError(t, err)
		assert.Equal(t, 395, r.Days)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, spec := range []string{
			"", "hourly", "weekly:funday", "monthly:0", "monthly:32",
			"recur:", "recur:d", "recur:0d", "recur:3x", "recur:-1d",
		} {
			_, err := Parse(spec)
			assert.Error(t, err, spec)
		}
	})
}

func TestRule_DueOn(t *testing.T) {
	// 06-01-2025 is a Monday.
	mon := date(t, "06-01-2025")
	sat := date(t, "04-01-2025")
	sun := date(t, "05-01-2025")

	cases := []struct {
		name  string
		rule  string
		last  task.Date
		today task.Date
		want  bool
	}{
		{"daily fires every day", "daily", mon, mon, true},
		{"weekdays on monday", "weekdays", sat, mon, true},
		{"weekdays not on saturday", "weekdays", mon, sat, false},
		{"weekdays not on sunday", "weekdays", mon, sun, false},
		{"weekly default on sunday", "weekly", mon, sun, true},
		{"weekly default not on monday", "weekly", sun, mon, false},
		{"weekly:mon on monday", "weekly:mon", sun, mon, true},
		{"weekly:sat,sun on saturday", "weekly:sat,sun", mon, sat, true},
		{"monthly on its day", "monthly:6", mon, mon, true},
		{"monthly off its day", "monthly:7", mon, mon, false},
		{"interval elapsed", "recur:3d", date(t, "01-01-2025"), date(t, "04-01-2025"), true},
		{"interval overdue", "recur:3d", date(t, "01-01-2025"), date(t, "06-01-2025"), true},
		{"interval not yet", "recur:3d", date(t, "01-01-2025"), date(t, "03-01-2025"), false},
		{"interval with no last date is due now", "recur:3d", task.Date{}, mon, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsDue(c.rule, c.last, c.today))
		})
	}
}

func TestIsDue_UnparseableRule(t *testing.T) {
	today := date(t, "06-01-2025")
	assert.False(t, IsDue("fortnightly", today, today))
	assert.False(t, IsDue("", today, today))
}

func TestRule_NextAfter(t *testing.T) {
	t.Run("daily", func(t *testing.T) {
		next, ok := Next("daily", date(t, "01-01-2025"))
		require.True(t, ok)
		assert.Equal(t, date(t, "02-01-2025"), next)
	})

	t.Run("weekdays skip the weekend", func(t *testing.T) {
		// 03-01-2025 is a Friday.
		next, ok := Next("weekdays", date(t, "03-01-2025"))
		require.True(t, ok)
		assert.Equal(t, date(t, "06-01-2025"), next)
	})

	t.Run("weekly scans to the named day", func(t *testing.T) {
		next, ok := Next("weekly:fri", date(t, "06-01-2025"))
		require.True(t, ok)
		assert.Equal(t, date(t, "10-01-2025"), next)
	})

	t.Run("monthly clamps to short months", func(t *testing.T) {
		next, ok := Next("monthly:31", date(t, "31-01-2025"))
		require.True(t, ok)
		assert.Equal(t, date(t, "28-02-2025"), next)
	})

	t.Run("monthly wraps the year", func(t *testing.T) {
		next, ok := Next("monthly:15", date(t, "15-12-2024"))
		require.True(t, ok)
		assert.Equal(t, date(t, "15-01-2025"), next)
	})

	t.Run("interval", func(t *testing.T) {
		next, ok := Next("recur:2w", date(t, "01-01-2025"))
		require.True(t, ok)
		assert.Equal(t, date(t, "15-01-2025"), next)
	})

	t.Run("no last date", func(t *testing.T) {
		_, ok := Next("daily", task.Date{})
		assert.False(t, ok)
	})

	t.Run("unparseable rule", func(t *testing.T) {
		_, ok := Next("sometimes", date(t, "01-01-2025"))
		assert.False(t, ok)
	})
}
