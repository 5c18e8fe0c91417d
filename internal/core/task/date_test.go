package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("15-06-2025")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.June, Day: 15}, d)
	assert.Equal(t, "15-06-2025", d.String())
}

func TestParseDate_Invalid(t *testing.T) {
	cases := []string{
		"",
		"2025-06-15",  // ISO order
		"15/06/2025",  // wrong separator
		"31-02-2025",  // out of range for February
		"1-6-2025",   // not zero padded
		"aa-bb-cccc",
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			_, err := ParseDate(c)
			assert.Error(t, err)
		})
	}
}

func TestDate_Zero(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
}

func TestDate_AddDays(t *testing.T) {
	d := Date{Year: 2025, Month: time.January, Day: 30}
	assert.Equal(t, Date{Year: 2025, Month: time.February, Day: 1}, d.AddDays(2))
	assert.Equal(t, Date{Year: 2025, Month: time.January, Day: 29}, d.AddDays(-1))
}

func TestDate_DaysSince(t *testing.T) {
	a := Date{Year: 2025, Month: time.January, Day: 1}
	b := Date{Year: 2025, Month: time.January, Day: 4}
	assert.Equal(t, 3, b.DaysSince(a))
	assert.Equal(t, -3, a.DaysSince(b))
	assert.Equal(t, 0, a.DaysSince(a))
}

func TestDate_Weekday(t *testing.T) {
	// 01-01-2025 was a Wednesday.
	d := Date{Year: 2025, Month: time.January, Day: 1}
	assert.Equal(t, time.Wednesday, d.Weekday())
	assert.Equal(t, time.Saturday, d.AddDays(3).Weekday())
}

func TestDate_Ordering(t *testing.T) {
	a := Date{Year: 2024, Month: time.December, Day: 31}
	b := Date{Year: 2025, Month: time.January, Day: 1}
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
}
