package para

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDueToday(t *testing.T) {
	svc := newTestService(t)
	yesterday := testDate(t, "14-06-2025")
	today := testDate(t, "15-06-2025") // a Sunday

	_, err := svc.AddToMain("water plants (daily)", "HOME", yesterday)
	require.NoError(t, err)
	_, err = svc.AddToMain("weekly review (weekly)", "WORK", yesterday)
	require.NoError(t, err)
	_, err = svc.AddToMain("weekday standup (weekdays)", "WORK", yesterday)
	require.NoError(t, err)
	_, err = svc.AddToMain("not recurring", "WORK", yesterday)
	require.NoError(t, err)

	due, err := svc.DueToday(today)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "water plants", due[0].Task.Text)
	assert.Equal(t, "HOME", due[0].Path)
	assert.Equal(t, "weekly review", due[1].Task.Text)
}

func TestStale_OrderingAndLimit(t *testing.T) {
	svc := newTestService(t)
	today := testDate(t, "15-06-2025")

	_, err := svc.AddToMain("fresh", "TASKS", testDate(t, "14-06-2025"))
	require.NoError(t, err)
	_, err = svc.AddToMain("ancient", "TASKS", testDate(t, "01-05-2025"))
	require.NoError(t, err)
	_, err = svc.AddToMain("middling", "TASKS", testDate(t, "01-06-2025"))
	require.NoError(t, err)

	stale, err := svc.Stale("", 0, today)
	require.NoError(t, err)
	require.Len(t, stale, 3)
	assert.Equal(t, "ancient", stale[0].Task.Text)
	assert.Equal(t, "middling", stale[1].Task.Text)
	assert.Equal(t, "fresh", stale[2].Task.Text)
	assert.Equal(t, 45, stale[0].DaysOld)

	limited, err := svc.Stale("", 2, today)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "ancient", limited[0].Task.Text)
}

func TestStale_Exclusions(t *testing.T) {
	svc := newTestService(t)
	today := testDate(t, "15-06-2025")
	old := testDate(t, "01-06-2025")

	recurring, err := svc.AddToMain("water plants (daily)", "HOME", old)
	require.NoError(t, err)
	_ = recurring

	completed, err := svc.AddToMain("shipped it", "HOME", old)
	require.NoError(t, err)
	_, err = svc.Complete(completed.ID, old)
	require.NoError(t, err)

	snoozed, err := svc.AddToMain("later", "HOME", old)
	require.NoError(t, err)
	_, err = svc.Snooze(snoozed.ID, "20-06-2025", today)
	require.NoError(t, err)

	_, err = svc.AddToMain("actually stale", "HOME", old)
	require.NoError(t, err)

	stale, err := svc.Stale("", 0, today)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, "actually stale", stale[0].Task.Text)
}

func TestStale_Scope(t *testing.T) {
	svc := newTestService(t)
	today := testDate(t, "15-06-2025")
	old := testDate(t, "01-06-2025")

	_, err := svc.AddToMain("report", "WORK", old)
	require.NoError(t, err)
	_, err = svc.AddToMain("expenses", "WORK:admin", old)
	require.NoError(t, err)
	_, err = svc.AddToMain("gutters", "HOME", old)
	require.NoError(t, err)

	work, err := svc.Stale("WORK", 0, today)
	require.NoError(t, err)
	assert.Len(t, work, 2, "a bare section scope covers its subsections")

	admin, err := svc.Stale("WORK:admin", 0, today)
	require.NoError(t, err)
	require.Len(t, admin, 1)
	assert.Equal(t, "expenses", admin[0].Task.Text)

	glob, err := svc.Stale("W*", 0, today)
	require.NoError(t, err)
	assert.Len(t, glob, 2)

	lower, err := svc.Stale("work", 0, today)
	require.NoError(t, err)
	assert.Len(t, lower, 2, "scope matching is case-insensitive")
}

func TestSections(t *testing.T) {
	svc := newTestService(t)
	today := testDate(t, "15-06-2025")

	tk, err := svc.AddToMain("done thing", "WORK", today)
	require.NoError(t, err)
	_, err = svc.Complete(tk.ID, today)
	require.NoError(t, err)
	_, err = svc.AddToMain("open thing", "WORK", today)
	require.NoError(t, err)
	_, err = svc.AddToMain("sub thing", "WORK:admin", today)
	require.NoError(t, err)

	infos, err := svc.Sections()
	require.NoError(t, err)
	require.Len(t, infos, 2)

	assert.Equal(t, "WORK", infos[0].Path)
	assert.Equal(t, 1, infos[0].Open)
	assert.Equal(t, 1, infos[0].Done)

	assert.Equal(t, "WORK:admin", infos[1].Path)
	assert.Equal(t, 1, infos[1].Open)
}
