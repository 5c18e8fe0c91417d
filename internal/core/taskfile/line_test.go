package taskfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/paratrooper/internal/core/task"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		line    string
		kind    lineKind
		payload string
	}{
		{"", lineBlank, ""},
		{"   ", lineBlank, ""},
		{"# DAILY", lineHeader1, "DAILY"},
		{"## WORK", lineHeader2, "WORK"},
		{"### errands", lineHeader3, "errands"},
		{"- [ ] buy milk", lineTask, "- [ ] buy milk"},
		{"- [x] done thing | #001", lineTask, "- [x] done thing | #001"},
		{"  - [~] indented | #002", lineTask, "- [~] indented | #002"},
		{"random prose", lineOther, "random prose"},
		{"#missing space", lineOther, "#missing space"},
		{"- not a task", lineOther, "- not a task"},
	}
	for _, c := range cases {
		t.Run(c.line, func(t *testing.T) {
			kind, payload := classify(c.line)
			assert.Equal(t, c.kind, kind)
			assert.Equal(t, c.payload, payload)
		})
	}
}

func TestParseTaskLine(t *testing.T) {
	tk, ok := parseTaskLine("- [ ] water plants | @15-06-2025 (daily) snooze:20-06-2025 due:30-06-2025 from:HOME #042")
	require.True(t, ok)

	assert.Equal(t, "water plants", tk.Text)
	assert.Equal(t, task.StatusIncomplete, tk.Status)
	assert.Equal(t, "042", tk.ID)
	assert.Equal(t, "15-06-2025", tk.Date.String())
	assert.Equal(t, "daily", tk.Recurrence)
	assert.Equal(t, "20-06-2025", tk.Snooze.String())
	assert.Equal(t, "30-06-2025", tk.Due.String())
	assert.Equal(t, "HOME", tk.SourceSection)
}

func TestParseTaskLine_TokenOrderIrrelevant(t *testing.T) {
	a, ok := parseTaskLine("- [x] pay rent | #007 (monthly:1st) @01-06-2025")
	require.True(t, ok)
	b, ok := parseTaskLine("- [x] pay rent | @01-06-2025 (monthly:1st) #007")
	require.True(t, ok)
	assert.Equal(t, a, b)
}

func TestParseTaskLine_Minimal(t *testing.T) {
	tk, ok := parseTaskLine("- [~] just text")
	require.True(t, ok)
	assert.Equal(t, "just text", tk.Text)
	assert.Equal(t, task.StatusInProgress, tk.Status)
	assert.Empty(t, tk.ID)
	assert.True(t, tk.Date.IsZero())
}

func TestParseTaskLine_Malformed(t *testing.T) {
	for _, line := range []string{
		"- [z] unknown status",
		"- [] no status",
		"not a task at all",
	} {
		_, ok := parseTaskLine(line)
		assert.False(t, ok, line)
	}
}

func TestParseTaskLine_BadDateTreatedAsAbsent(t *testing.T) {
	tk, ok := parseTaskLine("- [ ] thing | @99-99-2025 #001")
	require.True(t, ok)
	assert.True(t, tk.Date.IsZero())
	assert.Equal(t, "001", tk.ID)
}

func TestFormatTaskLine_CanonicalOrder(t *testing.T) {
	d := func(s string) task.Date {
		v, err := task.ParseDate(s)
		require.NoError(t, err)
		return v
	}
	tk := &task.Task{
		ID:            "042",
		Text:          "water plants",
		Status:        task.StatusIncomplete,
		Date:          d("15-06-2025"),
		Recurrence:    "daily",
		Snooze:        d("20-06-2025"),
		Due:           d("30-06-2025"),
		SourceSection: "HOME",
	}

	want := "- [ ] water plants | @15-06-2025 (daily) snooze:20-06-2025 due:30-06-2025 from:HOME #042"
	assert.Equal(t, want, formatTaskLine(tk))
}

func TestFormatTaskLine_NoMetadata(t *testing.T) {
	tk := &task.Task{Text: "bare", Status: task.StatusComplete}
	assert.Equal(t, "- [x] bare", formatTaskLine(tk))
}

func TestTaskLine_RoundTrip(t *testing.T) {
	lines := []string{
		"- [ ] water plants | @15-06-2025 (daily) #042",
		"- [x] pay rent | @01-06-2025 (monthly:1st) from:BILLS #007",
		"- [~] in flight | #100",
		"- [ ] plain",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			tk, ok := parseTaskLine(line)
			require.True(t, ok)
			assert.Equal(t, line, formatTaskLine(tk))
		})
	}
}
