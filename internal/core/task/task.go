// Package task defines the domain model for the task file: tasks,
// sections, daily logs, and the whole-file document aggregate.
package task

import (
	"fmt"
	"strconv"
)

// Status is the single-character state marker stored inside a task
// line's brackets.
type Status string

const (
	StatusIncomplete Status = " "
	StatusInProgress Status = "~"
	StatusComplete   Status = "x"
)

// IsValid reports whether s is one of the three known markers.
func (s Status) IsValid() bool {
	switch s {
	case StatusIncomplete, StatusInProgress, StatusComplete:
		return true
	}
	return false
}

// Open reports whether the task still needs attention.
func (s Status) Open() bool {
	return s == StatusIncomplete || s == StatusInProgress
}

// CanTransition reports whether a status change is legal:
// incomplete <-> in-progress -> complete, and complete -> incomplete
// (reopen).
func (s Status) CanTransition(to Status) bool {
	if !to.IsValid() {
		return false
	}
	switch s {
	case StatusIncomplete:
		return to == StatusInProgress || to == StatusComplete
	case StatusInProgress:
		return to == StatusIncomplete || to == StatusComplete
	case StatusComplete:
		return to == StatusIncomplete
	}
	return false
}

// Task is a single actionable item. The same conceptual task may have
// independent records in the main tree and in a daily log, linked only
// by a shared ID.
type Task struct {
	// ID is a zero-padded numeric string, unique across the whole
	// file. Immutable once assigned.
	ID     string
	Text   string
	Status Status
	// Date is the last-touched date: creation, completion, or
	// progress update.
	Date Date
	// Recurrence is the rule string without parentheses, e.g. "daily"
	// or "weekly:mon,fri". Empty means one-off.
	Recurrence string
	// Snooze hides the task from staleness and rollover until the
	// given date.
	Snooze Date
	// Due is an optional deadline, carried through the file verbatim.
	Due Date

	// Section and Subsection locate the task in the main tree.
	Section    string
	Subsection string
	// SourceSection records where a daily-log entry was pulled from.
	SourceSection string
}

// Clone returns a deep copy.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// Recurring reports whether the task has a recurrence rule.
func (t *Task) Recurring() bool {
	return t.Recurrence != ""
}

// Snoozed reports whether the task is snoozed past today.
func (t *Task) Snoozed(today Date) bool {
	return !t.Snooze.IsZero() && t.Snooze.After(today)
}

// FormatID renders a numeric ID in canonical form: three digits
// zero-padded, widening naturally past 999 (1000, 1001, ...).
func FormatID(n int) string {
	return fmt.Sprintf("%03d", n)
}

// ParseID parses a canonical ID string.
func ParseID(id string) (int, bool) {
	if len(id) < 3 {
		return 0, false
	}
	n, err := strconv.Atoi(id)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
