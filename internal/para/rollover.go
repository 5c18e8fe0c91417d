package para

import (
	"github.com/colonyops/paratrooper/internal/core/recurrence"
	"github.com/colonyops/paratrooper/internal/core/task"
)

// RolloverSummary reports what a rollover did.
type RolloverSummary struct {
	Date           task.Date
	Recurring      int
	CarriedOver    int
	Archived       int
	AlreadyExisted bool
	// Log is today's daily log after the rollover, for display.
	Log *task.DailyLog
}

// Rollover creates today's daily log: due recurring tasks from the
// main tree first, then unfinished tasks carried over from the most
// recent prior day, deduplicated by ID; older daily logs are demoted
// into the archive. Idempotent per calendar day: if today's log
// already exists the document is left untouched.
func (s *Service) Rollover(today task.Date) (*RolloverSummary, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	if existing := doc.DailyFor(today); existing != nil {
		return &RolloverSummary{Date: today, AlreadyExisted: true, Log: existing}, nil
	}

	prior := doc.MostRecentDaily()

	// Recurring tasks due today, cloned into fresh daily entries.
	var entries []*task.Task
	seen := map[string]bool{}
	doc.WalkMain(func(t *task.Task, sec, sub *task.Section) {
		if !t.Recurring() || t.Snoozed(today) || seen[t.ID] {
			return
		}
		if !recurrence.IsDue(t.Recurrence, t.Date, today) {
			return
		}
		seen[t.ID] = true
		path := sec.Name
		if sub != nil {
			path += ":" + sub.Name
		}
		entries = append(entries, &task.Task{
			ID:            t.ID,
			Text:          t.Text,
			Status:        task.StatusIncomplete,
			Date:          today,
			Recurrence:    t.Recurrence,
			SourceSection: path,
		})
	})
	summary := &RolloverSummary{Date: today, Recurring: len(entries)}

	// Carry over unfinished work from the most recent prior day,
	// unless recurrence already rescheduled the same ID today.
	if s.cfg.CarryOver && prior != nil {
		for _, t := range prior.Tasks {
			if !t.Status.Open() || seen[t.ID] {
				continue
			}
			seen[t.ID] = true
			carried := t.Clone()
			carried.Status = task.StatusIncomplete
			carried.Date = today
			entries = append(entries, carried)
			summary.CarriedOver++
		}
	}

	log := doc.EnsureDaily(today)
	log.Tasks = entries
	summary.Log = log

	// Demote every other daily log into the archive, merging into any
	// existing bucket for that date.
	var remaining []*task.DailyLog
	for _, l := range doc.Daily {
		if l == log {
			remaining = append(remaining, l)
			continue
		}
		bucket := doc.EnsureArchive(l.Date.String())
		bucket.Tasks = append(bucket.Tasks, l.Tasks...)
		summary.Archived++
	}
	doc.Daily = remaining

	if err := s.store.Save(doc); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("date", today.String()).
		Int("recurring", summary.Recurring).
		Int("carried_over", summary.CarriedOver).
		Int("archived", summary.Archived).
		Msg("daily rollover")
	return summary, nil
}
