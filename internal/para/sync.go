package para

import (
	"github.com/colonyops/paratrooper/internal/core/task"
)

// SyncSummary reports what a sync pushed back to the main tree.
type SyncSummary struct {
	Completed  int
	Progressed int
	// Unmatched counts daily tasks whose ID has no main counterpart;
	// they originated in the daily log and are left untouched.
	Unmatched int
}

// Sync is the one-way daily-to-main push: completions and progress
// marks in the current daily log refresh the corresponding main
// records. A completed daily task completes its main counterpart only
// when the counterpart is not recurring; recurrence controls
// reappearance, so recurring tasks merely get their date refreshed.
func (s *Service) Sync(today task.Date) (*SyncSummary, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	summary := &SyncSummary{}
	cur := doc.MostRecentDaily()
	if cur == nil {
		return summary, nil
	}

	changed := false
	for _, t := range cur.Tasks {
		if t.Status == task.StatusIncomplete {
			continue
		}
		main := doc.FindMain(t.ID)
		if main == nil {
			summary.Unmatched++
			continue
		}

		switch t.Status {
		case task.StatusComplete:
			applyToMain(main, task.StatusComplete, today)
			summary.Completed++
		case task.StatusInProgress:
			applyToMain(main, task.StatusInProgress, today)
			summary.Progressed++
		}
		changed = true
	}

	if changed {
		if err := s.store.Save(doc); err != nil {
			return nil, err
		}
	}

	s.log.Debug().
		Int("completed", summary.Completed).
		Int("progressed", summary.Progressed).
		Int("unmatched", summary.Unmatched).
		Msg("daily sync")
	return summary, nil
}
