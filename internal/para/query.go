package para

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/paratrooper/internal/core/recurrence"
	"github.com/colonyops/paratrooper/internal/core/task"
)

// TaskInfo pairs a main-tree task with its resolved location and age.
type TaskInfo struct {
	Task    *task.Task
	Path    string
	DaysOld int
}

// DueToday returns the recurring main-tree tasks whose rule fires
// today, in tree order.
func (s *Service) DueToday(today task.Date) ([]TaskInfo, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	var due []TaskInfo
	doc.WalkMain(func(t *task.Task, sec, sub *task.Section) {
		if !t.Recurring() || t.Snoozed(today) {
			return
		}
		if recurrence.IsDue(t.Recurrence, t.Date, today) {
			due = append(due, TaskInfo{Task: t, Path: joinPath(sec, sub), DaysOld: daysOld(t, today)})
		}
	})
	return due, nil
}

// Stale returns open one-off main tasks ordered oldest first by days
// since their last-touched date. Completed, recurring, future-dated,
// and snoozed tasks are excluded. scope optionally filters by section
// path glob ("WORK", "WORK:*", "B*"); limit <= 0 means no limit.
func (s *Service) Stale(scope string, limit int, today task.Date) ([]TaskInfo, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	var stale []TaskInfo
	doc.WalkMain(func(t *task.Task, sec, sub *task.Section) {
		if t.Status == task.StatusComplete || t.Recurring() || t.Snoozed(today) {
			return
		}
		if !t.Date.IsZero() && t.Date.After(today) {
			return
		}
		path := joinPath(sec, sub)
		if !matchScope(scope, path) {
			return
		}
		stale = append(stale, TaskInfo{Task: t, Path: path, DaysOld: daysOld(t, today)})
	})

	sort.SliceStable(stale, func(i, j int) bool { return stale[i].DaysOld > stale[j].DaysOld })
	if limit > 0 && len(stale) > limit {
		stale = stale[:limit]
	}
	return stale, nil
}

// SectionInfo summarizes one node of the main tree.
type SectionInfo struct {
	Path string
	Open int
	Done int
}

// Sections lists the main tree's sections and subsections in
// insertion order with task counts.
func (s *Service) Sections() ([]SectionInfo, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	var infos []SectionInfo
	count := func(path string, tasks []*task.Task) SectionInfo {
		info := SectionInfo{Path: path}
		for _, t := range tasks {
			if t.Status == task.StatusComplete {
				info.Done++
			} else {
				info.Open++
			}
		}
		return info
	}
	for _, sec := range doc.Main {
		infos = append(infos, count(sec.Name, sec.Tasks))
		for _, sub := range sec.Subsections {
			infos = append(infos, count(sec.Name+":"+sub.Name, sub.Tasks))
		}
	}
	return infos, nil
}

// Document loads the whole document for display commands.
func (s *Service) Document() (*task.Document, error) {
	return s.store.Load()
}

// matchScope matches a section path against a user glob. Matching is
// case-insensitive and ":" behaves as a path separator, so "WORK"
// matches the section and all its subsections, and "WORK:*" matches
// only the subsections.
func matchScope(pattern, path string) bool {
	if pattern == "" || pattern == "*" {
		return true
	}
	p := strings.ToUpper(strings.ReplaceAll(pattern, ":", "/"))
	candidate := strings.ToUpper(strings.ReplaceAll(path, ":", "/"))
	if ok, err := doublestar.Match(p, candidate); err == nil && ok {
		return true
	}
	// A bare section scope also covers everything beneath it.
	ok, err := doublestar.Match(p+"/*", candidate)
	return err == nil && ok
}

func joinPath(sec, sub *task.Section) string {
	if sub != nil {
		return sec.Name + ":" + sub.Name
	}
	return sec.Name
}

func daysOld(t *task.Task, today task.Date) int {
	if t.Date.IsZero() {
		return 0
	}
	return today.DaysSince(t.Date)
}
