// Package para implements the task tracker's operations over the
// parsed document: CRUD on the main tree, the daily rollover engine,
// daily-to-main synchronization, and queries. Every method takes an
// explicit "today" so behavior is deterministic under test.
package para

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/colonyops/paratrooper/internal/core/config"
	"github.com/colonyops/paratrooper/internal/core/recurrence"
	"github.com/colonyops/paratrooper/internal/core/task"
	"github.com/colonyops/paratrooper/internal/core/taskfile"
)

// ErrNotFound marks lookup failures: the command layer reports these
// to the user and exits zero. Only I/O errors are fatal.
var ErrNotFound = errors.New("not found")

// InvalidError marks rejected input or illegal status transitions;
// like lookups these are reported outcomes, not fatal errors.
type InvalidError struct {
	Msg string
}

func (e *InvalidError) Error() string { return e.Msg }

func invalidf(format string, args ...any) error {
	return &InvalidError{Msg: fmt.Sprintf(format, args...)}
}

// Service owns the file store and applies operations to the document.
type Service struct {
	store *taskfile.FileStore
	cfg   config.Config
	log   zerolog.Logger
}

func NewService(store *taskfile.FileStore, cfg config.Config, logger zerolog.Logger) *Service {
	return &Service{store: store, cfg: cfg, log: logger}
}

// Store exposes the underlying file store (used by init and open).
func (s *Service) Store() *taskfile.FileStore {
	return s.store
}

// DefaultSection receives tasks added without an explicit section.
const DefaultSection = "TASKS"

// AddToMain validates the text, extracts an inline recurrence
// expression, assigns the next ID, and appends the task to the given
// section path (get-or-create). An empty section falls back to
// DefaultSection.
func (s *Service) AddToMain(text, section string, today task.Date) (*task.Task, error) {
	if err := task.ValidateText(text); err != nil {
		return nil, err
	}
	clean, rule := task.ExtractRecurrence(text)
	if rule != "" {
		if _, err := recurrence.Parse(rule); err != nil {
			return nil, criterio.NewFieldErrors("recurrence", err)
		}
	}
	if section == "" {
		section = DefaultSection
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	sec := doc.EnsureSection(section)
	t := &task.Task{
		ID:         doc.NextID(),
		Text:       clean,
		Status:     task.StatusIncomplete,
		Date:       today,
		Recurrence: rule,
		Section:    sec.Name,
	}
	if sec.Level == 3 {
		t.Section, _, _ = cutSectionPath(section)
		t.Subsection = sec.Name
	}
	sec.Add(t)

	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	s.log.Info().Str("id", t.ID).Str("section", section).Msg("task added to main")
	return t, nil
}

// AddToDaily creates a task directly in today's log. Daily-only tasks
// share the global ID namespace but have no main-tree counterpart.
func (s *Service) AddToDaily(text string, today task.Date) (*task.Task, error) {
	if err := task.ValidateText(text); err != nil {
		return nil, err
	}
	clean, rule := task.ExtractRecurrence(text)
	if rule != "" {
		if _, err := recurrence.Parse(rule); err != nil {
			return nil, criterio.NewFieldErrors("recurrence", err)
		}
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	t := &task.Task{
		ID:         doc.NextID(),
		Text:       clean,
		Status:     task.StatusIncomplete,
		Date:       today,
		Recurrence: rule,
	}
	doc.EnsureDaily(today).Tasks = append(doc.EnsureDaily(today).Tasks, t)

	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return t, nil
}

// Pull materializes a main-tree task into today's log by ID. Pulling
// a task already present today is a no-op lookup outcome.
func (s *Service) Pull(id string, today task.Date) (*task.Task, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	main := doc.FindMain(id)
	if main == nil {
		return nil, fmt.Errorf("task #%s: %w", id, ErrNotFound)
	}

	today1 := doc.EnsureDaily(today)
	if today1.Find(id) != nil {
		return nil, invalidf("task #%s is already in today's log", id)
	}

	entry := &task.Task{
		ID:            main.ID,
		Text:          main.Text,
		Status:        task.StatusIncomplete,
		Date:          today,
		Recurrence:    main.Recurrence,
		SourceSection: sectionPath(main),
	}
	today1.Prepend(entry)

	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return entry, nil
}

// Complete marks a task done. The current daily instance (if any) is
// marked complete; the main counterpart follows the sync rule: a
// recurring main task only has its date refreshed, a one-off is
// completed outright.
func (s *Service) Complete(id string, today task.Date) (*task.Task, error) {
	return s.transition(id, today, task.StatusComplete)
}

// Progress marks today's instance of a task as in-progress ("pass")
// and refreshes the main counterpart's date without completing it.
func (s *Service) Progress(id string, today task.Date) (*task.Task, error) {
	return s.transition(id, today, task.StatusInProgress)
}

// Reopen flips a completed task back to incomplete.
func (s *Service) Reopen(id string, today task.Date) (*task.Task, error) {
	return s.transition(id, today, task.StatusIncomplete)
}

func (s *Service) transition(id string, today task.Date, to task.Status) (*task.Task, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	main := doc.FindMain(id)
	var daily *task.Task
	if cur := doc.MostRecentDaily(); cur != nil {
		daily = cur.Find(id)
	}
	if main == nil && daily == nil {
		return nil, fmt.Errorf("task #%s: %w", id, ErrNotFound)
	}

	subject := daily
	if subject == nil {
		subject = main
	}
	if subject.Status == to {
		return nil, invalidf("task #%s is already %s", id, statusName(to))
	}
	if !subject.Status.CanTransition(to) {
		return nil, invalidf("task #%s cannot go from %s to %s", id, statusName(subject.Status), statusName(to))
	}

	if daily != nil {
		daily.Status = to
		daily.Date = today
	}
	if main != nil {
		applyToMain(main, to, today)
	}

	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return subject, nil
}

// applyToMain pushes a status change onto the main record. Recurring
// tasks never complete in main; recurrence governs their reappearance,
// so completion and progress only refresh the date.
func applyToMain(main *task.Task, to task.Status, today task.Date) {
	main.Date = today
	switch to {
	case task.StatusComplete:
		if !main.Recurring() {
			main.Status = task.StatusComplete
		}
	case task.StatusIncomplete:
		main.Status = task.StatusIncomplete
	case task.StatusInProgress:
		// Date refresh only; main status is untouched.
	}
}

// Edit replaces a task's text everywhere its ID appears in main and in
// the current daily log.
func (s *Service) Edit(id, text string, today task.Date) (*task.Task, error) {
	if err := task.ValidateText(text); err != nil {
		return nil, err
	}
	clean, rule := task.ExtractRecurrence(text)

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	main := doc.FindMain(id)
	var daily *task.Task
	if cur := doc.MostRecentDaily(); cur != nil {
		daily = cur.Find(id)
	}
	if main == nil && daily == nil {
		return nil, fmt.Errorf("task #%s: %w", id, ErrNotFound)
	}

	for _, t := range []*task.Task{main, daily} {
		if t == nil {
			continue
		}
		t.Text = clean
		if rule != "" {
			t.Recurrence = rule
		}
		t.Date = today
	}

	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	if main != nil {
		return main, nil
	}
	return daily, nil
}

// Move relocates a main task to another section path.
func (s *Service) Move(id, section string, today task.Date) (*task.Task, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	main := doc.FindMain(id)
	if main == nil {
		return nil, fmt.Errorf("task #%s: %w", id, ErrNotFound)
	}

	doc.RemoveFromMain(id)
	dest := doc.EnsureSection(section)
	main.Section, main.Subsection = dest.Name, ""
	if dest.Level == 3 {
		main.Section, _, _ = cutSectionPath(section)
		main.Subsection = dest.Name
	}
	main.Date = today
	dest.Add(main)

	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return main, nil
}

// SetRecurrence updates or clears ("none") a main task's recurrence
// rule.
func (s *Service) SetRecurrence(id, rule string, today task.Date) (*task.Task, error) {
	if rule == "none" {
		rule = ""
	}
	if rule != "" {
		if _, err := recurrence.Parse(rule); err != nil {
			return nil, criterio.NewFieldErrors("recurrence", err)
		}
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	main := doc.FindMain(id)
	if main == nil {
		return nil, fmt.Errorf("task #%s: %w", id, ErrNotFound)
	}
	main.Recurrence = rule
	main.Date = today

	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return main, nil
}

// Snooze hides a main task until the given date, supplied either as a
// day count ("5") or an absolute DD-MM-YYYY date. The date must be in
// the future.
func (s *Service) Snooze(id, until string, today task.Date) (*task.Task, error) {
	var target task.Date
	if days, err := strconv.Atoi(until); err == nil {
		if days < 1 {
			return nil, criterio.NewFieldErrors("snooze", fmt.Errorf("day count must be positive"))
		}
		target = today.AddDays(days)
	} else {
		target, err = task.ParseDate(until)
		if err != nil {
			return nil, criterio.NewFieldErrors("snooze", err)
		}
		if !target.After(today) {
			return nil, criterio.NewFieldErrors("snooze", fmt.Errorf("date %s is not in the future", target))
		}
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	main := doc.FindMain(id)
	if main == nil {
		return nil, fmt.Errorf("task #%s: %w", id, ErrNotFound)
	}
	main.Snooze = target

	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return main, nil
}

// Delete removes a task from the main tree. Daily and archive records
// keep their history; use Purge to erase every trace.
func (s *Service) Delete(id string) error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	if !doc.RemoveFromMain(id) {
		return fmt.Errorf("task #%s: %w", id, ErrNotFound)
	}
	return s.store.Save(doc)
}

// Purge removes every record of an ID across all regions and returns
// the number of entries erased. The ID is never reallocated.
func (s *Service) Purge(id string) (int, error) {
	doc, err := s.store.Load()
	if err != nil {
		return 0, err
	}
	n := doc.Purge(id)
	if n == 0 {
		return 0, fmt.Errorf("task #%s: %w", id, ErrNotFound)
	}
	if err := s.store.Save(doc); err != nil {
		return 0, err
	}
	return n, nil
}

// Get returns the main record for an ID, falling back to the current
// daily log for daily-only tasks.
func (s *Service) Get(id string) (*task.Task, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if t := doc.FindMain(id); t != nil {
		return t, nil
	}
	if cur := doc.MostRecentDaily(); cur != nil {
		if t := cur.Find(id); t != nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("task #%s: %w", id, ErrNotFound)
}

func statusName(s task.Status) string {
	switch s {
	case task.StatusComplete:
		return "complete"
	case task.StatusInProgress:
		return "in progress"
	}
	return "incomplete"
}

func sectionPath(t *task.Task) string {
	if t.Subsection != "" {
		return t.Section + ":" + t.Subsection
	}
	return t.Section
}

func cutSectionPath(path string) (top, sub string, hasSub bool) {
	for i, r := range path {
		if r == ':' {
			return normalizeTop(path[:i]), strings.TrimSpace(path[i+1:]), true
		}
	}
	return normalizeTop(path), "", false
}

func normalizeTop(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
