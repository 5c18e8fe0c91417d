package task

// Section is a named grouping in the main region. Top-level sections
// have level 2 (rendered as "## NAME"), subsections level 3.
// Subsections keep insertion order so serialization is deterministic.
type Section struct {
	Name        string
	Level       int
	Tasks       []*Task
	Subsections []*Section
}

// Add appends a task to this section.
func (s *Section) Add(t *Task) {
	s.Tasks = append(s.Tasks, t)
}

// Sub returns the named subsection, or nil.
func (s *Section) Sub(name string) *Section {
	for _, sub := range s.Subsections {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// EnsureSub returns the named subsection, creating it on first
// reference. Sections are never auto-deleted.
func (s *Section) EnsureSub(name string) *Section {
	if sub := s.Sub(name); sub != nil {
		return sub
	}
	sub := &Section{Name: name, Level: s.Level + 1}
	s.Subsections = append(s.Subsections, sub)
	return sub
}

// Remove deletes the task with the given ID from this section's direct
// task list. It does not descend into subsections.
func (s *Section) Remove(id string) bool {
	for i, t := range s.Tasks {
		if t.ID == id {
			s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
			return true
		}
	}
	return false
}
