package task

import "strings"

// DailyLog holds the tasks recorded for one calendar date.
type DailyLog struct {
	Date  Date
	Tasks []*Task
}

// Find returns the task with the given ID, or nil.
func (l *DailyLog) Find(id string) *Task {
	for _, t := range l.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Prepend inserts a task at the head of the log
// (most-recently-added-first ordering).
func (l *DailyLog) Prepend(t *Task) {
	l.Tasks = append([]*Task{t}, l.Tasks...)
}

// ArchiveBucket is one "## <key>" grouping in the archive region. The
// key is usually a demoted daily log's date; named buckets are also
// allowed.
type ArchiveBucket struct {
	Name  string
	Tasks []*Task
}

// DateKey returns the bucket key parsed as a date, if it is one.
func (b *ArchiveBucket) DateKey() (Date, bool) {
	d, err := ParseDate(b.Name)
	if err != nil {
		return Date{}, false
	}
	return d, true
}

// Document is the whole-file aggregate: the active daily region, the
// main section tree, and the archive. Region collections preserve
// insertion order.
type Document struct {
	Daily   []*DailyLog
	Main    []*Section
	Archive []*ArchiveBucket
}

func NewDocument() *Document {
	return &Document{}
}

// FindSection returns the named top-level section, or nil. Names are
// case-insensitive; "SECTION:SUB" paths resolve the subsection.
func (d *Document) FindSection(name string) *Section {
	top, sub, hasSub := strings.Cut(name, ":")
	top = strings.ToUpper(strings.TrimSpace(top))
	for _, s := range d.Main {
		if s.Name != top {
			continue
		}
		if !hasSub {
			return s
		}
		return s.Sub(strings.TrimSpace(sub))
	}
	return nil
}

// EnsureSection returns the section for a "SECTION" or "SECTION:SUB"
// path, creating missing levels on first reference. Top-level names
// are uppercased.
func (d *Document) EnsureSection(name string) *Section {
	top, sub, hasSub := strings.Cut(name, ":")
	top = strings.ToUpper(strings.TrimSpace(top))

	var parent *Section
	for _, s := range d.Main {
		if s.Name == top {
			parent = s
			break
		}
	}
	if parent == nil {
		parent = &Section{Name: top, Level: 2}
		d.Main = append(d.Main, parent)
	}
	if !hasSub {
		return parent
	}
	return parent.EnsureSub(strings.TrimSpace(sub))
}

// DailyFor returns the daily log for the given date, or nil.
func (d *Document) DailyFor(date Date) *DailyLog {
	for _, l := range d.Daily {
		if l.Date == date {
			return l
		}
	}
	return nil
}

// EnsureDaily returns the daily log for the date, creating it if
// absent.
func (d *Document) EnsureDaily(date Date) *DailyLog {
	if l := d.DailyFor(date); l != nil {
		return l
	}
	l := &DailyLog{Date: date}
	d.Daily = append(d.Daily, l)
	return l
}

// MostRecentDaily returns the newest daily log, or nil when the daily
// region is empty.
func (d *Document) MostRecentDaily() *DailyLog {
	var latest *DailyLog
	for _, l := range d.Daily {
		if latest == nil || l.Date.After(latest.Date) {
			latest = l
		}
	}
	return latest
}

// EnsureArchive returns the archive bucket with the given key,
// creating it if absent.
func (d *Document) EnsureArchive(name string) *ArchiveBucket {
	for _, b := range d.Archive {
		if b.Name == name {
			return b
		}
	}
	b := &ArchiveBucket{Name: name}
	d.Archive = append(d.Archive, b)
	return b
}

// WalkMain calls fn for every task in the main tree, sections first,
// then their subsections, in insertion order.
func (d *Document) WalkMain(fn func(t *Task, sec, sub *Section)) {
	for _, s := range d.Main {
		for _, t := range s.Tasks {
			fn(t, s, nil)
		}
		for _, sub := range s.Subsections {
			for _, t := range sub.Tasks {
				fn(t, s, sub)
			}
		}
	}
}

// FindMain returns the main-tree task with the given ID, or nil.
func (d *Document) FindMain(id string) *Task {
	var found *Task
	d.WalkMain(func(t *Task, _, _ *Section) {
		if found == nil && t.ID == id {
			found = t
		}
	})
	return found
}

// RemoveFromMain deletes the task with the given ID from whichever
// main section holds it.
func (d *Document) RemoveFromMain(id string) bool {
	for _, s := range d.Main {
		if s.Remove(id) {
			return true
		}
		for _, sub := range s.Subsections {
			if sub.Remove(id) {
				return true
			}
		}
	}
	return false
}

// Purge deletes every record of the ID across all three regions and
// returns the number of entries removed.
func (d *Document) Purge(id string) int {
	n := 0
	for d.RemoveFromMain(id) {
		n++
	}
	for _, l := range d.Daily {
		for i := 0; i < len(l.Tasks); {
			if l.Tasks[i].ID == id {
				l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
				n++
				continue
			}
			i++
		}
	}
	for _, b := range d.Archive {
		for i := 0; i < len(b.Tasks); {
			if b.Tasks[i].ID == id {
				b.Tasks = append(b.Tasks[:i], b.Tasks[i+1:]...)
				n++
				continue
			}
			i++
		}
	}
	return n
}

// AllTasks returns every task record in the document, across all
// regions.
func (d *Document) AllTasks() []*Task {
	var all []*Task
	for _, l := range d.Daily {
		all = append(all, l.Tasks...)
	}
	d.WalkMain(func(t *Task, _, _ *Section) { all = append(all, t) })
	for _, b := range d.Archive {
		all = append(all, b.Tasks...)
	}
	return all
}

// NextID allocates the next task ID: max over every region plus one.
// IDs are never reused after deletion.
func (d *Document) NextID() string {
	maxID := 0
	for _, t := range d.AllTasks() {
		if n, ok := ParseID(t.ID); ok && n > maxID {
			maxID = n
		}
	}
	return FormatID(maxID + 1)
}
