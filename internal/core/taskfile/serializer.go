package taskfile

import (
	"sort"
	"strings"

	"github.com/colonyops/paratrooper/internal/core/task"
)

// Serialize renders a document back into the canonical text grammar:
// DAILY (single most recent log), MAIN (sections in insertion order,
// subsections immediately after their parent), ARCHIVE (demoted logs
// by descending date, then named buckets). A single blank line
// separates headers from children and task runs from the next header;
// blank lines are never doubled and the file ends with one newline.
func Serialize(doc *task.Document) string {
	w := &blockWriter{}

	latest := doc.MostRecentDaily()
	if latest != nil {
		w.header("# DAILY")
		w.header("## " + latest.Date.String())
		w.tasks(latest.Tasks)
	}

	if len(doc.Main) > 0 {
		w.header("# MAIN")
		for _, s := range doc.Main {
			w.header("## " + s.Name)
			w.tasks(s.Tasks)
			for _, sub := range s.Subsections {
				w.header("### " + sub.Name)
				w.tasks(sub.Tasks)
			}
		}
	}

	buckets := archiveBuckets(doc, latest)
	if len(buckets) > 0 {
		w.header("# ARCHIVE")
		for _, b := range buckets {
			w.header("## " + b.Name)
			w.tasks(b.Tasks)
		}
	}

	return w.String()
}

// archiveBuckets merges the archive region with any stale daily logs
// still in the daily region (they belong under ARCHIVE on the next
// write), ordered dated-first by descending date, then named buckets
// in insertion order.
func archiveBuckets(doc *task.Document, latest *task.DailyLog) []*task.ArchiveBucket {
	merged := map[string]*task.ArchiveBucket{}
	var dated, named []*task.ArchiveBucket

	add := func(name string, tasks []*task.Task) {
		if b, ok := merged[name]; ok {
			b.Tasks = append(b.Tasks, tasks...)
			return
		}
		b := &task.ArchiveBucket{Name: name, Tasks: append([]*task.Task(nil), tasks...)}
		merged[name] = b
		if _, isDate := b.DateKey(); isDate {
			dated = append(dated, b)
		} else {
			named = append(named, b)
		}
	}

	for _, b := range doc.Archive {
		add(b.Name, b.Tasks)
	}
	for _, l := range doc.Daily {
		if l != latest {
			add(l.Date.String(), l.Tasks)
		}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		di, _ := dated[i].DateKey()
		dj, _ := dated[j].DateKey()
		return di.After(dj)
	})

	return append(dated, named...)
}

// blockWriter accumulates lines, inserting exactly one blank line
// before each header after the first.
type blockWriter struct {
	lines []string
}

func (w *blockWriter) header(line string) {
	if len(w.lines) > 0 {
		w.lines = append(w.lines, "")
	}
	w.lines = append(w.lines, line)
}

func (w *blockWriter) tasks(tasks []*task.Task) {
	if len(tasks) == 0 {
		return
	}
	w.lines = append(w.lines, "")
	for _, t := range tasks {
		w.lines = append(w.lines, formatTaskLine(t))
	}
}

func (w *blockWriter) String() string {
	if len(w.lines) == 0 {
		return ""
	}
	return strings.Join(w.lines, "\n") + "\n"
}
