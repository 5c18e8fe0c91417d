// Package taskfile parses and serializes the plain-text task file
// grammar: three level-1 regions (DAILY, MAIN, ARCHIVE), level-2/3
// headers, and status-marker task lines with a pipe-separated metadata
// block.
package taskfile

import (
	"regexp"
	"strings"

	"github.com/colonyops/paratrooper/internal/core/task"
)

// lineKind classifies one raw line of the file.
type lineKind int

const (
	lineBlank lineKind = iota
	lineHeader1
	lineHeader2
	lineHeader3
	lineTask
	lineOther
)

// classify returns the kind of a line and its payload: header text for
// headers, the trimmed line otherwise.
func classify(raw string) (lineKind, string) {
	line := strings.TrimSpace(raw)
	switch {
	case line == "":
		return lineBlank, ""
	case strings.HasPrefix(line, "### "):
		return lineHeader3, strings.TrimSpace(line[4:])
	case strings.HasPrefix(line, "## "):
		return lineHeader2, strings.TrimSpace(line[3:])
	case strings.HasPrefix(line, "# "):
		return lineHeader1, strings.TrimSpace(line[2:])
	case strings.HasPrefix(line, "- [") && strings.Contains(line, "]"):
		return lineTask, line
	}
	return lineOther, line
}

const metadataSep = " | "

var (
	statusExpr = regexp.MustCompile(`^- \[(.)\] `)
	idExpr     = regexp.MustCompile(`#(\d{3,})`)
	dateExpr   = regexp.MustCompile(`@(\d{2}-\d{2}-\d{4})`)
	snoozeExpr = regexp.MustCompile(`snooze:(\d{2}-\d{2}-\d{4})`)
	dueExpr    = regexp.MustCompile(`due:(\d{2}-\d{2}-\d{4})`)
	fromExpr   = regexp.MustCompile(`from:([A-Za-z0-9_:-]+)`)
	recurExpr  = regexp.MustCompile(`\(([^)]*(?:daily|weekdays|weekly|monthly|recur:)[^)]*)\)`)
)

// parseTaskLine parses one "- [x] text | metadata" line. Metadata
// tokens are located independently, so their order does not matter.
// Unparseable dates are treated as absent, never fatal.
func parseTaskLine(line string) (*task.Task, bool) {
	m := statusExpr.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	status := task.Status(m[1])
	if !status.IsValid() {
		return nil, false
	}

	rest := line[len(m[0]):]
	text, meta, _ := strings.Cut(rest, metadataSep)

	t := &task.Task{
		Text:   strings.TrimSpace(text),
		Status: status,
	}
	if meta != "" {
		if m := idExpr.FindStringSubmatch(meta); m != nil {
			t.ID = m[1]
		}
		if m := dateExpr.FindStringSubmatch(meta); m != nil {
			t.Date, _ = task.ParseDate(m[1])
		}
		if m := snoozeExpr.FindStringSubmatch(meta); m != nil {
			t.Snooze, _ = task.ParseDate(m[1])
		}
		if m := dueExpr.FindStringSubmatch(meta); m != nil {
			t.Due, _ = task.ParseDate(m[1])
		}
		if m := recurExpr.FindStringSubmatch(meta); m != nil {
			t.Recurrence = strings.TrimSpace(m[1])
		}
		if m := fromExpr.FindStringSubmatch(meta); m != nil {
			t.SourceSection = m[1]
		}
	}
	return t, true
}

// formatTaskLine renders a task in canonical form: status and text,
// then @date, (recurrence), snooze:, due:, from:, and #id tokens.
func formatTaskLine(t *task.Task) string {
	var b strings.Builder
	b.WriteString("- [")
	b.WriteString(string(t.Status))
	b.WriteString("] ")
	b.WriteString(t.Text)

	var meta []string
	if !t.Date.IsZero() {
		meta = append(meta, "@"+t.Date.String())
	}
	if t.Recurrence != "" {
		meta = append(meta, "("+t.Recurrence+")")
	}
	if !t.Snooze.IsZero() {
		meta = append(meta, "snooze:"+t.Snooze.String())
	}
	if !t.Due.IsZero() {
		meta = append(meta, "due:"+t.Due.String())
	}
	if t.SourceSection != "" {
		meta = append(meta, "from:"+t.SourceSection)
	}
	if t.ID != "" {
		meta = append(meta, "#"+t.ID)
	}
	if len(meta) > 0 {
		b.WriteString(metadataSep)
		b.WriteString(strings.Join(meta, " "))
	}
	return b.String()
}
