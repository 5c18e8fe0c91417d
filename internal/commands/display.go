package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/truncate"
	"golang.org/x/term"

	"github.com/colonyops/paratrooper/internal/core/styles"
	"github.com/colonyops/paratrooper/internal/core/task"
	"github.com/colonyops/paratrooper/internal/para"
)

// termWidth returns the terminal width, defaulting to 100 columns
// when stdout is not a terminal.
func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 100
	}
	return w
}

// renderTask formats one task line for listings: icon, text, and a
// muted metadata tail.
func (app *App) renderTask(t *task.Task) string {
	var b strings.Builder
	b.WriteString(app.Icons.For(t.Status))
	b.WriteString(" ")
	if t.Status == task.StatusComplete {
		b.WriteString(styles.StyleMuted.Render(t.Text))
	} else {
		b.WriteString(t.Text)
	}

	var meta []string
	if t.Recurring() {
		meta = append(meta, "("+t.Recurrence+")")
	}
	if !t.Snooze.IsZero() {
		meta = append(meta, "snooze:"+t.Snooze.String())
	}
	if !t.Due.IsZero() {
		meta = append(meta, "due:"+t.Due.String())
	}
	if t.SourceSection != "" {
		meta = append(meta, "from "+t.SourceSection)
	}
	if t.ID != "" {
		meta = append(meta, "#"+t.ID)
	}
	if len(meta) > 0 {
		b.WriteString(" ")
		b.WriteString(styles.StyleID.Render(strings.Join(meta, " ")))
	}

	return fit(b.String(), termWidth())
}

// renderInfo formats a queried task with its section path and colored
// age.
func (app *App) renderInfo(info para.TaskInfo) string {
	age := styles.AgeStyle(info.DaysOld, app.Config.StaleDays).Render(fmt.Sprintf("%3dd", info.DaysOld))
	line := fmt.Sprintf("%s  %s %s %s",
		age,
		app.Icons.For(info.Task.Status),
		info.Task.Text,
		styles.StyleID.Render(fmt.Sprintf("#%s %s", info.Task.ID, info.Path)),
	)
	return fit(line, termWidth())
}

// fit trims a rendered line to the terminal width, ANSI-aware.
func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
