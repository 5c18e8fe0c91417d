package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/paratrooper/internal/printer"
)

// TaskCmd implements the single-task mutation commands.
type TaskCmd struct {
	flags *Flags
	app   *App
}

// NewTaskCmd creates a new task mutation command group.
func NewTaskCmd(flags *Flags, app *App) *TaskCmd {
	return &TaskCmd{flags: flags, app: app}
}

// Register adds the task mutation commands to the application.
func (cmd *TaskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		cmd.doneCmd(),
		cmd.passCmd(),
		cmd.reopenCmd(),
		cmd.editCmd(),
		cmd.moveCmd(),
		cmd.recurCmd(),
		cmd.snoozeCmd(),
		cmd.deleteCmd(),
		cmd.purgeCmd(),
	)
	return app
}

func (cmd *TaskCmd) doneCmd() *cli.Command {
	return &cli.Command{
		Name:      "done",
		Aliases:   []string{"x"},
		Usage:     "Mark a task complete",
		UsageText: "para done <id>",
		Description: `Marks a task complete in today's daily list and the main tree.

Recurring main records never complete; their last-done date is
refreshed instead so the rule controls the next appearance.

Examples:
  para done 042`,
		Action: cmd.runDone,
	}
}

func (cmd *TaskCmd) passCmd() *cli.Command {
	return &cli.Command{
		Name:      "pass",
		Aliases:   []string{"p"},
		Usage:     "Mark a task in progress",
		UsageText: "para pass <id>",
		Description: `Marks a task as in progress.

Examples:
  para pass 042`,
		Action: cmd.runPass,
	}
}

func (cmd *TaskCmd) reopenCmd() *cli.Command {
	return &cli.Command{
		Name:      "reopen",
		Usage:     "Reopen a completed task",
		UsageText: "para reopen <id>",
		Description: `Returns a completed task to the incomplete state.

Examples:
  para reopen 042`,
		Action: cmd.runReopen,
	}
}

func (cmd *TaskCmd) editCmd() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Rewrite a task's text",
		UsageText: "para edit <id> <text>...",
		Description: `Replaces the text of a task everywhere its ID appears.

Metadata (recurrence, snooze, due date) is preserved; a recurrence
rule embedded in the new text replaces the stored one.

Examples:
  para edit 042 "water the plants twice"`,
		Action: cmd.runEdit,
	}
}

func (cmd *TaskCmd) moveCmd() *cli.Command {
	return &cli.Command{
		Name:      "move",
		Aliases:   []string{"mv"},
		Usage:     "Move a task to another section",
		UsageText: "para move <id> <section>",
		Description: `Moves a main-tree task to a different section, creating the
destination on demand.

Examples:
  para move 042 WORK
  para move 042 HOME:GARAGE`,
		Action: cmd.runMove,
	}
}

func (cmd *TaskCmd) recurCmd() *cli.Command {
	return &cli.Command{
		Name:      "recur",
		Usage:     "Set or clear a task's recurrence rule",
		UsageText: "para recur <id> <rule>",
		Description: `Attaches a recurrence rule to a main-tree task, or clears it
with "none".

Rules: daily, weekdays, weekly[:days], monthly[:day], or
recur:<n><d|w|m|y> intervals (comma-separated intervals sum).

Examples:
  para recur 042 weekly:mon,fri
  para recur 042 monthly:15th
  para recur 042 recur:2w
  para recur 042 none`,
		Action: cmd.runRecur,
	}
}

func (cmd *TaskCmd) snoozeCmd() *cli.Command {
	return &cli.Command{
		Name:      "snooze",
		Aliases:   []string{"zz"},
		Usage:     "Hide a task until a future date",
		UsageText: "para snooze <id> <days|DD-MM-YYYY>",
		Description: `Hides a main-tree task from rollover and status listings until
the given date, supplied as a day count or an absolute date.

Examples:
  para snooze 042 7
  para snooze 042 01-10-2026`,
		Action: cmd.runSnooze,
	}
}

func (cmd *TaskCmd) deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a task from the main tree",
		UsageText: "para delete <id>",
		Description: `Removes a task from the main tree. Daily and archive entries
keep their history; use purge to erase every trace.

Examples:
  para delete 042`,
		Action: cmd.runDelete,
	}
}

func (cmd *TaskCmd) purgeCmd() *cli.Command {
	return &cli.Command{
		Name:      "purge",
		Usage:     "Erase every record of a task ID",
		UsageText: "para purge <id>",
		Description: `Removes an ID from the daily lists, the main tree, and the
archive. The ID is never reallocated.

Examples:
  para purge 042`,
		Action: cmd.runPurge,
	}
}

func (cmd *TaskCmd) runDone(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: para done <id>")
	}

	p := printer.New(c.Root().Writer)
	t, err := cmd.app.Service.Complete(c.Args().Get(0), cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	p.Successf("%s #%s %s", cmd.app.Icons.For(t.Status), t.ID, t.Text)
	return nil
}

func (cmd *TaskCmd) runPass(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: para pass <id>")
	}

	p := printer.New(c.Root().Writer)
	t, err := cmd.app.Service.Progress(c.Args().Get(0), cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	p.Successf("%s #%s %s", cmd.app.Icons.For(t.Status), t.ID, t.Text)
	return nil
}

func (cmd *TaskCmd) runReopen(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: para reopen <id>")
	}

	p := printer.New(c.Root().Writer)
	t, err := cmd.app.Service.Reopen(c.Args().Get(0), cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	p.Successf("reopened #%s %s", t.ID, t.Text)
	return nil
}

func (cmd *TaskCmd) runEdit(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: para edit <id> <text>")
	}

	id := c.Args().Get(0)
	text := strings.TrimSpace(strings.Join(c.Args().Slice()[1:], " "))

	p := printer.New(c.Root().Writer)
	t, err := cmd.app.Service.Edit(id, text, cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	p.Successf("edited #%s %s", t.ID, t.Text)
	return nil
}

func (cmd *TaskCmd) runMove(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: para move <id> <section>")
	}

	p := printer.New(c.Root().Writer)
	t, err := cmd.app.Service.Move(c.Args().Get(0), c.Args().Get(1), cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	p.Successf("moved #%s to %s", t.ID, strings.ToUpper(c.Args().Get(1)))
	return nil
}

func (cmd *TaskCmd) runRecur(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: para recur <id> <rule>")
	}

	p := printer.New(c.Root().Writer)
	t, err := cmd.app.Service.SetRecurrence(c.Args().Get(0), c.Args().Get(1), cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	if t.Recurring() {
		p.Successf("#%s recurs (%s)", t.ID, t.Recurrence)
	} else {
		p.Successf("#%s no longer recurs", t.ID)
	}
	return nil
}

func (cmd *TaskCmd) runSnooze(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: para snooze <id> <days|DD-MM-YYYY>")
	}

	p := printer.New(c.Root().Writer)
	t, err := cmd.app.Service.Snooze(c.Args().Get(0), c.Args().Get(1), cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	p.Successf("#%s snoozed until %s", t.ID, t.Snooze)
	return nil
}

func (cmd *TaskCmd) runDelete(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: para delete <id>")
	}

	id := c.Args().Get(0)
	p := printer.New(c.Root().Writer)
	if err := cmd.app.Service.Delete(id); err != nil {
		return report(p, err)
	}

	p.Successf("deleted #%s from the main tree", id)
	return nil
}

func (cmd *TaskCmd) runPurge(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: para purge <id>")
	}

	id := c.Args().Get(0)
	p := printer.New(c.Root().Writer)
	n, err := cmd.app.Service.Purge(id)
	if err != nil {
		return report(p, err)
	}

	p.Successf("purged #%s (%d entries)", id, n)
	return nil
}
