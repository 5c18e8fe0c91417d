package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/paratrooper/internal/para"
	"github.com/colonyops/paratrooper/internal/printer"
)

// AddCmd implements the add, add-daily, and up commands.
type AddCmd struct {
	flags *Flags
	app   *App

	// add flags
	section string
}

// NewAddCmd creates a new add command group.
func NewAddCmd(flags *Flags, app *App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the task-creation commands to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		cmd.addCmd(),
		cmd.addDailyCmd(),
		cmd.upCmd(),
	)
	return app
}

func (cmd *AddCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Aliases:   []string{"a"},
		Usage:     "Add a task to the main tree",
		UsageText: "para add [--section <path>] <text>...",
		Description: `Adds a task to the main tree and assigns it a permanent ID.

A recurrence rule may be embedded in the text as a trailing
parenthesized group; it is extracted and stored as metadata.

Section paths use SECTION or SECTION:SUBSECTION form and are
created on demand. Omitting --section files the task under ` + para.DefaultSection + `.

Examples:
  para add "water the plants"
  para add --section WORK "quarterly report"
  para add -s HOME:GARAGE "fix the door (weekly:sat)"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "section",
				Aliases:     []string{"s"},
				Usage:       "section path (SECTION or SECTION:SUBSECTION)",
				Destination: &cmd.section,
			},
		},
		Action: cmd.runAdd,
	}
}

func (cmd *AddCmd) addDailyCmd() *cli.Command {
	return &cli.Command{
		Name:      "add-daily",
		Aliases:   []string{"ad"},
		Usage:     "Add a task to today's daily list only",
		UsageText: "para add-daily <text>...",
		Description: `Adds a one-off task to today's daily list.

Daily-only tasks get an ID but no main-tree record; completing
them never touches the main tree.

Examples:
  para add-daily "call the dentist"`,
		Action: cmd.runAddDaily,
	}
}

func (cmd *AddCmd) upCmd() *cli.Command {
	return &cli.Command{
		Name:      "up",
		Aliases:   []string{"pull"},
		Usage:     "Pull a main-tree task into today's daily list",
		UsageText: "para up <id>",
		Description: `Copies a main-tree task to the top of today's daily list.

The daily entry keeps the task's ID so completions sync back.

Examples:
  para up 042`,
		Action: cmd.runUp,
	}
}

func (cmd *AddCmd) runAdd(ctx context.Context, c *cli.Command) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("usage: para add [--section <path>] <text>")
	}

	p := printer.New(c.Root().Writer)
	t, err := cmd.app.Service.AddToMain(text, cmd.section, cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	p.Successf("added #%s %s", t.ID, t.Text)
	return nil
}

func (cmd *AddCmd) runAddDaily(ctx context.Context, c *cli.Command) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("usage: para add-daily <text>")
	}

	p := printer.New(c.Root().Writer)
	t, err := cmd.app.Service.AddToDaily(text, cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	p.Successf("added #%s %s to today", t.ID, t.Text)
	return nil
}

func (cmd *AddCmd) runUp(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: para up <id>")
	}

	p := printer.New(c.Root().Writer)
	t, err := cmd.app.Service.Pull(c.Args().Get(0), cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	p.Successf("pulled #%s %s into today", t.ID, t.Text)
	return nil
}
