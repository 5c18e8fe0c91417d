package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/paratrooper/internal/printer"
)

// StatusCmd implements the status and due reporting commands.
type StatusCmd struct {
	flags *Flags
	app   *App

	// status flags
	scope string
	limit int
}

// NewStatusCmd creates a new status command group.
func NewStatusCmd(flags *Flags, app *App) *StatusCmd {
	return &StatusCmd{flags: flags, app: app}
}

// Register adds the reporting commands to the application.
func (cmd *StatusCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		cmd.statusCmd(),
		cmd.dueCmd(),
	)
	return app
}

func (cmd *StatusCmd) statusCmd() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Aliases:   []string{"st"},
		Usage:     "Show the oldest untouched tasks",
		UsageText: "para status [--scope <glob>] [--limit <n>]",
		Description: `Lists open main-tree tasks ordered by how long they have gone
untouched, oldest first. Recurring and snoozed tasks are excluded.

Scopes are matched against SECTION:SUBSECTION paths; a bare
section name covers its subsections, and glob patterns work too.

Examples:
  para status
  para status --limit 5
  para status --scope WORK
  para status --scope "HOME:*"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "scope",
				Aliases:     []string{"s"},
				Usage:       "restrict to a section path or glob",
				Destination: &cmd.scope,
			},
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "maximum tasks to show",
				Value:       10,
				Destination: &cmd.limit,
			},
		},
		Action: cmd.runStatus,
	}
}

func (cmd *StatusCmd) dueCmd() *cli.Command {
	return &cli.Command{
		Name:      "due",
		Usage:     "Show recurring tasks due today",
		UsageText: "para due",
		Description: `Lists the recurring main-tree tasks whose rule fires today.

Examples:
  para due`,
		Action: cmd.runDue,
	}
}

func (cmd *StatusCmd) runStatus(ctx context.Context, c *cli.Command) error {
	p := printer.New(c.Root().Writer)

	infos, err := cmd.app.Service.Stale(cmd.scope, cmd.limit, cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	if len(infos) == 0 {
		p.Successf("nothing stale")
		return nil
	}
	for _, info := range infos {
		p.Line(cmd.app.renderInfo(info))
	}
	return nil
}

func (cmd *StatusCmd) runDue(ctx context.Context, c *cli.Command) error {
	p := printer.New(c.Root().Writer)

	infos, err := cmd.app.Service.DueToday(cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	if len(infos) == 0 {
		p.Infof("nothing due today")
		return nil
	}
	for _, info := range infos {
		p.Line(cmd.app.renderInfo(info))
	}
	return nil
}
