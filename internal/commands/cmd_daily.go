package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/paratrooper/internal/printer"
)

// DailyCmd implements the daily rollover and sync commands.
type DailyCmd struct {
	flags *Flags
	app   *App

	quiet bool
}

// NewDailyCmd creates a new daily command group.
func NewDailyCmd(flags *Flags, app *App) *DailyCmd {
	return &DailyCmd{flags: flags, app: app}
}

// Register adds the daily lifecycle commands to the application.
func (cmd *DailyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		cmd.dailyCmd(),
		cmd.syncCmd(),
	)
	return app
}

func (cmd *DailyCmd) dailyCmd() *cli.Command {
	return &cli.Command{
		Name:      "daily",
		Aliases:   []string{"d"},
		Usage:     "Roll over to today's daily list",
		UsageText: "para daily [--quiet]",
		Description: `Creates today's daily list if it does not exist yet.

Due recurring tasks are placed first, then unfinished tasks carried
over from the previous day. Older daily lists move to the archive.
Running it twice on the same day is a no-op.

Examples:
  para daily
  para daily --quiet`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "quiet",
				Aliases:     []string{"q"},
				Usage:       "suppress the task listing after rollover",
				Destination: &cmd.quiet,
			},
		},
		Action: cmd.runDaily,
	}
}

func (cmd *DailyCmd) syncCmd() *cli.Command {
	return &cli.Command{
		Name:      "sync",
		Usage:     "Push daily completions back to the main tree",
		UsageText: "para sync",
		Description: `Propagates status changes from today's daily list to the main
tree. Completing a non-recurring task completes its main record;
recurring records only get their date refreshed. Daily-only tasks
are left untouched.

Examples:
  para sync`,
		Action: cmd.runSync,
	}
}

func (cmd *DailyCmd) runDaily(ctx context.Context, c *cli.Command) error {
	p := printer.New(c.Root().Writer)

	summary, err := cmd.app.Service.Rollover(cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	if summary.AlreadyExisted {
		p.Infof("daily list for %s already exists", summary.Date)
	} else {
		p.Successf("rolled over to %s: %d recurring, %d carried over, %d days archived",
			summary.Date, summary.Recurring, summary.CarriedOver, summary.Archived)
	}

	if !cmd.quiet && summary.Log != nil {
		for _, t := range summary.Log.Tasks {
			p.Line(cmd.app.renderTask(t))
		}
	}
	return nil
}

func (cmd *DailyCmd) runSync(ctx context.Context, c *cli.Command) error {
	p := printer.New(c.Root().Writer)

	summary, err := cmd.app.Service.Sync(cmd.app.Today)
	if err != nil {
		return report(p, err)
	}

	p.Successf("synced: %d completed, %d progressed, %d daily-only",
		summary.Completed, summary.Progressed, summary.Unmatched)
	return nil
}
