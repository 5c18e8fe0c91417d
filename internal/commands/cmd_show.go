package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/paratrooper/internal/core/styles"
	"github.com/colonyops/paratrooper/internal/core/task"
	"github.com/colonyops/paratrooper/internal/printer"
)

// ShowCmd implements the read-only listing commands.
type ShowCmd struct {
	flags *Flags
	app   *App

	listAll bool
}

// NewShowCmd creates a new show command group.
func NewShowCmd(flags *Flags, app *App) *ShowCmd {
	return &ShowCmd{flags: flags, app: app}
}

// Register adds the listing commands to the application.
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		cmd.showCmd(),
		cmd.listCmd(),
		cmd.sectionsCmd(),
		cmd.viewCmd(),
	)
	return app
}

func (cmd *ShowCmd) showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Aliases:   []string{"s"},
		Usage:     "Show today's list, a task, or a section",
		UsageText: "para show [<id>|<section>]",
		Description: `Without arguments, shows today's daily list. A numeric ID shows
that task's full record; anything else is treated as a section
path.

Examples:
  para show
  para show 042
  para show WORK
  para show HOME:GARAGE`,
		Action: cmd.runShow,
	}
}

func (cmd *ShowCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List the main tree",
		UsageText: "para list [--all]",
		Description: `Lists every section of the main tree with its tasks. Completed
tasks are hidden unless --all is given.

Examples:
  para list
  para list --all`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "include completed tasks",
				Destination: &cmd.listAll,
			},
		},
		Action: cmd.runList,
	}
}

func (cmd *ShowCmd) sectionsCmd() *cli.Command {
	return &cli.Command{
		Name:      "sections",
		Usage:     "List sections with task counts",
		UsageText: "para sections",
		Description: `Lists the main tree's sections and subsections in file order
with open and done counts.

Examples:
  para sections`,
		Action: cmd.runSections,
	}
}

func (cmd *ShowCmd) viewCmd() *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "Render the task file as markdown",
		UsageText: "para view",
		Description: `Renders the raw task file through a terminal markdown renderer.

Examples:
  para view`,
		Action: cmd.runView,
	}
}

// Today runs the default no-command action: today's daily list.
func (cmd *ShowCmd) Today(ctx context.Context, c *cli.Command) error {
	return cmd.showToday(printer.New(c.Root().Writer))
}

func (cmd *ShowCmd) runShow(ctx context.Context, c *cli.Command) error {
	p := printer.New(c.Root().Writer)

	if c.NArg() == 0 {
		return cmd.showToday(p)
	}

	arg := c.Args().Get(0)
	if _, ok := task.ParseID(arg); ok {
		return cmd.showTask(p, arg)
	}
	return cmd.showSection(p, arg)
}

func (cmd *ShowCmd) showToday(p *printer.Printer) error {
	doc, err := cmd.app.Service.Document()
	if err != nil {
		return err
	}

	cur := doc.MostRecentDaily()
	if cur == nil || len(cur.Tasks) == 0 {
		p.Infof("nothing in the daily list; run para daily to roll over")
		return nil
	}

	p.Line(styles.StyleHeader.Render(cur.Date.String()))
	for _, t := range cur.Tasks {
		p.Line(cmd.app.renderTask(t))
	}
	return nil
}

func (cmd *ShowCmd) showTask(p *printer.Printer, id string) error {
	t, err := cmd.app.Service.Get(id)
	if err != nil {
		return report(p, err)
	}

	p.Line(cmd.app.renderTask(t))
	if !t.Date.IsZero() {
		p.Line(styles.StyleMuted.Render("  last touched " + t.Date.String()))
	}
	return nil
}

func (cmd *ShowCmd) showSection(p *printer.Printer, path string) error {
	doc, err := cmd.app.Service.Document()
	if err != nil {
		return err
	}

	sec := doc.FindSection(path)
	if sec == nil {
		p.Warnf("section %s not found", strings.ToUpper(path))
		return nil
	}

	cmd.renderSection(p, sec, strings.ToUpper(path))
	return nil
}

func (cmd *ShowCmd) runList(ctx context.Context, c *cli.Command) error {
	p := printer.New(c.Root().Writer)

	doc, err := cmd.app.Service.Document()
	if err != nil {
		return err
	}

	if len(doc.Main) == 0 {
		p.Infof("the main tree is empty; add a task with para add")
		return nil
	}
	for _, sec := range doc.Main {
		cmd.renderSection(p, sec, sec.Name)
	}
	return nil
}

func (cmd *ShowCmd) renderSection(p *printer.Printer, sec *task.Section, path string) {
	p.Line(styles.StyleSection.Render("# " + path))
	for _, t := range sec.Tasks {
		if !cmd.listAll && t.Status == task.StatusComplete {
			continue
		}
		p.Line("  " + cmd.app.renderTask(t))
	}
	for _, sub := range sec.Subsections {
		cmd.renderSection(p, sub, path+":"+sub.Name)
	}
}

func (cmd *ShowCmd) runSections(ctx context.Context, c *cli.Command) error {
	p := printer.New(c.Root().Writer)

	infos, err := cmd.app.Service.Sections()
	if err != nil {
		return err
	}

	for _, info := range infos {
		p.Line(fmt.Sprintf("%-30s %s", info.Path,
			styles.StyleMuted.Render(fmt.Sprintf("%d open, %d done", info.Open, info.Done))))
	}
	return nil
}

func (cmd *ShowCmd) runView(ctx context.Context, c *cli.Command) error {
	path := cmd.app.Service.Store().Path
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			p := printer.New(c.Root().Writer)
			p.Infof("no task file at %s yet", path)
			return nil
		}
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(termWidth()),
	)
	if err != nil {
		return err
	}

	out, err := r.Render(string(raw))
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(c.Root().Writer, out)
	return nil
}
