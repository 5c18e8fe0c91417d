package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/urfave/cli/v3"
)

// OpenCmd opens the task file in the configured editor.
type OpenCmd struct {
	flags *Flags
	app   *App
}

// NewOpenCmd creates a new open command.
func NewOpenCmd(flags *Flags, app *App) *OpenCmd {
	return &OpenCmd{flags: flags, app: app}
}

// Register adds the open command to the application.
func (cmd *OpenCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "open",
		Aliases:   []string{"o"},
		Usage:     "Open the task file in your editor",
		UsageText: "para open",
		Description: `Opens the task file in the configured editor ($EDITOR by
default). Direct edits are fine; the file is reparsed on the next
command.

Examples:
  para open`,
		Action: cmd.run,
	})
	return app
}

func (cmd *OpenCmd) run(ctx context.Context, c *cli.Command) error {
	editor := cmd.app.Config.Editor
	if editor == "" {
		return fmt.Errorf("no editor configured; set editor in the config or $EDITOR")
	}

	// The editor value may carry arguments, e.g. "code --wait".
	parts := strings.Fields(editor)
	args := append(parts[1:], cmd.app.Service.Store().Path)

	ed := exec.CommandContext(ctx, parts[0], args...)
	ed.Stdin = os.Stdin
	ed.Stdout = os.Stdout
	ed.Stderr = os.Stderr
	if err := ed.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", parts[0], err)
	}
	return nil
}
