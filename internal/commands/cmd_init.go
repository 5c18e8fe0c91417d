package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/paratrooper/internal/core/config"
	"github.com/colonyops/paratrooper/internal/core/styles"
	"github.com/colonyops/paratrooper/internal/core/task"
	"github.com/colonyops/paratrooper/internal/core/taskfile"
	"github.com/colonyops/paratrooper/internal/para"
	"github.com/colonyops/paratrooper/internal/printer"
)

// InitCmd implements the interactive setup wizard.
type InitCmd struct {
	flags *Flags

	yes   bool
	force bool
}

// NewInitCmd creates a new init command.
func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

// Register adds the init command to the application.
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize para with an interactive wizard",
		UsageText: "para init [options]",
		Description: `Sets up para for first-time use.

The wizard will:
  - Generate the config file with your choices
  - Create the task file with a starter section

Use --yes to accept all defaults without prompts.
Use --force to overwrite an existing config.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.New(c.Root().Writer)

	configPath := cmd.flags.ConfigPath
	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	if _, err := os.Stat(configPath); err == nil && !cmd.force {
		if cmd.yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", configPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(configPath + "\nOverwrite?").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("init cancelled")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if cmd.flags.TaskFile != "" {
		cfg.TaskFile = cmd.flags.TaskFile
	}

	if !cmd.yes {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Task file").
				Description("Path of the plain-text task file").
				Value(&cfg.TaskFile),
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(styles.ThemeNames()...)...).
				Value(&cfg.Theme),
			huh.NewSelect[string]().
				Title("Icons").
				Options(huh.NewOptions(
					config.IconSetDefault,
					config.IconSetDots,
					config.IconSetCheck,
					config.IconSetSimple,
				)...).
				Value(&cfg.IconSet),
			huh.NewConfirm().
				Title("Carry over unfinished tasks?").
				Description("Pull yesterday's unfinished tasks into each new day").
				Value(&cfg.CarryOver),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return report(p, err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("wrote %s", configPath)

	store := taskfile.NewFileStore(cfg.TaskFile)
	if store.Exists() {
		p.Infof("task file %s already exists, leaving it alone", cfg.TaskFile)
		return nil
	}

	doc := task.NewDocument()
	doc.EnsureSection(para.DefaultSection)
	if err := store.Save(doc); err != nil {
		return fmt.Errorf("create task file: %w", err)
	}
	p.Successf("created %s", cfg.TaskFile)
	p.Infof("run para add \"your first task\" to get going")
	return nil
}
