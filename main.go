package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/paratrooper/internal/commands"
	"github.com/colonyops/paratrooper/internal/core/config"
	"github.com/colonyops/paratrooper/internal/core/styles"
	"github.com/colonyops/paratrooper/internal/core/task"
	"github.com/colonyops/paratrooper/internal/core/taskfile"
	"github.com/colonyops/paratrooper/internal/para"
	"github.com/colonyops/paratrooper/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		paraApp   = &commands.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "para",
		Usage:     "Plain-text task tracking with daily lists",
		UsageText: "para [global options] command [command options]",
		Description: `Para keeps every task in one plain-text file you can read and edit
by hand. Tasks live in a permanent tree of sections; each morning
'para daily' builds a fresh daily list from recurring rules and
yesterday's leftovers, and 'para sync' pushes completions back.

Run 'para' with no arguments to show today's list.
Run 'para init' to set up the config and task file.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("PARA_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("PARA_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("PARA_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "task file path (overrides config)",
				Sources:     cli.EnvVars("PARA_FILE"),
				Destination: &flags.TaskFile,
			},
			&cli.StringFlag{
				Name:        "today",
				Usage:       "treat this date (DD-MM-YYYY) as today",
				Sources:     cli.EnvVars("PARA_TODAY"),
				Destination: &flags.Today,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.TaskFile != "" {
				cfg.TaskFile = flags.TaskFile
			}

			today := task.Today()
			if flags.Today != "" {
				today, err = task.ParseDate(flags.Today)
				if err != nil {
					return ctx, fmt.Errorf("parse --today: %w", err)
				}
			}

			// Validation ensures the theme name is known.
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			store := taskfile.NewFileStore(cfg.TaskFile)
			svcLogger := log.With().Str("component", "para").Logger()

			// Populate the pre-allocated App struct (commands already
			// hold a pointer to it).
			*paraApp = commands.App{
				Service: para.NewService(store, cfg, svcLogger),
				Config:  cfg,
				Icons:   styles.GetIcons(cfg.IconSet),
				Today:   today,
			}

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	showCmd := commands.NewShowCmd(flags, paraApp)

	app = commands.NewInitCmd(flags).Register(app)
	app = commands.NewAddCmd(flags, paraApp).Register(app)
	app = commands.NewDailyCmd(flags, paraApp).Register(app)
	app = commands.NewTaskCmd(flags, paraApp).Register(app)
	app = showCmd.Register(app)
	app = commands.NewStatusCmd(flags, paraApp).Register(app)
	app = commands.NewConfigCmd(flags, paraApp).Register(app)
	app = commands.NewOpenCmd(flags, paraApp).Register(app)

	// Showing today's list is the default action.
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'para --help' for usage", c.Args().First())
		}
		return showCmd.Today(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
