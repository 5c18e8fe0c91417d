package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/paratrooper/internal/printer"
)

// ConfigCmd implements the config inspection commands.
type ConfigCmd struct {
	flags *Flags
	app   *App
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags, app *App) *ConfigCmd {
	return &ConfigCmd{flags: flags, app: app}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration inspection commands",
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Print the resolved configuration",
				UsageText: "para config show",
				Description: `Prints the configuration after defaults and flag overrides are
applied, as YAML.

Examples:
  para config show`,
				Action: cmd.runShow,
			},
			{
				Name:      "validate",
				Usage:     "Validate the configuration file",
				UsageText: "para config validate",
				Action:    cmd.runValidate,
			},
		},
	})
	return app
}

func (cmd *ConfigCmd) runShow(ctx context.Context, c *cli.Command) error {
	out, err := yaml.Marshal(cmd.app.Config)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(c.Root().Writer, string(out))
	return nil
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	p := printer.New(c.Root().Writer)
	if err := cmd.app.Config.Validate(); err != nil {
		return report(p, err)
	}
	p.Successf("config ok")
	return nil
}
