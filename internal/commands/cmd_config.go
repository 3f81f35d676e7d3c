package commands

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/acrodrill/internal/printer"
	"github.com/hay-kot/acrodrill/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags      *Flags
	jsonOutput bool
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "acrodrill config validate [--json]",
				Description: "Validates the configuration file, checking that sources resolve to readable files, the theme exists and the open command is on PATH.",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// validationIssue is one field error in the JSON output.
type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)

	var issues []validationIssue
	if err != nil {
		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				issues = append(issues, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
			}
		} else {
			issues = append(issues, validationIssue{Field: "config", Message: err.Error()})
		}
	}

	if cmd.jsonOutput {
		out := struct {
			Valid  bool              `json:"valid"`
			Errors []validationIssue `json:"errors,omitempty"`
		}{
			Valid:  len(issues) == 0,
			Errors: issues,
		}
		if err := iojson.Write(c.Root().Writer, out); err != nil {
			return err
		}
	} else {
		p := printer.Ctx(ctx)
		for _, is := range issues {
			p.Errorf("%s: %s", is.Field, is.Message)
		}
		if len(issues) == 0 {
			p.Successf("Configuration is valid")
			return nil
		}
		p.Printf("")
		p.Errorf("%d error(s) found", len(issues))
	}

	if len(issues) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}
