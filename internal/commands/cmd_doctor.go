package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/acrodrill/internal/app"
	"github.com/hay-kot/acrodrill/internal/core/doctor"
	"github.com/hay-kot/acrodrill/internal/printer"
	"github.com/hay-kot/acrodrill/pkg/iojson"
)

type DoctorCmd struct {
	flags *Flags
	app   *app.App

	jsonOutput bool
}

func NewDoctorCmd(flags *Flags, app *app.App) *DoctorCmd {
	return &DoctorCmd{flags: flags, app: app}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your acrodrill setup",
		UsageText:   "acrodrill doctor [--json]",
		Description: "Checks the config file, parses every configured source and looks for the tools used to open links and copy keys.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) checks() []doctor.Check {
	cfg := cmd.flags.Config
	return []doctor.Check{
		doctor.NewConfigCheck(cmd.flags.ConfigPath),
		doctor.NewSourcesCheck(cfg.Sources, cfg.BaseDir),
		doctor.NewToolsCheck(cmd.app.Opener.Command()),
	}
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	results := doctor.RunAll(ctx, cmd.checks())
	passed, warned, failed := doctor.Summary(results)

	if cmd.jsonOutput {
		err := iojson.Write(c.Root().Writer, struct {
			Healthy bool            `json:"healthy"`
			Summary summaryJSON     `json:"summary"`
			Checks  []doctor.Result `json:"checks"`
		}{
			Healthy: failed == 0,
			Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
			Checks:  results,
		})
		if err != nil {
			return err
		}
	} else {
		p := printer.Ctx(ctx)
		for _, result := range results {
			p.Section(result.Name)
			for _, item := range result.Items {
				switch item.Status {
				case doctor.StatusPass:
					p.CheckItem(item.Label, item.Detail)
				case doctor.StatusWarn:
					p.WarnItem(item.Label, item.Detail)
				case doctor.StatusFail:
					p.FailItem(item.Label, item.Detail)
				}
			}
		}
		p.Printf("%d passed, %d warnings, %d failed", passed, warned, failed)
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d check(s) failed", failed), 1)
	}
	return nil
}
