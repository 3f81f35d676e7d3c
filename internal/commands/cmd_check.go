package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/acrodrill/internal/app"
	"github.com/hay-kot/acrodrill/internal/printer"
	"github.com/hay-kot/acrodrill/pkg/iojson"
)

type CheckCmd struct {
	flags *Flags
	app   *app.App

	jsonOutput bool
	strict     bool
}

// NewCheckCmd creates a new check command
func NewCheckCmd(flags *Flags, app *app.App) *CheckCmd {
	return &CheckCmd{flags: flags, app: app}
}

// Register adds the check command to the application
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Report data-quality issues in the card sources",
		UsageText: "acrodrill check [--json] [--strict]",
		Description: `Loads every enabled source and lists keys that merged more than one
definition and any key, value or link that ends in a space.

With --strict, or strict: true in the config, any finding exits non-zero.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "exit non-zero when any issue is found",
				Destination: &cmd.strict,
			},
		},
		Action: cmd.run,
	})

	return app
}

// checkReport is the JSON output format for acrodrill check --json.
type checkReport struct {
	Cards  int  `json:"cards"`
	Clean  bool `json:"clean"`
	Strict bool `json:"strict"`
	app.Report
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	cards, err := cmd.app.Cards.Reload(ctx)
	if err != nil {
		return fmt.Errorf("load cards: %w", err)
	}

	if cmd.strict {
		cmd.app.Debug.SetStrict(true)
	}
	strict := cmd.app.Debug.Strict()
	report := cmd.app.Debug.Report()

	if cmd.jsonOutput {
		err := iojson.Write(c.Root().Writer, checkReport{
			Cards:  len(cards),
			Clean:  report.Clean(),
			Strict: strict,
			Report: report,
		})
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	} else {
		cmd.print(printer.Ctx(ctx), len(cards), report)
	}

	if strict && !report.Clean() {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *CheckCmd) print(p *printer.Printer, n int, report app.Report) {
	p.Section("Duplicate keys")
	if len(report.Duplicates) == 0 {
		p.CheckItem("none", "")
	}
	for _, c := range report.Duplicates {
		p.WarnItem(c.Key, c.Definition(" | "))
	}

	p.Printf("")
	p.Section("Trailing whitespace")
	if len(report.Whitespace) == 0 {
		p.CheckItem("none", "")
	}
	for _, w := range report.Whitespace {
		p.WarnItem(fmt.Sprintf("%s %s", w.Key, w.Field), fmt.Sprintf("%q", w.Text))
	}

	p.Printf("")
	if report.Clean() {
		p.Successf("%d cards, no issues", n)
		return
	}
	p.Warnf("%d cards, %d duplicate keys, %d whitespace issues", n, len(report.Duplicates), len(report.Whitespace))
}
