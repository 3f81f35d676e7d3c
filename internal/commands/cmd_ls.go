package commands

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/acrodrill/internal/app"
	"github.com/hay-kot/acrodrill/internal/core/card"
	"github.com/hay-kot/acrodrill/pkg/iojson"
)

type LsCmd struct {
	flags *Flags
	app   *app.App

	// flags
	length     int
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *app.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List merged cards",
		UsageText: "acrodrill ls [--length N] [--json]",
		Description: `Prints every merged card sorted by key with its definitions.

Use --length to keep only keys of that many characters and --json for one
JSON object per line.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "length",
				Aliases:     []string{"l"},
				Usage:       "only list keys of this length (0 = all)",
				Destination: &cmd.length,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.length < 0 {
		return fmt.Errorf("--length must not be negative")
	}

	cards, err := cmd.app.Cards.Reload(ctx)
	if err != nil {
		return fmt.Errorf("load cards: %w", err)
	}

	cards = slices.DeleteFunc(cards, func(cd card.Card) bool {
		return cmd.length > 0 && cd.KeyLength() != cmd.length
	})
	sortByKey(cards)

	if len(cards) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No cards found\n")
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, cd := range cards {
			if err := iojson.WriteLine(out, cd); err != nil {
				return fmt.Errorf("encode card: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KEY\tLEN\tDEFINITION")
	for _, cd := range cards {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n", cd.Key, cd.KeyLength(), cd.Definition(" | "))
	}
	return w.Flush()
}

// sortByKey orders cards the way the merge does, so listings are stable
// even when the configured order is shuffle.
func sortByKey(cards []card.Card) {
	slices.SortStableFunc(cards, func(a, b card.Card) int {
		if c := strings.Compare(strings.ToLower(a.Key), strings.ToLower(b.Key)); c != 0 {
			return c
		}
		return strings.Compare(a.Key, b.Key)
	})
}
