package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/acrodrill/internal/app"
	"github.com/hay-kot/acrodrill/internal/core/card"
	"github.com/hay-kot/acrodrill/pkg/iojson"
)

type ShowCmd struct {
	flags *Flags
	app   *app.App

	jsonOutput bool
	open       bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags, app *app.App) *ShowCmd {
	return &ShowCmd{flags: flags, app: app}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Look up a single card by key",
		UsageText: "acrodrill show [--json] [--open] KEY",
		Description: `Looks up KEY case-insensitively. A key that matches exactly, including
case, wins over other case variants.

When writing to a terminal the card is rendered as markdown.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "open",
				Aliases:     []string{"o"},
				Usage:       "open the card's reference links in the browser",
				Destination: &cmd.open,
			},
		},
		ShellComplete: KeyCompleter(cmd.app),
		Action:        cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	key := strings.TrimSpace(c.Args().First())
	if key == "" {
		return fmt.Errorf("a KEY argument is required")
	}

	if _, err := cmd.app.Cards.Reload(ctx); err != nil {
		return fmt.Errorf("load cards: %w", err)
	}

	found, ok := cmd.app.Cards.Lookup(key)
	if !ok {
		if cmd.jsonOutput {
			if err := iojson.WriteError(c.Root().Writer, "no card matches", map[string]any{"key": key}); err != nil {
				return err
			}
			return cli.Exit("", 1)
		}
		return cli.Exit(fmt.Sprintf("no card matches %q", key), 1)
	}

	if cmd.open {
		if err := cmd.app.OpenReferences(ctx, found); err != nil {
			return fmt.Errorf("open references: %w", err)
		}
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.Write(out, found)
	}

	md := cardMarkdown(found)
	if width, ok := terminalWidth(out); ok {
		rendered, err := renderMarkdown(md, width)
		if err == nil {
			_, err = io.WriteString(out, rendered)
			return err
		}
		log.Debug().Err(err).Msg("render card markdown")
	}

	_, err := io.WriteString(out, md)
	return err
}

// cardMarkdown formats a card as a small markdown document.
func cardMarkdown(c card.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Key)
	for _, v := range c.Values {
		fmt.Fprintf(&b, "- %s\n", strings.ReplaceAll(v, "\n", " "))
	}
	if urls := c.URLs(); len(urls) > 0 {
		b.WriteString("\n## References\n\n")
		for _, u := range urls {
			fmt.Fprintf(&b, "- <%s>\n", u)
		}
	}
	return b.String()
}

func renderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// terminalWidth returns the width of w when it is an interactive terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80, true
	}
	return width, true
}
