package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/acrodrill/internal/app"
	"github.com/hay-kot/acrodrill/internal/tui"
)

type DrillCmd struct {
	flags *Flags
	app   *app.App

	watch bool
}

// NewDrillCmd creates the interactive drill command.
func NewDrillCmd(flags *Flags, app *app.App) *DrillCmd {
	return &DrillCmd{flags: flags, app: app}
}

// Register adds the drill command to the application
func (cmd *DrillCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "drill",
		Usage:     "Start an interactive flashcard drill",
		UsageText: "acrodrill drill [--watch]",
		Description: `Opens the flashcard screen over every enabled source.

With --watch, or tui.watch: true in the config, editing a source file
reloads the cards.

This is also what runs when acrodrill is started without a command.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "watch",
				Aliases:     []string{"w"},
				Usage:       "reload when a source file changes",
				Destination: &cmd.watch,
			},
		},
		Action: cmd.run,
	})

	return app
}

// Run executes the drill. Exported for use as default command.
func (cmd *DrillCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *DrillCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("drill needs an interactive terminal; use 'acrodrill ls' to print cards")
	}

	// Startup load errors are reported on the command line; later reloads
	// surface inside the TUI.
	if _, err := cmd.app.Cards.Reload(ctx); err != nil {
		return fmt.Errorf("load cards: %w", err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cmd.flags.WantsStdin() {
		opts = append(opts, tea.WithInputTTY())
	}

	var tuiOpts tui.Options
	if cmd.watch || cmd.app.Config.TUI.Watch {
		w, err := cmd.app.WatchSources()
		if err != nil {
			log.Warn().Err(err).Msg("source watching disabled")
		} else {
			defer func() { _ = w.Close() }()
			tuiOpts.Changes = w.Events()
		}
	}

	m := tui.New(ctx, cmd.app, tuiOpts)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	log.Debug().Msg("drill finished")
	return nil
}
