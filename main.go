package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/acrodrill/internal/app"
	"github.com/hay-kot/acrodrill/internal/commands"
	"github.com/hay-kot/acrodrill/internal/core/config"
	"github.com/hay-kot/acrodrill/internal/core/styles"
	"github.com/hay-kot/acrodrill/internal/printer"
	"github.com/hay-kot/acrodrill/pkg/executil"
	"github.com/hay-kot/acrodrill/pkg/logutils"
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
	ctx := printer.NewContext(context.Background(), printer.New(os.Stderr))

	var (
		logCloser func()
		drillApp  = &app.App{}
	)

	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "acrodrill",
		Usage:     "Drill acronyms from CSV flashcard decks",
		UsageText: "acrodrill [global options] command [command options]",
		Description: `acrodrill merges one or more CSV decks (itemkey,itemvalue,itemlink) into a
single set of flashcards and drills them in the terminal.

Run 'acrodrill' with no arguments to start a drill.
Run 'acrodrill init' to create a config from the decks in a directory.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("ACRODRILL_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/acrodrill.log)",
				Sources:     cli.EnvVars("ACRODRILL_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("ACRODRILL_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("ACRODRILL_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringSliceFlag{
				Name:        "source",
				Aliases:     []string{"s"},
				Usage:       "CSV file or glob to load instead of the configured sources ('-' reads stdin); repeatable",
				Destination: &flags.Sources,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; the drill owns the terminal.
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "acrodrill.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			commands.ApplySourceOverrides(cfg, flags)
			flags.Config = cfg

			// Apply configured theme; an unknown name keeps the default
			// and is reported by 'config validate'.
			if palette, ok := styles.GetPalette(cfg.TUI.Theme); ok {
				styles.SetTheme(palette)
			}

			extra, err := commands.ExtraSources(flags, os.Stdin)
			if err != nil {
				return ctx, err
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*drillApp = *app.New(cfg, &executil.RealExecutor{}, app.Options{Extra: extra})

			log.Debug().
				Str("config", flags.ConfigPath).
				Int("sources", len(cfg.Sources)+len(extra)).
				Msg("acrodrill starting")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	drillCmd := commands.NewDrillCmd(flags, drillApp)

	root = drillCmd.Register(root)
	root = commands.NewLsCmd(flags, drillApp).Register(root)
	root = commands.NewShowCmd(flags, drillApp).Register(root)
	root = commands.NewCheckCmd(flags, drillApp).Register(root)
	root = commands.NewDoctorCmd(flags, drillApp).Register(root)
	root = commands.NewInitCmd(flags).Register(root)
	root = commands.NewConfigValidateCmd(flags).Register(root)

	// Drill is the default action when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'acrodrill --help' for usage", c.Args().First())
		}
		return drillCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := root.Run(ctx, os.Args)
	if runErr != nil {
		if msg := runErr.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		exitCode = 1
	}

	os.Exit(exitCode)
}
