package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/acrodrill/internal/core/card"
	"github.com/hay-kot/acrodrill/internal/core/config"
	"github.com/hay-kot/acrodrill/internal/printer"
)

type InitCmd struct {
	flags *Flags
	dir   string
	yes   bool
	force bool
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a configuration from the CSV decks in a directory",
		UsageText: "acrodrill init [options]",
		Description: `Searches --dir recursively for *.csv files, lets you pick which ones to
drill, and writes the config file.

Use --yes to accept every deck with a valid header without prompts.
Use --force to overwrite an existing configuration (a .bak copy is kept).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "directory to search for CSV decks",
				Value:       ".",
				Destination: &cmd.dir,
			},
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

// deck is a CSV file found under the search directory.
type deck struct {
	Path  string
	Rows  int
	Err   error
	Label string
}

func (cmd *InitCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)
	configPath := cmd.flags.ConfigPath

	if configExists(configPath) && !cmd.force {
		if cmd.yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", configPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(configPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	decks, err := discoverDecks(cmd.dir)
	if err != nil {
		return err
	}
	if len(decks) == 0 {
		return fmt.Errorf("no *.csv files found under %s", cmd.dir)
	}

	selected := make([]string, 0, len(decks))
	for _, d := range decks {
		if d.Err == nil {
			selected = append(selected, d.Path)
		}
	}
	order := string(config.OrderShuffle)

	if !cmd.yes {
		selected, order, err = cmd.prompt(decks)
		if err != nil {
			return err
		}
	}
	if len(selected) == 0 {
		p.Warnf("No decks selected, nothing written")
		return nil
	}

	cfg := config.DefaultConfig()
	cfg.Order = config.Order(order)
	// Readable decks left unselected are written disabled so they can be
	// switched on later from the debug panel.
	var paths []string
	for _, d := range decks {
		if d.Err == nil || slices.Contains(selected, d.Path) {
			paths = append(paths, d.Path)
		}
	}
	cfg.Sources = sourcesFor(paths, selected)

	backup, err := backupConfig(configPath)
	if err != nil {
		return err
	}
	if backup != "" {
		p.Infof("Backed up existing config to %s", backup)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	p.Successf("Wrote %s with %d source(s)", configPath, len(cfg.Sources))
	for _, d := range decks {
		switch {
		case d.Err != nil:
			p.FailItem(d.Path, d.Err.Error())
		case slices.Contains(selected, d.Path):
			p.CheckItem(d.Path, fmt.Sprintf("%d rows", d.Rows))
		}
	}
	p.Printf("")
	p.Printf("Run 'acrodrill' to start drilling or 'acrodrill check' to look for data issues.")
	return nil
}

func (cmd *InitCmd) prompt(decks []deck) ([]string, string, error) {
	opts := make([]huh.Option[string], 0, len(decks))
	for _, d := range decks {
		opts = append(opts, huh.NewOption(d.Label, d.Path).Selected(d.Err == nil))
	}

	var (
		selected []string
		order    = string(config.OrderShuffle)
	)

	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Decks to drill").
			Description("Selected files are enabled; the others are added disabled").
			Options(opts...).
			Value(&selected),
		huh.NewSelect[string]().
			Title("Card order").
			Options(
				huh.NewOption("Shuffle on every load", string(config.OrderShuffle)),
				huh.NewOption("Sorted by key", string(config.OrderSorted)),
			).
			Value(&order),
	))
	if err := form.Run(); err != nil {
		return nil, "", err
	}
	return selected, order, nil
}

// discoverDecks finds every *.csv under dir and checks that it parses.
func discoverDecks(dir string) ([]deck, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	matches, err := doublestar.Glob(os.DirFS(abs), "**/*.csv", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", dir, err)
	}
	slices.Sort(matches)

	decks := make([]deck, 0, len(matches))
	for _, m := range matches {
		path := filepath.Join(abs, filepath.FromSlash(m))
		rows, err := card.ReadRows(card.FileSource{Path: path})

		d := deck{Path: path, Rows: len(rows), Err: err}
		if err != nil {
			d.Label = fmt.Sprintf("%s (unreadable)", m)
		} else {
			d.Label = fmt.Sprintf("%s (%d rows)", m, len(rows))
		}
		decks = append(decks, d)
	}
	return decks, nil
}

// sourcesFor names each path after its file stem, adding a numeric suffix
// when two files share one. Paths missing from enabled are disabled.
func sourcesFor(paths, enabled []string) []config.Source {
	seen := make(map[string]int, len(paths))
	out := make([]config.Source, 0, len(paths))
	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		name = strings.ToLower(strings.Join(strings.Fields(name), "-"))

		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s-%d", name, n)
		}
		src := config.Source{Name: name, Path: path}
		if !slices.Contains(enabled, path) {
			src.Enabled = config.BoolPtr(false)
		}
		out = append(out, src)
	}
	return out
}

// backupConfig creates a backup of existing config before overwriting.
// Returns empty string if no backup was needed (file doesn't exist).
func backupConfig(configPath string) (string, error) {
	content, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read existing config: %w", err)
	}

	backupPath := configPath + ".bak"
	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}
	return backupPath, nil
}

func configExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return err == nil
}
