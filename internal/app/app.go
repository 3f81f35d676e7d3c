// Package app wires configuration, card loading, the debug collaborator and
// the reference opener into a single entry point for commands and the TUI.
package app

import (
	"context"
	"math/rand/v2"

	"github.com/hay-kot/acrodrill/internal/core/card"
	"github.com/hay-kot/acrodrill/internal/core/config"
	"github.com/hay-kot/acrodrill/internal/core/logging"
	"github.com/hay-kot/acrodrill/internal/core/reference"
	"github.com/hay-kot/acrodrill/internal/core/watch"
	"github.com/hay-kot/acrodrill/pkg/executil"
)

// App is the central entry point for all acrodrill operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Sources *SourceSet
	Cards   *CardService
	Debug   *DebugService
	Opener  *reference.Opener
	Config  *config.Config
}

// Options tweaks App construction, mostly for tests.
type Options struct {
	// Rand drives shuffling; nil uses the global source.
	Rand *rand.Rand
	// Extra sources are loaded alongside the configured ones.
	Extra []card.Source
}

// New constructs an App from the loaded configuration.
func New(cfg *config.Config, exec executil.Executor, opts Options) *App {
	sources := NewSourceSet(cfg.Sources, cfg.BaseDir)
	cards := NewCardService(sources, opts.Extra, cfg.Order, opts.Rand, logging.Component("cards"))

	return &App{
		Sources: sources,
		Cards:   cards,
		Debug:   NewDebugService(sources, cards, cfg.Strict, logging.Component("debug")),
		Opener:  reference.NewOpener(exec, cfg.OpenCommand),
		Config:  cfg,
	}
}

// OpenReferences opens every link of c in the browser.
func (a *App) OpenReferences(ctx context.Context, c card.Card) error {
	log := logging.Component("reference")

	n, err := a.Opener.Open(ctx, c)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Str("key", c.Key).Msg("open references")
		return err
	}
	log.Debug().Ctx(ctx).Str("key", c.Key).Int("urls", n).Msg("references opened")
	return nil
}

// WatchSources starts a watcher over the directories of every configured
// source. The caller closes it.
func (a *App) WatchSources() (*watch.Watcher, error) {
	return watch.New(a.Sources.WatchDirs(), logging.Component("watch"))
}
