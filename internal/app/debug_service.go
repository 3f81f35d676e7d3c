package app

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/hay-kot/acrodrill/internal/core/card"
)

// Report holds the data-quality findings for the loaded cards.
type Report struct {
	Duplicates []card.Card            `json:"duplicates"`
	Whitespace []card.WhitespaceIssue `json:"whitespace"`
}

// Clean reports whether there are no findings.
func (r Report) Clean() bool {
	return len(r.Duplicates) == 0 && len(r.Whitespace) == 0
}

// DebugService backs the debug panel: source toggles, the strict flag and
// data-quality diagnostics.
type DebugService struct {
	sources *SourceSet
	cards   *CardService
	strict  atomic.Bool
	log     zerolog.Logger
}

// NewDebugService creates the debug collaborator.
func NewDebugService(sources *SourceSet, cards *CardService, strict bool, log zerolog.Logger) *DebugService {
	d := &DebugService{sources: sources, cards: cards, log: log}
	d.strict.Store(strict)
	return d
}

// Sources lists the configured sources with their active state.
func (d *DebugService) Sources() []SourceState {
	return d.sources.List()
}

// ToggleSource flips a source and reloads the cards with the updated set. If
// the reload fails the toggle is reverted so the set matches what is loaded.
func (d *DebugService) ToggleSource(ctx context.Context, name string) ([]card.Card, error) {
	enabled, err := d.sources.Toggle(name)
	if err != nil {
		return nil, err
	}
	d.log.Info().Ctx(ctx).Str("source", name).Bool("enabled", enabled).Msg("source toggled")

	cards, err := d.cards.Reload(ctx)
	if err != nil {
		_ = d.sources.SetEnabled(name, !enabled)
		return nil, err
	}
	return cards, nil
}

// Strict returns the strict-mode flag. The core ignores it; the presentation
// layer decides what strict means.
func (d *DebugService) Strict() bool { return d.strict.Load() }

// SetStrict sets the strict-mode flag.
func (d *DebugService) SetStrict(v bool) { d.strict.Store(v) }

// Report runs the diagnostics over the loaded cards.
func (d *DebugService) Report() Report {
	return Diagnose(d.cards.Cards())
}

// Diagnose runs the diagnostics over cards.
func Diagnose(cards []card.Card) Report {
	return Report{
		Duplicates: card.FindDuplicateKeys(cards),
		Whitespace: card.FindTrailingWhitespace(cards),
	}
}
