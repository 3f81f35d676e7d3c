package app

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hay-kot/acrodrill/internal/core/card"
	"github.com/hay-kot/acrodrill/internal/core/config"
	"github.com/hay-kot/acrodrill/internal/core/logging"
)

// CardService loads the enabled sources into the card store.
type CardService struct {
	store   *card.Store
	sources *SourceSet
	extra   []card.Source
	order   config.Order
	log     zerolog.Logger

	randMu sync.Mutex
	rand   *rand.Rand
}

// NewCardService creates a service over sources. Extra sources, such as
// piped stdin, are always loaded after the configured ones. A nil r uses the
// global source.
func NewCardService(sources *SourceSet, extra []card.Source, order config.Order, r *rand.Rand, log zerolog.Logger) *CardService {
	return &CardService{
		store:   card.NewStore(),
		sources: sources,
		extra:   extra,
		order:   order,
		log:     log,
		rand:    r,
	}
}

// Reload resolves the enabled sources and replaces the loaded cards. On
// failure the previously loaded cards stay in place and the error is returned.
func (s *CardService) Reload(ctx context.Context) ([]card.Card, error) {
	srcs, err := s.sources.Resolve()
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Msg("resolve sources")
		return nil, err
	}
	srcs = append(srcs, s.extra...)

	cards, err := s.store.Load(srcs...)
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Int("sources", len(srcs)).Msg("load cards")
		return nil, err
	}

	if s.order == config.OrderShuffle {
		s.randMu.Lock()
		card.Shuffle(cards, s.rand)
		s.randMu.Unlock()
		s.store.Replace(cards)
	}

	for _, src := range srcs {
		s.log.Debug().Ctx(logging.WithSource(ctx, src.Name())).Msg("source loaded")
	}
	s.log.Info().Ctx(ctx).
		Int("sources", len(srcs)).
		Int("cards", len(cards)).
		Msg("cards loaded")

	return cards, nil
}

// Cards returns the currently loaded cards.
func (s *CardService) Cards() []card.Card {
	return s.store.Cards()
}

// Loading reports whether a reload is running.
func (s *CardService) Loading() bool {
	return s.store.Loading()
}

// Lookup finds a loaded card by key. An exact-case match wins; otherwise the
// case-insensitive match that sorts first is returned, so the result does not
// depend on the shuffled order.
func (s *CardService) Lookup(key string) (card.Card, bool) {
	var (
		match card.Card
		found bool
	)
	for _, c := range s.store.Cards() {
		if c.Key == key {
			return c, true
		}
		if strings.EqualFold(c.Key, key) && (!found || c.Key < match.Key) {
			match, found = c, true
		}
	}
	return match, found
}
