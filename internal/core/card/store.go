package card

import (
	"sync"
	"sync/atomic"
)

// Store owns the merged card set for the running application. Each Load
// replaces the set wholesale; a failed Load leaves the previous set in place.
type Store struct {
	busy atomic.Bool

	mu    sync.RWMutex
	cards []Card
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and merges sources, then swaps them in. Store is not reentrant:
// a Load issued while another is running returns ErrLoadInProgress.
func (s *Store) Load(sources ...Source) ([]Card, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrLoadInProgress
	}
	defer s.busy.Store(false)

	cards, err := Load(sources...)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cards = cards
	s.mu.Unlock()

	return Clone(cards), nil
}

// Replace swaps in an already merged card set.
func (s *Store) Replace(cards []Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = Clone(cards)
}

// Loading reports whether a Load is in flight.
func (s *Store) Loading() bool {
	return s.busy.Load()
}

// Cards returns a copy of the current set.
func (s *Store) Cards() []Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Clone(s.cards)
}

// Len returns the number of cards currently loaded.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}
