// Package drill holds the state of one flashcard session: the length-filtered
// active set, the current position, per-card grades, review mode and manual
// lookup.
//
// Every operation runs to completion and leaves the session consistent;
// boundary conditions such as an empty active set are no-ops, never errors.
package drill

import (
	"slices"
	"strings"

	"github.com/hay-kot/acrodrill/internal/core/card"
)

// Result is the grade recorded for one active card.
type Result int

const (
	Untested Result = iota
	Correct
	Incorrect
)

func (r Result) String() string {
	switch r {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "untested"
	}
}

// Direction selects which way Advance moves.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Mode is either sequential browsing or a manual key lookup.
type Mode int

const (
	Browsing Mode = iota
	LookingUp
)

// Score counts graded cards. Untested cards are not counted.
type Score struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// Session is a single drill over a card set. It is not safe for concurrent use;
// the presentation layer drives it from one event at a time.
type Session struct {
	all    []card.Card
	active []card.Card
	filter int

	index   int // -1 when active is empty
	results []Result

	review        bool
	markedCorrect bool
	revealed      bool

	mode        Mode
	lookupQuery string
	lookupCard  card.Card
	lookupFound bool
}

// New starts a session over cards with no length filter.
func New(cards []card.Card) *Session {
	s := &Session{all: card.Clone(cards)}
	s.SetFilter(0)
	return s
}

// SetCards replaces the full card set, for example after a reload, and
// re-applies the current filter. If no card has the filtered length any more
// the filter falls back to 0. Prior grades are discarded.
func (s *Session) SetCards(cards []card.Card) {
	s.all = card.Clone(cards)
	filter := s.filter
	if !slices.Contains(card.LengthsPresent(s.all), filter) {
		filter = 0
	}
	s.SetFilter(filter)
}

// SetFilter activates the cards whose key length equals length, or every card
// when length is 0, and resets grading, review mode and lookup.
func (s *Session) SetFilter(length int) {
	if length < 0 {
		length = 0
	}
	s.filter = length

	s.active = s.active[:0:0]
	for _, c := range s.all {
		if length == 0 || c.KeyLength() == length {
			s.active = append(s.active, c)
		}
	}

	s.results = make([]Result, len(s.active))
	s.index = 0
	if len(s.active) == 0 {
		s.index = -1
	}
	s.review = false
	s.revealed = false
	s.markedCorrect = true
	s.clearLookup()
}

// Filter returns the active length filter, 0 meaning none.
func (s *Session) Filter() int { return s.filter }

// Lengths returns the filter choices for the full card set.
func (s *Session) Lengths() []int { return card.LengthsPresent(s.all) }

// Len returns the number of active cards.
func (s *Session) Len() int { return len(s.active) }

// Index returns the current position, or -1 when nothing is active.
func (s *Session) Index() int { return s.index }

// Active returns a copy of the active cards.
func (s *Session) Active() []card.Card { return card.Clone(s.active) }

// Results returns a copy of the grades, index-aligned with Active.
func (s *Session) Results() []Result { return slices.Clone(s.results) }

// Current returns the card at the current index, ignoring any lookup.
func (s *Session) Current() (card.Card, bool) {
	if s.index < 0 {
		return card.Card{}, false
	}
	return s.active[s.index], true
}

// RecordResult grades the current card. Review mode is switched off once no
// Incorrect grade remains. It is a no-op while looking up a key.
func (s *Session) RecordResult(isCorrect bool) {
	if s.mode == LookingUp || s.index < 0 {
		return
	}

	s.markedCorrect = isCorrect
	if isCorrect {
		s.results[s.index] = Correct
	} else {
		s.results[s.index] = Incorrect
	}

	if !s.CanReview() {
		s.review = false
	}
}

// MarkedCorrect is the grade that the next forward move will commit.
func (s *Session) MarkedCorrect() bool { return s.markedCorrect }

// SetMarkedCorrect sets the pending grade and records it immediately.
func (s *Session) SetMarkedCorrect(isCorrect bool) {
	if s.mode == LookingUp || s.index < 0 {
		return
	}
	s.RecordResult(isCorrect)
}

// ToggleMarkedCorrect flips the pending grade and records it.
func (s *Session) ToggleMarkedCorrect() {
	s.SetMarkedCorrect(!s.markedCorrect)
}

// Advance moves to the next or previous card. Only forward motion commits the
// pending grade for the card being left. In review mode the move skips to the
// nearest Incorrect card in that direction, wrapping around, and stays put if
// there is none. It is a no-op while looking up a key.
func (s *Session) Advance(dir Direction) {
	if s.mode == LookingUp || s.index < 0 {
		return
	}

	n := len(s.active)
	switch dir {
	case Forward:
		s.RecordResult(s.markedCorrect)
		if s.review {
			if i, ok := s.nextIncorrect(s.index); ok {
				s.index = i
			}
		} else {
			s.index = (s.index + 1) % n
		}
	case Backward:
		if s.review {
			if i, ok := s.prevIncorrect(s.index); ok {
				s.index = i
			}
		} else {
			s.index = (s.index - 1 + n) % n
		}
	}

	s.markedCorrect = s.results[s.index] != Incorrect
	s.revealed = false
}

// CanReview reports whether any card is graded Incorrect.
func (s *Session) CanReview() bool {
	return slices.Contains(s.results, Incorrect)
}

// ReviewMode reports whether navigation is limited to Incorrect cards.
func (s *Session) ReviewMode() bool { return s.review }

// ToggleReviewMode turns review mode on or off and reports the resulting
// state. Turning it on jumps to the first Incorrect card and pre-selects an
// Incorrect grade; the request is ignored when there is nothing to review
// and while a lookup is shown.
func (s *Session) ToggleReviewMode(on bool) bool {
	if s.mode == LookingUp {
		return s.review
	}
	if !on {
		s.review = false
		return false
	}

	i, ok := s.nextIncorrect(-1)
	if !ok {
		return s.review
	}

	s.review = true
	s.index = i
	s.markedCorrect = false
	s.revealed = false
	return true
}

// nextIncorrect searches forward from just after from, wrapping to index 0.
func (s *Session) nextIncorrect(from int) (int, bool) {
	n := len(s.results)
	for step := 1; step <= n; step++ {
		i := from + step
		if i >= n {
			i -= n
		}
		if i >= 0 && i < n && s.results[i] == Incorrect {
			return i, true
		}
	}
	return 0, false
}

// prevIncorrect searches backward from just before from, wrapping to the end.
func (s *Session) prevIncorrect(from int) (int, bool) {
	n := len(s.results)
	for step := 1; step <= n; step++ {
		i := ((from-step)%n + n) % n
		if s.results[i] == Incorrect {
			return i, true
		}
	}
	return 0, false
}

// ToggleReveal shows or hides the answer for the displayed card.
func (s *Session) ToggleReveal() {
	if _, ok := s.Displayed(); !ok {
		s.revealed = false
		return
	}
	s.revealed = !s.revealed
}

// Revealed reports whether the answer is visible.
func (s *Session) Revealed() bool { return s.revealed }

// Mode returns Browsing or LookingUp.
func (s *Session) Mode() Mode { return s.mode }

// Lookup resolves key against the active cards, case-insensitively, and enters
// LookingUp mode whether or not a card matches. An exact-case match wins over
// other case variants, so "KB" and "Kb" stay reachable individually.
func (s *Session) Lookup(key string) (card.Card, bool) {
	s.mode = LookingUp
	s.lookupQuery = key
	s.lookupCard, s.lookupFound = s.find(key)
	s.revealed = false
	return s.lookupCard, s.lookupFound
}

func (s *Session) find(key string) (card.Card, bool) {
	if key == "" {
		return card.Card{}, false
	}

	match := -1
	for i, c := range s.active {
		if c.Key == key {
			return c, true
		}
		if match < 0 && strings.EqualFold(c.Key, key) {
			match = i
		}
	}
	if match < 0 {
		return card.Card{}, false
	}
	return s.active[match], true
}

// ExitLookup returns to browsing at the current index.
func (s *Session) ExitLookup() {
	if s.mode != LookingUp {
		return
	}
	s.clearLookup()
	s.revealed = false
}

func (s *Session) clearLookup() {
	s.mode = Browsing
	s.lookupQuery = ""
	s.lookupCard = card.Card{}
	s.lookupFound = false
}

// Displayed returns the card the user should see: the lookup result while
// looking up, the current card otherwise.
func (s *Session) Displayed() (card.Card, bool) {
	if s.mode == LookingUp {
		return s.lookupCard, s.lookupFound
	}
	return s.Current()
}

// Score counts Correct and Incorrect grades.
func (s *Session) Score() Score {
	var sc Score
	for _, r := range s.results {
		switch r {
		case Correct:
			sc.Correct++
		case Incorrect:
			sc.Incorrect++
		}
	}
	return sc
}
