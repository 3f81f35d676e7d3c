package drill

import "github.com/hay-kot/acrodrill/internal/core/card"

// View is everything a presentation layer needs to render one frame.
type View struct {
	Card    card.Card
	HasCard bool

	// Position is 1-based; 0 when the active set is empty.
	Position int
	Total    int
	Filter   int

	Revealed      bool
	MarkedCorrect bool
	Result        Result
	ReviewMode    bool
	CanReview     bool

	LookingUp   bool
	LookupQuery string

	Score Score
}

// Empty reports whether the active set has no cards.
func (v View) Empty() bool { return v.Total == 0 }

// View snapshots the session for rendering.
func (s *Session) View() View {
	c, ok := s.Displayed()
	v := View{
		Card:          c,
		HasCard:       ok,
		Position:      s.index + 1,
		Total:         len(s.active),
		Filter:        s.filter,
		Revealed:      s.revealed,
		MarkedCorrect: s.markedCorrect,
		ReviewMode:    s.review,
		CanReview:     s.CanReview(),
		LookingUp:     s.mode == LookingUp,
		LookupQuery:   s.lookupQuery,
		Score:         s.Score(),
	}
	if s.index >= 0 {
		v.Result = s.results[s.index]
	}
	return v
}
