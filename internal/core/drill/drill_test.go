package drill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/acrodrill/internal/core/card"
)

func mkCards(keys ...string) []card.Card {
	cards := make([]card.Card, len(keys))
	for i, k := range keys {
		cards[i] = card.Card{Key: k, Values: []string{"def " + k}, Links: []string{""}}
	}
	return cards
}

func keysOf(cards []card.Card) []string {
	keys := make([]string, len(cards))
	for i, c := range cards {
		keys[i] = c.Key
	}
	return keys
}

func TestSession_ForwardThenReviewScenario(t *testing.T) {
	s := New(mkCards("AC", "DC", "KB"))
	require.Equal(t, []Result{Untested, Untested, Untested}, s.Results())
	require.Equal(t, 0, s.Index())

	s.SetMarkedCorrect(false)
	s.Advance(Forward)
	assert.Equal(t, 1, s.Index())
	assert.False(t, s.ReviewMode())
	assert.True(t, s.MarkedCorrect(), "untested card defaults to correct")

	require.True(t, s.ToggleReviewMode(true))
	assert.Equal(t, 0, s.Index())
	assert.False(t, s.MarkedCorrect(), "review jump pre-selects incorrect")

	s.Advance(Forward)
	assert.Equal(t, 0, s.Index(), "only incorrect entry wraps to itself")
	assert.True(t, s.ReviewMode())
	assert.Equal(t, Incorrect, s.Results()[0])
}

func TestSession_ReviewEndsWhenNothingIncorrect(t *testing.T) {
	s := New(mkCards("AC", "DC", "KB"))
	s.RecordResult(false)
	require.True(t, s.ToggleReviewMode(true))

	s.SetMarkedCorrect(true)
	assert.False(t, s.ReviewMode())

	s.Advance(Forward)
	assert.Equal(t, 1, s.Index(), "plain navigation after review ended")
}

func TestSession_ReviewModeRequiresIncorrect(t *testing.T) {
	s := New(mkCards("AC", "DC"))
	assert.False(t, s.CanReview())
	assert.False(t, s.ToggleReviewMode(true))
	assert.False(t, s.ReviewMode())
	assert.Equal(t, 0, s.Index())
}

func TestSession_ReviewModeOffKeepsIndex(t *testing.T) {
	s := New(mkCards("AC", "DC", "KB"))
	s.Advance(Forward)
	s.SetMarkedCorrect(false)
	require.True(t, s.ToggleReviewMode(true))
	require.Equal(t, 1, s.Index())

	assert.False(t, s.ToggleReviewMode(false))
	assert.Equal(t, 1, s.Index())
}

func TestSession_PlainNavigationWraps(t *testing.T) {
	s := New(mkCards("AC", "DC", "KB"))

	s.Advance(Backward)
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, []Result{Untested, Untested, Untested}, s.Results(), "backward never grades")

	s.Advance(Forward)
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, Correct, s.Results()[2])
}

func TestSession_BackwardKeepsPriorGrade(t *testing.T) {
	s := New(mkCards("AC", "DC", "KB"))
	s.SetMarkedCorrect(false)
	s.Advance(Forward)
	s.Advance(Backward)

	assert.Equal(t, 0, s.Index())
	assert.Equal(t, Incorrect, s.Results()[0])
	assert.False(t, s.MarkedCorrect(), "landing on an incorrect card pre-selects incorrect")
}

func TestSession_ReviewNavigation(t *testing.T) {
	s := New(mkCards("A", "B", "C", "D", "E"))
	// Grade B and D incorrect, the rest correct.
	for i := 0; i < 5; i++ {
		s.SetMarkedCorrect(i != 1 && i != 3)
		s.Advance(Forward)
	}
	require.Equal(t, []Result{Correct, Incorrect, Correct, Incorrect, Correct}, s.Results())

	require.True(t, s.ToggleReviewMode(true))
	assert.Equal(t, 1, s.Index())

	s.Advance(Forward)
	assert.Equal(t, 3, s.Index())
	s.Advance(Forward)
	assert.Equal(t, 1, s.Index(), "wraps to first incorrect")

	s.Advance(Backward)
	assert.Equal(t, 3, s.Index(), "backward wraps to the end")
	s.Advance(Backward)
	assert.Equal(t, 1, s.Index())
}

func TestSession_ReviewNeverLandsOnNonIncorrect(t *testing.T) {
	s := New(mkCards("A", "B", "C", "D", "E", "F"))
	for i := 0; i < 6; i++ {
		s.SetMarkedCorrect(i%2 == 0)
		s.Advance(Forward)
	}
	require.True(t, s.ToggleReviewMode(true))

	for step := 0; step < 20; step++ {
		// Clear one incorrect card every few steps.
		s.SetMarkedCorrect(step%4 == 3)
		dir := Forward
		if step%3 == 0 {
			dir = Backward
		}
		s.Advance(dir)

		if !s.CanReview() {
			assert.False(t, s.ReviewMode())
			break
		}
		if s.ReviewMode() {
			assert.Equal(t, Incorrect, s.Results()[s.Index()])
		}
		assert.Len(t, s.Results(), s.Len())
	}
}

func TestSession_SetFilter(t *testing.T) {
	s := New(mkCards("AC", "DNS", "KB", "HTTPS", "IP"))
	s.SetMarkedCorrect(false)
	s.Advance(Forward)
	require.True(t, s.ToggleReviewMode(true))

	s.SetFilter(2)
	assert.Equal(t, []string{"AC", "KB", "IP"}, keysOf(s.Active()))
	assert.Equal(t, []Result{Untested, Untested, Untested}, s.Results())
	assert.Equal(t, 0, s.Index())
	assert.False(t, s.ReviewMode())
	assert.Equal(t, 2, s.Filter())

	s.SetFilter(0)
	assert.ElementsMatch(t, []string{"AC", "DNS", "KB", "HTTPS", "IP"}, keysOf(s.Active()))
	assert.Equal(t, []int{0, 2, 3, 5}, s.Lengths())
}

func TestSession_EmptyActiveSet(t *testing.T) {
	s := New(mkCards("AC", "DC"))
	s.SetFilter(7)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.Index())

	s.Advance(Forward)
	s.Advance(Backward)
	s.RecordResult(false)
	s.ToggleReveal()

	v := s.View()
	assert.True(t, v.Empty())
	assert.False(t, v.HasCard)
	assert.False(t, v.Revealed)
	assert.Equal(t, 0, v.Position)
	assert.False(t, s.ToggleReviewMode(true))
	assert.Equal(t, Score{}, s.Score())
}

func TestSession_SetCards(t *testing.T) {
	s := New(mkCards("AC", "DNS"))
	s.SetFilter(3)
	s.SetMarkedCorrect(false)

	s.SetCards(mkCards("TCP", "UDP", "IP"))
	assert.Equal(t, 3, s.Filter(), "filter kept when the length still exists")
	assert.Equal(t, []string{"TCP", "UDP"}, keysOf(s.Active()))
	assert.Equal(t, []Result{Untested, Untested}, s.Results())

	s.SetCards(mkCards("IP"))
	assert.Equal(t, 0, s.Filter(), "filter reset when the length disappears")
	assert.Equal(t, 1, s.Len())
}

func TestSession_Lookup(t *testing.T) {
	s := New(mkCards("Kb", "AC"))

	c, ok := s.Lookup("kb")
	require.True(t, ok)
	assert.Equal(t, "Kb", c.Key)
	assert.Equal(t, LookingUp, s.Mode())

	_, ok = s.Lookup("zz")
	assert.False(t, ok)
	assert.Equal(t, LookingUp, s.Mode())
	_, shown := s.Displayed()
	assert.False(t, shown)

	s.ExitLookup()
	assert.Equal(t, Browsing, s.Mode())
	shownCard, ok := s.Displayed()
	require.True(t, ok)
	assert.Equal(t, "Kb", shownCard.Key)
}

func TestSession_LookupPrefersExactCase(t *testing.T) {
	s := New(mkCards("Kb", "KB"))

	c, ok := s.Lookup("KB")
	require.True(t, ok)
	assert.Equal(t, "KB", c.Key)

	c, ok = s.Lookup("kb")
	require.True(t, ok)
	assert.Equal(t, "Kb", c.Key, "first case-insensitive match when no exact match")
}

func TestSession_LookupSuppressesNavigation(t *testing.T) {
	s := New(mkCards("AC", "DC", "KB"))
	s.Lookup("KB")

	s.Advance(Forward)
	s.RecordResult(false)
	s.SetMarkedCorrect(false)

	assert.Equal(t, 0, s.Index())
	assert.Equal(t, []Result{Untested, Untested, Untested}, s.Results())

	s.ExitLookup()
	s.Advance(Forward)
	assert.Equal(t, 1, s.Index())
}

func TestSession_LookupBlocksReviewToggle(t *testing.T) {
	s := New(mkCards("AC", "DC", "KB"))
	s.Advance(Forward)
	s.SetMarkedCorrect(false)
	s.Advance(Forward)
	require.Equal(t, 2, s.Index())
	require.True(t, s.CanReview())

	s.Lookup("AC")
	assert.False(t, s.ToggleReviewMode(true))
	assert.False(t, s.ReviewMode())
	assert.Equal(t, 2, s.Index(), "index does not move behind the lookup")
	assert.True(t, s.MarkedCorrect())

	s.ExitLookup()
	assert.True(t, s.ToggleReviewMode(true))
	assert.Equal(t, 1, s.Index())
}

func TestSession_LookupOnlySearchesActive(t *testing.T) {
	s := New(mkCards("AC", "DNS"))
	s.SetFilter(2)

	_, ok := s.Lookup("DNS")
	assert.False(t, ok)
}

func TestSession_Reveal(t *testing.T) {
	s := New(mkCards("AC", "DC"))
	s.ToggleReveal()
	assert.True(t, s.Revealed())

	s.Advance(Forward)
	assert.False(t, s.Revealed(), "moving hides the answer")
}

func TestSession_ScoreAndView(t *testing.T) {
	s := New(mkCards("AC", "DC", "KB"))
	s.SetMarkedCorrect(true)
	s.Advance(Forward)
	s.SetMarkedCorrect(false)
	s.Advance(Forward)

	assert.Equal(t, Score{Correct: 1, Incorrect: 1}, s.Score())

	v := s.View()
	assert.Equal(t, 3, v.Position)
	assert.Equal(t, 3, v.Total)
	assert.Equal(t, "KB", v.Card.Key)
	assert.True(t, v.CanReview)
	assert.Equal(t, Untested, v.Result)
	assert.True(t, v.MarkedCorrect)
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "untested", Untested.String())
	assert.Equal(t, "correct", Correct.String())
	assert.Equal(t, "incorrect", Incorrect.String())
}
