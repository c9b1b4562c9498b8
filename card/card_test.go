package card_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  card.Card
		lastPlayedCard card.Card
		expectedResult bool
	}{
		{
			description:    "wild_card_is_always_playable",
			candidateCard:  card.NewWildCard(),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "wild_draw_four_card_is_always_playable",
			candidateCard:  card.NewWildDrawFourCard(),
			lastPlayedCard: card.NewDrawTwoCard(color.Red),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_color",
			candidateCard:  card.NewNumberCard(color.Blue, 5),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_number",
			candidateCard:  card.NewNumberCard(color.Red, 7),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_different_color_and_number",
			candidateCard:  card.NewNumberCard(color.Red, 5),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			expectedResult: false,
		},
		{
			description:    "zero_matches_zero",
			candidateCard:  card.NewNumberCard(color.Green, 0),
			lastPlayedCard: card.NewNumberCard(color.Yellow, 0),
			expectedResult: true,
		},
		{
			description:    "reverse_cards",
			candidateCard:  card.NewReverseCard(color.Red),
			lastPlayedCard: card.NewReverseCard(color.Blue),
			expectedResult: true,
		},
		{
			description:    "skip_cards",
			candidateCard:  card.NewSkipCard(color.Red),
			lastPlayedCard: card.NewSkipCard(color.Blue),
			expectedResult: true,
		},
		{
			description:    "draw_two_cards",
			candidateCard:  card.NewDrawTwoCard(color.Red),
			lastPlayedCard: card.NewDrawTwoCard(color.Blue),
			expectedResult: true,
		},
		{
			description:    "different_action_kinds_with_different_color",
			candidateCard:  card.NewReverseCard(color.Red),
			lastPlayedCard: card.NewDrawTwoCard(color.Blue),
			expectedResult: false,
		},
		{
			description:    "action_card_on_number_card_with_same_color",
			candidateCard:  card.NewReverseCard(color.Blue),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "number_card_on_action_card_with_different_color",
			candidateCard:  card.NewNumberCard(color.Blue, 7),
			lastPlayedCard: card.NewReverseCard(color.Red),
			expectedResult: false,
		},
		{
			description:    "bound_wild_then_card_with_same_color",
			candidateCard:  card.NewNumberCard(color.Blue, 7),
			lastPlayedCard: card.NewWildCard().Bind(color.Blue),
			expectedResult: true,
		},
		{
			description:    "bound_wild_then_card_with_different_color",
			candidateCard:  card.NewNumberCard(color.Red, 7),
			lastPlayedCard: card.NewWildDrawFourCard().Bind(color.Blue),
			expectedResult: false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expectedResult, scenario.candidateCard.Matches(scenario.lastPlayedCard))
		})
	}
}

func TestWildFamilyHasNoColorUntilBound(t *testing.T) {
	wild := card.NewWildDrawFourCard()
	assert.True(t, wild.IsWildFamily())
	assert.Equal(t, color.None, wild.Color)

	bound := wild.Bind(color.Green)
	assert.Equal(t, color.Green, bound.Color)
	assert.Equal(t, color.None, wild.Color, "binding returns a new value")
	assert.Equal(t, color.None, bound.Unbind().Color)

	number := card.NewNumberCard(color.Red, 3)
	assert.Equal(t, number, number.Bind(color.Blue))
	assert.Equal(t, number, number.Unbind())
}

func TestPoints(t *testing.T) {
	assert.Equal(t, 0, card.NewNumberCard(color.Red, 0).Points())
	assert.Equal(t, 9, card.NewNumberCard(color.Red, 9).Points())
	assert.Equal(t, 20, card.NewSkipCard(color.Blue).Points())
	assert.Equal(t, 20, card.NewReverseCard(color.Blue).Points())
	assert.Equal(t, 20, card.NewDrawTwoCard(color.Blue).Points())
	assert.Equal(t, 50, card.NewWildCard().Points())
	assert.Equal(t, 50, card.NewWildDrawFourCard().Bind(color.Red).Points())
}

func TestActions(t *testing.T) {
	assert.Empty(t, card.NewNumberCard(color.Red, 4).Actions())
	assert.Equal(t, []action.Action{action.NewSkipTurnAction()}, card.NewSkipCard(color.Red).Actions())
	assert.Equal(t, []action.Action{action.NewReverseTurnsAction()}, card.NewReverseCard(color.Red).Actions())
	assert.Equal(t, []action.Action{action.NewDrawCardsAction(2)}, card.NewDrawTwoCard(color.Red).Actions())
	assert.Equal(t, []action.Action{action.NewPickColorAction()}, card.NewWildCard().Actions())
	assert.Equal(t, []action.Action{
		action.NewPickColorAction(),
		action.NewDrawCardsAction(4),
	}, card.NewWildDrawFourCard().Actions())
}

func TestIsActionAndNumber(t *testing.T) {
	assert.False(t, card.NewNumberCard(color.Red, 5).IsAction())
	assert.Equal(t, 5, card.NewNumberCard(color.Red, 5).Number())
	assert.True(t, card.NewSkipCard(color.Red).IsAction())
	assert.True(t, card.NewWildCard().IsAction())
	assert.Equal(t, -1, card.NewWildCard().Number())
}

func TestString(t *testing.T) {
	assert.Contains(t, card.NewNumberCard(color.Red, 5).String(), "[5]")
	assert.Contains(t, card.NewNumberCard(color.Red, 5).String(), "(red)")
	assert.Equal(t, "+4!", card.NewWildDrawFourCard().String())
	assert.Equal(t, "[?]", card.NewSkipCard(color.Blue).Conceal().String())
	assert.Contains(t, card.NewSkipCard(color.Blue).Conceal().Reveal().String(), "(/)")
	assert.True(t, card.NewSkipCard(color.Blue).Conceal().Equal(card.NewSkipCard(color.Blue)))
	assert.Equal(t, "draw-two", card.DrawTwo.String())
	assert.Equal(t, "7", card.Seven.String())
}
