package game

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck(testRng())
	cards := deck.Cards()
	require.Len(t, cards, consts.DeckSize)

	counts := make(map[card.Card]int)
	for _, c := range cards {
		counts[c]++
	}
	assert.Equal(t, 4, counts[card.NewWildCard()])
	assert.Equal(t, 4, counts[card.NewWildDrawFourCard()])
	for _, c := range color.All {
		assert.Equal(t, 1, counts[card.NewNumberCard(c, 0)])
		assert.Equal(t, 2, counts[card.NewNumberCard(c, 9)])
		assert.Equal(t, 2, counts[card.NewSkipCard(c)])
		assert.Equal(t, 2, counts[card.NewReverseCard(c)])
		assert.Equal(t, 2, counts[card.NewDrawTwoCard(c)])
	}
	for _, c := range cards {
		assert.Equal(t, c.IsWildFamily(), c.Color == color.None)
	}
}

func TestDraw(t *testing.T) {
	t.Run("takes_from_the_top", func(t *testing.T) {
		deck := newDeckOf(greens(1, 2, 3), testRng())
		cards, err := deck.Draw(2, NewPile())
		require.NoError(t, err)
		assert.Equal(t, greens(1, 2), cards)
		assert.Equal(t, 1, deck.Size())
	})

	t.Run("returns_no_cards_when_argument_is_zero", func(t *testing.T) {
		deck := NewDeck(testRng())
		cards, err := deck.Draw(0, NewPile())
		require.NoError(t, err)
		require.Empty(t, cards)
	})

	t.Run("refills_from_the_pile_midway", func(t *testing.T) {
		deck := newDeckOf(greens(1), testRng())
		pile := NewPile()
		for _, c := range greens(4, 5, 6) {
			pile.Add(c)
		}
		cards, err := deck.Draw(3, pile)
		require.NoError(t, err)
		require.Len(t, cards, 3)
		assert.Equal(t, card.NewNumberCard(color.Green, 1), cards[0])
		assert.ElementsMatch(t, greens(4, 5), cards[1:])
		assert.Equal(t, 1, pile.Size())
		assert.Equal(t, card.NewNumberCard(color.Green, 6), pile.Top())
		assert.Equal(t, 1, deck.Replenishments())
	})

	t.Run("fails_without_moving_cards", func(t *testing.T) {
		deck := newDeckOf(greens(1), testRng())
		pile := NewPile()
		pile.Add(card.NewNumberCard(color.Red, 2))
		pile.Add(card.NewNumberCard(color.Red, 3))
		_, err := deck.Draw(3, pile)
		require.ErrorIs(t, err, consts.ErrorsInsufficientCards)
		assert.Equal(t, 1, deck.Size())
		assert.Equal(t, 2, pile.Size())
	})

	t.Run("reports_deadlock_when_everything_is_spent", func(t *testing.T) {
		deck := newDeckOf(nil, testRng())
		pile := NewPile()
		pile.Add(card.NewNumberCard(color.Red, 2))
		_, err := deck.DrawOne(pile)
		require.ErrorIs(t, err, consts.ErrorsNoCardsToReplenish)
	})
}

func TestReplenish(t *testing.T) {
	t.Run("keeps_the_top_and_the_card_count", func(t *testing.T) {
		deck := newDeckOf(nil, testRng())
		pile := NewPile()
		for _, c := range greens(1, 2, 3, 4, 5) {
			pile.Add(c)
		}
		require.NoError(t, deck.Replenish(pile))
		assert.Equal(t, 4, deck.Size())
		assert.Equal(t, 1, pile.Size())
		assert.Equal(t, card.NewNumberCard(color.Green, 5), pile.Top())
		assert.ElementsMatch(t, greens(1, 2, 3, 4), deck.Cards())
	})

	t.Run("unbinds_wilds", func(t *testing.T) {
		deck := newDeckOf(nil, testRng())
		pile := NewPile()
		pile.Add(card.NewWildCard().Bind(color.Red))
		pile.Add(card.NewWildDrawFourCard().Bind(color.Blue))
		pile.Add(card.NewNumberCard(color.Blue, 3))
		require.NoError(t, deck.Replenish(pile))
		assert.ElementsMatch(t, []card.Card{card.NewWildCard(), card.NewWildDrawFourCard()}, deck.Cards())
	})

	t.Run("fails_with_a_single_discard", func(t *testing.T) {
		deck := newDeckOf(nil, testRng())
		pile := NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 3))
		require.ErrorIs(t, deck.Replenish(pile), consts.ErrorsNoCardsToReplenish)
		assert.Equal(t, 1, pile.Size())
	})
}
