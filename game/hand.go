package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.StartingHand)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) LegalIndices(top card.Card) []int {
	return LegalIndices(h.cards, top)
}

// RemoveAt keeps the order of the remaining cards, so indices shown to a
// human stay meaningful.
func (h *Hand) RemoveAt(index int) card.Card {
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Points() int {
	return Score(h.cards)
}
