package game

import (
	"github.com/ratel-online/uno/card"
)

// LegalIndices lists the positions of the cards in hand that may be played on
// top. An empty result means the holder has no legal move.
func LegalIndices(hand []card.Card, top card.Card) []int {
	legal := make([]int, 0, len(hand))
	for index, candidate := range hand {
		if candidate.Matches(top) {
			legal = append(legal, index)
		}
	}
	return legal
}

// Score adds up the points of every card still held.
func Score(hands ...[]card.Card) int {
	total := 0
	for _, hand := range hands {
		for _, held := range hand {
			total += held.Points()
		}
	}
	return total
}
