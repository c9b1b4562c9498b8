package player

import (
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
)

type goodPlayer struct {
	basicPlayer
}

func NewGoodPlayer(name string) game.Player {
	return goodPlayer{basicPlayer: basicPlayer{name: name}}
}

// ChooseColor names the color held most often. Wilds count for every color.
func (p goodPlayer) ChooseColor(gameState game.State) (color.Color, bool) {
	colorCounts := make(map[color.Color]int)
	for _, held := range gameState.CurrentPlayerHand {
		if held.IsWildFamily() {
			for _, c := range color.All {
				colorCounts[c]++
			}
			continue
		}
		colorCounts[held.Color]++
	}

	mostFrequentColor := color.Blue
	mostFrequentColorAmount := 0
	for _, availableColor := range color.All {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor, true
}

// ChooseDiscard plays the legal card that leaves the most cards able to follow
// it.
func (p goodPlayer) ChooseDiscard(legal []int, gameState game.State) (int, bool) {
	if len(legal) == 0 {
		return 0, false
	}
	hand := gameState.CurrentPlayerHand
	mostDiscardableCardIndex := legal[0]
	maxSpareCards := 0

	for _, cardIndex := range legal {
		spareCards := 0
		for handIndex, handCard := range hand {
			if handIndex != cardIndex && handCard.Matches(hand[cardIndex]) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return mostDiscardableCardIndex, true
}
