package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/card"
)

// State is what a strategy may see when it is asked for a decision.
type State struct {
	Seat               int
	LastPlayedCard     card.Card
	CurrentPlayerHand  []card.Card
	PlayerSequence     []string
	PlayerHandCounts   []int
	Direction          int
	PendingForcedDraws int
	DrawPileSize       int
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for seat, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[seat])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Seats: %s", strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}

func (t *Table) stateFor(player *playerController) State {
	playerSequence := make([]string, 0, t.players.Size())
	playerHandCounts := make([]int, 0, t.players.Size())

	t.players.ForEach(func(player *playerController) {
		playerSequence = append(playerSequence, player.Name())
		playerHandCounts = append(playerHandCounts, player.hand.Size())
	})

	return State{
		Seat:               player.seat,
		LastPlayedCard:     t.pile.Top(),
		CurrentPlayerHand:  player.Hand(),
		PlayerSequence:     playerSequence,
		PlayerHandCounts:   playerHandCounts,
		Direction:          t.players.Direction(),
		PendingForcedDraws: player.pendingForcedDraws,
		DrawPileSize:       t.deck.Size(),
	}
}
