package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/event"
)

// resolve applies the effects of a card once it is on the pile with its color
// bound, then ends the turn or the round.
func (t *Table) resolve(current *playerController, played card.Card) {
	skips := 0
	for _, cardAction := range played.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			t.players.Peek().pendingForcedDraws += cardAction.Amount()
		case action.ReverseTurnsAction:
			direction := t.players.Reverse()
			t.events.DirectionReversed.Emit(event.DirectionReversedPayload{Direction: direction})
			if t.players.Size() == 2 {
				skips++
			}
		case action.SkipTurnAction:
			skips++
		case action.PickColorAction:
			// bound before resolve is called
		}
	}

	if current.NoCards() {
		t.win(current)
		return
	}
	for ; skips > 0; skips-- {
		skipped := t.players.Next()
		t.events.TurnSkipped.Emit(event.TurnSkippedPayload{Seat: skipped.seat, PlayerName: skipped.Name()})
	}
	t.endTurn(current)
}
