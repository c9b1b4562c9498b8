package game

import (
	"fmt"
	"slices"

	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
)

// The methods below feed external decisions to seats whose strategy is an
// InputReceiver. The decision is taken up by the next Advance.

func (t *Table) DiscardChosen(seat, index int) error {
	player, receiver, err := t.externalSeat(seat)
	if err != nil {
		return err
	}
	if player != t.players.Current() {
		return fmt.Errorf("%w: seat %d", consts.ErrorsNotYourTurn, seat)
	}
	if !player.awaitingDiscard() {
		return fmt.Errorf("%w: seat %d is not choosing a card", consts.ErrorsInvalidMove, seat)
	}
	if !slices.Contains(t.LegalMoves(seat), index) {
		return fmt.Errorf("%w: %s cannot play card %d on %s", consts.ErrorsInvalidMove, player.Name(), index, t.pile.Top())
	}
	receiver.ReceiveDiscard(index)
	return nil
}

func (t *Table) ColorChosen(seat int, chosen color.Color) error {
	player, receiver, err := t.externalSeat(seat)
	if err != nil {
		return err
	}
	if player != t.players.Current() {
		return fmt.Errorf("%w: seat %d", consts.ErrorsNotYourTurn, seat)
	}
	if !player.awaitingColor {
		return fmt.Errorf("%w: seat %d is not choosing a color", consts.ErrorsInvalidMove, seat)
	}
	if !chosen.Valid() {
		return fmt.Errorf("%w: %w: %s", consts.ErrorsInvalidMove, consts.ErrorsColorInvalid, chosen.Name())
	}
	receiver.ReceiveColor(chosen)
	return nil
}

// LowCardDeclared accepts a declaration while the seat's low-card window is
// open, or ahead of time during its own turn while it holds two cards.
func (t *Table) LowCardDeclared(seat int) error {
	player, _, err := t.externalSeat(seat)
	if err != nil {
		return err
	}
	switch {
	case player.lowCardOpen:
	case player == t.players.Current() && player.awaitingDiscard() && player.hand.Size() == 2:
	default:
		return fmt.Errorf("%w: seat %d has nothing to declare", consts.ErrorsInvalidMove, seat)
	}
	player.declaredLowCard = true
	return nil
}

func (t *Table) externalSeat(seat int) (*playerController, InputReceiver, error) {
	if t.phase != InProgress {
		return nil, nil, consts.ErrorsRoundOver
	}
	player, err := t.seat(seat)
	if err != nil {
		return nil, nil, err
	}
	receiver, ok := player.player.(InputReceiver)
	if !ok {
		return nil, nil, fmt.Errorf("%w: seat %d", consts.ErrorsNotExternallyDriven, seat)
	}
	return player, receiver, nil
}
