package game

import (
	"github.com/ratel-online/uno/card"
)

// playerController is the table's side of a seat: the hand and the flags of
// the turn in progress.
type playerController struct {
	seat   int
	player Player
	hand   *Hand

	hasDiscarded       bool
	hasDrawn           bool
	awaitingColor      bool
	pendingForcedDraws int

	// lowCardOpen is set when a play leaves one card and stays set until the
	// next turn starts.
	lowCardOpen     bool
	declaredLowCard bool
}

func newPlayerController(seat int, player Player) *playerController {
	return &playerController{
		seat:   seat,
		player: player,
		hand:   NewHand(),
	}
}

func (c *playerController) AddCards(cards []card.Card) {
	c.hand.AddCards(cards)
}

func (c *playerController) Hand() []card.Card {
	return c.hand.Cards()
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) NoCards() bool {
	return c.hand.Empty()
}

// awaitingDiscard reports whether the seat is in the phase where a card may be
// chosen.
func (c *playerController) awaitingDiscard() bool {
	return c.pendingForcedDraws == 0 && !c.awaitingColor && !c.hasDiscarded
}

func (c *playerController) resetTurn() {
	c.hasDiscarded = false
	c.hasDrawn = false
	c.awaitingColor = false
	if !c.lowCardOpen {
		c.declaredLowCard = false
	}
	c.player.DropInput()
}
