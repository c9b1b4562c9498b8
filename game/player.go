package game

import (
	"github.com/ratel-online/uno/card/color"
)

// Player is the decision strategy behind a seat. Every method is a poll that
// returns at once; ok == false means there is no decision yet and the table
// asks again on a later tick.
type Player interface {
	Name() string
	ChooseDiscard(legal []int, state State) (index int, ok bool)
	ChooseColor(state State) (chosen color.Color, ok bool)
	// DeclaresLowCard reports whether the seat declares on its own when its
	// hand drops to one card. Externally driven seats declare through
	// Table.LowCardDeclared instead.
	DeclaresLowCard(state State) bool
	// DropInput forgets any buffered decision the seat can no longer use.
	// Self-driven strategies have nothing to drop.
	DropInput()
}

// InputReceiver is implemented by strategies that are driven by events from
// outside the table, such as a human at a terminal.
type InputReceiver interface {
	ReceiveDiscard(index int)
	ReceiveColor(chosen color.Color)
}
