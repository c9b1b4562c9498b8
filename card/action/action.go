package action

import "fmt"

// Action describes one effect a card has once it lands on the discard pile.
type Action interface {
	fmt.Stringer
}

type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

func (a DrawCardsAction) String() string {
	return fmt.Sprintf("draw %d", a.amount)
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

func (ReverseTurnsAction) String() string {
	return "reverse"
}

type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

func (SkipTurnAction) String() string {
	return "skip"
}

type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

func (PickColorAction) String() string {
	return "pick color"
}
