package player

import (
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
)

// humanPlayer holds whatever the host last reported for the seat. A poll
// consumes the input it returns; with nothing buffered it has no decision.
type humanPlayer struct {
	basicPlayer
	discard *int
	color   color.Color
}

func NewHumanPlayer(name string) game.Player {
	return &humanPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p *humanPlayer) ChooseColor(gameState game.State) (color.Color, bool) {
	if p.color == color.None {
		return color.None, false
	}
	chosen := p.color
	p.color = color.None
	return chosen, true
}

func (p *humanPlayer) ChooseDiscard(legal []int, gameState game.State) (int, bool) {
	if p.discard == nil {
		return 0, false
	}
	index := *p.discard
	p.discard = nil
	return index, true
}

// DeclaresLowCard is always false: a human declares through the table.
func (p *humanPlayer) DeclaresLowCard(gameState game.State) bool {
	return false
}

func (p *humanPlayer) ReceiveDiscard(index int) {
	p.discard = &index
}

func (p *humanPlayer) ReceiveColor(chosen color.Color) {
	p.color = chosen
}

func (p *humanPlayer) DropInput() {
	p.discard = nil
	p.color = color.None
}
