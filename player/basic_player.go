package player

import (
	"github.com/ratel-online/uno/game"
)

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

// DeclaresLowCard is the automated default: always declare.
func (p basicPlayer) DeclaresLowCard(gameState game.State) bool {
	return true
}

func (p basicPlayer) DropInput() {}
