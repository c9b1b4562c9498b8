package player

import (
	"math/rand/v2"

	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
)

// naivePlayer picks uniformly at random among its legal cards and the four
// colors.
type naivePlayer struct {
	basicPlayer
	rng *rand.Rand
}

func NewNaivePlayer(name string, rng *rand.Rand) game.Player {
	return naivePlayer{basicPlayer: basicPlayer{name: name}, rng: rng}
}

func (p naivePlayer) ChooseColor(gameState game.State) (color.Color, bool) {
	return color.All[p.rng.IntN(len(color.All))], true
}

func (p naivePlayer) ChooseDiscard(legal []int, gameState game.State) (int, bool) {
	if len(legal) == 0 {
		return 0, false
	}
	return legal[p.rng.IntN(len(legal))], true
}
