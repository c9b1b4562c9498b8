package player

import (
	"fmt"
	"math/rand/v2"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
)

const (
	StrategyNaive = "naive"
	StrategyGood  = "good"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers seats the human first, followed by numberOfPlayers-1 bots
// with distinct names.
func CreatePlayers(numberOfPlayers int, humanPlayerName string, strategy string, rng *rand.Rand) ([]game.Player, error) {
	if numberOfPlayers < consts.MinPlayers || numberOfPlayers > consts.MaxPlayers {
		return nil, fmt.Errorf("%w: %d players", consts.ErrorsPlayersInvalid, numberOfPlayers)
	}
	bots, err := generateBots(numberOfPlayers-1, strategy, rng)
	if err != nil {
		return nil, err
	}
	players := make([]game.Player, 0, numberOfPlayers)
	players = append(players, NewHumanPlayer(humanPlayerName))
	players = append(players, bots...)
	return players, nil
}

func generateBots(amount int, strategy string, rng *rand.Rand) ([]game.Player, error) {
	names := make([]string, len(botNames))
	copy(names, botNames)
	rng.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })

	bots := make([]game.Player, 0, amount)
	for _, botName := range names[:amount] {
		switch strategy {
		case StrategyNaive, "":
			bots = append(bots, NewNaivePlayer(botName, rng))
		case StrategyGood:
			bots = append(bots, NewGoodPlayer(botName))
		default:
			return nil, fmt.Errorf("%w: unknown bot strategy %q", consts.ErrorsPlayersInvalid, strategy)
		}
	}
	return bots, nil
}
