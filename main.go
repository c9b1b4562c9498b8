package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/leaderboard"
	"github.com/ratel-online/uno/msg"
	"github.com/ratel-online/uno/player"
	"github.com/ratel-online/uno/ui"
)

const humanSeat = 0

var errInputClosed = errors.New("input closed")

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	configPath := flag.String("config", "", "YAML config file")
	rounds := flag.Int("rounds", 1, "rounds to play")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error(err)
			return
		}
		cfg = loaded
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))
	log.Infof("uno starting, seed %d, %d players\n", seed, cfg.Players)

	ui.Print(msg.Message.Welcome())
	lines := readLines()
	for round := 0; round < *rounds; round++ {
		if err := playRound(cfg, rng, lines); err != nil {
			if !errors.Is(err, errInputClosed) {
				log.Error(err)
			}
			break
		}
	}
	printLeaderboard(cfg.Leaderboard)
}

func readLines() <-chan string {
	lines := make(chan string)
	async.Async(func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	})
	return lines
}

func playRound(cfg *config.Config, rng *rand.Rand, lines <-chan string) error {
	players, err := player.CreatePlayers(cfg.Players, cfg.HumanName, cfg.BotStrategy, rng)
	if err != nil {
		return err
	}
	table, err := game.New(players, rng)
	if err != nil {
		return err
	}
	table.Events().Subscribe(ui.NewReporter(nil, humanSeat))

	interval := cfg.TickDuration()
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prompt := newPrompter(table, humanSeat)
	var tick uint64
	for table.Phase() == game.InProgress {
		select {
		case line, ok := <-lines:
			if !ok {
				return errInputClosed
			}
			prompt.handle(line)
		case <-ticker.C:
			tick++
			status := table.Advance(tick)
			if status.Err != nil && status.Phase == game.InProgress {
				ui.Println(status.Err)
				prompt.reset()
			}
			if status.Waiting && status.Active == humanSeat {
				prompt.show()
			}
		}
	}

	if err := table.Err(); err != nil {
		return err
	}
	winner, _ := table.Winner()
	names := make([]string, 0, table.PlayerCount())
	for seat := 0; seat < table.PlayerCount(); seat++ {
		name, _ := table.PlayerName(seat)
		names = append(names, name)
	}
	leaderboard.Record(leaderboard.RoundResult{
		ID:      table.ID(),
		Winner:  names[winner],
		Players: names,
		Score:   table.RoundScore(),
	})
	return nil
}

func printLeaderboard(n int) {
	standings := leaderboard.Top(n)
	if len(standings) == 0 {
		return
	}
	ui.Println("Leaderboard:")
	for rank, standing := range standings {
		ui.Print(msg.Message.LeaderboardEntry(rank+1, standing.Name, standing.Wins, standing.Points))
	}
}
