package leaderboard

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
)

// RoundResult is one finished round as the host saw it.
type RoundResult struct {
	ID      uuid.UUID
	Seq     int64
	Winner  string
	Players []string
	Score   int
	At      time.Time
}

// Standing is the running total of one player name.
type Standing struct {
	Name   string
	Wins   int
	Rounds int
	Points int
}

var roundIds int64 = 0
var rounds = hashmap.New()
var standings = hashmap.New()

// standingsLock serializes the read-modify-write of a standing.
var standingsLock sync.Mutex

// Record stores result and credits its players. The winner collects the
// score.
func Record(result RoundResult) RoundResult {
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	if result.At.IsZero() {
		result.At = time.Now()
	}
	result.Seq = atomic.AddInt64(&roundIds, 1)
	rounds.Set(result.Seq, &result)

	standingsLock.Lock()
	defer standingsLock.Unlock()
	for _, name := range result.Players {
		standing := getOrCreate(name)
		standing.Rounds++
		if name == result.Winner {
			standing.Wins++
			standing.Points += result.Score
		}
	}
	return result
}

func Get(name string) (Standing, bool) {
	standingsLock.Lock()
	defer standingsLock.Unlock()
	if v, ok := standings.Get(name); ok {
		return *v.(*Standing), true
	}
	return Standing{}, false
}

// Top returns at most n standings, best first: most points, then most wins,
// then by name.
func Top(n int) []Standing {
	list := make([]Standing, 0)
	standingsLock.Lock()
	standings.Foreach(func(e *hashmap.Entry) {
		list = append(list, *e.Value().(*Standing))
	})
	standingsLock.Unlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Points != list[j].Points {
			return list[i].Points > list[j].Points
		}
		if list[i].Wins != list[j].Wins {
			return list[i].Wins > list[j].Wins
		}
		return list[i].Name < list[j].Name
	})
	if n >= 0 && len(list) > n {
		list = list[:n]
	}
	return list
}

// Rounds lists every recorded round in the order it was recorded.
func Rounds() []RoundResult {
	list := make([]RoundResult, 0)
	rounds.Foreach(func(e *hashmap.Entry) {
		list = append(list, *e.Value().(*RoundResult))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].Seq < list[j].Seq
	})
	return list
}

func Reset() {
	standingsLock.Lock()
	defer standingsLock.Unlock()
	var seqs []int64
	rounds.Foreach(func(e *hashmap.Entry) {
		seqs = append(seqs, e.Value().(*RoundResult).Seq)
	})
	for _, seq := range seqs {
		rounds.Del(seq)
	}
	var names []string
	standings.Foreach(func(e *hashmap.Entry) {
		names = append(names, e.Value().(*Standing).Name)
	})
	for _, name := range names {
		standings.Del(name)
	}
}

func getOrCreate(name string) *Standing {
	if v, ok := standings.Get(name); ok {
		return v.(*Standing)
	}
	standing := &Standing{Name: name}
	standings.Set(name, standing)
	return standing
}
