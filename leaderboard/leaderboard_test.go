package leaderboard

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	Reset()
	defer Reset()

	first := Record(RoundResult{Winner: "Ana", Players: []string{"Ana", "Zoe", "Udyr"}, Score: 40})
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.False(t, first.At.IsZero())

	id := uuid.New()
	second := Record(RoundResult{ID: id, Winner: "Zoe", Players: []string{"Ana", "Zoe"}, Score: 90})
	assert.Equal(t, id, second.ID)
	assert.Greater(t, second.Seq, first.Seq)

	ana, ok := Get("Ana")
	require.True(t, ok)
	assert.Equal(t, Standing{Name: "Ana", Wins: 1, Rounds: 2, Points: 40}, ana)

	udyr, ok := Get("Udyr")
	require.True(t, ok)
	assert.Equal(t, 0, udyr.Wins)
	assert.Equal(t, 1, udyr.Rounds)

	_, ok = Get("Nobody")
	assert.False(t, ok)

	recorded := Rounds()
	require.Len(t, recorded, 2)
	assert.Equal(t, "Ana", recorded[0].Winner)
	assert.Equal(t, "Zoe", recorded[1].Winner)
}

func TestTop(t *testing.T) {
	Reset()
	defer Reset()

	Record(RoundResult{Winner: "Ana", Players: []string{"Ana", "Zoe", "Jinx"}, Score: 50})
	Record(RoundResult{Winner: "Zoe", Players: []string{"Ana", "Zoe", "Jinx"}, Score: 50})
	Record(RoundResult{Winner: "Zoe", Players: []string{"Ana", "Zoe", "Jinx"}, Score: 10})

	top := Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, "Zoe", top[0].Name)
	assert.Equal(t, 60, top[0].Points)
	assert.Equal(t, "Ana", top[1].Name)

	all := Top(10)
	require.Len(t, all, 3)
	assert.Equal(t, "Jinx", all[2].Name)
	assert.Empty(t, Top(0))
}

func TestReset(t *testing.T) {
	Record(RoundResult{Winner: "Ana", Players: []string{"Ana", "Zoe"}, Score: 5})
	Reset()
	assert.Empty(t, Top(10))
	assert.Empty(t, Rounds())
	_, ok := Get("Ana")
	assert.False(t, ok)
}

func TestStandingsAreKeptPerName(t *testing.T) {
	Reset()
	defer Reset()

	names := make([]string, 0, 300)
	for i := 0; i < 300; i++ {
		names = append(names, fmt.Sprintf("bot-%03d", i))
	}
	Record(RoundResult{Winner: names[0], Players: names, Score: 7})
	Record(RoundResult{Winner: names[299], Players: names[200:], Score: 3})

	require.Len(t, Top(-1), 300)
	for i, name := range names {
		standing, ok := Get(name)
		require.True(t, ok, name)
		assert.Equal(t, name, standing.Name)
		if i >= 200 {
			assert.Equal(t, 2, standing.Rounds, name)
		} else {
			assert.Equal(t, 1, standing.Rounds, name)
		}
	}
	first, _ := Get(names[0])
	assert.Equal(t, 7, first.Points)
	last, _ := Get(names[299])
	assert.Equal(t, 3, last.Points)

	Reset()
	assert.Empty(t, Top(-1))
}
