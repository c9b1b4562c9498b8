package game

import (
	"math/rand/v2"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// scriptedPlayer answers from queues. An empty queue means no decision.
type scriptedPlayer struct {
	name     string
	discards []int
	colors   []color.Color
	declares bool
}

func (p *scriptedPlayer) Name() string {
	return p.name
}

func (p *scriptedPlayer) ChooseDiscard(legal []int, state State) (int, bool) {
	if len(p.discards) == 0 {
		return 0, false
	}
	index := p.discards[0]
	p.discards = p.discards[1:]
	return index, true
}

func (p *scriptedPlayer) ChooseColor(state State) (color.Color, bool) {
	if len(p.colors) == 0 {
		return color.None, false
	}
	chosen := p.colors[0]
	p.colors = p.colors[1:]
	return chosen, true
}

func (p *scriptedPlayer) DeclaresLowCard(state State) bool {
	return p.declares
}

func (p *scriptedPlayer) DropInput() {}

// firstLegalPlayer always plays its first legal card and picks red.
type firstLegalPlayer struct {
	name string
}

func (p firstLegalPlayer) Name() string {
	return p.name
}

func (p firstLegalPlayer) ChooseDiscard(legal []int, state State) (int, bool) {
	return legal[0], true
}

func (p firstLegalPlayer) ChooseColor(state State) (color.Color, bool) {
	return color.Red, true
}

func (p firstLegalPlayer) DeclaresLowCard(state State) bool {
	return true
}

func (p firstLegalPlayer) DropInput() {}

// remotePlayer is driven through the table's input methods.
type remotePlayer struct {
	name    string
	discard *int
	color   color.Color
}

func (p *remotePlayer) Name() string {
	return p.name
}

func (p *remotePlayer) ChooseDiscard(legal []int, state State) (int, bool) {
	if p.discard == nil {
		return 0, false
	}
	index := *p.discard
	p.discard = nil
	return index, true
}

func (p *remotePlayer) ChooseColor(state State) (color.Color, bool) {
	if p.color == color.None {
		return color.None, false
	}
	chosen := p.color
	p.color = color.None
	return chosen, true
}

func (p *remotePlayer) DeclaresLowCard(state State) bool {
	return false
}

func (p *remotePlayer) ReceiveDiscard(index int) {
	p.discard = &index
}

func (p *remotePlayer) ReceiveColor(chosen color.Color) {
	p.color = chosen
}

func (p *remotePlayer) DropInput() {
	p.discard = nil
	p.color = color.None
}

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// riggedTable seats players with fixed hands over a fixed deck and a single
// discard.
func riggedTable(players []Player, hands [][]card.Card, top card.Card, deck []card.Card) *Table {
	t := newTable(players, newDeckOf(deck, testRng()), NewPile())
	for seat, hand := range hands {
		t.players.players[seat].AddCards(hand)
	}
	t.pile.Add(top)
	return t
}

func greens(numbers ...int) []card.Card {
	cards := make([]card.Card, 0, len(numbers))
	for _, number := range numbers {
		cards = append(cards, card.NewNumberCard(color.Green, number))
	}
	return cards
}

func totalCards(t *Table) int {
	total := t.deck.Size() + t.pile.Size()
	t.players.ForEach(func(player *playerController) {
		total += player.hand.Size()
	})
	return total
}

type tableSnapshot struct {
	deck        []card.Card
	pile        []card.Card
	hands       [][]card.Card
	seats       []playerController
	current     int
	direction   int
	phase       Phase
	turnStarted bool
}

func snapshot(t *Table) tableSnapshot {
	s := tableSnapshot{
		deck:        t.deck.Cards(),
		pile:        t.pile.Cards(),
		current:     t.players.cycler.Current(),
		direction:   t.players.Direction(),
		phase:       t.phase,
		turnStarted: t.turnStarted,
	}
	t.players.ForEach(func(player *playerController) {
		s.hands = append(s.hands, player.Hand())
		s.seats = append(s.seats, *player)
	})
	return s
}
