package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
)

// Table owns the piles and the seats of one round and drives the turn
// protocol. It is not safe for concurrent use: the host calls Advance and the
// input methods from a single goroutine.
type Table struct {
	id      uuid.UUID
	players *PlayerIterator
	deck    *Deck
	pile    *Pile
	events  *event.Dispatcher

	phase  Phase
	winner int
	score  int
	err    error

	started     bool
	turnStarted bool
}

// New seats players in the given order, deals the starting hands and flips
// the first discard. Seat 0 acts first and play goes to the left.
func New(players []Player, rng *rand.Rand) (*Table, error) {
	if len(players) < consts.MinPlayers || len(players) > consts.MaxPlayers {
		return nil, fmt.Errorf("%w: %d players, want %d to %d", consts.ErrorsPlayersInvalid, len(players), consts.MinPlayers, consts.MaxPlayers)
	}
	for seat, player := range players {
		if player == nil {
			return nil, fmt.Errorf("%w: seat %d is empty", consts.ErrorsPlayersInvalid, seat)
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	t := newTable(players, NewDeck(rng), NewPile())
	if err := t.deal(); err != nil {
		return nil, err
	}
	log.Infof("table %s opened with %d players, first card %s\n", t.id, len(players), t.pile.Top())
	return t, nil
}

func newTable(players []Player, deck *Deck, pile *Pile) *Table {
	return &Table{
		id:      uuid.New(),
		players: newPlayerIterator(players),
		deck:    deck,
		pile:    pile,
		events:  event.NewDispatcher(),
		phase:   InProgress,
		winner:  -1,
	}
}

func (t *Table) deal() error {
	var err error
	t.players.ForEach(func(player *playerController) {
		if err != nil {
			return
		}
		var hand []card.Card
		hand, err = t.deck.Draw(consts.StartingHand, t.pile)
		player.AddCards(hand)
	})
	if err != nil {
		return err
	}

	// A wild never opens the pile: it goes back under the deck.
	for {
		first, err := t.deck.DrawOne(t.pile)
		if err != nil {
			return err
		}
		if first.IsWildFamily() {
			t.deck.PutBottom(first)
			continue
		}
		t.pile.Add(first)
		return nil
	}
}

func (t *Table) ID() uuid.UUID {
	return t.id
}

// Events returns the table's dispatcher. Listeners run inside Advance.
func (t *Table) Events() *event.Dispatcher {
	return t.events
}

func (t *Table) seat(seat int) (*playerController, error) {
	player, ok := t.players.get(seat)
	if !ok {
		return nil, fmt.Errorf("%w: %d", consts.ErrorsSeatInvalid, seat)
	}
	return player, nil
}

func (t *Table) PlayerCount() int {
	return t.players.Size()
}

func (t *Table) PlayerName(seat int) (string, error) {
	player, err := t.seat(seat)
	if err != nil {
		return "", err
	}
	return player.Name(), nil
}

func (t *Table) ActivePlayer() int {
	return t.players.Current().seat
}

// LegalMoves lists the hand indices seat may play right now. It is empty
// outside the seat's discard phase.
func (t *Table) LegalMoves(seat int) []int {
	player, ok := t.players.get(seat)
	if !ok || t.phase != InProgress || player != t.players.Current() || !player.awaitingDiscard() {
		return []int{}
	}
	return player.hand.LegalIndices(t.pile.Top())
}

func (t *Table) TopOfDiscard() card.Card {
	return t.pile.Top()
}

func (t *Table) HandOf(seat int) ([]card.Card, error) {
	player, err := t.seat(seat)
	if err != nil {
		return nil, err
	}
	return player.Hand(), nil
}

// VisibleHandOf is the hand of seat as viewer sees it: face down unless it is
// the viewer's own.
func (t *Table) VisibleHandOf(viewer, seat int) ([]card.Card, error) {
	hand, err := t.HandOf(seat)
	if err != nil || viewer == seat {
		return hand, err
	}
	for i := range hand {
		hand[i] = hand[i].Conceal()
	}
	return hand, nil
}

// State is the view handed to the strategy of seat.
func (t *Table) State(seat int) (State, error) {
	player, err := t.seat(seat)
	if err != nil {
		return State{}, err
	}
	return t.stateFor(player), nil
}

func (t *Table) Phase() Phase {
	return t.phase
}

func (t *Table) Winner() (int, bool) {
	return t.winner, t.phase == RoundWon
}

// Score is the round total for the winner and zero for everyone else.
func (t *Table) Score(seat int) int {
	if t.phase != RoundWon || seat != t.winner {
		return 0
	}
	return t.score
}

func (t *Table) RoundScore() int {
	return t.score
}

// Err is the error that aborted the round, if any.
func (t *Table) Err() error {
	return t.err
}

func (t *Table) Direction() int {
	return t.players.Direction()
}

func (t *Table) PendingForcedDraws(seat int) int {
	player, ok := t.players.get(seat)
	if !ok {
		return 0
	}
	return player.pendingForcedDraws
}

func (t *Table) AwaitingColor(seat int) bool {
	player, ok := t.players.get(seat)
	return ok && player.awaitingColor
}

func (t *Table) DrawPileSize() int {
	return t.deck.Size()
}

func (t *Table) DiscardPileSize() int {
	return t.pile.Size()
}
