package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
)

// Advance runs one tick. It commits at most one action: a forced draw, an
// automatic draw, a discard together with its color when the strategy has one
// ready, or a color choice. When the active strategy has
// no decision yet nothing changes and the status reports Waiting.
func (t *Table) Advance(tick uint64) Status {
	if t.phase != InProgress {
		return t.status(tick, false, nil)
	}
	if !t.started {
		t.started = true
		t.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: t.pile.Top()})
	}

	changed := false
	if !t.turnStarted {
		t.turnStarted = true
		changed = t.closeLowCardWindows()
	}

	committed, err := t.step(t.players.Current())
	if err != nil && fatal(err) {
		t.abort(err)
	}
	return t.status(tick, changed || committed, err)
}

func (t *Table) step(current *playerController) (bool, error) {
	switch {
	case current.pendingForcedDraws > 0:
		return t.forcedDraw(current)
	case current.awaitingColor:
		return t.pollColor(current)
	default:
		return t.pollDiscard(current)
	}
}

// forcedDraw draws one owed card. The draw that settles the debt ends the
// turn without a discard.
func (t *Table) forcedDraw(current *playerController) (bool, error) {
	if _, err := t.draw(current, 1, true); err != nil {
		return false, err
	}
	current.pendingForcedDraws--
	if current.pendingForcedDraws == 0 {
		t.endTurn(current)
	}
	return true, nil
}

func (t *Table) pollDiscard(current *playerController) (bool, error) {
	top := t.pile.Top()
	legal := current.hand.LegalIndices(top)
	if len(legal) == 0 {
		if !current.hasDrawn {
			if _, err := t.draw(current, 1, false); err != nil {
				return false, err
			}
			current.hasDrawn = true
			// Anything chosen before the draw referred to the old hand.
			current.player.DropInput()
			if len(current.hand.LegalIndices(top)) > 0 {
				return true, nil
			}
		}
		t.events.PlayerPassed.Emit(event.PlayerPassedPayload{Seat: current.seat, PlayerName: current.Name(), LastPlayedCard: top})
		t.endTurn(current)
		return true, nil
	}

	index, ok := current.player.ChooseDiscard(legal, t.stateFor(current))
	if !ok {
		return false, nil
	}
	if !slices.Contains(legal, index) {
		return false, fmt.Errorf("%w: %s cannot play card %d on %s", consts.ErrorsInvalidMove, current.Name(), index, top)
	}

	played := current.hand.RemoveAt(index)
	t.pile.Add(played)
	current.hasDiscarded = true
	t.events.CardPlayed.Emit(event.CardPlayedPayload{Seat: current.seat, PlayerName: current.Name(), Card: played})

	if current.hand.Size() == 1 {
		t.openLowCardWindow(current)
	}
	if played.IsWildFamily() {
		// A strategy that already knows its color binds it in the same tick.
		current.awaitingColor = true
		_, err := t.pollColor(current)
		return true, err
	}
	t.resolve(current, played)
	return true, nil
}

func (t *Table) pollColor(current *playerController) (bool, error) {
	chosen, ok := current.player.ChooseColor(t.stateFor(current))
	if !ok {
		return false, nil
	}
	if !chosen.Valid() {
		return false, fmt.Errorf("%w: %w: %s", consts.ErrorsInvalidMove, consts.ErrorsColorInvalid, chosen.Name())
	}

	played := t.pile.Top().Bind(chosen)
	t.pile.ReplaceTop(played)
	current.awaitingColor = false
	t.events.ColorPicked.Emit(event.ColorPickedPayload{Seat: current.seat, PlayerName: current.Name(), Color: chosen})

	t.resolve(current, played)
	return true, nil
}

func (t *Table) draw(player *playerController, amount int, forced bool) ([]card.Card, error) {
	replenishments := t.deck.Replenishments()
	cards, err := t.deck.Draw(amount, t.pile)
	if err != nil {
		return nil, err
	}
	if t.deck.Replenishments() != replenishments {
		log.Infof("table %s reshuffled the discard pile, %d cards in the deck\n", t.id, t.deck.Size())
		t.events.Reshuffled.Emit(event.ReshuffledPayload{DrawPileSize: t.deck.Size()})
	}
	player.AddCards(cards)
	t.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		Seat:       player.seat,
		PlayerName: player.Name(),
		Cards:      cards,
		Forced:     forced,
	})
	return cards, nil
}

func (t *Table) endTurn(current *playerController) {
	current.resetTurn()
	next := t.players.Next()
	t.turnStarted = false
	if next.NoCards() {
		panic(fmt.Errorf("%w: seat %d has no cards", consts.ErrorsIllegalSeatTransition, next.seat))
	}
}

func (t *Table) openLowCardWindow(player *playerController) {
	player.lowCardOpen = true
	if !player.declaredLowCard && player.player.DeclaresLowCard(t.stateFor(player)) {
		player.declaredLowCard = true
	}
}

// closeLowCardWindows settles every open low-card window when a new turn
// starts. An undeclared window costs its seat the penalty draws.
func (t *Table) closeLowCardWindows() bool {
	changed := false
	t.players.ForEach(func(player *playerController) {
		if !player.lowCardOpen {
			return
		}
		changed = true
		player.lowCardOpen = false
		if player.declaredLowCard {
			player.declaredLowCard = false
			t.events.LowCardDeclared.Emit(event.LowCardDeclaredPayload{Seat: player.seat, PlayerName: player.Name()})
			return
		}
		player.pendingForcedDraws += consts.LowCardPenalty
		t.events.LowCardPenalized.Emit(event.LowCardPenalizedPayload{
			Seat:       player.seat,
			PlayerName: player.Name(),
			Penalty:    consts.LowCardPenalty,
		})
	})
	return changed
}

func (t *Table) win(winner *playerController) {
	hands := make([][]card.Card, 0, t.players.Size())
	t.players.ForEach(func(player *playerController) {
		hands = append(hands, player.Hand())
	})
	t.phase = RoundWon
	t.winner = winner.seat
	t.score = Score(hands...)
	winner.resetTurn()
	log.Infof("table %s won by %s, score %d\n", t.id, winner.Name(), t.score)
	t.events.RoundWon.Emit(event.RoundWonPayload{Seat: winner.seat, PlayerName: winner.Name(), Score: t.score})
}

func (t *Table) abort(err error) {
	t.phase = RoundAborted
	t.err = err
	log.Errorf("table %s aborted: %v\n", t.id, err)
	t.events.RoundAborted.Emit(event.RoundAbortedPayload{Err: err})
}

func fatal(err error) bool {
	var e consts.Error
	return errors.As(err, &e) && e.Exit
}

func (t *Table) status(tick uint64, changed bool, err error) Status {
	status := Status{
		Tick:    tick,
		Phase:   t.phase,
		Active:  t.players.Current().seat,
		Changed: changed,
		Winner:  -1,
		Err:     err,
	}
	switch t.phase {
	case InProgress:
		status.Waiting = !changed && err == nil
	case RoundWon:
		status.Winner = t.winner
		status.Score = t.score
	case RoundAborted:
		if status.Err == nil {
			status.Err = t.err
		}
	}
	return status
}
