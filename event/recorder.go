package event

import (
	"fmt"
	"strings"
)

// Recorder implements every listener interface and keeps a readable line per
// event.
type Recorder struct {
	Lines []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(format string, a ...interface{}) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, a...))
}

func (r *Recorder) Count(prefix string) int {
	count := 0
	for _, line := range r.Lines {
		if strings.HasPrefix(line, prefix) {
			count++
		}
	}
	return count
}

func (r *Recorder) OnFirstCardPlayed(p FirstCardPlayedPayload) {
	r.record("first %s", p.Card.Rank)
}

func (r *Recorder) OnCardPlayed(p CardPlayedPayload) {
	r.record("played %d %s", p.Seat, p.Card.Rank)
}

func (r *Recorder) OnColorPicked(p ColorPickedPayload) {
	r.record("color %d %s", p.Seat, p.Color.Name())
}

func (r *Recorder) OnPlayerPassed(p PlayerPassedPayload) {
	r.record("passed %d", p.Seat)
}

func (r *Recorder) OnCardsDrawn(p CardsDrawnPayload) {
	r.record("drawn %d %d forced=%t", p.Seat, len(p.Cards), p.Forced)
}

func (r *Recorder) OnTurnSkipped(p TurnSkippedPayload) {
	r.record("skipped %d", p.Seat)
}

func (r *Recorder) OnDirectionReversed(p DirectionReversedPayload) {
	r.record("reversed %d", p.Direction)
}

func (r *Recorder) OnLowCardDeclared(p LowCardDeclaredPayload) {
	r.record("declared %d", p.Seat)
}

func (r *Recorder) OnLowCardPenalized(p LowCardPenalizedPayload) {
	r.record("penalized %d %d", p.Seat, p.Penalty)
}

func (r *Recorder) OnReshuffled(p ReshuffledPayload) {
	r.record("reshuffled %d", p.DrawPileSize)
}

func (r *Recorder) OnRoundWon(p RoundWonPayload) {
	r.record("won %d %d", p.Seat, p.Score)
}

func (r *Recorder) OnRoundAborted(p RoundAbortedPayload) {
	r.record("aborted %v", p.Err)
}
