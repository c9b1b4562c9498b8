package ui

import (
	"io"

	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/event"
	"github.com/ratel-online/uno/msg"
)

// Reporter prints table events for the human sitting at humanSeat.
type Reporter struct {
	out       io.Writer
	humanSeat int
}

func NewReporter(out io.Writer, humanSeat int) *Reporter {
	if out == nil {
		out = color.Stdout
	}
	return &Reporter{out: out, humanSeat: humanSeat}
}

func (r *Reporter) print(message string) {
	_, _ = io.WriteString(r.out, message)
}

func (r *Reporter) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	r.print(msg.Message.FirstCardPlayed(payload.Card))
}

func (r *Reporter) OnCardPlayed(payload event.CardPlayedPayload) {
	r.print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (r *Reporter) OnColorPicked(payload event.ColorPickedPayload) {
	r.print(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (r *Reporter) OnPlayerPassed(payload event.PlayerPassedPayload) {
	if payload.Seat == r.humanSeat {
		r.print(msg.Message.HumanPlayerHasNoMatchingCardsInHand(payload.PlayerName, payload.LastPlayedCard))
	}
	r.print(msg.Message.PlayerPassed(payload.PlayerName))
}

func (r *Reporter) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Seat == r.humanSeat {
		r.print(msg.Message.HumanPlayerDrewCards(payload.Cards))
		return
	}
	r.print(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (r *Reporter) OnTurnSkipped(payload event.TurnSkippedPayload) {
	r.print(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (r *Reporter) OnDirectionReversed(event.DirectionReversedPayload) {
	r.print(msg.Message.TurnOrderReversed())
}

func (r *Reporter) OnLowCardDeclared(payload event.LowCardDeclaredPayload) {
	r.print(msg.Message.LowCardDeclared(payload.PlayerName))
}

func (r *Reporter) OnLowCardPenalized(payload event.LowCardPenalizedPayload) {
	r.print(msg.Message.LowCardPenalized(payload.PlayerName, payload.Penalty))
}

func (r *Reporter) OnReshuffled(payload event.ReshuffledPayload) {
	r.print(msg.Message.DiscardPileReshuffled(payload.DrawPileSize))
}

func (r *Reporter) OnRoundWon(payload event.RoundWonPayload) {
	r.print(msg.Message.WinnerFound(payload.PlayerName, payload.Score))
}

func (r *Reporter) OnRoundAborted(payload event.RoundAbortedPayload) {
	r.print(msg.Message.RoundAborted(payload.Err))
}
