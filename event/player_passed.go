package event

import "github.com/ratel-online/uno/card"

// PlayerPassedPayload carries the top card the seat could not match.
type PlayerPassedPayload struct {
	Seat           int
	PlayerName     string
	LastPlayedCard card.Card
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

type PlayerPassedEmitter struct {
	listeners []PlayerPassedListener
}

func (e *PlayerPassedEmitter) AddListener(listener PlayerPassedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *PlayerPassedEmitter) Emit(payload PlayerPassedPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerPassed(payload)
	}
}
