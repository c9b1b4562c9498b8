package event

import "github.com/ratel-online/uno/card"

type CardPlayedPayload struct {
	Seat       int
	PlayerName string
	Card       card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type CardPlayedEmitter struct {
	listeners []CardPlayedListener
}

func (e *CardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *CardPlayedEmitter) Emit(payload CardPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardPlayed(payload)
	}
}
