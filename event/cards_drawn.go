package event

import "github.com/ratel-online/uno/card"

type CardsDrawnPayload struct {
	Seat       int
	PlayerName string
	Cards      []card.Card
	// Forced is set for draws owed to a draw card or a low-card penalty.
	Forced bool
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type CardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *CardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *CardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}
