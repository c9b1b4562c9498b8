package event

type LowCardDeclaredPayload struct {
	Seat       int
	PlayerName string
}

type LowCardDeclaredListener interface {
	OnLowCardDeclared(LowCardDeclaredPayload)
}

type LowCardDeclaredEmitter struct {
	listeners []LowCardDeclaredListener
}

func (e *LowCardDeclaredEmitter) AddListener(listener LowCardDeclaredListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *LowCardDeclaredEmitter) Emit(payload LowCardDeclaredPayload) {
	for _, listener := range e.listeners {
		listener.OnLowCardDeclared(payload)
	}
}

type LowCardPenalizedPayload struct {
	Seat       int
	PlayerName string
	Penalty    int
}

type LowCardPenalizedListener interface {
	OnLowCardPenalized(LowCardPenalizedPayload)
}

type LowCardPenalizedEmitter struct {
	listeners []LowCardPenalizedListener
}

func (e *LowCardPenalizedEmitter) AddListener(listener LowCardPenalizedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *LowCardPenalizedEmitter) Emit(payload LowCardPenalizedPayload) {
	for _, listener := range e.listeners {
		listener.OnLowCardPenalized(payload)
	}
}
