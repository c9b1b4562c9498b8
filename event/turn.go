package event

type TurnSkippedPayload struct {
	Seat       int
	PlayerName string
}

type TurnSkippedListener interface {
	OnTurnSkipped(TurnSkippedPayload)
}

type TurnSkippedEmitter struct {
	listeners []TurnSkippedListener
}

func (e *TurnSkippedEmitter) AddListener(listener TurnSkippedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnSkippedEmitter) Emit(payload TurnSkippedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnSkipped(payload)
	}
}

type DirectionReversedPayload struct {
	Direction int
}

type DirectionReversedListener interface {
	OnDirectionReversed(DirectionReversedPayload)
}

type DirectionReversedEmitter struct {
	listeners []DirectionReversedListener
}

func (e *DirectionReversedEmitter) AddListener(listener DirectionReversedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *DirectionReversedEmitter) Emit(payload DirectionReversedPayload) {
	for _, listener := range e.listeners {
		listener.OnDirectionReversed(payload)
	}
}
