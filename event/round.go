package event

type ReshuffledPayload struct {
	DrawPileSize int
}

type ReshuffledListener interface {
	OnReshuffled(ReshuffledPayload)
}

type ReshuffledEmitter struct {
	listeners []ReshuffledListener
}

func (e *ReshuffledEmitter) AddListener(listener ReshuffledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *ReshuffledEmitter) Emit(payload ReshuffledPayload) {
	for _, listener := range e.listeners {
		listener.OnReshuffled(payload)
	}
}

type RoundWonPayload struct {
	Seat       int
	PlayerName string
	Score      int
}

type RoundWonListener interface {
	OnRoundWon(RoundWonPayload)
}

type RoundWonEmitter struct {
	listeners []RoundWonListener
}

func (e *RoundWonEmitter) AddListener(listener RoundWonListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *RoundWonEmitter) Emit(payload RoundWonPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundWon(payload)
	}
}

type RoundAbortedPayload struct {
	Err error
}

type RoundAbortedListener interface {
	OnRoundAborted(RoundAbortedPayload)
}

type RoundAbortedEmitter struct {
	listeners []RoundAbortedListener
}

func (e *RoundAbortedEmitter) AddListener(listener RoundAbortedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *RoundAbortedEmitter) Emit(payload RoundAbortedPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundAborted(payload)
	}
}
