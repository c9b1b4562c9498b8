package event

// Dispatcher holds the emitters of a single table. Listeners are called
// synchronously, in registration order, from inside the table's tick.
type Dispatcher struct {
	FirstCardPlayed   FirstCardPlayedEmitter
	CardPlayed        CardPlayedEmitter
	ColorPicked       ColorPickedEmitter
	PlayerPassed      PlayerPassedEmitter
	CardsDrawn        CardsDrawnEmitter
	TurnSkipped       TurnSkippedEmitter
	DirectionReversed DirectionReversedEmitter
	LowCardDeclared   LowCardDeclaredEmitter
	LowCardPenalized  LowCardPenalizedEmitter
	Reshuffled        ReshuffledEmitter
	RoundWon          RoundWonEmitter
	RoundAborted      RoundAbortedEmitter
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers listener with every emitter whose listener interface it
// implements, and reports how many emitters accepted it.
func (d *Dispatcher) Subscribe(listener interface{}) int {
	subscribed := 0
	if l, ok := listener.(FirstCardPlayedListener); ok {
		d.FirstCardPlayed.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(CardPlayedListener); ok {
		d.CardPlayed.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(ColorPickedListener); ok {
		d.ColorPicked.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		d.PlayerPassed.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		d.CardsDrawn.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		d.TurnSkipped.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(DirectionReversedListener); ok {
		d.DirectionReversed.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(LowCardDeclaredListener); ok {
		d.LowCardDeclared.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(LowCardPenalizedListener); ok {
		d.LowCardPenalized.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(ReshuffledListener); ok {
		d.Reshuffled.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(RoundWonListener); ok {
		d.RoundWon.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(RoundAbortedListener); ok {
		d.RoundAborted.AddListener(l)
		subscribed++
	}
	return subscribed
}
