package game

import (
	"github.com/ratel-online/uno/card"
)

// Pile is the discard pile. Only its top card takes part in the rules.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) ReplaceTop(card card.Card) {
	p.cards[len(p.cards)-1] = card
}

// Top returns the zero Card when the pile is empty.
func (p *Pile) Top() card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}
	}
	return p.cards[pileSize-1]
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// TakeAllButTop removes and returns every card under the top one.
func (p *Pile) TakeAllButTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	top := p.cards[len(p.cards)-1]
	taken := make([]card.Card, len(p.cards)-1)
	copy(taken, p.cards[:len(p.cards)-1])
	p.cards = append(p.cards[:0], top)
	return taken
}
