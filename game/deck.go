package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
)

// Deck is the draw pile. The top of the deck is the front of the slice.
type Deck struct {
	cards          []card.Card
	rng            *rand.Rand
	replenishments int
}

func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]card.Card, 0, consts.DeckSize)
	cards = append(cards, createBlackCards()...)
	for _, c := range color.All {
		cards = append(cards, createColorCards(c)...)
	}
	deck := newDeckOf(cards, rng)
	deck.Shuffle()
	return deck
}

// newDeckOf keeps the given order.
func newDeckOf(cards []card.Card, rng *rand.Rand) *Deck {
	return &Deck{cards: cards, rng: rng}
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Replenishments counts how many times the deck was refilled from a pile.
func (d *Deck) Replenishments() int {
	return d.replenishments
}

func (d *Deck) Shuffle() {
	shuffleCards(d.rng, d.cards)
}

func (d *Deck) PutBottom(c card.Card) {
	d.cards = append(d.cards, c)
}

func (d *Deck) DrawOne(pile *Pile) (card.Card, error) {
	cards, err := d.Draw(1, pile)
	if err != nil {
		return card.Card{}, err
	}
	return cards[0], nil
}

// Draw removes the top amount cards, refilling from pile when the deck runs
// dry. Nothing moves when the draw cannot be served in full.
func (d *Deck) Draw(amount int, pile *Pile) ([]card.Card, error) {
	reclaimable := pile.Size() - 1
	if reclaimable < 0 {
		reclaimable = 0
	}
	if amount > len(d.cards) {
		if len(d.cards) == 0 && reclaimable == 0 {
			return nil, fmt.Errorf("%w: deck and discard pile are both spent", consts.ErrorsNoCardsToReplenish)
		}
		if amount > len(d.cards)+reclaimable {
			return nil, fmt.Errorf("%w: need %d, only %d left", consts.ErrorsInsufficientCards, amount, len(d.cards)+reclaimable)
		}
	}

	drawn := make([]card.Card, 0, amount)
	for len(drawn) < amount {
		if len(d.cards) == 0 {
			if err := d.Replenish(pile); err != nil {
				return nil, err
			}
		}
		take := amount - len(drawn)
		if take > len(d.cards) {
			take = len(d.cards)
		}
		drawn = append(drawn, d.cards[:take]...)
		d.cards = d.cards[take:]
	}
	return drawn, nil
}

// Replenish moves every card of pile except its top under the deck, shuffled.
// Wilds lose the color they were bound to.
func (d *Deck) Replenish(pile *Pile) error {
	if pile.Size() <= 1 {
		return fmt.Errorf("%w: discard pile holds %d card(s)", consts.ErrorsNoCardsToReplenish, pile.Size())
	}
	reclaimed := pile.TakeAllButTop()
	for i := range reclaimed {
		reclaimed[i] = reclaimed[i].Unbind()
	}
	shuffleCards(d.rng, reclaimed)
	d.cards = append(d.cards, reclaimed...)
	d.replenishments++
	return nil
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

func shuffleCards(rng *rand.Rand, cards []card.Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
