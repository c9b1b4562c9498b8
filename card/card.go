package card

import (
	"fmt"
	"strconv"

	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
)

// Rank is the face of a card: a number from 0 to 9 or one of the specials.
type Rank int

const (
	Zero Rank = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var rankNames = map[Rank]string{
	Skip:         "skip",
	Reverse:      "reverse",
	DrawTwo:      "draw-two",
	Wild:         "wild",
	WildDrawFour: "wild-draw-four",
}

var rankFaces = map[Rank]string{
	Skip:         "(/)",
	Reverse:      "<=>",
	DrawTwo:      "+2!",
	Wild:         "(*)",
	WildDrawFour: "+4!",
}

func (r Rank) IsNumber() bool {
	return r >= Zero && r <= Nine
}

func (r Rank) String() string {
	if r.IsNumber() {
		return strconv.Itoa(int(r))
	}
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

// Card is a value. The only mutation a card ever sees is binding a color to
// a wild when it is played, and that produces a new value.
type Card struct {
	Color  color.Color
	Rank   Rank
	Hidden bool
}

func NewNumberCard(c color.Color, number int) Card {
	return Card{Color: c, Rank: Rank(number)}
}

func NewSkipCard(c color.Color) Card {
	return Card{Color: c, Rank: Skip}
}

func NewReverseCard(c color.Color) Card {
	return Card{Color: c, Rank: Reverse}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{Color: c, Rank: DrawTwo}
}

func NewWildCard() Card {
	return Card{Color: color.None, Rank: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{Color: color.None, Rank: WildDrawFour}
}

func (c Card) IsWildFamily() bool {
	return c.Rank == Wild || c.Rank == WildDrawFour
}

// IsAction reports whether the card has any effect beyond its face value.
func (c Card) IsAction() bool {
	return !c.Rank.IsNumber()
}

func (c Card) Number() int {
	if !c.Rank.IsNumber() {
		return -1
	}
	return int(c.Rank)
}

// Matches reports whether c may be played on top. A bound wild on top is
// matched through its bound color like any other colored card.
func (c Card) Matches(top Card) bool {
	if c.IsWildFamily() {
		return true
	}
	if c.Color != color.None && c.Color == top.Color {
		return true
	}
	return c.Rank == top.Rank
}

// Bind returns the wild with the chosen color. Non-wild cards are returned
// unchanged.
func (c Card) Bind(chosen color.Color) Card {
	if !c.IsWildFamily() {
		return c
	}
	c.Color = chosen
	return c
}

// Unbind clears the color of a played wild so it can go back into the deck.
func (c Card) Unbind() Card {
	if c.IsWildFamily() {
		c.Color = color.None
	}
	return c
}

func (c Card) Conceal() Card {
	c.Hidden = true
	return c
}

func (c Card) Reveal() Card {
	c.Hidden = false
	return c
}

// Equal compares color and rank only.
func (c Card) Equal(other Card) bool {
	return c.Color == other.Color && c.Rank == other.Rank
}

// Points is the value the card adds to the winner's score while it is still
// held at the end of a round.
func (c Card) Points() int {
	switch {
	case c.Rank.IsNumber():
		return int(c.Rank)
	case c.IsWildFamily():
		return consts.WildCardPoints
	default:
		return consts.ActionCardPoints
	}
}

func (c Card) Actions() []action.Action {
	switch c.Rank {
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case DrawTwo:
		return []action.Action{action.NewDrawCardsAction(consts.DrawTwoAmount)}
	case Wild:
		return []action.Action{action.NewPickColorAction()}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewDrawCardsAction(consts.WildDrawFourAmount),
		}
	default:
		return []action.Action{}
	}
}

func (c Card) String() string {
	if c.Hidden {
		return "[?]"
	}
	face, ok := rankFaces[c.Rank]
	if !ok {
		face = fmt.Sprintf("[%d]", int(c.Rank))
	}
	if c.Color == color.None {
		return face
	}
	return c.Color.Paint(face) + fmt.Sprintf("(%s)", c.Color.Name())
}
