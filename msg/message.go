package msg

import (
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

var Message = MessageWriter{}

func linef(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...) + "\n"
}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return linef("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return linef("You drew %s!", cards)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card) string {
	return linef("%s, none of your cards match %s!", playerName, lastPlayedCard)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return linef("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return linef("%s drew a card!", playerName)
	}
	return linef("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return linef("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return linef("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return linef("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return linef("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return "Turn order has been reversed!\n"
}

func (m MessageWriter) LowCardDeclared(playerName string) string {
	return linef("%s shouts UNO!", playerName)
}

func (m MessageWriter) LowCardPenalized(playerName string, penalty int) string {
	return linef("%s forgot to shout UNO and owes %d cards!", playerName, penalty)
}

func (m MessageWriter) DiscardPileReshuffled(drawPileSize int) string {
	return linef("The discard pile was shuffled back into the deck (%d cards).", drawPileSize)
}

func (m MessageWriter) RoundAborted(err error) string {
	return linef("The round cannot go on: %v", err)
}

func (m MessageWriter) Welcome() string {
	return linef(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string, score int) string {
	return linef("%s wins with %d points!", playerName, score)
}

func (m MessageWriter) LeaderboardEntry(rank int, playerName string, wins int, points int) string {
	return linef("%2d. %-14s %3d win(s) %5d pts", rank, playerName, wins, points)
}
