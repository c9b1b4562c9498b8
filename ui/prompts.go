package ui

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// DeclareCommand is what a human types to declare a low card.
const DeclareCommand = "uno"

// CardSelection labels the legal cards of a hand with letters.
type CardSelection struct {
	Prompt  string
	options map[string]int
}

func NewCardSelection(hand []card.Card, legal []int) CardSelection {
	labels := runeSequence{}
	options := make(map[string]int, len(legal))
	lines := []string{"Select a card to play:"}
	for _, index := range legal {
		label := string(labels.next())
		options[label] = index
		lines = append(lines, fmt.Sprintf("%s (enter %s)", hand[index], label))
	}
	if len(hand) == 2 {
		lines = append(lines, fmt.Sprintf("Enter '%s' before your card to declare your last one.", DeclareCommand))
	}
	return CardSelection{Prompt: strings.Join(lines, "\n"), options: options}
}

// Index resolves a typed label to the hand index it stands for.
func (s CardSelection) Index(input string) (int, bool) {
	index, ok := s.options[strings.ToUpper(strings.TrimSpace(input))]
	return index, ok
}

func ColorPrompt() string {
	return fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
}

func ParseColor(input string) (color.Color, error) {
	return color.ByName(strings.ToLower(input))
}

func IsDeclaration(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), DeclareCommand)
}
