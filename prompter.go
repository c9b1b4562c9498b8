package main

import (
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/msg"
	"github.com/ratel-online/uno/ui"
)

// prompter turns terminal lines into table input for one seat. A prompt is
// printed once per decision the table waits for.
type prompter struct {
	table     *game.Table
	seat      int
	shown     bool
	selection *ui.CardSelection
}

func newPrompter(table *game.Table, seat int) *prompter {
	return &prompter{table: table, seat: seat}
}

func (p *prompter) reset() {
	p.shown = false
	p.selection = nil
}

func (p *prompter) show() {
	if p.shown {
		return
	}
	p.shown = true
	if p.table.AwaitingColor(p.seat) {
		ui.Println(ui.ColorPrompt())
		return
	}
	state, err := p.table.State(p.seat)
	if err != nil {
		ui.Println(err)
		return
	}
	name, _ := p.table.PlayerName(p.seat)
	ui.Print(msg.Message.HumanPlayerTurnStarted(name))
	ui.Println(state)
	selection := ui.NewCardSelection(state.CurrentPlayerHand, p.table.LegalMoves(p.seat))
	p.selection = &selection
	ui.Println(selection.Prompt)
}

func (p *prompter) handle(line string) {
	if ui.IsDeclaration(line) {
		if err := p.table.LowCardDeclared(p.seat); err != nil {
			ui.Println(err)
		}
		return
	}
	if !p.shown {
		ui.Println("Wait for your turn.")
		return
	}

	var err error
	if p.table.AwaitingColor(p.seat) {
		chosen, parseErr := ui.ParseColor(line)
		if parseErr != nil {
			ui.Printfln("Unknown color '%s'", line)
			return
		}
		err = p.table.ColorChosen(p.seat, chosen)
	} else {
		if p.selection == nil {
			ui.Println("Wait for your turn.")
			return
		}
		index, ok := p.selection.Index(line)
		if !ok {
			ui.Printfln("No card assigned to '%s'", line)
			return
		}
		err = p.table.DiscardChosen(p.seat, index)
	}
	if err != nil {
		ui.Println(err)
		return
	}
	p.reset()
}
