package ui

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

func (p *Printer) Welcome() {
	p.Printfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (p *Printer) RoundStarted(round int, rounds int, players []string) {
	p.Printfln("Round %d of %d: %s", round, rounds, strings.Join(players, ", "))
}

func (p *Printer) Standings(standings []service.Standing) {
	lines := []string{"Standings:"}
	for rank, standing := range standings {
		lines = append(lines, fmt.Sprintf("%d. %s: %d win(s), %d card(s) played", rank+1, standing.Name, standing.Wins, standing.CardsPlayed))
	}
	p.Printlns(lines)
}

func (p *Printer) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	p.Printfln("First card is %s", payload.Card)
}

func (p *Printer) OnTurnStarted(payload event.TurnStartedPayload) {
	if !p.turns {
		return
	}
	p.Printlns([]string{
		fmt.Sprintf("%s's turn", payload.PlayerName),
		fmt.Sprintf("Top card: %s", payload.TopCard),
		fmt.Sprintf("Hand: %s", cardList(payload.Hand)),
	})
}

func (p *Printer) OnCardPlayed(payload event.CardPlayedPayload) {
	p.Printfln("%s played %s!", payload.PlayerName, payload.Card)
	switch payload.Card.Rank {
	case card.Reverse:
		p.Println("Turn order has been reversed!")
	case card.Skip:
		p.Println("Next player's turn skipped!")
	}
}

func (p *Printer) OnColorPicked(payload event.ColorPickedPayload) {
	p.Printfln("%s picked color %s!", payload.PlayerName, payload.Color)
}

func (p *Printer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	p.Printfln("%s passed!", payload.PlayerName)
}

func (p *Printer) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if p.humans[payload.PlayerName] {
		p.Printfln("%s drew %s!", payload.PlayerName, cardList(payload.Cards))
		return
	}
	if len(payload.Cards) == 1 {
		p.Printfln("%s drew a card!", payload.PlayerName)
	} else {
		p.Printfln("%s drew %d cards!", payload.PlayerName, len(payload.Cards))
	}
}

func (p *Printer) OnTurnSkipped(payload event.TurnSkippedPayload) {
	p.Printfln("%s's turn skipped: %v", payload.PlayerName, payload.Cause)
}

func (p *Printer) OnGameWon(payload event.GameWonPayload) {
	p.Printfln("%s wins!", payload.PlayerName)
}

func cardList(cards []card.Card) string {
	labels := make([]string, 0, len(cards))
	for _, c := range cards {
		labels = append(labels, c.String())
	}
	return strings.Join(labels, ", ")
}
