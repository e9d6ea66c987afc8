package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

// State is the public view of a game handed to a player when it has to decide.
type State struct {
	LastPlayedCard   card.Card
	CurrentSeat      int
	PlayerSequence   []string
	PlayerHandCounts []int
	Direction        int
	DrawPileSize     int
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for seat, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[seat])
		if seat == s.CurrentSeat {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	order := "clockwise"
	if s.Direction < 0 {
		order = "counter-clockwise"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", order, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Draw pile: %d card(s)", s.DrawPileSize))

	return strings.Join(lines, "\n")
}
