package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
)

type Phase int

const (
	PhaseDealing Phase = iota
	PhaseAwaitingPlay
	PhaseApplyingEffect
	PhaseAdvancingTurn
	PhaseGameWon
)

var phaseNames = map[Phase]string{
	PhaseDealing:        "Dealing",
	PhaseAwaitingPlay:   "AwaitingPlay",
	PhaseApplyingEffect: "ApplyingEffect",
	PhaseAdvancingTurn:  "AdvancingTurn",
	PhaseGameWon:        "GameWon",
}

func (p Phase) String() string {
	return phaseNames[p]
}

// TurnResult describes how a single turn was resolved.
// Card is the discard top the play left behind, so a wild shows its chosen color.
// Effects lists the card's actions that were applied.
type TurnResult struct {
	Seat    int
	Player  string
	Card    card.Card
	Effects []action.Action
	Played  bool
	Drew    bool
	Won     bool
	Skipped bool
	Err     error
}

func (r TurnResult) Fatal() bool {
	return r.Err != nil && consts.IsFatal(r.Err)
}
