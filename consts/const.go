package consts

import (
	"errors"
	"time"
)

const (
	MinPlayers = 2
	// MaxPlayers is the documented table size; the engine itself only checks MinPlayers.
	MaxPlayers = 10

	InitialHandSize = 7
	DrawTwoAmount   = 2
	DrawFourAmount  = 4

	DefaultRounds = 1
	DefaultDelay  = 0 * time.Second
)

// Player kinds accepted in the seat configuration.
const (
	PlayerKindHuman = "human"
	PlayerKindNaive = "naive"
	PlayerKindGood  = "good"
)

var PlayerKinds = []string{PlayerKindHuman, PlayerKindNaive, PlayerKindGood}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// IsFatal reports whether err must stop the game loop.
func IsFatal(err error) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Exit
	}
	return false
}

var (
	ErrorsInsufficientPlayers = NewErr(1, true, "At least two players required. ")
	ErrorsEmptyDeck           = NewErr(2, true, "Deck has no cards. ")
	ErrorsSupplyExhausted     = NewErr(3, true, "Draw and discard piles are both exhausted. ")
	ErrorsEmptyDiscard        = NewErr(4, true, "Discard pile is empty. ")
	ErrorsInputClosed         = NewErr(5, true, "Input closed. ")
	ErrorsConfigInvalid       = NewErr(6, true, "Config invalid. ")
	ErrorsIllegalPlay         = NewErr(7, false, "Card cannot be played on the top card. ")
	ErrorsColorInvalid        = NewErr(8, false, "Color invalid. ")
	ErrorsInputInvalid        = NewErr(9, false, "Input invalid. ")
	ErrorsGameOver            = NewErr(10, false, "Game is over. ")
)
