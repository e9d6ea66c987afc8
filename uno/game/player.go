package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Player owns a hand and decides what to surrender from it.
//
// Play returns ok=false to draw instead of playing. When ok is true the returned card
// must already be removed from the hand and be playable on gameState.LastPlayedCard.
// PickColor must return one of color.Concrete.
type Player interface {
	Name() string
	Receive(cards ...card.Card)
	Hand() []card.Card
	Play(gameState State) (selected card.Card, ok bool, err error)
	PickColor(gameState State) (color.Color, error)
}
