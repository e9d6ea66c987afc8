package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

type basicPlayer struct {
	name string
	hand *game.Hand
}

func newBasicPlayer(name string) basicPlayer {
	return basicPlayer{name: name, hand: game.NewHand()}
}

func (p basicPlayer) Name() string {
	return p.name
}

func (p basicPlayer) Receive(cards ...card.Card) {
	p.hand.AddCards(cards)
}

func (p basicPlayer) Hand() []card.Card {
	return p.hand.Cards()
}

// surrender removes the chosen card from the hand and hands it to the engine.
func (p basicPlayer) surrender(chosen card.Card) (card.Card, bool, error) {
	p.hand.RemoveCard(chosen)
	return chosen, true, nil
}
