package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// naivePlayer picks uniformly at random among its playable cards and the four colors.
type naivePlayer struct {
	basicPlayer
	random *rand.Rand
}

func NewNaivePlayer(name string, random *rand.Rand) game.Player {
	return naivePlayer{basicPlayer: newBasicPlayer(name), random: random}
}

func (p naivePlayer) PickColor(gameState game.State) (color.Color, error) {
	randomIndex := p.random.Intn(len(color.Concrete))
	return color.Concrete[randomIndex], nil
}

func (p naivePlayer) Play(gameState game.State) (card.Card, bool, error) {
	playableCards := p.hand.PlayableCards(gameState.LastPlayedCard)
	if len(playableCards) == 0 {
		return card.Card{}, false, nil
	}
	return p.surrender(playableCards[p.random.Intn(len(playableCards))])
}
