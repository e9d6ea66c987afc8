package player

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Input is where an interactive player's decisions come from.
//
// SelectCard returns an index into hand, or draw=true to take a card instead.
// Reject is told why a selection was refused before the player is asked again.
type Input interface {
	SelectCard(gameState game.State, hand []card.Card) (index int, draw bool, err error)
	SelectColor(gameState game.State) (color.Color, error)
	Reject(reason error)
}

type humanPlayer struct {
	basicPlayer
	input Input
}

func NewHumanPlayer(name string, input Input) game.Player {
	return humanPlayer{basicPlayer: newBasicPlayer(name), input: input}
}

func (p humanPlayer) PickColor(gameState game.State) (color.Color, error) {
	for {
		chosen, err := p.input.SelectColor(gameState)
		if err != nil {
			return color.Wild, err
		}
		if chosen == color.Wild || !chosen.Valid() {
			p.input.Reject(fmt.Errorf("%s is not a color you can pick: %w", chosen.Name(), consts.ErrorsColorInvalid))
			continue
		}
		return chosen, nil
	}
}

func (p humanPlayer) Play(gameState game.State) (card.Card, bool, error) {
	for {
		hand := p.hand.Cards()
		index, draw, err := p.input.SelectCard(gameState, hand)
		if err != nil {
			return card.Card{}, false, err
		}
		if draw {
			return card.Card{}, false, nil
		}
		if index < 0 || index >= len(hand) {
			p.input.Reject(fmt.Errorf("there is no card %d in your hand: %w", index+1, consts.ErrorsInputInvalid))
			continue
		}
		if !game.Playable(hand[index], gameState.LastPlayedCard) {
			p.input.Reject(fmt.Errorf("%s does not match %s: %w", hand[index], gameState.LastPlayedCard, consts.ErrorsIllegalPlay))
			continue
		}
		chosen, _ := p.hand.Take(index)
		return chosen, true, nil
	}
}
