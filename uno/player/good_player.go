package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// goodPlayer plays the card that leaves the most follow-up plays in its hand and
// picks the color it holds the most of.
type goodPlayer struct {
	basicPlayer
}

func NewGoodPlayer(name string) game.Player {
	return goodPlayer{basicPlayer: newBasicPlayer(name)}
}

func (p goodPlayer) PickColor(gameState game.State) (color.Color, error) {
	hand := p.hand.Cards()
	if len(hand) == 0 {
		return color.Blue, nil
	}

	colorCounts := make(map[color.Color]int)
	for _, handCard := range hand {
		if handCard.Color != color.Wild {
			colorCounts[handCard.Color]++
		}
	}

	mostFrequentColor := color.Concrete[0]
	mostFrequentColorAmount := 0
	for _, availableColor := range color.Concrete {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor, nil
}

func (p goodPlayer) Play(gameState game.State) (card.Card, bool, error) {
	playableCards := p.hand.PlayableCards(gameState.LastPlayedCard)
	if len(playableCards) == 0 {
		return card.Card{}, false, nil
	}

	hand := p.hand.Cards()
	mostDiscardableCardIndex := 0
	maxSpareCards := 0
	for cardIndex, playableCard := range playableCards {
		spareCards := 0
		for _, handCard := range hand {
			if handCard != playableCard && game.Playable(handCard, playableCard) {
				spareCards++
			}
		}
		// Wild cards are saved for when nothing else matches.
		if playableCard.IsWild() {
			spareCards -= len(hand)
		}
		if cardIndex == 0 || spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return p.surrender(playableCards[mostDiscardableCardIndex])
}
