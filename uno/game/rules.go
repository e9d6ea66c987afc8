package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// SeedColor is the fixed color given to a wild card turned up as the first discard.
const SeedColor = color.Red

func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	return candidateCard.PlayableOn(lastPlayedCard)
}

// SeedCard recolors a wild first card to SeedColor. Its rank is kept and its effect is not applied.
func SeedCard(firstCard card.Card) card.Card {
	if firstCard.Color == color.Wild {
		return firstCard.WithColor(SeedColor)
	}
	return firstCard
}
