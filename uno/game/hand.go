package game

import (
	"github.com/ratel-online/uno/uno/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableCards(lastPlayedCard card.Card) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if candidateCard.PlayableOn(lastPlayedCard) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard removes a single copy of the card, keeping the order of the rest.
func (h *Hand) RemoveCard(card card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand == card {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

// Take removes and returns the card at index.
func (h *Hand) Take(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	taken := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return taken, true
}

func (h *Hand) Size() int {
	return len(h.cards)
}
