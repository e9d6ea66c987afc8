package game

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// Supply owns every card not held by a player: the draw pile and the discard pile.
type Supply struct {
	deck     *Deck
	pile     *Pile
	recycles int
}

func NewSupply(cards []card.Card, random *rand.Rand) *Supply {
	return &Supply{
		deck: NewDeck(cards, random),
		pile: NewPile(),
	}
}

func (s *Supply) Deck() *Deck {
	return s.deck
}

func (s *Supply) Pile() *Pile {
	return s.pile
}

// Draw takes the next card, recycling the discard pile under its top when the draw pile is empty.
func (s *Supply) Draw() (card.Card, error) {
	if s.deck.Empty() {
		if err := s.recycle(); err != nil {
			return card.Card{}, err
		}
	}
	drawn, ok := s.deck.DrawOne()
	if !ok {
		return card.Card{}, consts.ErrorsSupplyExhausted
	}
	return drawn, nil
}

// DrawN draws amount cards. On failure it also returns the cards drawn so far.
func (s *Supply) DrawN(amount int) ([]card.Card, error) {
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		drawn, err := s.Draw()
		if err != nil {
			return cards, fmt.Errorf("drew %d of %d cards: %w", len(cards), amount, err)
		}
		cards = append(cards, drawn)
	}
	return cards, nil
}

func (s *Supply) recycle() error {
	below := s.pile.TakeBelowTop()
	if len(below) == 0 {
		return consts.ErrorsSupplyExhausted
	}
	s.deck.Refill(below)
	s.recycles++
	if Verbose() {
		log.Infof("discard pile recycled into %d card draw pile\n", s.deck.Size())
	}
	return nil
}

func (s *Supply) Discard(card card.Card) {
	s.pile.Add(card)
}

func (s *Supply) Top() (card.Card, error) {
	top, ok := s.pile.Top()
	if !ok {
		return card.Card{}, consts.ErrorsEmptyDiscard
	}
	return top, nil
}

func (s *Supply) ReplaceTop(card card.Card) {
	s.pile.ReplaceTop(card)
}

// Size returns the draw and discard pile sizes.
func (s *Supply) Size() (int, int) {
	return s.deck.Size(), s.pile.Size()
}

func (s *Supply) Recycles() int {
	return s.recycles
}
