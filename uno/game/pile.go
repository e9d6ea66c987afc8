package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is the face-up discard pile; the last card is the top.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// ReplaceTop pops the current top, if any, and pushes the replacement.
func (p *Pile) ReplaceTop(card card.Card) {
	if len(p.cards) > 0 {
		p.cards = p.cards[:len(p.cards)-1]
	}
	p.cards = append(p.cards, card)
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

// TakeBelowTop removes and returns every card under the top.
func (p *Pile) TakeBelowTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	top := p.cards[len(p.cards)-1]
	below := make([]card.Card, len(p.cards)-1)
	copy(below, p.cards[:len(p.cards)-1])
	p.cards = append(p.cards[:0], top)
	return below
}

func (p *Pile) Size() int {
	return len(p.cards)
}
