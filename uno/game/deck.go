package game

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is the face-down draw pile. Cards are drawn from the front.
type Deck struct {
	cards  []card.Card
	random *rand.Rand
}

// NewDeck copies and shuffles the given cards. A nil random source keeps their order.
func NewDeck(cards []card.Card, random *rand.Rand) *Deck {
	deck := &Deck{random: random}
	deck.Refill(cards)
	return deck
}

func (d *Deck) DrawOne() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	drawn := d.cards[0]
	d.cards = d.cards[1:]
	return drawn, true
}

// Refill appends the cards and shuffles the whole pile.
func (d *Deck) Refill(cards []card.Card) {
	d.cards = append(d.cards, cards...)
	shuffleCards(d.random, d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Size() int {
	return len(d.cards)
}

// StandardCards returns the 108 card UNO deck in canonical, unshuffled order.
func StandardCards() []card.Card {
	cards := make([]card.Card, 0, 108)

	cards = append(cards, createColorCards(color.Red)...)
	cards = append(cards, createColorCards(color.Yellow)...)
	cards = append(cards, createColorCards(color.Green)...)
	cards = append(cards, createColorCards(color.Blue)...)
	cards = append(cards, createBlackCards()...)

	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{zeroCard}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return append(cards,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	)
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

func shuffleCards(random *rand.Rand, cards []card.Card) {
	if random == nil {
		return
	}
	random.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
