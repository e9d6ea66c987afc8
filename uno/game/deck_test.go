package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestStandardCards(t *testing.T) {
	t.Run("returns_all_108_standard_uno_cards", func(t *testing.T) {
		cards := game.StandardCards()
		require.Len(t, cards, 108)
		require.ElementsMatch(t, standardDeckCards, cards)
	})

	t.Run("has_25_cards_of_each_color_and_8_wild_cards", func(t *testing.T) {
		counts := make(map[color.Color]int)
		for _, c := range game.StandardCards() {
			counts[c.Color]++
		}
		require.Equal(t, map[color.Color]int{
			color.Red:    25,
			color.Yellow: 25,
			color.Green:  25,
			color.Blue:   25,
			color.Wild:   8,
		}, counts)
	})

	t.Run("uses_canonical_order", func(t *testing.T) {
		cards := game.StandardCards()
		require.Equal(t, card.NewNumberCard(color.Red, 0), cards[0])
		require.Equal(t, card.NewNumberCard(color.Red, 1), cards[1])
		require.Equal(t, card.NewNumberCard(color.Red, 1), cards[2])
		require.Equal(t, card.NewDrawTwoCard(color.Red), cards[24])
		require.Equal(t, card.NewNumberCard(color.Yellow, 0), cards[25])
		require.Equal(t, card.NewNumberCard(color.Blue, 0), cards[75])
		require.Equal(t, card.NewWildCard(), cards[100])
		require.Equal(t, card.NewWildDrawFourCard(), cards[107])
		require.Equal(t, cards, game.StandardCards())
	})
}

func TestDeckDrawOne(t *testing.T) {
	t.Run("draws_from_the_front_when_not_shuffled", func(t *testing.T) {
		deck := game.NewDeck([]card.Card{
			card.NewNumberCard(color.Blue, 1),
			card.NewNumberCard(color.Blue, 2),
		}, nil)

		first, ok := deck.DrawOne()
		require.True(t, ok)
		require.Equal(t, card.NewNumberCard(color.Blue, 1), first)
		require.Equal(t, 1, deck.Size())

		second, ok := deck.DrawOne()
		require.True(t, ok)
		require.Equal(t, card.NewNumberCard(color.Blue, 2), second)
		require.True(t, deck.Empty())
	})

	t.Run("reports_an_empty_deck", func(t *testing.T) {
		deck := game.NewDeck(nil, nil)
		_, ok := deck.DrawOne()
		require.False(t, ok)
	})
}

func TestDeckShuffle(t *testing.T) {
	t.Run("keeps_the_same_cards", func(t *testing.T) {
		deck := game.NewDeck(game.StandardCards(), rand.New(rand.NewSource(7)))
		require.ElementsMatch(t, standardDeckCards, deck.Cards())
	})

	t.Run("is_reproducible_for_a_seed", func(t *testing.T) {
		first := game.NewDeck(game.StandardCards(), rand.New(rand.NewSource(42)))
		second := game.NewDeck(game.StandardCards(), rand.New(rand.NewSource(42)))
		require.Equal(t, first.Cards(), second.Cards())
		require.NotEqual(t, game.StandardCards(), first.Cards())
	})

	t.Run("does_not_alias_the_input", func(t *testing.T) {
		cards := game.StandardCards()
		game.NewDeck(cards, rand.New(rand.NewSource(1)))
		require.Equal(t, game.StandardCards(), cards)
	})
}

func TestDeckRefill(t *testing.T) {
	deck := game.NewDeck([]card.Card{card.NewSkipCard(color.Red)}, nil)
	deck.Refill([]card.Card{card.NewReverseCard(color.Green), card.NewWildCard()})
	require.Equal(t, []card.Card{
		card.NewSkipCard(color.Red),
		card.NewReverseCard(color.Green),
		card.NewWildCard(),
	}, deck.Cards())
}

var standardDeckCards = []card.Card{
	card.NewWildCard(),
	card.NewWildCard(),
	card.NewWildCard(),
	card.NewWildCard(),
	card.NewWildDrawFourCard(),
	card.NewWildDrawFourCard(),
	card.NewWildDrawFourCard(),
	card.NewWildDrawFourCard(),
	card.NewDrawTwoCard(color.Blue),
	card.NewDrawTwoCard(color.Blue),
	card.NewReverseCard(color.Blue),
	card.NewReverseCard(color.Blue),
	card.NewSkipCard(color.Blue),
	card.NewSkipCard(color.Blue),
	card.NewNumberCard(color.Blue, 0),
	card.NewNumberCard(color.Blue, 1),
	card.NewNumberCard(color.Blue, 1),
	card.NewNumberCard(color.Blue, 2),
	card.NewNumberCard(color.Blue, 2),
	card.NewNumberCard(color.Blue, 3),
	card.NewNumberCard(color.Blue, 3),
	card.NewNumberCard(color.Blue, 4),
	card.NewNumberCard(color.Blue, 4),
	card.NewNumberCard(color.Blue, 5),
	card.NewNumberCard(color.Blue, 5),
	card.NewNumberCard(color.Blue, 6),
	card.NewNumberCard(color.Blue, 6),
	card.NewNumberCard(color.Blue, 7),
	card.NewNumberCard(color.Blue, 7),
	card.NewNumberCard(color.Blue, 8),
	card.NewNumberCard(color.Blue, 8),
	card.NewNumberCard(color.Blue, 9),
	card.NewNumberCard(color.Blue, 9),
	card.NewDrawTwoCard(color.Green),
	card.NewDrawTwoCard(color.Green),
	card.NewReverseCard(color.Green),
	card.NewReverseCard(color.Green),
	card.NewSkipCard(color.Green),
	card.NewSkipCard(color.Green),
	card.NewNumberCard(color.Green, 0),
	card.NewNumberCard(color.Green, 1),
	card.NewNumberCard(color.Green, 1),
	card.NewNumberCard(color.Green, 2),
	card.NewNumberCard(color.Green, 2),
	card.NewNumberCard(color.Green, 3),
	card.NewNumberCard(color.Green, 3),
	card.NewNumberCard(color.Green, 4),
	card.NewNumberCard(color.Green, 4),
	card.NewNumberCard(color.Green, 5),
	card.NewNumberCard(color.Green, 5),
	card.NewNumberCard(color.Green, 6),
	card.NewNumberCard(color.Green, 6),
	card.NewNumberCard(color.Green, 7),
	card.NewNumberCard(color.Green, 7),
	card.NewNumberCard(color.Green, 8),
	card.NewNumberCard(color.Green, 8),
	card.NewNumberCard(color.Green, 9),
	card.NewNumberCard(color.Green, 9),
	card.NewDrawTwoCard(color.Red),
	card.NewDrawTwoCard(color.Red),
	card.NewReverseCard(color.Red),
	card.NewReverseCard(color.Red),
	card.NewSkipCard(color.Red),
	card.NewSkipCard(color.Red),
	card.NewNumberCard(color.Red, 0),
	card.NewNumberCard(color.Red, 1),
	card.NewNumberCard(color.Red, 1),
	card.NewNumberCard(color.Red, 2),
	card.NewNumberCard(color.Red, 2),
	card.NewNumberCard(color.Red, 3),
	card.NewNumberCard(color.Red, 3),
	card.NewNumberCard(color.Red, 4),
	card.NewNumberCard(color.Red, 4),
	card.NewNumberCard(color.Red, 5),
	card.NewNumberCard(color.Red, 5),
	card.NewNumberCard(color.Red, 6),
	card.NewNumberCard(color.Red, 6),
	card.NewNumberCard(color.Red, 7),
	card.NewNumberCard(color.Red, 7),
	card.NewNumberCard(color.Red, 8),
	card.NewNumberCard(color.Red, 8),
	card.NewNumberCard(color.Red, 9),
	card.NewNumberCard(color.Red, 9),
	card.NewDrawTwoCard(color.Yellow),
	card.NewDrawTwoCard(color.Yellow),
	card.NewReverseCard(color.Yellow),
	card.NewReverseCard(color.Yellow),
	card.NewSkipCard(color.Yellow),
	card.NewSkipCard(color.Yellow),
	card.NewNumberCard(color.Yellow, 0),
	card.NewNumberCard(color.Yellow, 1),
	card.NewNumberCard(color.Yellow, 1),
	card.NewNumberCard(color.Yellow, 2),
	card.NewNumberCard(color.Yellow, 2),
	card.NewNumberCard(color.Yellow, 3),
	card.NewNumberCard(color.Yellow, 3),
	card.NewNumberCard(color.Yellow, 4),
	card.NewNumberCard(color.Yellow, 4),
	card.NewNumberCard(color.Yellow, 5),
	card.NewNumberCard(color.Yellow, 5),
	card.NewNumberCard(color.Yellow, 6),
	card.NewNumberCard(color.Yellow, 6),
	card.NewNumberCard(color.Yellow, 7),
	card.NewNumberCard(color.Yellow, 7),
	card.NewNumberCard(color.Yellow, 8),
	card.NewNumberCard(color.Yellow, 8),
	card.NewNumberCard(color.Yellow, 9),
	card.NewNumberCard(color.Yellow, 9),
}
