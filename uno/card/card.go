package card

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Rank int

const (
	Zero Rank = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

// Numbers lists the numeric ranks in ascending order.
var Numbers = []Rank{Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine}

var rankLabels = map[Rank]string{
	Skip:         "(/)",
	Reverse:      "<=>",
	DrawTwo:      "+2!",
	Wild:         "(*)",
	WildDrawFour: "+4!",
}

func (r Rank) IsNumber() bool {
	return r >= Zero && r <= Nine
}

func (r Rank) IsAction() bool {
	return r >= Skip && r <= WildDrawFour
}

func (r Rank) IsWild() bool {
	return r == Wild || r == WildDrawFour
}

func (r Rank) Valid() bool {
	return r.IsNumber() || r.IsAction()
}

// Number returns the face value of a numeric rank and -1 for action ranks.
func (r Rank) Number() int {
	if !r.IsNumber() {
		return -1
	}
	return int(r)
}

func (r Rank) String() string {
	if r.IsNumber() {
		return fmt.Sprintf("[%d]", int(r))
	}
	if label, ok := rankLabels[r]; ok {
		return label
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

// Card is an immutable color and rank pair. Wild ranks carry color.Wild until played.
type Card struct {
	Color color.Color
	Rank  Rank
}

func New(cardColor color.Color, rank Rank) Card {
	return Card{Color: cardColor, Rank: rank}
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return New(cardColor, Rank(number))
}

func NewSkipCard(cardColor color.Color) Card {
	return New(cardColor, Skip)
}

func NewReverseCard(cardColor color.Color) Card {
	return New(cardColor, Reverse)
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return New(cardColor, DrawTwo)
}

func NewWildCard() Card {
	return New(color.Wild, Wild)
}

func NewWildDrawFourCard() Card {
	return New(color.Wild, WildDrawFour)
}

// PlayableOn reports whether c may be discarded on top of the given card.
func (c Card) PlayableOn(top Card) bool {
	return c.Color == color.Wild || c.Color == top.Color || c.Rank == top.Rank
}

func (c Card) IsWild() bool {
	return c.Rank.IsWild()
}

// WithColor returns the card resolved to a concrete color, keeping its rank.
func (c Card) WithColor(cardColor color.Color) Card {
	return New(cardColor, c.Rank)
}

func (c Card) Actions() []action.Action {
	switch c.Rank {
	case Skip:
		return []action.Action{
			action.NewSkipTurnAction(),
		}
	case Reverse:
		return []action.Action{
			action.NewReverseTurnsAction(),
		}
	case DrawTwo:
		return []action.Action{
			action.NewDrawCardsAction(consts.DrawTwoAmount),
			action.NewSkipTurnAction(),
		}
	case Wild:
		return []action.Action{
			action.NewPickColorAction(),
		}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewDrawCardsAction(consts.DrawFourAmount),
			action.NewSkipTurnAction(),
		}
	default:
		return []action.Action{}
	}
}

func (c Card) String() string {
	if c.Color == color.Wild {
		return c.Rank.String()
	}
	return c.Color.Paintf("%s %s", c.Color.Name(), c.Rank)
}
