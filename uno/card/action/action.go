package action

import "fmt"

// Action is one effect a played card has on the table, applied in list order.
type Action interface {
	fmt.Stringer
}

// DrawCardsAction makes the upcoming seat draw cards.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

func (a DrawCardsAction) String() string {
	return fmt.Sprintf("draw %d", a.amount)
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

func (ReverseTurnsAction) String() string {
	return "reverse"
}

// SkipTurnAction passes over the upcoming seat.
type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

func (SkipTurnAction) String() string {
	return "skip"
}

type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

func (PickColorAction) String() string {
	return "pick color"
}
