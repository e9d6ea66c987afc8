package event

import "github.com/ratel-online/uno/uno/card"

// TurnStartedPayload describes the table as a player is asked to move.
type TurnStartedPayload struct {
	Seat       int
	PlayerName string
	TopCard    card.Card
	Hand       []card.Card
}

type TurnStartedListener interface {
	OnTurnStarted(TurnStartedPayload)
}

type TurnStartedEmitter struct {
	listeners []TurnStartedListener
}

func (e *TurnStartedEmitter) AddListener(listener TurnStartedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnStartedEmitter) Emit(payload TurnStartedPayload) {
	for _, listener := range e.listeners {
		notify("turn started", func() { listener.OnTurnStarted(payload) })
	}
}
