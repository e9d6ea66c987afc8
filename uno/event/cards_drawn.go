package event

import "github.com/ratel-online/uno/uno/card"

type CardsDrawnPayload struct {
	PlayerName string
	Cards      []card.Card
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type CardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *CardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *CardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		notify("cards drawn", func() { listener.OnCardsDrawn(payload) })
	}
}
