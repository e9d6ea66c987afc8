package game

import (
	"github.com/ratel-online/uno/uno/event"
)

// Observer is notified after every discard and once when the game is won.
// It may also implement any other listener in package event to receive those
// notifications. Observers must not change game state.
type Observer interface {
	event.CardPlayedListener
	event.GameWonListener
}

type emitters struct {
	cardPlayed      event.CardPlayedEmitter
	gameWon         event.GameWonEmitter
	firstCardPlayed event.FirstCardPlayedEmitter
	colorPicked     event.ColorPickedEmitter
	playerPassed    event.PlayerPassedEmitter
	cardsDrawn      event.CardsDrawnEmitter
	turnSkipped     event.TurnSkippedEmitter
	turnStarted     event.TurnStartedEmitter
}

func (e *emitters) subscribe(observer Observer) {
	e.cardPlayed.AddListener(observer)
	e.gameWon.AddListener(observer)
	if listener, ok := observer.(event.FirstCardPlayedListener); ok {
		e.firstCardPlayed.AddListener(listener)
	}
	if listener, ok := observer.(event.ColorPickedListener); ok {
		e.colorPicked.AddListener(listener)
	}
	if listener, ok := observer.(event.PlayerPassedListener); ok {
		e.playerPassed.AddListener(listener)
	}
	if listener, ok := observer.(event.CardsDrawnListener); ok {
		e.cardsDrawn.AddListener(listener)
	}
	if listener, ok := observer.(event.TurnSkippedListener); ok {
		e.turnSkipped.AddListener(listener)
	}
	if listener, ok := observer.(event.TurnStartedListener); ok {
		e.turnStarted.AddListener(listener)
	}
}
