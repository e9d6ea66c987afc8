package event

// PlayerPassedPayload is emitted when a player draws instead of playing.
type PlayerPassedPayload struct {
	PlayerName string
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

type PlayerPassedEmitter struct {
	listeners []PlayerPassedListener
}

func (e *PlayerPassedEmitter) AddListener(listener PlayerPassedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *PlayerPassedEmitter) Emit(payload PlayerPassedPayload) {
	for _, listener := range e.listeners {
		notify("player passed", func() { listener.OnPlayerPassed(payload) })
	}
}
