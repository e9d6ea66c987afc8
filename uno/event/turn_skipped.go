package event

// TurnSkippedPayload reports a turn abandoned because resolving it failed.
type TurnSkippedPayload struct {
	PlayerName string
	Cause      error
}

type TurnSkippedListener interface {
	OnTurnSkipped(TurnSkippedPayload)
}

type TurnSkippedEmitter struct {
	listeners []TurnSkippedListener
}

func (e *TurnSkippedEmitter) AddListener(listener TurnSkippedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnSkippedEmitter) Emit(payload TurnSkippedPayload) {
	for _, listener := range e.listeners {
		notify("turn skipped", func() { listener.OnTurnSkipped(payload) })
	}
}
