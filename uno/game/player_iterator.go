package game

type PlayerIterator struct {
	players []*playerController
	cycler  *Cycler
}

func newPlayerIterator(players []Player) *PlayerIterator {
	controllers := make([]*playerController, 0, len(players))
	for seat, player := range players {
		controllers = append(controllers, newPlayerController(seat, player))
	}
	return &PlayerIterator{
		players: controllers,
		cycler:  NewCycler(len(controllers)),
	}
}

func (i *PlayerIterator) Len() int {
	return len(i.players)
}

func (i *PlayerIterator) Get(seat int) *playerController {
	return i.players[seat]
}

func (i *PlayerIterator) Current() *playerController {
	return i.players[i.cycler.Current()]
}

// Upcoming is the player Next would move to.
func (i *PlayerIterator) Upcoming() *playerController {
	return i.players[i.cycler.Peek()]
}

func (i *PlayerIterator) Direction() int {
	return i.cycler.Direction()
}

// ForEach visits every seat in seating order, regardless of the current direction.
func (i *PlayerIterator) ForEach(function func(player *playerController)) {
	i.cycler.ForEach(func(seat int) {
		function(i.players[seat])
	})
}

func (i *PlayerIterator) Next() *playerController {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}

// Skip moves past the upcoming player and returns it.
func (i *PlayerIterator) Skip() *playerController {
	return i.Next()
}
