package service

import (
	"sort"
	"sync/atomic"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/uno/uno/event"
)

var standingIds int64 = 0
var standings = hashmap.New()

// Standing is one player's record across the games a Scoreboard has watched.
type Standing struct {
	ID          int64
	Name        string
	Seat        int
	Wins        int
	CardsPlayed int
}

// Scoreboard tallies wins and plays over a series of games at the same table.
// It is registered as an observer on every game of the series.
type Scoreboard struct {
	games int
	ids   map[string]int64
	order []int64
}

func NewScoreboard(names []string) *Scoreboard {
	s := &Scoreboard{ids: make(map[string]int64, len(names))}
	for seat, name := range names {
		standing := &Standing{
			ID:   atomic.AddInt64(&standingIds, 1),
			Name: name,
			Seat: seat,
		}
		standings.Set(standing.ID, standing)
		s.ids[name] = standing.ID
		s.order = append(s.order, standing.ID)
	}
	return s
}

func (s *Scoreboard) OnCardPlayed(payload event.CardPlayedPayload) {
	if standing := s.get(payload.PlayerName); standing != nil {
		standing.CardsPlayed++
	}
}

func (s *Scoreboard) OnGameWon(payload event.GameWonPayload) {
	s.games++
	if standing := s.get(payload.PlayerName); standing != nil {
		standing.Wins++
	}
}

// Games is the number of games won so far.
func (s *Scoreboard) Games() int {
	return s.games
}

// Standings lists every seat, most wins first and seat order among equals.
func (s *Scoreboard) Standings() []Standing {
	list := make([]Standing, 0, len(s.order))
	for _, id := range s.order {
		if v, ok := standings.Get(id); ok {
			list = append(list, *v.(*Standing))
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Wins != list[j].Wins {
			return list[i].Wins > list[j].Wins
		}
		return list[i].Seat < list[j].Seat
	})
	return list
}

// Close drops the scoreboard's records.
func (s *Scoreboard) Close() {
	for _, id := range s.order {
		standings.Del(id)
	}
	s.order = nil
	s.ids = map[string]int64{}
}

func (s *Scoreboard) get(name string) *Standing {
	id, ok := s.ids[name]
	if !ok {
		return nil
	}
	if v, ok := standings.Get(id); ok {
		return v.(*Standing)
	}
	return nil
}

// OpenStandings counts the records held by scoreboards that are not closed.
func OpenStandings() int {
	count := 0
	standings.Foreach(func(e *hashmap.Entry) {
		if _, ok := e.Value().(*Standing); ok {
			count++
		}
	})
	return count
}
