package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	uuid "github.com/satori/go.uuid"
)

type Game struct {
	id       string
	players  *PlayerIterator
	supply   *Supply
	events   emitters
	phase    Phase
	winner   *playerController
	handSize int
	random   *rand.Rand
	shuffle  bool
}

type Option func(*Game)

// WithRand sets the source used to shuffle the draw pile.
func WithRand(random *rand.Rand) Option {
	return func(g *Game) {
		g.random = random
	}
}

// WithoutShuffle keeps the cards in the order given, for scripted games.
func WithoutShuffle() Option {
	return func(g *Game) {
		g.shuffle = false
	}
}

func WithHandSize(handSize int) Option {
	return func(g *Game) {
		g.handSize = handSize
	}
}

// WithObserver registers an observer before dealing, so it also sees the first card.
func WithObserver(observer Observer) Option {
	return func(g *Game) {
		g.events.subscribe(observer)
	}
}

// New seats the players, deals their hands from cards and turns up the first discard.
func New(players []Player, cards []card.Card, options ...Option) (*Game, error) {
	if len(players) < consts.MinPlayers {
		return nil, consts.ErrorsInsufficientPlayers
	}
	if len(cards) == 0 {
		return nil, consts.ErrorsEmptyDeck
	}

	g := &Game{
		id:       uuid.NewV4().String(),
		players:  newPlayerIterator(players),
		phase:    PhaseDealing,
		handSize: consts.InitialHandSize,
		shuffle:  true,
	}
	for _, option := range options {
		option(g)
	}
	if g.random == nil {
		g.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var random *rand.Rand
	if g.shuffle {
		random = g.random
	}
	g.supply = NewSupply(cards, random)

	if err := g.dealStartingCards(); err != nil {
		return nil, err
	}
	if err := g.playFirstCard(); err != nil {
		return nil, err
	}
	g.phase = PhaseAwaitingPlay

	if Verbose() {
		log.Infof("[game %s] started with %d players, first card %s\n", g.id, g.players.Len(), g.mustTop())
	}
	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Supply() *Supply {
	return g.supply
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Direction() int {
	return g.players.Direction()
}

// CurrentSeat is the seat that plays next.
func (g *Game) CurrentSeat() int {
	return g.players.Current().Seat()
}

func (g *Game) Current() Player {
	return g.players.Current().Player()
}

func (g *Game) Players() []Player {
	players := make([]Player, 0, g.players.Len())
	g.players.ForEach(func(player *playerController) {
		players = append(players, player.Player())
	})
	return players
}

func (g *Game) Won() bool {
	return g.phase == PhaseGameWon
}

// Winner returns the winning player's name once the game is won.
func (g *Game) Winner() (string, bool) {
	if g.winner == nil {
		return "", false
	}
	return g.winner.Name(), true
}

func (g *Game) AddObserver(observer Observer) {
	g.events.subscribe(observer)
}

func (g *Game) dealStartingCards() error {
	for round := 0; round < g.handSize; round++ {
		var err error
		g.players.ForEach(func(player *playerController) {
			if err != nil {
				return
			}
			var drawn card.Card
			drawn, err = g.supply.Draw()
			if err == nil {
				player.AddCards([]card.Card{drawn})
			}
		})
		if err != nil {
			return fmt.Errorf("dealing round %d: %w", round+1, err)
		}
	}
	return nil
}

func (g *Game) playFirstCard() error {
	firstCard, err := g.supply.Draw()
	if err != nil {
		return fmt.Errorf("turning up first card: %w", err)
	}
	firstCard = SeedCard(firstCard)
	g.supply.Discard(firstCard)
	g.events.firstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: firstCard,
	})
	return nil
}

func (g *Game) mustTop() card.Card {
	top, _ := g.supply.Top()
	return top
}

// Run plays turns until someone wins or a fatal error occurs.
// Turns that fail for any other reason are skipped.
func (g *Game) Run() (string, error) {
	for !g.Won() {
		result := g.PlayTurn()
		if result.Err == nil {
			continue
		}
		if result.Fatal() {
			return "", result.Err
		}
		if Verbose() {
			log.Errorf("[game %s] %s's turn skipped: %v\n", g.id, result.Player, result.Err)
		}
	}
	winner, _ := g.Winner()
	return winner, nil
}

// PlayTurn resolves the current player's turn. A non-fatal failure skips the turn.
func (g *Game) PlayTurn() (result TurnResult) {
	if g.Won() {
		return TurnResult{Err: consts.ErrorsGameOver}
	}
	player := g.players.Current()
	result = TurnResult{Seat: player.Seat(), Player: player.Name()}

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("%s: %v", player.Name(), r)
			if top, err := g.supply.Top(); err == nil && top.Color == color.Wild {
				g.supply.ReplaceTop(top.WithColor(SeedColor))
			}
			if result.Played {
				result.Card = g.mustTop()
			}
			g.phase = PhaseAwaitingPlay
		}
		// An emptied hand wins even when the rest of the turn failed.
		if result.Played && !result.Won && !result.Fatal() && player.NoCards() {
			g.declareWinner(player)
			result.Won = true
			result.Err = nil
		}
		if result.Err == nil || result.Fatal() || result.Won {
			return
		}
		result.Skipped = true
		g.events.turnSkipped.Emit(event.TurnSkippedPayload{
			PlayerName: player.Name(),
			Cause:      result.Err,
		})
		g.advance()
	}()

	top, err := g.supply.Top()
	if err != nil {
		result.Err = err
		return
	}
	g.events.turnStarted.Emit(event.TurnStartedPayload{
		Seat:       player.Seat(),
		PlayerName: player.Name(),
		TopCard:    top,
		Hand:       player.Hand(),
	})

	playedCard, ok, err := player.Play(g.ExtractState())
	if err != nil {
		result.Err = err
		return
	}
	if !ok {
		result.Drew = true
		result.Err = g.drawInstead(player)
		if result.Err == nil {
			g.advance()
		}
		return
	}

	result.Played = true
	g.supply.Discard(playedCard)
	g.events.cardPlayed.Emit(event.CardPlayedPayload{
		Seat:       player.Seat(),
		PlayerName: player.Name(),
		Card:       playedCard,
	})

	g.phase = PhaseApplyingEffect
	result.Effects, result.Err = g.performCardActions(player, playedCard)
	result.Card = g.mustTop()
	g.phase = PhaseAwaitingPlay
	if result.Fatal() {
		return
	}

	if player.NoCards() {
		g.declareWinner(player)
		result.Won = true
		result.Err = nil
		return
	}
	if result.Err == nil {
		g.advance()
	}
	return
}

func (g *Game) drawInstead(player *playerController) error {
	drawn, err := g.supply.Draw()
	if err != nil {
		return err
	}
	player.AddCards([]card.Card{drawn})
	g.events.playerPassed.Emit(event.PlayerPassedPayload{
		PlayerName: player.Name(),
	})
	g.events.cardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: player.Name(),
		Cards:      []card.Card{drawn},
	})
	return nil
}

// performCardActions applies the card's actions in order and returns those that took effect.
func (g *Game) performCardActions(player *playerController, playedCard card.Card) ([]action.Action, error) {
	applied := make([]action.Action, 0, 3)
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			victim := g.players.Upcoming()
			cards, err := g.supply.DrawN(cardAction.Amount())
			if len(cards) > 0 {
				victim.AddCards(cards)
				g.events.cardsDrawn.Emit(event.CardsDrawnPayload{
					PlayerName: victim.Name(),
					Cards:      cards,
				})
			}
			if err != nil {
				return applied, err
			}
		case action.ReverseTurnsAction:
			g.players.Reverse()
		case action.SkipTurnAction:
			g.players.Skip()
		case action.PickColorAction:
			chosen, err := player.PickColor(g.ExtractState())
			if err != nil {
				// The visible top must never stay wild.
				g.supply.ReplaceTop(playedCard.WithColor(SeedColor))
				return applied, err
			}
			g.supply.ReplaceTop(playedCard.WithColor(chosen))
			g.events.colorPicked.Emit(event.ColorPickedPayload{
				PlayerName: player.Name(),
				Color:      chosen,
			})
		}
		applied = append(applied, cardAction)
	}
	return applied, nil
}

func (g *Game) advance() {
	g.phase = PhaseAdvancingTurn
	g.players.Next()
	g.phase = PhaseAwaitingPlay
}

func (g *Game) declareWinner(player *playerController) {
	g.winner = player
	g.phase = PhaseGameWon
	g.events.gameWon.Emit(event.GameWonPayload{
		Seat:       player.Seat(),
		PlayerName: player.Name(),
	})
	if Verbose() {
		log.Infof("[game %s] %s wins\n", g.id, player.Name())
	}
}

// ExtractState builds the public view of the game for the current decision.
func (g *Game) ExtractState() State {
	playerSequence := make([]string, 0, g.players.Len())
	playerHandCounts := make([]int, 0, g.players.Len())

	g.players.ForEach(func(player *playerController) {
		playerSequence = append(playerSequence, player.Name())
		playerHandCounts = append(playerHandCounts, len(player.Hand()))
	})

	drawPileSize, _ := g.supply.Size()
	return State{
		LastPlayedCard:   g.mustTop(),
		CurrentSeat:      g.CurrentSeat(),
		PlayerSequence:   playerSequence,
		PlayerHandCounts: playerHandCounts,
		Direction:        g.Direction(),
		DrawPileSize:     drawPileSize,
	}
}

// CardCount is the number of cards in the game across the supply and every hand.
func (g *Game) CardCount() int {
	drawPileSize, discardPileSize := g.supply.Size()
	total := drawPileSize + discardPileSize
	g.players.ForEach(func(player *playerController) {
		total += len(player.Hand())
	})
	return total
}
