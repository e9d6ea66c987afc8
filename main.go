package main

import (
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	color.SetEnabled(cfg.Color)
	game.SetVerbose(cfg.Verbose)

	seats := cfg.Table()
	printer := ui.NewPrinter(color.Stdout, cfg.Delay)
	if cfg.Simulate {
		printer.FollowTurns()
	}
	console := ui.NewConsole(os.Stdin, printer)
	random := cfg.Random()

	players, err := player.CreatePlayers(seats, console, random)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(players))
	for i, p := range players {
		names = append(names, p.Name())
		if seats[i].Kind == consts.PlayerKindHuman {
			printer.Reveal(p.Name())
		}
	}
	scoreboard := service.NewScoreboard(names)
	defer scoreboard.Close()

	printer.Welcome()
	for round := 1; round <= cfg.Rounds; round++ {
		printer.RoundStarted(round, cfg.Rounds, names)
		if round > 1 {
			// Every round starts from fresh hands at the same table.
			if players, err = player.CreatePlayers(seatsNamed(seats, names), console, random); err != nil {
				return err
			}
		}
		g, err := game.New(players, game.StandardCards(),
			game.WithRand(random),
			game.WithObserver(printer),
			game.WithObserver(scoreboard),
		)
		if err != nil {
			return err
		}
		if _, err := g.Run(); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
	}
	if cfg.Rounds > 1 {
		printer.Standings(scoreboard.Standings())
	}
	return nil
}

// seatsNamed pins every seat to the name it got in the first round.
func seatsNamed(seats config.Seats, names []string) config.Seats {
	named := make(config.Seats, 0, len(seats))
	for i, seat := range seats {
		seat.Name = names[i]
		named = append(named, seat)
	}
	return named
}
