package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// playerController guards the engine against players that break the Player contract.
type playerController struct {
	seat   int
	player Player
}

func newPlayerController(seat int, player Player) *playerController {
	return &playerController{
		seat:   seat,
		player: player,
	}
}

func (c *playerController) Seat() int {
	return c.seat
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) Player() Player {
	return c.player
}

func (c *playerController) AddCards(cards []card.Card) {
	if len(cards) == 0 {
		return
	}
	c.player.Receive(cards...)
}

func (c *playerController) Hand() []card.Card {
	return c.player.Hand()
}

func (c *playerController) NoCards() bool {
	return len(c.player.Hand()) == 0
}

func (c *playerController) PickColor(gameState State) (color.Color, error) {
	chosen, err := c.player.PickColor(gameState)
	if err != nil {
		return color.Wild, err
	}
	if chosen == color.Wild || !chosen.Valid() {
		return color.Wild, fmt.Errorf("%s picked %s: %w", c.Name(), chosen.Name(), consts.ErrorsColorInvalid)
	}
	return chosen, nil
}

// Play asks the player for a card and checks it. A rejected card is handed back.
func (c *playerController) Play(gameState State) (_ card.Card, _ bool, err error) {
	before := c.player.Hand()
	defer func() {
		if r := recover(); r != nil {
			if missing, extra := missingCards(before, c.player.Hand()); !extra {
				c.AddCards(missing)
			}
			err = fmt.Errorf("%s panicked while playing: %v", c.Name(), r)
		}
	}()

	selectedCard, ok, err := c.player.Play(gameState)
	after := c.player.Hand()

	if !ok {
		missing, extra := missingCards(before, after)
		if !extra {
			c.AddCards(missing)
		}
		if err == nil && (extra || len(missing) > 0) {
			err = fmt.Errorf("%s changed its hand without playing: %w", c.Name(), consts.ErrorsIllegalPlay)
		}
		return card.Card{}, false, err
	}

	missing, extra := missingCards(before, after)
	if extra || len(missing) != 1 || missing[0] != selectedCard {
		if !extra {
			c.AddCards(missing)
		}
		return card.Card{}, false, fmt.Errorf("%s played %s which it did not surrender from its hand: %w", c.Name(), selectedCard, consts.ErrorsIllegalPlay)
	}
	if err != nil {
		c.AddCards(missing)
		return card.Card{}, false, err
	}
	if !Playable(selectedCard, gameState.LastPlayedCard) {
		c.AddCards(missing)
		return card.Card{}, false, fmt.Errorf("%s played %s on %s: %w", c.Name(), selectedCard, gameState.LastPlayedCard, consts.ErrorsIllegalPlay)
	}
	return selectedCard, true, nil
}

// missingCards returns the cards of before that are absent from after, and whether
// after holds a card that before did not.
func missingCards(before []card.Card, after []card.Card) ([]card.Card, bool) {
	counts := make(map[card.Card]int, len(before))
	for _, c := range before {
		counts[c]++
	}
	for _, c := range after {
		if counts[c] == 0 {
			return nil, true
		}
		counts[c]--
	}
	var missing []card.Card
	for _, c := range before {
		if counts[c] > 0 {
			missing = append(missing, c)
			counts[c]--
		}
	}
	return missing, false
}
