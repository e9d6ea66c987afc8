package player

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers seats a player for every configured seat, in order.
// Unnamed seats get a bot name no other seat uses. Each naive bot draws
// from its own source seeded from random, so a seed replays the whole table.
func CreatePlayers(seats []config.Seat, input Input, random *rand.Rand) ([]game.Player, error) {
	names := generateNames(seats, random)
	players := make([]game.Player, 0, len(seats))
	for i, seat := range seats {
		switch seat.Kind {
		case consts.PlayerKindHuman:
			if input == nil {
				return nil, fmt.Errorf("seat %s is human but there is no input: %w", names[i], consts.ErrorsConfigInvalid)
			}
			players = append(players, NewHumanPlayer(names[i], input))
		case consts.PlayerKindNaive:
			players = append(players, NewNaivePlayer(names[i], rand.New(rand.NewSource(random.Int63()))))
		case consts.PlayerKindGood:
			players = append(players, NewGoodPlayer(names[i]))
		default:
			return nil, fmt.Errorf("seat %s has unknown kind '%s': %w", names[i], seat.Kind, consts.ErrorsConfigInvalid)
		}
	}
	return players, nil
}

func generateNames(seats []config.Seat, random *rand.Rand) []string {
	taken := make(map[string]bool, len(seats))
	for _, seat := range seats {
		taken[seat.Name] = true
	}
	available := make([]string, 0, len(botNames))
	for _, botName := range botNames {
		if !taken[botName] {
			available = append(available, botName)
		}
	}
	random.Shuffle(len(available), func(i int, j int) { available[i], available[j] = available[j], available[i] })

	names := make([]string, 0, len(seats))
	for i, seat := range seats {
		name := seat.Name
		if name == "" {
			if len(available) > 0 {
				name, available = available[0], available[1:]
			} else {
				name = fallbackName(i+1, taken)
			}
			taken[name] = true
		}
		names = append(names, name)
	}
	return names
}

func fallbackName(seat int, taken map[string]bool) string {
	name := fmt.Sprintf("Bot %d", seat)
	for suffix := 2; taken[name]; suffix++ {
		name = fmt.Sprintf("Bot %d-%d", seat, suffix)
	}
	return name
}
