package config

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/ratel-online/uno/consts"
)

// Seat is one player at the table. An empty name lets the table pick a bot name.
type Seat struct {
	Name string
	Kind string
}

func (s Seat) String() string {
	return fmt.Sprintf("%s:%s", s.Name, s.Kind)
}

// Seats decodes "name:kind;name:kind" lists. A bare kind leaves the name empty.
type Seats []Seat

func (s *Seats) Decode(value string) error {
	seats := make(Seats, 0)
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		seat := Seat{Kind: entry}
		if i := strings.LastIndex(entry, ":"); i >= 0 {
			seat.Name = strings.TrimSpace(entry[:i])
			seat.Kind = entry[i+1:]
		}
		seat.Kind = strings.ToLower(strings.TrimSpace(seat.Kind))
		seats = append(seats, seat)
	}
	*s = seats
	return nil
}

func (s Seats) String() string {
	entries := make([]string, 0, len(s))
	for _, seat := range s {
		entries = append(entries, seat.String())
	}
	return strings.Join(entries, ";")
}

type Config struct {
	Players  Seats         `env:"UNO_PLAYERS,default=You:human;Annie:good;Braum:naive;Caitlyn:naive"`
	Simulate bool          `env:"UNO_SIMULATE,default=false,strict"`
	Rounds   int           `env:"UNO_ROUNDS,default=1,strict"`
	Seed     int64         `env:"UNO_SEED,strict"`
	Delay    time.Duration `env:"UNO_DELAY,default=0s,strict"`
	Color    bool          `env:"UNO_COLOR,default=true,strict"`
	Verbose  bool          `env:"UNO_VERBOSE,default=false,strict"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%v: %w", err, consts.ErrorsConfigInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Players) < consts.MinPlayers || len(c.Players) > consts.MaxPlayers {
		return invalid("%d seats configured, need %d to %d", len(c.Players), consts.MinPlayers, consts.MaxPlayers)
	}
	if c.Rounds < 1 {
		return invalid("rounds must be at least 1, got %d", c.Rounds)
	}
	if c.Delay < 0 {
		return invalid("delay must not be negative, got %s", c.Delay)
	}
	names := make(map[string]bool, len(c.Players))
	for _, seat := range c.Players {
		if !knownKind(seat.Kind) {
			return invalid("seat %s has unknown kind '%s', use one of %s", seat.Name, seat.Kind, strings.Join(consts.PlayerKinds, ", "))
		}
		if seat.Name == "" {
			continue
		}
		if names[seat.Name] {
			return invalid("seat name %s is used twice", seat.Name)
		}
		names[seat.Name] = true
	}
	return nil
}

// Table returns the seats to play with. In simulation every human seat is taken by a naive bot.
func (c *Config) Table() Seats {
	seats := make(Seats, 0, len(c.Players))
	for _, seat := range c.Players {
		if c.Simulate && seat.Kind == consts.PlayerKindHuman {
			seat.Kind = consts.PlayerKindNaive
		}
		seats = append(seats, seat)
	}
	return seats
}

// Random returns the source for shuffling and bot decisions, seeded from the clock when Seed is 0.
func (c *Config) Random() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func knownKind(kind string) bool {
	for _, k := range consts.PlayerKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), consts.ErrorsConfigInvalid)
}
