package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/stretchr/testify/require"
)

var variables = []string{"UNO_PLAYERS", "UNO_SIMULATE", "UNO_ROUNDS", "UNO_SEED", "UNO_DELAY", "UNO_COLOR", "UNO_VERBOSE"}

func withEnv(t *testing.T, env map[string]string) {
	saved := make(map[string]string)
	for _, name := range variables {
		if value, ok := os.LookupEnv(name); ok {
			saved[name] = value
		}
		require.NoError(t, os.Unsetenv(name))
	}
	for name, value := range env {
		require.NoError(t, os.Setenv(name, value))
	}
	t.Cleanup(func() {
		for _, name := range variables {
			_ = os.Unsetenv(name)
		}
		for name, value := range saved {
			_ = os.Setenv(name, value)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("uses_defaults", func(t *testing.T) {
		withEnv(t, nil)
		cfg, err := config.Load()
		require.NoError(t, err)
		require.Equal(t, config.Seats{
			{Name: "You", Kind: consts.PlayerKindHuman},
			{Name: "Annie", Kind: consts.PlayerKindGood},
			{Name: "Braum", Kind: consts.PlayerKindNaive},
			{Name: "Caitlyn", Kind: consts.PlayerKindNaive},
		}, cfg.Players)
		require.False(t, cfg.Simulate)
		require.Equal(t, 1, cfg.Rounds)
		require.Equal(t, int64(0), cfg.Seed)
		require.Equal(t, time.Duration(0), cfg.Delay)
		require.True(t, cfg.Color)
		require.False(t, cfg.Verbose)
	})

	t.Run("reads_the_environment", func(t *testing.T) {
		withEnv(t, map[string]string{
			"UNO_PLAYERS":  " Ann : Naive ;Bob:good; good ;",
			"UNO_SIMULATE": "true",
			"UNO_ROUNDS":   "20",
			"UNO_SEED":     "42",
			"UNO_DELAY":    "250ms",
			"UNO_COLOR":    "false",
			"UNO_VERBOSE":  "true",
		})
		cfg, err := config.Load()
		require.NoError(t, err)
		require.Equal(t, config.Seats{
			{Name: "Ann", Kind: consts.PlayerKindNaive},
			{Name: "Bob", Kind: consts.PlayerKindGood},
			{Name: "", Kind: consts.PlayerKindGood},
		}, cfg.Players)
		require.True(t, cfg.Simulate)
		require.Equal(t, 20, cfg.Rounds)
		require.Equal(t, int64(42), cfg.Seed)
		require.Equal(t, 250*time.Millisecond, cfg.Delay)
		require.False(t, cfg.Color)
		require.True(t, cfg.Verbose)
	})

	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "rejects_a_single_seat", env: map[string]string{"UNO_PLAYERS": "Ann:naive"}},
		{name: "rejects_eleven_seats", env: map[string]string{"UNO_PLAYERS": "naive;naive;naive;naive;naive;naive;naive;naive;naive;naive;naive"}},
		{name: "rejects_unknown_kinds", env: map[string]string{"UNO_PLAYERS": "Ann:naive;Bob:genius"}},
		{name: "rejects_duplicate_names", env: map[string]string{"UNO_PLAYERS": "Ann:naive;Ann:good"}},
		{name: "rejects_zero_rounds", env: map[string]string{"UNO_ROUNDS": "0"}},
		{name: "rejects_malformed_numbers", env: map[string]string{"UNO_ROUNDS": "many"}},
		{name: "rejects_malformed_durations", env: map[string]string{"UNO_DELAY": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEnv(t, tt.env)
			_, err := config.Load()
			require.ErrorIs(t, err, consts.ErrorsConfigInvalid)
			require.True(t, consts.IsFatal(err))
		})
	}
}

func TestTable(t *testing.T) {
	cfg := &config.Config{
		Players: config.Seats{
			{Name: "You", Kind: consts.PlayerKindHuman},
			{Name: "Annie", Kind: consts.PlayerKindGood},
		},
	}
	require.Equal(t, cfg.Players, cfg.Table())

	cfg.Simulate = true
	require.Equal(t, config.Seats{
		{Name: "You", Kind: consts.PlayerKindNaive},
		{Name: "Annie", Kind: consts.PlayerKindGood},
	}, cfg.Table())
	require.Equal(t, consts.PlayerKindHuman, cfg.Players[0].Kind)
}

func TestRandom(t *testing.T) {
	cfg := &config.Config{Seed: 7}
	require.Equal(t, cfg.Random().Int63(), cfg.Random().Int63())
}

func TestSeatsString(t *testing.T) {
	seats := config.Seats{{Name: "Ann", Kind: "naive"}, {Name: "Bob", Kind: "good"}}
	require.Equal(t, "Ann:naive;Bob:good", seats.String())
}
