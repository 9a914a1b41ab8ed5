package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoridor/internal/game"
)

func parse(t *testing.T, args ...string) Config {
	t.Helper()
	var cfg Config
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, &cfg)
	require.NoError(t, fs.Parse(args))
	return cfg
}

func TestBindFlags_Defaults(t *testing.T) {
	cfg := parse(t)
	assert.Equal(t, Default().Port, cfg.Port)
	assert.Equal(t, 9, cfg.GridSize)
	assert.Equal(t, 10, cfg.WallsPerPlayer)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestBindFlags_EnvironmentFillsUnsetFlags(t *testing.T) {
	t.Setenv("QUORIDOR_GRID_SIZE", "7")
	t.Setenv("QUORIDOR_WALLS_PER_PLAYER", "4")
	t.Setenv("QUORIDOR_PONG_TIMEOUT", "30s")

	cfg := parse(t, "--walls-per-player=6")

	assert.Equal(t, 7, cfg.GridSize)
	assert.Equal(t, 6, cfg.WallsPerPlayer, "explicit flags win over the environment")
	assert.Equal(t, 30*time.Second, cfg.PongTimeout)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"port zero":       func(c *Config) { c.Port = 0 },
		"port too large":  func(c *Config) { c.Port = 70000 },
		"tiny grid":       func(c *Config) { c.GridSize = 2 },
		"negative walls":  func(c *Config) { c.WallsPerPlayer = -1 },
		"same colors":     func(c *Config) { c.Player2Color = c.Player1Color },
		"short keepalive": func(c *Config) { c.PongTimeout = time.Millisecond },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestRules(t *testing.T) {
	cfg := Default()
	cfg.GridSize = 5
	cfg.Player1Color = "green"

	r := cfg.Rules()
	assert.Equal(t, 5, r.GridSize)
	assert.Equal(t, "green", r.Colors[game.Player1])
	assert.Equal(t, game.DefaultPlayer2Color, r.Colors[game.Player2])
}
