package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"quoridor/internal/game"
)

const EnvPrefix = "QUORIDOR"

type Config struct {
	Bind           string
	Port           int
	GridSize       int
	WallsPerPlayer int
	Player1Color   string
	Player2Color   string
	PublicURL      string
	AllowedOrigins []string
	PongTimeout    time.Duration
	Release        bool
	Verbose        bool
}

func Default() Config {
	return Config{
		Bind:           "0.0.0.0",
		Port:           8080,
		GridSize:       game.DefaultGridSize,
		WallsPerPlayer: game.DefaultWallsPerPlayer,
		Player1Color:   game.DefaultPlayer1Color,
		Player2Color:   game.DefaultPlayer2Color,
		PongTimeout:    60 * time.Second,
	}
}

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	if c.GridSize < 3 {
		return fmt.Errorf("grid size must be at least 3: %d", c.GridSize)
	}
	if c.WallsPerPlayer < 0 {
		return fmt.Errorf("walls per player must not be negative: %d", c.WallsPerPlayer)
	}
	if strings.EqualFold(c.Player1Color, c.Player2Color) {
		return errors.New("player colors must differ")
	}
	if c.PongTimeout <= time.Second {
		return fmt.Errorf("pong timeout too short: %s", c.PongTimeout)
	}
	return nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Bind, strconv.Itoa(c.Port))
}

// Rules derives the per-match rule set.
func (c Config) Rules() game.Rules {
	return game.Rules{
		GridSize:       c.GridSize,
		WallsPerPlayer: c.WallsPerPlayer,
		Colors: map[game.PlayerID]string{
			game.Player1: c.Player1Color,
			game.Player2: c.Player2Color,
		},
	}
}

// BindFlags registers every setting on fs and lets QUORIDOR_* environment
// variables fill in flags the user did not pass.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	d := Default()
	fs.StringVarP(&cfg.Bind, "bind", "b", d.Bind, "address to bind to (env: QUORIDOR_BIND)")
	fs.IntVarP(&cfg.Port, "port", "p", d.Port, "port to listen on (env: QUORIDOR_PORT)")
	fs.IntVar(&cfg.GridSize, "grid-size", d.GridSize, "board dimension (env: QUORIDOR_GRID_SIZE)")
	fs.IntVar(&cfg.WallsPerPlayer, "walls-per-player", d.WallsPerPlayer, "walls each player may place (env: QUORIDOR_WALLS_PER_PLAYER)")
	fs.StringVar(&cfg.Player1Color, "player1-color", d.Player1Color, "player1 token and wall color (env: QUORIDOR_PLAYER1_COLOR)")
	fs.StringVar(&cfg.Player2Color, "player2-color", d.Player2Color, "player2 token and wall color (env: QUORIDOR_PLAYER2_COLOR)")
	fs.StringVar(&cfg.PublicURL, "public-url", d.PublicURL, "externally reachable base URL used in invite QR codes (env: QUORIDOR_PUBLIC_URL)")
	fs.StringSliceVar(&cfg.AllowedOrigins, "allowed-origins", nil, "websocket origins to accept, empty allows all (env: QUORIDOR_ALLOWED_ORIGINS)")
	fs.DurationVar(&cfg.PongTimeout, "pong-timeout", d.PongTimeout, "drop websocket clients silent for this long (env: QUORIDOR_PONG_TIMEOUT)")
	fs.BoolVar(&cfg.Release, "release", d.Release, "run gin in release mode (env: QUORIDOR_RELEASE)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", d.Verbose, "log at debug level (env: QUORIDOR_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if ss, ok := val.([]string); ok {
				val = strings.Join(ss, ",")
			}
			_ = fs.Set(f.Name, fmt.Sprintf("%v", val))
		}
	})

	return v
}
