package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/luca-patrignani/pinochle/domain/meld"
	"github.com/luca-patrignani/pinochle/domain/table"
)

var DefaultPlayers = []string{"Player 1", "Player 2", "Player 3", "Player 4"}

type Config struct {
	Rules    meld.Rules
	Seed     string
	Players  []string
	Rounds   int
	LogLevel slog.Level
}

// LoadFromEnv reads the configuration from the environment:
//
//	PINOCHLE_RULES      standard | trump-agnostic (default standard)
//	PINOCHLE_SEED       replay a deal; empty means a random shuffle
//	PINOCHLE_PLAYERS    four comma separated names
//	PINOCHLE_ROUNDS     number of deals to play (default 1)
//	PINOCHLE_LOG_LEVEL  debug | info | warn | error (default info)
//
// Unknown rule variants, round counts and log levels fall back to their defaults with a
// warning; a wrong number of players is an error.
func LoadFromEnv() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Rules:    meld.StandardRules(),
		Seed:     getenv("PINOCHLE_SEED"),
		Players:  DefaultPlayers,
		Rounds:   1,
		LogLevel: slog.LevelInfo,
	}

	if v := strings.TrimSpace(getenv("PINOCHLE_RULES")); v != "" {
		if r, err := meld.RulesByName(v); err == nil {
			cfg.Rules = r
		} else {
			fmt.Fprintf(os.Stderr, "WARNING: invalid PINOCHLE_RULES=%q, using %s\n", v, cfg.Rules.Name)
		}
	}

	if v := strings.TrimSpace(getenv("PINOCHLE_LOG_LEVEL")); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = lvl
		} else {
			fmt.Fprintf(os.Stderr, "WARNING: invalid PINOCHLE_LOG_LEVEL=%q, using %s\n", v, cfg.LogLevel)
		}
	}

	if v := strings.TrimSpace(getenv("PINOCHLE_ROUNDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Rounds = n
		} else {
			fmt.Fprintf(os.Stderr, "WARNING: invalid PINOCHLE_ROUNDS=%q, using default %d\n", v, cfg.Rounds)
		}
	}

	if v := getenv("PINOCHLE_PLAYERS"); v != "" {
		var players []string
		for _, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				players = append(players, p)
			}
		}
		if len(players) != table.Seats {
			return Config{}, fmt.Errorf("PINOCHLE_PLAYERS must name %d players, got %d", table.Seats, len(players))
		}
		cfg.Players = players
	}

	if err := cfg.Rules.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
