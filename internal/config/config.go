// apps/solver/internal/config/config.go
//
// Runtime configuration for the solver CLI.
//
// Sources, lowest to highest precedence:
//   1. Built-in defaults.
//   2. An optional YAML file (wordle.yml).
//   3. Environment variables (a .env file is loaded by main via godotenv).
//   4. Command-line flags, applied by the commands package.
//
// Environment variables:
//   WORDS_DICTIONARY_FILE, WORDS_ANSWERS_FILE, SOLVER_OPENING, GAME_MAX_TURNS,
//   BENCH_WORKERS, BENCH_LIMIT, BENCH_DB, DAILY_SALT, LOG_LEVEL

package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "wordle.yml"

// Config holds every setting the commands need.
type Config struct {
	Dictionary string `yaml:"dictionary,omitempty"` // "<word> <freq>" file; empty = embedded
	Answers    string `yaml:"answers,omitempty"`    // answer list; empty = embedded
	Opening    string `yaml:"opening,omitempty"`
	MaxTurns   int    `yaml:"max_turns,omitempty"`
	Workers    int    `yaml:"workers,omitempty"`
	Limit      int    `yaml:"limit,omitempty"`
	Database   string `yaml:"database,omitempty"` // SQLite path; empty = in-memory
	DailySalt  string `yaml:"daily_salt,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Opening:   "tares",
		MaxTurns:  game.MaxTurns,
		Workers:   runtime.NumCPU(),
		DailySalt: "local_dev_salt",
		LogLevel:  "info",
	}
}

// Load reads defaults, then the YAML file at path, then the environment.
// An empty path tries DefaultFile and silently skips it when missing; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Dictionary = getEnv("WORDS_DICTIONARY_FILE", c.Dictionary)
	c.Answers = getEnv("WORDS_ANSWERS_FILE", c.Answers)
	c.Opening = getEnv("SOLVER_OPENING", c.Opening)
	c.Database = getEnv("BENCH_DB", c.Database)
	c.DailySalt = getEnv("DAILY_SALT", c.DailySalt)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	var err error
	if c.MaxTurns, err = envInt("GAME_MAX_TURNS", c.MaxTurns); err != nil {
		return err
	}
	if c.Workers, err = envInt("BENCH_WORKERS", c.Workers); err != nil {
		return err
	}
	if c.Limit, err = envInt("BENCH_LIMIT", c.Limit); err != nil {
		return err
	}
	return nil
}

// Validate checks ranges and fills in defaults for zero values.
func (c *Config) Validate() error {
	if c.MaxTurns == 0 {
		c.MaxTurns = game.MaxTurns
	}
	if c.MaxTurns < 1 || c.MaxTurns > game.MaxTurns {
		return fmt.Errorf("max_turns must be between 1 and %d, got %d", game.MaxTurns, c.MaxTurns)
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must be >= 0, got %d", c.Limit)
	}
	if c.Opening == "" {
		c.Opening = "tares"
	}
	if _, err := game.ParseWord(c.Opening); err != nil {
		return fmt.Errorf("opening: %w", err)
	}
	return nil
}

// OpeningWord returns the validated opening word.
func (c *Config) OpeningWord() game.Word {
	w, _ := game.ParseWord(c.Opening)
	return w
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", k, v)
	}
	return n, nil
}
