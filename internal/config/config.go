// Package config loads the settings of the bracket tool from a
// YAML file, a .env file and the environment. The environment
// wins over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ezBadminton/gobracket/badminton"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Path of the SQLite database with the brackets
	Database string `yaml:"database"`

	// debug, info, warn or error
	LogLevel string `yaml:"log_level"`

	Score ScoreConfig `yaml:"score"`
}

type ScoreConfig struct {
	WinningPoints  int  `yaml:"winning_points"`
	MaxPoints      int  `yaml:"max_points"`
	TwoPointMargin bool `yaml:"two_point_margin"`
}

func DefaultConfig() *Config {
	score := badminton.DefaultScoreSettings()
	return &Config{
		Database: "brackets.db",
		LogLevel: "info",
		Score: ScoreConfig{
			WinningPoints:  score.WinningPoints,
			MaxPoints:      score.MaxPoints,
			TwoPointMargin: score.TwoPointMargin,
		},
	}
}

// Loads the config file at path on top of the defaults and
// applies the environment overrides. A missing file is not
// an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// Loads .env files into the environment without overriding
// variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %v: %w", p, err)
		}
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if path := os.Getenv("BRACKET_DB"); path != "" {
		c.Database = path
	}
	if level := os.Getenv("BRACKET_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}

	ints := map[string]*int{
		"BRACKET_WINNING_POINTS": &c.Score.WinningPoints,
		"BRACKET_MAX_POINTS":     &c.Score.MaxPoints,
	}
	for key, field := range ints {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %v=%q is not a number", ErrInvalidConfig, key, value)
		}
		*field = n
	}

	if value := os.Getenv("BRACKET_TWO_POINT_MARGIN"); value != "" {
		margin, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: BRACKET_TWO_POINT_MARGIN=%q is not a boolean", ErrInvalidConfig, value)
		}
		c.Score.TwoPointMargin = margin
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Database == "" {
		return fmt.Errorf("%w: database path is empty", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.ScoreSettings(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return level, nil
}

func (c *Config) ScoreSettings() (badminton.ScoreSettings, error) {
	settings, err := badminton.NewScoreSettings(
		c.Score.WinningPoints,
		c.Score.MaxPoints,
		c.Score.TwoPointMargin,
	)
	if err != nil {
		return settings, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return settings, nil
}
