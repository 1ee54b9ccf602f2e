package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are process-level options read from the environment.
// The CLI uses them as flag defaults, so flags still win.
type Settings struct {
	DBPath     string `env:"COINRUN_DB" envDefault:"~/.coinrun/scores.db"`
	FPS        int    `env:"COINRUN_FPS" envDefault:"60"`
	LogFile    string `env:"COINRUN_LOG"`
	Difficulty string `env:"COINRUN_DIFFICULTY"`
}

// ParseEnv loads Settings from environment variables.
func ParseEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
