package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven settings shared by tgram binaries.
type Config struct {
	// BotToken authenticates against the Bot API.
	BotToken string `env:"TGRAM_BOT_TOKEN,required"`
	// APIURL is the Bot API endpoint prefix, overridable for local Bot API
	// servers.
	APIURL string `env:"TGRAM_API_URL" envDefault:"https://api.telegram.org/bot"`
	// DownloadDir is where fetched files land when no explicit output path
	// is given.
	DownloadDir string `env:"TGRAM_DOWNLOAD_DIR" envDefault:"."`
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
