package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"local"`
	SentryDSN string `envconfig:"SENTRY_DSN"`

	Log struct {
		Level     slog.Level `envconfig:"LOG_LEVEL" default:"WARN"`
		Format    string     `envconfig:"LOG_FORMAT" default:"json"`
		AddSource bool       `envconfig:"LOG_ADD_SOURCE"`
	}
	Bot struct {
		Prompt string `envconfig:"BOT_PROMPT" default:"Enter a command: "`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}

// NewLogger builds the process logger described by the Log section.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     c.Log.Level,
		AddSource: c.Log.AddSource,
	}
	if c.Log.Format == LogFormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
