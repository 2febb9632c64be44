package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config stores environment-driven settings for the server.
type Config struct {
	// CatalogPath is the path to the YAML catalog file.
	CatalogPath string `env:"MYTOOLS_CATALOG" envDefault:"commands.yaml"`
	// LogLevel sets the logger level.
	LogLevel string `env:"MYTOOLS_LOG_LEVEL" envDefault:"info"`
	// Lang selects message language for stream and error texts.
	Lang string `env:"MYTOOLS_LANG" envDefault:"en"`
	// ShutdownTimeout controls graceful shutdown duration.
	ShutdownTimeout time.Duration `env:"MYTOOLS_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses environment variables into Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
