// Package config loads runtime defaults for the bembo command-line tools
// from the environment, following the same env-tag-driven pattern the
// rest of the retrieved pack uses for its services.
package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds the defaults shared by cmd/bembofmt and cmd/bembo-bench.
// cmd/bembofmt's -width and -verbose flags override Width and Verbose.
type Config struct {
	Width    int    `env:"BEMBO_WIDTH" envDefault:"80"`
	Verbose  bool   `env:"BEMBO_VERBOSE" envDefault:"false"`
	Indent   int    `env:"BEMBO_INDENT" envDefault:"2"`
	LogLevel string `env:"BEMBO_LOG_LEVEL" envDefault:"info"`
}

// Options controls how Parse loads the environment.
type Options struct {
	EnvFilePath string
}

// Parse reads Config from the process environment, optionally seeded from
// a .env-style file first.
func Parse(opt *Options) (*Config, error) {
	if opt != nil && opt.EnvFilePath != "" {
		if err := godotenv.Load(opt.EnvFilePath); err != nil {
			log.Debugf("no env file loaded from %q: %v", opt.EnvFilePath, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
