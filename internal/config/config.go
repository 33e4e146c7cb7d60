// Package config loads EduWiki runtime settings from EDUWIKI_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/eduwiki/eduwiki/internal/llm"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "EDUWIKI_"

type Config struct {
	// Language is the initial interface language code.
	Language string `env:"LANGUAGE" envDefault:"en"`

	// Seed makes topic, content and quiz randomness reproducible when
	// non-zero.
	Seed uint64 `env:"SEED"`

	Journal JournalConfig `envPrefix:"JOURNAL_"`
	Wiki    WikiConfig    `envPrefix:"WIKI_"`
	Cache   CacheConfig   `envPrefix:"CACHE_"`
	Server  ServerConfig  `envPrefix:"SERVER_"`
	Log     LogConfig     `envPrefix:"LOG_"`
	LLM     llm.Config    `envPrefix:"LLM_"`
}

// JournalConfig controls the SQLite activity journal.
type JournalConfig struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`

	// Path overrides the default database location.
	Path string `env:"PATH"`
}

// WikiConfig controls encyclopedia lookups.
type WikiConfig struct {
	BaseURL   string        `env:"BASE_URL" envDefault:"https://en.wikipedia.org"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"5s"`
	UserAgent string        `env:"USER_AGENT" envDefault:"EduWiki/1.0 (https://github.com/eduwiki/eduwiki)"`

	// AIFallback asks the configured LLM when Wikipedia has no summary.
	AIFallback bool `env:"AI_FALLBACK"`
}

// CacheConfig controls summary caching. An empty URL disables the cache.
type CacheConfig struct {
	URL string        `env:"URL"`
	TTL time.Duration `env:"TTL" envDefault:"24h"`
}

type ServerConfig struct {
	Addr           string        `env:"ADDR" envDefault:":8080"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"warn"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// Default returns the configuration with every default applied and nothing
// read from the process environment.
func Default() Config {
	cfg, _ := parse(map[string]string{})
	return cfg
}

// Load reads the configuration from the process environment. The LLM section
// comes from llm.ConfigFromEnv, which checks the vendors' standard API key
// variables when no provider is named.
func Load() (Config, error) {
	cfg, err := parse(nil)
	if err != nil {
		return Config{}, err
	}
	if cfg.LLM, err = llm.ConfigFromEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func parse(environment map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: EnvPrefix, Environment: environment}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once. LLM settings are checked
// when the provider is built, so a missing key only disables AI summaries.
func (c Config) Validate() error {
	var errs []error
	if c.Wiki.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%sWIKI_TIMEOUT must be positive", EnvPrefix))
	}
	if !strings.HasPrefix(c.Wiki.BaseURL, "http://") && !strings.HasPrefix(c.Wiki.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("%sWIKI_BASE_URL must be an http(s) URL", EnvPrefix))
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, fmt.Errorf("%sCACHE_TTL must not be negative", EnvPrefix))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("%sLOG_FORMAT must be text or json, got %q", EnvPrefix, c.Log.Format))
	}
	return errors.Join(errs...)
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%sLOG_LEVEL: %w", EnvPrefix, err)
	}
	return l, nil
}
