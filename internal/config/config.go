package config

import (
	"errors"
	"fmt"
	"os"
)

var ErrMissingRequiredValue = errors.New("missing required value")
var ErrInvalidValue = errors.New("invalid value")

// Maximum number of rows in the rendered table
const DEFAULT_ROW_LIMIT = 300

// Number of advancements in ADVANCEMENT_CATEGORIES in the target game version.
// Must be kept in sync with the categories.
const TOTAL_ADVANCEMENTS = 55

var ADVANCEMENT_CATEGORIES = []string{"story", "nether", "end", "adventure", "husbandry"}

type environment string

const (
	production  environment = "production"
	staging     environment = "staging"
	development environment = "development"
)

type Config struct {
	serverDir         string
	sentryDSN         string
	databaseURL       string
	otlpEndpoint      string
	mojangFallback    bool
	rowLimit          int
	totalAdvancements int
	env               environment
}

// Directory containing stats/, advancements/ and playerdata/
func (c *Config) ServerDir() string {
	return c.serverDir
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

// Empty when the leaderboard should not be archived
func (c *Config) DatabaseURL() string {
	return c.databaseURL
}

func (c *Config) OTLPEndpoint() string {
	return c.otlpEndpoint
}

func (c *Config) MojangFallback() bool {
	return c.mojangFallback
}

func (c *Config) RowLimit() int {
	return c.rowLimit
}

func (c *Config) TotalAdvancements() int {
	return c.totalAdvancements
}

func (c *Config) AdvancementCategories() []string {
	categories := make([]string, len(ADVANCEMENT_CATEGORIES))
	copy(categories, ADVANCEMENT_CATEGORIES)
	return categories
}

func (c *Config) IsProduction() bool {
	return c.env == production
}

func (c *Config) IsStaging() bool {
	return c.env == staging
}

func (c *Config) IsDevelopment() bool {
	return c.env == development
}

func (c *Config) Environment() string {
	return string(c.env)
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf(
		"Config{env: %s, serverDir: %s, archive: %t, mojangFallback: %t, rowLimit: %d, ...}",
		string(c.env),
		c.serverDir,
		c.databaseURL != "",
		c.mojangFallback,
		c.rowLimit,
	)
}

func ConfigFromEnv() (Config, error) {
	missingKey := func(key string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}

	env := development
	if rawEnv, ok := os.LookupEnv("WIKISTATS_ENVIRONMENT"); ok {
		switch rawEnv {
		case "production":
			env = production
		case "staging":
			env = staging
		case "development":
			env = development
		default:
			return Config{}, fmt.Errorf("%w: WIKISTATS_ENVIRONMENT (%s)", ErrInvalidValue, rawEnv)
		}
	}

	mojangFallback := false
	if rawMojangFallback, ok := os.LookupEnv("WIKISTATS_MOJANG_FALLBACK"); ok {
		switch rawMojangFallback {
		case "true":
			mojangFallback = true
		case "false", "":
			mojangFallback = false
		default:
			return Config{}, fmt.Errorf("%w: WIKISTATS_MOJANG_FALLBACK (%s)", ErrInvalidValue, rawMojangFallback)
		}
	}

	serverDir := os.Getenv("WIKISTATS_SERVER_DIR")
	if serverDir == "" {
		serverDir = "."
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	databaseURL := os.Getenv("DATABASE_URL")
	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")

	if env == production || env == staging {
		if sentryDSN == "" {
			return missingKey("SENTRY_DSN")
		}
	}

	return Config{
		serverDir:         serverDir,
		sentryDSN:         sentryDSN,
		databaseURL:       databaseURL,
		otlpEndpoint:      otlpEndpoint,
		mojangFallback:    mojangFallback,
		rowLimit:          DEFAULT_ROW_LIMIT,
		totalAdvancements: TOTAL_ADVANCEMENTS,
		env:               env,
	}, nil
}
