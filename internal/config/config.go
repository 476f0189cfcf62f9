package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr string `env:"ADDR" envDefault:":8082"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite3"`
	DBDSN    string `env:"DB_DSN" envDefault:"./countryhub.sqlite"`

	CookieName string        `env:"COOKIE_NAME" envDefault:"apiKey"`
	KeyTTL     time.Duration `env:"KEY_TTL" envDefault:"720h"`

	CountryAPIBaseURL string        `env:"COUNTRY_API_BASE_URL" envDefault:"https://restcountries.com/v3.1"`
	CountryAPITimeout time.Duration `env:"COUNTRY_API_TIMEOUT" envDefault:"10s"`

	// Whether an expired key may be deleted while its stored flag still
	// reads active.
	AllowExpiredKeyDeletion bool `env:"ALLOW_EXPIRED_KEY_DELETION" envDefault:"false"`
}

// Load reads the env file named by START (when set) and parses the
// environment into a Config.
func Load() (*Config, error) {
	if envFile := os.Getenv("START"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("env file %s: %w", envFile, err)
		}
	} else {
		// best effort for local runs
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
