// Package config loads runtime configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	miit "github.com/metalteco/miit-api"
)

const (
	DefaultIssuer   = "MIIT-API-Authentication"
	DefaultAudience = "MIIT-API"
)

// Config holds every runtime knob the service needs. Zero values are
// filled with development defaults by Load; the signing key is the one
// value that has no default.
type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	SigningKey    string
	SigningMethod string
	Issuer        string
	Audience      []string

	AccessTokenTTLMinutes int
	RefreshTokenTTLDays   int

	SuperuserName       string
	SuperuserSecretHash string
}

var _ miit.Config = (*Config)(nil)

// Load reads the environment. It fails only on a missing signing key or an
// unparsable value. Callers that want .env support run godotenv first.
func Load() (*Config, error) {
	key := os.Getenv("MIIT_SIGNING_KEY")
	if key == "" {
		return nil, fmt.Errorf("config: MIIT_SIGNING_KEY is required")
	}

	accessTTL, err := envInt("MIIT_ACCESS_TOKEN_TTL_MIN", 30)
	if err != nil {
		return nil, err
	}

	refreshTTL, err := envInt("MIIT_REFRESH_TOKEN_TTL_DAYS", 30)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:              envStr("MIIT_HTTP_ADDR", ":8000"),
		DBDriver:              envStr("MIIT_DB_DRIVER", "sqlite"),
		DBDSN:                 envStr("MIIT_DB_DSN", "file::memory:?cache=shared"),
		SigningKey:            key,
		SigningMethod:         envStr("MIIT_SIGNING_METHOD", "HS256"),
		Issuer:                envStr("MIIT_ISSUER", DefaultIssuer),
		Audience:              []string{envStr("MIIT_AUDIENCE", DefaultAudience)},
		AccessTokenTTLMinutes: accessTTL,
		RefreshTokenTTLDays:   refreshTTL,
		SuperuserName:         os.Getenv("MIIT_SUPERUSER_NAME"),
		SuperuserSecretHash:   os.Getenv("MIIT_SUPERUSER_SECRET_HASH"),
	}

	return cfg, nil
}

func (c *Config) GetSigningKey() string    { return c.SigningKey }
func (c *Config) GetSigningMethod() string { return c.SigningMethod }
func (c *Config) GetIssuer() string        { return c.Issuer }
func (c *Config) GetAudience() []string    { return c.Audience }

func (c *Config) GetAccessTokenExpiration() int  { return c.AccessTokenTTLMinutes }
func (c *Config) GetRefreshTokenExpiration() int { return c.RefreshTokenTTLDays }

func (c *Config) GetSuperuserName() string       { return c.SuperuserName }
func (c *Config) GetSuperuserSecretHash() string { return c.SuperuserSecretHash }

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid integer for %s: %q", key, v)
	}

	return n, nil
}
