package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/metalteco/miit-api/config"
)

func TestLoad(t *testing.T) {
	t.Run("requires a signing key", func(t *testing.T) {
		t.Setenv("MIIT_SIGNING_KEY", "")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("fills development defaults", func(t *testing.T) {
		t.Setenv("MIIT_SIGNING_KEY", "a-signing-key")

		cfg, err := config.Load()
		assert.NoError(t, err)
		assert.Equal(t, ":8000", cfg.HTTPAddr)
		assert.Equal(t, "sqlite", cfg.DBDriver)
		assert.Equal(t, "HS256", cfg.GetSigningMethod())
		assert.Equal(t, config.DefaultIssuer, cfg.GetIssuer())
		assert.Equal(t, []string{config.DefaultAudience}, cfg.GetAudience())
		assert.Equal(t, 30, cfg.GetAccessTokenExpiration())
		assert.Equal(t, 30, cfg.GetRefreshTokenExpiration())
		assert.Empty(t, cfg.GetSuperuserName())
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("MIIT_SIGNING_KEY", "a-signing-key")
		t.Setenv("MIIT_HTTP_ADDR", ":9100")
		t.Setenv("MIIT_DB_DRIVER", "postgres")
		t.Setenv("MIIT_ACCESS_TOKEN_TTL_MIN", "15")
		t.Setenv("MIIT_REFRESH_TOKEN_TTL_DAYS", "90")
		t.Setenv("MIIT_SUPERUSER_NAME", "root")
		t.Setenv("MIIT_SUPERUSER_SECRET_HASH", "some-bcrypt-hash")

		cfg, err := config.Load()
		assert.NoError(t, err)
		assert.Equal(t, ":9100", cfg.HTTPAddr)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, 15, cfg.GetAccessTokenExpiration())
		assert.Equal(t, 90, cfg.GetRefreshTokenExpiration())
		assert.Equal(t, "root", cfg.GetSuperuserName())
		assert.Equal(t, "some-bcrypt-hash", cfg.GetSuperuserSecretHash())
	})

	t.Run("rejects an unparsable TTL", func(t *testing.T) {
		t.Setenv("MIIT_SIGNING_KEY", "a-signing-key")
		t.Setenv("MIIT_ACCESS_TOKEN_TTL_MIN", "soon")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
