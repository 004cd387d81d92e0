package miit_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	miit "github.com/metalteco/miit-api"
)

func newTestTokenService(t *testing.T, cfg *testConfig) *miit.TokenService {
	t.Helper()

	service, err := miit.NewTokenService(cfg, quietLogger{})
	assert.NoError(t, err)
	assert.NotNil(t, service)

	return service
}

func TestNewTokenService(t *testing.T) {
	t.Run("creates token service", func(t *testing.T) {
		newTestTokenService(t, newTestConfig())
	})

	t.Run("creates token service with nil logger", func(t *testing.T) {
		service, err := miit.NewTokenService(newTestConfig(), nil)
		assert.NoError(t, err)
		assert.NotNil(t, service)
	})

	t.Run("rejects an empty signing key", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.signingKey = ""

		_, err := miit.NewTokenService(cfg, quietLogger{})
		assert.ErrorIs(t, err, miit.ErrTokenKeyInvalid)
	})

	t.Run("rejects non-HMAC signing methods", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.signingMethod = "RS256"

		_, err := miit.NewTokenService(cfg, quietLogger{})
		assert.Error(t, err)
	})
}

func TestTokenServiceRoundTrip(t *testing.T) {
	service := newTestTokenService(t, newTestConfig())

	t.Run("access token round trips claims", func(t *testing.T) {
		token, err := service.CreateAccessToken(miit.UserClaims(testUser()))
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 3, len(strings.Split(token, ".")))

		claims, err := service.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "jsalcedo", claims.Subject())
		assert.Equal(t, "jsalcedo@example.com", claims.Email())
		assert.Equal(t, "Julia Salcedo", claims.FullName())
		assert.Equal(t, miit.RoleNameOperator, claims.Role())
		assert.True(t, claims.Active())
	})

	t.Run("stamps issuance fields", func(t *testing.T) {
		token, err := service.CreateAccessToken(miit.UserClaims(testUser()))
		assert.NoError(t, err)

		claims, err := service.Verify(token)
		assert.NoError(t, err)
		assert.False(t, claims.IssuedAt().IsZero())
		assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.Expires(), 5*time.Second)
	})

	t.Run("refresh token carries the longer lifetime", func(t *testing.T) {
		token, err := service.CreateRefreshToken(miit.UserClaims(testUser()))
		assert.NoError(t, err)

		claims, err := service.Verify(token)
		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.Expires(), 5*time.Second)
	})

	t.Run("caller supplied TTL overrides the default", func(t *testing.T) {
		token, err := service.CreateAccessToken(miit.UserClaims(testUser()), time.Hour)
		assert.NoError(t, err)

		claims, err := service.Verify(token)
		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Expires(), 5*time.Second)
	})

	t.Run("does not mutate the caller claims", func(t *testing.T) {
		claims := miit.UserClaims(testUser())

		_, err := service.CreateAccessToken(claims)
		assert.NoError(t, err)
		assert.True(t, claims.Expires().IsZero())
	})

	t.Run("rejects nil claims", func(t *testing.T) {
		_, err := service.CreateAccessToken(nil)
		assert.Error(t, err)
	})
}

func TestTokenServiceVerify(t *testing.T) {
	cfg := newTestConfig()
	service := newTestTokenService(t, cfg)

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := service.CreateAccessToken(miit.UserClaims(testUser()), -time.Minute)
		assert.NoError(t, err)

		_, err = service.Verify(token)
		assert.True(t, miit.IsTokenExpiredError(err))
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		token, err := service.CreateAccessToken(miit.UserClaims(testUser()))
		assert.NoError(t, err)

		tampered := token[:len(token)-4] + "AAAA"

		_, err = service.Verify(tampered)
		assert.True(t, miit.IsTokenMalformedError(err))
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := service.Verify("not.a.token")
		assert.True(t, miit.IsTokenMalformedError(err))
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		otherCfg := newTestConfig()
		otherCfg.signingKey = "another-signing-key"
		other := newTestTokenService(t, otherCfg)

		token, err := other.CreateAccessToken(miit.UserClaims(testUser()))
		assert.NoError(t, err)

		_, err = service.Verify(token)
		assert.True(t, miit.IsTokenMalformedError(err))
	})

	t.Run("rejects an issuer mismatch", func(t *testing.T) {
		otherCfg := newTestConfig()
		otherCfg.issuer = "someone-else"
		other := newTestTokenService(t, otherCfg)

		token, err := other.CreateAccessToken(miit.UserClaims(testUser()))
		assert.NoError(t, err)

		_, err = service.Verify(token)
		assert.True(t, miit.IsTokenMalformedError(err))
	})

	t.Run("rejects an audience mismatch", func(t *testing.T) {
		otherCfg := newTestConfig()
		otherCfg.audience = []string{"other-audience"}
		other := newTestTokenService(t, otherCfg)

		token, err := other.CreateAccessToken(miit.UserClaims(testUser()))
		assert.NoError(t, err)

		_, err = service.Verify(token)
		assert.True(t, miit.IsTokenMalformedError(err))
	})
}
