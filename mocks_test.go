package miit_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	miit "github.com/metalteco/miit-api"
)

// testConfig implements miit.Config with sensible test defaults.
type testConfig struct {
	signingKey          string
	signingMethod       string
	issuer              string
	audience            []string
	accessTTL           int
	refreshTTL          int
	superuserName       string
	superuserSecretHash string
}

func newTestConfig() *testConfig {
	return &testConfig{
		signingKey:    "test-signing-key",
		signingMethod: "HS256",
		issuer:        "test-issuer",
		audience:      []string{"test-audience"},
		accessTTL:     30,
		refreshTTL:    7,
	}
}

func (c *testConfig) GetSigningKey() string          { return c.signingKey }
func (c *testConfig) GetSigningMethod() string       { return c.signingMethod }
func (c *testConfig) GetIssuer() string              { return c.issuer }
func (c *testConfig) GetAudience() []string          { return c.audience }
func (c *testConfig) GetAccessTokenExpiration() int  { return c.accessTTL }
func (c *testConfig) GetRefreshTokenExpiration() int { return c.refreshTTL }
func (c *testConfig) GetSuperuserName() string       { return c.superuserName }
func (c *testConfig) GetSuperuserSecretHash() string { return c.superuserSecretHash }

// quietLogger swallows log output during tests.
type quietLogger struct{}

func (quietLogger) Debug(format string, args ...any) {}
func (quietLogger) Info(format string, args ...any)  {}
func (quietLogger) Warn(format string, args ...any)  {}
func (quietLogger) Error(format string, args ...any) {}

// MockUserStore implements miit.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByNickname(ctx context.Context, nickname string) (*miit.User, error) {
	args := m.Called(ctx, nickname)
	user, _ := args.Get(0).(*miit.User)
	return user, args.Error(1)
}
