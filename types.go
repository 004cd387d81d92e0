package miit

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Config holds auth options. The concrete implementation lives in the config
// package and is constructed once at process start.
type Config interface {
	GetSigningKey() string
	GetSigningMethod() string
	GetIssuer() string
	GetAudience() []string
	GetAccessTokenExpiration() int
	GetRefreshTokenExpiration() int
	GetSuperuserName() string
	GetSuperuserSecretHash() string
}

// UserStore is the slice of the users repository the authenticator needs.
type UserStore interface {
	GetByNickname(ctx context.Context, nickname string) (*User, error)
}

// Authenticator holds methods to deal with authentication
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	IdentityFromToken(ctx context.Context, token string) (*User, error)
	RequireRole(user *User, role Role) (*User, error)
}

// DefaultLogger returns the stdout fallback logger used when callers do not
// supply their own.
func DefaultLogger() Logger {
	return defLogger{}
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] MIIT "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] MIIT "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] MIIT "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] MIIT "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
