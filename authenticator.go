package miit

import (
	"context"

	"github.com/goliatone/go-errors"
)

// Auther implements the authentication flows: password login, token refresh,
// and identity resolution for protected routes. It orchestrates the user
// store, the bcrypt comparison, and the TokenService; it owns no state of its
// own beyond read-only configuration.
type Auther struct {
	users         UserStore
	tokens        *TokenService
	superuserName string
	superuserHash string
	logger        Logger
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(users UserStore, tokens *TokenService, cfg Config) *Auther {
	return &Auther{
		users:         users,
		tokens:        tokens,
		superuserName: cfg.GetSuperuserName(),
		superuserHash: cfg.GetSuperuserSecretHash(),
		logger:        defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() *TokenService {
	return s.tokens
}

// Login verifies a username/password pair and issues an access token. The
// configured superuser identity is checked first and never touches the user
// store; everyone else is fetched by nickname and compared against the stored
// bcrypt hash. An unknown user and a wrong password are indistinguishable to
// the caller.
func (s *Auther) Login(ctx context.Context, username, password string) (string, error) {
	if s.superuserName != "" && username == s.superuserName {
		if err := ComparePasswordAndHash(password, s.superuserHash); err != nil {
			s.logger.Info("Login rejected superuser secret for %q", username)
			return "", ErrInvalidCredentials
		}
		return s.tokens.CreateAccessToken(SuperuserClaims())
	}

	user, err := s.users.GetByNickname(ctx, username)
	if err != nil {
		if errors.IsNotFound(err) {
			s.logger.Info("Login rejected unknown user %q", username)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Login user lookup failed: %v", err)
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during login")
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrMismatchedHashAndPassword) {
			s.logger.Info("Login rejected credentials for %q", username)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Login password comparison failed: %v", err)
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to compare password")
	}

	if !user.Active {
		s.logger.Warn("Login blocked inactive user %q", username)
		return "", ErrInactiveUser
	}

	return s.tokens.CreateAccessToken(UserClaims(user))
}

// RefreshToken exchanges a refresh token for a new token built from the
// current user record. A token that no longer verifies, or a subject that no
// longer exists, yields an empty token and a nil error; only unexpected
// internal failures are surfaced as errors. The new token is refresh-class,
// matching the lifetime of the token it replaces.
func (s *Auther) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		// Only a bad token earns the silent null; a broken signing key is
		// an operator problem and must surface.
		if IsTokenExpiredError(err) || IsTokenMalformedError(err) {
			s.logger.Info("RefreshToken rejected token: %v", err)
			return "", nil
		}
		s.logger.Error("RefreshToken verification failed: %v", err)
		return "", err
	}

	if claims == nil || claims.Subject() == "" {
		return "", nil
	}

	if claims.IsSuperuser() {
		return s.tokens.CreateRefreshToken(SuperuserClaims())
	}

	user, err := s.users.GetByNickname(ctx, claims.Subject())
	if err != nil {
		if errors.IsNotFound(err) {
			s.logger.Info("RefreshToken subject %q no longer exists", claims.Subject())
			return "", nil
		}
		s.logger.Error("RefreshToken user lookup failed: %v", err)
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during refresh")
	}

	return s.tokens.CreateRefreshToken(UserClaims(user))
}

// IdentityFromToken verifies a bearer token and returns the live user record
// behind its subject. The record is always re-fetched; claims only carry
// display fields and are never trusted for authorization decisions.
func (s *Auther) IdentityFromToken(ctx context.Context, token string) (*User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	if claims.Subject() == "" {
		return nil, ErrUnauthorized
	}

	// The superuser identity has no row to fetch; synthesize it from claims.
	if claims.IsSuperuser() {
		return &User{
			Nickname: claims.Subject(),
			FullName: claims.FullName(),
			Email:    claims.Email(),
			Active:   true,
			RoleID:   RoleSuperUser,
			RoleName: RoleNameSuperUser,
		}, nil
	}

	user, err := s.users.GetByNickname(ctx, claims.Subject())
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("IdentityFromToken user lookup failed: %v", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user from token subject")
	}

	if !user.Active {
		return nil, ErrForbidden
	}

	return user, nil
}

// RequireRole gates access on an exact role identifier.
func (s *Auther) RequireRole(user *User, role Role) (*User, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}

	if user.RoleID != role {
		return nil, ErrForbidden.Clone().WithMetadata(map[string]any{
			"required_role": int(role),
			"user_role":     int(user.RoleID),
		})
	}

	return user, nil
}

var _ Authenticator = (*Auther)(nil)
