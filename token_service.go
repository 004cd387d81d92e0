package miit

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// TokenService issues and verifies the signed, time-bounded tokens used by
// the authentication flows. It is stateless: every knob comes from Config at
// construction and is read-only afterwards, so a single instance is safe to
// share between request scopes.
type TokenService struct {
	signingKey []byte
	method     jwt.SigningMethod
	issuer     string
	audience   jwt.ClaimStrings
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     Logger
}

// NewTokenService creates a new TokenService instance
func NewTokenService(cfg Config, logger Logger) (*TokenService, error) {
	if logger == nil {
		logger = defLogger{}
	}

	if cfg.GetSigningKey() == "" {
		return nil, ErrTokenKeyInvalid
	}

	method := jwt.GetSigningMethod(cfg.GetSigningMethod())
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrTokenKeyInvalid.Clone().
			WithMetadata(map[string]any{"alg": cfg.GetSigningMethod()})
	}

	return &TokenService{
		signingKey: []byte(cfg.GetSigningKey()),
		method:     method,
		issuer:     cfg.GetIssuer(),
		audience:   jwt.ClaimStrings(cfg.GetAudience()),
		accessTTL:  time.Duration(cfg.GetAccessTokenExpiration()) * time.Minute,
		refreshTTL: time.Duration(cfg.GetRefreshTokenExpiration()) * 24 * time.Hour,
		logger:     logger,
	}, nil
}

// CreateAccessToken signs the given claims with the access token TTL, or the
// caller supplied override.
func (ts *TokenService) CreateAccessToken(claims *TokenClaims, ttl ...time.Duration) (string, error) {
	return ts.sign(claims, ts.accessTTL, ttl...)
}

// CreateRefreshToken signs the given claims with the refresh token TTL, or
// the caller supplied override. The claim shape is identical to an access
// token; only the lifetime differs.
func (ts *TokenService) CreateRefreshToken(claims *TokenClaims, ttl ...time.Duration) (string, error) {
	return ts.sign(claims, ts.refreshTTL, ttl...)
}

func (ts *TokenService) sign(claims *TokenClaims, defaultTTL time.Duration, ttl ...time.Duration) (string, error) {
	if claims == nil {
		return "", errors.New("claims must not be nil", errors.CategoryInternal)
	}

	if len(ts.signingKey) == 0 {
		return "", ErrTokenKeyInvalid
	}

	expiresIn := defaultTTL
	if len(ttl) > 0 {
		expiresIn = ttl[0]
	}

	// Work on a copy so callers can reuse their claim set.
	toEncode := *claims

	now := time.Now()
	toEncode.RegisteredClaims.Issuer = ts.issuer
	toEncode.RegisteredClaims.Audience = ts.audience
	toEncode.RegisteredClaims.IssuedAt = jwt.NewNumericDate(now)
	toEncode.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(now.Add(expiresIn))

	ensureTokenID(&toEncode.RegisteredClaims)

	token := jwt.NewWithClaims(ts.method, &toEncode)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		ts.logger.Error("TokenService sign failed: %v", err)
		return "", errors.Wrap(err, ErrTokenCreation.Category, ErrTokenCreation.Message).
			WithTextCode(ErrTokenCreation.TextCode).
			WithCode(ErrTokenCreation.Code)
	}

	return signed, nil
}

// Verify parses and validates a token string, returning structured claims.
// Signature, expiry, issuer, and audience must all check out; a mismatch on
// any of them is a hard failure.
func (ts *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	if len(ts.signingKey) == 0 {
		return nil, ErrTokenKeyInvalid
	}

	parserOptions := make([]jwt.ParserOption, 0, 2)
	if ts.issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(ts.issuer))
	}
	if len(ts.audience) > 0 {
		parserOptions = append(parserOptions, jwt.WithAudience(ts.audience...))
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("TokenService verify encountered unexpected signing method: %v", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, parserOptions...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrInvalidKey), errors.Is(err, jwt.ErrInvalidKeyType), errors.Is(err, jwt.ErrHashUnavailable):
			ts.logger.Error("TokenService verify key configuration invalid: %v", err)
			return nil, ErrTokenKeyInvalid
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable),
			errors.Is(err, jwt.ErrTokenInvalidIssuer),
			errors.Is(err, jwt.ErrTokenInvalidAudience),
			errors.Is(err, jwt.ErrTokenInvalidClaims):
			ts.logger.Info("TokenService verify rejected token: %v", err)
			return nil, ErrTokenMalformed
		default:
			ts.logger.Error("TokenService verify unexpected decode failure: %v", err)
			return nil, errors.Wrap(err, ErrTokenVerification.Category, ErrTokenVerification.Message).
				WithTextCode(ErrTokenVerification.TextCode).
				WithCode(ErrTokenVerification.Code)
		}
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		ts.logger.Error("TokenService verify could not decode claims")
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
