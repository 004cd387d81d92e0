package miit

import (
	"github.com/goliatone/go-errors"
)

// Text codes exposed to API clients alongside rich errors.
const (
	TextCodeInvalidCreds      = "INVALID_CREDENTIALS"
	TextCodeInactiveUser      = "INACTIVE_USER"
	TextCodeUnauthorized      = "UNAUTHORIZED"
	TextCodeForbidden         = "FORBIDDEN"
	TextCodeTokenExpired      = "TOKEN_EXPIRED"
	TextCodeTokenMalformed    = "TOKEN_MALFORMED"
	TextCodeTokenKeyInvalid   = "TOKEN_KEY_INVALID"
	TextCodeTokenCreation     = "TOKEN_CREATION_FAILED"
	TextCodeTokenVerification = "TOKEN_VERIFICATION_FAILED"
	TextCodeEmptyPassword     = "EMPTY_PASSWORD"
)

// ErrInvalidCredentials is returned for a bad username/password pair. The
// wording never reveals which of the two factors failed.
var ErrInvalidCredentials = errors.New("the credentials provided are invalid", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeUnauthorized)

// ErrMismatchedHashAndPassword is the sentinel for a failed bcrypt comparison.
var ErrMismatchedHashAndPassword = errors.New("the credentials provided are invalid", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeUnauthorized)

// ErrInactiveUser is returned when credentials check out but the account is
// disabled. Distinct from ErrInvalidCredentials so clients can tell the user
// to contact an administrator rather than retype a password.
var ErrInactiveUser = errors.New("user account is inactive", errors.CategoryAuth).
	WithTextCode(TextCodeInactiveUser).
	WithCode(errors.CodeBadRequest)

// ErrUnauthorized is returned when a token carries no usable subject.
var ErrUnauthorized = errors.New("could not validate credentials", errors.CategoryAuth).
	WithTextCode(TextCodeUnauthorized).
	WithCode(errors.CodeUnauthorized)

// ErrForbidden is the authorization-layer rejection for role gates and for
// inactive accounts presenting otherwise valid tokens.
var ErrForbidden = errors.New("not enough privileges", errors.CategoryAuthz).
	WithTextCode(TextCodeForbidden).
	WithCode(errors.CodeForbidden)

// ErrTokenExpired is returned by token verification once exp has passed.
var ErrTokenExpired = errors.New("token has expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed covers bad signatures, issuer/audience mismatch, and
// structurally broken tokens.
var ErrTokenMalformed = errors.New("token is invalid", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrTokenKeyInvalid signals a broken signing key configuration, not a bad
// token. Still client-facing as "reauthenticate" while operators fix config.
var ErrTokenKeyInvalid = errors.New("token signing key is invalid", errors.CategoryAuth).
	WithTextCode(TextCodeTokenKeyInvalid).
	WithCode(errors.CodeUnauthorized)

// ErrTokenCreation is an internal-server-class failure during signing.
var ErrTokenCreation = errors.New("token creation failed", errors.CategoryInternal).
	WithTextCode(TextCodeTokenCreation).
	WithCode(errors.CodeInternal)

// ErrTokenVerification is an internal-server-class failure during decoding
// that matches none of the expected verification outcomes.
var ErrTokenVerification = errors.New("token verification failed", errors.CategoryInternal).
	WithTextCode(TextCodeTokenVerification).
	WithCode(errors.CodeInternal)

// ErrNoEmptyString rejects empty passwords before they reach bcrypt.
var ErrNoEmptyString = errors.New("password cannot be an empty string", errors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword).
	WithCode(errors.CodeBadRequest)

// IsTokenExpiredError will check for expired tokens. Matches on the text
// code so a wrapped sentinel still counts.
func IsTokenExpiredError(err error) bool {
	return hasTextCode(err, TextCodeTokenExpired)
}

// IsTokenMalformedError will check for structurally invalid tokens.
func IsTokenMalformedError(err error) bool {
	return hasTextCode(err, TextCodeTokenMalformed)
}

func hasTextCode(err error, textCode string) bool {
	if err == nil {
		return false
	}

	var rich *errors.Error
	if errors.As(err, &rich) {
		return rich.TextCode == textCode
	}
	return false
}
