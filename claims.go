package miit

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims is the read surface of a verified token's claims.
type AuthClaims interface {
	Subject() string
	Email() string
	FullName() string
	Role() string
	Active() bool
	Expires() time.Time
	IssuedAt() time.Time
}

// TokenClaims is the single claim shape shared by access and refresh tokens.
// The two differ only by TTL and by which creation entrypoint signed them.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserEmail    string `json:"email,omitempty"`
	UserFullName string `json:"fullname,omitempty"`
	UserRole     string `json:"role,omitempty"`
	IsActive     bool   `json:"is_active"`
}

// Verify interface compliance
var _ AuthClaims = (*TokenClaims)(nil)

// Subject returns the subject claim, the user's nickname
func (c *TokenClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// Email returns the email claim
func (c *TokenClaims) Email() string {
	return c.UserEmail
}

// FullName returns the display name claim
func (c *TokenClaims) FullName() string {
	return c.UserFullName
}

// Role returns the role name claim
func (c *TokenClaims) Role() string {
	return c.UserRole
}

// Active returns the is_active claim
func (c *TokenClaims) Active() bool {
	return c.IsActive
}

// Expires returns the expiration time
func (c *TokenClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *TokenClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// HasRole checks the role name claim against a Role identifier.
func (c *TokenClaims) HasRole(role Role) bool {
	return c.UserRole == role.Name()
}

// UserClaims builds the claim set for a database-backed user record.
func UserClaims(user *User) *TokenClaims {
	return &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.Nickname,
		},
		UserEmail:    user.Email,
		UserFullName: user.FullName,
		UserRole:     user.RoleName,
		IsActive:     user.Active,
	}
}

// SuperuserSubject is the fixed subject claim of tokens issued for the
// configured superuser identity, which has no backing row.
const SuperuserSubject = "superadmin"

// SuperuserClaims is the fixed claim set issued for the superuser identity.
func SuperuserClaims() *TokenClaims {
	return &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: SuperuserSubject,
		},
		UserEmail:    "admin@metalteco.com",
		UserFullName: "SysAdmin",
		UserRole:     RoleNameSuperUser,
		IsActive:     true,
	}
}

// IsSuperuser reports whether the claims belong to the synthetic superuser
// identity rather than a stored user.
func (c *TokenClaims) IsSuperuser() bool {
	return c.RegisteredClaims.Subject == SuperuserSubject && c.UserRole == RoleNameSuperUser
}

func ensureTokenID(claims *jwt.RegisteredClaims) {
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}
}
