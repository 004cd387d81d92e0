package server

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	miit "github.com/metalteco/miit-api"
)

// userContextKey is where Protected stores the resolved user in ctx locals.
const userContextKey = "miit:user"

// ProcessTime stamps every response with the wall-clock time spent serving
// it, in seconds, mirroring what terminal operators already scrape.
func ProcessTime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start).Seconds()
		c.Set("X-Process-Time", strconv.FormatFloat(elapsed, 'f', -1, 64))
		return err
	}
}

// Protected extracts the bearer token, resolves the live user behind it, and
// stores the record in locals for downstream handlers. Requests without a
// usable token never reach the handler.
func Protected(auther miit.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return respondError(c, miit.ErrUnauthorized)
		}

		user, err := auther.IdentityFromToken(c.Context(), token)
		if err != nil {
			return respondError(c, err)
		}

		c.Locals(userContextKey, user)
		c.SetUserContext(miit.WithContext(c.UserContext(), user))
		return c.Next()
	}
}

// RequireRole gates a route on an exact role identifier. It must run after
// Protected.
func RequireRole(auther miit.Authenticator, role miit.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := auther.RequireRole(CurrentUser(c), role); err != nil {
			return respondError(c, err)
		}
		return c.Next()
	}
}

// RequireAnyRole passes when the user holds one of the listed roles. It must
// run after Protected.
func RequireAnyRole(roles ...miit.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return respondError(c, miit.ErrUnauthorized)
		}

		for _, role := range roles {
			if user.RoleID == role {
				return c.Next()
			}
		}

		return respondError(c, miit.ErrForbidden)
	}
}

// CurrentUser returns the user stored by Protected, or nil.
func CurrentUser(c *fiber.Ctx) *miit.User {
	user, _ := c.Locals(userContextKey).(*miit.User)
	return user
}

func bearerToken(header string) (string, bool) {
	const scheme = "Bearer "
	if len(header) <= len(scheme) || !strings.EqualFold(header[:len(scheme)], scheme) {
		return "", false
	}
	token := strings.TrimSpace(header[len(scheme):])
	return token, token != ""
}
