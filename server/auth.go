package server

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"

	miit "github.com/metalteco/miit-api"
)

// AuthController serves login, refresh, and the current-identity lookup.
type AuthController struct {
	Auther miit.Authenticator
	Logger miit.Logger
}

// LoginRequest payload. Accepts both JSON and form encoding so scale-house
// terminals and the web client can share the endpoint.
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// RefreshRequest payload
type RefreshRequest struct {
	Token string `form:"token" json:"token"`
}

// Validate will run validation rules
func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
	)
}

func (a *AuthController) Login(c *fiber.Ctx) error {
	payload := new(LoginRequest)
	if err := c.BodyParser(payload); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "could not parse request body")
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	token, err := a.Auther.Login(c.Context(), payload.Username, payload.Password)
	if err != nil {
		return respondError(c, err)
	}

	return respondToken(c, token)
}

func (a *AuthController) Refresh(c *fiber.Ctx) error {
	payload := new(RefreshRequest)
	if err := c.BodyParser(payload); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "could not parse request body")
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	token, err := a.Auther.RefreshToken(c.Context(), payload.Token)
	if err != nil {
		return respondError(c, err)
	}

	if token == "" {
		return respondError(c, miit.ErrUnauthorized)
	}

	return respondToken(c, token)
}

// Me returns the profile of the authenticated user. Protected must run first.
func (a *AuthController) Me(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return respondError(c, miit.ErrUnauthorized)
	}

	return respondData(c, fiber.StatusOK, miit.NewUserResponse(user))
}
