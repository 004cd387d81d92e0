// Package server exposes the HTTP surface: authentication endpoints, CRUD
// resources for every catalog entity, and the middleware that guards them.
package server

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/metalteco/miit-api/repository"
)

// Envelope is the uniform response body. Every endpoint, success or failure,
// replies with this shape; optional fields are dropped when empty.
type Envelope struct {
	StatusCode int    `json:"status_code"`
	StatusName string `json:"status_name"`
	Message    string `json:"message,omitempty"`
	Token      string `json:"token,omitempty"`
	Data       any    `json:"data,omitempty"`
}

func respond(c *fiber.Ctx, status int, env Envelope) error {
	env.StatusCode = status
	env.StatusName = http.StatusText(status)
	return c.Status(status).JSON(env)
}

func respondData(c *fiber.Ctx, status int, data any) error {
	return respond(c, status, Envelope{Data: data})
}

func respondMessage(c *fiber.Ctx, status int, message string) error {
	return respond(c, status, Envelope{Message: message})
}

func respondToken(c *fiber.Ctx, token string) error {
	return respond(c, fiber.StatusOK, Envelope{Token: token})
}

// respondError maps domain errors onto HTTP statuses. Rich errors carry their
// own status code; validation failures are 400s with the field breakdown as
// the message; anything unrecognized is a 500 with a generic message so the
// underlying failure never leaks to clients.
func respondError(c *fiber.Ctx, err error) error {
	if _, ok := err.(validation.Errors); ok {
		return respondMessage(c, fiber.StatusBadRequest, err.Error())
	}

	if repository.IsRecordNotFound(err) {
		return respondMessage(c, fiber.StatusNotFound, "record not found")
	}

	var richErr *errors.Error
	if errors.As(err, &richErr) {
		status := richErr.Code
		if status < 400 || status > 599 {
			status = fiber.StatusInternalServerError
		}
		if status == fiber.StatusInternalServerError {
			return respondMessage(c, status, "internal server error")
		}
		return respondMessage(c, status, richErr.Message)
	}

	return respondMessage(c, fiber.StatusInternalServerError, "internal server error")
}
