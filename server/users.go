package server

import (
	"github.com/gofiber/fiber/v2"

	miit "github.com/metalteco/miit-api"
	"github.com/metalteco/miit-api/repository"
)

// UsersController handles account CRUD. It is not a Resource because the
// payloads hash passwords on the way in, which can fail.
type UsersController struct {
	Repo   repository.Users
	Logger miit.Logger
}

func (u *UsersController) List(c *fiber.Ctx) error {
	records, err := u.Repo.List(c.Context(), listCriteria(c)...)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusOK, records)
}

func (u *UsersController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondMessage(c, fiber.StatusBadRequest, "invalid record id")
	}

	record, err := u.Repo.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusOK, record)
}

func (u *UsersController) Create(c *fiber.Ctx) error {
	payload := new(miit.UserCreate)
	if err := c.BodyParser(payload); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "could not parse request body")
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	record, err := payload.Model()
	if err != nil {
		return respondError(c, err)
	}

	created, err := u.Repo.Create(c.Context(), record)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusCreated, created)
}

func (u *UsersController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondMessage(c, fiber.StatusBadRequest, "invalid record id")
	}

	payload := new(miit.UserUpdate)
	if err := c.BodyParser(payload); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "could not parse request body")
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	record, err := payload.Model()
	if err != nil {
		return respondError(c, err)
	}

	updated, err := u.Repo.Update(c.Context(), int64(id), record, updateCriteria(*payload)...)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusOK, updated)
}

func (u *UsersController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondMessage(c, fiber.StatusBadRequest, "invalid record id")
	}

	deleted, err := u.Repo.Delete(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err)
	}

	if !deleted {
		return respondMessage(c, fiber.StatusNotFound, "record not found")
	}

	return respondMessage(c, fiber.StatusOK, "record deleted")
}
