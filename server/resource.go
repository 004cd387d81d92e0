package server

import (
	"github.com/gofiber/fiber/v2"

	miit "github.com/metalteco/miit-api"
	"github.com/metalteco/miit-api/repository"
)

// Payload is the inbound shape a resource accepts: it validates itself and
// builds the record to persist.
type Payload[M any] interface {
	Validate() error
	Model() M
}

// columnsPayload is implemented by update payloads that can name exactly
// which columns the caller set. Without it an update relies on OmitZero,
// which cannot write a zero value such as is_active = false.
type columnsPayload interface {
	Columns() []string
}

func updateCriteria(payload any) []repository.UpdateCriteria {
	cp, ok := payload.(columnsPayload)
	if !ok {
		return nil
	}

	cols := cp.Columns()
	if len(cols) == 0 {
		return nil
	}

	return []repository.UpdateCriteria{repository.UpdateColumns(cols...)}
}

// Resource is the generic CRUD controller backing every catalog entity. M is
// the bun model, R the response projection, C and U the create and update
// payloads.
type Resource[M any, R any, C Payload[M], U Payload[M]] struct {
	Repo   repository.Repository[M, R]
	Logger miit.Logger
}

func (r *Resource[M, R, C, U]) List(c *fiber.Ctx) error {
	criteria := listCriteria(c)

	records, err := r.Repo.List(c.Context(), criteria...)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusOK, records)
}

func (r *Resource[M, R, C, U]) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondMessage(c, fiber.StatusBadRequest, "invalid record id")
	}

	record, err := r.Repo.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusOK, record)
}

func (r *Resource[M, R, C, U]) Create(c *fiber.Ctx) error {
	var payload C
	if err := c.BodyParser(&payload); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "could not parse request body")
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	record, err := r.Repo.Create(c.Context(), payload.Model())
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusCreated, record)
}

func (r *Resource[M, R, C, U]) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondMessage(c, fiber.StatusBadRequest, "invalid record id")
	}

	var payload U
	if err := c.BodyParser(&payload); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "could not parse request body")
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	record, err := r.Repo.Update(c.Context(), int64(id), payload.Model(), updateCriteria(payload)...)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusOK, record)
}

func (r *Resource[M, R, C, U]) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondMessage(c, fiber.StatusBadRequest, "invalid record id")
	}

	deleted, err := r.Repo.Delete(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err)
	}

	if !deleted {
		return respondMessage(c, fiber.StatusNotFound, "record not found")
	}

	return respondMessage(c, fiber.StatusOK, "record deleted")
}

// listCriteria turns pagination query params into select criteria. Listing is
// unbounded when no limit is supplied, matching how the terminal clients
// consume catalogs.
func listCriteria(c *fiber.Ctx) []repository.SelectCriteria {
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)

	if limit <= 0 {
		return nil
	}

	return []repository.SelectCriteria{repository.Paginate(limit, offset)}
}
