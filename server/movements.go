package server

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/bun"

	miit "github.com/metalteco/miit-api"
	"github.com/metalteco/miit-api/repository"
)

// MovementsController extends the generic resource with storage-name
// resolution on create: yard tickets carry the storage name, not its id, and
// the lookup plus insert run in one transaction so a concurrent rename cannot
// strand the movement.
type MovementsController struct {
	Resource[*miit.Movement, miit.MovementResponse, miit.MovementCreate, miit.MovementUpdate]

	Manager repository.Manager
}

func (m *MovementsController) Create(c *fiber.Ctx) error {
	payload := new(miit.MovementCreate)
	if err := c.BodyParser(payload); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "could not parse request body")
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, err)
	}

	if payload.StorageID == 0 && payload.StorageName == "" {
		return respondMessage(c, fiber.StatusBadRequest, "storage_id or storage_name is required")
	}

	var created miit.MovementResponse
	err := m.Manager.RunInTx(c.Context(), nil, func(ctx context.Context, tx bun.Tx) error {
		if payload.StorageID == 0 {
			id, ok, err := m.Manager.Storages().FindIDByNameTx(ctx, tx, payload.StorageName)
			if err != nil {
				return err
			}
			if !ok {
				return repository.NewRecordNotFound().
					WithMetadata(map[string]any{"storage_name": payload.StorageName})
			}
			payload.StorageID = id
		}

		record, err := m.Manager.Movements().CreateTx(ctx, tx, payload.Model())
		if err != nil {
			return err
		}

		created = record
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusCreated, created)
}
