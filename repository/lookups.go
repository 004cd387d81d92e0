package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"

	miit "github.com/metalteco/miit-api"
)

// findID is the narrow single-column lookup used by cross-entity resolution:
// it resolves a natural key to the surrogate id without hydrating the row.
// Absence is the ok=false sentinel, never an error.
func findID[M any](ctx context.Context, tx bun.IDB, record M, column string, value any) (int64, bool, error) {
	var id int64
	err := tx.NewSelect().
		Model(record).
		Column("id").
		Where(fmt.Sprintf("?TableAlias.%s = ?", column), value).
		Limit(1).
		Scan(ctx, &id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return id, true, nil
}

// Storages resolves yard locations by name before movements reference them.
type Storages interface {
	Repository[*miit.Storage, miit.StorageResponse]

	FindIDByName(ctx context.Context, name string) (int64, bool, error)
	FindIDByNameTx(ctx context.Context, tx bun.IDB, name string) (int64, bool, error)
}

type storages struct {
	Repository[*miit.Storage, miit.StorageResponse]
	db *bun.DB
}

var _ Storages = (*storages)(nil)

func NewStorages(db *bun.DB) Storages {
	repo := NewRepository(db, ModelHandlers[*miit.Storage, miit.StorageResponse]{
		NewRecord: func() *miit.Storage { return &miit.Storage{} },
		GetID: func(m *miit.Storage) int64 {
			if m == nil {
				return 0
			}
			return m.ID
		},
		SetID: func(m *miit.Storage, id int64) {
			if m != nil {
				m.ID = id
			}
		},
		ToResponse: func(m *miit.Storage) miit.StorageResponse {
			return miit.NewStorageResponse(m)
		},
	})

	return &storages{Repository: repo, db: db}
}

func (r *storages) FindIDByName(ctx context.Context, name string) (int64, bool, error) {
	return r.FindIDByNameTx(ctx, r.db, name)
}

func (r *storages) FindIDByNameTx(ctx context.Context, tx bun.IDB, name string) (int64, bool, error) {
	return findID(ctx, tx, &miit.Storage{}, "name", name)
}

// Materials are looked up by name on inbound tickets.
type Materials interface {
	Repository[*miit.Material, miit.MaterialResponse]

	FindIDByName(ctx context.Context, name string) (int64, bool, error)
	FindIDByNameTx(ctx context.Context, tx bun.IDB, name string) (int64, bool, error)
}

type materials struct {
	Repository[*miit.Material, miit.MaterialResponse]
	db *bun.DB
}

var _ Materials = (*materials)(nil)

func NewMaterials(db *bun.DB) Materials {
	repo := NewRepository(db, ModelHandlers[*miit.Material, miit.MaterialResponse]{
		NewRecord: func() *miit.Material { return &miit.Material{} },
		GetID: func(m *miit.Material) int64 {
			if m == nil {
				return 0
			}
			return m.ID
		},
		SetID: func(m *miit.Material, id int64) {
			if m != nil {
				m.ID = id
			}
		},
		ToResponse: func(m *miit.Material) miit.MaterialResponse {
			return miit.NewMaterialResponse(m)
		},
	})

	return &materials{Repository: repo, db: db}
}

func (r *materials) FindIDByName(ctx context.Context, name string) (int64, bool, error) {
	return r.FindIDByNameTx(ctx, r.db, name)
}

func (r *materials) FindIDByNameTx(ctx context.Context, tx bun.IDB, name string) (int64, bool, error) {
	return findID(ctx, tx, &miit.Material{}, "name", name)
}

// Clients are resolved by name when transactions arrive from billing exports.
type Clients interface {
	Repository[*miit.Client, miit.ClientResponse]

	FindIDByName(ctx context.Context, name string) (int64, bool, error)
	FindIDByNameTx(ctx context.Context, tx bun.IDB, name string) (int64, bool, error)
}

type clients struct {
	Repository[*miit.Client, miit.ClientResponse]
	db *bun.DB
}

var _ Clients = (*clients)(nil)

func NewClients(db *bun.DB) Clients {
	repo := NewRepository(db, ModelHandlers[*miit.Client, miit.ClientResponse]{
		NewRecord: func() *miit.Client { return &miit.Client{} },
		GetID: func(m *miit.Client) int64 {
			if m == nil {
				return 0
			}
			return m.ID
		},
		SetID: func(m *miit.Client, id int64) {
			if m != nil {
				m.ID = id
			}
		},
		ToResponse: func(m *miit.Client) miit.ClientResponse {
			return miit.NewClientResponse(m)
		},
	})

	return &clients{Repository: repo, db: db}
}

func (r *clients) FindIDByName(ctx context.Context, name string) (int64, bool, error) {
	return r.FindIDByNameTx(ctx, r.db, name)
}

func (r *clients) FindIDByNameTx(ctx context.Context, tx bun.IDB, name string) (int64, bool, error) {
	return findID(ctx, tx, &miit.Client{}, "name", name)
}

// Fleets are resolved by their reference (vessel or plate name).
type Fleets interface {
	Repository[*miit.Fleet, miit.FleetResponse]

	FindIDByReference(ctx context.Context, reference string) (int64, bool, error)
	FindIDByReferenceTx(ctx context.Context, tx bun.IDB, reference string) (int64, bool, error)
}

type fleets struct {
	Repository[*miit.Fleet, miit.FleetResponse]
	db *bun.DB
}

var _ Fleets = (*fleets)(nil)

func NewFleets(db *bun.DB) Fleets {
	repo := NewRepository(db, ModelHandlers[*miit.Fleet, miit.FleetResponse]{
		NewRecord: func() *miit.Fleet { return &miit.Fleet{} },
		GetID: func(m *miit.Fleet) int64 {
			if m == nil {
				return 0
			}
			return m.ID
		},
		SetID: func(m *miit.Fleet, id int64) {
			if m != nil {
				m.ID = id
			}
		},
		ToResponse: func(m *miit.Fleet) miit.FleetResponse {
			return miit.NewFleetResponse(m)
		},
	})

	return &fleets{Repository: repo, db: db}
}

func (r *fleets) FindIDByReference(ctx context.Context, reference string) (int64, bool, error) {
	return r.FindIDByReferenceTx(ctx, r.db, reference)
}

func (r *fleets) FindIDByReferenceTx(ctx context.Context, tx bun.IDB, reference string) (int64, bool, error) {
	return findID(ctx, tx, &miit.Fleet{}, "reference", reference)
}
