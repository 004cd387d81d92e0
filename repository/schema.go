package repository

import (
	"context"

	"github.com/uptrace/bun"

	miit "github.com/metalteco/miit-api"
)

// Models lists every bun model the service persists, in dependency order.
func Models() []any {
	return []any{
		(*miit.User)(nil),
		(*miit.Fleet)(nil),
		(*miit.Trip)(nil),
		(*miit.Client)(nil),
		(*miit.Material)(nil),
		(*miit.Storage)(nil),
		(*miit.BillOfLading)(nil),
		(*miit.Movement)(nil),
		(*miit.Weighing)(nil),
		(*miit.Transaction)(nil),
	}
}

// CreateSchema creates any missing tables. Development and test environments
// use it to bootstrap a blank database; production schemas are migrated out
// of band.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	for _, model := range Models() {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
