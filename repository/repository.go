// Package repository is the sole data-access boundary of the service. Every
// repository is parameterized by the persistent entity type and the response
// shape it produces, so callers never see a raw bun model.
package repository

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// ModelHandlers groups the small amount of per-entity glue the generic
// repository needs: how to allocate a record, how to reach its primary key,
// and how to project it into the response shape.
type ModelHandlers[M any, R any] struct {
	NewRecord  func() M
	GetID      func(M) int64
	SetID      func(M, int64)
	ToResponse func(M) R
}

// Repository is the canonical CRUD surface over one table. The Tx variants
// accept the caller-owned session; the plain variants run on the handle the
// repository was constructed with. Transaction boundaries always belong to
// the caller.
type Repository[M any, R any] interface {
	GetByID(ctx context.Context, id int64) (R, error)
	GetByIDTx(ctx context.Context, tx bun.IDB, id int64) (R, error)
	List(ctx context.Context, criteria ...SelectCriteria) ([]R, error)
	ListTx(ctx context.Context, tx bun.IDB, criteria ...SelectCriteria) ([]R, error)
	Count(ctx context.Context, criteria ...SelectCriteria) (int, error)
	Create(ctx context.Context, record M) (R, error)
	CreateTx(ctx context.Context, tx bun.IDB, record M) (R, error)
	Update(ctx context.Context, id int64, record M, criteria ...UpdateCriteria) (R, error)
	UpdateTx(ctx context.Context, tx bun.IDB, id int64, record M, criteria ...UpdateCriteria) (R, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteTx(ctx context.Context, tx bun.IDB, id int64) (bool, error)
}

type repo[M any, R any] struct {
	db       *bun.DB
	handlers ModelHandlers[M, R]
}

// NewRepository builds a Repository for one entity/response pair.
func NewRepository[M any, R any](db *bun.DB, handlers ModelHandlers[M, R]) Repository[M, R] {
	return &repo[M, R]{
		db:       db,
		handlers: handlers,
	}
}

func (r *repo[M, R]) GetByID(ctx context.Context, id int64) (R, error) {
	return r.GetByIDTx(ctx, r.db, id)
}

func (r *repo[M, R]) GetByIDTx(ctx context.Context, tx bun.IDB, id int64) (R, error) {
	var zero R

	record := r.handlers.NewRecord()
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, NewRecordNotFound().WithMetadata(map[string]any{"id": id})
		}
		return zero, err
	}

	return r.handlers.ToResponse(record), nil
}

func (r *repo[M, R]) List(ctx context.Context, criteria ...SelectCriteria) ([]R, error) {
	return r.ListTx(ctx, r.db, criteria...)
}

func (r *repo[M, R]) ListTx(ctx context.Context, tx bun.IDB, criteria ...SelectCriteria) ([]R, error) {
	var records []M

	q := tx.NewSelect().Model(&records)
	for _, c := range criteria {
		q.Apply(c)
	}

	// Primary-key order is the default; filters may add their own first.
	q.OrderExpr("?TableAlias.id ASC")

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}

	out := make([]R, 0, len(records))
	for _, record := range records {
		out = append(out, r.handlers.ToResponse(record))
	}

	return out, nil
}

func (r *repo[M, R]) Count(ctx context.Context, criteria ...SelectCriteria) (int, error) {
	q := r.db.NewSelect().Model(r.handlers.NewRecord())
	for _, c := range criteria {
		q.Apply(c)
	}
	return q.Count(ctx)
}

func (r *repo[M, R]) Create(ctx context.Context, record M) (R, error) {
	return r.CreateTx(ctx, r.db, record)
}

func (r *repo[M, R]) CreateTx(ctx context.Context, tx bun.IDB, record M) (R, error) {
	var zero R

	if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
		return zero, err
	}

	// Re-read so defaults filled by the database make it into the response.
	return r.GetByIDTx(ctx, tx, r.handlers.GetID(record))
}

func (r *repo[M, R]) Update(ctx context.Context, id int64, record M, criteria ...UpdateCriteria) (R, error) {
	return r.UpdateTx(ctx, r.db, id, record, criteria...)
}

func (r *repo[M, R]) UpdateTx(ctx context.Context, tx bun.IDB, id int64, record M, criteria ...UpdateCriteria) (R, error) {
	var zero R

	r.handlers.SetID(record, id)

	q := tx.NewUpdate().Model(record)

	if len(criteria) == 0 {
		q = q.OmitZero()
	}
	for _, c := range criteria {
		q = c(q)
	}

	res, err := q.
		Where("?TableAlias.id = ?", id).
		Exec(ctx)

	if err != nil {
		return zero, err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return zero, NewRecordNotFound().WithMetadata(map[string]any{"id": id})
	}

	return r.GetByIDTx(ctx, tx, id)
}

func (r *repo[M, R]) Delete(ctx context.Context, id int64) (bool, error) {
	return r.DeleteTx(ctx, r.db, id)
}

func (r *repo[M, R]) DeleteTx(ctx context.Context, tx bun.IDB, id int64) (bool, error) {
	res, err := tx.NewDelete().
		Model(r.handlers.NewRecord()).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)

	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}
