package repository

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"

	miit "github.com/metalteco/miit-api"
)

// Users adds the natural-key lookups the auth flows need. They return the
// raw user record because the authenticator has to see the password hash;
// everything else goes through the response-mapped CRUD surface.
type Users interface {
	Repository[*miit.User, miit.UserResponse]

	GetByNickname(ctx context.Context, nickname string) (*miit.User, error)
	GetByNicknameTx(ctx context.Context, tx bun.IDB, nickname string) (*miit.User, error)
	GetByEmail(ctx context.Context, email string) (*miit.User, error)
	GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*miit.User, error)
}

type users struct {
	Repository[*miit.User, miit.UserResponse]
	db *bun.DB
}

var (
	_ Users          = (*users)(nil)
	_ miit.UserStore = (*users)(nil)
)

// NewUsers builds the users repository.
func NewUsers(db *bun.DB) Users {
	repo := NewRepository(db, ModelHandlers[*miit.User, miit.UserResponse]{
		NewRecord: func() *miit.User { return &miit.User{} },
		GetID: func(u *miit.User) int64 {
			if u == nil {
				return 0
			}
			return u.ID
		},
		SetID: func(u *miit.User, id int64) {
			if u != nil {
				u.ID = id
			}
		},
		ToResponse: func(u *miit.User) miit.UserResponse {
			return miit.NewUserResponse(u)
		},
	})

	return &users{
		Repository: repo,
		db:         db,
	}
}

func (r *users) GetByNickname(ctx context.Context, nickname string) (*miit.User, error) {
	return r.GetByNicknameTx(ctx, r.db, nickname)
}

func (r *users) GetByNicknameTx(ctx context.Context, tx bun.IDB, nickname string) (*miit.User, error) {
	return r.getByColumn(ctx, tx, "nick_name", nickname)
}

func (r *users) GetByEmail(ctx context.Context, email string) (*miit.User, error) {
	return r.GetByEmailTx(ctx, r.db, email)
}

func (r *users) GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*miit.User, error) {
	return r.getByColumn(ctx, tx, "email", email)
}

func (r *users) getByColumn(ctx context.Context, tx bun.IDB, column, value string) (*miit.User, error) {
	record := &miit.User{}
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias."+column+" = ?", value).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewRecordNotFound().WithMetadata(map[string]any{column: value})
		}
		return nil, err
	}

	return record, nil
}
