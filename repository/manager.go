package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/uptrace/bun"

	miit "github.com/metalteco/miit-api"
)

// Manager exposes all repositories
type Manager interface {
	Validate() error
	MustValidate()
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error

	Users() Users
	Fleets() Fleets
	Trips() Repository[*miit.Trip, miit.TripResponse]
	BillsOfLading() Repository[*miit.BillOfLading, miit.BillOfLadingResponse]
	Clients() Clients
	Materials() Materials
	Storages() Storages
	Movements() Repository[*miit.Movement, miit.MovementResponse]
	Weighings() Repository[*miit.Weighing, miit.WeighingResponse]
	Transactions() Repository[*miit.Transaction, miit.TransactionResponse]
}

type mngr struct {
	db            *bun.DB
	users         Users
	fleets        Fleets
	trips         Repository[*miit.Trip, miit.TripResponse]
	billsOfLading Repository[*miit.BillOfLading, miit.BillOfLadingResponse]
	clients       Clients
	materials     Materials
	storages      Storages
	movements     Repository[*miit.Movement, miit.MovementResponse]
	weighings     Repository[*miit.Weighing, miit.WeighingResponse]
	transactions  Repository[*miit.Transaction, miit.TransactionResponse]
}

func NewManager(db *bun.DB) Manager {
	return &mngr{
		db:            db,
		users:         NewUsers(db),
		fleets:        NewFleets(db),
		trips:         NewTrips(db),
		billsOfLading: NewBillsOfLading(db),
		clients:       NewClients(db),
		materials:     NewMaterials(db),
		storages:      NewStorages(db),
		movements:     NewMovements(db),
		weighings:     NewWeighings(db),
		transactions:  NewTransactions(db),
	}
}

func (m mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}

	if m.fleets == nil {
		return errors.New("repository fleets should be initialized")
	}

	if m.trips == nil {
		return errors.New("repository trips should be initialized")
	}

	if m.billsOfLading == nil {
		return errors.New("repository billsOfLading should be initialized")
	}

	if m.clients == nil {
		return errors.New("repository clients should be initialized")
	}

	if m.materials == nil {
		return errors.New("repository materials should be initialized")
	}

	if m.storages == nil {
		return errors.New("repository storages should be initialized")
	}

	if m.movements == nil {
		return errors.New("repository movements should be initialized")
	}

	if m.weighings == nil {
		return errors.New("repository weighings should be initialized")
	}

	if m.transactions == nil {
		return errors.New("repository transactions should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Users() Users { return m.users }

func (m mngr) Fleets() Fleets { return m.fleets }

func (m mngr) Trips() Repository[*miit.Trip, miit.TripResponse] { return m.trips }

func (m mngr) BillsOfLading() Repository[*miit.BillOfLading, miit.BillOfLadingResponse] {
	return m.billsOfLading
}

func (m mngr) Clients() Clients { return m.clients }

func (m mngr) Materials() Materials { return m.materials }

func (m mngr) Storages() Storages { return m.storages }

func (m mngr) Movements() Repository[*miit.Movement, miit.MovementResponse] { return m.movements }

func (m mngr) Weighings() Repository[*miit.Weighing, miit.WeighingResponse] { return m.weighings }

func (m mngr) Transactions() Repository[*miit.Transaction, miit.TransactionResponse] {
	return m.transactions
}
