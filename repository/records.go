package repository

import (
	"github.com/uptrace/bun"

	miit "github.com/metalteco/miit-api"
)

func NewTrips(db *bun.DB) Repository[*miit.Trip, miit.TripResponse] {
	return NewRepository(db, ModelHandlers[*miit.Trip, miit.TripResponse]{
		NewRecord: func() *miit.Trip { return &miit.Trip{} },
		GetID: func(m *miit.Trip) int64 {
			if m == nil {
				return 0
			}
			return m.ID
		},
		SetID: func(m *miit.Trip, id int64) {
			if m != nil {
				m.ID = id
			}
		},
		ToResponse: func(m *miit.Trip) miit.TripResponse {
			return miit.NewTripResponse(m)
		},
	})
}

func NewBillsOfLading(db *bun.DB) Repository[*miit.BillOfLading, miit.BillOfLadingResponse] {
	return NewRepository(db, ModelHandlers[*miit.BillOfLading, miit.BillOfLadingResponse]{
		NewRecord: func() *miit.BillOfLading { return &miit.BillOfLading{} },
		GetID: func(m *miit.BillOfLading) int64 {
			if m == nil {
				return 0
			}
			return m.ID
		},
		SetID: func(m *miit.BillOfLading, id int64) {
			if m != nil {
				m.ID = id
			}
		},
		ToResponse: func(m *miit.BillOfLading) miit.BillOfLadingResponse {
			return miit.NewBillOfLadingResponse(m)
		},
	})
}

func NewMovements(db *bun.DB) Repository[*miit.Movement, miit.MovementResponse] {
	return NewRepository(db, ModelHandlers[*miit.Movement, miit.MovementResponse]{
		NewRecord: func() *miit.Movement { return &miit.Movement{} },
		GetID: func(m *miit.Movement) int64 {
			if m == nil {
				return 0
			}
			return m.ID
		},
		SetID: func(m *miit.Movement, id int64) {
			if m != nil {
				m.ID = id
			}
		},
		ToResponse: func(m *miit.Movement) miit.MovementResponse {
			return miit.NewMovementResponse(m)
		},
	})
}

func NewWeighings(db *bun.DB) Repository[*miit.Weighing, miit.WeighingResponse] {
	return NewRepository(db, ModelHandlers[*miit.Weighing, miit.WeighingResponse]{
		NewRecord: func() *miit.Weighing { return &miit.Weighing{} },
		GetID: func(m *miit.Weighing) int64 {
			if m == nil {
				return 0
			}
			return m.ID
		},
		SetID: func(m *miit.Weighing, id int64) {
			if m != nil {
				m.ID = id
			}
		},
		ToResponse: func(m *miit.Weighing) miit.WeighingResponse {
			return miit.NewWeighingResponse(m)
		},
	})
}

func NewTransactions(db *bun.DB) Repository[*miit.Transaction, miit.TransactionResponse] {
	return NewRepository(db, ModelHandlers[*miit.Transaction, miit.TransactionResponse]{
		NewRecord: func() *miit.Transaction { return &miit.Transaction{} },
		GetID: func(m *miit.Transaction) int64 {
			if m == nil {
				return 0
			}
			return m.ID
		},
		SetID: func(m *miit.Transaction, id int64) {
			if m != nil {
				m.ID = id
			}
		},
		ToResponse: func(m *miit.Transaction) miit.TransactionResponse {
			return miit.NewTransactionResponse(m)
		},
	})
}
