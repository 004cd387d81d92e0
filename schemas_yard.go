package miit

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Movement kinds accepted by the yard.
const (
	MovementKindIn  = "in"
	MovementKindOut = "out"
)

// Transaction kinds accepted by billing.
const (
	TransactionKindCharge = "charge"
	TransactionKindCredit = "credit"
)

type MaterialResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code,omitempty"`
	Active bool   `json:"is_active"`
}

func NewMaterialResponse(m *Material) MaterialResponse {
	return MaterialResponse{
		ID:     m.ID,
		Name:   m.Name,
		Code:   m.Code,
		Active: m.Active,
	}
}

type MaterialCreate struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (r MaterialCreate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Code, validation.Length(0, 32)),
	)
}

func (r MaterialCreate) Model() *Material {
	return &Material{
		Name:   r.Name,
		Code:   r.Code,
		Active: true,
	}
}

type MaterialUpdate struct {
	Code   string `json:"code"`
	Active *bool  `json:"is_active"`
}

func (r MaterialUpdate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Length(0, 32)),
	)
}

func (r MaterialUpdate) Model() *Material {
	m := &Material{Code: r.Code}
	if r.Active != nil {
		m.Active = *r.Active
	}
	return m
}

func (r MaterialUpdate) Columns() []string {
	var cols []string
	if r.Code != "" {
		cols = append(cols, "code")
	}
	if r.Active != nil {
		cols = append(cols, "is_active")
	}
	return cols
}

type StorageResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location,omitempty"`
	Capacity float64 `json:"capacity,omitempty"`
	Active   bool    `json:"is_active"`
}

func NewStorageResponse(m *Storage) StorageResponse {
	return StorageResponse{
		ID:       m.ID,
		Name:     m.Name,
		Location: m.Location,
		Capacity: m.Capacity,
		Active:   m.Active,
	}
}

type StorageCreate struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Capacity float64 `json:"capacity"`
}

func (r StorageCreate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Capacity, validation.Min(0.0)),
	)
}

func (r StorageCreate) Model() *Storage {
	return &Storage{
		Name:     r.Name,
		Location: r.Location,
		Capacity: r.Capacity,
		Active:   true,
	}
}

type StorageUpdate struct {
	Location string  `json:"location"`
	Capacity float64 `json:"capacity"`
	Active   *bool   `json:"is_active"`
}

func (r StorageUpdate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Capacity, validation.Min(0.0)),
	)
}

func (r StorageUpdate) Model() *Storage {
	m := &Storage{
		Location: r.Location,
		Capacity: r.Capacity,
	}
	if r.Active != nil {
		m.Active = *r.Active
	}
	return m
}

func (r StorageUpdate) Columns() []string {
	var cols []string
	if r.Location != "" {
		cols = append(cols, "location")
	}
	if r.Capacity > 0 {
		cols = append(cols, "capacity")
	}
	if r.Active != nil {
		cols = append(cols, "is_active")
	}
	return cols
}

type MovementResponse struct {
	ID         int64      `json:"id"`
	Kind       string     `json:"kind"`
	StorageID  int64      `json:"storage_id"`
	MaterialID int64      `json:"material_id"`
	TripID     *int64     `json:"trip_id,omitempty"`
	Quantity   float64    `json:"quantity"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

func NewMovementResponse(m *Movement) MovementResponse {
	return MovementResponse{
		ID:         m.ID,
		Kind:       m.Kind,
		StorageID:  m.StorageID,
		MaterialID: m.MaterialID,
		TripID:     m.TripID,
		Quantity:   m.Quantity,
		OccurredAt: m.OccurredAt,
	}
}

// MovementCreate resolves the storage by name when no id is supplied, the way
// yard operators submit tickets.
type MovementCreate struct {
	Kind        string     `json:"kind"`
	StorageID   int64      `json:"storage_id"`
	StorageName string     `json:"storage_name"`
	MaterialID  int64      `json:"material_id"`
	TripID      *int64     `json:"trip_id"`
	Quantity    float64    `json:"quantity"`
	OccurredAt  *time.Time `json:"occurred_at"`
}

func (r MovementCreate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind, validation.Required, validation.In(MovementKindIn, MovementKindOut)),
		validation.Field(&r.MaterialID, validation.Required),
		validation.Field(&r.Quantity, validation.Required, validation.Min(0.0)),
	)
}

func (r MovementCreate) Model() *Movement {
	return &Movement{
		Kind:       r.Kind,
		StorageID:  r.StorageID,
		MaterialID: r.MaterialID,
		TripID:     r.TripID,
		Quantity:   r.Quantity,
		OccurredAt: r.OccurredAt,
	}
}

type MovementUpdate struct {
	Quantity   float64    `json:"quantity"`
	OccurredAt *time.Time `json:"occurred_at"`
}

func (r MovementUpdate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity, validation.Min(0.0)),
	)
}

func (r MovementUpdate) Model() *Movement {
	return &Movement{
		Quantity:   r.Quantity,
		OccurredAt: r.OccurredAt,
	}
}

type WeighingResponse struct {
	ID          int64      `json:"id"`
	MovementID  *int64     `json:"movement_id,omitempty"`
	TripID      *int64     `json:"trip_id,omitempty"`
	GrossWeight float64    `json:"gross_weight"`
	TareWeight  float64    `json:"tare_weight"`
	NetWeight   float64    `json:"net_weight"`
	WeighedAt   *time.Time `json:"weighed_at,omitempty"`
}

func NewWeighingResponse(m *Weighing) WeighingResponse {
	return WeighingResponse{
		ID:          m.ID,
		MovementID:  m.MovementID,
		TripID:      m.TripID,
		GrossWeight: m.GrossWeight,
		TareWeight:  m.TareWeight,
		NetWeight:   m.NetWeight,
		WeighedAt:   m.WeighedAt,
	}
}

type WeighingCreate struct {
	MovementID  *int64     `json:"movement_id"`
	TripID      *int64     `json:"trip_id"`
	GrossWeight float64    `json:"gross_weight"`
	TareWeight  float64    `json:"tare_weight"`
	WeighedAt   *time.Time `json:"weighed_at"`
}

func (r WeighingCreate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.GrossWeight, validation.Required, validation.Min(0.0)),
		validation.Field(&r.TareWeight, validation.Min(0.0)),
	)
}

// Model computes the net weight; the scale only reports gross and tare.
func (r WeighingCreate) Model() *Weighing {
	return &Weighing{
		MovementID:  r.MovementID,
		TripID:      r.TripID,
		GrossWeight: r.GrossWeight,
		TareWeight:  r.TareWeight,
		NetWeight:   r.GrossWeight - r.TareWeight,
		WeighedAt:   r.WeighedAt,
	}
}

type WeighingUpdate struct {
	GrossWeight float64    `json:"gross_weight"`
	TareWeight  float64    `json:"tare_weight"`
	WeighedAt   *time.Time `json:"weighed_at"`
}

func (r WeighingUpdate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.GrossWeight, validation.Min(0.0)),
		validation.Field(&r.TareWeight, validation.Min(0.0)),
	)
}

func (r WeighingUpdate) Model() *Weighing {
	m := &Weighing{
		GrossWeight: r.GrossWeight,
		TareWeight:  r.TareWeight,
		WeighedAt:   r.WeighedAt,
	}
	if r.GrossWeight > 0 {
		m.NetWeight = r.GrossWeight - r.TareWeight
	}
	return m
}

type TransactionResponse struct {
	ID             int64      `json:"id"`
	ClientID       int64      `json:"client_id"`
	BillOfLadingID *int64     `json:"bill_of_lading_id,omitempty"`
	Kind           string     `json:"kind"`
	Amount         float64    `json:"amount"`
	PostedAt       *time.Time `json:"posted_at,omitempty"`
}

func NewTransactionResponse(m *Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             m.ID,
		ClientID:       m.ClientID,
		BillOfLadingID: m.BillOfLadingID,
		Kind:           m.Kind,
		Amount:         m.Amount,
		PostedAt:       m.PostedAt,
	}
}

type TransactionCreate struct {
	ClientID       int64      `json:"client_id"`
	BillOfLadingID *int64     `json:"bill_of_lading_id"`
	Kind           string     `json:"kind"`
	Amount         float64    `json:"amount"`
	PostedAt       *time.Time `json:"posted_at"`
}

func (r TransactionCreate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ClientID, validation.Required),
		validation.Field(&r.Kind, validation.Required, validation.In(TransactionKindCharge, TransactionKindCredit)),
		validation.Field(&r.Amount, validation.Required, validation.Min(0.0)),
	)
}

func (r TransactionCreate) Model() *Transaction {
	return &Transaction{
		ClientID:       r.ClientID,
		BillOfLadingID: r.BillOfLadingID,
		Kind:           r.Kind,
		Amount:         r.Amount,
		PostedAt:       r.PostedAt,
	}
}

type TransactionUpdate struct {
	Amount   float64    `json:"amount"`
	PostedAt *time.Time `json:"posted_at"`
}

func (r TransactionUpdate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.Min(0.0)),
	)
}

func (r TransactionUpdate) Model() *Transaction {
	return &Transaction{
		Amount:   r.Amount,
		PostedAt: r.PostedAt,
	}
}
