package miit

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the identity record behind every login. Writes happen through
// administrative flows; the auth service only ever reads it.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Nickname      string     `bun:"nick_name,notnull,unique" json:"nick_name,omitempty"`
	FullName      string     `bun:"full_name,notnull" json:"full_name,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash" json:"password_hash,omitempty"`
	Active        bool       `bun:"is_active" json:"is_active"`
	RoleID        Role       `bun:"role_id,notnull" json:"role_id,omitempty"`
	RoleName      string     `bun:"role_name" json:"role_name,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Fleet is a transport unit: a vessel, barge, or truck fleet.
type Fleet struct {
	bun.BaseModel `bun:"table:fleets,alias:flt"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Kind          string     `bun:"kind" json:"kind,omitempty"`
	Reference     string     `bun:"reference,notnull" json:"reference,omitempty"`
	Points        *int       `bun:"points" json:"points,omitempty"`
	Active        bool       `bun:"is_active" json:"is_active"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Trip is one voyage or haul performed by a fleet unit.
type Trip struct {
	bun.BaseModel `bun:"table:trips,alias:trp"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	FleetID       int64      `bun:"fleet_id,notnull" json:"fleet_id,omitempty"`
	Reference     string     `bun:"reference,notnull" json:"reference,omitempty"`
	Origin        string     `bun:"origin" json:"origin,omitempty"`
	Destination   string     `bun:"destination" json:"destination,omitempty"`
	DepartedAt    *time.Time `bun:"departed_at,nullzero" json:"departed_at,omitempty"`
	ArrivedAt     *time.Time `bun:"arrived_at,nullzero" json:"arrived_at,omitempty"`
	Active        bool       `bun:"is_active" json:"is_active"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// BillOfLading documents a consignment carried on a trip.
type BillOfLading struct {
	bun.BaseModel `bun:"table:bills_of_lading,alias:bl"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Code          string     `bun:"code,notnull,unique" json:"code,omitempty"`
	TripID        int64      `bun:"trip_id,notnull" json:"trip_id,omitempty"`
	ClientID      int64      `bun:"client_id,notnull" json:"client_id,omitempty"`
	MaterialID    int64      `bun:"material_id,notnull" json:"material_id,omitempty"`
	Quantity      float64    `bun:"quantity" json:"quantity,omitempty"`
	IssuedAt      *time.Time `bun:"issued_at,nullzero" json:"issued_at,omitempty"`
	Active        bool       `bun:"is_active" json:"is_active"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// Client is a customer that owns cargo moving through the terminal.
type Client struct {
	bun.BaseModel `bun:"table:clients,alias:cli"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Name          string     `bun:"name,notnull,unique" json:"name,omitempty"`
	TaxID         string     `bun:"tax_id" json:"tax_id,omitempty"`
	Email         string     `bun:"email" json:"email,omitempty"`
	Phone         string     `bun:"phone_number" json:"phone_number,omitempty"`
	Address       string     `bun:"address" json:"address,omitempty"`
	Active        bool       `bun:"is_active" json:"is_active"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Material is a bulk product handled by the terminal.
type Material struct {
	bun.BaseModel `bun:"table:materials,alias:mat"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Name          string     `bun:"name,notnull,unique" json:"name,omitempty"`
	Code          string     `bun:"code" json:"code,omitempty"`
	Active        bool       `bun:"is_active" json:"is_active"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// Storage is a named yard, silo, or warehouse location.
type Storage struct {
	bun.BaseModel `bun:"table:storages,alias:sto"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Name          string     `bun:"name,notnull,unique" json:"name,omitempty"`
	Location      string     `bun:"location" json:"location,omitempty"`
	Capacity      float64    `bun:"capacity" json:"capacity,omitempty"`
	Active        bool       `bun:"is_active" json:"is_active"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// Movement records material entering or leaving a storage location.
type Movement struct {
	bun.BaseModel `bun:"table:movements,alias:mov"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Kind          string     `bun:"kind,notnull" json:"kind,omitempty"`
	StorageID     int64      `bun:"storage_id,notnull" json:"storage_id,omitempty"`
	MaterialID    int64      `bun:"material_id,notnull" json:"material_id,omitempty"`
	TripID        *int64     `bun:"trip_id" json:"trip_id,omitempty"`
	Quantity      float64    `bun:"quantity,notnull" json:"quantity,omitempty"`
	OccurredAt    *time.Time `bun:"occurred_at,nullzero" json:"occurred_at,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// Weighing is one scale ticket: gross minus tare for a movement.
type Weighing struct {
	bun.BaseModel `bun:"table:weighings,alias:wgh"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	MovementID    *int64     `bun:"movement_id" json:"movement_id,omitempty"`
	TripID        *int64     `bun:"trip_id" json:"trip_id,omitempty"`
	GrossWeight   float64    `bun:"gross_weight,notnull" json:"gross_weight,omitempty"`
	TareWeight    float64    `bun:"tare_weight" json:"tare_weight,omitempty"`
	NetWeight     float64    `bun:"net_weight" json:"net_weight,omitempty"`
	WeighedAt     *time.Time `bun:"weighed_at,nullzero" json:"weighed_at,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// Transaction is the billing entry raised against a bill of lading.
type Transaction struct {
	bun.BaseModel `bun:"table:transactions,alias:trx"`
	ID             int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	ClientID       int64      `bun:"client_id,notnull" json:"client_id,omitempty"`
	BillOfLadingID *int64     `bun:"bill_of_lading_id" json:"bill_of_lading_id,omitempty"`
	Kind           string     `bun:"kind,notnull" json:"kind,omitempty"`
	Amount         float64    `bun:"amount,notnull" json:"amount,omitempty"`
	PostedAt       *time.Time `bun:"posted_at,nullzero" json:"posted_at,omitempty"`
	CreatedAt      *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}
