package miit

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/nyaruka/phonenumbers"
)

// Response shapes are what the repositories hand back to callers: a validated
// projection of a row, never the bun model itself. Create/Update shapes are
// the inbound payloads; each carries its own validation rules.

// phoneRegion is the default region used to parse national numbers.
var phoneRegion = "CO"

func validPhone(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	num, err := phonenumbers.Parse(s, phoneRegion)
	if err != nil {
		return err
	}
	if !phonenumbers.IsValidNumber(num) {
		return errors.New("must be a valid phone number")
	}
	return nil
}

// UserResponse never exposes the password hash.
type UserResponse struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nick_name"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Active   bool   `json:"is_active"`
	RoleID   Role   `json:"role_id"`
	RoleName string `json:"role_name"`
}

// NewUserResponse maps a user row to its response shape.
func NewUserResponse(m *User) UserResponse {
	return UserResponse{
		ID:       m.ID,
		Nickname: m.Nickname,
		FullName: m.FullName,
		Email:    m.Email,
		Active:   m.Active,
		RoleID:   m.RoleID,
		RoleName: m.RoleName,
	}
}

type FleetResponse struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind,omitempty"`
	Reference string `json:"reference"`
	Points    *int   `json:"points,omitempty"`
	Active    bool   `json:"is_active"`
}

func NewFleetResponse(m *Fleet) FleetResponse {
	return FleetResponse{
		ID:        m.ID,
		Kind:      m.Kind,
		Reference: m.Reference,
		Points:    m.Points,
		Active:    m.Active,
	}
}

// FleetCreate is the inbound payload for registering a fleet unit.
type FleetCreate struct {
	Kind      string `json:"kind"`
	Reference string `json:"reference"`
	Points    *int   `json:"points"`
	Active    *bool  `json:"is_active"`
}

func (r FleetCreate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Reference, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Kind, validation.In("buque", "barcaza", "camion", "")),
	)
}

// Model builds the bun record; Active defaults to true like the source table.
func (r FleetCreate) Model() *Fleet {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &Fleet{
		Kind:      r.Kind,
		Reference: r.Reference,
		Points:    r.Points,
		Active:    active,
	}
}

type FleetUpdate struct {
	Reference string `json:"reference"`
	Points    *int   `json:"points"`
	Active    *bool  `json:"is_active"`
}

func (r FleetUpdate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Reference, validation.Length(0, 255)),
	)
}

func (r FleetUpdate) Model() *Fleet {
	m := &Fleet{
		Reference: r.Reference,
		Points:    r.Points,
	}
	if r.Active != nil {
		m.Active = *r.Active
	}
	return m
}

// Columns reports the columns the caller actually set, so a false
// is_active still reaches the database.
func (r FleetUpdate) Columns() []string {
	var cols []string
	if r.Reference != "" {
		cols = append(cols, "reference")
	}
	if r.Points != nil {
		cols = append(cols, "points")
	}
	if r.Active != nil {
		cols = append(cols, "is_active")
	}
	return cols
}

type TripResponse struct {
	ID          int64      `json:"id"`
	FleetID     int64      `json:"fleet_id"`
	Reference   string     `json:"reference"`
	Origin      string     `json:"origin,omitempty"`
	Destination string     `json:"destination,omitempty"`
	DepartedAt  *time.Time `json:"departed_at,omitempty"`
	ArrivedAt   *time.Time `json:"arrived_at,omitempty"`
	Active      bool       `json:"is_active"`
}

func NewTripResponse(m *Trip) TripResponse {
	return TripResponse{
		ID:          m.ID,
		FleetID:     m.FleetID,
		Reference:   m.Reference,
		Origin:      m.Origin,
		Destination: m.Destination,
		DepartedAt:  m.DepartedAt,
		ArrivedAt:   m.ArrivedAt,
		Active:      m.Active,
	}
}

type TripCreate struct {
	FleetID     int64      `json:"fleet_id"`
	Reference   string     `json:"reference"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	DepartedAt  *time.Time `json:"departed_at"`
}

func (r TripCreate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FleetID, validation.Required),
		validation.Field(&r.Reference, validation.Required, validation.Length(1, 255)),
	)
}

func (r TripCreate) Model() *Trip {
	return &Trip{
		FleetID:     r.FleetID,
		Reference:   r.Reference,
		Origin:      r.Origin,
		Destination: r.Destination,
		DepartedAt:  r.DepartedAt,
		Active:      true,
	}
}

type TripUpdate struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	DepartedAt  *time.Time `json:"departed_at"`
	ArrivedAt   *time.Time `json:"arrived_at"`
	Active      *bool      `json:"is_active"`
}

func (r TripUpdate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Origin, validation.Length(0, 255)),
		validation.Field(&r.Destination, validation.Length(0, 255)),
	)
}

func (r TripUpdate) Model() *Trip {
	m := &Trip{
		Origin:      r.Origin,
		Destination: r.Destination,
		DepartedAt:  r.DepartedAt,
		ArrivedAt:   r.ArrivedAt,
	}
	if r.Active != nil {
		m.Active = *r.Active
	}
	return m
}

func (r TripUpdate) Columns() []string {
	var cols []string
	if r.Origin != "" {
		cols = append(cols, "origin")
	}
	if r.Destination != "" {
		cols = append(cols, "destination")
	}
	if r.DepartedAt != nil {
		cols = append(cols, "departed_at")
	}
	if r.ArrivedAt != nil {
		cols = append(cols, "arrived_at")
	}
	if r.Active != nil {
		cols = append(cols, "is_active")
	}
	return cols
}

type BillOfLadingResponse struct {
	ID         int64      `json:"id"`
	Code       string     `json:"code"`
	TripID     int64      `json:"trip_id"`
	ClientID   int64      `json:"client_id"`
	MaterialID int64      `json:"material_id"`
	Quantity   float64    `json:"quantity"`
	IssuedAt   *time.Time `json:"issued_at,omitempty"`
	Active     bool       `json:"is_active"`
}

func NewBillOfLadingResponse(m *BillOfLading) BillOfLadingResponse {
	return BillOfLadingResponse{
		ID:         m.ID,
		Code:       m.Code,
		TripID:     m.TripID,
		ClientID:   m.ClientID,
		MaterialID: m.MaterialID,
		Quantity:   m.Quantity,
		IssuedAt:   m.IssuedAt,
		Active:     m.Active,
	}
}

type BillOfLadingCreate struct {
	Code       string     `json:"code"`
	TripID     int64      `json:"trip_id"`
	ClientID   int64      `json:"client_id"`
	MaterialID int64      `json:"material_id"`
	Quantity   float64    `json:"quantity"`
	IssuedAt   *time.Time `json:"issued_at"`
}

func (r BillOfLadingCreate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.TripID, validation.Required),
		validation.Field(&r.ClientID, validation.Required),
		validation.Field(&r.MaterialID, validation.Required),
		validation.Field(&r.Quantity, validation.Min(0.0)),
	)
}

func (r BillOfLadingCreate) Model() *BillOfLading {
	return &BillOfLading{
		Code:       r.Code,
		TripID:     r.TripID,
		ClientID:   r.ClientID,
		MaterialID: r.MaterialID,
		Quantity:   r.Quantity,
		IssuedAt:   r.IssuedAt,
		Active:     true,
	}
}

type BillOfLadingUpdate struct {
	Quantity float64    `json:"quantity"`
	IssuedAt *time.Time `json:"issued_at"`
	Active   *bool      `json:"is_active"`
}

func (r BillOfLadingUpdate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity, validation.Min(0.0)),
	)
}

func (r BillOfLadingUpdate) Model() *BillOfLading {
	m := &BillOfLading{
		Quantity: r.Quantity,
		IssuedAt: r.IssuedAt,
	}
	if r.Active != nil {
		m.Active = *r.Active
	}
	return m
}

func (r BillOfLadingUpdate) Columns() []string {
	var cols []string
	if r.Quantity > 0 {
		cols = append(cols, "quantity")
	}
	if r.IssuedAt != nil {
		cols = append(cols, "issued_at")
	}
	if r.Active != nil {
		cols = append(cols, "is_active")
	}
	return cols
}

type ClientResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone_number,omitempty"`
	Address string `json:"address,omitempty"`
	Active  bool   `json:"is_active"`
}

func NewClientResponse(m *Client) ClientResponse {
	return ClientResponse{
		ID:      m.ID,
		Name:    m.Name,
		TaxID:   m.TaxID,
		Email:   m.Email,
		Phone:   m.Phone,
		Address: m.Address,
		Active:  m.Active,
	}
}

type ClientCreate struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
	Phone   string `json:"phone_number"`
	Address string `json:"address"`
}

func (r ClientCreate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Phone, validation.By(validPhone)),
	)
}

func (r ClientCreate) Model() *Client {
	return &Client{
		Name:    r.Name,
		TaxID:   r.TaxID,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		Active:  true,
	}
}

type ClientUpdate struct {
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
	Phone   string `json:"phone_number"`
	Address string `json:"address"`
	Active  *bool  `json:"is_active"`
}

func (r ClientUpdate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Phone, validation.By(validPhone)),
	)
}

func (r ClientUpdate) Model() *Client {
	m := &Client{
		TaxID:   r.TaxID,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
	if r.Active != nil {
		m.Active = *r.Active
	}
	return m
}

func (r ClientUpdate) Columns() []string {
	var cols []string
	if r.TaxID != "" {
		cols = append(cols, "tax_id")
	}
	if r.Email != "" {
		cols = append(cols, "email")
	}
	if r.Phone != "" {
		cols = append(cols, "phone_number")
	}
	if r.Address != "" {
		cols = append(cols, "address")
	}
	if r.Active != nil {
		cols = append(cols, "is_active")
	}
	return cols
}
