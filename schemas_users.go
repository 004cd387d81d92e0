package miit

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// UserCreate is the inbound payload for provisioning an account. The plain
// password never reaches a model; Model hashes it on the way in.
type UserCreate struct {
	Nickname string `json:"nick_name"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   Role   `json:"role_id"`
	Active   *bool  `json:"is_active"`
}

func (r UserCreate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nickname, validation.Required, validation.Length(3, 64)),
		validation.Field(&r.FullName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(&r.RoleID, validation.Required, validation.By(validRole)),
	)
}

func (r UserCreate) Model() (*User, error) {
	hash, err := HashPassword(r.Password)
	if err != nil {
		return nil, err
	}

	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &User{
		Nickname:     r.Nickname,
		FullName:     r.FullName,
		Email:        r.Email,
		PasswordHash: hash,
		Active:       active,
		RoleID:       r.RoleID,
		RoleName:     r.RoleID.Name(),
	}, nil
}

// UserUpdate changes profile fields; a non-empty Password rotates the hash.
type UserUpdate struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   Role   `json:"role_id"`
	Active   *bool  `json:"is_active"`
}

func (r UserUpdate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Length(0, 255)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Password, validation.Length(8, 100)),
		validation.Field(&r.RoleID, validation.By(validOptionalRole)),
	)
}

func (r UserUpdate) Model() (*User, error) {
	m := &User{
		FullName: r.FullName,
		Email:    r.Email,
	}

	if r.Password != "" {
		hash, err := HashPassword(r.Password)
		if err != nil {
			return nil, err
		}
		m.PasswordHash = hash
	}

	if r.RoleID != 0 {
		m.RoleID = r.RoleID
		m.RoleName = r.RoleID.Name()
	}

	if r.Active != nil {
		m.Active = *r.Active
	}

	return m, nil
}

func (r UserUpdate) Columns() []string {
	var cols []string
	if r.FullName != "" {
		cols = append(cols, "full_name")
	}
	if r.Email != "" {
		cols = append(cols, "email")
	}
	if r.Password != "" {
		cols = append(cols, "password_hash")
	}
	if r.RoleID != 0 {
		cols = append(cols, "role_id", "role_name")
	}
	if r.Active != nil {
		cols = append(cols, "is_active")
	}
	return cols
}

func validRole(value any) error {
	role, _ := value.(Role)
	if !role.IsValid() {
		return errors.New("must be a known role identifier")
	}
	return nil
}

func validOptionalRole(value any) error {
	role, _ := value.(Role)
	if role == 0 {
		return nil
	}
	return validRole(value)
}
