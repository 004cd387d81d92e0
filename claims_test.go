package miit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	miit "github.com/metalteco/miit-api"
)

func testUser() *miit.User {
	return &miit.User{
		ID:       7,
		Nickname: "jsalcedo",
		FullName: "Julia Salcedo",
		Email:    "jsalcedo@example.com",
		Active:   true,
		RoleID:   miit.RoleOperator,
		RoleName: miit.RoleNameOperator,
	}
}

func TestUserClaims(t *testing.T) {
	claims := miit.UserClaims(testUser())

	assert.Equal(t, "jsalcedo", claims.Subject())
	assert.Equal(t, "jsalcedo@example.com", claims.Email())
	assert.Equal(t, "Julia Salcedo", claims.FullName())
	assert.Equal(t, miit.RoleNameOperator, claims.Role())
	assert.True(t, claims.Active())
	assert.False(t, claims.IsSuperuser())
}

func TestSuperuserClaims(t *testing.T) {
	claims := miit.SuperuserClaims()

	assert.Equal(t, miit.SuperuserSubject, claims.Subject())
	assert.Equal(t, miit.RoleNameSuperUser, claims.Role())
	assert.True(t, claims.Active())
	assert.True(t, claims.IsSuperuser())
}

func TestTokenClaimsHasRole(t *testing.T) {
	claims := miit.UserClaims(testUser())

	assert.True(t, claims.HasRole(miit.RoleOperator))
	assert.False(t, claims.HasRole(miit.RoleAdministrator))
	assert.False(t, claims.HasRole(miit.RoleSuperUser))
}

func TestTokenClaimsTimesEmpty(t *testing.T) {
	claims := miit.UserClaims(testUser())

	// Issuance fields are stamped by the token service, not the claim builder.
	assert.True(t, claims.Expires().IsZero())
	assert.True(t, claims.IssuedAt().IsZero())
}
