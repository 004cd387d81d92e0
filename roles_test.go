package miit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	miit "github.com/metalteco/miit-api"
)

func TestRoleIsValid(t *testing.T) {
	for _, role := range miit.GetAllRoles() {
		assert.True(t, role.IsValid(), "role %d should be valid", role)
	}

	assert.False(t, miit.Role(0).IsValid())
	assert.False(t, miit.Role(99).IsValid())
}

func TestRoleName(t *testing.T) {
	assert.Equal(t, "Administrador", miit.RoleAdministrator.Name())
	assert.Equal(t, "Supervisor", miit.RoleSupervisor.Name())
	assert.Equal(t, "Operador", miit.RoleOperator.Name())
	assert.Equal(t, "SuperAdministrador", miit.RoleSuperUser.Name())
	assert.Equal(t, "", miit.Role(0).Name())
}

func TestParseRole(t *testing.T) {
	t.Run("resolves every known name", func(t *testing.T) {
		for _, role := range miit.GetAllRoles() {
			parsed, ok := miit.ParseRole(role.Name())
			assert.True(t, ok)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, ok := miit.ParseRole("Gerente")
		assert.False(t, ok)

		_, ok = miit.ParseRole("")
		assert.False(t, ok)
	})
}
