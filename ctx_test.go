package miit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	miit "github.com/metalteco/miit-api"
)

func TestUserContext(t *testing.T) {
	t.Run("round trips a user", func(t *testing.T) {
		ctx := miit.WithContext(context.Background(), testUser())

		user, ok := miit.FromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "jsalcedo", user.Nickname)
	})

	t.Run("missing user", func(t *testing.T) {
		user, ok := miit.FromContext(context.Background())
		assert.False(t, ok)
		assert.Nil(t, user)
	})
}

func TestClaimsContext(t *testing.T) {
	claims := miit.UserClaims(testUser())
	ctx := miit.WithClaimsContext(context.Background(), claims)

	got, ok := miit.GetClaims(ctx)
	assert.True(t, ok)
	assert.Equal(t, "jsalcedo", got.Subject())

	_, ok = miit.GetClaims(context.Background())
	assert.False(t, ok)
}
