package miit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	miit "github.com/metalteco/miit-api"
)

func TestHashPassword(t *testing.T) {
	t.Run("hashes a valid password", func(t *testing.T) {
		hash, err := miit.HashPassword("correct horse battery staple")
		assert.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "correct horse battery staple", hash)
	})

	t.Run("rejects empty passwords", func(t *testing.T) {
		_, err := miit.HashPassword("")
		assert.ErrorIs(t, err, miit.ErrNoEmptyString)
	})
}

func TestComparePasswordAndHash(t *testing.T) {
	hash, err := miit.HashPassword("s3cret-pass")
	assert.NoError(t, err)

	t.Run("accepts the matching password", func(t *testing.T) {
		assert.NoError(t, miit.ComparePasswordAndHash("s3cret-pass", hash))
	})

	t.Run("rejects a mismatch with the sentinel", func(t *testing.T) {
		err := miit.ComparePasswordAndHash("wrong-pass", hash)
		assert.ErrorIs(t, err, miit.ErrMismatchedHashAndPassword)
	})

	t.Run("rejects garbage hashes", func(t *testing.T) {
		err := miit.ComparePasswordAndHash("s3cret-pass", "not-a-bcrypt-hash")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, miit.ErrMismatchedHashAndPassword)
	})
}

func TestRandomPasswordHash(t *testing.T) {
	h1 := miit.RandomPasswordHash()
	h2 := miit.RandomPasswordHash()

	assert.NotEmpty(t, h1)
	assert.NotEqual(t, h1, h2)
}
