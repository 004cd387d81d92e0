package miit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A signing key that is gone at verification time is an operator fault, not
// a bad token: refresh must surface it instead of answering with the silent
// empty token reserved for expired or malformed input.
func TestRefreshTokenSurfacesKeyFault(t *testing.T) {
	auther := &Auther{
		tokens: &TokenService{logger: defLogger{}},
		logger: defLogger{},
	}

	refreshed, err := auther.RefreshToken(context.Background(), "any.token.value")
	assert.ErrorIs(t, err, ErrTokenKeyInvalid)
	assert.Empty(t, refreshed)
}
