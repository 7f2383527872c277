package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shario-backend/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)

	token, err := m.Generate("64f1c0ffee0000000000abcd", "alice@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000abcd", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestTokenExpired(t *testing.T) {
	m := auth.NewTokenManager("secret", -time.Minute)

	token, err := m.Generate("64f1c0ffee0000000000abcd", "alice@example.com")
	assert.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", time.Hour)
	verifier := auth.NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Generate("64f1c0ffee0000000000abcd", "alice@example.com")
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)

	_, err := m.Parse("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = m.Parse("")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
