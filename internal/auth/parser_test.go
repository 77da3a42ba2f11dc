package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/hr-contracts/internal/model"
)

func TestParser_RoundTrip(t *testing.T) {
	p := NewParser("secret")
	token, err := p.Sign(model.Principal{NetID: "boss", Roles: []string{model.RoleHR}}, time.Hour)
	require.NoError(t, err)

	principal, err := p.Parse("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "boss", principal.NetID)
	assert.True(t, principal.IsHR())
	assert.WithinDuration(t, time.Now().Add(time.Hour), principal.ExpiresAt, 5*time.Second)
}

func TestParser_Rejects(t *testing.T) {
	p := NewParser("secret")

	t.Run("empty", func(t *testing.T) {
		_, err := p.Parse("  ")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := p.Sign(model.Principal{NetID: "alice"}, -time.Minute)
		require.NoError(t, err)
		_, err = p.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewParser("other").Sign(model.Principal{NetID: "alice"}, time.Hour)
		require.NoError(t, err)
		_, err = p.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("non hmac algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{NetID: "alice"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = p.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing net id", func(t *testing.T) {
		token, err := p.Sign(model.Principal{}, time.Hour)
		require.NoError(t, err)
		_, err = p.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
