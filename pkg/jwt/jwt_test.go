package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	token, err := issuer.GenerateToken(42, "ayse@example.com", "manager", "v1")
	require.NoError(t, err)

	claims, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ayse@example.com", claims.Email)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "v1", claims.TokenVersion)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, err := NewIssuer("secret", time.Hour).GenerateToken(1, "a@b.co", "worker", "v1")
	require.NoError(t, err)

	_, err = NewIssuer("other", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpired(t *testing.T) {
	issuer := NewIssuer("secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.GenerateToken(1, "a@b.co", "worker", "v1")
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateEmpty(t *testing.T) {
	_, err := NewIssuer("secret", time.Hour).ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = NewIssuer("secret", time.Hour).ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
