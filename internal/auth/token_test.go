package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "42", claims.Subject)
}

func TestGerarTokenSemSegredo(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := GerarToken(1, false)
	assert.Error(t, err)
}

func TestParseTokenAdulterado(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(1, false)
	require.NoError(t, err)

	_, err = ParseAndValidate(token + "x")
	assert.Error(t, err)
}

func TestParseComSegredoErrado(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")
	token, err := GerarToken(1, false)
	require.NoError(t, err)

	t.Setenv("AUTH_JWT_SECRET", "outro-segredo")
	_, err = ParseAndValidate(token)
	assert.Error(t, err)
}
