package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/almacen-api/pkg/jwt"
)

const (
	testSecret        = "test-secret-key-for-unit-tests"
	testRefreshSecret = "test-refresh-secret-key"
	testIssuer        = "almacen-api-test"
)

func TestGenerateYParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 42, "bodega@example.com", 7, testIssuer, 60)
	require.NoError(t, err)

	userID, email, projectID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "bodega@example.com", email)
	assert.Equal(t, int64(7), projectID)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "a@b.com", 1, testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err, "un token firmado con otro secreto debe rechazarse")
}

func TestParse_TokenMalformado(t *testing.T) {
	_, _, _, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "a@b.com", 1, testIssuer, 60)
	assert.Error(t, err)
}

// El refresh token se firma con un secreto distinto: no debe validar con el de acceso.
func TestGenerateRefresh_SecretoSeparado(t *testing.T) {
	refresh, err := pkgjwt.GenerateRefresh(testRefreshSecret, 42, "bodega@example.com", 7, testIssuer, 30)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, refresh)
	assert.Error(t, err, "el refresh token no debe validar con el secreto de acceso")

	userID, _, projectID, err := pkgjwt.Parse(testRefreshSecret, refresh)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, int64(7), projectID)
}
