package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/logos-estoque/pkg/jwt"
)

var maria = pkgjwt.Subject{UserID: "u-1", Username: "maria", Role: "GERENCIA"}

func TestSignVerify_DevolveIdentidade(t *testing.T) {
	tok, err := pkgjwt.Sign("segredo", maria, "logos-test", 5*time.Minute)
	require.NoError(t, err)

	claims, err := pkgjwt.Verify("segredo", tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, "GERENCIA", claims.Role)
	assert.Equal(t, "logos-test", claims.Issuer)
}

func TestVerify_SegredoErrado(t *testing.T) {
	tok, err := pkgjwt.Sign("segredo", maria, "logos-test", 5*time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Verify("outro", tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestVerify_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Sign("segredo", maria, "logos-test", -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Verify("segredo", tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestVerify_Lixo(t *testing.T) {
	_, err := pkgjwt.Verify("segredo", "nao.e.jwt")
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestSign_SemSegredo(t *testing.T) {
	_, err := pkgjwt.Sign("", maria, "logos-test", time.Minute)
	assert.ErrorIs(t, err, pkgjwt.ErrNoSecret)
}
