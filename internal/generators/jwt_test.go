package generators

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavelink-comms/wavelink-auth/internal/testutil"
	"github.com/wavelink-comms/wavelink-auth/pkg/errors"
)

func TestJWTGenerate(t *testing.T) {
	keyPEM := testutil.RSAKeyPEM(t)
	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	g := NewJWT(withClock(func() time.Time { return fixed }))
	token, err := g.Generate(keyPEM, map[string]interface{}{
		"application_id": "app-id",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := parseToken(t, keyPEM, token)
	assert.Equal(t, "app-id", claims["application_id"])
	assert.Equal(t, float64(fixed.Unix()), claims["iat"])
	assert.Equal(t, float64(fixed.Add(DefaultTokenTTL).Unix()), claims["exp"])
	assert.NotEmpty(t, claims["jti"])
}

func TestJWTGenerate_CustomTTL(t *testing.T) {
	keyPEM := testutil.RSAKeyPEM(t)
	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	g := NewJWT(WithTTL(time.Hour), withClock(func() time.Time { return fixed }))
	token, err := g.Generate(keyPEM, map[string]interface{}{"application_id": "a"})
	require.NoError(t, err)

	claims := parseToken(t, keyPEM, token)
	assert.Equal(t, float64(fixed.Add(time.Hour).Unix()), claims["exp"])
}

func TestJWTGenerate_CallerClaimsWin(t *testing.T) {
	keyPEM := testutil.RSAKeyPEM(t)

	g := NewJWT()
	token, err := g.Generate(keyPEM, map[string]interface{}{
		"application_id": "a",
		"jti":            "pinned-jti",
	})
	require.NoError(t, err)

	claims := parseToken(t, keyPEM, token)
	assert.Equal(t, "pinned-jti", claims["jti"])
}

func TestJWTGenerate_UniqueJTI(t *testing.T) {
	keyPEM := testutil.RSAKeyPEM(t)

	g := NewJWT()
	first, err := g.Generate(keyPEM, map[string]interface{}{"application_id": "a"})
	require.NoError(t, err)
	second, err := g.Generate(keyPEM, map[string]interface{}{"application_id": "a"})
	require.NoError(t, err)

	assert.NotEqual(t,
		parseToken(t, keyPEM, first)["jti"],
		parseToken(t, keyPEM, second)["jti"],
	)
}

func TestJWTGenerate_MissingKey(t *testing.T) {
	g := NewJWT()
	_, err := g.Generate(nil, map[string]interface{}{"application_id": "a"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCredentialMalformed))
}

func TestJWTGenerate_GarbageKey(t *testing.T) {
	g := NewJWT()
	_, err := g.Generate([]byte("not a pem key"), map[string]interface{}{"application_id": "a"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCredentialMalformed))
}

// parseToken verifies the token signature against the public half of
// keyPEM and returns its claims
func parseToken(t *testing.T, keyPEM []byte, token string) jwt.MapClaims {
	t.Helper()

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(keyPEM)
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return &privateKey.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}), jwt.WithoutClaimsValidation())
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}
