// Package generators holds the default JWT and signature generator
// strategies bound lazily by the credentials package.
package generators

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/wavelink-comms/wavelink-auth/pkg/errors"
)

// DefaultTokenTTL is the lifetime of generated JWTs unless overridden
const DefaultTokenTTL = 15 * time.Minute

// JWT is the default JWT generator. It signs RS256 tokens carrying the
// caller's claims plus iat, exp and a uuid jti.
type JWT struct {
	ttl time.Duration
	now func() time.Time
}

// JWTOption configures the JWT generator
type JWTOption func(*JWT)

// WithTTL sets the token lifetime
func WithTTL(ttl time.Duration) JWTOption {
	return func(g *JWT) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// withClock fixes the clock, for tests
func withClock(now func() time.Time) JWTOption {
	return func(g *JWT) {
		g.now = now
	}
}

// NewJWT creates the default JWT generator
func NewJWT(opts ...JWTOption) *JWT {
	g := &JWT{
		ttl: DefaultTokenTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate signs a JWT with the given PEM private key. Caller claims are
// merged over the standard iat/exp/jti set, so a caller may pin any of
// them explicitly.
func (g *JWT) Generate(privateKey []byte, claims map[string]interface{}) (string, error) {
	if len(privateKey) == 0 {
		return "", errors.New(
			errors.ErrCredentialMalformed,
			"private key is required for JWT generation",
		)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(privateKey)
	if err != nil {
		return "", errors.Wrap(
			errors.ErrCredentialMalformed,
			err,
			"failed to parse RSA private key",
		)
	}

	now := g.now()
	mapClaims := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(g.ttl).Unix(),
		"jti": uuid.NewString(),
	}
	for k, v := range claims {
		mapClaims[k] = v
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, mapClaims).SignedString(key)
	if err != nil {
		return "", errors.Wrap(
			errors.ErrTokenGenerationFailed,
			err,
			"failed to sign JWT",
		)
	}

	return token, nil
}
