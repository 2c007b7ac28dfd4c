package output

import (
	"time"
)

// TokenEnvelope is the JSON document emitted for a generated JWT
type TokenEnvelope struct {
	// Token is the signed compact JWT
	Token string `json:"token"`

	// TokenType is the authentication scheme the token is used with
	TokenType string `json:"token_type"`

	// GeneratedAt is when the token was produced (RFC3339)
	GeneratedAt time.Time `json:"generated_at"`
}

// SignatureEnvelope is the JSON document emitted for a request signature
type SignatureEnvelope struct {
	// Signature is the lowercase hex digest
	Signature string `json:"signature"`

	// Method is the digest method the signature was computed with
	Method string `json:"method"`

	// Params are the request parameters the signature covers
	Params map[string]string `json:"params,omitempty"`
}

// NewTokenEnvelope creates a token envelope stamped with the current time
func NewTokenEnvelope(token string) *TokenEnvelope {
	return &TokenEnvelope{
		Token:       token,
		TokenType:   "Bearer",
		GeneratedAt: time.Now().UTC(),
	}
}

// NewSignatureEnvelope creates a signature envelope
func NewSignatureEnvelope(signature, method string, params map[string]string) *SignatureEnvelope {
	return &SignatureEnvelope{
		Signature: signature,
		Method:    method,
		Params:    params,
	}
}

// Validate validates the token envelope
func (e *TokenEnvelope) Validate() error {
	if e.Token == "" {
		return &ValidationError{
			Field:   "token",
			Message: "token is required",
		}
	}

	if e.TokenType == "" {
		e.TokenType = "Bearer"
	}

	return nil
}

// Validate validates the signature envelope
func (e *SignatureEnvelope) Validate() error {
	if e.Signature == "" {
		return &ValidationError{
			Field:   "signature",
			Message: "signature is required",
		}
	}

	if e.Method == "" {
		return &ValidationError{
			Field:   "method",
			Message: "method is required",
		}
	}

	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
