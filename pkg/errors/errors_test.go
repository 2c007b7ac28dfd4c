package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrPrivateKeyUnreadable, "private key file could not be read")

	assert.NotNil(t, err)
	assert.Equal(t, ErrPrivateKeyUnreadable, err.Code)
	assert.Equal(t, "private key file could not be read", err.Title)
	assert.Equal(t, 500, err.Status)
	assert.Contains(t, err.Type, "private-key-unreadable")
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrPrivateKeyUnreadable, cause, "failed to read private key file")

	assert.Equal(t, ErrPrivateKeyUnreadable, err.Code)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, cause.Error(), err.Detail)
}

func TestErrorWithDetail(t *testing.T) {
	err := New(ErrSignatureMethodUnsupported, "unsupported signature method").
		WithDetail("method must be one of md5hash, md5, sha1, sha256, sha512")

	assert.Contains(t, err.Error(), "unsupported signature method")
	assert.Contains(t, err.Error(), "md5hash")
}

func TestErrorWithFields(t *testing.T) {
	err := New(ErrTokenGenerationFailed, "token generation failed").
		WithField("application_id", "app-1").
		WithFields(map[string]interface{}{"ttl": "15m"})

	assert.Equal(t, "app-1", err.Fields["application_id"])
	assert.Equal(t, "15m", err.Fields["ttl"])
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := New(ErrInternal, "internal error").WithCause(cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestIs(t *testing.T) {
	err := New(ErrCredentialMalformed, "malformed credential")

	assert.True(t, Is(err, ErrCredentialMalformed))
	assert.False(t, Is(err, ErrConfigInvalid))
}

func TestIsWrappedInStandardError(t *testing.T) {
	inner := New(ErrConfigLoadFailed, "config load failed")
	wrapped := wrapStd(inner)

	assert.True(t, Is(wrapped, ErrConfigLoadFailed))
	assert.Equal(t, ErrConfigLoadFailed, GetCode(wrapped))
}

func TestGetCodeUnknown(t *testing.T) {
	assert.Equal(t, ErrUnknown, GetCode(errors.New("plain error")))
}

func TestRedact(t *testing.T) {
	err := New(ErrSignatureGenerationFailed, "signature generation failed").
		WithField("api_secret", "s3cret").
		WithField("method", "sha256")

	redacted := err.Redact()
	assert.NotContains(t, redacted.Fields, "api_secret")
	assert.Equal(t, "sha256", redacted.Fields["method"])
	// original error keeps its context
	assert.Equal(t, "s3cret", err.Fields["api_secret"])
}

type stdWrapper struct{ inner error }

func (w stdWrapper) Error() string { return w.inner.Error() }
func (w stdWrapper) Unwrap() error { return w.inner }

func wrapStd(err error) error { return stdWrapper{inner: err} }
