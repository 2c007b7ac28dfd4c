package generators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavelink-comms/wavelink-auth/pkg/errors"
)

var signParams = map[string]string{
	"to":   "14155550100",
	"text": "hello",
}

func TestHashGenerate_KnownAnswers(t *testing.T) {
	// canonical form of signParams is "&text=hello&to=14155550100"
	tests := []struct {
		method string
		want   string
	}{
		{method: "md5hash", want: "a0fcf555d552f848118cd7fa7b7c04fa"},
		{method: "md5", want: "56af72f75c586a0eb61ec774add0b30c"},
		{method: "sha1", want: "c09987925c3149f176b8136aae758db7b770c291"},
		{method: "sha256", want: "e1165bb6ccd2b44c557760ed1cc0215eab4d4033d06a7247d637b739ebb23089"},
		{method: "sha512", want: "4e6c236da0b77624081132bfad2f03a03707ccd9ee77cb1bfd75c385b9fe00bdb3f9483c41792b563247983540b2e37d7a6c202f23667f33b77468e67fc85f69"},
	}

	g := NewHash()
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			got, err := g.Generate("secret123", tt.method, signParams)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashGenerate_EmptyMethodDefaultsToMD5Hash(t *testing.T) {
	g := NewHash()

	withDefault, err := g.Generate("secret123", "", signParams)
	require.NoError(t, err)
	explicit, err := g.Generate("secret123", MethodMD5Hash, signParams)
	require.NoError(t, err)

	assert.Equal(t, explicit, withDefault)
}

func TestHashGenerate_Deterministic(t *testing.T) {
	g := NewHash()

	first, err := g.Generate("s", MethodSHA256, signParams)
	require.NoError(t, err)
	second, err := g.Generate("s", MethodSHA256, signParams)
	require.NoError(t, err)

	// params serialize in key order, map iteration order must not matter
	assert.Equal(t, first, second)
}

func TestHashGenerate_SecretChangesSignature(t *testing.T) {
	g := NewHash()

	a, err := g.Generate("secret-a", MethodSHA256, signParams)
	require.NoError(t, err)
	b, err := g.Generate("secret-b", MethodSHA256, signParams)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashGenerate_ValueDelimitersReplaced(t *testing.T) {
	g := NewHash()

	raw, err := g.Generate("s", MethodSHA1, map[string]string{"text": "a&b=c"})
	require.NoError(t, err)
	replaced, err := g.Generate("s", MethodSHA1, map[string]string{"text": "a_b_c"})
	require.NoError(t, err)

	assert.Equal(t, replaced, raw)
}

func TestHashGenerate_UnsupportedMethod(t *testing.T) {
	g := NewHash()

	_, err := g.Generate("s", "sha3", signParams)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSignatureMethodUnsupported))
}

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "&text=hello&to=14155550100", canonicalize(signParams))
	assert.Equal(t, "", canonicalize(nil))
	assert.Equal(t, "&a=", canonicalize(map[string]string{"a": ""}))
}
