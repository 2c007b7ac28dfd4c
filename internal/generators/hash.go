package generators

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/wavelink-comms/wavelink-auth/pkg/errors"
)

// Digest methods accepted by Hash.Generate
const (
	MethodMD5Hash = "md5hash"
	MethodMD5     = "md5"
	MethodSHA1    = "sha1"
	MethodSHA256  = "sha256"
	MethodSHA512  = "sha512"
)

// Hash is the default signature generator. It signs request parameters
// with a shared secret, either by hashing the canonical string with the
// secret appended (md5hash) or with an HMAC digest.
type Hash struct{}

// NewHash creates the default signature generator
func NewHash() *Hash {
	return &Hash{}
}

// Generate signs the given request parameters. An empty method defaults
// to md5hash. The hex digest is returned lowercase.
func (g *Hash) Generate(secret, method string, params map[string]string) (string, error) {
	data := canonicalize(params)

	switch method {
	case MethodMD5Hash, "":
		sum := md5.Sum([]byte(data + secret))
		return hex.EncodeToString(sum[:]), nil
	case MethodMD5:
		return hmacDigest(md5.New, secret, data), nil
	case MethodSHA1:
		return hmacDigest(sha1.New, secret, data), nil
	case MethodSHA256:
		return hmacDigest(sha256.New, secret, data), nil
	case MethodSHA512:
		return hmacDigest(sha512.New, secret, data), nil
	default:
		return "", errors.New(
			errors.ErrSignatureMethodUnsupported,
			fmt.Sprintf("unsupported signature method: %s", method),
		).WithField("method", method)
	}
}

// canonicalize serializes params as "&k=v" pairs in key order. '&' and
// '=' inside values are replaced with '_' so the serialized form stays
// unambiguous for the server-side check.
func canonicalize(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	replacer := strings.NewReplacer("&", "_", "=", "_")

	var b strings.Builder
	for _, k := range keys {
		b.WriteByte('&')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(replacer.Replace(params[k]))
	}
	return b.String()
}

func hmacDigest(h func() hash.Hash, secret, data string) string {
	mac := hmac.New(h, []byte(secret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
