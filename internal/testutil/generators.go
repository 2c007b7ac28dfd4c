// Package testutil provides testing utilities for the auth core
package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
)

// JWTCall records one invocation of StubJWTGenerator.Generate
type JWTCall struct {
	PrivateKey []byte
	Claims     map[string]interface{}
}

// StubJWTGenerator is a recording JWT generator for tests. It returns the
// configured token or error and appends every call to Calls.
type StubJWTGenerator struct {
	Token string
	Err   error
	Calls []JWTCall
}

// Generate implements the JWT generator capability
func (g *StubJWTGenerator) Generate(privateKey []byte, claims map[string]interface{}) (string, error) {
	g.Calls = append(g.Calls, JWTCall{PrivateKey: privateKey, Claims: claims})
	if g.Err != nil {
		return "", g.Err
	}
	return g.Token, nil
}

// SignatureCall records one invocation of StubSignatureGenerator.Generate.
// Fields are in the order the generator received them.
type SignatureCall struct {
	Secret string
	Method string
	Params map[string]string
}

// StubSignatureGenerator is a recording signature generator for tests
type StubSignatureGenerator struct {
	Signature string
	Err       error
	Calls     []SignatureCall
}

// Generate implements the signature generator capability
func (g *StubSignatureGenerator) Generate(secret, method string, params map[string]string) (string, error) {
	g.Calls = append(g.Calls, SignatureCall{Secret: secret, Method: method, Params: params})
	if g.Err != nil {
		return "", g.Err
	}
	return g.Signature, nil
}

// RSAKeyPEM generates a PEM-encoded RSA private key for tests
func RSAKeyPEM(t *testing.T) []byte {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
}
