package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavelink-comms/wavelink-auth/cmd/wavelink-auth/version"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	version.Version = "1.0.0"
	version.Commit = "abc123"
	version.BuildTime = "2026-08-01"

	var execErr error
	output := captureStdout(t, func() {
		rootCmd := newRootCmd()
		rootCmd.SetArgs([]string{"version"})
		execErr = rootCmd.Execute()
	})

	assert.NoError(t, execErr)
	assert.Contains(t, output, "Wavelink Auth")
	assert.Contains(t, output, "1.0.0")
	assert.Contains(t, output, "abc123")
	assert.Contains(t, output, "2026-08-01")
}

func TestSignCommand_NoParams(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"sign"})
	err := rootCmd.Execute()
	assert.Error(t, err)
}

func TestSignCommand_MalformedParam(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"sign", "novalue"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected key=value")
}

func TestSignCommand_EndToEnd(t *testing.T) {
	var execErr error
	output := captureStdout(t, func() {
		rootCmd := newRootCmd()
		rootCmd.SetArgs([]string{
			"sign",
			"--api-key=KEY",
			"--api-secret=SECRET",
			"--signature-secret=sig-secret",
			"--signature-method=sha256",
			"to=14155550100",
			"text=hello",
		})
		execErr = rootCmd.Execute()
	})
	require.NoError(t, execErr)

	var envelope struct {
		Signature string            `json:"signature"`
		Method    string            `json:"method"`
		Params    map[string]string `json:"params"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &envelope))

	assert.Len(t, envelope.Signature, 64)
	assert.Equal(t, "sha256", envelope.Method)
	assert.Equal(t, map[string]string{"to": "14155550100", "text": "hello"}, envelope.Params)
}

func TestJWTCommand_MissingCredentials(t *testing.T) {
	t.Setenv("WAVELINK_API_KEY", "")
	t.Setenv("WAVELINK_API_SECRET", "")

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"jwt"})
	err := rootCmd.Execute()
	assert.Error(t, err)
}
