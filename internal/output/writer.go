// Package output renders generated tokens and signatures as JSON
// documents suitable for piping into other tools.
package output

import (
	"encoding/json"
	"io"

	"github.com/wavelink-comms/wavelink-auth/pkg/errors"
)

// Writer writes result envelopes as indented JSON
type Writer struct {
	writer io.Writer
}

// NewWriter creates a new output writer
func NewWriter(writer io.Writer) *Writer {
	return &Writer{
		writer: writer,
	}
}

// WriteToken writes a token envelope as JSON to the output
func (w *Writer) WriteToken(envelope *TokenEnvelope) error {
	if envelope == nil {
		return errors.New(
			errors.ErrOutputInvalid,
			"token envelope is nil",
		)
	}

	if err := envelope.Validate(); err != nil {
		return errors.Wrap(
			errors.ErrOutputInvalid,
			err,
			"failed to validate token envelope",
		)
	}

	return w.write(envelope)
}

// WriteSignature writes a signature envelope as JSON to the output
func (w *Writer) WriteSignature(envelope *SignatureEnvelope) error {
	if envelope == nil {
		return errors.New(
			errors.ErrOutputInvalid,
			"signature envelope is nil",
		)
	}

	if err := envelope.Validate(); err != nil {
		return errors.Wrap(
			errors.ErrOutputInvalid,
			err,
			"failed to validate signature envelope",
		)
	}

	return w.write(envelope)
}

func (w *Writer) write(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(
			errors.ErrOutputFailed,
			err,
			"failed to marshal output to JSON",
		)
	}

	if _, err := w.writer.Write(data); err != nil {
		return errors.Wrap(
			errors.ErrOutputFailed,
			err,
			"failed to write output",
		)
	}

	// Trailing newline for readability
	if _, err := w.writer.Write([]byte("\n")); err != nil {
		return errors.Wrap(
			errors.ErrOutputFailed,
			err,
			"failed to write newline",
		)
	}

	return nil
}
