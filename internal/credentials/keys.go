package credentials

import (
	"fmt"
	"os"

	"github.com/wavelink-comms/wavelink-auth/pkg/errors"
)

// Private key source forms, reported through metrics
const (
	sourceFile    = "file"
	sourceLiteral = "literal"
	sourceBytes   = "bytes"
)

// materializePrivateKey resolves a private key reference of unknown form
// into key bytes. ref is nil (no key), []byte (already canonical) or a
// string. A string is tried as a filesystem path first: if a regular file
// exists there its whole contents become the key; if nothing exists at
// that path the string itself is taken as literal key text with no error.
// Only a filesystem failure other than "does not exist" is fatal. The
// resulting bytes are not checked for cryptographic validity, that is the
// JWT generator's concern.
func materializePrivateKey(ref interface{}) ([]byte, string, error) {
	switch v := ref.(type) {
	case nil:
		return nil, "", nil

	case []byte:
		return v, sourceBytes, nil

	case string:
		info, err := os.Stat(v)
		switch {
		case err == nil && info.Mode().IsRegular():
			data, readErr := os.ReadFile(v)
			if readErr != nil {
				return nil, "", errors.Wrap(
					errors.ErrPrivateKeyUnreadable,
					readErr,
					"failed to read private key file",
				).WithField("path", redactPath(v))
			}
			return data, sourceFile, nil

		case err == nil:
			// something exists at the path but it cannot hold key text
			return nil, "", errors.New(
				errors.ErrPrivateKeyUnreadable,
				"private key path is not a regular file",
			).WithField("path", redactPath(v))

		case os.IsNotExist(err):
			// no file there, accept the string as the key itself
			return []byte(v), sourceLiteral, nil

		default:
			return nil, "", errors.Wrap(
				errors.ErrPrivateKeyUnreadable,
				err,
				"failed to check private key path",
			).WithField("path", redactPath(v))
		}

	default:
		return nil, "", errors.New(
			errors.ErrInvalidArgument,
			fmt.Sprintf("unsupported private key reference type %T", ref),
		)
	}
}

// redactPath redacts sensitive parts of file paths for error context.
// Only the tail of the path is kept.
func redactPath(path string) string {
	if len(path) > 20 {
		return "..." + path[len(path)-17:]
	}
	return path
}
