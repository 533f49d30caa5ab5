package bundle

import (
	"errors"
	"fmt"
)

// DecodeErrorKind classifies the distinct failure modes of Decode. Each
// decode step has its own kind so callers can report exactly which layer
// of a rotated credential went bad.
type DecodeErrorKind string

const (
	// InvalidEncoding means the bundle is not valid base64
	InvalidEncoding DecodeErrorKind = "invalid_encoding"

	// InvalidStructure means the decoded bytes are not the expected JSON object
	InvalidStructure DecodeErrorKind = "invalid_structure"

	// MissingField means a required field is absent or empty; Field names it
	MissingField DecodeErrorKind = "missing_field"

	// InvalidPort means the port is present but not an integer in [1, 65535]
	InvalidPort DecodeErrorKind = "invalid_port"

	// InvalidPrivateKey means the key material has no recognizable PEM markers
	InvalidPrivateKey DecodeErrorKind = "invalid_private_key"
)

// DecodeError is the typed result of a failed Decode. Malformed bundles
// are expected input during credential rotation, so they surface as a
// value, never a panic.
type DecodeError struct {
	Kind  DecodeErrorKind
	Field string
	cause error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case InvalidEncoding:
		return "connection bundle is not valid base64"
	case InvalidStructure:
		return "connection bundle is not a valid JSON object"
	case MissingField:
		return fmt.Sprintf("connection bundle is missing required field %q", e.Field)
	case InvalidPort:
		return "connection bundle port must be an integer between 1 and 65535"
	case InvalidPrivateKey:
		return "connection bundle private key has no PEM BEGIN/END markers"
	default:
		return "connection bundle is invalid"
	}
}

func (e *DecodeError) Unwrap() error {
	return e.cause
}

// AsDecodeError extracts a DecodeError from an error chain
func AsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
