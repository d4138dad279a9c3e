package codec

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedTimestamp means text did not match the canonical
	// YYYY-MM-DD HH:MM:SS[.ffffff] shape during encode.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrUnknownEnumLabel means enum text was neither a known label
	// nor a valid numeral.
	ErrUnknownEnumLabel = errors.New("unknown enum label")

	// ErrFieldCountMismatch means composite text did not split into
	// the expected number of fields.
	ErrFieldCountMismatch = errors.New("field count mismatch")

	// ErrDecodeOutOfBounds means a raw buffer was shorter than its
	// column type's fixed-width portion requires. Short buffers are
	// always an error, never zero-padded.
	ErrDecodeOutOfBounds = errors.New("value buffer too short")
)
