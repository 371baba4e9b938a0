// Package errs defines the sentinel errors returned by bytewords packages.
//
// Errors are wrapped with context using fmt.Errorf("%w: ...") at the call site,
// so callers should match them with errors.Is.
package errs

import "errors"

// Decode errors. Every failed decode wraps exactly one of these.
var (
	// ErrInvalidWord is returned when a chunk of input text does not resolve to a dictionary entry.
	ErrInvalidWord = errors.New("invalid byteword")
	// ErrTooShort is returned when the decoded byte count is below the minimum viable length.
	ErrTooShort = errors.New("bytewords too short")
	// ErrChecksumMismatch is returned when the trailing checksum does not match the decoded body.
	ErrChecksumMismatch = errors.New("bytewords checksum mismatch")
	// ErrMalformedSeparator is returned in strict mode when separators are missing or repeated.
	ErrMalformedSeparator = errors.New("malformed bytewords separator")
)

// Configuration errors.
var (
	ErrInvalidStyle        = errors.New("invalid bytewords style")
	ErrInvalidDictionary   = errors.New("invalid bytewords dictionary")
	ErrDictionaryCollision = errors.New("bytewords dictionary first/last letter collision")
	ErrInvalidCompression  = errors.New("invalid compression type")
)

// IsDecodeError reports whether err is one of the decode failures.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrInvalidWord) ||
		errors.Is(err, ErrTooShort) ||
		errors.Is(err, ErrChecksumMismatch) ||
		errors.Is(err, ErrMalformedSeparator)
}
