package tuid

import "errors"

var (
	// ErrInvalidFormat is returned when parsing or decoding input that has
	// the wrong length, contains characters outside the codec's alphabet,
	// or carries non-zero reserved bits.
	//
	// Wrapped errors carry detail; match with errors.Is.
	ErrInvalidFormat = errors.New("tuid: invalid format")

	// ErrOutOfRange is returned when generating an identifier for an
	// instant before the custom epoch (2020-01-01T00:00:00Z) or at or
	// beyond the 48-bit millisecond horizon.
	ErrOutOfRange = errors.New("tuid: timestamp out of range")

	// ErrUnsupportedFormat is returned when encoding with an unknown
	// Format tag.
	ErrUnsupportedFormat = errors.New("tuid: unsupported format")
)
