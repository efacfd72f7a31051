package tuid

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler using the canonical
// Base58 form. This also covers JSON encoding.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.Base58()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any of the four text
// encodings is accepted, auto-detected by length.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the 16-byte
// big-endian form.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer, storing the canonical Base58 form.
func (id ID) Value() (driver.Value, error) {
	return id.Base58(), nil
}

// Scan implements sql.Scanner. It accepts NULL (yielding Nil), any of the
// four text encodings as string or bytes, and the raw 16-byte form.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = Nil
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == 16 {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidFormat, src)
	}
}
