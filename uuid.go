package tuid

import "github.com/google/uuid"

// UUID returns the identifier's 128-bit word viewed as a UUID. The result
// is not RFC 4122 conformant (the version and variant bits land inside the
// timestamp's reserved padding and the random field) but gives storage and
// tooling that speak UUID a lossless 16-byte carrier.
func (id ID) UUID() uuid.UUID {
	var u uuid.UUID
	id.n.PutBytes(u[:])
	return u
}

// FromUUID converts a UUID previously produced by ID.UUID back into an
// identifier. UUIDs from other sources are rejected with ErrInvalidFormat
// unless their top 22 bits happen to be zero, since those bits are
// reserved in the identifier's layout.
func FromUUID(u uuid.UUID) (ID, error) {
	return FromBytes(u[:])
}
