package password

import "errors"

// Sentinel errors returned by password operations.
//
// Errors from the hashing primitive are wrapped as well, so both of these
// hold for a corrupt record:
//
//	errors.Is(err, password.ErrMalformedHash)
//	errors.Is(err, hashing.ErrInvalidHash)
var (
	// ErrHashing is returned when the hashing primitive rejects the work
	// factor or input, or cannot generate a salt.
	ErrHashing = errors.New("password: hashing failed")

	// ErrMalformedHash is returned when a stored hash cannot be parsed:
	// corrupted storage, a foreign scheme, or a truncated string.
	ErrMalformedHash = errors.New("password: malformed password hash")

	// ErrEmptyPassword is returned by [ToStorage] for the zero [Password].
	ErrEmptyPassword = errors.New("password: no password hash to store")

	// ErrInvalidStorageValue is returned when a database or BSON value cannot
	// be converted to a [Password].
	ErrInvalidStorageValue = errors.New("password: unsupported storage value")
)
