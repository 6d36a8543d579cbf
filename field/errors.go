package field

import "errors"

// Sentinel errors returned by field types.
var (
	// ErrUnsupportedValue is returned when a value of an unexpected Go type is
	// converted to or from the database.
	ErrUnsupportedValue = errors.New("field: unsupported value")

	// ErrUnknownType is returned by [Lookup] for an unregistered type name.
	ErrUnknownType = errors.New("field: unknown field type")

	// ErrUnknownDialect is returned by SQLDeclaration for an unsupported
	// SQL dialect.
	ErrUnknownDialect = errors.New("field: unknown SQL dialect")

	// ErrColumnTooShort is returned when the requested column length cannot
	// hold an encoded hash.
	ErrColumnTooShort = errors.New("field: column too short for a password hash")

	// ErrEmptyTypeName is returned by [Register] for an empty name.
	ErrEmptyTypeName = errors.New("field: type name must not be empty")

	// ErrNilType is returned by [Register] for a nil [Type].
	ErrNilType = errors.New("field: type must not be nil")
)
