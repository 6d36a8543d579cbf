package password

import (
	"database/sql/driver"
	"fmt"
)

// ToStorage returns the string to persist for p. It never hashes: p must
// already hold an encoded hash, so a raw password cannot reach storage
// through this path. The zero Password returns [ErrEmptyPassword].
func ToStorage(p Password) (string, error) {
	if p.IsZero() {
		return "", ErrEmptyPassword
	}
	return p.hashed, nil
}

// FromStorage rehydrates a Password from a persisted string without hashing
// or validating it.
func FromStorage(s string) Password {
	return New(s)
}

// Value implements [driver.Valuer]. The zero Password is stored as NULL.
func (p Password) Value() (driver.Value, error) {
	if p.IsZero() {
		return nil, nil
	}
	return ToStorage(p)
}

// Scan implements [database/sql.Scanner]. NULL scans to the zero Password.
func (p *Password) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = Password{}
	case string:
		*p = FromStorage(v)
	case []byte:
		*p = FromStorage(string(v))
	default:
		return fmt.Errorf("%w: cannot scan %T into password.Password", ErrInvalidStorageValue, src)
	}
	return nil
}
