package field

import (
	"database/sql/driver"
	"fmt"

	"github.com/hasbyte1/go-password/hashing"
	"github.com/hasbyte1/go-password/password"
)

// PasswordTypeName is the name [PasswordType] is registered under.
const PasswordTypeName = "password"

// DefaultPasswordLength is the default column length. It leaves room for
// schemes with longer hashes than the current one.
const DefaultPasswordLength = 255

func init() {
	_ = Register(NewPasswordType(nil))
}

// PasswordType is the field type for hashed passwords.
type PasswordType struct {
	hasher *password.Hasher
}

// NewPasswordType returns a PasswordType that hashes raw strings with h, or
// with the package-level [password.Hash] when h is nil.
func NewPasswordType(h *password.Hasher) *PasswordType {
	return &PasswordType{hasher: h}
}

// Name returns [PasswordTypeName].
func (t *PasswordType) Name() string { return PasswordTypeName }

// SQLDeclaration returns a VARCHAR column declaration. Returns
// [ErrColumnTooShort] if length cannot hold an encoded hash.
func (t *PasswordType) SQLDeclaration(d Dialect, length int) (string, error) {
	if length <= 0 {
		length = DefaultPasswordLength
	}
	if length < hashing.HashLength {
		return "", fmt.Errorf("%w: %d < %d", ErrColumnTooShort, length, hashing.HashLength)
	}
	return varchar(d, length)
}

// ToDatabase converts v for storage:
//
//   - password.Password, *password.Password: stored as is (zero → NULL)
//   - string: treated as a raw password and hashed
//   - nil: NULL
func (t *PasswordType) ToDatabase(v any) (driver.Value, error) {
	switch p := v.(type) {
	case nil:
		return nil, nil
	case password.Password:
		return p.Value()
	case *password.Password:
		if p == nil {
			return nil, nil
		}
		return p.Value()
	case string:
		hashed, err := t.hash(p)
		if err != nil {
			return nil, err
		}
		return password.ToStorage(hashed)
	default:
		return nil, fmt.Errorf("%w: cannot store %T as %s", ErrUnsupportedValue, v, PasswordTypeName)
	}
}

// FromDatabase converts a scanned column value into a [password.Password].
func (t *PasswordType) FromDatabase(v any) (any, error) {
	return t.Password(v)
}

// Password is the typed form of [PasswordType.FromDatabase].
func (t *PasswordType) Password(v any) (password.Password, error) {
	var p password.Password
	if err := p.Scan(v); err != nil {
		return password.Password{}, fmt.Errorf("%w: %w", ErrUnsupportedValue, err)
	}
	return p, nil
}

func (t *PasswordType) hash(raw string) (password.Password, error) {
	if t.hasher == nil {
		return password.Hash(raw)
	}
	return t.hasher.Hash(raw)
}
