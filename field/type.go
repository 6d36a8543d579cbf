package field

import (
	"database/sql/driver"
	"fmt"
	"sync"
)

// Dialect names a SQL dialect.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
)

// Type converts between Go values and database column values.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Type interface {
	// Name returns the name the type is registered under.
	Name() string

	// SQLDeclaration returns the column type for dialect. A length <= 0
	// selects the type's default length.
	SQLDeclaration(d Dialect, length int) (string, error)

	// ToDatabase converts a Go value into a value the SQL driver accepts.
	ToDatabase(v any) (driver.Value, error)

	// FromDatabase converts a scanned column value into the Go value.
	FromDatabase(v any) (any, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Type{}
)

// Register adds or replaces a named field type.
func Register(t Type) error {
	if t == nil {
		return ErrNilType
	}
	if t.Name() == "" {
		return ErrEmptyTypeName
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[t.Name()] = t
	return nil
}

// Lookup returns the field type registered under name.
func Lookup(name string) (Type, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return t, nil
}

// varchar returns the variable-length string declaration for d.
func varchar(d Dialect, length int) (string, error) {
	switch d {
	case DialectSQLite, DialectPostgres, DialectMySQL:
		return fmt.Sprintf("VARCHAR(%d)", length), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, d)
	}
}
