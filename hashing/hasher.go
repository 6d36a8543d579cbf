package hashing

import "strings"

// DriverName identifies a hashing algorithm driver.
// Using a named string type prevents accidental confusion with plain strings.
type DriverName string

const (
	// DriverPBKDF2 selects the phpass-compatible PBKDF2-SHA256 driver.
	DriverPBKDF2 DriverName = "pbkdf2"
)

// Hasher is the primitive the password package is layered on.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make derives an encoded hash from password using 2^workFactor
	// iterations. A fresh cryptographic salt is generated for every call, so
	// two calls with the same password will produce different outputs.
	Make(password string, workFactor int) (string, error)

	// Check verifies that password matches the previously encoded hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the hash is structurally invalid.
	//
	// The work factor and salt are read from hash itself. Comparison is
	// performed in constant time.
	Check(password, hash string) (bool, error)

	// NeedsRehash reports whether hash was produced with a work factor
	// different from workFactor.
	NeedsRehash(hash string, workFactor int) (bool, error)

	// Info extracts metadata from an encoded hash string without verifying it.
	Info(hash string) (HashInfo, error)

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// HashInfo carries metadata parsed from an encoded hash string.
type HashInfo struct {
	// Driver is the hashing algorithm that produced the hash.
	Driver DriverName

	// Params holds algorithm-specific parameters extracted from the hash string.
	//
	// For pbkdf2:
	//   "work_factor" → int    (log2 of the iteration count)
	//   "iterations"  → int
	//   "digest"      → string ("sha256")
	//   "salt"        → string (encoded salt characters)
	Params map[string]any
}

// DetectDriver inspects a hash string and returns the [DriverName] that
// produced it. It is a best-effort heuristic based on the hash prefix and
// does not verify the hash itself.
//
// The second return value is false when the hash format is not recognised.
func DetectDriver(hash string) (DriverName, bool) {
	switch {
	case strings.HasPrefix(hash, pbkdf2Prefix):
		return DriverPBKDF2, true
	default:
		return "", false
	}
}
