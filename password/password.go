package password

import (
	"sync/atomic"

	"github.com/hasbyte1/go-password/hashing"
)

// defaultWorkFactor is the process-wide work factor used by [Hash].
var defaultWorkFactor atomic.Int64

func init() {
	defaultWorkFactor.Store(hashing.DefaultWorkFactor)
}

// std is the Hasher behind the package-level functions. Its zero work factor
// makes it follow defaultWorkFactor.
var std = &Hasher{primitive: hashing.NewPBKDF2Hasher()}

// SetDefaultWorkFactor sets the process-wide default work factor used by
// [Hash] and by any [Hasher] built with a zero Config.WorkFactor.
//
// The value is not validated here; an unsupported value makes the next hash
// fail with [ErrHashing]. It is intended to be set once at startup.
func SetDefaultWorkFactor(n int) {
	defaultWorkFactor.Store(int64(n))
}

// DefaultWorkFactor returns the current process-wide default work factor.
func DefaultWorkFactor() int {
	return int(defaultWorkFactor.Load())
}

// Password is an encoded password hash. The zero value holds no hash.
type Password struct {
	hashed string
}

// Hash hashes raw with the process-wide default work factor and a fresh
// random salt.
func Hash(raw string) (Password, error) {
	return std.Hash(raw)
}

// HashWithWorkFactor hashes raw with workFactor. The process-wide default is
// left untouched.
func HashWithWorkFactor(raw string, workFactor int) (Password, error) {
	return std.HashWithWorkFactor(raw, workFactor)
}

// New wraps an already encoded hash, typically one loaded from storage. The
// hash is not validated; a malformed hash is reported by [Password.Match].
func New(encoded string) Password {
	return Password{hashed: encoded}
}

// Match reports whether raw is the password this hash was produced from.
//
// The work factor and salt are taken from the stored hash and the comparison
// runs in constant time. A wrong password returns (false, nil); a hash that
// cannot be parsed returns an error matching [ErrMalformedHash].
func (p Password) Match(raw string) (bool, error) {
	return std.Match(p, raw)
}

// WorkFactor returns the work factor recorded in the hash.
func (p Password) WorkFactor() (int, error) {
	return std.workFactorOf(p)
}

// NeedsRehash reports whether the hash was produced with a work factor other
// than workFactor.
func (p Password) NeedsRehash(workFactor int) (bool, error) {
	ok, err := std.primitive.NeedsRehash(p.hashed, workFactor)
	if err != nil {
		return false, malformed(err)
	}
	return ok, nil
}

// Valid reports whether the hash is structurally well formed. It does not
// verify any password.
func (p Password) Valid() bool {
	_, err := std.primitive.Info(p.hashed)
	return err == nil
}

// IsZero reports whether p holds no hash.
func (p Password) IsZero() bool {
	return p.hashed == ""
}

// String returns the encoded hash exactly as produced by [Hash] or given to
// [New].
func (p Password) String() string {
	return p.hashed
}
