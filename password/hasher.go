package password

import (
	"fmt"

	"github.com/hasbyte1/go-password/hashing"
)

// Config configures a [Hasher].
type Config struct {
	// WorkFactor is log2 of the PBKDF2 iteration count used for new hashes.
	// Zero means "use the process-wide default at call time".
	WorkFactor int
}

// DefaultConfig returns a Config pinned to [hashing.DefaultWorkFactor].
func DefaultConfig() Config {
	return Config{WorkFactor: hashing.DefaultWorkFactor}
}

// Hasher produces and verifies [Password] values with an explicit
// configuration, for callers that do not want to rely on the process-wide
// default.
//
// # Thread safety
//
// Hasher is immutable after construction and safe for concurrent use.
type Hasher struct {
	primitive  hashing.Hasher
	workFactor int
}

// NewHasher builds a Hasher backed by the PBKDF2 driver.
// Returns an error matching [hashing.ErrInvalidOption] if cfg.WorkFactor is
// non-zero and outside the supported range.
func NewHasher(cfg Config) (*Hasher, error) {
	return NewHasherWithDriver(cfg, hashing.NewPBKDF2Hasher())
}

// NewHasherWithDriver builds a Hasher on top of an arbitrary
// [hashing.Hasher].
func NewHasherWithDriver(cfg Config, primitive hashing.Hasher) (*Hasher, error) {
	if primitive == nil {
		return nil, fmt.Errorf("%w: nil hashing driver", hashing.ErrInvalidOption)
	}
	if cfg.WorkFactor != 0 &&
		(cfg.WorkFactor < hashing.MinWorkFactor || cfg.WorkFactor > hashing.MaxWorkFactor) {
		return nil, fmt.Errorf("%w: work factor %d must be in [%d, %d]",
			hashing.ErrInvalidOption, cfg.WorkFactor, hashing.MinWorkFactor, hashing.MaxWorkFactor)
	}
	return &Hasher{primitive: primitive, workFactor: cfg.WorkFactor}, nil
}

// WorkFactor returns the work factor used by [Hasher.Hash].
func (h *Hasher) WorkFactor() int {
	if h.workFactor == 0 {
		return DefaultWorkFactor()
	}
	return h.workFactor
}

// Hash hashes raw with the Hasher's work factor.
func (h *Hasher) Hash(raw string) (Password, error) {
	return h.HashWithWorkFactor(raw, h.WorkFactor())
}

// HashWithWorkFactor hashes raw with a one-off work factor.
func (h *Hasher) HashWithWorkFactor(raw string, workFactor int) (Password, error) {
	encoded, err := h.primitive.Make(raw, workFactor)
	if err != nil {
		return Password{}, fmt.Errorf("%w: %w", ErrHashing, err)
	}
	return Password{hashed: encoded}, nil
}

// Match reports whether raw matches p. See [Password.Match].
func (h *Hasher) Match(p Password, raw string) (bool, error) {
	ok, err := h.primitive.Check(raw, p.hashed)
	if err != nil {
		return false, malformed(err)
	}
	return ok, nil
}

// NeedsRehash reports whether p was produced with a work factor other than
// the Hasher's current one. Call it after a successful Match and store a
// fresh hash when it returns true.
func (h *Hasher) NeedsRehash(p Password) (bool, error) {
	ok, err := h.primitive.NeedsRehash(p.hashed, h.WorkFactor())
	if err != nil {
		return false, malformed(err)
	}
	return ok, nil
}

func (h *Hasher) workFactorOf(p Password) (int, error) {
	info, err := h.primitive.Info(p.hashed)
	if err != nil {
		return 0, malformed(err)
	}
	wf, ok := info.Params["work_factor"].(int)
	if !ok {
		return 0, fmt.Errorf("%w: %s hash does not record a work factor", ErrMalformedHash, info.Driver)
	}
	return wf, nil
}

func malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedHash, err)
}
