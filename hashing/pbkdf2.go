package hashing

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// ──────────────────────────────────────────────────────────────────────────────
// Parameters
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultWorkFactor is the recommended log2 iteration count (4096
	// iterations).
	DefaultWorkFactor = 12

	// MinWorkFactor is the smallest work factor accepted by [PBKDF2Hasher.Make].
	MinWorkFactor = 1

	// MaxWorkFactor is the largest work factor accepted by [PBKDF2Hasher.Make].
	MaxWorkFactor = 30

	// HashLength is the length of every encoded hash.
	HashLength = len(pbkdf2Prefix) + 1 + pbkdf2SaltChars + pbkdf2SumChars

	pbkdf2Prefix    = "$p5v2$"
	pbkdf2Digest    = "sha256"
	pbkdf2SaltBytes = 6
	pbkdf2SaltChars = 8
	pbkdf2KeyLen    = 24
	pbkdf2SumChars  = 32

	// settingLength covers prefix, cost character and salt.
	settingLength = len(pbkdf2Prefix) + 1 + pbkdf2SaltChars
)

// itoa64 is the phpass base64 alphabet.
const itoa64 = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ──────────────────────────────────────────────────────────────────────────────
// PBKDF2Hasher
// ──────────────────────────────────────────────────────────────────────────────

// PBKDF2Hasher hashes passwords using PBKDF2-HMAC-SHA256 and encodes them in
// the phpass "$p5v2$" crypt format.
//
// # Thread safety
//
// PBKDF2Hasher is immutable after construction and safe for concurrent use.
type PBKDF2Hasher struct {
	rand io.Reader
}

// NewPBKDF2Hasher constructs a PBKDF2Hasher drawing salts from crypto/rand.
func NewPBKDF2Hasher() *PBKDF2Hasher {
	return &PBKDF2Hasher{rand: rand.Reader}
}

// Driver returns [DriverPBKDF2].
func (h *PBKDF2Hasher) Driver() DriverName { return DriverPBKDF2 }

// Make hashes password with 2^workFactor PBKDF2 iterations and returns the
// encoded hash. Returns [ErrInvalidOption] if workFactor is outside
// [MinWorkFactor, MaxWorkFactor].
func (h *PBKDF2Hasher) Make(password string, workFactor int) (string, error) {
	if err := validateWorkFactor(workFactor); err != nil {
		return "", err
	}
	salt := make([]byte, pbkdf2SaltBytes)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("hashing: pbkdf2: failed to generate salt: %w", err)
	}
	setting := pbkdf2Prefix + string(itoa64[workFactor]) + encode64(salt)
	return setting + checksum(password, setting[settingLength-pbkdf2SaltChars:], workFactor), nil
}

// Check verifies that password matches the encoded hash. The work factor and
// salt are read from the hash string itself, so verification works no matter
// which work factor is currently configured.
func (h *PBKDF2Hasher) Check(password, hash string) (bool, error) {
	p, err := decodePBKDF2(hash)
	if err != nil {
		return false, err
	}
	computed := p.setting + checksum(password, p.salt, p.workFactor)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1, nil
}

// NeedsRehash returns true if the work factor stored in hash differs from
// workFactor. A lower stored value means the hash is weaker than the
// current policy; a higher one means the policy was dialled back.
func (h *PBKDF2Hasher) NeedsRehash(hash string, workFactor int) (bool, error) {
	p, err := decodePBKDF2(hash)
	if err != nil {
		return false, err
	}
	return p.workFactor != workFactor, nil
}

// Info parses the hash and returns the encoded parameters.
//
// Returned [HashInfo].Params:
//   - "work_factor" → int
//   - "iterations"  → int
//   - "digest"      → string
//   - "salt"        → string
func (h *PBKDF2Hasher) Info(hash string) (HashInfo, error) {
	p, err := decodePBKDF2(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Driver: DriverPBKDF2,
		Params: map[string]any{
			"work_factor": p.workFactor,
			"iterations":  1 << p.workFactor,
			"digest":      pbkdf2Digest,
			"salt":        p.salt,
		},
	}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Encoding helpers
// ──────────────────────────────────────────────────────────────────────────────

// pbkdf2Params holds the values decoded from an encoded hash.
type pbkdf2Params struct {
	setting    string
	workFactor int
	salt       string
}

// decodePBKDF2 validates the structure of an encoded hash. The checksum is
// only checked for alphabet membership; its value is compared by Check.
func decodePBKDF2(encoded string) (*pbkdf2Params, error) {
	if d, ok := DetectDriver(encoded); !ok || d != DriverPBKDF2 {
		if strings.HasPrefix(encoded, "$") && strings.Count(encoded, "$") > 1 {
			return nil, fmt.Errorf("%w: hash does not appear to be pbkdf2", ErrAlgorithmMismatch)
		}
		return nil, fmt.Errorf("%w: missing %q prefix", ErrInvalidHash, pbkdf2Prefix)
	}
	if len(encoded) != HashLength {
		return nil, fmt.Errorf("%w: expected %d characters, got %d",
			ErrInvalidHash, HashLength, len(encoded))
	}
	workFactor := strings.IndexByte(itoa64, encoded[len(pbkdf2Prefix)])
	if workFactor < MinWorkFactor || workFactor > MaxWorkFactor {
		return nil, fmt.Errorf("%w: work factor character %q out of range",
			ErrInvalidHash, encoded[len(pbkdf2Prefix)])
	}
	for i := len(pbkdf2Prefix) + 1; i < len(encoded); i++ {
		if strings.IndexByte(itoa64, encoded[i]) < 0 {
			return nil, fmt.Errorf("%w: invalid character %q at offset %d",
				ErrInvalidHash, encoded[i], i)
		}
	}
	return &pbkdf2Params{
		setting:    encoded[:settingLength],
		workFactor: workFactor,
		salt:       encoded[settingLength-pbkdf2SaltChars : settingLength],
	}, nil
}

func validateWorkFactor(workFactor int) error {
	if workFactor < MinWorkFactor || workFactor > MaxWorkFactor {
		return fmt.Errorf("%w: pbkdf2 work factor %d must be in [%d, %d]",
			ErrInvalidOption, workFactor, MinWorkFactor, MaxWorkFactor)
	}
	return nil
}

// checksum derives the encoded checksum. The salt is used in its encoded
// form, as phpass does.
func checksum(password, salt string, workFactor int) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), 1<<workFactor, pbkdf2KeyLen, sha256.New)
	return encode64(key)
}

// encode64 is the phpass little-endian base64 encoding. Inputs whose length
// is a multiple of 3 encode to exactly 4/3 as many characters.
func encode64(src []byte) string {
	n := len(src)
	out := make([]byte, 0, (n*4+2)/3)
	for i := 0; i < n; {
		v := uint32(src[i])
		i++
		out = append(out, itoa64[v&0x3f])
		if i < n {
			v |= uint32(src[i]) << 8
		}
		out = append(out, itoa64[(v>>6)&0x3f])
		if i >= n {
			break
		}
		i++
		if i < n {
			v |= uint32(src[i]) << 16
		}
		out = append(out, itoa64[(v>>12)&0x3f])
		if i >= n {
			break
		}
		i++
		out = append(out, itoa64[(v>>18)&0x3f])
	}
	return string(out)
}
