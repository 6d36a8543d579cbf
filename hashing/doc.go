// Package hashing provides the PBKDF2 key-stretching primitive used to hash
// and verify passwords.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface. [PBKDF2Hasher] is the
// driver that ships with this package; callers depend on the interface so the
// password package can be tested against, or migrated to, another driver.
//
// # Quick start
//
//	h := hashing.NewPBKDF2Hasher()
//
//	hash, _ := h.Make("my-secret-password", hashing.DefaultWorkFactor)
//	ok, _   := h.Check("my-secret-password", hash) // true
//
// # Hash format
//
// Hashes use the phpass PBKDF2 crypt format:
//
//	$p5v2$<cost><salt><checksum>
//
//   - cost: one character of "./0-9A-Za-z"; its index is log2 of the
//     iteration count.
//   - salt: 6 random bytes, 8 characters in phpass base64.
//   - checksum: 24 bytes of PBKDF2-HMAC-SHA256 output, 32 characters in
//     phpass base64.
//
// Every hash is exactly 47 characters long. All parameters are
// self-contained in the string, so no external configuration is needed to
// verify a previously produced hash.
//
// # Work factor
//
// The default work factor is 12 (4096 iterations). Valid values are
// [MinWorkFactor] to [MaxWorkFactor]; each increment doubles the cost.
package hashing
