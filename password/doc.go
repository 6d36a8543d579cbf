// Package password models a hashed user password.
//
// A [Password] wraps exactly one encoded PBKDF2 hash. It is produced either
// by hashing a raw password ([Hash], [HashWithWorkFactor]) or by loading a
// previously persisted hash ([New]). It is immutable; to change a password,
// build a new value.
//
// # Quick start
//
//	p, err := password.Hash("correct horse battery staple")
//	if err != nil { log.Fatal(err) }
//
//	stored := p.String()               // persist this
//	ok, err := password.New(stored).Match("correct horse battery staple")
//
// # Work factor
//
// The work factor is log2 of the PBKDF2 iteration count. [Hash] reads the
// process-wide default (12 unless changed with [SetDefaultWorkFactor]) at the
// moment it is called; [HashWithWorkFactor] takes a one-off value that does
// not change the default. [Password.Match] always uses the work factor and
// salt recorded in the stored hash.
//
// Applications that prefer explicit configuration over the process-wide
// default should build a [Hasher] with [NewHasher] and pass it around.
//
// # Errors
//
// A wrong password is not an error: Match returns (false, nil). A stored hash
// that cannot be parsed yields an error matching [ErrMalformedHash], so that
// corrupt records can be told apart from failed logins. A work factor the
// primitive rejects yields an error matching [ErrHashing].
//
// # Persistence
//
// [Password] implements [database/sql/driver.Valuer], [database/sql.Scanner]
// and the BSON value (un)marshaler interfaces, and [ToStorage] /
// [FromStorage] are the explicit conversion pair for other storage layers.
package password
