// Package field maps [password.Password] onto database columns, in the
// manner of an ORM field type.
//
// A password column is a variable-length string. On write, [PasswordType]
// hashes raw strings (so a raw password is never stored) and passes existing
// hashes through untouched; on read, it rehydrates the stored string with
// [password.FromStorage] without hashing.
//
//	t := field.NewPasswordType(nil) // use the process-wide default work factor
//	ddl, _ := t.SQLDeclaration(field.DialectPostgres, 0) // "VARCHAR(255)"
//
//	v, _ := t.ToDatabase("hunter2")   // "$p5v2$..."
//	p, _ := t.FromDatabase(v)         // password.Password
//
// Field types are kept in a named registry ([Register], [Lookup]);
// [PasswordType] is registered under [PasswordTypeName].
package field
