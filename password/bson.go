package password

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// MarshalBSONValue implements [bson.ValueMarshaler]. The hash is stored as a
// BSON string; the zero Password is stored as null.
func (p Password) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if p.IsZero() {
		return bson.TypeNull, nil, nil
	}
	return bson.TypeString, bsoncore.AppendString(nil, p.hashed), nil
}

// UnmarshalBSONValue implements [bson.ValueUnmarshaler].
func (p *Password) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*p = Password{}
		return nil
	case bson.TypeString:
		s, _, ok := bsoncore.ReadString(data)
		if !ok {
			return fmt.Errorf("%w: truncated BSON string", ErrInvalidStorageValue)
		}
		*p = FromStorage(s)
		return nil
	default:
		return fmt.Errorf("%w: cannot decode BSON %s into password.Password", ErrInvalidStorageValue, t)
	}
}
