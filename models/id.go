package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID is a document identifier. Documents created through the API carry an
// ObjectID; documents seeded by hand may carry a plain string _id. ID reads
// both and writes an ObjectID whenever the value is a valid hex ObjectID.
type ID string

// NewID returns a fresh ObjectID-backed identifier.
func NewID() ID {
	return ID(primitive.NewObjectID().Hex())
}

// IDFromObjectID converts a driver-generated ObjectID.
func IDFromObjectID(oid primitive.ObjectID) ID {
	return ID(oid.Hex())
}

// IDFromInserted converts the InsertedID/UpsertedID values returned by the driver.
func IDFromInserted(v interface{}) ID {
	switch id := v.(type) {
	case primitive.ObjectID:
		return IDFromObjectID(id)
	case string:
		return ID(id)
	case ID:
		return id
	case nil:
		return ""
	default:
		return ID(fmt.Sprint(id))
	}
}

func (id ID) String() string { return string(id) }

// IsZero reports whether the identifier is empty, so omitempty drops it.
func (id ID) IsZero() bool { return id == "" }

// Candidates lists every stored form this identifier may take.
func (id ID) Candidates() []interface{} {
	if oid, err := primitive.ObjectIDFromHex(string(id)); err == nil {
		return []interface{}{oid, string(id)}
	}
	return []interface{}{string(id)}
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if oid, err := primitive.ObjectIDFromHex(string(id)); err == nil {
		return bson.MarshalValue(oid)
	}
	return bson.MarshalValue(string(id))
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	if oid, ok := raw.ObjectIDOK(); ok {
		*id = IDFromObjectID(oid)
		return nil
	}
	if s, ok := raw.StringValueOK(); ok {
		*id = ID(s)
		return nil
	}
	if t == bsontype.Null || t == bsontype.Undefined {
		*id = ""
		return nil
	}
	return fmt.Errorf("cannot decode %s into an ID", t)
}

// IDs converts raw identifiers from a request body.
func IDs(values []string) []ID {
	ids := make([]ID, 0, len(values))
	for _, v := range values {
		ids = append(ids, ID(v))
	}
	return ids
}
