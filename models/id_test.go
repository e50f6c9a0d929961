package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestID_HexIsStoredAsObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	item := MenuItem{ID: IDFromObjectID(oid), Name: "Caesar Salad", Price: 9.5}

	data, err := bson.Marshal(item)
	require.NoError(t, err)

	var raw bson.M
	require.NoError(t, bson.Unmarshal(data, &raw))
	assert.Equal(t, oid, raw["_id"])
}

func TestID_SeededStringIDSurvives(t *testing.T) {
	data, err := bson.Marshal(bson.M{"_id": "642c155b2c4774f05c36eeaa", "name": "Soup"})
	require.NoError(t, err)

	// A 24-char hex string id is still read back verbatim.
	var item MenuItem
	require.NoError(t, bson.Unmarshal(data, &item))
	assert.Equal(t, ID("642c155b2c4774f05c36eeaa"), item.ID)

	data, err = bson.Marshal(bson.M{"_id": "soup-1", "name": "Soup"})
	require.NoError(t, err)
	require.NoError(t, bson.Unmarshal(data, &item))
	assert.Equal(t, ID("soup-1"), item.ID)
}

func TestID_EmptyIsOmitted(t *testing.T) {
	data, err := bson.Marshal(CartItem{Email: "a@example.com"})
	require.NoError(t, err)

	var raw bson.M
	require.NoError(t, bson.Unmarshal(data, &raw))
	_, ok := raw["_id"]
	assert.False(t, ok)
}

func TestID_Candidates(t *testing.T) {
	oid := primitive.NewObjectID()

	assert.Equal(t, []interface{}{oid, oid.Hex()}, IDFromObjectID(oid).Candidates())
	assert.Equal(t, []interface{}{"soup-1"}, ID("soup-1").Candidates())
}

func TestIDFromInserted(t *testing.T) {
	oid := primitive.NewObjectID()

	assert.Equal(t, ID(oid.Hex()), IDFromInserted(oid))
	assert.Equal(t, ID("x1"), IDFromInserted("x1"))
	assert.Equal(t, ID(""), IDFromInserted(nil))
}

func TestMenuItem_ExtraFieldsRoundTrip(t *testing.T) {
	data, err := bson.Marshal(bson.M{"_id": "m1", "name": "Pizza", "category": "pizza", "price": 12.0, "chef": "Mario", "spicy": true})
	require.NoError(t, err)

	var item MenuItem
	require.NoError(t, bson.Unmarshal(data, &item))
	assert.Equal(t, "Mario", item.Extra["chef"])

	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"m1","name":"Pizza","category":"pizza","price":12,"chef":"Mario","spicy":true}`, string(out))
}

func TestCartItem_NoExtraFields(t *testing.T) {
	out, err := json.Marshal(CartItem{ID: "c1", MenuItemID: "m1", Price: 4.5, Email: "ada@example.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"c1","menuItemId":"m1","price":4.5,"email":"ada@example.com"}`, string(out))
}
