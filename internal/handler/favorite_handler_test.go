package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFavoriteAddAndConflict(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/favoriteBiodatas", "", map[string]any{
		"name": "Alice", "email": "a@x.com", "occupation": "engineer",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var ack map[string]any
	decodeJSON(t, w, &ack)
	assert.NotEmpty(t, ack["insertedId"])

	w = env.do(t, http.MethodPost, "/favoriteBiodatas", "", map[string]any{
		"name": "Alice", "email": "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, env.favorites.docs, 1)
}

func TestFavoriteListFiltersByQueryEmail(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/favoriteBiodatas", "", map[string]any{"name": "Alice", "email": "a@x.com"})
	env.do(t, http.MethodPost, "/favoriteBiodatas", "", map[string]any{"name": "Bob", "email": "b@x.com"})

	w := env.do(t, http.MethodGet, "/favoriteBiodatas?email=a@x.com", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	decodeJSON(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0]["name"])

	// no query param matches nothing, and stays a 200 with an empty array
	w = env.do(t, http.MethodGet, "/favoriteBiodatas", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &list)
	assert.Empty(t, list)
}

func TestFavoriteDelete(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/favoriteBiodatas", "", map[string]any{"name": "Alice", "email": "a@x.com"})
	id := env.favorites.docs[0]["_id"].(primitive.ObjectID)

	w := env.do(t, http.MethodDelete, "/favoriteBiodatas/"+id.Hex(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ack map[string]any
	decodeJSON(t, w, &ack)
	assert.Equal(t, float64(1), ack["deletedCount"])
	assert.Empty(t, env.favorites.docs)

	// deleting again is a zero-count ack, not an error
	w = env.do(t, http.MethodDelete, "/favoriteBiodatas/"+id.Hex(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &ack)
	assert.Equal(t, float64(0), ack["deletedCount"])

	w = env.do(t, http.MethodDelete, "/favoriteBiodatas/zzz", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
