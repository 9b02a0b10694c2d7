package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBiodataUpsertInsertThenUpdate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/biodatas", "", map[string]any{
		"email": "a@x.com", "name": "Alice", "age": 28,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var insert map[string]any
	decodeJSON(t, w, &insert)
	assert.Equal(t, "1", insert["biodataId"])
	assert.NotEmpty(t, insert["insertedId"])

	w = env.do(t, http.MethodPost, "/biodatas", "", map[string]any{
		"email": "a@x.com", "name": "Alice", "age": 29,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var update map[string]any
	decodeJSON(t, w, &update)
	assert.Equal(t, float64(1), update["modifiedCount"])
	assert.Nil(t, update["insertedId"])

	require.Len(t, env.biodatas.docs, 1)
	assert.Equal(t, "1", env.biodatas.docs[0]["biodataId"])
}

func TestBiodataUpsertRejectsMissingEmail(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/biodatas", "", map[string]any{"name": "no email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBiodataListIsPublic(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/biodatas", "", map[string]any{"email": "a@x.com"})

	w := env.do(t, http.MethodGet, "/biodatas", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	decodeJSON(t, w, &list)
	assert.Len(t, list, 1)
}

func TestBiodataGetByID(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/biodatas", "", map[string]any{"email": "a@x.com", "name": "Alice"})
	id := env.biodatas.docs[0]["_id"].(primitive.ObjectID)

	w := env.do(t, http.MethodGet, "/biodatas/"+id.Hex(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var doc map[string]any
	decodeJSON(t, w, &doc)
	assert.Equal(t, "Alice", doc["name"])

	// malformed id
	w = env.do(t, http.MethodGet, "/biodatas/zzz", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown id is a lenient empty 200
	w = env.do(t, http.MethodGet, "/biodatas/"+primitive.NewObjectID().Hex(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null\n", w.Body.String())
}

func TestBiodataByEmailRequiresToken(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/biodatas", "", map[string]any{"email": "a@x.com", "name": "Alice"})

	w := env.do(t, http.MethodGet, "/biodataByEmail/a@x.com", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/biodataByEmail/a@x.com", env.token(t, "whoever@x.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var doc map[string]any
	decodeJSON(t, w, &doc)
	assert.Equal(t, "Alice", doc["name"])

	w = env.do(t, http.MethodGet, "/biodataByEmail/none@x.com", env.token(t, "whoever@x.com"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
