package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/NazmulIslam95/matchMingle-server/internal/models"
	"github.com/NazmulIslam95/matchMingle-server/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- in-memory stores ----

type memUserStore struct {
	users []*models.UserDoc
}

func (f *memUserStore) FindAll(ctx context.Context) ([]models.UserDoc, error) {
	out := []models.UserDoc{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *memUserStore) FindByEmail(ctx context.Context, email string) (*models.UserDoc, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *memUserStore) Insert(ctx context.Context, u *models.UserDoc) (primitive.ObjectID, error) {
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, u)
	return u.ID, nil
}

func (f *memUserStore) UpdateByEmail(ctx context.Context, email string, update bson.M) (int64, error) {
	for _, u := range f.users {
		if u.Email == email {
			f.apply(u, update)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *memUserStore) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (int64, error) {
	for _, u := range f.users {
		if u.ID == id {
			f.apply(u, update)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *memUserStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *memUserStore) CountPremium(ctx context.Context) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.IsPremium() {
			n++
		}
	}
	return n, nil
}

func (f *memUserStore) apply(u *models.UserDoc, update bson.M) {
	if v, ok := update["subscription"].(string); ok {
		u.Subscription = v
	}
	if v, ok := update["role"].(string); ok {
		u.Role = v
	}
}

type memBiodataStore struct {
	docs []models.BiodataDoc
}

func (f *memBiodataStore) FindAll(ctx context.Context) ([]models.BiodataDoc, error) {
	return f.docs, nil
}

func (f *memBiodataStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.BiodataDoc, error) {
	for _, d := range f.docs {
		if d["_id"] == id {
			return d, nil
		}
	}
	return nil, nil
}

func (f *memBiodataStore) FindByEmail(ctx context.Context, email string) (models.BiodataDoc, error) {
	for _, d := range f.docs {
		if d["email"] == email {
			return d, nil
		}
	}
	return nil, nil
}

func (f *memBiodataStore) NextBiodataID(ctx context.Context) (string, error) {
	max := 0
	for _, d := range f.docs {
		if s, ok := d["biodataId"].(string); ok {
			if n, err := strconv.Atoi(s); err == nil && n > max {
				max = n
			}
		}
	}
	return strconv.Itoa(max + 1), nil
}

func (f *memBiodataStore) Insert(ctx context.Context, doc models.BiodataDoc) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	doc["_id"] = id
	f.docs = append(f.docs, doc)
	return id, nil
}

func (f *memBiodataStore) UpdateByEmail(ctx context.Context, email string, update models.BiodataDoc) (int64, error) {
	for _, d := range f.docs {
		if d["email"] == email {
			for k, v := range update {
				d[k] = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (f *memBiodataStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.docs)), nil
}

type memFavoriteStore struct {
	docs []models.FavoriteDoc
}

func (f *memFavoriteStore) FindByEmail(ctx context.Context, email string) ([]models.FavoriteDoc, error) {
	out := []models.FavoriteDoc{}
	for _, d := range f.docs {
		if d["email"] == email {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *memFavoriteStore) Exists(ctx context.Context, name, email string) (bool, error) {
	for _, d := range f.docs {
		if d["name"] == name && d["email"] == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *memFavoriteStore) Insert(ctx context.Context, doc models.FavoriteDoc) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	doc["_id"] = id
	f.docs = append(f.docs, doc)
	return id, nil
}

func (f *memFavoriteStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	for i, d := range f.docs {
		if d["_id"] == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *memFavoriteStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.docs)), nil
}

// ---- router wired like cmd/api ----

type testEnv struct {
	router    *chi.Mux
	tokens    *service.TokenService
	users     *memUserStore
	biodatas  *memBiodataStore
	favorites *memFavoriteStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		tokens:    service.NewTokenService("test-secret"),
		users:     &memUserStore{},
		biodatas:  &memBiodataStore{},
		favorites: &memFavoriteStore{},
	}

	authH := NewAuthHandler(env.tokens)
	biodataH := NewBiodataHandler(service.NewBiodataService(env.biodatas, nil))
	userH := NewUserHandler(service.NewUserService(env.users))
	favoriteH := NewFavoriteHandler(service.NewFavoriteService(env.favorites))

	authMw := JWTAuth(env.tokens)

	r := chi.NewRouter()
	r.Get("/", Health)
	r.Post("/jwt", authH.IssueToken)

	r.Get("/biodatas", biodataH.List)
	r.Get("/biodatas/{id}", biodataH.GetByID)
	r.Post("/biodatas", biodataH.Upsert)
	r.With(authMw).Get("/biodataByEmail/{email}", biodataH.GetByEmail)

	r.Get("/users", userH.List)
	r.Post("/users", userH.Register)
	r.With(authMw).Get("/users/admin/{key}", userH.GetAdminFlag)
	r.With(authMw).Get("/users/premium/{key}", userH.GetPremiumFlag)
	r.With(authMw).Patch("/users/pending/{email}", userH.MarkPending)
	r.Patch("/users/premium/{key}", userH.MarkPremium)
	r.Patch("/users/admin/{key}", userH.PromoteToAdmin)

	r.Get("/favoriteBiodatas", favoriteH.List)
	r.Post("/favoriteBiodatas", favoriteH.Add)
	r.Delete("/favoriteBiodatas/{id}", favoriteH.Remove)

	adminH := NewAdminHandler(service.NewStatsService(env.users, env.biodatas, env.favorites))
	r.With(authMw, AdminOnly(env.users)).Get("/admin/stats", adminH.Stats)

	env.router = r
	return env
}

// token mints a bearer token for the given email.
func (e *testEnv) token(t *testing.T, email string) string {
	t.Helper()
	token, err := e.tokens.Issue(map[string]any{"email": email})
	require.NoError(t, err)
	return token
}

// do runs a request against the test router, JSON-encoding body when set.
func (e *testEnv) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(dest))
}
