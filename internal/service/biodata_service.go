package service

import (
	"context"
	"time"

	"github.com/NazmulIslam95/matchMingle-server/internal/cache"
	"github.com/NazmulIslam95/matchMingle-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	biodataListKey = "biodatas:all"
	biodataListTTL = 60 * time.Second
)

type BiodataStore interface {
	FindAll(ctx context.Context) ([]models.BiodataDoc, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.BiodataDoc, error)
	FindByEmail(ctx context.Context, email string) (models.BiodataDoc, error)
	NextBiodataID(ctx context.Context) (string, error)
	Insert(ctx context.Context, doc models.BiodataDoc) (primitive.ObjectID, error)
	UpdateByEmail(ctx context.Context, email string, update models.BiodataDoc) (int64, error)
}

type BiodataService struct {
	repo  BiodataStore
	cache *cache.Cache
}

func NewBiodataService(repo BiodataStore, c *cache.Cache) *BiodataService {
	return &BiodataService{repo: repo, cache: c}
}

// UpsertResult reports which branch an upsert took: an in-place update of
// the existing biodata for the email, or a fresh insert with a newly
// assigned biodataId.
type UpsertResult struct {
	Updated       bool
	ModifiedCount int64
	InsertedID    primitive.ObjectID
	BiodataID     string
}

// List returns every biodata. The public listing is the one full-collection
// scan on the hot path, so it goes through the cache when one is configured.
func (s *BiodataService) List(ctx context.Context) ([]models.BiodataDoc, error) {
	var cached []models.BiodataDoc
	if ok, err := s.cache.GetJSON(ctx, biodataListKey, &cached); err == nil && ok {
		return cached, nil
	}

	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, biodataListKey, list, biodataListTTL)
	return list, nil
}

// GetByID returns the biodata for a hex ObjectID, nil when absent.
func (s *BiodataService) GetByID(ctx context.Context, hexID string) (models.BiodataDoc, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

// GetByEmail returns the biodata owned by email, nil when absent.
func (s *BiodataService) GetByEmail(ctx context.Context, email string) (models.BiodataDoc, error) {
	return s.repo.FindByEmail(ctx, email)
}

// Upsert stores a submitted biodata. Email is the business key: an existing
// document for the email is updated field-by-field keeping its _id and
// biodataId; otherwise the document is inserted with the next sequence id.
func (s *BiodataService) Upsert(ctx context.Context, doc models.BiodataDoc) (*UpsertResult, error) {
	email, _ := doc["email"].(string)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, ErrEmailRequired
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		update := models.BiodataDoc{}
		for k, v := range doc {
			if k == "_id" || k == "biodataId" {
				continue
			}
			update[k] = v
		}
		modified, err := s.repo.UpdateByEmail(ctx, email, update)
		if err != nil {
			return nil, err
		}
		_ = s.cache.Delete(ctx, biodataListKey)
		return &UpsertResult{Updated: true, ModifiedCount: modified}, nil
	}

	next, err := s.repo.NextBiodataID(ctx)
	if err != nil {
		return nil, err
	}
	delete(doc, "_id")
	doc["biodataId"] = next

	id, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, biodataListKey)
	return &UpsertResult{InsertedID: id, BiodataID: next}, nil
}
