package service

import (
	"context"

	"github.com/NazmulIslam95/matchMingle-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FavoriteStore interface {
	FindByEmail(ctx context.Context, email string) ([]models.FavoriteDoc, error)
	Exists(ctx context.Context, name, email string) (bool, error)
	Insert(ctx context.Context, doc models.FavoriteDoc) (primitive.ObjectID, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type FavoriteService struct {
	repo FavoriteStore
}

func NewFavoriteService(repo FavoriteStore) *FavoriteService {
	return &FavoriteService{repo: repo}
}

// ListByEmail returns the favorites saved by the given user email.
func (s *FavoriteService) ListByEmail(ctx context.Context, email string) ([]models.FavoriteDoc, error) {
	return s.repo.FindByEmail(ctx, email)
}

// Add stores a favorite. At most one favorite may exist per (name, email)
// pair; a duplicate is rejected with ErrDuplicateFavorite.
func (s *FavoriteService) Add(ctx context.Context, doc models.FavoriteDoc) (primitive.ObjectID, error) {
	name, _ := doc["name"].(string)
	email, _ := doc["email"].(string)
	if err := validate.Var(name, "required"); err != nil {
		return primitive.NilObjectID, ErrNameRequired
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return primitive.NilObjectID, ErrEmailRequired
	}

	exists, err := s.repo.Exists(ctx, name, email)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if exists {
		return primitive.NilObjectID, ErrDuplicateFavorite
	}

	delete(doc, "_id")
	id, err := s.repo.Insert(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		// concurrent add of the same pair slipped past the lookup
		return primitive.NilObjectID, ErrDuplicateFavorite
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

// Remove deletes a favorite by its hex id and reports the deleted count;
// deleting a favorite that is already gone yields 0, not an error.
func (s *FavoriteService) Remove(ctx context.Context, hexID string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.repo.DeleteByID(ctx, id)
}
