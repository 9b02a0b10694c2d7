package repository

import (
	"context"

	"github.com/NazmulIslam95/matchMingle-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FavoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository(database *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{col: database.Collection("favoriteBiodatas")}
}

func (r *FavoriteRepository) FindByEmail(ctx context.Context, email string) ([]models.FavoriteDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.FavoriteDoc{}
	for cur.Next(ctx) {
		var f models.FavoriteDoc
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, cur.Err()
}

func (r *FavoriteRepository) Exists(ctx context.Context, name, email string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"name": name, "email": email}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *FavoriteRepository) Insert(ctx context.Context, doc models.FavoriteDoc) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *FavoriteRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *FavoriteRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
