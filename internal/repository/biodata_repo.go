package repository

import (
	"context"
	"strconv"

	"github.com/NazmulIslam95/matchMingle-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BiodataRepository struct {
	col *mongo.Collection
}

func NewBiodataRepository(database *mongo.Database) *BiodataRepository {
	return &BiodataRepository{col: database.Collection("biodatas")}
}

func (r *BiodataRepository) FindAll(ctx context.Context) ([]models.BiodataDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.BiodataDoc{}
	for cur.Next(ctx) {
		var b models.BiodataDoc
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}

func (r *BiodataRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.BiodataDoc, error) {
	var b models.BiodataDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BiodataRepository) FindByEmail(ctx context.Context, email string) (models.BiodataDoc, error) {
	var b models.BiodataDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// NextBiodataID returns one more than the highest stored biodataId, or "1"
// when the collection is empty. The ids are decimal strings, so a descending
// sort on the field is lexicographic and wrong past "9"; scan them instead.
func (r *BiodataRepository) NextBiodataID(ctx context.Context) (string, error) {
	opts := options.Find().SetProjection(bson.M{"biodataId": 1})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return "", err
	}
	defer cur.Close(ctx)

	max := 0
	for cur.Next(ctx) {
		var doc struct {
			BiodataID string `bson:"biodataId"`
		}
		if err := cur.Decode(&doc); err != nil {
			return "", err
		}
		if n, err := strconv.Atoi(doc.BiodataID); err == nil && n > max {
			max = n
		}
	}
	if err := cur.Err(); err != nil {
		return "", err
	}
	return strconv.Itoa(max + 1), nil
}

func (r *BiodataRepository) Insert(ctx context.Context, doc models.BiodataDoc) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateByEmail applies a partial $set to the biodata owned by email.
func (r *BiodataRepository) UpdateByEmail(ctx context.Context, email string, update models.BiodataDoc) (int64, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": update},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *BiodataRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
