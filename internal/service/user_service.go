package service

import (
	"context"
	"time"

	"github.com/NazmulIslam95/matchMingle-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore interface {
	FindAll(ctx context.Context) ([]models.UserDoc, error)
	FindByEmail(ctx context.Context, email string) (*models.UserDoc, error)
	Insert(ctx context.Context, u *models.UserDoc) (primitive.ObjectID, error)
	UpdateByEmail(ctx context.Context, email string, update bson.M) (int64, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (int64, error)
}

type UserService struct {
	repo UserStore
}

func NewUserService(repo UserStore) *UserService {
	return &UserService{repo: repo}
}

// RegisterResult distinguishes a fresh insert from the existing-user no-op.
type RegisterResult struct {
	Existing   bool
	InsertedID primitive.ObjectID
}

func (s *UserService) List(ctx context.Context) ([]models.UserDoc, error) {
	return s.repo.FindAll(ctx)
}

// Register stores a new account. Registering an email that already exists
// is a no-op reported as such, not an error.
func (s *UserService) Register(ctx context.Context, u *models.UserDoc) (*RegisterResult, error) {
	if err := validate.Var(u.Email, "required,email"); err != nil {
		return nil, ErrEmailRequired
	}

	existing, err := s.repo.FindByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &RegisterResult{Existing: true}, nil
	}

	u.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	id, err := s.repo.Insert(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		// concurrent registration won the race; same answer as the lookup
		return &RegisterResult{Existing: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return &RegisterResult{InsertedID: id}, nil
}

// IsAdmin reports whether the account for email holds the admin role.
// An absent account is simply not admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// IsPremium reports whether the account for email holds a premium
// subscription. An absent account is simply not premium.
func (s *UserService) IsPremium(ctx context.Context, email string) (bool, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u.IsPremium(), nil
}

// MarkPending sets subscription="pending" for the account matching email.
// A zero modified count means no such account; that is not an error.
func (s *UserService) MarkPending(ctx context.Context, email string) (int64, error) {
	return s.repo.UpdateByEmail(ctx, email, bson.M{"subscription": models.SubscriptionPending})
}

// MarkPremium sets subscription="premium" for the account matching the hex id.
func (s *UserService) MarkPremium(ctx context.Context, hexID string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.repo.UpdateByID(ctx, id, bson.M{"subscription": models.SubscriptionPremium})
}

// PromoteToAdmin sets role="admin" for the account matching the hex id.
// There is no demotion operation.
func (s *UserService) PromoteToAdmin(ctx context.Context, hexID string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.repo.UpdateByID(ctx, id, bson.M{"role": models.RoleAdmin})
}
