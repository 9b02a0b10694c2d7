package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin = "admin"

	SubscriptionPending = "pending"
	SubscriptionPremium = "premium"
)

// UserDoc is an account. Role and Subscription are absent until a promotion
// or subscription operation writes them.
type UserDoc struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	Name         string             `json:"name,omitempty" bson:"name,omitempty"`
	PhotoURL     string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role         string             `json:"role,omitempty" bson:"role,omitempty"`
	Subscription string             `json:"subscription,omitempty" bson:"subscription,omitempty"`
	CreatedAt    string             `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

func (u *UserDoc) IsAdmin() bool   { return u != nil && u.Role == RoleAdmin }
func (u *UserDoc) IsPremium() bool { return u != nil && u.Subscription == SubscriptionPremium }
