package models

import "go.mongodb.org/mongo-driver/bson"

// Biodatas carry arbitrary client-submitted profile attributes and favorites
// are denormalized copies of them, so both are stored untyped. The service
// layer enforces only the keyed fields: email (and biodataId) on biodatas,
// name+email on favorites.
type (
	BiodataDoc  = bson.M
	FavoriteDoc = bson.M
)
