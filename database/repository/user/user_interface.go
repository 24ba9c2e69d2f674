// File: database/repository/user/user_interface.go
package userRepo

import (
	"context"

	"bookit/database"
	"bookit/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository is the identity collaborator's read path: the auth
// middleware resolves a token subject to an id and role here. Account
// creation and profile management live in the auth subsystem, not this
// service. GetByID returns (nil, nil) when no user matches.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	EnsureIndexes() error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{coll: database.DB().Collection("users")}
}
