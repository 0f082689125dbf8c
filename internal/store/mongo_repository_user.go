package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoUserRepository is the MongoDB-backed implementation of [UserRepository].
type mongoUserRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoUserRepository constructs a [UserRepository] over the users collection.
func NewMongoUserRepository(db *MongoDB, logger *logger.Logger) UserRepository {
	return &mongoUserRepository{
		collection: db.database.Collection(models.User{}.TableName()),
		logger:     logger,
	}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.Password = ""
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var found models.User
	err := r.collection.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&found)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.FindUserByEmail").Msg("error finding user by email")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
