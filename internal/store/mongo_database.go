package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-model-viewer/internal/config"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultMongoDatabase = "model_viewer"

// MongoDB holds a connected client and the database that stores the users
// and models collections.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to the MongoDB deployment named by cfg.DSN and
// pings the primary.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during mongo connection")
		return nil, fmt.Errorf("error occured during mongo connection: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(ctx)
		return nil, err
	}

	name := cfg.Database
	if name == "" {
		name = defaultMongoDatabase
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", name).Msg("connected to mongo successfully")

	return &MongoDB{
		client:   client,
		database: client.Database(name),
		logger:   log,
	}, nil
}

// EnsureIndexes creates the unique email index and the owner listing index.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := m.database.Collection(models.User{}.TableName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating users index: %w", err)
	}

	_, err = m.database.Collection(models.Model{}.TableName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("error creating models index: %w", err)
	}

	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
