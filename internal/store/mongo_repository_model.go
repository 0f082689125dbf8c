package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoModelRepository is the MongoDB-backed implementation of
// [ModelRepository]. Each model is one document with its saved views
// embedded in the savedViews array.
type mongoModelRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoModelRepository constructs a [ModelRepository] over the models collection.
func NewMongoModelRepository(db *MongoDB, logger *logger.Logger) ModelRepository {
	return &mongoModelRepository{
		collection: db.database.Collection(models.Model{}.TableName()),
		logger:     logger,
	}
}

func ownedModelFilter(ownerID, modelID string) bson.D {
	return bson.D{{Key: "_id", Value: modelID}, {Key: "ownerId", Value: ownerID}}
}

func (r *mongoModelRepository) ListModels(ctx context.Context, ownerID string) ([]models.ModelSummary, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.D{
			{Key: "_id", Value: 1},
			{Key: "name", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "thumbnail", Value: 1},
		})

	cursor, err := r.collection.Find(ctx, bson.D{{Key: "ownerId", Value: ownerID}}, opts)
	if err != nil {
		log.Err(err).Str("func", "mongoModelRepository.ListModels").Str("owner_id", ownerID).Msg("failed to list models")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	summaries := make([]models.ModelSummary, 0, 16)
	if err = cursor.All(ctx, &summaries); err != nil {
		log.Err(err).Str("func", "mongoModelRepository.ListModels").Msg("failed to decode models")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summaries, nil
}

func (r *mongoModelRepository) CreateModel(ctx context.Context, model models.Model) error {
	if model.SavedViews == nil {
		model.SavedViews = []models.SavedView{}
	}

	if _, err := r.collection.InsertOne(ctx, model); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mongoModelRepository.CreateModel").Str("model_id", model.ID).Msg("failed to insert model")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *mongoModelRepository) GetModel(ctx context.Context, ownerID, modelID string) (models.Model, error) {
	var model models.Model
	err := r.collection.FindOne(ctx, ownedModelFilter(ownerID, modelID)).Decode(&model)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Model{}, ErrModelNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mongoModelRepository.GetModel").Str("model_id", modelID).Msg("failed to get model")
		return models.Model{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if model.SavedViews == nil {
		model.SavedViews = []models.SavedView{}
	}

	return model, nil
}

func (r *mongoModelRepository) UpdateModel(ctx context.Context, ownerID, modelID string, patch models.ModelPatch, updatedAt time.Time) error {
	set := bson.D{{Key: "updatedAt", Value: updatedAt}}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.FileURL != nil {
		set = append(set, bson.E{Key: "fileUrl", Value: *patch.FileURL})
	}

	return r.updateOne(ctx, "mongoModelRepository.UpdateModel", ownerID, modelID, bson.D{{Key: "$set", Value: set}})
}

func (r *mongoModelRepository) DeleteModel(ctx context.Context, ownerID, modelID string) error {
	result, err := r.collection.DeleteOne(ctx, ownedModelFilter(ownerID, modelID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mongoModelRepository.DeleteModel").Str("model_id", modelID).Msg("failed to delete model")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if result.DeletedCount == 0 {
		return ErrModelNotFound
	}

	return nil
}

// AppendView pushes view onto savedViews with a single UpdateOne.
func (r *mongoModelRepository) AppendView(ctx context.Context, ownerID, modelID string, view models.SavedView) error {
	push := bson.D{{Key: "$push", Value: bson.D{{Key: "savedViews", Value: view}}}}
	return r.updateOne(ctx, "mongoModelRepository.AppendView", ownerID, modelID, push)
}

func (r *mongoModelRepository) updateOne(ctx context.Context, funcName, ownerID, modelID string, update bson.D) error {
	result, err := r.collection.UpdateOne(ctx, ownedModelFilter(ownerID, modelID), update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Str("model_id", modelID).Msg("failed to update model")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if result.MatchedCount == 0 {
		return ErrModelNotFound
	}

	return nil
}
