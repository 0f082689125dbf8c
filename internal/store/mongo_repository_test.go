package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func namespace(mt *mtest.T) string {
	return fmt.Sprintf("%s.%s", mt.Coll.Database().Name(), mt.Coll.Name())
}

func TestMongoUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create user", func(mt *mtest.T) {
		repo := &mongoUserRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		created, err := repo.CreateUser(context.Background(), models.User{
			ID: "u-1", Email: "ada@example.com", Password: "secret", PasswordHash: "$2a$hash",
		})

		require.NoError(mt, err)
		assert.Equal(mt, "u-1", created.ID)
		assert.Empty(mt, created.Password)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := &mongoUserRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.CreateUser(context.Background(), models.User{ID: "u-2", Email: "ada@example.com"})
		assert.ErrorIs(mt, err, ErrEmailAlreadyExists)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := &mongoUserRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u-1"},
			{Key: "email", Value: "ada@example.com"},
			{Key: "name", Value: "Ada"},
			{Key: "passwordHash", Value: "$2a$hash"},
		}))

		found, err := repo.FindUserByEmail(context.Background(), "ada@example.com")

		require.NoError(mt, err)
		assert.Equal(mt, "u-1", found.ID)
		assert.Equal(mt, "Ada", found.Name)
		assert.Equal(mt, "$2a$hash", found.PasswordHash)
	})

	mt.Run("user not found", func(mt *mtest.T) {
		repo := &mongoUserRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})
}

func TestMongoModelRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	created := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	mt.Run("list models", func(mt *mtest.T) {
		repo := &mongoModelRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "m-2"}, {Key: "name", Value: "Chair"}, {Key: "createdAt", Value: created}},
			bson.D{{Key: "_id", Value: "m-1"}, {Key: "name", Value: "Duck"}, {Key: "createdAt", Value: created.Add(-time.Hour)}},
		))

		got, err := repo.ListModels(context.Background(), "owner-1")

		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, "m-2", got[0].ID)
		assert.Equal(mt, "Duck", got[1].Name)
		assert.True(mt, got[0].CreatedAt.Equal(created))
	})

	mt.Run("list empty", func(mt *mtest.T) {
		repo := &mongoModelRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		got, err := repo.ListModels(context.Background(), "owner-1")

		require.NoError(mt, err)
		assert.NotNil(mt, got)
		assert.Empty(mt, got)
	})

	mt.Run("create model", func(mt *mtest.T) {
		repo := &mongoModelRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.CreateModel(context.Background(), models.Model{ID: "m-1", OwnerID: "owner-1", Name: "Duck", CreatedAt: created})
		assert.NoError(mt, err)
	})

	mt.Run("get model with views", func(mt *mtest.T) {
		repo := &mongoModelRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "m-1"},
			{Key: "ownerId", Value: "owner-1"},
			{Key: "name", Value: "Duck"},
			{Key: "fileUrl", Value: "/duck.glb"},
			{Key: "createdAt", Value: created},
			{Key: "savedViews", Value: bson.A{
				bson.D{{Key: "id", Value: "v-1"}, {Key: "name", Value: "Front"}, {Key: "createdAt", Value: created}},
			}},
		}))

		got, err := repo.GetModel(context.Background(), "owner-1", "m-1")

		require.NoError(mt, err)
		assert.Equal(mt, "owner-1", got.OwnerID)
		assert.Equal(mt, "/duck.glb", got.FileURL)
		require.Len(mt, got.SavedViews, 1)
		assert.Equal(mt, "Front", got.SavedViews[0].Name)
		assert.Nil(mt, got.UpdatedAt)
	})

	mt.Run("get missing model", func(mt *mtest.T) {
		repo := &mongoModelRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.GetModel(context.Background(), "owner-1", "m-404")
		assert.ErrorIs(mt, err, ErrModelNotFound)
	})

	mt.Run("update matched", func(mt *mtest.T) {
		repo := &mongoModelRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		name := "Renamed"
		err := repo.UpdateModel(context.Background(), "owner-1", "m-1", models.ModelPatch{Name: &name}, time.Now())
		assert.NoError(mt, err)
	})

	mt.Run("update not owned", func(mt *mtest.T) {
		repo := &mongoModelRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.UpdateModel(context.Background(), "intruder", "m-1", models.ModelPatch{}, time.Now())
		assert.ErrorIs(mt, err, ErrModelNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := &mongoModelRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		assert.NoError(mt, repo.DeleteModel(context.Background(), "owner-1", "m-1"))
		assert.ErrorIs(mt, repo.DeleteModel(context.Background(), "owner-1", "m-1"), ErrModelNotFound)
	})

	mt.Run("append view", func(mt *mtest.T) {
		repo := &mongoModelRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		view := models.SavedView{ID: "v-1", Name: "Top", Position: &models.Vector3{Y: 10}, CreatedAt: created}
		assert.NoError(mt, repo.AppendView(context.Background(), "owner-1", "m-1", view))

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)

		updates := started.Command.Lookup("updates").Array()
		stmt := updates.Index(0).Value().Document()
		assert.Equal(mt, "m-1", stmt.Lookup("q", "_id").StringValue())
		assert.Equal(mt, "owner-1", stmt.Lookup("q", "ownerId").StringValue())

		pushed := stmt.Lookup("u", "$push", "savedViews").Document()
		assert.Equal(mt, "v-1", pushed.Lookup("id").StringValue())
		assert.Equal(mt, "Top", pushed.Lookup("name").StringValue())
		assert.Equal(mt, 10.0, pushed.Lookup("position", "y").Double())
		_, setErr := stmt.LookupErr("u", "$set")
		assert.Error(mt, setErr, "the view list must never be rewritten wholesale")

		assert.ErrorIs(mt, repo.AppendView(context.Background(), "intruder", "m-1", view), ErrModelNotFound)
	})

	mt.Run("command error", func(mt *mtest.T) {
		repo := &mongoModelRepository{collection: mt.Coll, logger: logger.Nop()}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		err := repo.AppendView(context.Background(), "owner-1", "m-1", models.SavedView{ID: "v-1"})
		assert.ErrorIs(mt, err, ErrExecutingStatement)
	})
}
